package composer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func laptop() *CatalogItem {
	return &CatalogItem{ID: "1", Name: "Laptop", SKU: "ELEC-001", UnitPrice: 1200, Available: 25}
}

func chair() *CatalogItem {
	return &CatalogItem{ID: "2", Name: "Office Chair", SKU: "FURN-001", UnitPrice: 250, Available: 8}
}

func TestOrderComposerScenario(t *testing.T) {
	c := NewOrder()

	c.Select(laptop())
	c.SetQuantity(5)
	require.True(t, c.Commit())

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, "1", lines[0].ItemID)
	require.Equal(t, "Laptop", lines[0].ItemName)
	require.Equal(t, 5, lines[0].Quantity)
	require.Equal(t, 1200.0, lines[0].UnitPrice)
	require.Equal(t, 6000.0, lines[0].TotalPrice)
	require.Equal(t, 6000.0, c.Total())

	require.True(t, c.Remove(lines[0].ID))
	require.Empty(t, c.Lines())
	require.Equal(t, 0.0, c.Total())
}

func TestCommitResetsPendingToDefaults(t *testing.T) {
	c := NewOrder()

	c.Select(laptop())
	c.SetQuantity(3)
	c.SetUnitPrice(999)
	require.True(t, c.Commit())

	require.Equal(t, Pending{Quantity: 1}, c.Pending())
	require.Nil(t, c.Selected())
}

func TestCommitWithoutSelectionIsNoOp(t *testing.T) {
	c := NewOrder()

	require.False(t, c.Commit())
	require.Empty(t, c.Lines())

	c.Select(laptop())
	c.SetQuantity(0)
	require.False(t, c.Commit())
	require.Empty(t, c.Lines())
}

func TestSelectNilClearsPending(t *testing.T) {
	c := NewOrder()

	c.Select(laptop())
	c.SetQuantity(7)
	c.Select(nil)

	require.Equal(t, Pending{Quantity: 1}, c.Pending())
	require.False(t, c.Commit())
}

func TestSelectAutofillsPriceAndRecomputes(t *testing.T) {
	c := NewOrder()

	c.SetQuantity(4)
	c.Select(laptop())

	p := c.Pending()
	require.Equal(t, 1200.0, p.UnitPrice)
	require.Equal(t, 4, p.Quantity)
	require.Equal(t, 4800.0, p.TotalPrice)
}

func TestTotalConsistencyAcrossCommitsAndRemovals(t *testing.T) {
	c := NewOrder()

	add := func(ci *CatalogItem, qty int) {
		c.Select(ci)
		c.SetQuantity(qty)
		require.True(t, c.Commit())
	}

	add(laptop(), 2)
	add(chair(), 4)
	add(laptop(), 1) // duplicate catalog pick yields a distinct line

	lines := c.Lines()
	require.Len(t, lines, 3)
	require.NotEqual(t, lines[0].ID, lines[2].ID)

	sum := func() float64 {
		var s float64
		for _, l := range c.Lines() {
			s += l.TotalPrice
		}
		return s
	}
	require.Equal(t, sum(), c.Total())

	require.True(t, c.Remove(lines[1].ID))
	require.Equal(t, sum(), c.Total())
	require.Equal(t, 3600.0, c.Total())

	require.True(t, c.Remove(lines[0].ID))
	require.True(t, c.Remove(lines[2].ID))
	require.Equal(t, 0.0, c.Total())
}

func TestRemoveThenReAddRestoresTotal(t *testing.T) {
	c := NewOrder()

	c.Select(laptop())
	c.SetQuantity(5)
	require.True(t, c.Commit())
	before := c.Total()
	firstID := c.Lines()[0].ID

	require.True(t, c.Remove(firstID))
	require.Equal(t, 0.0, c.Total())

	c.Select(laptop())
	c.SetQuantity(5)
	require.True(t, c.Commit())

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.NotEqual(t, firstID, lines[0].ID)
	require.Equal(t, "Laptop", lines[0].ItemName)
	require.Equal(t, 5, lines[0].Quantity)
	require.Equal(t, 1200.0, lines[0].UnitPrice)
	require.Equal(t, before, c.Total())
}

func TestRemoveUnknownID(t *testing.T) {
	c := NewOrder()

	c.Select(laptop())
	require.True(t, c.Commit())

	require.False(t, c.Remove("nope"))
	require.Len(t, c.Lines(), 1)
}

func TestShipmentComposerCarriesNoPrice(t *testing.T) {
	c := NewShipment()

	c.Select(laptop())
	c.SetQuantity(3)
	c.SetUnitPrice(500) // ignored in unpriced mode
	require.True(t, c.Commit())

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 0.0, lines[0].UnitPrice)
	require.Equal(t, 0.0, lines[0].TotalPrice)
	require.Equal(t, 0.0, c.Total())
	require.Equal(t, 1, c.Count())
}

func TestLoadRecomputesTotals(t *testing.T) {
	c := NewOrder()

	c.Load([]Line{
		{ItemID: "1", ItemName: "Laptop", Quantity: 2, UnitPrice: 1200, TotalPrice: 999}, // stale total
		{ID: "keep", ItemID: "2", ItemName: "Office Chair", Quantity: 1, UnitPrice: 250},
	})

	lines := c.Lines()
	require.Len(t, lines, 2)
	require.NotEmpty(t, lines[0].ID)
	require.Equal(t, "keep", lines[1].ID)
	require.Equal(t, 2400.0, lines[0].TotalPrice)
	require.Equal(t, 250.0, lines[1].TotalPrice)
	require.Equal(t, 2650.0, c.Total())
}

func TestRoundCurrency(t *testing.T) {
	require.Equal(t, 10.05, RoundCurrency(10.045000001))
	require.Equal(t, 0.1, RoundCurrency(0.1))
	require.Equal(t, 2.5, RoundCurrency(2.499999999))
}
