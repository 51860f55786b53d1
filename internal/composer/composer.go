// Package composer assembles the line items of a purchase order or shipment
// draft from a read-only catalog, keeping the derived totals consistent with
// the lines at every step.
package composer

import (
	"math"

	"github.com/google/uuid"
)

// CatalogItem is the read-only reference data a line is built from.
type CatalogItem struct {
	ID        string
	Name      string
	SKU       string
	UnitPrice float64
	Available int
}

// Line is one committed row of a draft. ItemName and UnitPrice are
// denormalized from the catalog at add time. Lines carry a stable id so
// removal never depends on array position.
type Line struct {
	ID         string  `json:"id"`
	ItemID     string  `json:"itemId"`
	ItemName   string  `json:"itemName"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice,omitempty"`
	TotalPrice float64 `json:"totalPrice,omitempty"`
}

// Pending is the not-yet-committed entry being edited.
type Pending struct {
	ItemID     string
	ItemName   string
	Quantity   int
	UnitPrice  float64
	TotalPrice float64
}

// Composer builds an ordered list of lines. In priced mode (purchase orders)
// each line carries a unit price and total; in unpriced mode (shipments)
// lines are quantity-only and the aggregate is simply the line count.
type Composer struct {
	priced   bool
	selected *CatalogItem
	pending  Pending
	lines    []Line
	total    float64
	newID    func() string
}

// NewOrder returns a composer for priced (purchase order) drafts.
func NewOrder() *Composer { return newComposer(true) }

// NewShipment returns a composer for unpriced (shipment) drafts.
func NewShipment() *Composer { return newComposer(false) }

func newComposer(priced bool) *Composer {
	return &Composer{
		priced:  priced,
		pending: defaultPending(),
		newID:   uuid.NewString,
	}
}

func defaultPending() Pending {
	return Pending{Quantity: 1}
}

// Select sets the current catalog selection. nil clears the pending entry
// back to defaults. A selection autofills the pending unit price from the
// catalog (priced mode) and recomputes the pending total.
func (c *Composer) Select(item *CatalogItem) {
	if item == nil {
		c.selected = nil
		c.pending = defaultPending()
		return
	}
	c.selected = item
	c.pending.ItemID = item.ID
	c.pending.ItemName = item.Name
	if c.pending.Quantity <= 0 {
		c.pending.Quantity = 1
	}
	if c.priced {
		c.pending.UnitPrice = item.UnitPrice
	}
	c.recomputePending()
}

// SetQuantity updates the pending quantity. Stock is not checked here: there
// are no reservation semantics at draft time.
func (c *Composer) SetQuantity(n int) {
	c.pending.Quantity = n
	c.recomputePending()
}

// SetUnitPrice overrides the autofilled unit price (priced mode only).
func (c *Composer) SetUnitPrice(p float64) {
	if !c.priced {
		return
	}
	c.pending.UnitPrice = p
	c.recomputePending()
}

func (c *Composer) recomputePending() {
	c.pending.TotalPrice = float64(c.pending.Quantity) * c.pending.UnitPrice
}

// Commit appends the pending entry as a new line and resets the pending
// entry to defaults. It is a no-op returning false when no catalog item is
// selected or the quantity is not positive.
func (c *Composer) Commit() bool {
	if c.selected == nil || c.pending.Quantity <= 0 {
		return false
	}

	line := Line{
		ID:       c.newID(),
		ItemID:   c.pending.ItemID,
		ItemName: c.pending.ItemName,
		Quantity: c.pending.Quantity,
	}
	if c.priced {
		line.UnitPrice = c.pending.UnitPrice
		line.TotalPrice = c.pending.TotalPrice
	}

	c.lines = append(c.lines, line)
	c.recomputeTotal()

	c.selected = nil
	c.pending = defaultPending()
	return true
}

// Remove deletes the line with the given id and recomputes the total. It
// reports whether a line was removed.
func (c *Composer) Remove(id string) bool {
	for i, l := range c.lines {
		if l.ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.recomputeTotal()
			return true
		}
	}
	return false
}

// Load replaces the line list, assigning fresh ids to lines without one.
// The aggregate is always recomputed from the lines, never trusted from the
// caller. Used when editing an existing document.
func (c *Composer) Load(lines []Line) {
	c.lines = make([]Line, len(lines))
	copy(c.lines, lines)
	for i := range c.lines {
		if c.lines[i].ID == "" {
			c.lines[i].ID = c.newID()
		}
		if c.priced {
			c.lines[i].TotalPrice = float64(c.lines[i].Quantity) * c.lines[i].UnitPrice
		} else {
			c.lines[i].UnitPrice = 0
			c.lines[i].TotalPrice = 0
		}
	}
	c.recomputeTotal()
}

func (c *Composer) recomputeTotal() {
	var sum float64
	for _, l := range c.lines {
		sum += l.TotalPrice
	}
	c.total = sum
}

// Lines returns a copy of the committed lines in insertion order.
func (c *Composer) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total returns the unrounded aggregate of all line totals. Always zero in
// unpriced mode; use Count for the shipment aggregate.
func (c *Composer) Total() float64 { return c.total }

// Count returns the number of committed lines.
func (c *Composer) Count() int { return len(c.lines) }

// Pending returns the current pending entry.
func (c *Composer) Pending() Pending { return c.pending }

// Selected returns the current catalog selection, or nil.
func (c *Composer) Selected() *CatalogItem { return c.selected }

// RoundCurrency rounds a currency value to two decimals. Totals accumulate
// unrounded; rounding happens only at display boundaries.
func RoundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
