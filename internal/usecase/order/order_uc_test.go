package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/godcandidate/warehouse-management-app/internal/composer"
	"github.com/godcandidate/warehouse-management-app/internal/listview"
	"github.com/godcandidate/warehouse-management-app/internal/validation"
)

// fakeStore backs the usecase with a fixed catalog and captures writes.
type fakeStore struct {
	suppliers map[string]string
	catalog   map[string]composer.CatalogItem
	orders    map[string]*Order
	created   *Order
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		suppliers: map[string]string{"sup-1": "Tech Supplies Co"},
		catalog: map[string]composer.CatalogItem{
			"itm-1": {ID: "itm-1", Name: "Laptop", SKU: "ELEC-001", UnitPrice: 1200, Available: 25},
			"itm-2": {ID: "itm-2", Name: "Office Chair", SKU: "FURN-001", UnitPrice: 250, Available: 8},
		},
		orders: map[string]*Order{},
	}
}

func (f *fakeStore) SupplierName(_ context.Context, id string) (string, error) {
	if name, ok := f.suppliers[id]; ok {
		return name, nil
	}
	return "", ErrSupplierMissing
}

func (f *fakeStore) CatalogItem(_ context.Context, id string) (*composer.CatalogItem, error) {
	if ci, ok := f.catalog[id]; ok {
		out := ci
		return &out, nil
	}
	return nil, ErrItemMissing
}

func (f *fakeStore) Create(_ context.Context, o *Order) (*Order, error) {
	out := *o
	out.ID = "po-new"
	f.created = &out
	f.orders[out.ID] = &out
	return &out, nil
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*Order, error) {
	if o, ok := f.orders[id]; ok {
		out := *o
		return &out, nil
	}
	return nil, ErrNotFound
}

func (f *fakeStore) List(_ context.Context, q listview.Query) (listview.Page[Order], error) {
	var all []Order
	for _, o := range f.orders {
		all = append(all, *o)
	}
	return listview.Paginate(all, q), nil
}

func (f *fakeStore) Update(_ context.Context, id string, o *Order) (*Order, error) {
	if _, ok := f.orders[id]; !ok {
		return nil, ErrNotFound
	}
	out := *o
	out.ID = id
	f.orders[id] = &out
	return &out, nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, id string, status string) (*Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	o.Status = status
	out := *o
	return &out, nil
}

func validDraft() Draft {
	return Draft{
		SupplierID:           "sup-1",
		OrderDate:            time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		ExpectedDeliveryDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Items: []DraftItem{
			{ItemID: "itm-1", Quantity: 5},
		},
	}
}

func TestCreateRebuildsLinesFromCatalog(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	out, err := uc.Create(context.Background(), validDraft())
	require.NoError(t, err)

	require.Equal(t, StatusPending, out.Status)
	require.Equal(t, "Tech Supplies Co", out.SupplierName)
	require.Len(t, out.Items, 1)
	require.Equal(t, "Laptop", out.Items[0].ItemName)
	require.Equal(t, 5, out.Items[0].Quantity)
	require.Equal(t, 1200.0, out.Items[0].UnitPrice)
	require.Equal(t, 6000.0, out.Items[0].TotalPrice)
	require.Equal(t, 6000.0, out.TotalAmount)
	require.NotEmpty(t, out.Items[0].ID)
}

func TestCreateAllowsClientPriceOverride(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	in := validDraft()
	in.Items = []DraftItem{{ItemID: "itm-2", Quantity: 2, UnitPrice: 199.5}}

	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, 199.5, out.Items[0].UnitPrice)
	require.Equal(t, 399.0, out.TotalAmount)
}

func TestCreateValidationFieldMap(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	_, err := uc.Create(context.Background(), Draft{})
	require.Error(t, err)

	ve, ok := validation.As(err)
	require.True(t, ok)
	require.Contains(t, ve, "supplierId")
	require.Contains(t, ve, "orderDate")
	require.Contains(t, ve, "expectedDeliveryDate")
	require.Equal(t, "at least one item is required", ve["items"])

	// Store untouched on validation failure.
	require.Nil(t, store.created)
}

func TestCreateRejectsZeroQuantity(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	in := validDraft()
	in.Items = []DraftItem{{ItemID: "itm-1", Quantity: 0}}

	_, err := uc.Create(context.Background(), in)
	ve, ok := validation.As(err)
	require.True(t, ok)
	require.Equal(t, "quantity must be at least 1", ve["items[0].quantity"])
}

func TestCreateReportsEveryBrokenLine(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	in := validDraft()
	in.Items = []DraftItem{
		{ItemID: "", Quantity: 1},
		{ItemID: "itm-1", Quantity: 0},
		{ItemID: "itm-2", Quantity: 2},
	}

	_, err := uc.Create(context.Background(), in)
	ve, ok := validation.As(err)
	require.True(t, ok)

	// Each broken line gets its own key, so none shadows another.
	require.Equal(t, "itemId is required", ve["items[0].itemId"])
	require.Equal(t, "quantity must be at least 1", ve["items[1].quantity"])
	require.NotContains(t, ve, "items[2].quantity")
}

func TestCreateUnknownSupplierAndItem(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	in := validDraft()
	in.SupplierID = "sup-missing"
	_, err := uc.Create(context.Background(), in)
	require.ErrorIs(t, err, ErrSupplierMissing)

	in = validDraft()
	in.Items = []DraftItem{{ItemID: "itm-missing", Quantity: 1}}
	_, err = uc.Create(context.Background(), in)
	require.ErrorIs(t, err, ErrItemMissing)
}

func TestUpdateRecomputesTotal(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	created, err := uc.Create(context.Background(), validDraft())
	require.NoError(t, err)

	in := validDraft()
	in.Items = []DraftItem{
		{ItemID: "itm-1", Quantity: 1},
		{ItemID: "itm-2", Quantity: 2},
	}
	out, err := uc.Update(context.Background(), created.ID, in)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	require.Equal(t, 1700.0, out.TotalAmount)
}

func TestStatusTransitions(t *testing.T) {
	store := newFakeStore()
	uc := New(store)

	created, err := uc.Create(context.Background(), validDraft())
	require.NoError(t, err)
	ctx := context.Background()

	// pending -> shipped skips approval
	_, err = uc.UpdateStatus(ctx, created.ID, UpdateStatusInput{Status: StatusShipped})
	require.ErrorIs(t, err, ErrInvalidTransition)

	out, err := uc.UpdateStatus(ctx, created.ID, UpdateStatusInput{Status: StatusApproved})
	require.NoError(t, err)
	require.Equal(t, StatusApproved, out.Status)

	out, err = uc.UpdateStatus(ctx, created.ID, UpdateStatusInput{Status: StatusShipped})
	require.NoError(t, err)

	out, err = uc.UpdateStatus(ctx, created.ID, UpdateStatusInput{Status: StatusDelivered})
	require.NoError(t, err)
	require.Equal(t, StatusDelivered, out.Status)

	// delivered is terminal
	_, err = uc.UpdateStatus(ctx, created.ID, UpdateStatusInput{Status: StatusCancelled})
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, err = uc.UpdateStatus(ctx, created.ID, UpdateStatusInput{Status: "bogus"})
	require.ErrorIs(t, err, ErrInvalidStatus)
}
