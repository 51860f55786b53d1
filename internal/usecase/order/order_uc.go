package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/godcandidate/warehouse-management-app/internal/composer"
	"github.com/godcandidate/warehouse-management-app/internal/listview"
	"github.com/godcandidate/warehouse-management-app/internal/validation"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("purchase order not found")
	ErrSupplierMissing   = errors.New("supplier not found")
	ErrItemMissing       = errors.New("catalog item not found")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

type Store interface {
	// Catalog lookups used to rebuild draft lines.
	SupplierName(ctx context.Context, supplierID string) (string, error)
	CatalogItem(ctx context.Context, itemID string) (*composer.CatalogItem, error)

	Create(ctx context.Context, o *Order) (*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, q listview.Query) (listview.Page[Order], error)
	Update(ctx context.Context, id string, o *Order) (*Order, error)
	UpdateStatus(ctx context.Context, id string, status string) (*Order, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

// Create validates a draft, rebuilds its line items from the catalog and
// persists the result. Field-keyed validation errors come back whole so the
// draft stays intact for correction.
func (u *Usecase) Create(ctx context.Context, in Draft) (*Order, error) {
	if in.Status == "" {
		in.Status = StatusPending
	}
	if !isValidStatus(in.Status) {
		return nil, ErrInvalidStatus
	}

	o, err := u.buildOrder(ctx, in)
	if err != nil {
		return nil, err
	}
	return u.store.Create(ctx, o)
}

func (u *Usecase) GetByID(ctx context.Context, id string) (*Order, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.store.GetByID(ctx, id)
}

func (u *Usecase) List(ctx context.Context, q listview.Query) (listview.Page[Order], error) {
	return u.store.List(ctx, q.Normalize())
}

// Update replaces an existing order with a revalidated draft. The total is
// recomputed from the rebuilt lines, never carried over.
func (u *Usecase) Update(ctx context.Context, id string, in Draft) (*Order, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}

	cur, err := u.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = cur.Status
	}
	if !isValidStatus(in.Status) {
		return nil, ErrInvalidStatus
	}

	o, err := u.buildOrder(ctx, in)
	if err != nil {
		return nil, err
	}
	return u.store.Update(ctx, id, o)
}

func (u *Usecase) UpdateStatus(ctx context.Context, id string, in UpdateStatusInput) (*Order, error) {
	if id == "" || in.Status == "" {
		return nil, ErrInvalidInput
	}
	if !isValidStatus(in.Status) {
		return nil, ErrInvalidStatus
	}

	cur, err := u.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isValidTransition(cur.Status, in.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, cur.Status, in.Status)
	}

	return u.store.UpdateStatus(ctx, id, in.Status)
}

// buildOrder validates the draft header and rebuilds the items through a
// composer so names are denormalized from the catalog, line ids are fresh
// and the aggregate equals the sum of the rebuilt line totals.
func (u *Usecase) buildOrder(ctx context.Context, in Draft) (*Order, error) {
	in.SupplierID = strings.TrimSpace(in.SupplierID)

	ve := validation.Errors{}
	ve.Require("supplierId", in.SupplierID)
	if in.OrderDate.IsZero() {
		ve.Add("orderDate", "order date is required")
	}
	if in.ExpectedDeliveryDate.IsZero() {
		ve.Add("expectedDeliveryDate", "expected delivery date is required")
	}
	if len(in.Items) == 0 {
		ve.Add("items", "at least one item is required")
	}
	for i, it := range in.Items {
		if it.ItemID == "" {
			ve.Add(fmt.Sprintf("items[%d].itemId", i), "itemId is required")
			continue
		}
		if it.Quantity < 1 {
			ve.Add(fmt.Sprintf("items[%d].quantity", i), "quantity must be at least 1")
		}
	}
	if ve.Any() {
		return nil, ve
	}

	supplierName, err := u.store.SupplierName(ctx, in.SupplierID)
	if err != nil {
		return nil, ErrSupplierMissing
	}

	comp := composer.NewOrder()
	for i, it := range in.Items {
		ci, err := u.store.CatalogItem(ctx, it.ItemID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrItemMissing, it.ItemID)
		}

		comp.Select(ci)
		comp.SetQuantity(it.Quantity)
		if it.UnitPrice > 0 {
			// Client override of the catalog price.
			comp.SetUnitPrice(it.UnitPrice)
		}
		if comp.Pending().UnitPrice <= 0 {
			ve.Add(fmt.Sprintf("items[%d].unitPrice", i), "unit price must be greater than 0")
			comp.Select(nil)
			continue
		}
		comp.Commit()
	}
	if ve.Any() {
		return nil, ve
	}

	return &Order{
		SupplierID:           in.SupplierID,
		SupplierName:         supplierName,
		OrderDate:            in.OrderDate,
		ExpectedDeliveryDate: in.ExpectedDeliveryDate,
		Status:               in.Status,
		Items:                comp.Lines(),
		TotalAmount:          comp.Total(),
	}, nil
}

func isValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

func isValidTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusApproved || to == StatusCancelled
	case StatusApproved:
		return to == StatusShipped || to == StatusCancelled
	case StatusShipped:
		return to == StatusDelivered || to == StatusCancelled
	default:
		// delivered and cancelled are terminal
		return false
	}
}
