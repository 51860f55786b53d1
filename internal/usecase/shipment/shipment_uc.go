package shipment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/godcandidate/warehouse-management-app/internal/composer"
	"github.com/godcandidate/warehouse-management-app/internal/listview"
	"github.com/godcandidate/warehouse-management-app/internal/validation"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("shipment not found")
	ErrItemMissing       = errors.New("catalog item not found")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

const (
	StatusPending   = "pending"
	StatusInTransit = "in-transit"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

const defaultOrigin = "Warehouse A"

type Shipment struct {
	ID                  string          `json:"id"`
	ReferenceNumber     string          `json:"referenceNumber"`
	Origin              string          `json:"origin"`
	Destination         string          `json:"destination"`
	ShipmentDate        time.Time       `json:"shipmentDate"`
	ExpectedArrivalDate time.Time       `json:"expectedArrivalDate"`
	Status              string          `json:"status"`
	Items               []composer.Line `json:"items"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// Draft is a client-composed shipment before persistence. Shipment lines
// carry no price; item names are rebuilt from the catalog on submit.
type Draft struct {
	ReferenceNumber     string      `json:"referenceNumber"`
	Origin              string      `json:"origin"`
	Destination         string      `json:"destination"`
	ShipmentDate        time.Time   `json:"shipmentDate"`
	ExpectedArrivalDate time.Time   `json:"expectedArrivalDate"`
	Status              string      `json:"status"`
	Items               []DraftItem `json:"items"`
}

type DraftItem struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type UpdateStatusInput struct {
	Status string `json:"status"`
}

type Store interface {
	CatalogItem(ctx context.Context, itemID string) (*composer.CatalogItem, error)

	Create(ctx context.Context, s *Shipment) (*Shipment, error)
	GetByID(ctx context.Context, id string) (*Shipment, error)
	List(ctx context.Context, q listview.Query) (listview.Page[Shipment], error)
	Update(ctx context.Context, id string, s *Shipment) (*Shipment, error)
	UpdateStatus(ctx context.Context, id string, status string) (*Shipment, error)
}

type Usecase struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Usecase {
	return &Usecase{store: store, now: time.Now}
}

func (u *Usecase) Create(ctx context.Context, in Draft) (*Shipment, error) {
	if in.Status == "" {
		in.Status = StatusPending
	}
	if !isValidStatus(in.Status) {
		return nil, ErrInvalidStatus
	}
	if strings.TrimSpace(in.ReferenceNumber) == "" {
		in.ReferenceNumber = fmt.Sprintf("SHIP-%06d", u.now().UnixNano()%1000000)
	}
	if strings.TrimSpace(in.Origin) == "" {
		in.Origin = defaultOrigin
	}

	s, err := u.buildShipment(ctx, in)
	if err != nil {
		return nil, err
	}
	return u.store.Create(ctx, s)
}

func (u *Usecase) GetByID(ctx context.Context, id string) (*Shipment, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.store.GetByID(ctx, id)
}

func (u *Usecase) List(ctx context.Context, q listview.Query) (listview.Page[Shipment], error) {
	return u.store.List(ctx, q.Normalize())
}

func (u *Usecase) Update(ctx context.Context, id string, in Draft) (*Shipment, error) {
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
	if strings.TrimSpace(in.ReferenceNumber) == "" {
		in.ReferenceNumber = cur.ReferenceNumber
	}
	if strings.TrimSpace(in.Origin) == "" {
		in.Origin = cur.Origin
	}

	s, err := u.buildShipment(ctx, in)
	if err != nil {
		return nil, err
	}
	return u.store.Update(ctx, id, s)
}

func (u *Usecase) UpdateStatus(ctx context.Context, id string, in UpdateStatusInput) (*Shipment, error) {
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

func (u *Usecase) buildShipment(ctx context.Context, in Draft) (*Shipment, error) {
	in.Origin = strings.TrimSpace(in.Origin)
	in.Destination = strings.TrimSpace(in.Destination)

	ve := validation.Errors{}
	ve.Require("origin", in.Origin)
	ve.Require("destination", in.Destination)
	if in.ShipmentDate.IsZero() {
		ve.Add("shipmentDate", "shipment date is required")
	}
	if in.ExpectedArrivalDate.IsZero() {
		ve.Add("expectedArrivalDate", "expected arrival date is required")
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

	comp := composer.NewShipment()
	for _, it := range in.Items {
		ci, err := u.store.CatalogItem(ctx, it.ItemID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrItemMissing, it.ItemID)
		}
		comp.Select(ci)
		comp.SetQuantity(it.Quantity)
		comp.Commit()
	}

	return &Shipment{
		ReferenceNumber:     in.ReferenceNumber,
		Origin:              in.Origin,
		Destination:         in.Destination,
		ShipmentDate:        in.ShipmentDate,
		ExpectedArrivalDate: in.ExpectedArrivalDate,
		Status:              in.Status,
		Items:               comp.Lines(),
	}, nil
}

func isValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

func isValidTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusInTransit || to == StatusCancelled
	case StatusInTransit:
		return to == StatusDelivered || to == StatusCancelled
	default:
		// delivered and cancelled are terminal
		return false
	}
}
