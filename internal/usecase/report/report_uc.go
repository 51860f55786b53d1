package report

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/godcandidate/warehouse-management-app/internal/composer"
	"github.com/godcandidate/warehouse-management-app/internal/listview"
	"github.com/godcandidate/warehouse-management-app/internal/session"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/inventory"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/order"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/shipment"
	"github.com/godcandidate/warehouse-management-app/internal/validation"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("report not found")
	ErrUnknownType  = errors.New("unknown report type")
)

const (
	TypeInventory   = "inventory"
	TypeProcurement = "procurement"
	TypeShipment    = "shipment"
	TypeCustom      = "custom"
)

type Report struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	CreatedAt  time.Time      `json:"createdAt"`
	CreatedBy  string         `json:"createdBy"`
	Parameters map[string]any `json:"parameters"`
}

type SaveInput struct {
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Parameters map[string]any `json:"parameters"`
}

// Row is one aggregate line of a generated report.
type Row struct {
	Label string  `json:"label"`
	Count int     `json:"count"`
	Value float64 `json:"value,omitempty"`
}

type Summary struct {
	Type        string    `json:"type"`
	GeneratedAt time.Time `json:"generatedAt"`
	Summary     string    `json:"summary"`
	Rows        []Row     `json:"rows"`
}

type Store interface {
	SaveReport(ctx context.Context, r *Report) (*Report, error)
	GetReport(ctx context.Context, id string) (*Report, error)
	ListReports(ctx context.Context, q listview.Query) (listview.Page[Report], error)

	// Source data for generated summaries.
	AllItems(ctx context.Context) ([]inventory.Item, error)
	AllOrders(ctx context.Context) ([]order.Order, error)
	AllShipments(ctx context.Context) ([]shipment.Shipment, error)
}

type Usecase struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Usecase {
	return &Usecase{store: store, now: time.Now}
}

// Generate computes a summary live from the store. Parameters are accepted
// for forward compatibility but only the report type selects the shape.
func (u *Usecase) Generate(ctx context.Context, reportType string, _ map[string]any) (*Summary, error) {
	switch reportType {
	case TypeInventory:
		return u.inventorySummary(ctx)
	case TypeProcurement:
		return u.procurementSummary(ctx)
	case TypeShipment:
		return u.shipmentSummary(ctx)
	case TypeCustom:
		return &Summary{
			Type:        TypeCustom,
			GeneratedAt: u.now(),
			Summary:     "Custom report generated",
			Rows:        []Row{},
		}, nil
	default:
		return nil, ErrUnknownType
	}
}

func (u *Usecase) Save(ctx context.Context, in SaveInput) (*Report, error) {
	in.Name = strings.TrimSpace(in.Name)

	ve := validation.Errors{}
	ve.Require("name", in.Name)
	if ve.Any() {
		return nil, ve
	}
	if in.Type == "" {
		in.Type = TypeCustom
	}
	if in.Type != TypeInventory && in.Type != TypeProcurement && in.Type != TypeShipment && in.Type != TypeCustom {
		return nil, ErrUnknownType
	}
	if in.Parameters == nil {
		in.Parameters = map[string]any{}
	}

	createdBy := "system"
	if s, ok := session.FromContext(ctx); ok {
		createdBy = s.Name
	}

	return u.store.SaveReport(ctx, &Report{
		Name:       in.Name,
		Type:       in.Type,
		CreatedBy:  createdBy,
		Parameters: in.Parameters,
	})
}

func (u *Usecase) GetByID(ctx context.Context, id string) (*Report, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.store.GetReport(ctx, id)
}

func (u *Usecase) List(ctx context.Context, q listview.Query) (listview.Page[Report], error) {
	return u.store.ListReports(ctx, q.Normalize())
}

func (u *Usecase) inventorySummary(ctx context.Context) (*Summary, error) {
	items, err := u.store.AllItems(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := map[string]int{}
	var totalValue float64
	for _, it := range items {
		byStatus[it.Status]++
		totalValue += float64(it.Quantity) * it.UnitPrice
	}

	rows := []Row{
		{Label: "total items", Count: len(items), Value: composer.RoundCurrency(totalValue)},
		{Label: inventory.StatusInStock, Count: byStatus[inventory.StatusInStock]},
		{Label: inventory.StatusLowStock, Count: byStatus[inventory.StatusLowStock]},
		{Label: inventory.StatusOutOfStock, Count: byStatus[inventory.StatusOutOfStock]},
	}
	return &Summary{
		Type:        TypeInventory,
		GeneratedAt: u.now(),
		Summary:     "Inventory stock levels and valuation",
		Rows:        rows,
	}, nil
}

func (u *Usecase) procurementSummary(ctx context.Context) (*Summary, error) {
	orders, err := u.store.AllOrders(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	spend := map[string]float64{}
	for _, o := range orders {
		counts[o.Status]++
		spend[o.Status] += o.TotalAmount
	}

	statuses := []string{
		order.StatusPending, order.StatusApproved, order.StatusShipped,
		order.StatusDelivered, order.StatusCancelled,
	}
	rows := make([]Row, 0, len(statuses))
	for _, s := range statuses {
		rows = append(rows, Row{Label: s, Count: counts[s], Value: composer.RoundCurrency(spend[s])})
	}
	return &Summary{
		Type:        TypeProcurement,
		GeneratedAt: u.now(),
		Summary:     "Purchase order volume and spend by status",
		Rows:        rows,
	}, nil
}

func (u *Usecase) shipmentSummary(ctx context.Context) (*Summary, error) {
	shipments, err := u.store.AllShipments(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, s := range shipments {
		counts[s.Status]++
	}

	statuses := []string{
		shipment.StatusPending, shipment.StatusInTransit,
		shipment.StatusDelivered, shipment.StatusCancelled,
	}
	rows := make([]Row, 0, len(statuses))
	for _, s := range statuses {
		rows = append(rows, Row{Label: s, Count: counts[s]})
	}
	return &Summary{
		Type:        TypeShipment,
		GeneratedAt: u.now(),
		Summary:     "Shipment counts by status",
		Rows:        rows,
	}, nil
}
