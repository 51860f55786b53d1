package memory

import (
	"context"

	"github.com/godcandidate/warehouse-management-app/internal/listview"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/inventory"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/order"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/report"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/shipment"
)

// ReportStore adapts the shared store to the report usecase. Generated
// summaries read the live entity collections; saved reports are metadata.
type ReportStore struct {
	s *Store
}

var _ report.Store = (*ReportStore)(nil)

func NewReportStore(s *Store) *ReportStore {
	return &ReportStore{s: s}
}

func (a *ReportStore) SaveReport(_ context.Context, r *report.Report) (*report.Report, error) {
	s := a.s
	s.mu.Lock()
	defer s.mu.Unlock()

	out := *r
	out.ID = s.newID()
	out.CreatedAt = s.now()
	s.reports = append(s.reports, out)
	return &out, nil
}

func (a *ReportStore) GetReport(_ context.Context, id string) (*report.Report, error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.reports {
		if s.reports[i].ID == id {
			r := s.reports[i]
			return &r, nil
		}
	}
	return nil, report.ErrNotFound
}

func (a *ReportStore) ListReports(_ context.Context, q listview.Query) (listview.Page[report.Report], error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	typ := q.Filter("type")

	filtered := make([]report.Report, 0, len(s.reports))
	for _, r := range s.reports {
		if typ != "" && r.Type != typ {
			continue
		}
		if !q.MatchSearch(r.Name, r.CreatedBy) {
			continue
		}
		filtered = append(filtered, r)
	}
	return listview.Paginate(filtered, q), nil
}

func (a *ReportStore) AllItems(ctx context.Context) ([]inventory.Item, error) {
	return NewInventoryStore(a.s).AllItems(ctx)
}

func (a *ReportStore) AllOrders(_ context.Context) ([]order.Order, error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]order.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (a *ReportStore) AllShipments(_ context.Context) ([]shipment.Shipment, error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]shipment.Shipment, len(s.shipments))
	copy(out, s.shipments)
	return out, nil
}
