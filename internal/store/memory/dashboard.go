package memory

import (
	"context"
	"sort"

	"github.com/godcandidate/warehouse-management-app/internal/usecase/dashboard"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/inventory"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/order"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/shipment"
)

// DashboardStore adapts the shared store to the dashboard usecase.
type DashboardStore struct {
	s *Store
}

var _ dashboard.Store = (*DashboardStore)(nil)

func NewDashboardStore(s *Store) *DashboardStore {
	return &DashboardStore{s: s}
}

func (a *DashboardStore) Stats(ctx context.Context) (*dashboard.Stats, error) {
	s := a.s
	s.mu.RLock()

	stats := dashboard.Stats{
		TotalInventoryItems: len(s.items),
	}
	for _, it := range s.items {
		if it.Status == inventory.StatusLowStock || it.Status == inventory.StatusOutOfStock {
			stats.LowStockItems++
		}
	}
	for _, o := range s.orders {
		if o.Status == order.StatusPending {
			stats.PendingOrders++
		}
	}
	for _, sh := range s.shipments {
		if sh.Status == shipment.StatusPending || sh.Status == shipment.StatusInTransit {
			stats.ActiveShipments++
		}
	}
	s.mu.RUnlock()

	recent, err := a.RecentActivities(ctx, 5)
	if err != nil {
		return nil, err
	}
	stats.RecentActivities = recent
	return &stats, nil
}

func (a *DashboardStore) RecentActivities(_ context.Context, limit int) ([]dashboard.Activity, error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]dashboard.Activity, len(s.activities))
	copy(out, s.activities)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
