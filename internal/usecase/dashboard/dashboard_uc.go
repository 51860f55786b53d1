package dashboard

import (
	"context"
	"time"
)

type Stats struct {
	TotalInventoryItems int        `json:"totalInventoryItems"`
	LowStockItems       int        `json:"lowStockItems"`
	PendingOrders       int        `json:"pendingOrders"`
	ActiveShipments     int        `json:"activeShipments"`
	RecentActivities    []Activity `json:"recentActivities"`
}

// Activity is one audit-trail entry recorded by the store on every mutation.
type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // inventory | procurement | shipment
	Action      string    `json:"action"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
}

type Store interface {
	Stats(ctx context.Context) (*Stats, error)
	RecentActivities(ctx context.Context, limit int) ([]Activity, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func (u *Usecase) Stats(ctx context.Context) (*Stats, error) {
	stats, err := u.store.Stats(ctx)
	if err != nil {
		return nil, err
	}
	if stats.RecentActivities == nil {
		stats.RecentActivities = []Activity{}
	}
	return stats, nil
}

func (u *Usecase) RecentActivities(ctx context.Context, limit int) ([]Activity, error) {
	if limit <= 0 || limit > 50 {
		limit = 5
	}
	return u.store.RecentActivities(ctx, limit)
}
