package memory

import (
	"context"
	"fmt"

	"github.com/godcandidate/warehouse-management-app/internal/composer"
	"github.com/godcandidate/warehouse-management-app/internal/listview"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/shipment"
)

// ShipmentStore adapts the shared store to the shipment usecase.
type ShipmentStore struct {
	s *Store
}

var _ shipment.Store = (*ShipmentStore)(nil)

func NewShipmentStore(s *Store) *ShipmentStore {
	return &ShipmentStore{s: s}
}

func (a *ShipmentStore) CatalogItem(_ context.Context, itemID string) (*composer.CatalogItem, error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalogItem(itemID)
}

func (a *ShipmentStore) Create(ctx context.Context, sh *shipment.Shipment) (*shipment.Shipment, error) {
	s := a.s
	s.mu.Lock()
	defer s.mu.Unlock()

	out := *sh
	out.ID = s.newID()
	out.CreatedAt = s.now()
	out.UpdatedAt = out.CreatedAt

	s.shipments = append(s.shipments, out)
	s.record(ctx, "shipment", "create",
		fmt.Sprintf("Created shipment %s to %q", out.ReferenceNumber, out.Destination))
	return &out, nil
}

func (a *ShipmentStore) GetByID(_ context.Context, id string) (*shipment.Shipment, error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.shipments {
		if s.shipments[i].ID == id {
			sh := s.shipments[i]
			return &sh, nil
		}
	}
	return nil, shipment.ErrNotFound
}

func (a *ShipmentStore) List(_ context.Context, q listview.Query) (listview.Page[shipment.Shipment], error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := q.Filter("status")

	filtered := make([]shipment.Shipment, 0, len(s.shipments))
	for _, sh := range s.shipments {
		if status != "" && sh.Status != status {
			continue
		}
		if !q.MatchSearch(sh.ReferenceNumber, sh.Origin, sh.Destination) {
			continue
		}
		filtered = append(filtered, sh)
	}
	return listview.Paginate(filtered, q), nil
}

func (a *ShipmentStore) Update(ctx context.Context, id string, sh *shipment.Shipment) (*shipment.Shipment, error) {
	s := a.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.shipments {
		if s.shipments[i].ID != id {
			continue
		}
		out := *sh
		out.ID = id
		out.CreatedAt = s.shipments[i].CreatedAt
		out.UpdatedAt = s.now()
		s.shipments[i] = out

		s.record(ctx, "shipment", "update",
			fmt.Sprintf("Updated shipment %s", out.ReferenceNumber))
		return &out, nil
	}
	return nil, shipment.ErrNotFound
}

func (a *ShipmentStore) UpdateStatus(ctx context.Context, id string, status string) (*shipment.Shipment, error) {
	s := a.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.shipments {
		if s.shipments[i].ID != id {
			continue
		}
		s.shipments[i].Status = status
		s.shipments[i].UpdatedAt = s.now()
		out := s.shipments[i]

		s.record(ctx, "shipment", "status",
			fmt.Sprintf("Shipment %s marked %s", out.ReferenceNumber, status))
		return &out, nil
	}
	return nil, shipment.ErrNotFound
}
