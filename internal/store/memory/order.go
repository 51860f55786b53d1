package memory

import (
	"context"
	"fmt"

	"github.com/godcandidate/warehouse-management-app/internal/composer"
	"github.com/godcandidate/warehouse-management-app/internal/listview"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/order"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/supplier"
)

// OrderStore adapts the shared store to the purchase order usecase.
type OrderStore struct {
	s *Store
}

var _ order.Store = (*OrderStore)(nil)

func NewOrderStore(s *Store) *OrderStore {
	return &OrderStore{s: s}
}

func (a *OrderStore) SupplierName(_ context.Context, supplierID string) (string, error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sup := range s.suppliers {
		if sup.ID == supplierID {
			return sup.Name, nil
		}
	}
	return "", supplier.ErrNotFound
}

func (a *OrderStore) CatalogItem(_ context.Context, itemID string) (*composer.CatalogItem, error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalogItem(itemID)
}

func (a *OrderStore) Create(ctx context.Context, o *order.Order) (*order.Order, error) {
	s := a.s
	s.mu.Lock()
	defer s.mu.Unlock()

	out := *o
	out.ID = s.newID()
	out.CreatedAt = s.now()
	out.UpdatedAt = out.CreatedAt

	s.orders = append(s.orders, out)
	s.record(ctx, "procurement", "create",
		fmt.Sprintf("Created purchase order for %q (%d items)", out.SupplierName, len(out.Items)))
	return &out, nil
}

func (a *OrderStore) GetByID(_ context.Context, id string) (*order.Order, error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			o := s.orders[i]
			return &o, nil
		}
	}
	return nil, order.ErrNotFound
}

func (a *OrderStore) List(_ context.Context, q listview.Query) (listview.Page[order.Order], error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	supplierID := q.Filter("supplierId")
	status := q.Filter("status")

	filtered := make([]order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if supplierID != "" && o.SupplierID != supplierID {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		if !q.MatchSearch(o.SupplierName, o.ID) {
			continue
		}
		filtered = append(filtered, o)
	}
	return listview.Paginate(filtered, q), nil
}

func (a *OrderStore) Update(ctx context.Context, id string, o *order.Order) (*order.Order, error) {
	s := a.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		out := *o
		out.ID = id
		out.CreatedAt = s.orders[i].CreatedAt
		out.UpdatedAt = s.now()
		s.orders[i] = out

		s.record(ctx, "procurement", "update",
			fmt.Sprintf("Updated purchase order %s for %q", id, out.SupplierName))
		return &out, nil
	}
	return nil, order.ErrNotFound
}

func (a *OrderStore) UpdateStatus(ctx context.Context, id string, status string) (*order.Order, error) {
	s := a.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		s.orders[i].Status = status
		s.orders[i].UpdatedAt = s.now()
		out := s.orders[i]

		s.record(ctx, "procurement", "status",
			fmt.Sprintf("Purchase order %s marked %s", id, status))
		return &out, nil
	}
	return nil, order.ErrNotFound
}
