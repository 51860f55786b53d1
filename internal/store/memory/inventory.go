package memory

import (
	"context"
	"fmt"

	"github.com/godcandidate/warehouse-management-app/internal/composer"
	"github.com/godcandidate/warehouse-management-app/internal/listview"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/inventory"
)

// InventoryStore adapts the shared store to the inventory usecase.
type InventoryStore struct {
	s *Store
}

var _ inventory.Store = (*InventoryStore)(nil)

func NewInventoryStore(s *Store) *InventoryStore {
	return &InventoryStore{s: s}
}

func (a *InventoryStore) Create(ctx context.Context, in inventory.CreateInput) (*inventory.Item, error) {
	s := a.s
	s.mu.Lock()
	defer s.mu.Unlock()

	cat := s.categoryByID(in.CategoryID)
	if cat == nil {
		return nil, inventory.ErrCategoryMissing
	}

	item := inventory.Item{
		ID:           s.newID(),
		Name:         in.Name,
		SKU:          in.SKU,
		CategoryID:   cat.ID,
		CategoryName: cat.Name,
		Description:  in.Description,
		Quantity:     in.Quantity,
		UnitPrice:    in.UnitPrice,
		Location:     in.Location,
		Threshold:    in.Threshold,
		LastUpdated:  s.now(),
		Status:       inventory.DeriveStatus(in.Quantity, in.Threshold),
	}
	s.items = append(s.items, item)
	s.record(ctx, "inventory", "create", fmt.Sprintf("Added inventory item %q", item.Name))
	return &item, nil
}

func (a *InventoryStore) GetByID(_ context.Context, id string) (*inventory.Item, error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, inventory.ErrNotFound
}

func (a *InventoryStore) List(_ context.Context, q listview.Query) (listview.Page[inventory.Item], error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	category := q.Filter("categoryId")
	status := q.Filter("status")

	filtered := make([]inventory.Item, 0, len(s.items))
	for _, it := range s.items {
		if category != "" && it.CategoryID != category {
			continue
		}
		if status != "" && it.Status != status {
			continue
		}
		if !q.MatchSearch(it.Name, it.SKU, it.Description) {
			continue
		}
		filtered = append(filtered, it)
	}
	return listview.Paginate(filtered, q), nil
}

func (a *InventoryStore) Update(ctx context.Context, id string, in inventory.UpdateInput) (*inventory.Item, error) {
	s := a.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		it := &s.items[i]

		if in.Name != nil {
			it.Name = *in.Name
		}
		if in.SKU != nil {
			it.SKU = *in.SKU
		}
		if in.CategoryID != nil && *in.CategoryID != "" {
			cat := s.categoryByID(*in.CategoryID)
			if cat == nil {
				return nil, inventory.ErrCategoryMissing
			}
			it.CategoryID = cat.ID
			it.CategoryName = cat.Name
		}
		if in.Description != nil {
			it.Description = *in.Description
		}
		if in.Quantity != nil {
			it.Quantity = *in.Quantity
		}
		if in.UnitPrice != nil {
			it.UnitPrice = *in.UnitPrice
		}
		if in.Location != nil {
			it.Location = *in.Location
		}
		if in.Threshold != nil {
			it.Threshold = *in.Threshold
		}
		it.Status = inventory.DeriveStatus(it.Quantity, it.Threshold)
		it.LastUpdated = s.now()

		s.record(ctx, "inventory", "update", fmt.Sprintf("Updated inventory item %q", it.Name))
		out := *it
		return &out, nil
	}
	return nil, inventory.ErrNotFound
}

func (a *InventoryStore) Delete(ctx context.Context, id string) error {
	s := a.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			name := s.items[i].Name
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.record(ctx, "inventory", "delete", fmt.Sprintf("Deleted inventory item %q", name))
			return nil
		}
	}
	return inventory.ErrNotFound
}

func (a *InventoryStore) Categories(_ context.Context) ([]inventory.Category, error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]inventory.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

func (a *InventoryStore) CategoryByID(_ context.Context, id string) (*inventory.Category, error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	if cat := s.categoryByID(id); cat != nil {
		out := *cat
		return &out, nil
	}
	return nil, inventory.ErrCategoryMissing
}

func (a *InventoryStore) AllItems(_ context.Context) ([]inventory.Item, error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]inventory.Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

// catalogItem must be called with s.mu held.
func (s *Store) catalogItem(itemID string) (*composer.CatalogItem, error) {
	for _, it := range s.items {
		if it.ID == itemID {
			return &composer.CatalogItem{
				ID:        it.ID,
				Name:      it.Name,
				SKU:       it.SKU,
				UnitPrice: it.UnitPrice,
				Available: it.Quantity,
			}, nil
		}
	}
	return nil, inventory.ErrNotFound
}

// categoryByID must be called with s.mu held.
func (s *Store) categoryByID(id string) *inventory.Category {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return &s.categories[i]
		}
	}
	return nil
}
