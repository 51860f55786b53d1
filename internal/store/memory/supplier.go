package memory

import (
	"context"
	"fmt"

	"github.com/godcandidate/warehouse-management-app/internal/listview"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/supplier"
)

// SupplierStore adapts the shared store to the supplier usecase.
type SupplierStore struct {
	s *Store
}

var _ supplier.Store = (*SupplierStore)(nil)

func NewSupplierStore(s *Store) *SupplierStore {
	return &SupplierStore{s: s}
}

func (a *SupplierStore) Create(ctx context.Context, in supplier.CreateInput) (*supplier.Supplier, error) {
	s := a.s
	s.mu.Lock()
	defer s.mu.Unlock()

	sup := supplier.Supplier{
		ID:            s.newID(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		Status:        in.Status,
	}
	s.suppliers = append(s.suppliers, sup)
	s.record(ctx, "procurement", "create", fmt.Sprintf("Added supplier %q", sup.Name))
	return &sup, nil
}

func (a *SupplierStore) GetByID(_ context.Context, id string) (*supplier.Supplier, error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			sup := s.suppliers[i]
			return &sup, nil
		}
	}
	return nil, supplier.ErrNotFound
}

func (a *SupplierStore) List(_ context.Context, q listview.Query) (listview.Page[supplier.Supplier], error) {
	s := a.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := q.Filter("status")

	filtered := make([]supplier.Supplier, 0, len(s.suppliers))
	for _, sup := range s.suppliers {
		if status != "" && sup.Status != status {
			continue
		}
		if !q.MatchSearch(sup.Name, sup.ContactPerson, sup.Email) {
			continue
		}
		filtered = append(filtered, sup)
	}
	return listview.Paginate(filtered, q), nil
}

func (a *SupplierStore) Update(ctx context.Context, id string, in supplier.UpdateInput) (*supplier.Supplier, error) {
	s := a.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.suppliers {
		if s.suppliers[i].ID != id {
			continue
		}
		sup := &s.suppliers[i]

		if in.Name != nil {
			sup.Name = *in.Name
		}
		if in.ContactPerson != nil {
			sup.ContactPerson = *in.ContactPerson
		}
		if in.Email != nil {
			sup.Email = *in.Email
		}
		if in.Phone != nil {
			sup.Phone = *in.Phone
		}
		if in.Address != nil {
			sup.Address = *in.Address
		}
		if in.Status != nil {
			sup.Status = *in.Status
		}

		s.record(ctx, "procurement", "update", fmt.Sprintf("Updated supplier %q", sup.Name))
		out := *sup
		return &out, nil
	}
	return nil, supplier.ErrNotFound
}
