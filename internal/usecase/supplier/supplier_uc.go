package supplier

import (
	"context"
	"errors"
	"strings"

	"github.com/godcandidate/warehouse-management-app/internal/listview"
	"github.com/godcandidate/warehouse-management-app/internal/validation"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("supplier not found")
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Supplier struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Status        string `json:"status"`
}

type CreateInput struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Status        string `json:"status"`
}

type UpdateInput struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contactPerson"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	Status        *string `json:"status"`
}

type Store interface {
	Create(ctx context.Context, in CreateInput) (*Supplier, error)
	GetByID(ctx context.Context, id string) (*Supplier, error)
	List(ctx context.Context, q listview.Query) (listview.Page[Supplier], error)
	Update(ctx context.Context, id string, in UpdateInput) (*Supplier, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*Supplier, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	ve := validation.Errors{}
	ve.Require("name", in.Name)
	ve.Require("email", in.Email)
	if in.Email != "" && !strings.Contains(in.Email, "@") {
		ve.Add("email", "email is invalid")
	}
	if ve.Any() {
		return nil, ve
	}

	if in.Status != StatusActive && in.Status != StatusInactive {
		in.Status = StatusActive
	}

	return u.store.Create(ctx, in)
}

func (u *Usecase) GetByID(ctx context.Context, id string) (*Supplier, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.store.GetByID(ctx, id)
}

func (u *Usecase) List(ctx context.Context, q listview.Query) (listview.Page[Supplier], error) {
	return u.store.List(ctx, q.Normalize())
}

func (u *Usecase) Update(ctx context.Context, id string, in UpdateInput) (*Supplier, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}

	ve := validation.Errors{}
	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		if n == "" {
			ve.Add("name", "name is required")
		}
		in.Name = &n
	}
	if in.Email != nil {
		e := strings.TrimSpace(strings.ToLower(*in.Email))
		if e == "" || !strings.Contains(e, "@") {
			ve.Add("email", "email is invalid")
		}
		in.Email = &e
	}
	if in.Status != nil && *in.Status != StatusActive && *in.Status != StatusInactive {
		ve.Add("status", "status must be active or inactive")
	}
	if ve.Any() {
		return nil, ve
	}

	return u.store.Update(ctx, id, in)
}
