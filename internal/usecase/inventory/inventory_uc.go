package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/godcandidate/warehouse-management-app/internal/listview"
	"github.com/godcandidate/warehouse-management-app/internal/validation"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("item not found")
	ErrCategoryMissing = errors.New("category not found")
)

type Store interface {
	Create(ctx context.Context, in CreateInput) (*Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context, q listview.Query) (listview.Page[Item], error)
	Update(ctx context.Context, id string, in UpdateInput) (*Item, error)
	Delete(ctx context.Context, id string) error

	Categories(ctx context.Context) ([]Category, error)
	CategoryByID(ctx context.Context, id string) (*Category, error)

	// AllItems returns the full unfiltered catalog, used for statistics.
	AllItems(ctx context.Context) ([]Item, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*Item, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.TrimSpace(in.SKU)

	ve := validation.Errors{}
	ve.Require("name", in.Name)
	ve.Require("sku", in.SKU)
	ve.Require("categoryId", in.CategoryID)
	if in.Quantity < 0 {
		ve.Add("quantity", "quantity must not be negative")
	}
	if in.UnitPrice < 0 {
		ve.Add("unitPrice", "unit price must not be negative")
	}
	if in.Threshold < 0 {
		ve.Add("threshold", "threshold must not be negative")
	}
	if ve.Any() {
		return nil, ve
	}

	if _, err := u.store.CategoryByID(ctx, in.CategoryID); err != nil {
		return nil, ErrCategoryMissing
	}

	return u.store.Create(ctx, in)
}

func (u *Usecase) GetByID(ctx context.Context, id string) (*Item, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return u.store.GetByID(ctx, id)
}

func (u *Usecase) List(ctx context.Context, q listview.Query) (listview.Page[Item], error) {
	return u.store.List(ctx, q.Normalize())
}

func (u *Usecase) Update(ctx context.Context, id string, in UpdateInput) (*Item, error) {
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
	if in.SKU != nil {
		s := strings.TrimSpace(*in.SKU)
		if s == "" {
			ve.Add("sku", "sku is required")
		}
		in.SKU = &s
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		ve.Add("quantity", "quantity must not be negative")
	}
	if in.UnitPrice != nil && *in.UnitPrice < 0 {
		ve.Add("unitPrice", "unit price must not be negative")
	}
	if ve.Any() {
		return nil, ve
	}

	if in.CategoryID != nil && *in.CategoryID != "" {
		if _, err := u.store.CategoryByID(ctx, *in.CategoryID); err != nil {
			return nil, ErrCategoryMissing
		}
	}

	return u.store.Update(ctx, id, in)
}

func (u *Usecase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	return u.store.Delete(ctx, id)
}

func (u *Usecase) Categories(ctx context.Context) ([]Category, error) {
	return u.store.Categories(ctx)
}

// Statistics aggregates stock health across the whole catalog.
func (u *Usecase) Statistics(ctx context.Context) (*Statistics, error) {
	items, err := u.store.AllItems(ctx)
	if err != nil {
		return nil, err
	}

	stats := Statistics{
		TotalItems:     len(items),
		CategoryCounts: map[string]int{},
	}
	for _, it := range items {
		switch it.Status {
		case StatusLowStock:
			stats.LowStockItems++
		case StatusOutOfStock:
			stats.OutOfStockItems++
		}
		if it.CategoryName != "" {
			stats.CategoryCounts[it.CategoryName]++
		}
	}
	return &stats, nil
}
