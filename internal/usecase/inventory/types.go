package inventory

import "time"

const (
	StatusInStock    = "in-stock"
	StatusLowStock   = "low-stock"
	StatusOutOfStock = "out-of-stock"
)

// Item is one catalog entry. CategoryID is the canonical reference;
// CategoryName is resolved from the category lookup and denormalized for
// display. Status is always derived from Quantity and Threshold, never set
// directly.
type Item struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	CategoryID   string    `json:"categoryId"`
	CategoryName string    `json:"category"`
	Description  string    `json:"description"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unitPrice"`
	Location     string    `json:"location"`
	Threshold    int       `json:"threshold"`
	LastUpdated  time.Time `json:"lastUpdated"`
	Status       string    `json:"status"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateInput struct {
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	CategoryID  string  `json:"categoryId"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Location    string  `json:"location"`
	Threshold   int     `json:"threshold"`
}

type UpdateInput struct {
	Name        *string  `json:"name"`
	SKU         *string  `json:"sku"`
	CategoryID  *string  `json:"categoryId"`
	Description *string  `json:"description"`
	Quantity    *int     `json:"quantity"`
	UnitPrice   *float64 `json:"unitPrice"`
	Location    *string  `json:"location"`
	Threshold   *int     `json:"threshold"`
}

type Statistics struct {
	TotalItems      int            `json:"totalItems"`
	LowStockItems   int            `json:"lowStockItems"`
	OutOfStockItems int            `json:"outOfStockItems"`
	CategoryCounts  map[string]int `json:"categoryCounts"`
}

// DeriveStatus computes the stock status from quantity and threshold.
func DeriveStatus(quantity, threshold int) string {
	switch {
	case quantity <= 0:
		return StatusOutOfStock
	case quantity <= threshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}
