package order

import (
	"time"

	"github.com/godcandidate/warehouse-management-app/internal/composer"
)

type Order struct {
	ID                   string          `json:"id"`
	SupplierID           string          `json:"supplierId"`
	SupplierName         string          `json:"supplierName"`
	OrderDate            time.Time       `json:"orderDate"`
	ExpectedDeliveryDate time.Time       `json:"expectedDeliveryDate"`
	Status               string          `json:"status"`
	Items                []composer.Line `json:"items"`
	TotalAmount          float64         `json:"totalAmount"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

// Draft is a client-composed purchase order before persistence. Item names
// and totals are never trusted from the draft: the usecase rebuilds every
// line from the catalog on submit.
type Draft struct {
	SupplierID           string      `json:"supplierId"`
	OrderDate            time.Time   `json:"orderDate"`
	ExpectedDeliveryDate time.Time   `json:"expectedDeliveryDate"`
	Status               string      `json:"status"`
	Items                []DraftItem `json:"items"`
}

type DraftItem struct {
	ItemID    string  `json:"itemId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type UpdateStatusInput struct {
	Status string `json:"status"`
}
