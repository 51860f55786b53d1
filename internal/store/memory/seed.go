package memory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/godcandidate/warehouse-management-app/internal/composer"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/auth"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/inventory"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/order"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/shipment"
	"github.com/godcandidate/warehouse-management-app/internal/usecase/supplier"
)

// Seed loads a deterministic demo dataset: fixed ids and dates so tests and
// demos behave the same on every run. Replaces any existing data.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	// MinCost: these are demo credentials, not real secrets.
	hash := func(pw string) string {
		h, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
		return string(h)
	}

	s.users = []auth.User{
		{ID: "usr-admin", Username: "admin", Email: "admin@example.com", Role: auth.RoleAdmin,
			FirstName: "Admin", LastName: "User", PasswordHash: hash("admin123")},
		{ID: "usr-manager", Username: "manager", Email: "manager@example.com", Role: auth.RoleManager,
			FirstName: "Manager", LastName: "User", PasswordHash: hash("manager123")},
		{ID: "usr-staff", Username: "staff", Email: "staff@example.com", Role: auth.RoleStaff,
			FirstName: "Staff", LastName: "User", PasswordHash: hash("staff123")},
	}

	s.categories = []inventory.Category{
		{ID: "cat-electronics", Name: "Electronics", Description: "Electronic devices and components"},
		{ID: "cat-office", Name: "Office Supplies", Description: "Office stationery and supplies"},
		{ID: "cat-furniture", Name: "Furniture", Description: "Office and warehouse furniture"},
		{ID: "cat-tools", Name: "Tools", Description: "Hand tools and power tools"},
		{ID: "cat-packaging", Name: "Packaging", Description: "Packaging materials and supplies"},
	}

	seeded := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	item := func(id, name, sku, categoryID, description string, qty int, price float64, location string, threshold int) inventory.Item {
		return inventory.Item{
			ID:           id,
			Name:         name,
			SKU:          sku,
			CategoryID:   categoryID,
			CategoryName: s.categoryByID(categoryID).Name,
			Description:  description,
			Quantity:     qty,
			UnitPrice:    price,
			Location:     location,
			Threshold:    threshold,
			LastUpdated:  seeded,
			Status:       inventory.DeriveStatus(qty, threshold),
		}
	}
	s.items = []inventory.Item{
		item("itm-laptop", "Laptop", "ELEC-001", "cat-electronics",
			"Business laptop with 16GB RAM, 512GB SSD", 25, 1200, "Warehouse A, Shelf 1", 10),
		item("itm-chair", "Office Chair", "FURN-001", "cat-furniture",
			"Ergonomic office chair with adjustable height", 8, 250, "Warehouse B, Shelf 3", 10),
		item("itm-printer", "Printer", "ELEC-002", "cat-electronics",
			"Color laser printer", 12, 350, "Warehouse A, Shelf 2", 5),
		item("itm-clips", "Paper Clips", "OFSP-001", "cat-office",
			"Box of 100 paper clips", 0, 2.5, "Warehouse A, Shelf 5", 20),
		item("itm-tape", "Packing Tape", "PACK-001", "cat-packaging",
			"Heavy duty packing tape, 50m roll", 35, 4.75, "Warehouse B, Shelf 1", 15),
		item("itm-drill", "Power Drill", "TOOL-001", "cat-tools",
			"Cordless power drill, 18V", 6, 89.99, "Warehouse B, Shelf 4", 8),
	}

	s.suppliers = []supplier.Supplier{
		{ID: "sup-tech", Name: "Tech Supplies Co", ContactPerson: "Jordan Reyes",
			Email: "sales@techsupplies.example.com", Phone: "555-0101",
			Address: "12 Industrial Way", Status: supplier.StatusActive},
		{ID: "sup-office", Name: "Office Essentials Ltd", ContactPerson: "Sam Okafor",
			Email: "orders@officeessentials.example.com", Phone: "555-0102",
			Address: "34 Commerce Street", Status: supplier.StatusActive},
		{ID: "sup-global", Name: "Global Packaging Inc", ContactPerson: "Lee Tanaka",
			Email: "contact@globalpack.example.com", Phone: "555-0103",
			Address: "56 Harbor Road", Status: supplier.StatusInactive},
	}

	// Order and shipment lines go through the composer so seeded totals obey
	// the same invariants as everything else.
	orderLines := func(picks ...composer.Line) ([]composer.Line, float64) {
		comp := composer.NewOrder()
		for _, p := range picks {
			ci, _ := s.catalogItem(p.ItemID)
			comp.Select(ci)
			comp.SetQuantity(p.Quantity)
			if p.UnitPrice > 0 {
				comp.SetUnitPrice(p.UnitPrice)
			}
			comp.Commit()
		}
		return comp.Lines(), comp.Total()
	}

	poLines1, poTotal1 := orderLines(
		composer.Line{ItemID: "itm-laptop", Quantity: 5},
		composer.Line{ItemID: "itm-printer", Quantity: 2},
	)
	poLines2, poTotal2 := orderLines(
		composer.Line{ItemID: "itm-chair", Quantity: 10},
	)
	s.orders = []order.Order{
		{
			ID: "po-1", SupplierID: "sup-tech", SupplierName: "Tech Supplies Co",
			OrderDate:            seeded,
			ExpectedDeliveryDate: seeded.AddDate(0, 0, 14),
			Status:               order.StatusPending,
			Items:                poLines1,
			TotalAmount:          poTotal1,
			CreatedAt:            seeded, UpdatedAt: seeded,
		},
		{
			ID: "po-2", SupplierID: "sup-office", SupplierName: "Office Essentials Ltd",
			OrderDate:            seeded.AddDate(0, 0, 2),
			ExpectedDeliveryDate: seeded.AddDate(0, 0, 16),
			Status:               order.StatusApproved,
			Items:                poLines2,
			TotalAmount:          poTotal2,
			CreatedAt:            seeded.AddDate(0, 0, 2), UpdatedAt: seeded.AddDate(0, 0, 3),
		},
	}

	shipLines := func(picks ...composer.Line) []composer.Line {
		comp := composer.NewShipment()
		for _, p := range picks {
			ci, _ := s.catalogItem(p.ItemID)
			comp.Select(ci)
			comp.SetQuantity(p.Quantity)
			comp.Commit()
		}
		return comp.Lines()
	}

	s.shipments = []shipment.Shipment{
		{
			ID: "shp-1", ReferenceNumber: "SHIP-000101",
			Origin: "Warehouse A", Destination: "Retail Store 12",
			ShipmentDate:        seeded.AddDate(0, 0, 1),
			ExpectedArrivalDate: seeded.AddDate(0, 0, 6),
			Status:              shipment.StatusInTransit,
			Items: shipLines(
				composer.Line{ItemID: "itm-tape", Quantity: 20},
				composer.Line{ItemID: "itm-printer", Quantity: 1},
			),
			CreatedAt: seeded.AddDate(0, 0, 1), UpdatedAt: seeded.AddDate(0, 0, 2),
		},
		{
			ID: "shp-2", ReferenceNumber: "SHIP-000102",
			Origin: "Warehouse B", Destination: "Retail Store 7",
			ShipmentDate:        seeded.AddDate(0, 0, 3),
			ExpectedArrivalDate: seeded.AddDate(0, 0, 8),
			Status:              shipment.StatusPending,
			Items: shipLines(
				composer.Line{ItemID: "itm-drill", Quantity: 2},
			),
			CreatedAt: seeded.AddDate(0, 0, 3), UpdatedAt: seeded.AddDate(0, 0, 3),
		},
	}

	s.reports = nil
	s.activities = nil
}
