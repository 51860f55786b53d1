package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/godcandidate/warehouse-management-app/internal/config"
	authhandler "github.com/godcandidate/warehouse-management-app/internal/delivery/http/handler/auth"
	dashhandler "github.com/godcandidate/warehouse-management-app/internal/delivery/http/handler/dashboard"
	invhandler "github.com/godcandidate/warehouse-management-app/internal/delivery/http/handler/inventory"
	ordhandler "github.com/godcandidate/warehouse-management-app/internal/delivery/http/handler/order"
	rephandler "github.com/godcandidate/warehouse-management-app/internal/delivery/http/handler/report"
	shiphandler "github.com/godcandidate/warehouse-management-app/internal/delivery/http/handler/shipment"
	suphandler "github.com/godcandidate/warehouse-management-app/internal/delivery/http/handler/supplier"
	"github.com/godcandidate/warehouse-management-app/internal/delivery/middleware"
	"github.com/godcandidate/warehouse-management-app/internal/store/memory"
	authuc "github.com/godcandidate/warehouse-management-app/internal/usecase/auth"
	dashuc "github.com/godcandidate/warehouse-management-app/internal/usecase/dashboard"
	invuc "github.com/godcandidate/warehouse-management-app/internal/usecase/inventory"
	orduc "github.com/godcandidate/warehouse-management-app/internal/usecase/order"
	repuc "github.com/godcandidate/warehouse-management-app/internal/usecase/report"
	shipuc "github.com/godcandidate/warehouse-management-app/internal/usecase/shipment"
	supuc "github.com/godcandidate/warehouse-management-app/internal/usecase/supplier"
)

func RegisterRoutes(app *fiber.App, cfg config.Config, store *memory.Store) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	api := app.Group("/api")

	// Auth wiring
	authUC := authuc.New(memory.NewUserStore(store), cfg.JWTSecret, cfg.JWTExpiresMinutes)
	authH := authhandler.New(authUC)

	// Public routes
	api.Post("/auth/login", authH.Login)
	api.Post("/auth/register", authH.Register)

	// Everything else requires a session
	protected := api.Group("", middleware.RequireAuth(middleware.JWTConfig{
		Secret: cfg.JWTSecret,
	}))

	protected.Get("/auth/me", authH.Me)

	// Inventory wiring
	invUC := invuc.New(memory.NewInventoryStore(store))
	invH := invhandler.New(invUC)

	protected.Get("/inventory", invH.List)
	protected.Post("/inventory", invH.Create)
	protected.Get("/inventory/statistics", invH.Statistics)
	protected.Get("/inventory/categories", invH.Categories)
	protected.Get("/inventory/:id", invH.Get)
	protected.Patch("/inventory/:id", invH.Update)
	protected.Delete("/inventory/:id", invH.Delete)

	// Supplier wiring
	supUC := supuc.New(memory.NewSupplierStore(store))
	supH := suphandler.New(supUC)

	protected.Get("/suppliers", supH.List)
	protected.Post("/suppliers", supH.Create)
	protected.Get("/suppliers/:id", supH.Get)
	protected.Patch("/suppliers/:id", supH.Update)

	// Purchase order wiring
	ordUC := orduc.New(memory.NewOrderStore(store))
	ordH := ordhandler.New(ordUC)

	protected.Get("/purchase-orders", ordH.List)
	protected.Post("/purchase-orders", ordH.Create)
	protected.Get("/purchase-orders/:id", ordH.Get)
	protected.Put("/purchase-orders/:id", ordH.Update)
	protected.Patch("/purchase-orders/:id/status", ordH.UpdateStatus)

	// Shipment wiring
	shipUC := shipuc.New(memory.NewShipmentStore(store))
	shipH := shiphandler.New(shipUC)

	protected.Get("/shipments", shipH.List)
	protected.Post("/shipments", shipH.Create)
	protected.Get("/shipments/:id", shipH.Get)
	protected.Put("/shipments/:id", shipH.Update)
	protected.Patch("/shipments/:id/status", shipH.UpdateStatus)

	// Report wiring
	repUC := repuc.New(memory.NewReportStore(store))
	repH := rephandler.New(repUC)

	protected.Post("/reports/generate", repH.Generate)
	protected.Post("/reports", repH.Save)
	protected.Get("/reports", repH.List)
	protected.Get("/reports/:id", repH.Get)

	// Dashboard wiring
	dashUC := dashuc.New(memory.NewDashboardStore(store))
	dashH := dashhandler.New(dashUC)

	protected.Get("/dashboard/stats", dashH.Stats)
	protected.Get("/dashboard/activities", dashH.Activities)
}
