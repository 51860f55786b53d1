package app

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/godcandidate/warehouse-management-app/internal/config"
	httpdelivery "github.com/godcandidate/warehouse-management-app/internal/delivery/http"
	"github.com/godcandidate/warehouse-management-app/internal/store/memory"
)

type App struct {
	f   *fiber.App
	cfg config.Config
}

func New() *App {
	cfg := config.Load()

	store := memory.New()
	if cfg.SeedDemoData {
		store.Seed()
	}

	f := fiber.New(fiber.Config{
		AppName: "warehouse-management-app",
	})

	f.Use(recover.New())
	f.Use(logger.New())

	httpdelivery.RegisterRoutes(f, cfg, store)

	return &App{f: f, cfg: cfg}
}

func (a *App) Run() error {
	return a.f.Listen(":" + a.cfg.Port)
}
