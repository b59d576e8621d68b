package main

import (
	"context"

	"hoteldash/internal/reservations/handler"
	"hoteldash/internal/reservations/repository"
	"hoteldash/internal/reservations/service"
	"hoteldash/internal/reservations/validator"
	"hoteldash/pkg/app"
	"hoteldash/pkg/config"
)

const ServiceName = "hoteldash"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting hotel reservation dashboard")
	store := loadStore(cfg)
	dashboardService := initServices(cfg, store)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewHealthHandler(cfg.Client, store.Len(), cfg.Log),
		handler.NewPageHandler(dashboardService, cfg.Log, cfg.MaxTableRows),
		handler.NewDashboardHandler(dashboardService, cfg.Log, cfg.MaxTableRows),
	)
	serverApp.Run()
}

// loadStore reads the dataset before anything is served. Without it there
// is nothing to render, so every failure here is fatal.
func loadStore(cfg *config.Config) *repository.Store {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout+cfg.ReadTimeout)
	defer cancel()

	var loader repository.Loader
	switch cfg.DataSource {
	case config.SourceMongo:
		if err := cfg.SetMongo(); err != nil {
			cfg.Log.Fatal("Reservation data unavailable", "source", config.SourceMongo, "error", err)
		}
		loader = repository.NewMongoLoader(cfg)
	default:
		loader = repository.NewCSVLoader(cfg.DataPath)
	}

	store, err := repository.Open(ctx, loader, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Reservation data unavailable", "source", loader.Source(), "error", err)
	}
	return store
}

func initServices(cfg *config.Config, store *repository.Store) service.DashboardService {
	engine := service.NewEngine(cfg.Log, service.WithEmptyResultFallback(cfg.EmptyResultFallback))
	dashboardService := service.NewDashboardService(
		store,
		engine,
		validator.NewChartValidator(cfg.Log),
		cfg.Log,
	)

	cfg.Log.Info("Dashboard service initialized",
		"rows", store.Len(),
		"empty_result_fallback", cfg.EmptyResultFallback,
	)
	return dashboardService
}
