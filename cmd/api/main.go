package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/crustcraft/crustcraft-backend/api/routes"
	"github.com/crustcraft/crustcraft-backend/internal/auth"
	"github.com/crustcraft/crustcraft-backend/internal/cart"
	"github.com/crustcraft/crustcraft-backend/internal/categories"
	"github.com/crustcraft/crustcraft-backend/internal/franchise"
	"github.com/crustcraft/crustcraft-backend/internal/menu"
	"github.com/crustcraft/crustcraft-backend/internal/offers"
	"github.com/crustcraft/crustcraft-backend/internal/outlets"
	"github.com/crustcraft/crustcraft-backend/pkg/config"
	"github.com/crustcraft/crustcraft-backend/pkg/db"
	"github.com/crustcraft/crustcraft-backend/pkg/logger"
	"github.com/crustcraft/crustcraft-backend/pkg/metrics"
	"github.com/crustcraft/crustcraft-backend/pkg/migrate"
	"github.com/crustcraft/crustcraft-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	authService, err := auth.NewService(auth.ServiceParams{
		Repo:     auth.NewRepository(dbClient.DB()),
		Logger:   logg,
		JWT:      cfg.JWT,
		Password: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	categoryService, err := categories.NewService(categories.ServiceParams{
		Repo: categories.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create category service", err)
		os.Exit(1)
	}

	menuService, err := menu.NewService(menu.ServiceParams{
		Repo:       menu.NewRepository(dbClient.DB()),
		Categories: categoryService,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create menu service", err)
		os.Exit(1)
	}

	offerService, err := offers.NewService(offers.ServiceParams{
		Repo: offers.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create offer service", err)
		os.Exit(1)
	}

	outletService, err := outlets.NewService(outlets.ServiceParams{
		Repo: outlets.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create outlet service", err)
		os.Exit(1)
	}

	franchiseService, err := franchise.NewService(franchise.ServiceParams{
		Repo:   franchise.NewRepository(dbClient.DB()),
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create franchise service", err)
		os.Exit(1)
	}

	cartStore, err := cart.NewRedisStore(redisClient, cfg.Cart.SessionTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(cartStore, outletService, logg, cart.ServiceOptions{
		Delivery: cart.DeliveryPolicy{
			FlatFee:   cfg.Delivery.FlatFeeRupees,
			FreeAbove: cfg.Delivery.FreeAboveRupees,
		},
		BusinessName: cfg.Business.Name,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, httpMetrics, routes.Services{
			Auth:       authService,
			Categories: categoryService,
			Menu:       menuService,
			Offers:     offerService,
			Outlets:    outletService,
			Franchise:  franchiseService,
			Cart:       cartService,
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}
