package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/crustcraft/crustcraft-backend/api/responses"
	"github.com/crustcraft/crustcraft-backend/pkg/config"
	"github.com/crustcraft/crustcraft-backend/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthLive reports process liveness only.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CrustCraft-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness: the API plus both of its dependencies.
func HealthReady(cfg *config.Config, db pinger, cache pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		w.Header().Set("X-CrustCraft-Env", cfg.App.Env)

		status := map[string]string{
			"api":   "ok",
			"db":    "ok",
			"redis": "ok",
		}
		healthy := true

		if db == nil {
			status["db"] = "unconfigured"
		} else if err := db.Ping(ctx); err != nil {
			status["db"] = "unreachable"
			healthy = false
			logg.Error(ctx, "health.db", err)
		}

		if cache == nil {
			status["redis"] = "unconfigured"
		} else if err := cache.Ping(ctx); err != nil {
			status["redis"] = "unreachable"
			healthy = false
			logg.Error(ctx, "health.redis", err)
		}

		if !healthy {
			responses.WriteSuccessStatus(w, http.StatusServiceUnavailable, status)
			return
		}
		responses.WriteSuccess(w, status)
	}
}
