package controllers

import (
	"fmt"
	"net/http"

	"go.uber.org/multierr"

	"github.com/dailyneed/storefront-backend/api/responses"
	"github.com/dailyneed/storefront-backend/pkg/config"
	"github.com/dailyneed/storefront-backend/pkg/db"
	pkgerrors "github.com/dailyneed/storefront-backend/pkg/errors"
	"github.com/dailyneed/storefront-backend/pkg/logger"
	"github.com/dailyneed/storefront-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-DailyNeed-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every backing store and reports all failures at once
// rather than stopping at the first.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-DailyNeed-Env", cfg.App.Env)

		var err error
		if dbP != nil {
			if pingErr := dbP.Ping(r.Context()); pingErr != nil {
				err = multierr.Append(err, fmt.Errorf("db: %w", pingErr))
			}
		}
		if redisP != nil {
			if pingErr := redisP.Ping(r.Context()); pingErr != nil {
				err = multierr.Append(err, fmt.Errorf("redis: %w", pingErr))
			}
		}

		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "readiness check failed"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
