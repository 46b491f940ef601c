package service

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/minimartlabs/minimart/health/internal/otel"
	"github.com/minimartlabs/minimart/internal/log"
	inOtel "github.com/minimartlabs/minimart/internal/otel"
	"github.com/minimartlabs/minimart/internal/repository"
)

type HealthService struct {
	store repository.Store
	cache *redis.Client
}

func NewHealthService(store repository.Store, cache *redis.Client) HealthService {
	return HealthService{store: store, cache: cache}
}

// Check probes the database and the cache directly so the endpoint reports
// liveness of the process and readiness of its backing stores.
func (svc HealthService) Check(c context.Context) error {
	c, span := otel.Tracer.Start(c, "HealthService Check")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Ctx(c).
		Str(log.KeyTag, "HealthService Check").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "pinging database").Logger()
	logger.Trace().Msg("pinging database")
	span.AddEvent("pinging database")
	if err := svc.store.Ping(c); err != nil {
		err = fmt.Errorf("failed pinging database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	span.AddEvent("pinged database")
	logger.Info().Msg("pinged database")

	logger = logger.With().Str(log.KeyProcess, "pinging cache").Logger()
	logger.Trace().Msg("pinging cache")
	span.AddEvent("pinging cache")
	if err := svc.cache.Ping(c).Err(); err != nil {
		err = fmt.Errorf("failed pinging cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	span.AddEvent("pinged cache")
	logger.Info().Msg("pinged cache")

	return nil
}
