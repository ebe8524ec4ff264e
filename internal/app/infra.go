package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/shinewhite/clinic_backend/config"
	"github.com/shinewhite/clinic_backend/internal/store"
	"github.com/shinewhite/clinic_backend/pkg/authorize"
	"github.com/shinewhite/clinic_backend/pkg/email"
	"github.com/shinewhite/clinic_backend/pkg/observability"
	redispkg "github.com/shinewhite/clinic_backend/pkg/redis"
	"github.com/shinewhite/clinic_backend/pkg/session"
	"github.com/shinewhite/clinic_backend/pkg/whatsapp"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideStore),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideSessionStore),
	fx.Provide(ProvideAuthorization),
	fx.Provide(ProvideEmailClient),
	fx.Provide(ProvideWhatsAppClient),
	fx.Provide(ProvideOTel),
)

func ProvideStore(cfg *config.Config) *store.Store {
	s := store.New()
	if cfg.Store.Seed {
		s.Seed()
		slog.Info("seeded bootstrap data set")
	}
	return s
}

// ProvideRedis returns nil when nothing in the configuration needs
// Redis, so the rest of the graph can treat the client as optional.
func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	if cfg.Session.Backend != "redis" && cfg.Server.Environment != "production" {
		return nil, nil
	}

	rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideSessionStore(cfg *config.Config, rdb *redis.Client) (session.Store, error) {
	ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute

	switch cfg.Session.Backend {
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("session backend is redis but no Redis client is configured")
		}
		return session.NewRedisStore(rdb, ttl), nil
	default:
		return session.NewMemoryStore(ttl), nil
	}
}

func ProvideAuthorization() (authorize.IAuthorization, error) {
	return authorize.NewAuthorization()
}

func ProvideEmailClient(cfg *config.Config) (*email.Client, error) {
	return email.NewFromConfig(cfg.Email)
}

func ProvideWhatsAppClient(cfg *config.Config) (*whatsapp.Client, error) {
	return whatsapp.NewFromConfig(cfg.WhatsApp)
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), cfg.Observability, cfg.Server.Environment)
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
