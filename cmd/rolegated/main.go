package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/rolegate/rolegate/internal/httpapi"
	"github.com/rolegate/rolegate/pkg/config"
	"github.com/rolegate/rolegate/pkg/httpserver"
	"github.com/rolegate/rolegate/pkg/logger"
	"github.com/rolegate/rolegate/pkg/policy"
	"github.com/rolegate/rolegate/pkg/policyfile"
	"github.com/rolegate/rolegate/pkg/policypg"
	"github.com/rolegate/rolegate/pkg/policyredis"
)

type appConfig struct {
	Logger logger.Config
	Server httpserver.Config

	// Driver selects the policy store backend: memory, file, redis or postgres.
	Driver string `env:"POLICY_STORAGE" envDefault:"memory"`
	// StorePath is the policy document the file driver persists to.
	StorePath string `env:"POLICY_STORE_PATH" envDefault:"policy.json"`
	// PolicyPath, when set, is a JSON or YAML document loaded on startup. It
	// replaces whatever the store holds.
	PolicyPath string `env:"POLICY_FILE"`
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	if cfg.Logger.Service == "" {
		cfg.Logger.Service = "rolegated"
	}
	log := logger.NewFromConfig(cfg.Logger)
	logger.SetAsDefault(log)

	store, cleanup, err := newStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	mgr := policy.NewManager(store, policy.WithLogger(log))
	mgr.OnChange(func() {
		log.InfoContext(ctx, "policy changed", slog.Int("roles", len(mgr.Roles())))
	})

	if err := loadInitialPolicy(ctx, cfg, mgr, store); err != nil {
		return err
	}
	if !mgr.Initialized() {
		log.WarnContext(ctx, "no policy loaded, access checks deny until PUT /v1/policy")
	}

	return httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log)).
		Run(ctx, httpapi.NewRouter(mgr, log))
}

// newStore builds the policy store selected by POLICY_STORAGE. Backend
// configuration is loaded lazily so unused drivers need no environment.
func newStore(ctx context.Context, cfg appConfig, log *slog.Logger) (policy.Store, func(), error) {
	noop := func() {}

	switch cfg.Driver {
	case "memory":
		return policy.NewMemoryStore(), noop, nil

	case "file":
		store, err := policyfile.NewStore(cfg.StorePath)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	case "redis":
		var redisCfg policyredis.Config
		if err := config.Load(&redisCfg); err != nil {
			return nil, noop, err
		}
		client, err := policyredis.Connect(ctx, redisCfg)
		if err != nil {
			return nil, noop, err
		}
		store := policyredis.NewStore(client, policyredis.WithKey(redisCfg.Key))
		return store, func() { _ = client.Close() }, nil

	case "postgres":
		var pgCfg policypg.Config
		if err := config.Load(&pgCfg); err != nil {
			return nil, noop, err
		}
		pool, err := policypg.Connect(ctx, pgCfg)
		if err != nil {
			return nil, noop, err
		}
		if err := policypg.Migrate(ctx, pool, log); err != nil {
			pool.Close()
			return nil, noop, err
		}
		return policypg.NewStore(pool), pool.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown policy storage driver %q", cfg.Driver)
	}
}

// loadInitialPolicy seeds the manager. A configured POLICY_FILE wins;
// otherwise a non-empty persisted table is replayed through the decoder.
// Replay keeps role/content pairs but not metadata, which only survives
// restarts through the manager's own persistence path.
func loadInitialPolicy(ctx context.Context, cfg appConfig, mgr *policy.Manager, store policy.Store) error {
	if cfg.PolicyPath != "" {
		raw, err := policyfile.LoadRaw(cfg.PolicyPath)
		if err != nil {
			return err
		}
		return mgr.Initialize(ctx, raw)
	}

	table, err := store.Load(ctx)
	if err != nil || len(table) == 0 {
		return err
	}
	raw := make(map[string]any, len(table))
	for key, role := range table {
		raw[key] = role.AllowedContent
	}
	return mgr.Initialize(ctx, raw)
}
