package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/mandate-cli/internal/params"
	"github.com/sells-group/mandate-cli/internal/resilience"
	"github.com/sells-group/mandate-cli/internal/scenario"
	"github.com/sells-group/mandate-cli/internal/store"
)

// initEngine loads model parameters and builds the scenario engine. A
// parameter failure aborts the command before anything is computed.
func initEngine() (*scenario.Engine, error) {
	p, err := params.Load(cfg.Params.Path)
	if err != nil {
		return nil, eris.Wrap(err, "load parameters")
	}
	return scenario.NewEngine(p)
}

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "", "memory":
		return store.NewMemory(), nil
	case "sqlite":
		dsn := cfg.Store.SQLitePath
		if dsn == "" {
			dsn = "mandate.db"
		}
		return store.NewSQLite(dsn)
	case "postgres":
		if cfg.Store.DatabaseURL == "" {
			return nil, eris.New("store.database_url is required for the postgres driver (MANDATE_STORE_DATABASE_URL)")
		}
		retry := resilience.DefaultRetryConfig()
		retry.MaxAttempts = cfg.Store.ConnectAttempts
		pg, err := resilience.Do(ctx, retry, "postgres connect", func(ctx context.Context) (*store.PostgresStore, error) {
			return store.NewPostgres(ctx, cfg.Store.DatabaseURL, &store.PoolConfig{
				MaxConns: cfg.Store.MaxConns,
				MinConns: cfg.Store.MinConns,
			})
		})
		if err != nil {
			return nil, err
		}
		return pg, nil
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

// openStore initializes the configured store and applies its schema.
func openStore(ctx context.Context) (store.Store, error) {
	st, err := initStore(ctx)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, err
	}
	return st, nil
}
