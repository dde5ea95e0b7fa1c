package store

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/mandate-cli/internal/db"
	"github.com/sells-group/mandate-cli/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(4)
	minConns := int32(1)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS scenarios (
	id       TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	seq      INTEGER NOT NULL UNIQUE,
	payload  JSONB NOT NULL,
	saved_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func (s *PostgresStore) Ping(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "SELECT 1")
	return eris.Wrap(err, "postgres: ping")
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

// Save serializes appends with a table lock so that sequence numbers stay
// dense across concurrent writers.
func (s *PostgresStore) Save(ctx context.Context, sc model.Scenario) (*model.StoredScenario, error) {
	sc = copyScenario(sc)
	payload, err := json.Marshal(sc)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal scenario")
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: begin save")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `LOCK TABLE scenarios IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return nil, eris.Wrap(err, "postgres: lock scenarios")
	}

	var seq int
	err = tx.QueryRow(ctx,
		`INSERT INTO scenarios (id, seq, payload, saved_at)
		 SELECT $1, COALESCE(MAX(seq), 0) + 1, $2, $3 FROM scenarios
		 RETURNING seq`,
		id, string(payload), now,
	).Scan(&seq)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert scenario")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, eris.Wrap(err, "postgres: commit save")
	}
	zap.L().Debug("scenario saved", zap.String("store", "postgres"), zap.Int("seq", seq))

	return &model.StoredScenario{
		Scenario: sc,
		ID:       id,
		Seq:      seq,
		Name:     model.ScenarioName(seq),
		SavedAt:  now,
	}, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]model.StoredScenario, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, seq, payload, saved_at FROM scenarios ORDER BY seq`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list scenarios")
	}
	defer rows.Close()

	var out []model.StoredScenario
	for rows.Next() {
		var st model.StoredScenario
		var payload []byte
		if err := rows.Scan(&st.ID, &st.Seq, &payload, &st.SavedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan scenario")
		}
		if err := json.Unmarshal(payload, &st.Scenario); err != nil {
			return nil, eris.Wrapf(err, "postgres: unmarshal scenario %s", st.ID)
		}
		st.Name = model.ScenarioName(st.Seq)
		out = append(out, st)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list scenarios iterate")
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM scenarios`).Scan(&n)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	return n, eris.Wrap(err, "postgres: count scenarios")
}

func (s *PostgresStore) Clear(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM scenarios`)
	return eris.Wrap(err, "postgres: clear scenarios")
}
