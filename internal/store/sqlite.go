package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/sells-group/mandate-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	// Pragmas are per connection; a single connection keeps them applied
	// and serializes writers.
	db.SetMaxOpenConns(1)
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close() //nolint:errcheck
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS scenarios (
	id       TEXT PRIMARY KEY,
	seq      INTEGER NOT NULL UNIQUE,
	payload  TEXT NOT NULL,
	saved_at DATETIME NOT NULL DEFAULT (datetime('now'))
);
`

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return eris.Wrap(s.db.PingContext(ctx), "sqlite: ping")
}

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save assigns the next sequence number inside the INSERT so concurrent
// writers cannot observe the same count.
func (s *SQLiteStore) Save(ctx context.Context, sc model.Scenario) (*model.StoredScenario, error) {
	sc = copyScenario(sc)
	payload, err := json.Marshal(sc)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal scenario")
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	var seq int
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO scenarios (id, seq, payload, saved_at)
		 SELECT ?, COALESCE(MAX(seq), 0) + 1, ?, ? FROM scenarios
		 RETURNING seq`,
		id, string(payload), now,
	).Scan(&seq)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert scenario")
	}
	zap.L().Debug("scenario saved", zap.String("store", "sqlite"), zap.Int("seq", seq))

	return &model.StoredScenario{
		Scenario: sc,
		ID:       id,
		Seq:      seq,
		Name:     model.ScenarioName(seq),
		SavedAt:  now,
	}, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]model.StoredScenario, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, seq, payload, saved_at FROM scenarios ORDER BY seq`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list scenarios")
	}
	defer rows.Close() //nolint:errcheck

	var out []model.StoredScenario
	for rows.Next() {
		st, err := scanStored(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *st)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list scenarios iterate")
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scenarios`).Scan(&n)
	return n, eris.Wrap(err, "sqlite: count scenarios")
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM scenarios`)
	return eris.Wrap(err, "sqlite: clear scenarios")
}

type scannable interface {
	Scan(dest ...any) error
}

func scanStored(row scannable) (*model.StoredScenario, error) {
	var st model.StoredScenario
	var payload string
	if err := row.Scan(&st.ID, &st.Seq, &payload, &st.SavedAt); err != nil {
		return nil, eris.Wrap(err, "scan scenario")
	}
	if err := json.Unmarshal([]byte(payload), &st.Scenario); err != nil {
		return nil, eris.Wrapf(err, "unmarshal scenario %s", st.ID)
	}
	st.Name = model.ScenarioName(st.Seq)
	return &st, nil
}
