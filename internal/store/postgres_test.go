package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/mandate-cli/internal/model"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &PostgresStore{pool: mock}
	return s, mock
}

func TestPostgresStore_Migrate(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS scenarios`).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Ping(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`SELECT 1`).WillReturnResult(pgxmock.NewResult("SELECT", 1))
	require.NoError(t, s.Ping(context.Background()))

	mock.ExpectExec(`SELECT 1`).WillReturnError(errors.New("connection refused"))
	err := s.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres: ping")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Save(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`LOCK TABLE scenarios`).
		WillReturnResult(pgxmock.NewResult("LOCK TABLE", 0))
	mock.ExpectQuery(`INSERT INTO scenarios .* COALESCE\(MAX\(seq\), 0\) \+ 1`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"seq"}).AddRow(3))
	mock.ExpectCommit()

	st, err := s.Save(context.Background(), testScenario(25, 10))
	require.NoError(t, err)
	assert.Equal(t, 3, st.Seq)
	assert.Equal(t, "Scenario 3", st.Name)
	assert.NotEmpty(t, st.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Save_InsertFailsRollsBack(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`LOCK TABLE scenarios`).
		WillReturnResult(pgxmock.NewResult("LOCK TABLE", 0))
	mock.ExpectQuery(`INSERT INTO scenarios`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("unique violation"))
	mock.ExpectRollback()

	_, err := s.Save(context.Background(), testScenario(25, 10))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert scenario")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_List(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	payload, err := json.Marshal(testScenario(15, -42))
	require.NoError(t, err)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT id, seq, payload, saved_at FROM scenarios ORDER BY seq`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "seq", "payload", "saved_at"}).
			AddRow("a", 1, payload, now).
			AddRow("b", 2, payload, now))

	list, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Scenario 2", list[1].Name)
	assert.Equal(t, 15, list[0].Selection.LivesSavedPer100k)
	assert.Equal(t, -42.0, list[0].NetBenefit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CountAndClear(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM scenarios`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectExec(`DELETE FROM scenarios`).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	require.NoError(t, s.Clear(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CompareInsufficient(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, seq, payload, saved_at FROM scenarios`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "seq", "payload", "saved_at"}))

	_, err := Compare(context.Background(), s)
	assert.ErrorIs(t, err, model.ErrInsufficientData)
	assert.NoError(t, mock.ExpectationsWereMet())
}
