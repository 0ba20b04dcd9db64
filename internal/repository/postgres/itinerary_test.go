package postgres

import (
	"context"
	"strings"
	"testing"

	"github.com/itinerease/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

type fakeRow struct {
	id  int
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int)) = r.id
	return nil
}

// locationTx - заглушка pgx.Tx для resolveLocation: отвечает на SELECT
// по паре (country, city) и на INSERT .. RETURNING id, считая обращения
type locationTx struct {
	existingID int // 0 - пары в таблице нет
	nextID     int
	selects    int
	inserts    int
}

func (t *locationTx) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	if strings.HasPrefix(strings.TrimSpace(sql), "SELECT") {
		t.selects++
		if t.existingID == 0 {
			return fakeRow{err: pgx.ErrNoRows}
		}
		return fakeRow{id: t.existingID}
	}
	t.inserts++
	return fakeRow{id: t.nextID}
}

// Остальные методы pgx.Tx в resolveLocation не участвуют
func (t *locationTx) Begin(context.Context) (pgx.Tx, error) { return t, nil }
func (t *locationTx) Commit(context.Context) error          { return nil }
func (t *locationTx) Rollback(context.Context) error        { return nil }
func (t *locationTx) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *locationTx) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return nil }
func (t *locationTx) LargeObjects() pgx.LargeObjects                         { return pgx.LargeObjects{} }
func (t *locationTx) Prepare(context.Context, string, string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *locationTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (t *locationTx) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (t *locationTx) Conn() *pgx.Conn                                         { return nil }

// TestResolveLocation тестирует find-or-create по паре (country, city)
// внутри транзакции агрегата
func TestResolveLocation(t *testing.T) {
	ctx := context.Background()

	t.Run("существующая пара переиспользуется", func(t *testing.T) {
		tx := &locationTx{existingID: 7}
		location := &domain.Location{Country: "Italy", City: "Rome"}

		err := resolveLocation(ctx, tx, location)

		assert.NoError(t, err)
		assert.Equal(t, 7, location.ID)
		assert.Equal(t, 1, tx.selects)
		assert.Equal(t, 0, tx.inserts, "существующая пара не должна создавать строку")
	})

	t.Run("новая пара создается ровно один раз", func(t *testing.T) {
		tx := &locationTx{nextID: 12}
		location := &domain.Location{Country: "Japan", City: "Osaka"}

		err := resolveLocation(ctx, tx, location)

		assert.NoError(t, err)
		assert.Equal(t, 12, location.ID)
		assert.Equal(t, 1, tx.selects)
		assert.Equal(t, 1, tx.inserts)
	})
}
