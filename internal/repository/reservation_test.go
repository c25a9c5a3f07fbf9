package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waskull/hotelia/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

// recordConn is a canned driver connection: it serves fixed rows for the
// reservation queries and records every statement, so the order in which a
// transaction takes its locks can be asserted without a live database.
type recordConn struct {
	stmts   []string
	startAt time.Time
	endAt   time.Time
	status  string
}

type recordDriver struct{ conn *recordConn }

func (d *recordDriver) Open(string) (driver.Conn, error) { return d.conn, nil }

func (c *recordConn) Prepare(query string) (driver.Stmt, error) {
	return nil, fmt.Errorf("unexpected prepare: %s", query)
}

func (c *recordConn) Close() error { return nil }

func (c *recordConn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *recordConn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	c.stmts = append(c.stmts, "BEGIN")
	return c, nil
}

func (c *recordConn) Commit() error {
	c.stmts = append(c.stmts, "COMMIT")
	return nil
}

func (c *recordConn) Rollback() error {
	c.stmts = append(c.stmts, "ROLLBACK")
	return nil
}

func (c *recordConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	c.stmts = append(c.stmts, query)
	return driver.RowsAffected(1), nil
}

func (c *recordConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	c.stmts = append(c.stmts, query)
	switch {
	case strings.Contains(query, "FOR UPDATE"):
		return &recordRows{
			cols: []string{"room_id", "start_at", "end_at", "status"},
			vals: []driver.Value{int64(5), c.startAt, c.endAt, c.status},
		}, nil
	case strings.Contains(query, "SELECT room_id"):
		return &recordRows{cols: []string{"room_id"}, vals: []driver.Value{int64(5)}}, nil
	case strings.Contains(query, "SELECT EXISTS"):
		return &recordRows{cols: []string{"exists"}, vals: []driver.Value{false}}, nil
	}
	return &recordRows{}, nil
}

type recordRows struct {
	cols []string
	vals []driver.Value
	done bool
}

func (r *recordRows) Columns() []string { return r.cols }
func (r *recordRows) Close() error      { return nil }

func (r *recordRows) Next(dest []driver.Value) error {
	if r.done || len(r.vals) == 0 {
		return io.EOF
	}
	copy(dest, r.vals)
	r.done = true
	return nil
}

var recordDriverSeq int64

func newRecordDB(t *testing.T, conn *recordConn) *dbpg.DB {
	t.Helper()

	name := fmt.Sprintf("recordpg-%d", atomic.AddInt64(&recordDriverSeq, 1))
	sql.Register(name, &recordDriver{conn: conn})

	db, err := sql.Open(name, "")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &dbpg.DB{Master: db}
}

func stmtIndex(t *testing.T, stmts []string, substr string) int {
	t.Helper()
	for i, s := range stmts {
		if strings.Contains(s, substr) {
			return i
		}
	}
	t.Fatalf("statement containing %q not executed; got %v", substr, stmts)
	return -1
}

func TestReservationRepository_ExtendSpan_LocksRoomBeforeRow(t *testing.T) {
	conn := &recordConn{
		startAt: time.Date(2026, time.June, 10, 15, 0, 0, 0, time.UTC),
		endAt:   time.Date(2026, time.June, 12, 11, 0, 0, 0, time.UTC),
		status:  "pending",
	}
	repo := NewReservationRepo(newRecordDB(t, conn))

	newEnd := time.Date(2026, time.June, 14, 11, 0, 0, 0, time.UTC)
	err := repo.ExtendSpan(context.Background(), "7b0d2bce-0000-0000-0000-000000000001", newEnd, 40000)
	require.NoError(t, err)

	// Same order as Create and Reschedule: room lock before the row lock,
	// so concurrent writers on one room cannot deadlock against each other.
	lock := stmtIndex(t, conn.stmts, "pg_advisory_xact_lock")
	rowLock := stmtIndex(t, conn.stmts, "FOR UPDATE")
	assert.Less(t, lock, rowLock)
	assert.Less(t, stmtIndex(t, conn.stmts, "SELECT EXISTS"), stmtIndex(t, conn.stmts, "UPDATE reservations"))
	assert.Contains(t, conn.stmts, "COMMIT")
}

func TestReservationRepository_Reschedule_LocksRoomBeforeUpdate(t *testing.T) {
	conn := &recordConn{status: "pending"}
	repo := NewReservationRepo(newRecordDB(t, conn))

	res := &domain.Reservation{
		ID:              "7b0d2bce-0000-0000-0000-000000000002",
		RoomID:          5,
		UserID:          7,
		StartAt:         time.Date(2026, time.June, 10, 15, 0, 0, 0, time.UTC),
		EndAt:           time.Date(2026, time.June, 12, 11, 0, 0, 0, time.UTC),
		Status:          domain.StatusPending,
		TotalPriceCents: 20000,
	}
	err := repo.Reschedule(context.Background(), res)
	require.NoError(t, err)

	lock := stmtIndex(t, conn.stmts, "pg_advisory_xact_lock")
	assert.Less(t, lock, stmtIndex(t, conn.stmts, "SELECT EXISTS"))
	assert.Less(t, lock, stmtIndex(t, conn.stmts, "UPDATE reservations"))
}
