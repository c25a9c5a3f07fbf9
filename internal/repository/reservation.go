package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/waskull/hotelia/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// Postgres error codes used to turn races into domain conflicts.
const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

const reservationColumns = `id, room_id, user_id, guest_email, start_at, end_at, status, total_price_cents, created_at, updated_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create checks availability and inserts in one transaction. Writers on the
// same room are serialized with a per-room advisory lock; the exclusion
// constraint on (room_id, span) is the backstop if anything slips through.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, res.RoomID); err != nil {
		return fmt.Errorf("lock room: %w", err)
	}

	conflict, err := overlapExists(ctx, tx, res.RoomID, res.Span(), res.ID)
	if err != nil {
		return err
	}
	if conflict {
		return domain.ErrRangeConflict
	}

	query := `INSERT INTO reservations
			  (id, room_id, user_id, guest_email, start_at, end_at, status, total_price_cents, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(
		ctx, query,
		res.ID, res.RoomID, res.UserID, res.GuestEmail,
		res.StartAt, res.EndAt, res.Status, res.TotalPriceCents,
		res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && (pgErr.Code == pgExclusionViolation || pgErr.Code == pgUniqueViolation) {
			return domain.ErrRangeConflict
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	return tx.Commit()
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) HasOverlap(ctx context.Context, roomID int64, span domain.Interval, excludeID string) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM reservations
				WHERE room_id = $1
				  AND status = ANY($2)
				  AND start_at < $4
				  AND end_at > $3
				  AND id::text <> $5
			  )`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		roomID, pq.Array(liveStatuses()), span.Start, span.End, excludeID,
	)
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}

	var conflict bool
	if err = row.Scan(&conflict); err != nil {
		return false, fmt.Errorf("scan overlap: %w", err)
	}

	return conflict, nil
}

func (r *ReservationRepository) Reschedule(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, res.RoomID); err != nil {
		return fmt.Errorf("lock room: %w", err)
	}

	conflict, err := overlapExists(ctx, tx, res.RoomID, res.Span(), res.ID)
	if err != nil {
		return err
	}
	if conflict {
		return domain.ErrRangeConflict
	}

	query := `UPDATE reservations
			  SET room_id = $2, start_at = $3, end_at = $4, total_price_cents = $5, updated_at = now()
			  WHERE id = $1 AND status = $6`
	result, err := tx.ExecContext(
		ctx, query,
		res.ID, res.RoomID, res.StartAt, res.EndAt, res.TotalPriceCents,
		domain.StatusPending,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return domain.ErrRangeConflict
		}
		return fmt.Errorf("reschedule reservation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reschedule rows affected: %w", err)
	}
	if rows == 0 {
		if err = diagnoseMissed(ctx, tx, res.ID); err != nil {
			return err
		}
		return domain.ErrNotEditable
	}

	return tx.Commit()
}

func (r *ReservationRepository) ExtendSpan(ctx context.Context, id string, newEnd time.Time, totalPriceCents int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Advisory lock before the row lock, same order as Create and
	// Reschedule, so concurrent mutations of one room never deadlock.
	var roomID int64
	peek := `SELECT room_id FROM reservations WHERE id = $1`
	if err = tx.QueryRowContext(ctx, peek, id).Scan(&roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReservationNotFound
		}
		return fmt.Errorf("get room for extend: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, roomID); err != nil {
		return fmt.Errorf("lock room: %w", err)
	}

	// Re-read under the row lock; the room may have been rescheduled
	// between the peek and the lock. The exclusion constraint backstops
	// that window.
	var (
		startAt time.Time
		endAt   time.Time
		status  domain.Status
	)
	query := `SELECT room_id, start_at, end_at, status
			  FROM reservations
			  WHERE id = $1
			  FOR UPDATE`
	if err = tx.QueryRowContext(ctx, query, id).Scan(&roomID, &startAt, &endAt, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReservationNotFound
		}
		return fmt.Errorf("get reservation for extend: %w", err)
	}

	if status.IsTerminal() {
		return domain.ErrNotExtendable
	}
	if !newEnd.After(endAt) {
		return fmt.Errorf("%w: new end date must be after the current end date", domain.ErrValidation)
	}

	conflict, err := overlapExists(ctx, tx, roomID, domain.Interval{Start: startAt, End: newEnd}, id)
	if err != nil {
		return err
	}
	if conflict {
		return domain.ErrRangeConflict
	}

	update := `UPDATE reservations
			   SET end_at = $2, total_price_cents = $3, updated_at = now()
			   WHERE id = $1`
	if _, err = tx.ExecContext(ctx, update, id, newEnd, totalPriceCents); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return domain.ErrRangeConflict
		}
		return fmt.Errorf("extend reservation: %w", err)
	}

	return tx.Commit()
}

func (r *ReservationRepository) Advance(ctx context.Context, id string, from, to domain.Status) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE reservations
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`
	result, err := tx.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("advance reservation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("advance rows affected: %w", err)
	}
	if rows == 0 {
		// Missing row or a concurrent writer moved the status first.
		if err = diagnoseMissed(ctx, tx, id); err != nil {
			return err
		}
		return domain.ErrInvalidTransition
	}

	return tx.Commit()
}

func (r *ReservationRepository) Cancel(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE reservations
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`
	result, err := tx.ExecContext(ctx, query, id, domain.StatusPending, domain.StatusCancelled)
	if err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel rows affected: %w", err)
	}
	if rows == 0 {
		if err = diagnoseMissed(ctx, tx, id); err != nil {
			return err
		}
		return domain.ErrNotCancellable
	}

	return tx.Commit()
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE user_id = $1
			  ORDER BY start_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by user: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) ListByRoom(ctx context.Context, roomID int64) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE room_id = $1 AND status = ANY($2)
			  ORDER BY start_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, roomID, pq.Array(liveStatuses()))
	if err != nil {
		return nil, fmt.Errorf("list reservations by room: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) CancelNoShows(ctx context.Context, cutoff time.Time) ([]*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET status = $2, updated_at = now()
			  WHERE status = $1 AND start_at < $3
			  RETURNING ` + reservationColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.StatusPending, domain.StatusCancelled, cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel no-shows: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func overlapExists(ctx context.Context, tx *sql.Tx, roomID int64, span domain.Interval, excludeID string) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM reservations
				WHERE room_id = $1
				  AND status = ANY($2)
				  AND start_at < $4
				  AND end_at > $3
				  AND id::text <> $5
			  )`

	var conflict bool
	err := tx.QueryRowContext(
		ctx, query,
		roomID, pq.Array(liveStatuses()), span.Start, span.End, excludeID,
	).Scan(&conflict)
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}

	return conflict, nil
}

// diagnoseMissed explains a 0-row CAS update: returns ErrReservationNotFound
// if the row is gone, nil if it exists in some other status.
func diagnoseMissed(ctx context.Context, tx *sql.Tx, id string) error {
	var status string
	err := tx.QueryRowContext(ctx, `SELECT status FROM reservations WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrReservationNotFound
	}
	if err != nil {
		return fmt.Errorf("diagnose reservation %s: %w", id, err)
	}
	return nil
}

func liveStatuses() []string {
	ss := make([]string, 0, len(domain.LiveStatuses))
	for _, s := range domain.LiveStatuses {
		ss = append(ss, string(s))
	}
	return ss
}

func scanReservation(scan func(dest ...any) error) (*domain.Reservation, error) {
	var res domain.Reservation
	err := scan(
		&res.ID, &res.RoomID, &res.UserID, &res.GuestEmail,
		&res.StartAt, &res.EndAt, &res.Status, &res.TotalPriceCents,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func collectReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		result = append(result, res)
	}
	return result, rows.Err()
}
