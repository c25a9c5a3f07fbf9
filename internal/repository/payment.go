package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/waskull/hotelia/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const pgForeignKeyViolation = "23503"

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (id, reservation_id, amount_cents, payment_method, ref_code, payment_date, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.ReservationID, p.AmountCents, p.Method, p.RefCode, p.PaidAt, p.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.ErrReservationNotFound
		}
		return fmt.Errorf("insert payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) ListByReservation(ctx context.Context, reservationID string) ([]*domain.Payment, error) {
	query := `SELECT id, reservation_id, amount_cents, payment_method, ref_code, payment_date, created_at
			  FROM payments
			  WHERE reservation_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, reservationID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var result []*domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err = rows.Scan(&p.ID, &p.ReservationID, &p.AmountCents, &p.Method, &p.RefCode, &p.PaidAt, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		result = append(result, &p)
	}

	return result, rows.Err()
}
