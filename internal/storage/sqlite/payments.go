package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evenly-app/evenly/internal/models"
	"github.com/evenly-app/evenly/internal/storage"
)

// CreatePayment persists a new payment to the database.
func (s *SQLiteStore) CreatePayment(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.CreatedAt == 0 {
		payment.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO payments (id, from_user_id, to_user_id, amount_cents, date, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		payment.ID, payment.FromUserID, payment.ToUserID, payment.AmountCents,
		payment.Date.UTC().Format(dateLayout), payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	return nil
}

// ListPayments retrieves all payments ordered by date.
func (s *SQLiteStore) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	return listPayments(ctx, s.db)
}

func listPayments(ctx context.Context, q querier) ([]*models.Payment, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT id, from_user_id, to_user_id, amount_cents, date, created_at FROM payments ORDER BY date, created_at",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		var date string
		if err := rows.Scan(&payment.ID, &payment.FromUserID, &payment.ToUserID,
			&payment.AmountCents, &date, &payment.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		if payment.Date, err = parseDate(date); err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}

// DeletePayment removes a payment by ID.
func (s *SQLiteStore) DeletePayment(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM payments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("payment %s: %w", id, storage.ErrNotFound)
	}

	return nil
}
