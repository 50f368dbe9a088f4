package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stafflane/backoffice-backend-go/internal/domain/payment"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/database"
)

type paymentRepository struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepository{db: db}
}

func scanPayment(row pgx.Row) (payment.Payment, error) {
	var p payment.Payment
	var status string
	err := row.Scan(
		&p.ID, &p.InvoiceID, &p.Client, &p.Amount, &p.Method,
		&status, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return payment.Payment{}, err
	}
	p.Status = payment.Status(status)
	return p, nil
}

func (r *paymentRepository) Create(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payments (id, invoice_id, client, amount, method, status, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`

	_, err := q.Exec(ctx, query,
		p.ID, p.InvoiceID, p.Client, p.Amount, p.Method, string(p.Status), p.PaidAt,
	)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}

	return r.GetByID(ctx, p.ID)
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, invoice_id, client, amount, method, status, paid_at, created_at, updated_at
		FROM payments
		WHERE id = $1
	`

	p, err := scanPayment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payment.Payment{}, payment.ErrPaymentNotFound
		}
		return payment.Payment{}, fmt.Errorf("failed to get payment: %w", err)
	}

	return p, nil
}

func (r *paymentRepository) List(ctx context.Context, filter payment.Filter) ([]payment.Payment, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Method != nil {
		conditions = append(conditions, fmt.Sprintf("method = $%d", argIdx))
		args = append(args, *filter.Method)
		argIdx++
	}
	if filter.Client != nil {
		conditions = append(conditions, fmt.Sprintf("client ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.Client+"%")
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	var totalCount int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM payments WHERE %s", whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT id, invoice_id, client, amount, method, status, paid_at, created_at, updated_at
		FROM payments
		WHERE %s
		ORDER BY paid_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, totalCount, rows.Err()
}

func (r *paymentRepository) MethodDistribution(ctx context.Context) ([]payment.MethodDistribution, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT method, COUNT(*), COALESCE(SUM(amount), 0)
		FROM payments
		GROUP BY method
		ORDER BY COUNT(*) DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get method distribution: %w", err)
	}
	defer rows.Close()

	var distribution []payment.MethodDistribution
	for rows.Next() {
		var d payment.MethodDistribution
		if err := rows.Scan(&d.Method, &d.Count, &d.Total); err != nil {
			return nil, fmt.Errorf("failed to scan method distribution: %w", err)
		}
		distribution = append(distribution, d)
	}

	return distribution, rows.Err()
}

// Stats buckets the ledger with date_trunc. period is validated upstream,
// never interpolated from user input directly.
func (r *paymentRepository) Stats(ctx context.Context, period string) ([]payment.StatsBucket, error) {
	q := GetQuerier(ctx, r.db)

	truncUnit := map[string]string{
		"daily":   "day",
		"weekly":  "week",
		"monthly": "month",
		"yearly":  "year",
	}[period]
	if truncUnit == "" {
		return nil, payment.ErrInvalidPeriod
	}

	query := fmt.Sprintf(`
		SELECT
			date_trunc('%s', paid_at) AS bucket,
			COUNT(*),
			COALESCE(SUM(amount), 0),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'failed'),
			COUNT(*) FILTER (WHERE status = 'pending')
		FROM payments
		GROUP BY bucket
		ORDER BY bucket DESC
	`, truncUnit)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment stats: %w", err)
	}
	defer rows.Close()

	var buckets []payment.StatsBucket
	for rows.Next() {
		var b payment.StatsBucket
		var bucket time.Time
		if err := rows.Scan(&bucket, &b.Count, &b.Total, &b.CompletedCount, &b.FailedCount, &b.PendingCount); err != nil {
			return nil, fmt.Errorf("failed to scan payment stats: %w", err)
		}
		b.Bucket = bucket.Format("2006-01-02")
		buckets = append(buckets, b)
	}

	return buckets, rows.Err()
}
