package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/stafflane/backoffice-backend-go/internal/domain/deduction"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/database"
)

type deductionRepository struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) deduction.DeductionRepository {
	return &deductionRepository{db: db}
}

const deductionColumns = `
	d.id, d.employee_id, d.type, d.amount, d.fine_amount,
	d.repayment_months, d.installment_amount, d.status, d.applied_month,
	d.reason, d.created_at, d.updated_at, e.full_name
`

func scanDeduction(row pgx.Row) (deduction.Deduction, error) {
	var d deduction.Deduction
	var dType, status string
	err := row.Scan(
		&d.ID, &d.EmployeeID, &dType, &d.Amount, &d.FineAmount,
		&d.RepaymentMonths, &d.InstallmentAmount, &status, &d.AppliedMonth,
		&d.Reason, &d.CreatedAt, &d.UpdatedAt, &d.EmployeeName,
	)
	if err != nil {
		return deduction.Deduction{}, err
	}
	d.Type = deduction.Type(dType)
	d.Status = deduction.Status(status)
	return d, nil
}

func (r *deductionRepository) Create(ctx context.Context, d deduction.Deduction) (deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	if d.ID == "" {
		d.ID = uuid.New().String()
	}

	query := `
		INSERT INTO deductions (
			id, employee_id, type, amount, fine_amount,
			repayment_months, installment_amount, status, applied_month,
			reason, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`

	_, err := q.Exec(ctx, query,
		d.ID, d.EmployeeID, string(d.Type), d.Amount, d.FineAmount,
		d.RepaymentMonths, d.InstallmentAmount, string(d.Status), d.AppliedMonth,
		d.Reason,
	)
	if err != nil {
		return deduction.Deduction{}, fmt.Errorf("failed to create deduction: %w", err)
	}

	return r.GetByID(ctx, d.ID)
}

func (r *deductionRepository) GetByID(ctx context.Context, id string) (deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM deductions d
		LEFT JOIN employees e ON d.employee_id = e.id
		WHERE d.id = $1
	`, deductionColumns)

	d, err := scanDeduction(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.Deduction{}, deduction.ErrDeductionNotFound
		}
		return deduction.Deduction{}, fmt.Errorf("failed to get deduction: %w", err)
	}

	return d, nil
}

func (r *deductionRepository) List(ctx context.Context, filter deduction.Filter) ([]deduction.Deduction, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("d.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("d.type = $%d", argIdx))
		args = append(args, *filter.Type)
		argIdx++
	}
	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf("(e.full_name ILIKE $%d OR d.reason ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	var totalCount int64
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM deductions d
		LEFT JOIN employees e ON d.employee_id = e.id
		WHERE %s
	`, whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count deductions: %w", err)
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT %s
		FROM deductions d
		LEFT JOIN employees e ON d.employee_id = e.id
		WHERE %s
		ORDER BY d.created_at DESC
		LIMIT $%d OFFSET $%d
	`, deductionColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list deductions: %w", err)
	}
	defer rows.Close()

	var deductions []deduction.Deduction
	for rows.Next() {
		d, err := scanDeduction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan deduction: %w", err)
		}
		deductions = append(deductions, d)
	}

	return deductions, totalCount, rows.Err()
}

// Update recomputes installment_amount when amount or repayment_months
// change, reading the missing half of the pair from the current row.
func (r *deductionRepository) Update(ctx context.Context, req deduction.UpdateDeductionRequest) (deduction.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	current, err := r.GetByID(ctx, req.ID)
	if err != nil {
		return deduction.Deduction{}, err
	}

	updates := map[string]interface{}{}
	amount := current.Amount
	months := current.RepaymentMonths

	if req.Amount != nil {
		updates["amount"] = *req.Amount
		amount = *req.Amount
	}
	if req.RepaymentMonths != nil {
		updates["repayment_months"] = *req.RepaymentMonths
		months = *req.RepaymentMonths
	}
	if req.Amount != nil || req.RepaymentMonths != nil {
		updates["installment_amount"] = deduction.InstallmentFor(amount, months)
	}
	if req.FineAmount != nil {
		updates["fine_amount"] = *req.FineAmount
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.AppliedMonth != nil {
		updates["applied_month"] = *req.AppliedMonth
	}
	if req.Reason != nil {
		updates["reason"] = *req.Reason
	}

	if len(updates) == 0 {
		return current, nil
	}

	setClauses := make([]string, 0, len(updates)+1)
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	sql := fmt.Sprintf("UPDATE deductions SET %s WHERE id = $%d RETURNING id", strings.Join(setClauses, ", "), i)
	args = append(args, req.ID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return deduction.Deduction{}, deduction.ErrDeductionNotFound
		}
		return deduction.Deduction{}, fmt.Errorf("failed to update deduction: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}

func (r *deductionRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM deductions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deduction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deduction.ErrDeductionNotFound
	}

	return nil
}

func (r *deductionRepository) Stats(ctx context.Context) (deduction.StatsResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COALESCE(SUM(amount) FILTER (WHERE type = 'advance'), 0),
			COALESCE(SUM(CASE WHEN type = 'fine' THEN amount + fine_amount END), 0),
			COALESCE(SUM(amount) FILTER (WHERE status IN ('pending', 'approved')), 0)
		FROM deductions
	`

	var stats deduction.StatsResponse
	var totalAdvances, totalFines, totalOutstanding decimal.Decimal
	err := q.QueryRow(ctx, query).Scan(
		&stats.TotalCount,
		&stats.PendingCount,
		&stats.ApprovedCount,
		&stats.CompletedCount,
		&totalAdvances,
		&totalFines,
		&totalOutstanding,
	)
	if err != nil {
		return deduction.StatsResponse{}, fmt.Errorf("failed to get deduction stats: %w", err)
	}

	stats.TotalAdvances = totalAdvances
	stats.TotalFines = totalFines
	stats.TotalOutstanding = totalOutstanding
	return stats, nil
}
