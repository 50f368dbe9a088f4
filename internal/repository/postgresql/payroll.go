package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stafflane/backoffice-backend-go/internal/domain/payroll"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.month, p.basic_salary, p.total_allowances,
	p.total_deductions, p.net_salary, p.present_days, p.absent_days,
	p.half_days, p.leave_days, p.working_days, p.status, p.payment_status,
	p.paid_amount, p.payment_date, p.notes, p.created_at, p.updated_at,
	e.full_name
`

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	var status, paymentStatus string
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.BasicSalary, &rec.TotalAllowances,
		&rec.TotalDeductions, &rec.NetSalary, &rec.PresentDays, &rec.AbsentDays,
		&rec.HalfDays, &rec.LeaveDays, &rec.WorkingDays, &status, &paymentStatus,
		&rec.PaidAmount, &rec.PaymentDate, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName,
	)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	rec.Status = payroll.RecordStatus(status)
	rec.PaymentStatus = payroll.PaymentStatus(paymentStatus)
	return rec, nil
}

// Create inserts the record, relying on uk_payroll_employee_month for
// duplicate detection. There is no existence check before the insert:
// under concurrent processing the constraint is the only reliable guard.
func (r *payrollRepository) Create(ctx context.Context, rec payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payroll_records (
			id, employee_id, month, basic_salary, total_allowances,
			total_deductions, net_salary, present_days, absent_days,
			half_days, leave_days, working_days, status, payment_status,
			paid_amount, payment_date, notes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW(), NOW())
	`

	_, err := q.Exec(ctx, query,
		rec.ID, rec.EmployeeID, rec.Month, rec.BasicSalary, rec.TotalAllowances,
		rec.TotalDeductions, rec.NetSalary, rec.PresentDays, rec.AbsentDays,
		rec.HalfDays, rec.LeaveDays, rec.WorkingDays, string(rec.Status), string(rec.PaymentStatus),
		rec.PaidAmount, rec.PaymentDate, rec.Notes,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_employee_month") {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return r.GetByID(ctx, rec.ID)
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_records p
		LEFT JOIN employees e ON p.employee_id = e.id
		WHERE p.id = $1
	`, payrollColumns)

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

// List filters by month, payment status and employee. Limit <= 0 disables
// pagination, which the CSV export depends on.
func (r *payrollRepository) List(ctx context.Context, filter payroll.Filter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("p.month = $%d", argIdx))
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("p.payment_status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	var totalCount int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM payroll_records p WHERE %s", whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_records p
		LEFT JOIN employees e ON p.employee_id = e.id
		WHERE %s
		ORDER BY p.month DESC, e.full_name
	`, payrollColumns, whereClause)

	if filter.Limit > 0 {
		if filter.Page <= 0 {
			filter.Page = 1
		}
		offset := (filter.Page - 1) * filter.Limit
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, filter.Limit, offset)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, totalCount, rows.Err()
}

func (r *payrollRepository) ProcessedEmployeeIDs(ctx context.Context, month string) (map[string]bool, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT employee_id FROM payroll_records WHERE month = $1`, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get processed employees: %w", err)
	}
	defer rows.Close()

	processed := make(map[string]bool)
	for rows.Next() {
		var employeeID string
		if err := rows.Scan(&employeeID); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		processed[employeeID] = true
	}

	return processed, rows.Err()
}

func (r *payrollRepository) UpdatePayment(ctx context.Context, id string, update payroll.PaymentUpdate) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"payment_status = $1", "updated_at = NOW()"}
	args := []interface{}{string(update.Status)}
	argIdx := 2

	if update.PaidAmount != nil {
		setClauses = append(setClauses, fmt.Sprintf("paid_amount = $%d", argIdx))
		args = append(args, *update.PaidAmount)
		argIdx++
	}
	if update.PaymentDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("payment_date = $%d", argIdx))
		args = append(args, *update.PaymentDate)
		argIdx++
	}
	if update.Notes != nil {
		setClauses = append(setClauses, fmt.Sprintf("notes = $%d", argIdx))
		args = append(args, *update.Notes)
		argIdx++
	}

	sql := fmt.Sprintf("UPDATE payroll_records SET %s WHERE id = $%d RETURNING id", strings.Join(setClauses, ", "), argIdx)
	args = append(args, id)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to update payment status: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}

func (r *payrollRepository) Summary(ctx context.Context, month string) (payroll.SummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(basic_salary), 0),
			COALESCE(SUM(total_allowances), 0),
			COALESCE(SUM(total_deductions), 0),
			COALESCE(SUM(net_salary), 0),
			COALESCE(SUM(paid_amount), 0),
			COUNT(*) FILTER (WHERE payment_status = 'pending'),
			COUNT(*) FILTER (WHERE payment_status = 'paid'),
			COUNT(*) FILTER (WHERE payment_status = 'hold'),
			COUNT(*) FILTER (WHERE payment_status = 'part-paid')
		FROM payroll_records
		WHERE month = $1
	`

	summary := payroll.SummaryResponse{Month: month}
	err := q.QueryRow(ctx, query, month).Scan(
		&summary.TotalEmployees,
		&summary.TotalBasic,
		&summary.TotalAllowances,
		&summary.TotalDeductions,
		&summary.TotalNetSalary,
		&summary.TotalPaidAmount,
		&summary.PendingCount,
		&summary.PaidCount,
		&summary.HoldCount,
		&summary.PartPaidCount,
	)
	if err != nil {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	return summary, nil
}
