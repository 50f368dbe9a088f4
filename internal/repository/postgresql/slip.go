package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stafflane/backoffice-backend-go/internal/domain/slip"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/database"
)

type slipRepository struct {
	db *database.DB
}

func NewSlipRepository(db *database.DB) slip.SlipRepository {
	return &slipRepository{db: db}
}

const slipColumns = `
	s.id, s.payroll_id, s.slip_number, s.employee_id, s.month,
	s.basic_salary, s.total_allowances, s.total_deductions, s.net_salary,
	s.present_days, s.absent_days, s.half_days, s.leave_days,
	s.generated_date, s.email_sent, s.email_sent_at, s.created_at, e.full_name
`

func scanSlip(row pgx.Row) (slip.SalarySlip, error) {
	var s slip.SalarySlip
	err := row.Scan(
		&s.ID, &s.PayrollID, &s.SlipNumber, &s.EmployeeID, &s.Month,
		&s.BasicSalary, &s.TotalAllowances, &s.TotalDeductions, &s.NetSalary,
		&s.PresentDays, &s.AbsentDays, &s.HalfDays, &s.LeaveDays,
		&s.GeneratedDate, &s.EmailSent, &s.EmailSentAt, &s.CreatedAt, &s.EmployeeName,
	)
	return s, err
}

func (r *slipRepository) Create(ctx context.Context, s slip.SalarySlip) (slip.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	query := `
		INSERT INTO salary_slips (
			id, payroll_id, slip_number, employee_id, month,
			basic_salary, total_allowances, total_deductions, net_salary,
			present_days, absent_days, half_days, leave_days,
			generated_date, email_sent, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, false, NOW())
	`

	_, err := q.Exec(ctx, query,
		s.ID, s.PayrollID, s.SlipNumber, s.EmployeeID, s.Month,
		s.BasicSalary, s.TotalAllowances, s.TotalDeductions, s.NetSalary,
		s.PresentDays, s.AbsentDays, s.HalfDays, s.LeaveDays,
		s.GeneratedDate,
	)
	if err != nil {
		return slip.SalarySlip{}, fmt.Errorf("failed to create salary slip: %w", err)
	}

	return r.GetByID(ctx, s.ID)
}

func (r *slipRepository) GetByID(ctx context.Context, id string) (slip.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM salary_slips s
		LEFT JOIN employees e ON s.employee_id = e.id
		WHERE s.id = $1
	`, slipColumns)

	s, err := scanSlip(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return slip.SalarySlip{}, slip.ErrSlipNotFound
		}
		return slip.SalarySlip{}, fmt.Errorf("failed to get salary slip: %w", err)
	}

	return s, nil
}

func (r *slipRepository) List(ctx context.Context, month *string, employeeID *string) ([]slip.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM salary_slips s
		LEFT JOIN employees e ON s.employee_id = e.id
		WHERE 1=1
	`, slipColumns)

	args := []interface{}{}
	argIdx := 1

	if month != nil {
		query += fmt.Sprintf(" AND s.month = $%d", argIdx)
		args = append(args, *month)
		argIdx++
	}
	if employeeID != nil {
		query += fmt.Sprintf(" AND s.employee_id = $%d", argIdx)
		args = append(args, *employeeID)
		argIdx++
	}
	query += " ORDER BY s.generated_date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary slips: %w", err)
	}
	defer rows.Close()

	var slips []slip.SalarySlip
	for rows.Next() {
		s, err := scanSlip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary slip: %w", err)
		}
		slips = append(slips, s)
	}

	return slips, rows.Err()
}

// MarkEmailed sets email_sent once; it never transitions back to false.
func (r *slipRepository) MarkEmailed(ctx context.Context, id string) (slip.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_slips
		SET email_sent = true, email_sent_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return slip.SalarySlip{}, slip.ErrSlipNotFound
		}
		return slip.SalarySlip{}, fmt.Errorf("failed to mark slip emailed: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}
