package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/stafflane/backoffice-backend-go/internal/domain/structure"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/database"
)

type structureRepository struct {
	db *database.DB
}

func NewStructureRepository(db *database.DB) structure.StructureRepository {
	return &structureRepository{db: db}
}

const structureColumns = `
	s.id, s.employee_id, s.basic_salary, s.hra, s.da, s.special_allowance,
	s.conveyance, s.medical_allowance, s.other_allowances, s.leave_encashment,
	s.arrears, s.provident_fund, s.professional_tax, s.income_tax,
	s.other_deductions, s.esic, s.advance, s.mlwf,
	s.is_active, s.created_at, s.updated_at, e.full_name
`

func scanStructure(row pgx.Row) (structure.SalaryStructure, error) {
	var s structure.SalaryStructure
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.BasicSalary, &s.HRA, &s.DA, &s.SpecialAllowance,
		&s.Conveyance, &s.MedicalAllowance, &s.OtherAllowances, &s.LeaveEncashment,
		&s.Arrears, &s.ProvidentFund, &s.ProfessionalTax, &s.IncomeTax,
		&s.OtherDeductions, &s.ESIC, &s.Advance, &s.MLWF,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt, &s.EmployeeName,
	)
	return s, err
}

// Create inserts a new structure after deactivating the employee's current
// active one. Run it inside WithTransaction so both steps commit together.
func (r *structureRepository) Create(ctx context.Context, s structure.SalaryStructure) (structure.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	_, err := q.Exec(ctx, `
		UPDATE salary_structures
		SET is_active = false, updated_at = NOW()
		WHERE employee_id = $1 AND is_active = true
	`, s.EmployeeID)
	if err != nil {
		return structure.SalaryStructure{}, fmt.Errorf("failed to deactivate previous structure: %w", err)
	}

	query := `
		INSERT INTO salary_structures (
			id, employee_id, basic_salary, hra, da, special_allowance,
			conveyance, medical_allowance, other_allowances, leave_encashment,
			arrears, provident_fund, professional_tax, income_tax,
			other_deductions, esic, advance, mlwf, is_active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NOW(), NOW())
	`

	_, err = q.Exec(ctx, query,
		s.ID, s.EmployeeID, s.BasicSalary, s.HRA, s.DA, s.SpecialAllowance,
		s.Conveyance, s.MedicalAllowance, s.OtherAllowances, s.LeaveEncashment,
		s.Arrears, s.ProvidentFund, s.ProfessionalTax, s.IncomeTax,
		s.OtherDeductions, s.ESIC, s.Advance, s.MLWF, s.IsActive,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_structure_employee_active") {
			return structure.SalaryStructure{}, structure.ErrStructureAlreadyExists
		}
		return structure.SalaryStructure{}, fmt.Errorf("failed to create salary structure: %w", err)
	}

	return r.GetByID(ctx, s.ID)
}

func (r *structureRepository) GetByID(ctx context.Context, id string) (structure.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM salary_structures s
		LEFT JOIN employees e ON s.employee_id = e.id
		WHERE s.id = $1
	`, structureColumns)

	s, err := scanStructure(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return structure.SalaryStructure{}, structure.ErrStructureNotFound
		}
		return structure.SalaryStructure{}, fmt.Errorf("failed to get salary structure: %w", err)
	}

	return s, nil
}

func (r *structureRepository) GetActiveByEmployeeID(ctx context.Context, employeeID string) (structure.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM salary_structures s
		LEFT JOIN employees e ON s.employee_id = e.id
		WHERE s.employee_id = $1 AND s.is_active = true
	`, structureColumns)

	s, err := scanStructure(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return structure.SalaryStructure{}, structure.ErrStructureNotFound
		}
		return structure.SalaryStructure{}, fmt.Errorf("failed to get active salary structure: %w", err)
	}

	return s, nil
}

func (r *structureRepository) List(ctx context.Context, isActive *bool) ([]structure.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM salary_structures s
		LEFT JOIN employees e ON s.employee_id = e.id
	`, structureColumns)

	args := []interface{}{}
	if isActive != nil {
		query += " WHERE s.is_active = $1"
		args = append(args, *isActive)
	}
	query += " ORDER BY s.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary structures: %w", err)
	}
	defer rows.Close()

	var structures []structure.SalaryStructure
	for rows.Next() {
		s, err := scanStructure(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary structure: %w", err)
		}
		structures = append(structures, s)
	}

	return structures, rows.Err()
}

func (r *structureRepository) Update(ctx context.Context, req structure.UpdateStructureRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := map[string]interface{}{}
	if req.BasicSalary != nil {
		updates["basic_salary"] = *req.BasicSalary
	}
	if req.HRA != nil {
		updates["hra"] = *req.HRA
	}
	if req.DA != nil {
		updates["da"] = *req.DA
	}
	if req.SpecialAllowance != nil {
		updates["special_allowance"] = *req.SpecialAllowance
	}
	if req.Conveyance != nil {
		updates["conveyance"] = *req.Conveyance
	}
	if req.MedicalAllowance != nil {
		updates["medical_allowance"] = *req.MedicalAllowance
	}
	if req.OtherAllowances != nil {
		updates["other_allowances"] = *req.OtherAllowances
	}
	if req.LeaveEncashment != nil {
		updates["leave_encashment"] = *req.LeaveEncashment
	}
	if req.Arrears != nil {
		updates["arrears"] = *req.Arrears
	}
	if req.ProvidentFund != nil {
		updates["provident_fund"] = *req.ProvidentFund
	}
	if req.ProfessionalTax != nil {
		updates["professional_tax"] = *req.ProfessionalTax
	}
	if req.IncomeTax != nil {
		updates["income_tax"] = *req.IncomeTax
	}
	if req.OtherDeductions != nil {
		updates["other_deductions"] = *req.OtherDeductions
	}
	if req.ESIC != nil {
		updates["esic"] = *req.ESIC
	}
	if req.Advance != nil {
		updates["advance"] = *req.Advance
	}
	if req.MLWF != nil {
		updates["mlwf"] = *req.MLWF
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		return nil
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

	sql := fmt.Sprintf("UPDATE salary_structures SET %s WHERE id = $%d RETURNING id", strings.Join(setClauses, ", "), i)
	args = append(args, req.ID)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return structure.ErrStructureNotFound
		}
		return fmt.Errorf("failed to update salary structure: %w", err)
	}

	return nil
}

func (r *structureRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_structures
		SET is_active = false, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var deactivatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deactivatedID); err != nil {
		if err == pgx.ErrNoRows {
			return structure.ErrStructureNotFound
		}
		return fmt.Errorf("failed to deactivate salary structure: %w", err)
	}

	return nil
}
