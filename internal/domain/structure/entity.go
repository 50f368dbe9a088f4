package structure

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryStructure is the fixed compensation template for one employee.
// At most one active structure exists per employee.
type SalaryStructure struct {
	ID         string
	EmployeeID string

	// Earnings
	BasicSalary      decimal.Decimal
	HRA              decimal.Decimal
	DA               decimal.Decimal
	SpecialAllowance decimal.Decimal
	Conveyance       decimal.Decimal
	MedicalAllowance decimal.Decimal
	OtherAllowances  decimal.Decimal
	LeaveEncashment  decimal.Decimal
	Arrears          decimal.Decimal

	// Deductions
	ProvidentFund   decimal.Decimal
	ProfessionalTax decimal.Decimal
	IncomeTax       decimal.Decimal
	OtherDeductions decimal.Decimal
	ESIC            decimal.Decimal
	Advance         decimal.Decimal
	MLWF            decimal.Decimal

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}

// TotalAllowances sums every earning component except basic salary.
func (s SalaryStructure) TotalAllowances() decimal.Decimal {
	return s.HRA.
		Add(s.DA).
		Add(s.SpecialAllowance).
		Add(s.Conveyance).
		Add(s.MedicalAllowance).
		Add(s.OtherAllowances).
		Add(s.LeaveEncashment).
		Add(s.Arrears)
}

// TotalDeductions sums every deduction component.
func (s SalaryStructure) TotalDeductions() decimal.Decimal {
	return s.ProvidentFund.
		Add(s.ProfessionalTax).
		Add(s.IncomeTax).
		Add(s.OtherDeductions).
		Add(s.ESIC).
		Add(s.Advance).
		Add(s.MLWF)
}
