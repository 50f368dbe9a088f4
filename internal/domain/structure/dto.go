package structure

import (
	"github.com/shopspring/decimal"

	"github.com/stafflane/backoffice-backend-go/internal/pkg/validator"
)

type CreateStructureRequest struct {
	EmployeeID       string          `json:"employee_id"`
	BasicSalary      decimal.Decimal `json:"basic_salary"`
	HRA              decimal.Decimal `json:"hra"`
	DA               decimal.Decimal `json:"da"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
	Conveyance       decimal.Decimal `json:"conveyance"`
	MedicalAllowance decimal.Decimal `json:"medical_allowance"`
	OtherAllowances  decimal.Decimal `json:"other_allowances"`
	LeaveEncashment  decimal.Decimal `json:"leave_encashment"`
	Arrears          decimal.Decimal `json:"arrears"`
	ProvidentFund    decimal.Decimal `json:"provident_fund"`
	ProfessionalTax  decimal.Decimal `json:"professional_tax"`
	IncomeTax        decimal.Decimal `json:"income_tax"`
	OtherDeductions  decimal.Decimal `json:"other_deductions"`
	ESIC             decimal.Decimal `json:"esic"`
	Advance          decimal.Decimal `json:"advance"`
	MLWF             decimal.Decimal `json:"mlwf"`
}

func (r *CreateStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !r.BasicSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be greater than zero"})
	}

	amounts := map[string]decimal.Decimal{
		"hra":               r.HRA,
		"da":                r.DA,
		"special_allowance": r.SpecialAllowance,
		"conveyance":        r.Conveyance,
		"medical_allowance": r.MedicalAllowance,
		"other_allowances":  r.OtherAllowances,
		"leave_encashment":  r.LeaveEncashment,
		"arrears":           r.Arrears,
		"provident_fund":    r.ProvidentFund,
		"professional_tax":  r.ProfessionalTax,
		"income_tax":        r.IncomeTax,
		"other_deductions":  r.OtherDeductions,
		"esic":              r.ESIC,
		"advance":           r.Advance,
		"mlwf":              r.MLWF,
	}
	for field, amount := range amounts {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateStructureRequest) ToEntity() SalaryStructure {
	return SalaryStructure{
		EmployeeID:       r.EmployeeID,
		BasicSalary:      r.BasicSalary,
		HRA:              r.HRA,
		DA:               r.DA,
		SpecialAllowance: r.SpecialAllowance,
		Conveyance:       r.Conveyance,
		MedicalAllowance: r.MedicalAllowance,
		OtherAllowances:  r.OtherAllowances,
		LeaveEncashment:  r.LeaveEncashment,
		Arrears:          r.Arrears,
		ProvidentFund:    r.ProvidentFund,
		ProfessionalTax:  r.ProfessionalTax,
		IncomeTax:        r.IncomeTax,
		OtherDeductions:  r.OtherDeductions,
		ESIC:             r.ESIC,
		Advance:          r.Advance,
		MLWF:             r.MLWF,
		IsActive:         true,
	}
}

type UpdateStructureRequest struct {
	ID               string
	BasicSalary      *decimal.Decimal `json:"basic_salary,omitempty"`
	HRA              *decimal.Decimal `json:"hra,omitempty"`
	DA               *decimal.Decimal `json:"da,omitempty"`
	SpecialAllowance *decimal.Decimal `json:"special_allowance,omitempty"`
	Conveyance       *decimal.Decimal `json:"conveyance,omitempty"`
	MedicalAllowance *decimal.Decimal `json:"medical_allowance,omitempty"`
	OtherAllowances  *decimal.Decimal `json:"other_allowances,omitempty"`
	LeaveEncashment  *decimal.Decimal `json:"leave_encashment,omitempty"`
	Arrears          *decimal.Decimal `json:"arrears,omitempty"`
	ProvidentFund    *decimal.Decimal `json:"provident_fund,omitempty"`
	ProfessionalTax  *decimal.Decimal `json:"professional_tax,omitempty"`
	IncomeTax        *decimal.Decimal `json:"income_tax,omitempty"`
	OtherDeductions  *decimal.Decimal `json:"other_deductions,omitempty"`
	ESIC             *decimal.Decimal `json:"esic,omitempty"`
	Advance          *decimal.Decimal `json:"advance,omitempty"`
	MLWF             *decimal.Decimal `json:"mlwf,omitempty"`
	IsActive         *bool            `json:"is_active,omitempty"`
}

func (r *UpdateStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BasicSalary != nil && !r.BasicSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be greater than zero"})
	}

	amounts := map[string]*decimal.Decimal{
		"hra":               r.HRA,
		"da":                r.DA,
		"special_allowance": r.SpecialAllowance,
		"conveyance":        r.Conveyance,
		"medical_allowance": r.MedicalAllowance,
		"other_allowances":  r.OtherAllowances,
		"leave_encashment":  r.LeaveEncashment,
		"arrears":           r.Arrears,
		"provident_fund":    r.ProvidentFund,
		"professional_tax":  r.ProfessionalTax,
		"income_tax":        r.IncomeTax,
		"other_deductions":  r.OtherDeductions,
		"esic":              r.ESIC,
		"advance":           r.Advance,
		"mlwf":              r.MLWF,
	}
	for field, amount := range amounts {
		if amount != nil && amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StructureResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     *string         `json:"employee_name,omitempty"`
	BasicSalary      decimal.Decimal `json:"basic_salary"`
	HRA              decimal.Decimal `json:"hra"`
	DA               decimal.Decimal `json:"da"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
	Conveyance       decimal.Decimal `json:"conveyance"`
	MedicalAllowance decimal.Decimal `json:"medical_allowance"`
	OtherAllowances  decimal.Decimal `json:"other_allowances"`
	LeaveEncashment  decimal.Decimal `json:"leave_encashment"`
	Arrears          decimal.Decimal `json:"arrears"`
	ProvidentFund    decimal.Decimal `json:"provident_fund"`
	ProfessionalTax  decimal.Decimal `json:"professional_tax"`
	IncomeTax        decimal.Decimal `json:"income_tax"`
	OtherDeductions  decimal.Decimal `json:"other_deductions"`
	ESIC             decimal.Decimal `json:"esic"`
	Advance          decimal.Decimal `json:"advance"`
	MLWF             decimal.Decimal `json:"mlwf"`
	TotalAllowances  decimal.Decimal `json:"total_allowances"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	IsActive         bool            `json:"is_active"`
}

func ToResponse(s SalaryStructure) StructureResponse {
	return StructureResponse{
		ID:               s.ID,
		EmployeeID:       s.EmployeeID,
		EmployeeName:     s.EmployeeName,
		BasicSalary:      s.BasicSalary,
		HRA:              s.HRA,
		DA:               s.DA,
		SpecialAllowance: s.SpecialAllowance,
		Conveyance:       s.Conveyance,
		MedicalAllowance: s.MedicalAllowance,
		OtherAllowances:  s.OtherAllowances,
		LeaveEncashment:  s.LeaveEncashment,
		Arrears:          s.Arrears,
		ProvidentFund:    s.ProvidentFund,
		ProfessionalTax:  s.ProfessionalTax,
		IncomeTax:        s.IncomeTax,
		OtherDeductions:  s.OtherDeductions,
		ESIC:             s.ESIC,
		Advance:          s.Advance,
		MLWF:             s.MLWF,
		TotalAllowances:  s.TotalAllowances(),
		TotalDeductions:  s.TotalDeductions(),
		IsActive:         s.IsActive,
	}
}
