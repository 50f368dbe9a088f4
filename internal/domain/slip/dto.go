package slip

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stafflane/backoffice-backend-go/internal/pkg/validator"
)

type GenerateSlipRequest struct {
	PayrollID string `json:"payroll_id"`
}

func (r *GenerateSlipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PayrollID) {
		errs = append(errs, validator.ValidationError{Field: "payroll_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SlipResponse struct {
	ID              string          `json:"id"`
	PayrollID       string          `json:"payroll_id"`
	SlipNumber      string          `json:"slip_number"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    *string         `json:"employee_name,omitempty"`
	Month           string          `json:"month"`
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	TotalAllowances decimal.Decimal `json:"total_allowances"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
	PresentDays     int             `json:"present_days"`
	AbsentDays      int             `json:"absent_days"`
	HalfDays        int             `json:"half_days"`
	LeaveDays       int             `json:"leave_days"`
	GeneratedDate   string          `json:"generated_date"`
	EmailSent       bool            `json:"email_sent"`
	EmailSentAt     *string         `json:"email_sent_at,omitempty"`
}

func ToResponse(s SalarySlip) SlipResponse {
	var sentAt *string
	if s.EmailSentAt != nil {
		str := s.EmailSentAt.Format(time.RFC3339)
		sentAt = &str
	}

	return SlipResponse{
		ID:              s.ID,
		PayrollID:       s.PayrollID,
		SlipNumber:      s.SlipNumber,
		EmployeeID:      s.EmployeeID,
		EmployeeName:    s.EmployeeName,
		Month:           s.Month,
		BasicSalary:     s.BasicSalary,
		TotalAllowances: s.TotalAllowances,
		TotalDeductions: s.TotalDeductions,
		NetSalary:       s.NetSalary,
		PresentDays:     s.PresentDays,
		AbsentDays:      s.AbsentDays,
		HalfDays:        s.HalfDays,
		LeaveDays:       s.LeaveDays,
		GeneratedDate:   s.GeneratedDate.Format(time.RFC3339),
		EmailSent:       s.EmailSent,
		EmailSentAt:     sentAt,
	}
}

func ToResponses(slips []SalarySlip) []SlipResponse {
	result := make([]SlipResponse, 0, len(slips))
	for _, s := range slips {
		result = append(result, ToResponse(s))
	}
	return result
}
