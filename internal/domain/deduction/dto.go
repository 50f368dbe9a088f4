package deduction

import (
	"github.com/shopspring/decimal"

	"github.com/stafflane/backoffice-backend-go/internal/pkg/validator"
)

var (
	allowedTypes    = []string{string(TypeAdvance), string(TypeFine), string(TypeOther)}
	allowedStatuses = []string{string(StatusPending), string(StatusApproved), string(StatusRejected), string(StatusCompleted)}
)

type CreateDeductionRequest struct {
	EmployeeID      string          `json:"employee_id"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	FineAmount      decimal.Decimal `json:"fine_amount"`
	RepaymentMonths int             `json:"repayment_months"`
	AppliedMonth    string          `json:"applied_month"`
	Reason          *string         `json:"reason,omitempty"`
}

func (r *CreateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsInSlice(r.Type, allowedTypes) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be advance, fine or other"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if r.FineAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "fine_amount", Message: "must be non-negative"})
	}
	if r.RepaymentMonths < 0 {
		errs = append(errs, validator.ValidationError{Field: "repayment_months", Message: "must be non-negative"})
	}
	if r.AppliedMonth != "" && !validator.IsValidMonth(r.AppliedMonth) {
		errs = append(errs, validator.ValidationError{Field: "applied_month", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateDeductionRequest) ToEntity() Deduction {
	return Deduction{
		EmployeeID:        r.EmployeeID,
		Type:              Type(r.Type),
		Amount:            r.Amount,
		FineAmount:        r.FineAmount,
		RepaymentMonths:   r.RepaymentMonths,
		InstallmentAmount: InstallmentFor(r.Amount, r.RepaymentMonths),
		Status:            StatusPending,
		AppliedMonth:      r.AppliedMonth,
		Reason:            r.Reason,
	}
}

type UpdateDeductionRequest struct {
	ID              string
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	FineAmount      *decimal.Decimal `json:"fine_amount,omitempty"`
	RepaymentMonths *int             `json:"repayment_months,omitempty"`
	Status          *string          `json:"status,omitempty"`
	AppliedMonth    *string          `json:"applied_month,omitempty"`
	Reason          *string          `json:"reason,omitempty"`
}

func (r *UpdateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if r.FineAmount != nil && r.FineAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "fine_amount", Message: "must be non-negative"})
	}
	if r.RepaymentMonths != nil && *r.RepaymentMonths < 0 {
		errs = append(errs, validator.ValidationError{Field: "repayment_months", Message: "must be non-negative"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, allowedStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be pending, approved, rejected or completed"})
	}
	if r.AppliedMonth != nil && *r.AppliedMonth != "" && !validator.IsValidMonth(*r.AppliedMonth) {
		errs = append(errs, validator.ValidationError{Field: "applied_month", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	Status *string
	Type   *string
	Search *string
	Page   int
	Limit  int
}

type DeductionResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	EmployeeName      *string         `json:"employee_name,omitempty"`
	Type              string          `json:"type"`
	Amount            decimal.Decimal `json:"amount"`
	FineAmount        decimal.Decimal `json:"fine_amount"`
	RepaymentMonths   int             `json:"repayment_months"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
	Status            string          `json:"status"`
	AppliedMonth      string          `json:"applied_month,omitempty"`
	Reason            *string         `json:"reason,omitempty"`
}

func ToResponse(d Deduction) DeductionResponse {
	return DeductionResponse{
		ID:                d.ID,
		EmployeeID:        d.EmployeeID,
		EmployeeName:      d.EmployeeName,
		Type:              string(d.Type),
		Amount:            d.Amount,
		FineAmount:        d.FineAmount,
		RepaymentMonths:   d.RepaymentMonths,
		InstallmentAmount: d.InstallmentAmount,
		Status:            string(d.Status),
		AppliedMonth:      d.AppliedMonth,
		Reason:            d.Reason,
	}
}

type ListResponse struct {
	Data       []DeductionResponse `json:"data"`
	TotalCount int64               `json:"total_count"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
}

type StatsResponse struct {
	TotalCount       int64           `json:"total_count"`
	PendingCount     int64           `json:"pending_count"`
	ApprovedCount    int64           `json:"approved_count"`
	CompletedCount   int64           `json:"completed_count"`
	TotalAdvances    decimal.Decimal `json:"total_advances"`
	TotalFines       decimal.Decimal `json:"total_fines"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
}
