package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stafflane/backoffice-backend-go/internal/pkg/validator"
)

type ProcessRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
	// WorkingDays overrides the policy default when set.
	WorkingDays *int `json:"working_days,omitempty"`
	// LeaveCount is approved leave days, counted on top of the aggregate's
	// own leave bucket. Both reduce pay.
	LeaveCount int     `json:"leave_count"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *ProcessRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}
	if r.WorkingDays != nil && *r.WorkingDays <= 0 {
		errs = append(errs, validator.ValidationError{Field: "working_days", Message: "must be greater than zero"})
	}
	if r.LeaveCount < 0 {
		errs = append(errs, validator.ValidationError{Field: "leave_count", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProcessAllRequest struct {
	Month       string `json:"month"`
	WorkingDays *int   `json:"working_days,omitempty"`
}

func (r *ProcessAllRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}
	if r.WorkingDays != nil && *r.WorkingDays <= 0 {
		errs = append(errs, validator.ValidationError{Field: "working_days", Message: "must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ProcessOutcome is one employee's result inside a bulk run. A failure for
// one employee never aborts the batch.
type ProcessOutcome struct {
	EmployeeID string          `json:"employee_id"`
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	Record     *RecordResponse `json:"record,omitempty"`
}

type ProcessAllResponse struct {
	Month     string           `json:"month"`
	Processed int              `json:"processed"`
	Failed    int              `json:"failed"`
	Skipped   int              `json:"skipped"`
	Outcomes  []ProcessOutcome `json:"outcomes"`
}

type UpdatePaymentStatusRequest struct {
	ID          string
	Status      string           `json:"status"`
	PaidAmount  *decimal.Decimal `json:"paid_amount,omitempty"`
	PaymentDate *string          `json:"payment_date,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

var allowedPaymentStatuses = []string{
	string(PaymentStatusPending),
	string(PaymentStatusPaid),
	string(PaymentStatusHold),
	string(PaymentStatusPartPaid),
}

func (r *UpdatePaymentStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, allowedPaymentStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of pending, paid, hold, part-paid"})
	}
	if r.PaymentDate != nil {
		if _, ok := validator.IsValidDate(*r.PaymentDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be a valid YYYY-MM-DD date"})
		}
	}
	if r.PaidAmount != nil && r.PaidAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "paid_amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PaymentUpdate is the validated result of applying an
// UpdatePaymentStatusRequest against an existing record.
type PaymentUpdate struct {
	Status      PaymentStatus
	PaidAmount  *decimal.Decimal
	PaymentDate *time.Time
	Notes       *string
}

// ApplyPaymentRules checks a requested payment-status change against the
// record's net salary and returns the update to persist.
//
//   - part-paid requires 0 < paid_amount <= net_salary. The upper bound is
//     inclusive: paying exactly the net amount as part-paid is accepted.
//   - paid sets paid_amount to net_salary when none is supplied and requires
//     a payment date.
//   - hold and pending require nothing; supplied values are still applied.
func ApplyPaymentRules(req UpdatePaymentStatusRequest, netSalary decimal.Decimal) (PaymentUpdate, error) {
	update := PaymentUpdate{
		Status: PaymentStatus(req.Status),
		Notes:  req.Notes,
	}

	if req.PaymentDate != nil {
		d, ok := validator.IsValidDate(*req.PaymentDate)
		if !ok {
			return PaymentUpdate{}, ErrPaymentDateRequired
		}
		update.PaymentDate = &d
	}

	switch update.Status {
	case PaymentStatusPartPaid:
		if req.PaidAmount == nil {
			return PaymentUpdate{}, ErrPaidAmountOutOfRange
		}
		if !req.PaidAmount.IsPositive() || req.PaidAmount.GreaterThan(netSalary) {
			return PaymentUpdate{}, ErrPaidAmountOutOfRange
		}
		if update.PaymentDate == nil {
			return PaymentUpdate{}, ErrPaymentDateRequired
		}
		update.PaidAmount = req.PaidAmount
	case PaymentStatusPaid:
		if update.PaymentDate == nil {
			return PaymentUpdate{}, ErrPaymentDateRequired
		}
		amount := netSalary
		if req.PaidAmount != nil {
			if req.PaidAmount.IsNegative() || req.PaidAmount.GreaterThan(netSalary) {
				return PaymentUpdate{}, ErrPaidAmountOutOfRange
			}
			amount = *req.PaidAmount
		}
		update.PaidAmount = &amount
	case PaymentStatusHold, PaymentStatusPending:
		if req.PaidAmount != nil {
			if req.PaidAmount.IsNegative() || req.PaidAmount.GreaterThan(netSalary) {
				return PaymentUpdate{}, ErrPaidAmountOutOfRange
			}
			update.PaidAmount = req.PaidAmount
		}
	default:
		return PaymentUpdate{}, ErrInvalidPaymentStatus
	}

	return update, nil
}

type Filter struct {
	Month      *string
	Status     *string
	EmployeeID *string
	Page       int
	Limit      int
}

type RecordResponse struct {
	ID              string          `json:"id"`
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
	WorkingDays     int             `json:"working_days"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"payment_status"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	PaymentDate     *string         `json:"payment_date,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
}

func ToResponse(r PayrollRecord) RecordResponse {
	var paymentDate *string
	if r.PaymentDate != nil {
		s := r.PaymentDate.Format("2006-01-02")
		paymentDate = &s
	}

	return RecordResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.EmployeeName,
		Month:           r.Month,
		BasicSalary:     r.BasicSalary,
		TotalAllowances: r.TotalAllowances,
		TotalDeductions: r.TotalDeductions,
		NetSalary:       r.NetSalary,
		PresentDays:     r.PresentDays,
		AbsentDays:      r.AbsentDays,
		HalfDays:        r.HalfDays,
		LeaveDays:       r.LeaveDays,
		WorkingDays:     r.WorkingDays,
		Status:          string(r.Status),
		PaymentStatus:   string(r.PaymentStatus),
		PaidAmount:      r.PaidAmount,
		PaymentDate:     paymentDate,
		Notes:           r.Notes,
	}
}

func ToResponses(records []PayrollRecord) []RecordResponse {
	result := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToResponse(r))
	}
	return result
}

type ListResponse struct {
	Data       []RecordResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}

type SummaryResponse struct {
	Month           string          `json:"month"`
	TotalEmployees  int             `json:"total_employees"`
	TotalBasic      decimal.Decimal `json:"total_basic"`
	TotalAllowances decimal.Decimal `json:"total_allowances"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNetSalary  decimal.Decimal `json:"total_net_salary"`
	TotalPaidAmount decimal.Decimal `json:"total_paid_amount"`
	PendingCount    int             `json:"pending_count"`
	PaidCount       int             `json:"paid_count"`
	HoldCount       int             `json:"hold_count"`
	PartPaidCount   int             `json:"part_paid_count"`
}
