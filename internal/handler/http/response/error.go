package response

import (
	"errors"
	"net/http"

	"github.com/stafflane/backoffice-backend-go/internal/domain/attendance"
	"github.com/stafflane/backoffice-backend-go/internal/domain/deduction"
	"github.com/stafflane/backoffice-backend-go/internal/domain/employee"
	"github.com/stafflane/backoffice-backend-go/internal/domain/payment"
	"github.com/stafflane/backoffice-backend-go/internal/domain/payroll"
	"github.com/stafflane/backoffice-backend-go/internal/domain/site"
	"github.com/stafflane/backoffice-backend-go/internal/domain/slip"
	"github.com/stafflane/backoffice-backend-go/internal/domain/structure"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Salary structure domain errors
	case errors.Is(err, structure.ErrStructureNotFound):
		NotFound(w, "Salary structure not found")
	case errors.Is(err, structure.ErrStructureAlreadyExists):
		Conflict(w, "An active salary structure already exists for this employee")
	case errors.Is(err, structure.ErrBasicSalaryRequired):
		BadRequest(w, "Basic salary must be greater than zero", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "Start date must not be after end date", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyExists):
		Conflict(w, "Payroll already processed for this employee and month")
	case errors.Is(err, payroll.ErrNoSalaryStructure):
		BadRequest(w, "No active salary structure for this employee", nil)
	case errors.Is(err, payroll.ErrInvalidPaymentStatus):
		BadRequest(w, "Invalid payment status", nil)
	case errors.Is(err, payroll.ErrPaidAmountOutOfRange):
		BadRequest(w, "Paid amount must be greater than zero and not exceed net salary", nil)
	case errors.Is(err, payroll.ErrPaymentDateRequired):
		BadRequest(w, "Payment date is required for this status", nil)
	case errors.Is(err, payroll.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)

	// Salary slip domain errors
	case errors.Is(err, slip.ErrSlipNotFound):
		NotFound(w, "Salary slip not found")
	case errors.Is(err, slip.ErrNoRecipientEmail):
		BadRequest(w, "Employee has no email address on file", nil)

	// Deduction domain errors
	case errors.Is(err, deduction.ErrDeductionNotFound):
		NotFound(w, "Deduction not found")
	case errors.Is(err, deduction.ErrInvalidType):
		BadRequest(w, "Deduction type must be advance, fine or other", nil)
	case errors.Is(err, deduction.ErrInvalidStatus):
		BadRequest(w, "Deduction status must be pending, approved, rejected or completed", nil)

	// Payment ledger domain errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")
	case errors.Is(err, payment.ErrInvalidPeriod):
		BadRequest(w, "Period must be daily, weekly, monthly or yearly", nil)

	// Site domain errors
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")
	case errors.Is(err, site.ErrSiteNameExists):
		Conflict(w, "A site with this name already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
