package slip

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalarySlip is a point-in-time snapshot of a payroll record, suitable for
// printing or emailing. Regenerating a slip for the same payroll record
// creates a new slip; existing slips are never altered except to record that
// they were emailed.
type SalarySlip struct {
	ID         string
	PayrollID  string
	SlipNumber string
	EmployeeID string
	Month      string

	BasicSalary     decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal

	PresentDays int
	AbsentDays  int
	HalfDays    int
	LeaveDays   int

	GeneratedDate time.Time
	EmailSent     bool
	EmailSentAt   *time.Time

	CreatedAt time.Time

	// Joined fields
	EmployeeName *string
}
