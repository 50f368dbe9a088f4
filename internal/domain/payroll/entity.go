package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordStatus tracks processing. A record only ever exists as processed:
// "pending" is the implicit state of an employee-month with no record yet,
// and nothing reverts or recomputes a record once created.
type RecordStatus string

const (
	RecordStatusProcessed RecordStatus = "processed"
)

// PaymentStatus is the payment decision taken after processing.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusHold     PaymentStatus = "hold"
	PaymentStatusPartPaid PaymentStatus = "part-paid"
)

// PayrollRecord is the processed payroll for one employee and one month
// ("YYYY-MM"). The (employee_id, month) pair is unique at the storage layer;
// the breakdown and attendance counts are snapshots taken at processing time.
type PayrollRecord struct {
	ID         string
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
	WorkingDays int

	Status        RecordStatus
	PaymentStatus PaymentStatus
	PaidAmount    decimal.Decimal
	PaymentDate   *time.Time
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}
