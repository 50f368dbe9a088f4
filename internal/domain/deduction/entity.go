package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeAdvance Type = "advance"
	TypeFine    Type = "fine"
	TypeOther   Type = "other"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

// Deduction is an advance, fine or other deduction against an employee.
// It references the employee directly and is deliberately not reconciled into
// the payroll record's own deduction fields.
type Deduction struct {
	ID         string
	EmployeeID string
	Type       Type
	Amount     decimal.Decimal
	// FineAmount only applies to fines.
	FineAmount decimal.Decimal
	// RepaymentMonths and InstallmentAmount only apply to advances.
	RepaymentMonths   int
	InstallmentAmount decimal.Decimal
	Status            Status
	AppliedMonth      string
	Reason            *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	EmployeeName *string
}

// InstallmentFor derives the monthly installment for an advance. It is a pure
// function of the amount and repayment months; zero months means the whole
// amount is due at once.
func InstallmentFor(amount decimal.Decimal, repaymentMonths int) decimal.Decimal {
	if repaymentMonths <= 0 {
		return amount
	}
	return amount.Div(decimal.NewFromInt(int64(repaymentMonths))).Round(2)
}
