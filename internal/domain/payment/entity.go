package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusPending   Status = "pending"
)

// Payment is one entry in the standalone payment ledger. It tracks invoice
// payments from clients and is not wired into the payroll lifecycle.
type Payment struct {
	ID        string
	InvoiceID string
	Client    string
	Amount    decimal.Decimal
	Method    string
	Status    Status
	PaidAt    time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
