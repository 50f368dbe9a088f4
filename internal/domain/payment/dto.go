package payment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stafflane/backoffice-backend-go/internal/pkg/validator"
)

var (
	allowedStatuses = []string{string(StatusCompleted), string(StatusFailed), string(StatusPending)}
	allowedPeriods  = []string{"daily", "weekly", "monthly", "yearly"}
)

type CreatePaymentRequest struct {
	InvoiceID string          `json:"invoice_id"`
	Client    string          `json:"client"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
	PaidAt    *string         `json:"paid_at,omitempty"`
}

func (r *CreatePaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.InvoiceID) {
		errs = append(errs, validator.ValidationError{Field: "invoice_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Client) {
		errs = append(errs, validator.ValidationError{Field: "client", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if validator.IsEmpty(r.Method) {
		errs = append(errs, validator.ValidationError{Field: "method", Message: "is required"})
	}
	if !validator.IsInSlice(r.Status, allowedStatuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be completed, failed or pending"})
	}
	if r.PaidAt != nil {
		if _, ok := validator.IsValidDateTime(*r.PaidAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "paid_at", Message: "must be a valid ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreatePaymentRequest) ToEntity() Payment {
	paidAt := time.Now()
	if r.PaidAt != nil {
		if t, ok := validator.IsValidDateTime(*r.PaidAt); ok {
			paidAt = t
		}
	}

	return Payment{
		InvoiceID: r.InvoiceID,
		Client:    r.Client,
		Amount:    r.Amount,
		Method:    r.Method,
		Status:    Status(r.Status),
		PaidAt:    paidAt,
	}
}

// IsValidPeriod reports whether p is an accepted stats granularity.
func IsValidPeriod(p string) bool {
	return validator.IsInSlice(p, allowedPeriods)
}

type Filter struct {
	Status *string
	Method *string
	Client *string
	Page   int
	Limit  int
}

type PaymentResponse struct {
	ID        string          `json:"id"`
	InvoiceID string          `json:"invoice_id"`
	Client    string          `json:"client"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
	PaidAt    string          `json:"paid_at"`
}

func ToResponse(p Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		InvoiceID: p.InvoiceID,
		Client:    p.Client,
		Amount:    p.Amount,
		Method:    p.Method,
		Status:    string(p.Status),
		PaidAt:    p.PaidAt.Format(time.RFC3339),
	}
}

type ListResponse struct {
	Data       []PaymentResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

// MethodDistribution is one payment method's share of the ledger.
type MethodDistribution struct {
	Method string          `json:"method"`
	Count  int64           `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// StatsBucket is one time bucket of the period stats rollup.
type StatsBucket struct {
	Bucket         string          `json:"bucket"`
	Count          int64           `json:"count"`
	Total          decimal.Decimal `json:"total"`
	CompletedCount int64           `json:"completed_count"`
	FailedCount    int64           `json:"failed_count"`
	PendingCount   int64           `json:"pending_count"`
}

type StatsResponse struct {
	Period  string        `json:"period"`
	Buckets []StatsBucket `json:"buckets"`
}
