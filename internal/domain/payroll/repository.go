package payroll

import "context"

// PayrollRepository persists payroll records. Create relies on the
// uk_payroll_employee_month unique index for duplicate detection; there is no
// read-before-write guard, so the constraint error is the single source of
// truth under concurrent processing.
type PayrollRepository interface {
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	List(ctx context.Context, filter Filter) ([]PayrollRecord, int64, error)
	// ProcessedEmployeeIDs returns the ids of employees who already have a
	// record for the month.
	ProcessedEmployeeIDs(ctx context.Context, month string) (map[string]bool, error)
	UpdatePayment(ctx context.Context, id string, update PaymentUpdate) (PayrollRecord, error)
	Summary(ctx context.Context, month string) (SummaryResponse, error)
}
