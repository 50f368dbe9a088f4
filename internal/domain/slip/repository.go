package slip

import "context"

type SlipRepository interface {
	Create(ctx context.Context, s SalarySlip) (SalarySlip, error)
	GetByID(ctx context.Context, id string) (SalarySlip, error)
	List(ctx context.Context, month *string, employeeID *string) ([]SalarySlip, error)
	MarkEmailed(ctx context.Context, id string) (SalarySlip, error)
}
