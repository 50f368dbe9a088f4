package deduction

import "context"

type DeductionRepository interface {
	Create(ctx context.Context, d Deduction) (Deduction, error)
	GetByID(ctx context.Context, id string) (Deduction, error)
	List(ctx context.Context, filter Filter) ([]Deduction, int64, error)
	Update(ctx context.Context, req UpdateDeductionRequest) (Deduction, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (StatsResponse, error)
}
