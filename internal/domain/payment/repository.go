package payment

import "context"

type PaymentRepository interface {
	Create(ctx context.Context, p Payment) (Payment, error)
	GetByID(ctx context.Context, id string) (Payment, error)
	List(ctx context.Context, filter Filter) ([]Payment, int64, error)
	MethodDistribution(ctx context.Context) ([]MethodDistribution, error)
	Stats(ctx context.Context, period string) ([]StatsBucket, error)
}
