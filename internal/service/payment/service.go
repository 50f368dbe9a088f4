package payment

import (
	"context"
	"log/slog"

	"github.com/stafflane/backoffice-backend-go/internal/domain/payment"
)

type PaymentService interface {
	Create(ctx context.Context, req payment.CreatePaymentRequest) (payment.PaymentResponse, error)
	GetByID(ctx context.Context, id string) (payment.PaymentResponse, error)
	List(ctx context.Context, filter payment.Filter) (payment.ListResponse, error)
	MethodDistribution(ctx context.Context) ([]payment.MethodDistribution, error)
	Stats(ctx context.Context, period string) (payment.StatsResponse, error)
}

type paymentServiceImpl struct {
	paymentRepo payment.PaymentRepository
	logger      *slog.Logger
}

func NewPaymentService(paymentRepo payment.PaymentRepository, logger *slog.Logger) PaymentService {
	return &paymentServiceImpl{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

func (s *paymentServiceImpl) Create(ctx context.Context, req payment.CreatePaymentRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	created, err := s.paymentRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	s.logger.Info("payment recorded",
		slog.String("payment_id", created.ID),
		slog.String("invoice_id", created.InvoiceID),
		slog.String("status", string(created.Status)))
	return payment.ToResponse(created), nil
}

func (s *paymentServiceImpl) GetByID(ctx context.Context, id string) (payment.PaymentResponse, error) {
	p, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	return payment.ToResponse(p), nil
}

func (s *paymentServiceImpl) List(ctx context.Context, filter payment.Filter) (payment.ListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	payments, totalCount, err := s.paymentRepo.List(ctx, filter)
	if err != nil {
		return payment.ListResponse{}, err
	}

	data := make([]payment.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		data = append(data, payment.ToResponse(p))
	}

	return payment.ListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *paymentServiceImpl) MethodDistribution(ctx context.Context) ([]payment.MethodDistribution, error) {
	return s.paymentRepo.MethodDistribution(ctx)
}

func (s *paymentServiceImpl) Stats(ctx context.Context, period string) (payment.StatsResponse, error) {
	if !payment.IsValidPeriod(period) {
		return payment.StatsResponse{}, payment.ErrInvalidPeriod
	}

	buckets, err := s.paymentRepo.Stats(ctx, period)
	if err != nil {
		return payment.StatsResponse{}, err
	}

	return payment.StatsResponse{
		Period:  period,
		Buckets: buckets,
	}, nil
}
