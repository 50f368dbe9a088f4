package deduction

import (
	"context"
	"log/slog"

	"github.com/stafflane/backoffice-backend-go/internal/domain/deduction"
	"github.com/stafflane/backoffice-backend-go/internal/domain/employee"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/cache"
)

const statsCacheKey = "deduction:stats"

type DeductionService interface {
	Create(ctx context.Context, req deduction.CreateDeductionRequest) (deduction.DeductionResponse, error)
	GetByID(ctx context.Context, id string) (deduction.DeductionResponse, error)
	List(ctx context.Context, filter deduction.Filter) (deduction.ListResponse, error)
	Update(ctx context.Context, req deduction.UpdateDeductionRequest) (deduction.DeductionResponse, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (deduction.StatsResponse, error)
}

type deductionServiceImpl struct {
	deductionRepo deduction.DeductionRepository
	employeeRepo  employee.EmployeeRepository
	statsCache    *cache.TTLCache
	logger        *slog.Logger
}

func NewDeductionService(
	deductionRepo deduction.DeductionRepository,
	employeeRepo employee.EmployeeRepository,
	statsCache *cache.TTLCache,
	logger *slog.Logger,
) DeductionService {
	return &deductionServiceImpl{
		deductionRepo: deductionRepo,
		employeeRepo:  employeeRepo,
		statsCache:    statsCache,
		logger:        logger,
	}
}

func (s *deductionServiceImpl) Create(ctx context.Context, req deduction.CreateDeductionRequest) (deduction.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.DeductionResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return deduction.DeductionResponse{}, err
	}

	created, err := s.deductionRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return deduction.DeductionResponse{}, err
	}
	s.statsCache.Invalidate(statsCacheKey)

	s.logger.Info("deduction created",
		slog.String("deduction_id", created.ID),
		slog.String("employee_id", created.EmployeeID),
		slog.String("type", string(created.Type)))
	return deduction.ToResponse(created), nil
}

func (s *deductionServiceImpl) GetByID(ctx context.Context, id string) (deduction.DeductionResponse, error) {
	d, err := s.deductionRepo.GetByID(ctx, id)
	if err != nil {
		return deduction.DeductionResponse{}, err
	}
	return deduction.ToResponse(d), nil
}

func (s *deductionServiceImpl) List(ctx context.Context, filter deduction.Filter) (deduction.ListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	deductions, totalCount, err := s.deductionRepo.List(ctx, filter)
	if err != nil {
		return deduction.ListResponse{}, err
	}

	data := make([]deduction.DeductionResponse, 0, len(deductions))
	for _, d := range deductions {
		data = append(data, deduction.ToResponse(d))
	}

	return deduction.ListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *deductionServiceImpl) Update(ctx context.Context, req deduction.UpdateDeductionRequest) (deduction.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.DeductionResponse{}, err
	}

	if _, err := s.deductionRepo.GetByID(ctx, req.ID); err != nil {
		return deduction.DeductionResponse{}, err
	}

	// The repository recomputes the installment whenever amount or
	// repayment months change.
	updated, err := s.deductionRepo.Update(ctx, req)
	if err != nil {
		return deduction.DeductionResponse{}, err
	}
	s.statsCache.Invalidate(statsCacheKey)

	return deduction.ToResponse(updated), nil
}

func (s *deductionServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.deductionRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.deductionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.statsCache.Invalidate(statsCacheKey)

	s.logger.Info("deduction deleted", slog.String("deduction_id", id))
	return nil
}

// Stats serves the dashboard counters. The cache only shortens the window
// between identical reads; every write path invalidates it.
func (s *deductionServiceImpl) Stats(ctx context.Context) (deduction.StatsResponse, error) {
	if cached, ok := s.statsCache.Get(statsCacheKey); ok {
		if stats, ok := cached.(deduction.StatsResponse); ok {
			return stats, nil
		}
	}

	stats, err := s.deductionRepo.Stats(ctx)
	if err != nil {
		return deduction.StatsResponse{}, err
	}
	s.statsCache.Set(statsCacheKey, stats)
	return stats, nil
}
