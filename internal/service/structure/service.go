package structure

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/stafflane/backoffice-backend-go/internal/domain/employee"
	"github.com/stafflane/backoffice-backend-go/internal/domain/structure"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/database"
	"github.com/stafflane/backoffice-backend-go/internal/repository/postgresql"
)

type StructureService interface {
	Create(ctx context.Context, req structure.CreateStructureRequest) (structure.StructureResponse, error)
	GetByID(ctx context.Context, id string) (structure.StructureResponse, error)
	GetActiveByEmployeeID(ctx context.Context, employeeID string) (structure.StructureResponse, error)
	List(ctx context.Context, isActive *bool) ([]structure.StructureResponse, error)
	Update(ctx context.Context, req structure.UpdateStructureRequest) (structure.StructureResponse, error)
	Deactivate(ctx context.Context, id string) error
}

type structureServiceImpl struct {
	db            *database.DB
	structureRepo structure.StructureRepository
	employeeRepo  employee.EmployeeRepository
	logger        *slog.Logger
}

func NewStructureService(
	db *database.DB,
	structureRepo structure.StructureRepository,
	employeeRepo employee.EmployeeRepository,
	logger *slog.Logger,
) StructureService {
	return &structureServiceImpl{
		db:            db,
		structureRepo: structureRepo,
		employeeRepo:  employeeRepo,
		logger:        logger,
	}
}

func (s *structureServiceImpl) Create(ctx context.Context, req structure.CreateStructureRequest) (structure.StructureResponse, error) {
	if err := req.Validate(); err != nil {
		return structure.StructureResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return structure.StructureResponse{}, err
	}

	// An employee carries at most one active structure. The repository
	// deactivates any previous one inside the same transaction, so a create
	// doubles as a revision.
	var created structure.SalaryStructure
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var txErr error
		created, txErr = s.structureRepo.Create(txCtx, req.ToEntity())
		return txErr
	})
	if err != nil {
		return structure.StructureResponse{}, err
	}

	s.logger.Info("salary structure created",
		slog.String("structure_id", created.ID),
		slog.String("employee_id", created.EmployeeID))
	return structure.ToResponse(created), nil
}

func (s *structureServiceImpl) GetByID(ctx context.Context, id string) (structure.StructureResponse, error) {
	st, err := s.structureRepo.GetByID(ctx, id)
	if err != nil {
		return structure.StructureResponse{}, err
	}
	return structure.ToResponse(st), nil
}

func (s *structureServiceImpl) GetActiveByEmployeeID(ctx context.Context, employeeID string) (structure.StructureResponse, error) {
	st, err := s.structureRepo.GetActiveByEmployeeID(ctx, employeeID)
	if err != nil {
		return structure.StructureResponse{}, err
	}
	return structure.ToResponse(st), nil
}

func (s *structureServiceImpl) List(ctx context.Context, isActive *bool) ([]structure.StructureResponse, error) {
	structures, err := s.structureRepo.List(ctx, isActive)
	if err != nil {
		return nil, err
	}

	result := make([]structure.StructureResponse, 0, len(structures))
	for _, st := range structures {
		result = append(result, structure.ToResponse(st))
	}
	return result, nil
}

func (s *structureServiceImpl) Update(ctx context.Context, req structure.UpdateStructureRequest) (structure.StructureResponse, error) {
	if err := req.Validate(); err != nil {
		return structure.StructureResponse{}, err
	}

	if _, err := s.structureRepo.GetByID(ctx, req.ID); err != nil {
		return structure.StructureResponse{}, err
	}
	if err := s.structureRepo.Update(ctx, req); err != nil {
		return structure.StructureResponse{}, err
	}

	updated, err := s.structureRepo.GetByID(ctx, req.ID)
	if err != nil {
		return structure.StructureResponse{}, err
	}
	return structure.ToResponse(updated), nil
}

func (s *structureServiceImpl) Deactivate(ctx context.Context, id string) error {
	if _, err := s.structureRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.structureRepo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.logger.Info("salary structure deactivated", slog.String("structure_id", id))
	return nil
}
