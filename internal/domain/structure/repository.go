package structure

import "context"

type StructureRepository interface {
	Create(ctx context.Context, s SalaryStructure) (SalaryStructure, error)
	GetByID(ctx context.Context, id string) (SalaryStructure, error)
	GetActiveByEmployeeID(ctx context.Context, employeeID string) (SalaryStructure, error)
	List(ctx context.Context, isActive *bool) ([]SalaryStructure, error)
	Update(ctx context.Context, req UpdateStructureRequest) error
	Deactivate(ctx context.Context, id string) error
}
