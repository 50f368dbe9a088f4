package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/stafflane/backoffice-backend-go/internal/domain/employee"
	"github.com/stafflane/backoffice-backend-go/internal/domain/payroll"
	"github.com/stafflane/backoffice-backend-go/internal/domain/structure"
	attendanceService "github.com/stafflane/backoffice-backend-go/internal/service/attendance"
)

type PayrollService interface {
	Process(ctx context.Context, req payroll.ProcessRequest) (payroll.RecordResponse, error)
	ProcessAll(ctx context.Context, req payroll.ProcessAllRequest) (payroll.ProcessAllResponse, error)
	GetRecord(ctx context.Context, id string) (payroll.RecordResponse, error)
	ListRecords(ctx context.Context, filter payroll.Filter) (payroll.ListResponse, error)
	UpdatePaymentStatus(ctx context.Context, req payroll.UpdatePaymentStatusRequest) (payroll.RecordResponse, error)
	Summary(ctx context.Context, month string) (payroll.SummaryResponse, error)
}

type payrollServiceImpl struct {
	payrollRepo   payroll.PayrollRepository
	structureRepo structure.StructureRepository
	employeeRepo  employee.EmployeeRepository
	attendanceSvc attendanceService.AttendanceService
	logger        *slog.Logger
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	structureRepo structure.StructureRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceSvc attendanceService.AttendanceService,
	logger *slog.Logger,
) PayrollService {
	return &payrollServiceImpl{
		payrollRepo:   payrollRepo,
		structureRepo: structureRepo,
		employeeRepo:  employeeRepo,
		attendanceSvc: attendanceSvc,
		logger:        logger,
	}
}

func (s *payrollServiceImpl) Process(ctx context.Context, req payroll.ProcessRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	record, err := s.processOne(ctx, req.EmployeeID, req.Month, req.WorkingDays, req.LeaveCount, req.Notes)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	return payroll.ToResponse(record), nil
}

// processOne computes and persists the payroll record for one employee.
// Duplicate detection happens at insert time via the unique index on
// (employee_id, month); a prior existence check would race with concurrent
// processing, so none is made.
func (s *payrollServiceImpl) processOne(ctx context.Context, employeeID, month string, workingDays *int, leaveCount int, notes *string) (payroll.PayrollRecord, error) {
	st, err := s.structureRepo.GetActiveByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, structure.ErrStructureNotFound) {
			return payroll.PayrollRecord{}, payroll.ErrNoSalaryStructure
		}
		return payroll.PayrollRecord{}, err
	}

	days := 0
	if workingDays != nil {
		days = *workingDays
	}

	agg, err := s.attendanceSvc.AggregateForEmployee(ctx, employeeID, month, days)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	breakdown, err := Calculate(st, agg, leaveCount)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	record := payroll.PayrollRecord{
		EmployeeID:      employeeID,
		Month:           month,
		BasicSalary:     breakdown.BasicSalary,
		TotalAllowances: breakdown.TotalAllowances,
		TotalDeductions: breakdown.TotalDeductions,
		NetSalary:       breakdown.NetSalary,
		PresentDays:     agg.PresentDays,
		AbsentDays:      agg.AbsentDays,
		HalfDays:        agg.HalfDays,
		LeaveDays:       agg.LeaveDays + leaveCount,
		WorkingDays:     agg.TotalWorkingDays,
		Status:          payroll.RecordStatusProcessed,
		PaymentStatus:   payroll.PaymentStatusPending,
		PaidAmount:      decimal.Zero,
		Notes:           notes,
	}

	created, err := s.payrollRepo.Create(ctx, record)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	s.logger.Info("processed payroll",
		slog.String("employee_id", employeeID),
		slog.String("month", month),
		slog.String("net_salary", created.NetSalary.String()))

	return created, nil
}

func (s *payrollServiceImpl) ProcessAll(ctx context.Context, req payroll.ProcessAllRequest) (payroll.ProcessAllResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ProcessAllResponse{}, err
	}

	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return payroll.ProcessAllResponse{}, fmt.Errorf("failed to get employees: %w", err)
	}

	processed, err := s.payrollRepo.ProcessedEmployeeIDs(ctx, req.Month)
	if err != nil {
		return payroll.ProcessAllResponse{}, fmt.Errorf("failed to check processed employees: %w", err)
	}

	response := payroll.ProcessAllResponse{Month: req.Month}
	for _, emp := range employees {
		if processed[emp.ID] {
			response.Skipped++
			continue
		}

		// One employee's failure never aborts the batch.
		record, err := s.processOne(ctx, emp.ID, req.Month, req.WorkingDays, 0, nil)
		if err != nil {
			if errors.Is(err, payroll.ErrPayrollRecordAlreadyExists) {
				// Raced with a concurrent run; the record exists, so this
				// employee is done.
				response.Skipped++
				continue
			}
			response.Failed++
			response.Outcomes = append(response.Outcomes, payroll.ProcessOutcome{
				EmployeeID: emp.ID,
				Success:    false,
				Message:    err.Error(),
			})
			s.logger.Warn("payroll processing failed for employee",
				slog.String("employee_id", emp.ID),
				slog.String("month", req.Month),
				slog.String("error", err.Error()))
			continue
		}

		resp := payroll.ToResponse(record)
		response.Processed++
		response.Outcomes = append(response.Outcomes, payroll.ProcessOutcome{
			EmployeeID: emp.ID,
			Success:    true,
			Record:     &resp,
		})
	}

	return response, nil
}

func (s *payrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.RecordResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return payroll.ToResponse(record), nil
}

func (s *payrollServiceImpl) ListRecords(ctx context.Context, filter payroll.Filter) (payroll.ListResponse, error) {
	records, totalCount, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListResponse{}, err
	}

	return payroll.ListResponse{
		Data:       payroll.ToResponses(records),
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *payrollServiceImpl) UpdatePaymentStatus(ctx context.Context, req payroll.UpdatePaymentStatusRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	record, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	update, err := payroll.ApplyPaymentRules(req, record.NetSalary)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	updated, err := s.payrollRepo.UpdatePayment(ctx, req.ID, update)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	return payroll.ToResponse(updated), nil
}

func (s *payrollServiceImpl) Summary(ctx context.Context, month string) (payroll.SummaryResponse, error) {
	return s.payrollRepo.Summary(ctx, month)
}
