package payroll

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflane/backoffice-backend-go/internal/domain/attendance"
	"github.com/stafflane/backoffice-backend-go/internal/domain/employee"
	"github.com/stafflane/backoffice-backend-go/internal/domain/payroll"
	"github.com/stafflane/backoffice-backend-go/internal/domain/structure"
)

type fakeStructureRepo struct {
	structures map[string]structure.SalaryStructure
	lookups    []string
}

func (f *fakeStructureRepo) Create(ctx context.Context, s structure.SalaryStructure) (structure.SalaryStructure, error) {
	return s, nil
}

func (f *fakeStructureRepo) GetByID(ctx context.Context, id string) (structure.SalaryStructure, error) {
	return structure.SalaryStructure{}, structure.ErrStructureNotFound
}

func (f *fakeStructureRepo) GetActiveByEmployeeID(ctx context.Context, employeeID string) (structure.SalaryStructure, error) {
	f.lookups = append(f.lookups, employeeID)
	st, ok := f.structures[employeeID]
	if !ok {
		return structure.SalaryStructure{}, structure.ErrStructureNotFound
	}
	return st, nil
}

func (f *fakeStructureRepo) List(ctx context.Context, isActive *bool) ([]structure.SalaryStructure, error) {
	return nil, nil
}

func (f *fakeStructureRepo) Update(ctx context.Context, req structure.UpdateStructureRequest) error {
	return nil
}

func (f *fakeStructureRepo) Deactivate(ctx context.Context, id string) error {
	return nil
}

type fakePayrollRepo struct {
	processed  map[string]bool
	duplicates map[string]bool
	created    []payroll.PayrollRecord
}

func (f *fakePayrollRepo) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	if f.duplicates[record.EmployeeID] {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
	}
	record.ID = "rec-" + record.EmployeeID
	f.created = append(f.created, record)
	return record, nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

func (f *fakePayrollRepo) List(ctx context.Context, filter payroll.Filter) ([]payroll.PayrollRecord, int64, error) {
	return nil, 0, nil
}

func (f *fakePayrollRepo) ProcessedEmployeeIDs(ctx context.Context, month string) (map[string]bool, error) {
	return f.processed, nil
}

func (f *fakePayrollRepo) UpdatePayment(ctx context.Context, id string, update payroll.PaymentUpdate) (payroll.PayrollRecord, error) {
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

func (f *fakePayrollRepo) Summary(ctx context.Context, month string) (payroll.SummaryResponse, error) {
	return payroll.SummaryResponse{}, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

type fakeAttendanceService struct{}

func (f *fakeAttendanceService) Ingest(ctx context.Context, req attendance.IngestRequest) (attendance.IngestResult, error) {
	return attendance.IngestResult{}, nil
}

func (f *fakeAttendanceService) List(ctx context.Context, filter attendance.Filter) (attendance.ListResponse, error) {
	return attendance.ListResponse{}, nil
}

func (f *fakeAttendanceService) MonthlyAggregates(ctx context.Context, month string, workingDays int) ([]attendance.AggregateResponse, error) {
	return nil, nil
}

func (f *fakeAttendanceService) AggregateForEmployee(ctx context.Context, employeeID, month string, workingDays int) (attendance.Aggregate, error) {
	return attendance.Aggregate{
		EmployeeID:       employeeID,
		PresentDays:      20,
		AbsentDays:       2,
		TotalWorkingDays: 22,
	}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcessAll_MixedBatch(t *testing.T) {
	structureRepo := &fakeStructureRepo{structures: map[string]structure.SalaryStructure{
		"emp-ok":   baseStructure(),
		"emp-race": baseStructure(),
	}}
	payrollRepo := &fakePayrollRepo{
		processed:  map[string]bool{"emp-done": true},
		duplicates: map[string]bool{"emp-race": true},
	}
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-ok", IsActive: true},
		{ID: "emp-nostructure", IsActive: true},
		{ID: "emp-done", IsActive: true},
		{ID: "emp-race", IsActive: true},
	}}

	svc := NewPayrollService(payrollRepo, structureRepo, employeeRepo, &fakeAttendanceService{}, testLogger())

	resp, err := svc.ProcessAll(context.Background(), payroll.ProcessAllRequest{Month: "2025-08"})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Processed)
	assert.Equal(t, 1, resp.Failed)
	// emp-done (already has a record) and emp-race (lost the insert race).
	assert.Equal(t, 2, resp.Skipped)

	require.Len(t, resp.Outcomes, 2)
	assert.True(t, resp.Outcomes[0].Success)
	assert.Equal(t, "emp-ok", resp.Outcomes[0].EmployeeID)
	require.NotNil(t, resp.Outcomes[0].Record)
	assert.True(t, resp.Outcomes[0].Record.NetSalary.Equal(dec(20000)),
		"net salary = %s", resp.Outcomes[0].Record.NetSalary)

	assert.False(t, resp.Outcomes[1].Success)
	assert.Equal(t, "emp-nostructure", resp.Outcomes[1].EmployeeID)
	assert.Equal(t, payroll.ErrNoSalaryStructure.Error(), resp.Outcomes[1].Message)

	// Only the one clean insert landed.
	require.Len(t, payrollRepo.created, 1)
	assert.Equal(t, "emp-ok", payrollRepo.created[0].EmployeeID)

	// Pre-processed employees are skipped before any structure lookup.
	assert.NotContains(t, structureRepo.lookups, "emp-done")
}

func TestProcessAll_InvalidMonth(t *testing.T) {
	svc := NewPayrollService(&fakePayrollRepo{}, &fakeStructureRepo{}, &fakeEmployeeRepo{}, &fakeAttendanceService{}, testLogger())

	_, err := svc.ProcessAll(context.Background(), payroll.ProcessAllRequest{Month: "August 2025"})
	assert.Error(t, err)
}

func TestProcess_MissingStructureMapsToDomainError(t *testing.T) {
	svc := NewPayrollService(&fakePayrollRepo{}, &fakeStructureRepo{}, &fakeEmployeeRepo{}, &fakeAttendanceService{}, testLogger())

	_, err := svc.Process(context.Background(), payroll.ProcessRequest{EmployeeID: "emp-x", Month: "2025-08"})
	assert.ErrorIs(t, err, payroll.ErrNoSalaryStructure)
}
