package report

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflane/backoffice-backend-go/internal/domain/attendance"
	"github.com/stafflane/backoffice-backend-go/internal/domain/payroll"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/validator"
)

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) InsertBatch(ctx context.Context, records []attendance.Attendance) (int, error) {
	return 0, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) GetRange(ctx context.Context, start, end time.Time, employeeID *string) ([]attendance.Attendance, error) {
	return f.records, nil
}

type fakePayrollRepo struct {
	records []payroll.PayrollRecord
}

func (f *fakePayrollRepo) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	return record, nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

func (f *fakePayrollRepo) List(ctx context.Context, filter payroll.Filter) ([]payroll.PayrollRecord, int64, error) {
	return f.records, int64(len(f.records)), nil
}

func (f *fakePayrollRepo) ProcessedEmployeeIDs(ctx context.Context, month string) (map[string]bool, error) {
	return nil, nil
}

func (f *fakePayrollRepo) UpdatePayment(ctx context.Context, id string, update payroll.PaymentUpdate) (payroll.PayrollRecord, error) {
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

func (f *fakePayrollRepo) Summary(ctx context.Context, month string) (payroll.SummaryResponse, error) {
	return payroll.SummaryResponse{}, nil
}

func newTestService() ReportService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewReportService(&fakeAttendanceRepo{}, &fakePayrollRepo{}, logger)
}

func TestSiteAttendance_RejectsMalformedDates(t *testing.T) {
	svc := newTestService()

	_, err := svc.SiteAttendance(context.Background(), "junk", "junk")
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "start_date")
	assert.Contains(t, details, "end_date")
}

func TestSiteAttendance_RejectsInvertedRange(t *testing.T) {
	svc := newTestService()

	_, err := svc.SiteAttendance(context.Background(), "2025-08-31", "2025-08-01")
	assert.ErrorIs(t, err, attendance.ErrInvalidDateRange)
}

func TestShortageTrend_RejectsMalformedMonth(t *testing.T) {
	svc := newTestService()

	_, err := svc.ShortageTrend(context.Background(), "not-a-month")
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "month")
}

func TestExportPayrollCSV_RejectsMalformedMonth(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.ExportPayrollCSV(context.Background(), "not-a-month")
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "month")
}

func TestExportAttendanceCSV_RejectsMalformedDates(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.ExportAttendanceCSV(context.Background(), "2025-08-01", "yesterday")
	require.Error(t, err)

	var errs validator.ValidationErrors
	assert.True(t, errors.As(err, &errs))
}

func TestExportPayrollCSV_Filename(t *testing.T) {
	svc := newTestService()

	body, filename, err := svc.ExportPayrollCSV(context.Background(), "2025-08")
	require.NoError(t, err)
	assert.Equal(t, "payroll-2025-08.csv", filename)
	assert.NotEmpty(t, body)
}
