package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stafflane/backoffice-backend-go/internal/domain/attendance"
	"github.com/stafflane/backoffice-backend-go/internal/domain/payroll"
	"github.com/stafflane/backoffice-backend-go/internal/domain/report"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/validator"
)

// shortageTrendMonths is how far back the month-over-month comparison looks.
const shortageTrendMonths = 6

type ReportService interface {
	SiteAttendance(ctx context.Context, startDate, endDate string) ([]report.SiteAttendanceSummary, error)
	DepartmentAttendance(ctx context.Context, startDate, endDate string) ([]report.DepartmentAttendanceSummary, error)
	// ShortageTrend compares per-site shortage over the months ending at
	// month inclusive.
	ShortageTrend(ctx context.Context, month string) ([]report.ShortageTrendRow, error)
	// ExportPayrollCSV returns the document body and its attachment filename.
	ExportPayrollCSV(ctx context.Context, month string) ([]byte, string, error)
	ExportAttendanceCSV(ctx context.Context, startDate, endDate string) ([]byte, string, error)
}

type reportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	payrollRepo    payroll.PayrollRepository
	logger         *slog.Logger
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	payrollRepo payroll.PayrollRepository,
	logger *slog.Logger,
) ReportService {
	return &reportServiceImpl{
		attendanceRepo: attendanceRepo,
		payrollRepo:    payrollRepo,
		logger:         logger,
	}
}

func (s *reportServiceImpl) SiteAttendance(ctx context.Context, startDate, endDate string) ([]report.SiteAttendanceSummary, error) {
	records, err := s.rangeRecords(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return rollupBySite(records), nil
}

func (s *reportServiceImpl) DepartmentAttendance(ctx context.Context, startDate, endDate string) ([]report.DepartmentAttendanceSummary, error) {
	records, err := s.rangeRecords(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return rollupByDepartment(records), nil
}

func (s *reportServiceImpl) ShortageTrend(ctx context.Context, month string) ([]report.ShortageTrendRow, error) {
	if !validator.IsValidMonth(month) {
		return nil, validator.ValidationErrors{
			{Field: "month", Message: "must be in YYYY-MM format"},
		}
	}

	months, err := previousMonths(month, shortageTrendMonths)
	if err != nil {
		return nil, err
	}

	var trend []report.ShortageTrendRow
	for _, m := range months {
		start, end, err := validator.MonthBounds(m)
		if err != nil {
			return nil, err
		}
		records, err := s.attendanceRepo.GetRange(ctx, start, end, nil)
		if err != nil {
			return nil, err
		}
		trend = append(trend, shortageBySite(records, m)...)
	}
	return trend, nil
}

func (s *reportServiceImpl) ExportPayrollCSV(ctx context.Context, month string) ([]byte, string, error) {
	if !validator.IsValidMonth(month) {
		return nil, "", validator.ValidationErrors{
			{Field: "month", Message: "must be in YYYY-MM format"},
		}
	}

	// Limit 0 disables pagination: the export always covers the full month.
	records, _, err := s.payrollRepo.List(ctx, payroll.Filter{Month: &month})
	if err != nil {
		return nil, "", err
	}

	body, err := payrollCSV(records)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("payroll export generated",
		slog.String("month", month), slog.Int("rows", len(records)))
	return body, fmt.Sprintf("payroll-%s.csv", month), nil
}

func (s *reportServiceImpl) ExportAttendanceCSV(ctx context.Context, startDate, endDate string) ([]byte, string, error) {
	records, err := s.rangeRecords(ctx, startDate, endDate)
	if err != nil {
		return nil, "", err
	}

	body, err := attendanceCSV(rollupBySite(records))
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("all-sites-attendance-%s-%s.csv", startDate, endDate)
	s.logger.Info("attendance export generated",
		slog.String("start_date", startDate), slog.String("end_date", endDate))
	return body, filename, nil
}

func (s *reportServiceImpl) rangeRecords(ctx context.Context, startDate, endDate string) ([]attendance.Attendance, error) {
	var errs validator.ValidationErrors
	start, ok := validator.IsValidDate(startDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid YYYY-MM-DD date"})
	}
	end, ok := validator.IsValidDate(endDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid YYYY-MM-DD date"})
	}
	if len(errs) > 0 {
		return nil, errs
	}
	if start.After(end) {
		return nil, attendance.ErrInvalidDateRange
	}

	// GetRange is half-open, so push end past the final day.
	return s.attendanceRepo.GetRange(ctx, start, end.Add(24*time.Hour), nil)
}
