package attendance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stafflane/backoffice-backend-go/internal/domain/attendance"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/database"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/validator"
)

type AttendanceService interface {
	Ingest(ctx context.Context, req attendance.IngestRequest) (attendance.IngestResult, error)
	List(ctx context.Context, filter attendance.Filter) (attendance.ListResponse, error)
	// MonthlyAggregates reduces the month's raw records into per-employee
	// counts. workingDays <= 0 falls back to the configured policy default.
	MonthlyAggregates(ctx context.Context, month string, workingDays int) ([]attendance.AggregateResponse, error)
	// AggregateForEmployee is the single-employee variant used by payroll.
	AggregateForEmployee(ctx context.Context, employeeID, month string, workingDays int) (attendance.Aggregate, error)
}

type attendanceServiceImpl struct {
	db                 *database.DB
	attendanceRepo     attendance.AttendanceRepository
	defaultWorkingDays int
	logger             *slog.Logger
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	defaultWorkingDays int,
	logger *slog.Logger,
) AttendanceService {
	return &attendanceServiceImpl{
		db:                 db,
		attendanceRepo:     attendanceRepo,
		defaultWorkingDays: defaultWorkingDays,
		logger:             logger,
	}
}

func (s *attendanceServiceImpl) Ingest(ctx context.Context, req attendance.IngestRequest) (attendance.IngestResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.IngestResult{}, err
	}

	var result attendance.IngestResult
	normalized := make([]attendance.Attendance, 0, len(req.Records))
	for i, raw := range req.Records {
		rec, err := raw.Normalize()
		if err != nil {
			// Malformed rows are skipped, not fatal.
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("record %d: %v", i, err))
			s.logger.Warn("skipping malformed attendance record",
				slog.Int("index", i), slog.String("error", err.Error()))
			continue
		}
		normalized = append(normalized, rec)
	}

	if len(normalized) > 0 {
		inserted, err := s.attendanceRepo.InsertBatch(ctx, normalized)
		if err != nil {
			return attendance.IngestResult{}, err
		}
		result.Inserted = inserted
	}

	return result, nil
}

func (s *attendanceServiceImpl) List(ctx context.Context, filter attendance.Filter) (attendance.ListResponse, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return attendance.ListResponse{}, attendance.ErrInvalidDateRange
	}

	records, totalCount, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, err
	}

	data := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		data = append(data, attendance.ToResponse(rec))
	}

	return attendance.ListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *attendanceServiceImpl) MonthlyAggregates(ctx context.Context, month string, workingDays int) ([]attendance.AggregateResponse, error) {
	records, days, err := s.monthRecords(ctx, month, nil, workingDays)
	if err != nil {
		return nil, err
	}

	aggregates := Aggregate(records, days)
	result := make([]attendance.AggregateResponse, 0, len(aggregates))
	for _, agg := range aggregates {
		result = append(result, attendance.AggregateResponse{
			EmployeeID:       agg.EmployeeID,
			PresentDays:      agg.PresentDays,
			AbsentDays:       agg.AbsentDays,
			HalfDays:         agg.HalfDays,
			LeaveDays:        agg.LeaveDays,
			TotalWorkingDays: agg.TotalWorkingDays,
		})
	}
	return result, nil
}

func (s *attendanceServiceImpl) AggregateForEmployee(ctx context.Context, employeeID, month string, workingDays int) (attendance.Aggregate, error) {
	records, days, err := s.monthRecords(ctx, month, &employeeID, workingDays)
	if err != nil {
		return attendance.Aggregate{}, err
	}
	return AggregateFor(records, employeeID, days), nil
}

func (s *attendanceServiceImpl) monthRecords(ctx context.Context, month string, employeeID *string, workingDays int) ([]attendance.Attendance, int, error) {
	if !validator.IsValidMonth(month) {
		return nil, 0, fmt.Errorf("invalid month %q: must be YYYY-MM", month)
	}
	start, end, err := validator.MonthBounds(month)
	if err != nil {
		return nil, 0, err
	}

	if workingDays <= 0 {
		workingDays = s.defaultWorkingDays
	}

	records, err := s.attendanceRepo.GetRange(ctx, start, end, employeeID)
	if err != nil {
		return nil, 0, err
	}
	return records, workingDays, nil
}
