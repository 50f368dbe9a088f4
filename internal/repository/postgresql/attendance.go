package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stafflane/backoffice-backend-go/internal/domain/attendance"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// InsertBatch appends all records in one statement. Appending is the only
// write path: corrections come in as new rows and aggregation takes the
// first record per employee and date.
func (r *attendanceRepository) InsertBatch(ctx context.Context, records []attendance.Attendance) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, r.db)

	valueStrings := make([]string, 0, len(records))
	valueArgs := make([]interface{}, 0, len(records)*6)

	for i, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}

		base := i * 6
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, NOW())",
			base+1, base+2, base+3, base+4, base+5, base+6,
		))
		valueArgs = append(valueArgs,
			rec.ID,
			rec.EmployeeID,
			rec.Date,
			string(rec.Status),
			rec.SiteName,
			rec.Department,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO attendance_records (id, employee_id, date, status, site_name, department, created_at)
		VALUES %s
	`, strings.Join(valueStrings, ", "))

	tag, err := q.Exec(ctx, query, valueArgs...)
	if err != nil {
		return 0, fmt.Errorf("failed to batch insert attendance: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.SiteName != nil {
		conditions = append(conditions, fmt.Sprintf("a.site_name = $%d", argIdx))
		args = append(args, *filter.SiteName)
		argIdx++
	}
	if filter.Department != nil {
		conditions = append(conditions, fmt.Sprintf("a.department = $%d", argIdx))
		args = append(args, *filter.Department)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	var totalCount int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM attendance_records a WHERE %s", whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	// Bulk review screens page through whole months, so the cap is high.
	if filter.Limit <= 0 || filter.Limit > 5000 {
		filter.Limit = 50
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.date, a.status, a.site_name, a.department, a.created_at, e.full_name
		FROM attendance_records a
		LEFT JOIN employees e ON a.employee_id = e.id
		WHERE %s
		ORDER BY a.date DESC, a.created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var rec attendance.Attendance
		var status string
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &status,
			&rec.SiteName, &rec.Department, &rec.CreatedAt, &rec.EmployeeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		rec.Status = attendance.Status(status)
		records = append(records, rec)
	}

	return records, totalCount, rows.Err()
}

// GetRange returns every record in [start, end). Ordering by employee, date
// and insertion time makes first-seen-per-date dedup deterministic.
func (r *attendanceRepository) GetRange(ctx context.Context, start, end time.Time, employeeID *string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.site_name, a.department, a.created_at, e.full_name
		FROM attendance_records a
		LEFT JOIN employees e ON a.employee_id = e.id
		WHERE a.date >= $1 AND a.date < $2
	`
	args := []interface{}{start, end}

	if employeeID != nil {
		query += " AND a.employee_id = $3"
		args = append(args, *employeeID)
	}
	query += " ORDER BY a.employee_id, a.date, a.created_at"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance range: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var rec attendance.Attendance
		var status string
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &status,
			&rec.SiteName, &rec.Department, &rec.CreatedAt, &rec.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		rec.Status = attendance.Status(status)
		records = append(records, rec)
	}

	return records, rows.Err()
}
