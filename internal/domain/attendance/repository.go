package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	InsertBatch(ctx context.Context, records []Attendance) (int, error)
	List(ctx context.Context, filter Filter) ([]Attendance, int64, error)
	// GetRange returns every record in [start, end) ordered by employee, date
	// and insertion order, so first-seen-per-date dedup is deterministic.
	GetRange(ctx context.Context, start, end time.Time, employeeID *string) ([]Attendance, error)
}
