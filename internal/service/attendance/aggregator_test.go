package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stafflane/backoffice-backend-go/internal/domain/attendance"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func rec(employeeID string, date time.Time, status attendance.Status) attendance.Attendance {
	return attendance.Attendance{EmployeeID: employeeID, Date: date, Status: status}
}

func TestAggregate_BucketsByStatus(t *testing.T) {
	records := []attendance.Attendance{
		rec("e1", day(1), attendance.StatusPresent),
		rec("e1", day(2), attendance.StatusPresent),
		rec("e1", day(3), attendance.StatusAbsent),
		rec("e1", day(4), attendance.StatusHalfDay),
		rec("e1", day(5), attendance.StatusLeave),
	}

	aggs := Aggregate(records, 22)
	assert.Len(t, aggs, 1)
	assert.Equal(t, 2, aggs[0].PresentDays)
	assert.Equal(t, 1, aggs[0].AbsentDays)
	assert.Equal(t, 1, aggs[0].HalfDays)
	assert.Equal(t, 1, aggs[0].LeaveDays)
	assert.Equal(t, 22, aggs[0].TotalWorkingDays)
}

func TestAggregate_DeduplicatesByDateFirstSeen(t *testing.T) {
	// Two records for the same employee and day with conflicting statuses:
	// only the first one counts.
	records := []attendance.Attendance{
		rec("e1", day(1), attendance.StatusPresent),
		rec("e1", day(1), attendance.StatusAbsent),
		rec("e1", day(1), attendance.StatusHalfDay),
	}

	aggs := Aggregate(records, 22)
	assert.Len(t, aggs, 1)
	assert.Equal(t, 1, aggs[0].PresentDays)
	assert.Equal(t, 0, aggs[0].AbsentDays)
	assert.Equal(t, 0, aggs[0].HalfDays)
}

func TestAggregate_GroupsByEmployee(t *testing.T) {
	records := []attendance.Attendance{
		rec("e2", day(1), attendance.StatusPresent),
		rec("e1", day(1), attendance.StatusAbsent),
		rec("e2", day(2), attendance.StatusPresent),
	}

	aggs := Aggregate(records, 20)
	assert.Len(t, aggs, 2)
	assert.Equal(t, "e1", aggs[0].EmployeeID)
	assert.Equal(t, 1, aggs[0].AbsentDays)
	assert.Equal(t, "e2", aggs[1].EmployeeID)
	assert.Equal(t, 2, aggs[1].PresentDays)
}

func TestAggregate_EmptyInput(t *testing.T) {
	aggs := Aggregate(nil, 22)
	assert.Empty(t, aggs)
}

func TestAggregateFor_MissingEmployeeYieldsZeroCounts(t *testing.T) {
	records := []attendance.Attendance{
		rec("e1", day(1), attendance.StatusPresent),
	}

	agg := AggregateFor(records, "e9", 22)
	assert.Equal(t, "e9", agg.EmployeeID)
	assert.Equal(t, 0, agg.PresentDays)
	assert.Equal(t, 0, agg.AbsentDays)
	assert.Equal(t, 0, agg.HalfDays)
	assert.Equal(t, 0, agg.LeaveDays)
	assert.Equal(t, 22, agg.TotalWorkingDays)
}

func TestParseStatus_Spellings(t *testing.T) {
	cases := []struct {
		input string
		want  attendance.Status
	}{
		{"present", attendance.StatusPresent},
		{"Present", attendance.StatusPresent},
		{"PRESENT", attendance.StatusPresent},
		{"absent", attendance.StatusAbsent},
		{"half-day", attendance.StatusHalfDay},
		{"halfday", attendance.StatusHalfDay},
		{"half_day", attendance.StatusHalfDay},
		{"HALF_DAY", attendance.StatusHalfDay},
		{"leave", attendance.StatusLeave},
		{" leave ", attendance.StatusLeave},
		// Unrecognized statuses default to absent.
		{"wfh", attendance.StatusAbsent},
		{"", attendance.StatusAbsent},
	}
	for _, c := range cases {
		got := attendance.ParseStatus(c.input)
		if got != c.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}
