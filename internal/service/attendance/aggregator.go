package attendance

import (
	"sort"

	"github.com/stafflane/backoffice-backend-go/internal/domain/attendance"
)

// Aggregate reduces raw attendance records into per-employee day counts.
//
// Records are grouped by employee; within each employee, only the first
// record seen for a calendar date counts, which guards against duplicate
// rows for the same employee and day. totalWorkingDays is a policy input;
// the aggregator does not know about holidays or weekly offs.
//
// An employee present in the input always gets an aggregate, even when every
// one of their records is a duplicate. Input order decides which duplicate
// wins, so callers should pass records in insertion order.
func Aggregate(records []attendance.Attendance, totalWorkingDays int) []attendance.Aggregate {
	type state struct {
		agg  attendance.Aggregate
		seen map[string]bool
	}

	byEmployee := make(map[string]*state)
	var order []string

	for _, rec := range records {
		st, ok := byEmployee[rec.EmployeeID]
		if !ok {
			st = &state{
				agg:  attendance.Aggregate{EmployeeID: rec.EmployeeID, TotalWorkingDays: totalWorkingDays},
				seen: make(map[string]bool),
			}
			byEmployee[rec.EmployeeID] = st
			order = append(order, rec.EmployeeID)
		}

		day := rec.Date.Format("2006-01-02")
		if st.seen[day] {
			continue
		}
		st.seen[day] = true

		switch rec.Status {
		case attendance.StatusPresent:
			st.agg.PresentDays++
		case attendance.StatusHalfDay:
			st.agg.HalfDays++
		case attendance.StatusLeave:
			st.agg.LeaveDays++
		default:
			st.agg.AbsentDays++
		}
	}

	sort.Strings(order)
	result := make([]attendance.Aggregate, 0, len(order))
	for _, id := range order {
		result = append(result, byEmployee[id].agg)
	}
	return result
}

// AggregateFor reduces records for a single employee. A missing employee
// yields an all-zero aggregate rather than an error.
func AggregateFor(records []attendance.Attendance, employeeID string, totalWorkingDays int) attendance.Aggregate {
	for _, agg := range Aggregate(records, totalWorkingDays) {
		if agg.EmployeeID == employeeID {
			return agg
		}
	}
	return attendance.Aggregate{EmployeeID: employeeID, TotalWorkingDays: totalWorkingDays}
}
