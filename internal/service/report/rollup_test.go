package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflane/backoffice-backend-go/internal/domain/attendance"
)

func day(d int) time.Time {
	return time.Date(2025, 8, d, 0, 0, 0, 0, time.UTC)
}

func TestRollupBySite(t *testing.T) {
	records := []attendance.Attendance{
		{EmployeeID: "emp-1", Date: day(1), Status: attendance.StatusPresent, SiteName: "Plant A", Department: "Production"},
		{EmployeeID: "emp-2", Date: day(1), Status: attendance.StatusHalfDay, SiteName: "Plant A", Department: "Production"},
		{EmployeeID: "emp-1", Date: day(2), Status: attendance.StatusAbsent, SiteName: "Plant A", Department: "Production"},
		{EmployeeID: "emp-3", Date: day(1), Status: attendance.StatusPresent, SiteName: "Plant B", Department: "Logistics"},
	}

	summaries := rollupBySite(records)
	require.Len(t, summaries, 2)

	plantA := summaries[0]
	assert.Equal(t, "Plant A", plantA.SiteName)
	assert.Equal(t, 2, plantA.EmployeeCount)
	assert.Equal(t, 1, plantA.PresentDays)
	assert.Equal(t, 1, plantA.HalfDays)
	assert.Equal(t, 1, plantA.AbsentDays)
	assert.Equal(t, 2, plantA.TotalDays)
	// (1 + 0.5) / (2 * 2) = 37.5 -> 38
	assert.Equal(t, 38, plantA.AttendanceRate)
	assert.Equal(t, 1.5, plantA.Shortage)

	plantB := summaries[1]
	assert.Equal(t, "Plant B", plantB.SiteName)
	assert.Equal(t, 100, plantB.AttendanceRate)
}

func TestRollupBySite_MissingMetadataFallsBack(t *testing.T) {
	records := []attendance.Attendance{
		{EmployeeID: "emp-1", Date: day(1), Status: attendance.StatusPresent},
	}

	summaries := rollupBySite(records)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Not assigned", summaries[0].SiteName)
	assert.Equal(t, "General", summaries[0].Department)
}

func TestRollupBySite_Empty(t *testing.T) {
	assert.Empty(t, rollupBySite(nil))
}

func TestRollupByDepartment(t *testing.T) {
	records := []attendance.Attendance{
		{EmployeeID: "emp-1", Date: day(1), Status: attendance.StatusPresent, Department: "Production"},
		{EmployeeID: "emp-2", Date: day(1), Status: attendance.StatusLeave, Department: "Production"},
		{EmployeeID: "emp-3", Date: day(1), Status: attendance.StatusPresent},
	}

	summaries := rollupByDepartment(records)
	require.Len(t, summaries, 2)

	assert.Equal(t, "General", summaries[0].Department)
	assert.Equal(t, "Production", summaries[1].Department)
	assert.Equal(t, 2, summaries[1].EmployeeCount)
	assert.Equal(t, 1, summaries[1].LeaveDays)
}

func TestShortageBySite(t *testing.T) {
	records := []attendance.Attendance{
		{EmployeeID: "emp-1", Date: day(1), Status: attendance.StatusAbsent, SiteName: "Plant A"},
		{EmployeeID: "emp-2", Date: day(1), Status: attendance.StatusHalfDay, SiteName: "Plant A"},
		{EmployeeID: "emp-3", Date: day(1), Status: attendance.StatusPresent, SiteName: "Plant B"},
	}

	rows := shortageBySite(records, "2025-08")
	require.Len(t, rows, 1)
	assert.Equal(t, "Plant A", rows[0].SiteName)
	assert.Equal(t, "2025-08", rows[0].Month)
	assert.Equal(t, 1.5, rows[0].Shortage)
}

func TestPreviousMonths(t *testing.T) {
	months, err := previousMonths("2025-03", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-12", "2025-01", "2025-02", "2025-03"}, months)
}
