package report

import "math"

// SiteAttendanceSummary is the per-site rollup for dashboards and export.
type SiteAttendanceSummary struct {
	SiteName      string  `json:"site_name"`
	Department    string  `json:"department"`
	EmployeeCount int     `json:"employee_count"`
	PresentDays   int     `json:"present_days"`
	AbsentDays    int     `json:"absent_days"`
	HalfDays      int     `json:"half_days"`
	LeaveDays     int     `json:"leave_days"`
	TotalDays     int     `json:"total_days"`
	// AttendanceRate is a whole percentage, 0 when nothing was expected.
	AttendanceRate int `json:"attendance_rate"`
	// Shortage is absent days plus half of the half-days.
	Shortage float64 `json:"shortage"`
}

type DepartmentAttendanceSummary struct {
	Department     string  `json:"department"`
	EmployeeCount  int     `json:"employee_count"`
	PresentDays    int     `json:"present_days"`
	AbsentDays     int     `json:"absent_days"`
	HalfDays       int     `json:"half_days"`
	LeaveDays      int     `json:"leave_days"`
	AttendanceRate int     `json:"attendance_rate"`
	Shortage       float64 `json:"shortage"`
}

// ShortageTrendRow tracks a site's shortage for one month, for
// month-over-month comparison.
type ShortageTrendRow struct {
	SiteName string  `json:"site_name"`
	Month    string  `json:"month"`
	Shortage float64 `json:"shortage"`
}

// AttendanceRate computes round(100 * (present + 0.5*half) / (employeeCount *
// totalDays)). It returns 0 when the denominator is zero rather than NaN or
// infinity.
func AttendanceRate(presentDays, halfDays, employeeCount, totalDays int) int {
	denominator := employeeCount * totalDays
	if denominator == 0 {
		return 0
	}
	rate := 100 * (float64(presentDays) + 0.5*float64(halfDays)) / float64(denominator)
	return int(math.Round(rate))
}

// Shortage computes absentDays + 0.5*halfDays.
func Shortage(absentDays, halfDays int) float64 {
	return float64(absentDays) + 0.5*float64(halfDays)
}
