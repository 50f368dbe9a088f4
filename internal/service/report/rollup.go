package report

import (
	"sort"
	"time"

	"github.com/stafflane/backoffice-backend-go/internal/domain/attendance"
	"github.com/stafflane/backoffice-backend-go/internal/domain/report"
	"github.com/stafflane/backoffice-backend-go/internal/domain/site"
)

type siteKey struct {
	siteName   string
	department string
}

type siteAccumulator struct {
	employees map[string]bool
	dates     map[string]bool
	present   int
	absent    int
	half      int
	leave     int
}

// rollupBySite reduces raw records into per-site summaries. Records without
// site metadata land under the "Not assigned" / "General" fallbacks so no
// attendance silently disappears from the report.
func rollupBySite(records []attendance.Attendance) []report.SiteAttendanceSummary {
	acc := make(map[siteKey]*siteAccumulator)

	for _, rec := range records {
		key := siteKey{
			siteName:   rec.SiteName,
			department: rec.Department,
		}
		if key.siteName == "" {
			key.siteName = site.DefaultSiteName
		}
		if key.department == "" {
			key.department = site.DefaultDepartment
		}

		a, ok := acc[key]
		if !ok {
			a = &siteAccumulator{
				employees: make(map[string]bool),
				dates:     make(map[string]bool),
			}
			acc[key] = a
		}

		a.employees[rec.EmployeeID] = true
		a.dates[rec.Date.Format("2006-01-02")] = true
		switch rec.Status {
		case attendance.StatusPresent:
			a.present++
		case attendance.StatusHalfDay:
			a.half++
		case attendance.StatusLeave:
			a.leave++
		default:
			a.absent++
		}
	}

	result := make([]report.SiteAttendanceSummary, 0, len(acc))
	for key, a := range acc {
		employeeCount := len(a.employees)
		totalDays := len(a.dates)
		result = append(result, report.SiteAttendanceSummary{
			SiteName:       key.siteName,
			Department:     key.department,
			EmployeeCount:  employeeCount,
			PresentDays:    a.present,
			AbsentDays:     a.absent,
			HalfDays:       a.half,
			LeaveDays:      a.leave,
			TotalDays:      totalDays,
			AttendanceRate: report.AttendanceRate(a.present, a.half, employeeCount, totalDays),
			Shortage:       report.Shortage(a.absent, a.half),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].SiteName != result[j].SiteName {
			return result[i].SiteName < result[j].SiteName
		}
		return result[i].Department < result[j].Department
	})
	return result
}

func rollupByDepartment(records []attendance.Attendance) []report.DepartmentAttendanceSummary {
	acc := make(map[string]*siteAccumulator)

	for _, rec := range records {
		department := rec.Department
		if department == "" {
			department = site.DefaultDepartment
		}

		a, ok := acc[department]
		if !ok {
			a = &siteAccumulator{
				employees: make(map[string]bool),
				dates:     make(map[string]bool),
			}
			acc[department] = a
		}

		a.employees[rec.EmployeeID] = true
		a.dates[rec.Date.Format("2006-01-02")] = true
		switch rec.Status {
		case attendance.StatusPresent:
			a.present++
		case attendance.StatusHalfDay:
			a.half++
		case attendance.StatusLeave:
			a.leave++
		default:
			a.absent++
		}
	}

	result := make([]report.DepartmentAttendanceSummary, 0, len(acc))
	for department, a := range acc {
		result = append(result, report.DepartmentAttendanceSummary{
			Department:     department,
			EmployeeCount:  len(a.employees),
			PresentDays:    a.present,
			AbsentDays:     a.absent,
			HalfDays:       a.half,
			LeaveDays:      a.leave,
			AttendanceRate: report.AttendanceRate(a.present, a.half, len(a.employees), len(a.dates)),
			Shortage:       report.Shortage(a.absent, a.half),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Department < result[j].Department
	})
	return result
}

// shortageBySite reduces one month's records into per-site shortage rows.
func shortageBySite(records []attendance.Attendance, month string) []report.ShortageTrendRow {
	absent := make(map[string]int)
	half := make(map[string]int)

	for _, rec := range records {
		name := rec.SiteName
		if name == "" {
			name = site.DefaultSiteName
		}
		switch rec.Status {
		case attendance.StatusHalfDay:
			half[name]++
		case attendance.StatusAbsent:
			absent[name]++
		}
	}

	names := make(map[string]bool, len(absent)+len(half))
	for name := range absent {
		names[name] = true
	}
	for name := range half {
		names[name] = true
	}

	result := make([]report.ShortageTrendRow, 0, len(names))
	for name := range names {
		result = append(result, report.ShortageTrendRow{
			SiteName: name,
			Month:    month,
			Shortage: report.Shortage(absent[name], half[name]),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].SiteName < result[j].SiteName
	})
	return result
}

// previousMonths lists the n months ending at month inclusive, oldest first.
func previousMonths(month string, n int) ([]string, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, err
	}

	months := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		months = append(months, t.AddDate(0, -i, 0).Format("2006-01"))
	}
	return months, nil
}
