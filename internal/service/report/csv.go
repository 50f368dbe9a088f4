package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/stafflane/backoffice-backend-go/internal/domain/payroll"
	"github.com/stafflane/backoffice-backend-go/internal/domain/report"
)

// payrollCSV renders one month's payroll records as a CSV document with a
// header row first. encoding/csv quotes free text only when it has to, which
// keeps the numeric columns bare.
func payrollCSV(records []payroll.PayrollRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"employee_id", "employee_name", "month",
		"basic_salary", "total_allowances", "total_deductions", "net_salary",
		"present_days", "absent_days", "half_days", "leave_days", "working_days",
		"payment_status", "paid_amount",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range records {
		name := ""
		if r.EmployeeName != nil {
			name = *r.EmployeeName
		}
		row := []string{
			r.EmployeeID,
			name,
			r.Month,
			r.BasicSalary.StringFixed(2),
			r.TotalAllowances.StringFixed(2),
			r.TotalDeductions.StringFixed(2),
			r.NetSalary.StringFixed(2),
			strconv.Itoa(r.PresentDays),
			strconv.Itoa(r.AbsentDays),
			strconv.Itoa(r.HalfDays),
			strconv.Itoa(r.LeaveDays),
			strconv.Itoa(r.WorkingDays),
			string(r.PaymentStatus),
			r.PaidAmount.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func attendanceCSV(summaries []report.SiteAttendanceSummary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"site_name", "department", "employee_count",
		"present_days", "absent_days", "half_days", "leave_days",
		"total_days", "attendance_rate", "shortage",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, s := range summaries {
		row := []string{
			s.SiteName,
			s.Department,
			strconv.Itoa(s.EmployeeCount),
			strconv.Itoa(s.PresentDays),
			strconv.Itoa(s.AbsentDays),
			strconv.Itoa(s.HalfDays),
			strconv.Itoa(s.LeaveDays),
			strconv.Itoa(s.TotalDays),
			strconv.Itoa(s.AttendanceRate),
			strconv.FormatFloat(s.Shortage, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
