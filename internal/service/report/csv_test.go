package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflane/backoffice-backend-go/internal/domain/payroll"
	"github.com/stafflane/backoffice-backend-go/internal/domain/report"
)

func TestPayrollCSV(t *testing.T) {
	name := "Dana Mehta"
	records := []payroll.PayrollRecord{
		{
			EmployeeID:      "emp-1",
			EmployeeName:    &name,
			Month:           "2025-08",
			BasicSalary:     decimal.NewFromInt(22000),
			TotalAllowances: decimal.NewFromInt(2000),
			TotalDeductions: decimal.Zero,
			NetSalary:       decimal.NewFromInt(20000),
			PresentDays:     20,
			AbsentDays:      2,
			WorkingDays:     22,
			PaymentStatus:   payroll.PaymentStatusPending,
			PaidAmount:      decimal.Zero,
		},
	}

	body, err := payrollCSV(records)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"employee_id,employee_name,month,basic_salary,total_allowances,total_deductions,net_salary,present_days,absent_days,half_days,leave_days,working_days,payment_status,paid_amount",
		lines[0])
	assert.Equal(t,
		"emp-1,Dana Mehta,2025-08,22000.00,2000.00,0.00,20000.00,20,2,0,0,22,pending,0.00",
		lines[1])
}

func TestPayrollCSV_QuotesOnlyWhenNeeded(t *testing.T) {
	name := `Jain, Priya "PJ"`
	records := []payroll.PayrollRecord{
		{
			EmployeeID:   "emp-2",
			EmployeeName: &name,
			Month:        "2025-08",
		},
	}

	body, err := payrollCSV(records)
	require.NoError(t, err)

	// A comma in free text forces quoting; numeric columns stay bare.
	assert.Contains(t, string(body), `"Jain, Priya ""PJ"""`)
	assert.Contains(t, string(body), "emp-2,")
}

func TestAttendanceCSV(t *testing.T) {
	summaries := []report.SiteAttendanceSummary{
		{
			SiteName:       "Plant A",
			Department:     "Production",
			EmployeeCount:  2,
			PresentDays:    1,
			AbsentDays:     1,
			HalfDays:       1,
			TotalDays:      2,
			AttendanceRate: 38,
			Shortage:       1.5,
		},
	}

	body, err := attendanceCSV(summaries)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		"site_name,department,employee_count,present_days,absent_days,half_days,leave_days,total_days,attendance_rate,shortage",
		lines[0])
	assert.Equal(t, "Plant A,Production,2,1,1,1,0,2,38,1.5", lines[1])
}
