package slip

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/stafflane/backoffice-backend-go/internal/domain/slip"
)

// renderPDF lays out a one-page A4 slip from the snapshot.
func renderPDF(s slip.SalarySlip) ([]byte, error) {
	employeeName := s.EmployeeID
	if s.EmployeeName != nil {
		employeeName = *s.EmployeeName
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Salary Slip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Slip Number: %s", s.SlipNumber))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", employeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", s.Month))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", s.GeneratedDate.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Attendance")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Present: %d   Half days: %d   Absent: %d   Leave: %d",
		s.PresentDays, s.HalfDays, s.AbsentDays, s.LeaveDays))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Basic Salary: %s", s.BasicSalary.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total Allowances: %s", s.TotalAllowances.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total Deductions: %s", s.TotalDeductions.StringFixed(2)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Net Salary: %s", s.NetSalary.StringFixed(2)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render slip pdf: %w", err)
	}
	return buf.Bytes(), nil
}
