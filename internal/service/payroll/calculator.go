package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/stafflane/backoffice-backend-go/internal/domain/attendance"
	"github.com/stafflane/backoffice-backend-go/internal/domain/structure"
)

// Breakdown is the computed salary for one employee and one month.
type Breakdown struct {
	BasicSalary     decimal.Decimal
	EarnedBasic     decimal.Decimal
	SalaryLoss      decimal.Decimal
	NetBasic        decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
}

// Calculate prorates the basic salary by attendance and applies the
// structure's allowance and deduction totals. It is pure: identical inputs
// always produce an identical breakdown.
//
//	dailyRate   = basic / totalWorkingDays
//	earnedBasic = present*dailyRate + half*(dailyRate/2)
//	salaryLoss  = (absent + leaveCount) * dailyRate
//	netBasic    = max(0, earnedBasic - salaryLoss)
//	netSalary   = max(0, netBasic + allowances - deductions)
//
// Both absences and approved leave reduce pay; the aggregate's leave bucket
// is informational only and does not enter the loss term. A zero
// totalWorkingDays yields a zero breakdown rather than an error, and the
// result is never negative.
func Calculate(s structure.SalaryStructure, agg attendance.Aggregate, leaveCount int) (Breakdown, error) {
	if !s.BasicSalary.IsPositive() {
		return Breakdown{}, structure.ErrBasicSalaryRequired
	}

	allowances := s.TotalAllowances()
	deductions := s.TotalDeductions()

	if agg.TotalWorkingDays <= 0 {
		return Breakdown{
			BasicSalary:     s.BasicSalary,
			TotalAllowances: allowances,
			TotalDeductions: deductions,
			NetSalary:       decimal.Zero,
		}, nil
	}

	dailyRate := s.BasicSalary.Div(decimal.NewFromInt(int64(agg.TotalWorkingDays)))
	two := decimal.NewFromInt(2)

	earnedBasic := dailyRate.Mul(decimal.NewFromInt(int64(agg.PresentDays))).
		Add(dailyRate.Div(two).Mul(decimal.NewFromInt(int64(agg.HalfDays))))

	salaryLoss := dailyRate.Mul(decimal.NewFromInt(int64(agg.AbsentDays + leaveCount)))

	netBasic := earnedBasic.Sub(salaryLoss)
	if netBasic.IsNegative() {
		netBasic = decimal.Zero
	}

	netSalary := netBasic.Add(allowances).Sub(deductions)
	if netSalary.IsNegative() {
		netSalary = decimal.Zero
	}

	return Breakdown{
		BasicSalary:     s.BasicSalary,
		EarnedBasic:     earnedBasic.Round(2),
		SalaryLoss:      salaryLoss.Round(2),
		NetBasic:        netBasic.Round(2),
		TotalAllowances: allowances,
		TotalDeductions: deductions,
		NetSalary:       netSalary.Round(2),
	}, nil
}
