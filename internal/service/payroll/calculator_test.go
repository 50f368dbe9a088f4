package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflane/backoffice-backend-go/internal/domain/attendance"
	"github.com/stafflane/backoffice-backend-go/internal/domain/structure"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func baseStructure() structure.SalaryStructure {
	return structure.SalaryStructure{
		BasicSalary: dec(22000),
		HRA:         dec(2000),
	}
}

func TestCalculate_FullMonth(t *testing.T) {
	agg := attendance.Aggregate{
		PresentDays:      22,
		TotalWorkingDays: 22,
	}

	b, err := Calculate(baseStructure(), agg, 0)
	require.NoError(t, err)

	// 22 present days at the full daily rate plus HRA.
	assert.True(t, b.NetBasic.Equal(dec(22000)), "net basic = %s", b.NetBasic)
	assert.True(t, b.NetSalary.Equal(dec(24000)), "net salary = %s", b.NetSalary)
}

func TestCalculate_ProratedByAbsence(t *testing.T) {
	agg := attendance.Aggregate{
		PresentDays:      20,
		AbsentDays:       2,
		TotalWorkingDays: 22,
	}

	b, err := Calculate(baseStructure(), agg, 0)
	require.NoError(t, err)

	// dailyRate 1000: earned 20000, loss 2000, net basic 18000, plus HRA.
	assert.True(t, b.EarnedBasic.Equal(dec(20000)), "earned basic = %s", b.EarnedBasic)
	assert.True(t, b.SalaryLoss.Equal(dec(2000)), "salary loss = %s", b.SalaryLoss)
	assert.True(t, b.NetBasic.Equal(dec(18000)), "net basic = %s", b.NetBasic)
	assert.True(t, b.NetSalary.Equal(dec(20000)), "net salary = %s", b.NetSalary)
}

func TestCalculate_HalfDaysEarnHalfRate(t *testing.T) {
	s := structure.SalaryStructure{BasicSalary: dec(22000)}
	agg := attendance.Aggregate{
		PresentDays:      20,
		HalfDays:         2,
		TotalWorkingDays: 22,
	}

	b, err := Calculate(s, agg, 0)
	require.NoError(t, err)

	assert.True(t, b.NetSalary.Equal(dec(21000)), "net salary = %s", b.NetSalary)
}

func TestCalculate_LeaveCountReducesPay(t *testing.T) {
	s := structure.SalaryStructure{BasicSalary: dec(22000)}
	agg := attendance.Aggregate{
		PresentDays:      20,
		TotalWorkingDays: 22,
	}

	b, err := Calculate(s, agg, 2)
	require.NoError(t, err)

	// earned 20000, loss 2*1000 from approved leave.
	assert.True(t, b.NetSalary.Equal(dec(18000)), "net salary = %s", b.NetSalary)
}

func TestCalculate_NeverNegative(t *testing.T) {
	// Loss exceeds earnings and deductions exceed everything left.
	s := structure.SalaryStructure{
		BasicSalary: dec(22000),
		IncomeTax:   dec(50000),
	}
	agg := attendance.Aggregate{
		PresentDays:      1,
		AbsentDays:       21,
		TotalWorkingDays: 22,
	}

	b, err := Calculate(s, agg, 10)
	require.NoError(t, err)

	assert.True(t, b.NetBasic.Equal(decimal.Zero), "net basic = %s", b.NetBasic)
	assert.True(t, b.NetSalary.Equal(decimal.Zero), "net salary = %s", b.NetSalary)
	assert.False(t, b.NetSalary.IsNegative())
}

func TestCalculate_ZeroWorkingDaysYieldsZero(t *testing.T) {
	agg := attendance.Aggregate{PresentDays: 20}

	b, err := Calculate(baseStructure(), agg, 0)
	require.NoError(t, err)
	assert.True(t, b.NetSalary.Equal(decimal.Zero), "net salary = %s", b.NetSalary)
}

func TestCalculate_MissingBasicSalaryRejected(t *testing.T) {
	s := structure.SalaryStructure{}
	agg := attendance.Aggregate{PresentDays: 20, TotalWorkingDays: 22}

	_, err := Calculate(s, agg, 0)
	assert.ErrorIs(t, err, structure.ErrBasicSalaryRequired)
}

func TestCalculate_Deterministic(t *testing.T) {
	s := structure.SalaryStructure{
		BasicSalary:      dec(31000),
		HRA:              dec(1500),
		DA:               dec(250),
		SpecialAllowance: dec(750),
		ProvidentFund:    dec(1800),
		ESIC:             dec(120),
	}
	agg := attendance.Aggregate{
		PresentDays:      17,
		AbsentDays:       3,
		HalfDays:         2,
		TotalWorkingDays: 26,
	}

	first, err := Calculate(s, agg, 1)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Calculate(s, agg, 1)
		require.NoError(t, err)
		assert.True(t, first.NetSalary.Equal(again.NetSalary))
	}
}

func TestCalculate_ZeroAllowancesReducesToNetBasic(t *testing.T) {
	s := structure.SalaryStructure{BasicSalary: dec(22000)}
	agg := attendance.Aggregate{
		PresentDays:      20,
		AbsentDays:       2,
		TotalWorkingDays: 22,
	}

	b, err := Calculate(s, agg, 0)
	require.NoError(t, err)
	assert.True(t, b.NetSalary.Equal(b.NetBasic))
}
