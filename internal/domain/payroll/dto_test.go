package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestApplyPaymentRules_PartPaid(t *testing.T) {
	net := decimal.NewFromInt(20000)
	date := strPtr("2025-08-31")

	tests := []struct {
		name    string
		req     UpdatePaymentStatusRequest
		wantErr error
	}{
		{
			name: "within range",
			req:  UpdatePaymentStatusRequest{Status: "part-paid", PaidAmount: decPtr(5000), PaymentDate: date},
		},
		{
			name: "exactly net salary is accepted",
			req:  UpdatePaymentStatusRequest{Status: "part-paid", PaidAmount: decPtr(20000), PaymentDate: date},
		},
		{
			name:    "above net salary",
			req:     UpdatePaymentStatusRequest{Status: "part-paid", PaidAmount: decPtr(20001), PaymentDate: date},
			wantErr: ErrPaidAmountOutOfRange,
		},
		{
			name:    "zero amount",
			req:     UpdatePaymentStatusRequest{Status: "part-paid", PaidAmount: decPtr(0), PaymentDate: date},
			wantErr: ErrPaidAmountOutOfRange,
		},
		{
			name:    "missing amount",
			req:     UpdatePaymentStatusRequest{Status: "part-paid", PaymentDate: date},
			wantErr: ErrPaidAmountOutOfRange,
		},
		{
			name:    "missing payment date",
			req:     UpdatePaymentStatusRequest{Status: "part-paid", PaidAmount: decPtr(5000)},
			wantErr: ErrPaymentDateRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update, err := ApplyPaymentRules(tt.req, net)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, PaymentStatusPartPaid, update.Status)
			require.NotNil(t, update.PaidAmount)
			assert.True(t, update.PaidAmount.Equal(*tt.req.PaidAmount))
			require.NotNil(t, update.PaymentDate)
		})
	}
}

func TestApplyPaymentRules_PaidDefaultsToNetSalary(t *testing.T) {
	net := decimal.NewFromInt(20000)

	update, err := ApplyPaymentRules(UpdatePaymentStatusRequest{
		Status:      "paid",
		PaymentDate: strPtr("2025-08-31"),
	}, net)
	require.NoError(t, err)

	assert.Equal(t, PaymentStatusPaid, update.Status)
	require.NotNil(t, update.PaidAmount)
	assert.True(t, update.PaidAmount.Equal(net))
}

func TestApplyPaymentRules_PaidRequiresDate(t *testing.T) {
	_, err := ApplyPaymentRules(UpdatePaymentStatusRequest{Status: "paid"}, decimal.NewFromInt(20000))
	assert.ErrorIs(t, err, ErrPaymentDateRequired)
}

func TestApplyPaymentRules_HoldKeepsSuppliedValues(t *testing.T) {
	update, err := ApplyPaymentRules(UpdatePaymentStatusRequest{
		Status:     "hold",
		PaidAmount: decPtr(100),
		Notes:      strPtr("bank account frozen"),
	}, decimal.NewFromInt(20000))
	require.NoError(t, err)

	assert.Equal(t, PaymentStatusHold, update.Status)
	require.NotNil(t, update.PaidAmount)
	assert.True(t, update.PaidAmount.Equal(decimal.NewFromInt(100)))
	require.NotNil(t, update.Notes)
}

func TestApplyPaymentRules_UnknownStatusRejected(t *testing.T) {
	_, err := ApplyPaymentRules(UpdatePaymentStatusRequest{Status: "refunded"}, decimal.NewFromInt(20000))
	assert.ErrorIs(t, err, ErrInvalidPaymentStatus)
}
