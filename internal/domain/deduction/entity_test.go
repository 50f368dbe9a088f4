package deduction

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInstallmentFor(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		months int
		want   string
	}{
		{"even split", "12000", 12, "1000"},
		{"rounded to two places", "10000", 3, "3333.33"},
		{"single month", "5000", 1, "5000"},
		{"zero months falls back to full amount", "5000", 0, "5000"},
		{"negative months falls back to full amount", "5000", -2, "5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			want := decimal.RequireFromString(tt.want)

			got := InstallmentFor(amount, tt.months)
			assert.True(t, got.Equal(want), "got %s, want %s", got, want)
		})
	}
}
