package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttendanceRate(t *testing.T) {
	tests := []struct {
		name          string
		present       int
		half          int
		employeeCount int
		totalDays     int
		want          int
	}{
		{"full attendance", 22, 0, 1, 22, 100},
		{"half days count half", 20, 2, 1, 22, 95},
		{"rounded to nearest whole", 2, 1, 1, 3, 83},
		{"zero employees", 10, 0, 0, 22, 0},
		{"zero days", 10, 0, 5, 0, 0},
		{"empty site", 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AttendanceRate(tt.present, tt.half, tt.employeeCount, tt.totalDays)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShortage(t *testing.T) {
	assert.Equal(t, 0.0, Shortage(0, 0))
	assert.Equal(t, 3.5, Shortage(3, 1))
	assert.Equal(t, 1.0, Shortage(0, 2))
}
