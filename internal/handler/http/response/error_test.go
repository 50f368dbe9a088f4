package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stafflane/backoffice-backend-go/internal/domain/attendance"
	"github.com/stafflane/backoffice-backend-go/internal/domain/payroll"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/validator"
)

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "validation errors are unprocessable",
			err: validator.ValidationErrors{
				{Field: "month", Message: "must be in YYYY-MM format"},
			},
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "inverted date range is a bad request",
			err:  attendance.ErrInvalidDateRange,
			want: http.StatusBadRequest,
		},
		{
			name: "missing record is not found",
			err:  payroll.ErrPayrollRecordNotFound,
			want: http.StatusNotFound,
		},
		{
			name: "duplicate processing is a conflict",
			err:  payroll.ErrPayrollRecordAlreadyExists,
			want: http.StatusConflict,
		},
		{
			name: "unknown errors stay internal",
			err:  errors.New("connection reset"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
