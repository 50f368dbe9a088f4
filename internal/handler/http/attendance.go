package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/stafflane/backoffice-backend-go/internal/domain/attendance"
	"github.com/stafflane/backoffice-backend-go/internal/handler/http/response"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/validator"
	attendanceService "github.com/stafflane/backoffice-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	Ingest(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendanceService.AttendanceService
}

func NewAttendanceHandler(svc attendanceService.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: svc}
}

func (h *AttendanceHandlerImpl) Ingest(w http.ResponseWriter, r *http.Request) {
	var req attendance.IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Ingest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Ingest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance records ingested", result)
}

func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.Filter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 50),
	}

	if v := r.URL.Query().Get("startDate"); v != "" {
		d, ok := validator.IsValidDate(v)
		if !ok {
			response.BadRequest(w, "startDate must be a valid YYYY-MM-DD date", nil)
			return
		}
		filter.StartDate = &d
	}
	if v := r.URL.Query().Get("endDate"); v != "" {
		d, ok := validator.IsValidDate(v)
		if !ok {
			response.BadRequest(w, "endDate must be a valid YYYY-MM-DD date", nil)
			return
		}
		filter.EndDate = &d
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("site_name"); v != "" {
		filter.SiteName = &v
	}
	if v := r.URL.Query().Get("department"); v != "" {
		filter.Department = &v
	}

	result, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
	})
}

func (h *AttendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if !validator.IsValidMonth(month) {
		response.BadRequest(w, "month must be in YYYY-MM format", nil)
		return
	}

	workingDays := queryInt(r, "working_days", 0)

	aggregates, err := h.attendanceService.MonthlyAggregates(r.Context(), month, workingDays)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, aggregates)
}

// queryInt reads an integer query parameter, falling back on absence or junk.
func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
