package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stafflane/backoffice-backend-go/internal/domain/payroll"
	"github.com/stafflane/backoffice-backend-go/internal/handler/http/response"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/validator"
	payrollService "github.com/stafflane/backoffice-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
	ProcessAll(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdatePaymentStatus(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payrollService.PayrollService
}

func NewPayrollHandler(svc payrollService.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: svc}
}

func (h *PayrollHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	var req payroll.ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Process payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.payrollService.Process(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll processed", record)
}

func (h *PayrollHandlerImpl) ProcessAll(w http.ResponseWriter, r *http.Request) {
	var req payroll.ProcessAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Process-all payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.ProcessAll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *PayrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	record, err := h.payrollService.GetRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := payroll.Filter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 20),
	}

	if v := r.URL.Query().Get("month"); v != "" {
		if !validator.IsValidMonth(v) {
			response.BadRequest(w, "month must be in YYYY-MM format", nil)
			return
		}
		filter.Month = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}

	result, err := h.payrollService.ListRecords(r.Context(), filter)
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

func (h *PayrollHandlerImpl) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	var req payroll.UpdatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update payment status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	record, err := h.payrollService.UpdatePaymentStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment status updated", record)
}

func (h *PayrollHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if !validator.IsValidMonth(month) {
		response.BadRequest(w, "month must be in YYYY-MM format", nil)
		return
	}

	summary, err := h.payrollService.Summary(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
