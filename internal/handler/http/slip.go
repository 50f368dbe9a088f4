package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stafflane/backoffice-backend-go/internal/domain/slip"
	"github.com/stafflane/backoffice-backend-go/internal/handler/http/response"
	slipService "github.com/stafflane/backoffice-backend-go/internal/service/slip"
)

type SlipHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	DownloadPDF(w http.ResponseWriter, r *http.Request)
	SendEmail(w http.ResponseWriter, r *http.Request)
}

type SlipHandlerImpl struct {
	slipService slipService.SlipService
}

func NewSlipHandler(svc slipService.SlipService) SlipHandler {
	return &SlipHandlerImpl{slipService: svc}
}

func (h *SlipHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req slip.GenerateSlipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Generate slip decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	generated, err := h.slipService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary slip generated", generated)
}

func (h *SlipHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Slip ID is required", nil)
		return
	}

	s, err := h.slipService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, s)
}

func (h *SlipHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var month, employeeID *string
	if v := r.URL.Query().Get("month"); v != "" {
		month = &v
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		employeeID = &v
	}

	slips, err := h.slipService.List(r.Context(), month, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, slips)
}

func (h *SlipHandlerImpl) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Slip ID is required", nil)
		return
	}

	reader, filename, err := h.slipService.DownloadPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := io.Copy(w, reader); err != nil {
		slog.Error("Failed to stream slip pdf", "slip_id", id, "error", err)
	}
}

func (h *SlipHandlerImpl) SendEmail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Slip ID is required", nil)
		return
	}

	s, err := h.slipService.SendEmail(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary slip emailed", s)
}
