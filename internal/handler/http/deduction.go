package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stafflane/backoffice-backend-go/internal/domain/deduction"
	"github.com/stafflane/backoffice-backend-go/internal/handler/http/response"
	deductionService "github.com/stafflane/backoffice-backend-go/internal/service/deduction"
)

type DeductionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type DeductionHandlerImpl struct {
	deductionService deductionService.DeductionService
}

func NewDeductionHandler(svc deductionService.DeductionService) DeductionHandler {
	return &DeductionHandlerImpl{deductionService: svc}
}

func (h *DeductionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req deduction.CreateDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create deduction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.deductionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction created", created)
}

func (h *DeductionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Deduction ID is required", nil)
		return
	}

	d, err := h.deductionService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, d)
}

func (h *DeductionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := deduction.Filter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 20),
	}

	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("type"); v != "" {
		filter.Type = &v
	}
	if v := r.URL.Query().Get("search"); v != "" {
		filter.Search = &v
	}

	result, err := h.deductionService.List(r.Context(), filter)
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

func (h *DeductionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Deduction ID is required", nil)
		return
	}

	var req deduction.UpdateDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update deduction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.deductionService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction updated", updated)
}

func (h *DeductionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Deduction ID is required", nil)
		return
	}

	if err := h.deductionService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction deleted", nil)
}

func (h *DeductionHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.deductionService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
