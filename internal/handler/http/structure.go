package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stafflane/backoffice-backend-go/internal/domain/structure"
	"github.com/stafflane/backoffice-backend-go/internal/handler/http/response"
	structureService "github.com/stafflane/backoffice-backend-go/internal/service/structure"
)

type StructureHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetActiveByEmployee(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type StructureHandlerImpl struct {
	structureService structureService.StructureService
}

func NewStructureHandler(svc structureService.StructureService) StructureHandler {
	return &StructureHandlerImpl{structureService: svc}
}

func (h *StructureHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req structure.CreateStructureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create structure decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.structureService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary structure created", created)
}

func (h *StructureHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Structure ID is required", nil)
		return
	}

	s, err := h.structureService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, s)
}

func (h *StructureHandlerImpl) GetActiveByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	s, err := h.structureService.GetActiveByEmployeeID(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, s)
}

func (h *StructureHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var isActive *bool
	if v := r.URL.Query().Get("is_active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			response.BadRequest(w, "is_active must be true or false", nil)
			return
		}
		isActive = &b
	}

	structures, err := h.structureService.List(r.Context(), isActive)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, structures)
}

func (h *StructureHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Structure ID is required", nil)
		return
	}

	var req structure.UpdateStructureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update structure decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	updated, err := h.structureService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary structure updated", updated)
}

func (h *StructureHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Structure ID is required", nil)
		return
	}

	if err := h.structureService.Deactivate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary structure deactivated", nil)
}
