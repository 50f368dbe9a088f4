package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/stafflane/backoffice-backend-go/internal/domain/site"
	"github.com/stafflane/backoffice-backend-go/internal/handler/http/response"
	siteService "github.com/stafflane/backoffice-backend-go/internal/service/site"
)

type SiteHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type SiteHandlerImpl struct {
	siteService siteService.SiteService
}

func NewSiteHandler(svc siteService.SiteService) SiteHandler {
	return &SiteHandlerImpl{siteService: svc}
}

func (h *SiteHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req site.CreateSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create site decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.siteService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Site created", created)
}

func (h *SiteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sites, err := h.siteService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sites)
}
