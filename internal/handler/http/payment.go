package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stafflane/backoffice-backend-go/internal/domain/payment"
	"github.com/stafflane/backoffice-backend-go/internal/handler/http/response"
	paymentService "github.com/stafflane/backoffice-backend-go/internal/service/payment"
)

type PaymentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MethodDistribution(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type PaymentHandlerImpl struct {
	paymentService paymentService.PaymentService
}

func NewPaymentHandler(svc paymentService.PaymentService) PaymentHandler {
	return &PaymentHandlerImpl{paymentService: svc}
}

func (h *PaymentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payment.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create payment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.paymentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payment recorded", created)
}

func (h *PaymentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payment ID is required", nil)
		return
	}

	p, err := h.paymentService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

func (h *PaymentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := payment.Filter{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 20),
	}

	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("method"); v != "" {
		filter.Method = &v
	}
	if v := r.URL.Query().Get("client"); v != "" {
		filter.Client = &v
	}

	result, err := h.paymentService.List(r.Context(), filter)
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

func (h *PaymentHandlerImpl) MethodDistribution(w http.ResponseWriter, r *http.Request) {
	distribution, err := h.paymentService.MethodDistribution(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, distribution)
}

func (h *PaymentHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = "monthly"
	}

	stats, err := h.paymentService.Stats(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
