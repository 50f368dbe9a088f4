package http

import (
	"fmt"
	"net/http"

	"github.com/stafflane/backoffice-backend-go/internal/handler/http/response"
	reportService "github.com/stafflane/backoffice-backend-go/internal/service/report"
)

type ReportHandler interface {
	SiteAttendance(w http.ResponseWriter, r *http.Request)
	DepartmentAttendance(w http.ResponseWriter, r *http.Request)
	ShortageTrend(w http.ResponseWriter, r *http.Request)
	ExportPayrollCSV(w http.ResponseWriter, r *http.Request)
	ExportAttendanceCSV(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService reportService.ReportService
}

func NewReportHandler(svc reportService.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: svc}
}

func (h *ReportHandlerImpl) SiteAttendance(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	summaries, err := h.reportService.SiteAttendance(r.Context(), startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

func (h *ReportHandlerImpl) DepartmentAttendance(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	summaries, err := h.reportService.DepartmentAttendance(r.Context(), startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

func (h *ReportHandlerImpl) ShortageTrend(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	trend, err := h.reportService.ShortageTrend(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, trend)
}

func (h *ReportHandlerImpl) ExportPayrollCSV(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	body, filename, err := h.reportService.ExportPayrollCSV(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeCSV(w, filename, body)
}

func (h *ReportHandlerImpl) ExportAttendanceCSV(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	body, filename, err := h.reportService.ExportAttendanceCSV(r.Context(), startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeCSV(w, filename, body)
}

func writeCSV(w http.ResponseWriter, filename string, body []byte) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(body)
}
