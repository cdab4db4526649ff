package handlers

import (
	"fmt"
	"net/http"
	"time"

	"araucarias-admin-service/internal/chat"
	"araucarias-admin-service/internal/export"
	"araucarias-admin-service/pkg/response"
)

// ReportExcel streams an xlsx report built from the same business
// summary the chat assistant reasons over.
func (h *Handler) ReportExcel(w http.ResponseWriter, r *http.Request) {
	reportType, days, ok := h.parseReportParams(w, r)
	if !ok {
		return
	}

	summary, err := h.businessSummary(r, days)
	if err != nil {
		h.Logger.Error("excel report summary failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not build report")
		return
	}

	buf, err := export.BuildExcel(summary, reportType)
	if err != nil {
		h.Logger.Error("excel report build failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not build report")
		return
	}

	filename := fmt.Sprintf("reporte-%s-%s.xlsx", reportType, time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(buf.Bytes())
}

// ReportPDF streams the pdf counterpart.
func (h *Handler) ReportPDF(w http.ResponseWriter, r *http.Request) {
	reportType, days, ok := h.parseReportParams(w, r)
	if !ok {
		return
	}

	summary, err := h.businessSummary(r, days)
	if err != nil {
		h.Logger.Error("pdf report summary failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not build report")
		return
	}

	buf, err := export.BuildPDF(summary, reportType)
	if err != nil {
		h.Logger.Error("pdf report build failed", zapError(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not build report")
		return
	}

	filename := fmt.Sprintf("reporte-%s-%s.pdf", reportType, time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) parseReportParams(w http.ResponseWriter, r *http.Request) (chat.ReportType, int, bool) {
	q := r.URL.Query()

	typeParam := q.Get("type")
	if typeParam == "" {
		typeParam = string(chat.ReportSales)
	}
	if !chat.ValidReportType(typeParam) {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown report type")
		return "", 0, false
	}

	days := parseIntWithBounds(q.Get("days"), h.Config.ReportDefaultDays, 1, 365)
	return chat.ReportType(typeParam), days, true
}
