package chat

import "strings"

type ReportType string

const (
	ReportSales      ReportType = "sales"
	ReportProducts   ReportType = "products"
	ReportCategories ReportType = "categories"
)

type ReportDetection struct {
	HasReport  bool       `json:"hasReport"`
	ReportType ReportType `json:"reportType,omitempty"`
}

// DetectReportRequest decides whether a chat turn should offer a report
// download, and of which kind. Keyword heuristic over both sides of the
// exchange; the product check wins over the category check.
func DetectReportRequest(userMessage, aiResponse string) ReportDetection {
	user := strings.ToLower(userMessage)
	ai := strings.ToLower(aiResponse)

	mentionsReport := strings.Contains(user, "reporte") ||
		strings.Contains(user, "informe") ||
		strings.Contains(user, "excel") ||
		strings.Contains(ai, "reporte") ||
		strings.Contains(ai, "excel") ||
		strings.Contains(ai, "descargar")

	if !mentionsReport {
		return ReportDetection{}
	}

	switch {
	case strings.Contains(user, "producto") || strings.Contains(ai, "producto") || strings.Contains(user, "vendido"):
		return ReportDetection{HasReport: true, ReportType: ReportProducts}
	case strings.Contains(user, "categoría") || strings.Contains(user, "categoria") || strings.Contains(ai, "categoría"):
		return ReportDetection{HasReport: true, ReportType: ReportCategories}
	default:
		return ReportDetection{HasReport: true, ReportType: ReportSales}
	}
}

// ValidReportType reports whether a caller-supplied type names a known
// report.
func ValidReportType(value string) bool {
	switch ReportType(value) {
	case ReportSales, ReportProducts, ReportCategories:
		return true
	}
	return false
}
