package export

import (
	"bytes"
	"fmt"

	"araucarias-admin-service/internal/chat"
	"araucarias-admin-service/internal/reporting"

	"github.com/phpdave11/gofpdf"
)

// BuildPDF renders the printable counterpart of the Excel reports.
func BuildPDF(summary reporting.BusinessSummary, reportType chat.ReportType) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, "Las Araucarias", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Reporte de los ultimos %d dias", summary.Days), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	switch reportType {
	case chat.ReportProducts:
		writeProductsPDF(pdf, summary)
	case chat.ReportCategories:
		writeCategoriesPDF(pdf, summary)
	default:
		writeSalesPDF(pdf, summary)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return &buf, nil
}

func writeSalesPDF(pdf *gofpdf.Fpdf, summary reporting.BusinessSummary) {
	sectionHeader(pdf, "Resumen general")
	pdf.SetFont("Arial", "", 9)
	lines := []string{
		fmt.Sprintf("Pedidos totales: %d", summary.SalesStats.TotalOrders),
		fmt.Sprintf("Ingresos totales: $%.2f", summary.SalesStats.TotalRevenue),
		fmt.Sprintf("Local: %d pedidos ($%.2f)", summary.SalesStats.QuioscoOrders, summary.SalesStats.QuioscoRevenue),
		fmt.Sprintf("Delivery: %d pedidos ($%.2f)", summary.SalesStats.DeliveryOrders, summary.SalesStats.DeliveryRevenue),
		fmt.Sprintf("Promedio por pedido: $%.2f", summary.SalesStats.AverageOrderValue),
	}
	for _, line := range lines {
		pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
	}

	pdf.Ln(3)
	sectionHeader(pdf, "Ventas por dia")
	pdf.SetFont("Arial", "", 9)
	for _, d := range summary.DayStats {
		pdf.CellFormat(0, 5, fmt.Sprintf("%s: %d pedidos - $%.2f", d.Day, d.Orders, d.Revenue), "", 1, "L", false, 0, "")
	}
}

func writeProductsPDF(pdf *gofpdf.Fpdf, summary reporting.BusinessSummary) {
	sectionHeader(pdf, "Mas vendidos")
	pdf.SetFont("Arial", "", 9)
	for _, p := range summary.TopProducts {
		pdf.CellFormat(0, 5, fmt.Sprintf("%d. %s (%s) - %.0f unidades - $%.2f", p.Rank, p.Name, p.Category, p.QuantitySold, p.Revenue), "", 1, "L", false, 0, "")
	}

	pdf.Ln(3)
	sectionHeader(pdf, "Menos vendidos")
	pdf.SetFont("Arial", "", 9)
	for _, p := range summary.LowProducts {
		pdf.CellFormat(0, 5, fmt.Sprintf("%d. %s (%s) - %.0f unidades - $%.2f", p.Rank, p.Name, p.Category, p.QuantitySold, p.Revenue), "", 1, "L", false, 0, "")
	}
}

func writeCategoriesPDF(pdf *gofpdf.Fpdf, summary reporting.BusinessSummary) {
	sectionHeader(pdf, "Categorias")
	pdf.SetFont("Arial", "", 9)
	for _, c := range summary.TopCategories {
		pdf.CellFormat(0, 5, fmt.Sprintf("%d. %s - %.0f unidades - $%.2f", c.Rank, c.Name, c.QuantitySold, c.Revenue), "", 1, "L", false, 0, "")
	}
}

func sectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, title, "B", 1, "L", false, 0, "")
}
