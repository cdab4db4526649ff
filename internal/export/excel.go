package export

import (
	"bytes"
	"fmt"

	"araucarias-admin-service/internal/chat"
	"araucarias-admin-service/internal/reporting"

	"github.com/xuri/excelize/v2"
)

// BuildExcel renders a downloadable workbook for the requested report
// type from the same business summary the chat assistant sees.
func BuildExcel(summary reporting.BusinessSummary, reportType chat.ReportType) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	switch reportType {
	case chat.ReportProducts:
		if err := writeProductsSheet(f, summary); err != nil {
			return nil, err
		}
	case chat.ReportCategories:
		if err := writeCategoriesSheet(f, summary); err != nil {
			return nil, err
		}
	default:
		if err := writeSalesSheet(f, summary); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func writeSalesSheet(f *excelize.File, summary reporting.BusinessSummary) error {
	sheet := "Ventas"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	rows := [][]any{
		{fmt.Sprintf("Resumen de ventas - últimos %d días", summary.Days)},
		{},
		{"Pedidos totales", summary.SalesStats.TotalOrders},
		{"Ingresos totales", summary.SalesStats.TotalRevenue},
		{"Pedidos en el local", summary.SalesStats.QuioscoOrders},
		{"Ingresos local", summary.SalesStats.QuioscoRevenue},
		{"Pedidos delivery", summary.SalesStats.DeliveryOrders},
		{"Ingresos delivery", summary.SalesStats.DeliveryRevenue},
		{"Promedio por pedido", summary.SalesStats.AverageOrderValue},
		{},
		{"Día", "Pedidos", "Ingresos"},
	}
	for _, d := range summary.DayStats {
		rows = append(rows, []any{d.Day, d.Orders, d.Revenue})
	}
	return writeRows(f, sheet, rows)
}

func writeProductsSheet(f *excelize.File, summary reporting.BusinessSummary) error {
	sheet := "Productos"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	rows := [][]any{
		{fmt.Sprintf("Productos - últimos %d días", summary.Days)},
		{},
		{"Más vendidos"},
		{"Puesto", "Producto", "Categoría", "Unidades", "Ingresos"},
	}
	for _, p := range summary.TopProducts {
		rows = append(rows, []any{p.Rank, p.Name, p.Category, p.QuantitySold, p.Revenue})
	}
	rows = append(rows, []any{}, []any{"Menos vendidos"}, []any{"Puesto", "Producto", "Categoría", "Unidades", "Ingresos"})
	for _, p := range summary.LowProducts {
		rows = append(rows, []any{p.Rank, p.Name, p.Category, p.QuantitySold, p.Revenue})
	}
	return writeRows(f, sheet, rows)
}

func writeCategoriesSheet(f *excelize.File, summary reporting.BusinessSummary) error {
	sheet := "Categorías"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	rows := [][]any{
		{fmt.Sprintf("Categorías - últimos %d días", summary.Days)},
		{},
		{"Puesto", "Categoría", "Unidades", "Ingresos"},
	}
	for _, c := range summary.TopCategories {
		rows = append(rows, []any{c.Rank, c.Name, c.QuantitySold, c.Revenue})
	}
	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
