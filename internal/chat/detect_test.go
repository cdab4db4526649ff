package chat

import "testing"

func TestDetectReportRequest(t *testing.T) {
	cases := []struct {
		name       string
		user       string
		ai         string
		hasReport  bool
		reportType ReportType
	}{
		{
			name:      "no report keywords",
			user:      "¿Cómo estuvieron las ventas hoy?",
			ai:        "Las ventas de hoy fueron $45.000 en total.",
			hasReport: false,
		},
		{
			name:       "sales report requested",
			user:       "Genera un reporte de ventas",
			ai:         "Claro, aquí tienes el resumen.",
			hasReport:  true,
			reportType: ReportSales,
		},
		{
			name:       "product report via user keywords",
			user:       "Quiero un informe de los productos más vendidos",
			ai:         "Estos son los resultados.",
			hasReport:  true,
			reportType: ReportProducts,
		},
		{
			name:       "category report",
			user:       "Dame un reporte por categoría",
			ai:         "Aquí está el desglose.",
			hasReport:  true,
			reportType: ReportCategories,
		},
		{
			name:       "product beats category",
			user:       "reporte de productos por categoría",
			ai:         "",
			hasReport:  true,
			reportType: ReportProducts,
		},
		{
			name:       "detection from assistant side",
			user:       "¿Y el detalle?",
			ai:         "Puedes descargar el reporte en Excel con los productos.",
			hasReport:  true,
			reportType: ReportProducts,
		},
		{
			name:       "excel keyword alone means sales",
			user:       "Necesito un excel",
			ai:         "Listo.",
			hasReport:  true,
			reportType: ReportSales,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectReportRequest(tc.user, tc.ai)
			if got.HasReport != tc.hasReport {
				t.Fatalf("hasReport = %v, want %v", got.HasReport, tc.hasReport)
			}
			if tc.hasReport && got.ReportType != tc.reportType {
				t.Fatalf("reportType = %s, want %s", got.ReportType, tc.reportType)
			}
		})
	}
}

func TestValidReportType(t *testing.T) {
	for _, valid := range []string{"sales", "products", "categories"} {
		if !ValidReportType(valid) {
			t.Fatalf("%s should be valid", valid)
		}
	}
	for _, invalid := range []string{"", "ventas", "SALES", "orders"} {
		if ValidReportType(invalid) {
			t.Fatalf("%s should be invalid", invalid)
		}
	}
}
