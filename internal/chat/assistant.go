package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"araucarias-admin-service/internal/reporting"
	"araucarias-admin-service/internal/store"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrNotConfigured = errors.New("assistant api key not configured")

type Assistant struct {
	apiKey string
	model  string
}

func New(apiKey, model string) *Assistant {
	return &Assistant{apiKey: apiKey, model: model}
}

func (a *Assistant) Enabled() bool {
	return a.apiKey != ""
}

// Reply sends one chat turn to the language model with the business
// summary as context and the stored session transcript as history.
func (a *Assistant) Reply(ctx context.Context, summary reporting.BusinessSummary, history []store.ChatMessage, userMessage string) (string, error) {
	if !a.Enabled() {
		return "", ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(a.apiKey))
	if err != nil {
		return "", fmt.Errorf("create genai client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(a.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(buildContextPrompt(summary))},
	}

	session := model.StartChat()
	session.History = historyToContents(history)

	resp, err := session.SendMessage(ctx, genai.Text(userMessage))
	if err != nil {
		return "", fmt.Errorf("assistant request: %w", err)
	}

	return firstText(resp), nil
}

func historyToContents(history []store.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := "user"
		if msg.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents
}

func firstText(resp *genai.GenerateContentResponse) string {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				return string(txt)
			}
		}
	}
	return "No pude procesar la respuesta."
}

// buildContextPrompt renders the business summary into the assistant's
// Spanish-only system prompt, mirroring the tone rules the restaurant
// asked for: simple words, no English jargon, concrete numbers.
func buildContextPrompt(summary reporting.BusinessSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Eres un asistente amigable para el restaurante "Las Araucarias".
Ayudas al dueño y trabajadores a entender las ventas de los últimos %d días.

IMPORTANTE - CÓMO DEBES RESPONDER:
- Usa palabras SIMPLES que cualquier persona pueda entender
- NUNCA uses palabras en inglés (NO digas: cross-selling, up-selling, top sellers, insights, etc.)
- En lugar de "insights" di "consejos" o "recomendaciones"
- En lugar de "top sellers" di "los más vendidos"
- Habla como si le explicaras a un familiar que no sabe de tecnología
- Usa números y datos concretos, fáciles de entender
- Sé amable y cercano en tu forma de hablar

DATOS DE LAS VENTAS:

📊 RESUMEN GENERAL:
- Pedidos totales: %d
- Dinero ganado: $%.2f
- Pedidos en el local: %d (ganamos $%.2f)
- Pedidos por delivery: %d (ganamos $%.2f)
- Promedio por pedido: $%.2f

`,
		summary.Days,
		summary.SalesStats.TotalOrders,
		summary.SalesStats.TotalRevenue,
		summary.SalesStats.QuioscoOrders,
		summary.SalesStats.QuioscoRevenue,
		summary.SalesStats.DeliveryOrders,
		summary.SalesStats.DeliveryRevenue,
		summary.SalesStats.AverageOrderValue,
	)

	b.WriteString("🔥 LO QUE MÁS SE VENDE:\n")
	for i, p := range summary.TopProducts {
		fmt.Fprintf(&b, "%d. %s (%s) - Se vendieron %.0f unidades\n", i+1, p.Name, p.Category, p.QuantitySold)
	}

	b.WriteString("\n📉 LO QUE MENOS SE VENDE:\n")
	for i, p := range summary.LowProducts {
		fmt.Fprintf(&b, "%d. %s (%s) - Se vendieron %.0f unidades\n", i+1, p.Name, p.Category, p.QuantitySold)
	}

	b.WriteString("\n🏷️ CATEGORÍAS QUE MÁS VENDEN:\n")
	for i, c := range summary.TopCategories {
		fmt.Fprintf(&b, "%d. %s - %.0f unidades vendidas - Ganamos $%.2f\n", i+1, c.Name, c.QuantitySold, c.Revenue)
	}

	b.WriteString("\n📅 VENTAS POR DÍA DE LA SEMANA:\n")
	for _, d := range summary.DayStats {
		fmt.Fprintf(&b, "%s: %d pedidos - Ganamos $%.2f\n", d.Day, d.Orders, d.Revenue)
	}

	fmt.Fprintf(&b, `
REGLAS PARA RESPONDER:
- Responde siempre en español sencillo
- No uses jerga técnica ni palabras en inglés
- Usa emojis para que sea más visual y agradable
- Da consejos prácticos y fáciles de aplicar
- Si preguntan sobre qué comprar o abastecer, recomienda ingredientes basándote en lo que más se vende
- Sé breve pero claro

SOBRE LOS REPORTES:
- Si piden un "reporte", "informe" o "Excel", diles que pueden descargarlo con el botón verde que aparecerá abajo
- Los reportes tienen información detallada de los últimos %d días
`, summary.Days)

	return b.String()
}
