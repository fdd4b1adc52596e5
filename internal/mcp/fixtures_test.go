package mcp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"finashopping-mcp/internal/backend"
	"finashopping-mcp/internal/config"
)

// Fixture catalog matching the backend's seeded data.

var fixtureLoans = []backend.Loan{
	{ID: 1, Name: "Préstamo Personal BROU", Institution: "Banco República Oriental del Uruguay (BROU)",
		Amount: 150000, Currency: backend.CurrencyLocal, Rate: 28, Term: 36, MonthlyPayment: 5850,
		Probability: backend.ProbabilityHigh, Features: []string{"Sin comisiones de apertura", "Aprobación en 48 horas", "Tasa fija"}},
	{ID: 2, Name: "Préstamo Auto Santander", Institution: "Santander Uruguay",
		Amount: 800000, Currency: backend.CurrencyLocal, Rate: 32, Term: 60, MonthlyPayment: 22400,
		Probability: backend.ProbabilityMedium, Features: []string{"Para vehículos 0km y usados", "Hasta 70% de financiación", "Seguro incluido"}},
	{ID: 3, Name: "Préstamo Hipotecario Itaú", Institution: "Itaú Uruguay",
		Amount: 3000000, Currency: backend.CurrencyUSD, Rate: 8.5, Term: 240, MonthlyPayment: 25650,
		Probability: backend.ProbabilityLow, Features: []string{"Hasta 80% del valor del inmueble", "Tasa en dólares", "Plazo hasta 20 años"}},
	{ID: 4, Name: "Préstamo Personal Scotiabank", Institution: "Scotiabank Uruguay",
		Amount: 200000, Currency: backend.CurrencyLocal, Rate: 30, Term: 48, MonthlyPayment: 6200,
		Probability: backend.ProbabilityHigh, Features: []string{"Respuesta en 24 horas", "Sin garantía requerida", "Débito automático"}},
	{ID: 5, Name: "Préstamo Auto BBVA", Institution: "BBVA Uruguay",
		Amount: 600000, Currency: backend.CurrencyLocal, Rate: 29, Term: 48, MonthlyPayment: 17500,
		Probability: backend.ProbabilityMedium, Features: []string{"Financiación hasta 80%", "Seguro contra robo incluido", "Tasa competitiva"}},
}

var fixtureCards = []backend.CreditCard{
	{ID: 1, Name: "OCA Blue", Issuer: "Banco República (BROU)", Network: "OCA",
		Limit: 100000, Currency: backend.CurrencyLocal, AnnualFee: 0,
		Benefits:       []string{"Sin costo anual", "Compras en 12 cuotas sin recargo", "Descuentos en comercios adheridos"},
		Recommendation: "Ideal para compras locales"},
	{ID: 2, Name: "Santander Mastercard Platinum", Issuer: "Santander Uruguay", Network: "Mastercard",
		Limit: 250000, Currency: backend.CurrencyLocal, AnnualFee: 2500,
		Benefits:       []string{"Acceso a salas VIP en aeropuertos", "Seguro de viaje incluido", "Cashback 2% en compras internacionales"},
		Recommendation: "Perfecta para viajeros frecuentes"},
	{ID: 3, Name: "Itaú Uniclass Infinite", Issuer: "Itaú Uruguay", Network: "Visa",
		Limit: 500000, Currency: backend.CurrencyUSD, AnnualFee: 150,
		Benefits:       []string{"Programa de millas Lifemiles", "Concierge 24/7", "Seguro de compras y viajes premium"},
		Recommendation: "Premium para alto poder adquisitivo"},
	{ID: 4, Name: "Scotiabank Visa Gold", Issuer: "Scotiabank Uruguay", Network: "Visa",
		Limit: 180000, Currency: backend.CurrencyLocal, AnnualFee: 1800,
		Benefits:       []string{"Programa Scotia Puntos", "Seguro de compras", "Asistencia en viajes"},
		Recommendation: "Buena relación costo-beneficio"},
}

var fixtureInsurances = []backend.Insurance{
	{ID: 1, Type: "Seguro de Vida", Provider: "BSE - Banco de Seguros del Estado",
		Coverage: "Hasta $U 2,000,000", MonthlyPremium: 1500,
		Features: []string{"Cobertura por muerte e invalidez", "Sin examen médico hasta $U 1,000,000", "Beneficiarios flexibles"}},
	{ID: 2, Type: "Seguro de Auto", Provider: "Sura Uruguay",
		Coverage: "Todo riesgo con franquicia", MonthlyPremium: 3800,
		Features: []string{"Cobertura en todo el territorio nacional", "Asistencia 24/7", "Auto sustituto en caso de siniestro"}},
	{ID: 3, Type: "Seguro de Hogar", Provider: "Mapfre Uruguay",
		Coverage: "Hasta USD 100,000", MonthlyPremium: 2200,
		Features: []string{"Cobertura por incendio, robo y daños", "Responsabilidad civil incluida", "Asistencia del hogar 24/7"}},
}

var fixtureGuarantees = []backend.Guarantee{
	{ID: 1, Type: "Garantía de Alquiler", Provider: "Contaduría General de la Nación",
		Coverage:     "Garantía estatal para alquileres",
		Requirements: []string{"Ser funcionario público", "Presentar últimos recibos de sueldo", "No superar cierto porcentaje del ingreso"},
		MonthlyFee:   0, Description: "Sistema de garantías para funcionarios públicos"},
	{ID: 2, Type: "Seguro de Caución", Provider: "Sura - Seguro de Caución",
		Coverage:     "Hasta 24 meses de alquiler",
		Requirements: []string{"Demostrar ingresos estables", "Clearing bancario", "Pago único anual"},
		MonthlyFee:   0, AnnualFee: 8500, Description: "Alternativa a la garantía tradicional, sin inmovilizar capital"},
}

var fixtureBenefits = []backend.Benefit{
	{ID: 1, Title: "Descuentos en Supermercados", Description: "15% off en Tienda Inglesa, Disco y Devoto",
		Discount: "15%", Category: "Alimentación", ValidUntil: "2025-12-31"},
	{ID: 2, Title: "Cine con descuento", Description: "2x1 en Movie Center todos los martes",
		Discount: "50%", Category: "Entretenimiento", ValidUntil: "2025-12-31"},
	{ID: 3, Title: "Descuentos en UTE, OSE y Antel", Description: "5% de descuento en servicios públicos",
		Discount: "5%", Category: "Servicios", ValidUntil: "2025-12-31"},
	{ID: 4, Title: "Nafta con descuento", Description: "10% off en Ancap y Petrobras",
		Discount: "10%", Category: "Combustible", ValidUntil: "2025-12-31"},
}

// newTestServer spins up a fake backend and an MCP server wired against it.
func newTestServer(t *testing.T) *Server {
	return newTestServerWithLocale(t, config.LocaleSpanish)
}

func newTestServerWithLocale(t *testing.T, locale string) *Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/v1/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "token": "test-token"})
	})
	serveCollection := func(key string, v any) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{key: v})
		}
	}
	mux.HandleFunc("/api/v1/loans", serveCollection("loans", fixtureLoans))
	mux.HandleFunc("/api/v1/credit-cards", serveCollection("creditCards", fixtureCards))
	mux.HandleFunc("/api/v1/insurances", serveCollection("insurances", fixtureInsurances))
	mux.HandleFunc("/api/v1/guarantees", serveCollection("guarantees", fixtureGuarantees))
	mux.HandleFunc("/api/v1/benefits", serveCollection("benefits", fixtureBenefits))

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	client := backend.New(backend.Config{BaseURL: ts.URL, Username: "svc", Password: "secret"}, nil, zap.NewNop())
	return NewServer(client, locale, zap.NewNop())
}

// callRequest builds a CallToolRequest the way the protocol layer would.
func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

// resultJSON decodes a tool result's single text content as JSON.
func resultJSON(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &payload))
	return payload
}
