package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// setupTools registers the nine catalog tools. Descriptions are shipped in
// Spanish, matching the audience of the catalog data.
func (s *Server) setupTools() {
	searchLoans := mcp.NewTool("search-loans",
		mcp.WithDescription("Buscar préstamos disponibles en instituciones financieras uruguayas. Permite filtrar por monto, plazo y tipo."),
		mcp.WithNumber("amount", mcp.Description("Monto del préstamo en pesos uruguayos")),
		mcp.WithNumber("term", mcp.Description("Plazo en meses (6-360)")),
		mcp.WithString("type", mcp.Description("Tipo de préstamo"), mcp.Enum("personal", "auto", "hipotecario")),
	)
	s.mcpServer.AddTool(searchLoans, s.handleSearchLoans)

	calculatePayment := mcp.NewTool("calculate-loan-payment",
		mcp.WithDescription("Calcular la cuota mensual de un préstamo usando el sistema francés (cuota fija). Devuelve cuota, total a pagar e intereses."),
		mcp.WithNumber("amount", mcp.Required(), mcp.Description("Monto del préstamo")),
		mcp.WithNumber("rate", mcp.Required(), mcp.Description("Tasa de interés anual (%)")),
		mcp.WithNumber("term", mcp.Required(), mcp.Description("Plazo en meses (1-360)")),
	)
	s.mcpServer.AddTool(calculatePayment, s.handleCalculatePayment)

	compareLoans := mcp.NewTool("compare-loans",
		mcp.WithDescription("Comparar múltiples préstamos lado a lado. Útil para elegir la mejor opción."),
		mcp.WithArray("loanIds", mcp.Required(),
			mcp.Description("IDs de préstamos a comparar (entre 2 y 5)"),
			mcp.Items(map[string]any{"type": "number"})),
	)
	s.mcpServer.AddTool(compareLoans, s.handleCompareLoans)

	loanRequirements := mcp.NewTool("get-loan-requirements",
		mcp.WithDescription("Obtener los requisitos para solicitar un préstamo específico."),
		mcp.WithNumber("loanId", mcp.Required(), mcp.Description("ID del préstamo")),
	)
	s.mcpServer.AddTool(loanRequirements, s.handleLoanRequirements)

	searchCards := mcp.NewTool("search-credit-cards",
		mcp.WithDescription("Buscar tarjetas de crédito disponibles en Uruguay. Permite filtrar por red de pago y costo anual máximo."),
		mcp.WithString("network", mcp.Description("Red de pago"), mcp.Enum("OCA", "Visa", "Mastercard")),
		mcp.WithNumber("maxAnnualFee", mcp.Description("Costo anual máximo en pesos uruguayos")),
	)
	s.mcpServer.AddTool(searchCards, s.handleSearchCards)

	cardDetails := mcp.NewTool("get-card-details",
		mcp.WithDescription("Obtener detalles completos de una tarjeta de crédito específica."),
		mcp.WithNumber("cardId", mcp.Required(), mcp.Description("ID de la tarjeta")),
	)
	s.mcpServer.AddTool(cardDetails, s.handleCardDetails)

	searchInsurances := mcp.NewTool("search-insurances",
		mcp.WithDescription("Buscar seguros disponibles en Uruguay. Incluye seguros de vida, auto, hogar y más."),
		mcp.WithString("type", mcp.Description("Tipo de seguro (vida, auto, hogar)")),
	)
	s.mcpServer.AddTool(searchInsurances, s.handleSearchInsurances)

	searchGuarantees := mcp.NewTool("search-guarantees",
		mcp.WithDescription("Buscar opciones de garantía de alquiler disponibles en Uruguay."),
	)
	s.mcpServer.AddTool(searchGuarantees, s.handleSearchGuarantees)

	getBenefits := mcp.NewTool("get-benefits",
		mcp.WithDescription("Obtener beneficios y descuentos disponibles para usuarios de productos financieros."),
		mcp.WithString("category", mcp.Description("Categoría de beneficio (Alimentación, Entretenimiento, Servicios, Combustible)")),
	)
	s.mcpServer.AddTool(getBenefits, s.handleGetBenefits)
}
