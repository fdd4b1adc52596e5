package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"finashopping-mcp/internal/catalog"
)

// setupResources registers the read-only catalog:// resources. Catalog
// resources return the full unfiltered collection; institutions, credit
// ranges, and about serve static reference data.
func (s *Server) setupResources() {
	loans := mcp.NewResource(
		"catalog://loans",
		"loans",
		mcp.WithResourceDescription("Complete list of loans available from Uruguayan financial institutions | Lista completa de préstamos disponibles en instituciones financieras uruguayas"),
		mcp.WithMIMEType("application/json"),
	)
	s.mcpServer.AddResource(loans, s.handleLoansResource)

	cards := mcp.NewResource(
		"catalog://cards",
		"cards",
		mcp.WithResourceDescription("Credit cards available in Uruguay | Tarjetas de crédito disponibles en Uruguay"),
		mcp.WithMIMEType("application/json"),
	)
	s.mcpServer.AddResource(cards, s.handleCardsResource)

	insurance := mcp.NewResource(
		"catalog://insurance",
		"insurance",
		mcp.WithResourceDescription("Insurance products available in Uruguay | Productos de seguros disponibles en Uruguay"),
		mcp.WithMIMEType("application/json"),
	)
	s.mcpServer.AddResource(insurance, s.handleInsuranceResource)

	guarantees := mcp.NewResource(
		"catalog://guarantees",
		"guarantees",
		mcp.WithResourceDescription("Rental guarantee options in Uruguay | Opciones de garantía de alquiler en Uruguay"),
		mcp.WithMIMEType("application/json"),
	)
	s.mcpServer.AddResource(guarantees, s.handleGuaranteesResource)

	benefits := mcp.NewResource(
		"catalog://benefits",
		"benefits",
		mcp.WithResourceDescription("Available benefits program | Programa de beneficios disponibles"),
		mcp.WithMIMEType("application/json"),
	)
	s.mcpServer.AddResource(benefits, s.handleBenefitsResource)

	institutions := mcp.NewResource(
		"catalog://institutions",
		"institutions",
		mcp.WithResourceDescription("List of banks, insurance companies, and payment networks in Uruguay | Lista de bancos, aseguradoras y redes de pago en Uruguay"),
		mcp.WithMIMEType("application/json"),
	)
	s.mcpServer.AddResource(institutions, s.handleInstitutionsResource)

	creditRanges := mcp.NewResource(
		"catalog://credit/ranges",
		"credit-ranges",
		mcp.WithResourceDescription("Credit score ranges and classifications in Uruguay | Rangos y clasificaciones del score crediticio en Uruguay"),
		mcp.WithMIMEType("application/json"),
	)
	s.mcpServer.AddResource(creditRanges, s.handleCreditRangesResource)

	about := mcp.NewResource(
		"catalog://about",
		"about",
		mcp.WithResourceDescription("Information about the FinaShopping platform | Información sobre la plataforma FinaShopping"),
		mcp.WithMIMEType("application/json"),
	)
	s.mcpServer.AddResource(about, s.handleAboutResource)
}

// resourceJSON wraps a payload as a single JSON resource content.
func resourceJSON(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) handleLoansResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	loans, err := s.backend.Loans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch loans: %w", err)
	}
	return resourceJSON(request.Params.URI, map[string]any{"loans": loans, "count": len(loans)})
}

func (s *Server) handleCardsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	cards, err := s.backend.CreditCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch credit cards: %w", err)
	}
	return resourceJSON(request.Params.URI, map[string]any{"creditCards": cards, "count": len(cards)})
}

func (s *Server) handleInsuranceResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	insurances, err := s.backend.Insurances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch insurances: %w", err)
	}
	return resourceJSON(request.Params.URI, map[string]any{"insurances": insurances, "count": len(insurances)})
}

func (s *Server) handleGuaranteesResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	guarantees, err := s.backend.Guarantees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guarantees: %w", err)
	}
	return resourceJSON(request.Params.URI, map[string]any{"guarantees": guarantees, "count": len(guarantees)})
}

func (s *Server) handleBenefitsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	benefits, err := s.backend.Benefits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch benefits: %w", err)
	}
	return resourceJSON(request.Params.URI, map[string]any{"benefits": benefits, "count": len(benefits)})
}

func (s *Server) handleInstitutionsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return resourceJSON(request.Params.URI, catalog.UruguayanInstitutions)
}

func (s *Server) handleCreditRangesResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return resourceJSON(request.Params.URI, map[string]any{
		"ranges":      catalog.CreditScoreRanges,
		"description": "Credit scores in Uruguay range from 300 to 850 points. A higher score indicates better credit history and higher probability of credit approval. | El score crediticio en Uruguay va de 300 a 850 puntos. Un score más alto indica mejor historial crediticio y mayor probabilidad de aprobación de créditos.",
	})
}

func (s *Server) handleAboutResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	inst := catalog.UruguayanInstitutions
	return resourceJSON(request.Params.URI, map[string]any{
		"name":        "FinaShopping",
		"description": "Uruguayan financial products comparison platform | Plataforma de comparación de productos financieros uruguayos",
		"features": []string{
			"Loan comparison from multiple institutions | Comparación de préstamos de múltiples instituciones",
			"Credit card catalog | Catálogo de tarjetas de crédito",
			"Insurance and rental guarantees | Seguros y garantías de alquiler",
			"Financial calculator | Calculadora financiera",
			"Credit score information | Información de score crediticio",
		},
		"coverage": "Uruguay",
		"institutions": map[string]int{
			"banks":           len(inst.Banks),
			"insurers":        len(inst.Insurers),
			"paymentNetworks": len(inst.Networks),
		},
		"website": "https://finashopping-frontend.vercel.app",
		"apiDocs": s.backend.BaseURL() + "/api-docs",
	})
}
