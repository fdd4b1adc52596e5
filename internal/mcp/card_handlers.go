package mcp

import (
	"context"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"finashopping-mcp/internal/backend"
	"finashopping-mcp/internal/catalog"
)

// cardDetails carries display-only synthesized fields for one card. The
// interest band is indicative, keyed by network; grace period and cash
// advance fee are market-standard fixed values.
type cardDetails struct {
	MonthlyFee     int64  `json:"monthlyFee"`
	InterestRate   string `json:"interestRate"`
	GracePeriod    string `json:"gracePeriod"`
	CashAdvanceFee string `json:"cashAdvanceFee"`
}

type cardWithDetails struct {
	backend.CreditCard
	Details cardDetails `json:"details"`
}

func (s *Server) handleSearchCards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cards, err := s.backend.CreditCards(ctx)
	if err != nil {
		s.logger.Error("search-credit-cards: fetching cards failed", zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	filtered := cards
	filters := map[string]any{}

	if network := request.GetString("network", ""); network != "" {
		filtered = catalog.FilterCardsByNetwork(filtered, network)
		filters["network"] = network
	}

	_, hasMaxFee := request.GetArguments()["maxAnnualFee"]
	maxFee := request.GetFloat("maxAnnualFee", 0)
	if hasMaxFee {
		filtered = catalog.FilterCardsByMaxFee(filtered, maxFee)
		filters["maxAnnualFee"] = maxFee
	}

	filtered = catalog.SortCardsByFee(filtered)

	tip := "Tip: Usa maxAnnualFee: 0 para ver solo tarjetas gratis"
	if hasMaxFee && maxFee == 0 {
		tip = "Encontraste tarjetas sin costo anual!"
	}

	return jsonResult(map[string]any{
		"creditCards": filtered,
		"count":       len(filtered),
		"filters":     filters,
		"tip":         tip,
	}), nil
}

func (s *Server) handleCardDetails(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cardID, err := request.RequireInt("cardId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cards, err := s.backend.CreditCards(ctx)
	if err != nil {
		s.logger.Error("get-card-details: fetching cards failed", zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	var card *backend.CreditCard
	for i := range cards {
		if cards[i].ID == cardID {
			card = &cards[i]
			break
		}
	}
	if card == nil {
		available := make([]map[string]any, 0, len(cards))
		for _, c := range cards {
			available = append(available, map[string]any{"id": c.ID, "name": c.Name})
		}
		return jsonErrorResult(map[string]any{
			"error":          "Tarjeta no encontrada",
			"availableCards": available,
		}), nil
	}

	interestRate := "25-45%"
	if card.Network == "OCA" {
		interestRate = "28-35%"
	}

	return jsonResult(map[string]any{
		"card": cardWithDetails{
			CreditCard: *card,
			Details: cardDetails{
				MonthlyFee:     int64(math.Round(card.AnnualFee / 12)),
				InterestRate:   interestRate,
				GracePeriod:    "30 días",
				CashAdvanceFee: "4%",
			},
		},
		"requirements":   catalog.RequirementsForCard(*card),
		"recommendation": card.Recommendation,
	}), nil
}
