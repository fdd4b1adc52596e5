package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"finashopping-mcp/internal/catalog"
)

func (s *Server) handleSearchInsurances(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	insurances, err := s.backend.Insurances(ctx)
	if err != nil {
		s.logger.Error("search-insurances: fetching insurances failed", zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	filtered := insurances
	if insType := request.GetString("type", ""); insType != "" {
		filtered = catalog.FilterInsurancesByType(filtered, insType)
	}

	types := make([]string, 0, len(insurances))
	for _, ins := range insurances {
		types = append(types, ins.Type)
	}

	return jsonResult(map[string]any{
		"insurances":     filtered,
		"count":          len(filtered),
		"availableTypes": catalog.Unique(types),
	}), nil
}

func (s *Server) handleSearchGuarantees(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	guarantees, err := s.backend.Guarantees(ctx)
	if err != nil {
		s.logger.Error("search-guarantees: fetching guarantees failed", zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]any{
		"guarantees": guarantees,
		"count":      len(guarantees),
		"tip":        "Las garantías de alquiler son alternativas al depósito tradicional para arrendar viviendas en Uruguay.",
	}), nil
}

func (s *Server) handleGetBenefits(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	benefits, err := s.backend.Benefits(ctx)
	if err != nil {
		s.logger.Error("get-benefits: fetching benefits failed", zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	filtered := benefits
	if category := request.GetString("category", ""); category != "" {
		filtered = catalog.FilterBenefitsByCategory(filtered, category)
	}

	categories := make([]string, 0, len(benefits))
	for _, b := range benefits {
		categories = append(categories, b.Category)
	}

	return jsonResult(map[string]any{
		"benefits":   filtered,
		"count":      len(filtered),
		"categories": catalog.Unique(categories),
	}), nil
}
