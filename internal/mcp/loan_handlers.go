package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"finashopping-mcp/internal/backend"
	"finashopping-mcp/internal/catalog"
)

// comparisonRow is one loan in a side-by-side comparison.
type comparisonRow struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Institution    string  `json:"institution"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	Rate           float64 `json:"rate"`
	Term           int     `json:"term"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalCost      float64 `json:"totalCost"`
	Probability    string  `json:"probability"`
}

func (s *Server) handleSearchLoans(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	loans, err := s.backend.Loans(ctx)
	if err != nil {
		s.logger.Error("search-loans: fetching loans failed", zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	filtered := loans
	filters := map[string]any{}

	if amount := request.GetFloat("amount", 0); amount > 0 {
		filtered = catalog.FilterLoansByAmount(filtered, amount)
		filters["amount"] = amount
	}
	if loanType := request.GetString("type", ""); loanType != "" {
		filtered = catalog.FilterLoansByType(filtered, loanType)
		filters["type"] = loanType
	}
	if term := request.GetInt("term", 0); term > 0 {
		filtered = catalog.FilterLoansByTerm(filtered, term)
		filters["term"] = term
	}

	return jsonResult(map[string]any{
		"loans":   filtered,
		"count":   len(filtered),
		"filters": filters,
	}), nil
}

func (s *Server) handleCalculatePayment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	amount, err := request.RequireFloat("amount")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rate, err := request.RequireFloat("rate")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	term, err := request.RequireInt("term")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if amount <= 0 {
		return mcp.NewToolResultError("amount must be positive"), nil
	}
	if rate < 0 || rate > 100 {
		return mcp.NewToolResultError("rate must be between 0 and 100"), nil
	}
	if term < 1 || term > 360 {
		return mcp.NewToolResultError("term must be between 1 and 360 months"), nil
	}

	return jsonResult(catalog.Summarize(amount, rate, term)), nil
}

func (s *Server) handleCompareLoans(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		LoanIDs []int `json:"loanIds"`
	}
	if err := request.BindArguments(&args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid loanIds parameter: %v", err)), nil
	}
	if len(args.LoanIDs) < 2 || len(args.LoanIDs) > 5 {
		return mcp.NewToolResultError("loanIds must contain between 2 and 5 ids"), nil
	}

	loans, err := s.backend.Loans(ctx)
	if err != nil {
		s.logger.Error("compare-loans: fetching loans failed", zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	wanted := make(map[int]struct{}, len(args.LoanIDs))
	for _, id := range args.LoanIDs {
		wanted[id] = struct{}{}
	}

	// Selection preserves catalog order, which also fixes the tie-break
	// behavior of the recommendations below.
	var selected []backend.Loan
	for _, loan := range loans {
		if _, ok := wanted[loan.ID]; ok {
			selected = append(selected, loan)
		}
	}

	if len(selected) < 2 {
		validIDs := make([]int, 0, len(loans))
		for _, loan := range loans {
			validIDs = append(validIDs, loan.ID)
		}
		return jsonErrorResult(map[string]any{
			"error":    "Se necesitan al menos 2 préstamos válidos para comparar",
			"validIds": validIDs,
		}), nil
	}

	comparison := make([]comparisonRow, 0, len(selected))
	for _, loan := range selected {
		comparison = append(comparison, comparisonRow{
			ID:             loan.ID,
			Name:           loan.Name,
			Institution:    loan.Institution,
			Amount:         loan.Amount,
			Currency:       loan.Currency,
			Rate:           loan.Rate,
			Term:           loan.Term,
			MonthlyPayment: loan.MonthlyPayment,
			TotalCost:      catalog.TotalCost(loan.MonthlyPayment, loan.Term),
			Probability:    loan.Probability,
		})
	}

	// First encountered wins on ties: strict comparisons only.
	lowestRate := comparison[0]
	lowestPayment := comparison[0]
	for _, row := range comparison[1:] {
		if row.Rate < lowestRate.Rate {
			lowestRate = row
		}
		if row.MonthlyPayment < lowestPayment.MonthlyPayment {
			lowestPayment = row
		}
	}
	highestApproval := comparison[0]
	for _, row := range comparison {
		if row.Probability == backend.ProbabilityHigh {
			highestApproval = row
			break
		}
	}

	return jsonResult(map[string]any{
		"comparison": comparison,
		"recommendations": map[string]any{
			"lowestRate": map[string]any{
				"id": lowestRate.ID, "name": lowestRate.Name, "rate": lowestRate.Rate,
			},
			"lowestPayment": map[string]any{
				"id": lowestPayment.ID, "name": lowestPayment.Name, "payment": lowestPayment.MonthlyPayment,
			},
			"highestApproval": map[string]any{
				"id": highestApproval.ID, "name": highestApproval.Name, "probability": highestApproval.Probability,
			},
		},
	}), nil
}

func (s *Server) handleLoanRequirements(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	loanID, err := request.RequireInt("loanId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	loans, err := s.backend.Loans(ctx)
	if err != nil {
		s.logger.Error("get-loan-requirements: fetching loans failed", zap.Error(err))
		return mcp.NewToolResultError(err.Error()), nil
	}

	var loan *backend.Loan
	for i := range loans {
		if loans[i].ID == loanID {
			loan = &loans[i]
			break
		}
	}
	if loan == nil {
		validIDs := make([]map[string]any, 0, len(loans))
		for _, l := range loans {
			validIDs = append(validIDs, map[string]any{"id": l.ID, "name": l.Name})
		}
		return jsonErrorResult(map[string]any{
			"error":    "Préstamo no encontrado",
			"validIds": validIDs,
		}), nil
	}

	return jsonResult(map[string]any{
		"loan": map[string]any{
			"id":          loan.ID,
			"name":        loan.Name,
			"institution": loan.Institution,
		},
		"requirements": catalog.RequirementsForLoan(*loan),
		"features":     loan.Features,
	}), nil
}
