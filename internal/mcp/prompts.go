package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// setupPrompts registers the four instruction prompts. Each one renders a
// single user-role message from a locale-selected template; no control logic
// lives here beyond the product-comparison keyword branch in templates.go.
func (s *Server) setupPrompts() {
	loanGuide := mcp.NewPrompt("loan-application-guide",
		mcp.WithPromptDescription("Guía paso a paso para solicitar un préstamo en Uruguay"),
		mcp.WithArgument("loanType", mcp.RequiredArgument(),
			mcp.ArgumentDescription("Tipo de préstamo: personal, auto o hipotecario")),
		mcp.WithArgument("amount",
			mcp.ArgumentDescription("Monto aproximado en pesos uruguayos")),
		mcp.WithArgument("term",
			mcp.ArgumentDescription("Plazo deseado en meses")),
	)
	s.mcpServer.AddPrompt(loanGuide, s.handleLoanGuidePrompt)

	creditTips := mcp.NewPrompt("improve-credit-score",
		mcp.WithPromptDescription("Consejos para mejorar tu score crediticio en Uruguay"),
		mcp.WithArgument("currentScore",
			mcp.ArgumentDescription("Tu score actual (300-850)")),
		mcp.WithArgument("concerns",
			mcp.ArgumentDescription("Preocupaciones específicas (deudas, clearing, etc.)")),
	)
	s.mcpServer.AddPrompt(creditTips, s.handleCreditTipsPrompt)

	comparison := mcp.NewPrompt("product-comparison",
		mcp.WithPromptDescription("Comparación detallada de productos financieros uruguayos"),
		mcp.WithArgument("productType", mcp.RequiredArgument(),
			mcp.ArgumentDescription("Tipo de producto: préstamos, tarjetas, seguros")),
		mcp.WithArgument("priorities",
			mcp.ArgumentDescription("Qué priorizas: menor tasa, menor cuota, más beneficios")),
	)
	s.mcpServer.AddPrompt(comparison, s.handleComparisonPrompt)

	faq := mcp.NewPrompt("financial-faq",
		mcp.WithPromptDescription("Preguntas frecuentes sobre finanzas en Uruguay | Frequently asked questions about finances in Uruguay"),
		mcp.WithArgument("topic",
			mcp.ArgumentDescription("Tema específico: clearing, score, préstamos, tarjetas | Specific topic: clearing, score, loans, cards")),
	)
	s.mcpServer.AddPrompt(faq, s.handleFaqPrompt)
}

// userMessage wraps prompt text as the single user-role result message.
func userMessage(description, text string) *mcp.GetPromptResult {
	return mcp.NewGetPromptResult(description, []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
	})
}

func (s *Server) handleLoanGuidePrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := request.Params.Arguments
	loanType := args["loanType"]
	if loanType == "" {
		return nil, fmt.Errorf("missing required argument: loanType")
	}
	text := loanGuideText(s.locale, loanType, args["amount"], args["term"])
	return userMessage("Guía para solicitar un préstamo", text), nil
}

func (s *Server) handleCreditTipsPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := request.Params.Arguments
	text := creditTipsText(s.locale, args["currentScore"], args["concerns"])
	return userMessage("Consejos para mejorar el score crediticio", text), nil
}

func (s *Server) handleComparisonPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := request.Params.Arguments
	productType := args["productType"]
	if productType == "" {
		return nil, fmt.Errorf("missing required argument: productType")
	}
	text := comparisonText(s.locale, productType, args["priorities"])
	return userMessage("Comparación de productos financieros", text), nil
}

func (s *Server) handleFaqPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := request.Params.Arguments
	text := faqText(s.locale, args["topic"])
	return userMessage("Preguntas frecuentes sobre finanzas", text), nil
}
