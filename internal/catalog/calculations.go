// Package catalog holds the pure helpers applied to the financial product
// catalog: amortization math, list filters, and requirement synthesis.
package catalog

import (
	"math"

	"finashopping-mcp/internal/backend"
)

// MonthlyPayment computes the fixed installment of a loan under the French
// amortization system: P * r(1+r)^n / ((1+r)^n - 1) with monthly rate
// r = annualRate/100/12. A zero rate degenerates to principal/months.
// The result is exact; rounding happens at the presentation boundary.
func MonthlyPayment(principal, annualRate float64, months int) float64 {
	monthlyRate := annualRate / 100 / 12
	if monthlyRate == 0 {
		return principal / float64(months)
	}
	factor := math.Pow(1+monthlyRate, float64(months))
	return principal * (monthlyRate * factor) / (factor - 1)
}

// TotalCost is the sum of all installments.
func TotalCost(payment float64, months int) float64 {
	return payment * float64(months)
}

// TotalInterest is the total paid above the principal.
func TotalInterest(principal, payment float64, months int) float64 {
	return payment*float64(months) - principal
}

// LoanSummary is a user-facing payment breakdown with amounts rounded to the
// nearest peso.
type LoanSummary struct {
	Principal      float64 `json:"principal"`
	AnnualRate     float64 `json:"annualRate"`
	TermMonths     int     `json:"termMonths"`
	MonthlyPayment int64   `json:"monthlyPayment"`
	TotalAmount    int64   `json:"totalAmount"`
	TotalInterest  int64   `json:"totalInterest"`
	Currency       string  `json:"currency"`
}

// Summarize builds the rounded payment summary for a prospective loan.
// Domain constraints (principal > 0, 0 <= rate <= 100, 1 <= months <= 360)
// are the caller's responsibility.
func Summarize(principal, annualRate float64, months int) LoanSummary {
	payment := MonthlyPayment(principal, annualRate, months)
	return LoanSummary{
		Principal:      principal,
		AnnualRate:     annualRate,
		TermMonths:     months,
		MonthlyPayment: int64(math.Round(payment)),
		TotalAmount:    int64(math.Round(TotalCost(payment, months))),
		TotalInterest:  int64(math.Round(TotalInterest(principal, payment, months))),
		Currency:       backend.CurrencyLocal,
	}
}
