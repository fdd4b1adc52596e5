package catalog

import (
	"sort"
	"strings"

	"finashopping-mcp/internal/backend"
)

// Loan type buckets. Matching is by case-insensitive substring on the display
// name; this mirrors the backend's naming convention and is a deliberate
// behavior contract, not a placeholder for a real category field.
const (
	LoanTypePersonal = "personal"
	LoanTypeAuto     = "auto"
	LoanTypeMortgage = "hipotecario"
)

// FilterLoansByAmount keeps loans with amount within [0.5*target, 2*target].
func FilterLoansByAmount(loans []backend.Loan, target float64) []backend.Loan {
	minAmount := target * 0.5
	maxAmount := target * 2
	out := make([]backend.Loan, 0, len(loans))
	for _, loan := range loans {
		if loan.Amount >= minAmount && loan.Amount <= maxAmount {
			out = append(out, loan)
		}
	}
	return out
}

// FilterLoansByTerm keeps loans with term within [0.5*target, 2*target].
func FilterLoansByTerm(loans []backend.Loan, target int) []backend.Loan {
	minTerm := float64(target) * 0.5
	maxTerm := float64(target) * 2
	out := make([]backend.Loan, 0, len(loans))
	for _, loan := range loans {
		if float64(loan.Term) >= minTerm && float64(loan.Term) <= maxTerm {
			out = append(out, loan)
		}
	}
	return out
}

// MatchesLoanType reports whether a loan name belongs to the given bucket.
// Unknown bucket values match everything.
func MatchesLoanType(name, loanType string) bool {
	lower := strings.ToLower(name)
	switch loanType {
	case LoanTypePersonal:
		return strings.Contains(lower, "personal")
	case LoanTypeAuto:
		return strings.Contains(lower, "auto")
	case LoanTypeMortgage:
		return strings.Contains(lower, "hipotec")
	}
	return true
}

// FilterLoansByType keeps loans whose name matches the given type bucket.
func FilterLoansByType(loans []backend.Loan, loanType string) []backend.Loan {
	out := make([]backend.Loan, 0, len(loans))
	for _, loan := range loans {
		if MatchesLoanType(loan.Name, loanType) {
			out = append(out, loan)
		}
	}
	return out
}

// ClassifyLoan derives the loan type bucket from its display name. Names that
// match neither mortgage nor auto fall into the personal bucket.
func ClassifyLoan(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "hipotec"):
		return LoanTypeMortgage
	case strings.Contains(lower, "auto"):
		return LoanTypeAuto
	default:
		return LoanTypePersonal
	}
}

// FilterCardsByNetwork keeps cards on the given payment network (exact match).
func FilterCardsByNetwork(cards []backend.CreditCard, network string) []backend.CreditCard {
	out := make([]backend.CreditCard, 0, len(cards))
	for _, card := range cards {
		if card.Network == network {
			out = append(out, card)
		}
	}
	return out
}

// FilterCardsByMaxFee keeps cards with annualFee <= maxFee. The bound is
// inclusive, so maxFee 0 selects zero-fee cards only.
func FilterCardsByMaxFee(cards []backend.CreditCard, maxFee float64) []backend.CreditCard {
	out := make([]backend.CreditCard, 0, len(cards))
	for _, card := range cards {
		if card.AnnualFee <= maxFee {
			out = append(out, card)
		}
	}
	return out
}

// SortCardsByFee returns a new slice ordered by ascending annual fee. The
// input slice is not mutated and the sort is stable.
func SortCardsByFee(cards []backend.CreditCard) []backend.CreditCard {
	out := make([]backend.CreditCard, len(cards))
	copy(out, cards)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AnnualFee < out[j].AnnualFee
	})
	return out
}

// FilterInsurancesByType keeps insurances whose type contains the search text
// (case-insensitive).
func FilterInsurancesByType(insurances []backend.Insurance, insuranceType string) []backend.Insurance {
	search := strings.ToLower(insuranceType)
	out := make([]backend.Insurance, 0, len(insurances))
	for _, ins := range insurances {
		if strings.Contains(strings.ToLower(ins.Type), search) {
			out = append(out, ins)
		}
	}
	return out
}

// FilterBenefitsByCategory keeps benefits whose category contains the search
// text (case-insensitive).
func FilterBenefitsByCategory(benefits []backend.Benefit, category string) []backend.Benefit {
	search := strings.ToLower(category)
	out := make([]backend.Benefit, 0, len(benefits))
	for _, b := range benefits {
		if strings.Contains(strings.ToLower(b.Category), search) {
			out = append(out, b)
		}
	}
	return out
}

// Unique returns the distinct values of the input. Only set semantics are
// guaranteed, not ordering.
func Unique[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	out := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
