package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"finashopping-mcp/internal/backend"
)

// Base documentation required for any loan application.
var BaseLoanRequirements = []string{
	"Cédula de identidad uruguaya vigente",
	"Comprobante de domicilio",
	"Último recibo de sueldo",
}

// Additional documentation per loan type.
var (
	MortgageRequirements = []string{
		"Tasación del inmueble",
		"Certificado notarial de la propiedad",
		"3 últimos estados de cuenta bancarios",
		"Antigüedad laboral mínima: 2 años",
	}
	AutoRequirements = []string{
		"Factura o cotización del vehículo",
		"Seguro obligatorio",
		"Antigüedad laboral mínima: 1 año",
	}
	PersonalRequirements = []string{
		"Clearing bancario limpio",
		"Antigüedad laboral mínima: 6 meses",
	}
)

// Base documentation required for any credit card application.
var BaseCardRequirements = []string{
	"Cédula de identidad uruguaya",
	"Comprobante de ingresos",
	"Comprobante de domicilio",
}

// AdditionalLoanRequirements returns the type-specific document addendum.
func AdditionalLoanRequirements(loanType string) []string {
	switch loanType {
	case LoanTypeMortgage:
		return MortgageRequirements
	case LoanTypeAuto:
		return AutoRequirements
	default:
		return PersonalRequirements
	}
}

// ApprovalEstimate is the coarse approval outlook for a loan.
type ApprovalEstimate struct {
	Probability   string `json:"probability"`
	EstimatedTime string `json:"estimatedTime"`
}

// LoanRequirements is the synthesized application checklist for one loan.
type LoanRequirements struct {
	Documentation []string         `json:"documentation"`
	Income        string           `json:"income"`
	Approval      ApprovalEstimate `json:"approval"`
}

// RequirementsForLoan builds the complete checklist for a loan: base plus
// type-specific documents, a recommended minimum income of three monthly
// payments, and an approval window keyed on the probability tier.
func RequirementsForLoan(loan backend.Loan) LoanRequirements {
	docs := make([]string, 0, len(BaseLoanRequirements)+4)
	docs = append(docs, BaseLoanRequirements...)
	docs = append(docs, AdditionalLoanRequirements(ClassifyLoan(loan.Name))...)

	estimatedTime := "3-5 días hábiles"
	if loan.Probability == backend.ProbabilityHigh {
		estimatedTime = "24-48 horas"
	}

	income := int64(math.Round(loan.MonthlyPayment * 3))
	return LoanRequirements{
		Documentation: docs,
		Income:        fmt.Sprintf("Ingreso mínimo recomendado: %s $U mensuales", FormatThousands(income)),
		Approval: ApprovalEstimate{
			Probability:   loan.Probability,
			EstimatedTime: estimatedTime,
		},
	}
}

// RequirementsForCard builds the checklist for a credit card. USD cards and
// limits above 300000 carry the higher income and tenure bar.
func RequirementsForCard(card backend.CreditCard) []string {
	reqs := make([]string, 0, len(BaseCardRequirements)+2)
	reqs = append(reqs, BaseCardRequirements...)
	if card.Currency == backend.CurrencyUSD || card.Limit > 300000 {
		reqs = append(reqs,
			"Ingresos mínimos: $U 60.000 mensuales",
			"Antigüedad laboral: 1 año",
		)
	} else {
		reqs = append(reqs,
			"Ingresos mínimos: $U 25.000 mensuales",
			"Antigüedad laboral: 6 meses",
		)
	}
	return reqs
}

// FormatThousands renders an integer with es-UY dot thousands separators,
// e.g. 17550 -> "17.550".
func FormatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
