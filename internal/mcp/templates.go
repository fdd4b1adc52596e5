package mcp

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"finashopping-mcp/internal/catalog"
	"finashopping-mcp/internal/config"
)

// Prompt templates. Each prompt exists in a Spanish-only and a bilingual
// (Spanish | English) variant; the server locale picks one. Resource names in
// the generated text use the catalog:// scheme the server actually exposes.

// formatPromptAmount renders a numeric argument with es-UY thousands
// separators, falling back to the raw string when it does not parse.
func formatPromptAmount(amount string) string {
	n, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return amount
	}
	return catalog.FormatThousands(int64(math.Round(n)))
}

func loanGuideText(locale, loanType, amount, term string) string {
	if locale == config.LocaleBilingual {
		var amountStr, termStr string
		if amount != "" {
			amountStr = fmt.Sprintf("\nMonto aproximado: $%s | Approximate amount: $%s", formatPromptAmount(amount), formatPromptAmount(amount))
		}
		if term != "" {
			termStr = fmt.Sprintf("\nPlazo deseado: %s meses | Desired term: %s months", term, term)
		}
		return fmt.Sprintf(`Ayúdame a solicitar un préstamo %[1]s en Uruguay. | Help me apply for a %[1]s loan in Uruguay.%[2]s%[3]s

Por favor | Please:
1. Usa el tool search-loans para encontrar opciones de préstamos %[1]s | Use the search-loans tool to find %[1]s loan options
2. Para cada opción, calcula la cuota con calculate-loan-payment | For each option, calculate the installment with calculate-loan-payment
3. Usa get-loan-requirements para explicar los requisitos de cada institución | Use get-loan-requirements to explain each institution's requirements
4. Recomienda la mejor opción considerando tasa, plazo y probabilidad de aprobación | Recommend the best option considering rate, term, and approval probability
5. Indica los próximos pasos para solicitar | Outline the next steps to apply

Contexto | Context: Los principales bancos en Uruguay son BROU, Santander, Itaú, Scotiabank y BBVA. Las tasas típicas van de 20%% a 40%% anual para préstamos personales. | The main banks in Uruguay are BROU, Santander, Itaú, Scotiabank, and BBVA. Typical rates range from 20%% to 40%% per year for personal loans.`,
			loanType, amountStr, termStr)
	}

	var amountStr, termStr string
	if amount != "" {
		amountStr = fmt.Sprintf("\nMonto aproximado: $%s", formatPromptAmount(amount))
	}
	if term != "" {
		termStr = fmt.Sprintf("\nPlazo deseado: %s meses", term)
	}
	return fmt.Sprintf(`Ayúdame a solicitar un préstamo %[1]s en Uruguay.%[2]s%[3]s

Por favor:
1. Usa el tool search-loans para encontrar opciones de préstamos %[1]s
2. Para cada opción, calcula la cuota con calculate-loan-payment
3. Usa get-loan-requirements para explicar los requisitos de cada institución
4. Recomienda la mejor opción considerando tasa, plazo y probabilidad de aprobación
5. Indica los próximos pasos para solicitar

Contexto: Los principales bancos en Uruguay son BROU, Santander, Itaú, Scotiabank y BBVA. Las tasas típicas van de 20%% a 40%% anual para préstamos personales.`,
		loanType, amountStr, termStr)
}

func creditTipsText(locale, currentScore, concerns string) string {
	if locale == config.LocaleBilingual {
		var scoreStr, concernsStr string
		if currentScore != "" {
			scoreStr = fmt.Sprintf("Mi score actual es aproximadamente %s. | My current score is approximately %s.", currentScore, currentScore)
		}
		if concerns != "" {
			concernsStr = fmt.Sprintf("\nMis preocupaciones específicas: %s | My specific concerns: %s", concerns, concerns)
		}
		return fmt.Sprintf(`Quiero mejorar mi score crediticio en Uruguay. | I want to improve my credit score in Uruguay. %s%s

Por favor | Please:
1. Lee el resource catalog://credit/ranges para entender los rangos | Read the catalog://credit/ranges resource to understand the ranges
2. Explica cómo funciona el score crediticio en Uruguay | Explain how the credit score works in Uruguay
3. Dame consejos específicos y accionables para mejorar mi score | Give me specific, actionable advice to improve my score
4. Menciona cuánto tiempo típicamente toma ver mejoras | Mention how long improvements typically take
5. Advierte sobre prácticas que pueden dañar el score | Warn about practices that can damage the score

Considera factores uruguayos como | Consider Uruguayan factors such as:
- Clearing bancario | Bank clearing
- Historial en BROU (banco estatal) | History with BROU (state bank)
- Comportamiento con tarjetas OCA | Behavior with OCA cards
- Pagos de servicios públicos (UTE, OSE, Antel) | Utility payments (UTE, OSE, Antel)`,
			scoreStr, concernsStr)
	}

	var scoreStr, concernsStr string
	if currentScore != "" {
		scoreStr = fmt.Sprintf("Mi score actual es aproximadamente %s.", currentScore)
	}
	if concerns != "" {
		concernsStr = fmt.Sprintf("\nMis preocupaciones específicas: %s", concerns)
	}
	return fmt.Sprintf(`Quiero mejorar mi score crediticio en Uruguay. %s%s

Por favor:
1. Lee el resource catalog://credit/ranges para entender los rangos
2. Explica cómo funciona el score crediticio en Uruguay
3. Dame consejos específicos y accionables para mejorar mi score
4. Menciona cuánto tiempo típicamente toma ver mejoras
5. Advierte sobre prácticas que pueden dañar el score

Considera factores uruguayos como:
- Clearing bancario
- Historial en BROU (banco estatal)
- Comportamiento con tarjetas OCA
- Pagos de servicios públicos (UTE, OSE, Antel)`,
		scoreStr, concernsStr)
}

// comparisonSuggestions picks which tools and resources the generated text
// recommends, keyed on a case-insensitive product keyword. Unrecognized
// keywords fall back to suggesting all three.
func comparisonSuggestions(productType string) (toolSuggestion, resourceSuggestion string) {
	switch strings.ToLower(productType) {
	case "préstamos", "prestamos", "loans":
		return "search-loans", "catalog://loans"
	case "tarjetas", "cards":
		return "search-credit-cards", "catalog://cards"
	case "seguros", "insurance":
		return "search-insurances", "catalog://insurance"
	default:
		return "search-loans, search-credit-cards, search-insurances",
			"catalog://loans, catalog://cards, catalog://insurance"
	}
}

func comparisonText(locale, productType, priorities string) string {
	toolSuggestion, resourceSuggestion := comparisonSuggestions(productType)

	if locale == config.LocaleBilingual {
		var prioritiesStr string
		if priorities != "" {
			prioritiesStr = fmt.Sprintf("\nPriorizo: %s | I prioritize: %s", priorities, priorities)
		}
		return fmt.Sprintf(`Necesito una comparación detallada de %[1]s en Uruguay. | I need a detailed comparison of %[1]s in Uruguay.%[2]s

Por favor | Please:
1. Lee el resource %[3]s para ver el catálogo completo | Read the %[3]s resource for the full catalog
2. Usa %[4]s para buscar opciones | Use %[4]s to search for options
3. Crea una tabla comparativa clara | Build a clear comparison table
4. Destaca pros y contras de cada opción | Highlight pros and cons of each option
5. Recomienda la mejor opción según mis prioridades | Recommend the best option for my priorities

Incluye información de | Include information on:
- Instituciones uruguayas (BROU, Santander, Itaú, etc.) | Uruguayan institutions (BROU, Santander, Itaú, etc.)
- Costos y tasas | Costs and rates
- Requisitos | Requirements
- Beneficios adicionales | Additional benefits`,
			productType, prioritiesStr, resourceSuggestion, toolSuggestion)
	}

	var prioritiesStr string
	if priorities != "" {
		prioritiesStr = fmt.Sprintf("\nPriorizo: %s", priorities)
	}
	return fmt.Sprintf(`Necesito una comparación detallada de %s en Uruguay.%s

Por favor:
1. Lee el resource %s para ver el catálogo completo
2. Usa %s para buscar opciones
3. Crea una tabla comparativa clara
4. Destaca pros y contras de cada opción
5. Recomienda la mejor opción según mis prioridades

Incluye información de:
- Instituciones uruguayas (BROU, Santander, Itaú, etc.)
- Costos y tasas
- Requisitos
- Beneficios adicionales`,
		productType, prioritiesStr, resourceSuggestion, toolSuggestion)
}

func faqText(locale, topic string) string {
	if locale == config.LocaleBilingual {
		var topicES, topicEN string
		if topic != "" {
			topicES = fmt.Sprintf(" sobre %s", topic)
			topicEN = fmt.Sprintf(" about %s", topic)
		}
		return fmt.Sprintf(`Tengo dudas%s sobre finanzas personales en Uruguay. | I have questions%s about personal finances in Uruguay.

Por favor | Please:
1. Lee catalog://about para conocer los servicios disponibles | Read catalog://about to learn about available services
2. Lee catalog://credit/ranges para entender el sistema de score | Read catalog://credit/ranges to understand the score system
3. Lee catalog://institutions para conocer las instituciones | Read catalog://institutions to learn about the institutions

Responde preguntas comunes como | Answer common questions such as:
- ¿Qué es el clearing bancario y cómo afecta? | What is bank clearing and how does it affect me?
- ¿Cómo funciona el score crediticio en Uruguay? | How does the credit score work in Uruguay?
- ¿Cuáles son las mejores opciones de préstamos? | What are the best loan options?
- ¿Qué tarjetas no tienen costo anual? | Which credit cards have no annual fee?
- ¿Qué alternativas de garantía de alquiler existen? | What rental guarantee alternatives exist?

Contextualiza las respuestas para Uruguay, mencionando | Contextualize responses for Uruguay, mentioning:
- BCU (Banco Central del Uruguay | Central Bank of Uruguay)
- Clearing de Informes (Credit Bureau)
- BROU como banco estatal | BROU as the state bank
- OCA como red de pagos local | OCA as the local payment network`,
			topicES, topicEN)
	}

	var topicStr string
	if topic != "" {
		topicStr = fmt.Sprintf(" sobre %s", topic)
	}
	return fmt.Sprintf(`Tengo dudas%s sobre finanzas personales en Uruguay.

Por favor:
1. Lee catalog://about para conocer los servicios disponibles
2. Lee catalog://credit/ranges para entender el sistema de score
3. Lee catalog://institutions para conocer las instituciones

Responde preguntas comunes como:
- ¿Qué es el clearing bancario y cómo afecta?
- ¿Cómo funciona el score crediticio en Uruguay?
- ¿Cuáles son las mejores opciones de préstamos?
- ¿Qué tarjetas no tienen costo anual?
- ¿Qué alternativas de garantía de alquiler existen?

Contextualiza las respuestas para Uruguay, mencionando:
- BCU (Banco Central del Uruguay)
- Clearing de Informes
- BROU como banco estatal
- OCA como red de pagos local`,
		topicStr)
}
