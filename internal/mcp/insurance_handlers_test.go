package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchInsurances(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleSearchInsurances(context.Background(), callRequest("search-insurances", nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	payload := resultJSON(t, result)
	assert.Equal(t, float64(3), payload["count"])
	assert.ElementsMatch(t, []any{"Seguro de Vida", "Seguro de Auto", "Seguro de Hogar"},
		payload["availableTypes"].([]any))
}

func TestSearchInsurancesByType(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleSearchInsurances(context.Background(), callRequest("search-insurances", map[string]any{
		"type": "auto",
	}))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.Equal(t, float64(1), payload["count"])
	ins := payload["insurances"].([]any)[0].(map[string]any)
	assert.Equal(t, "Sura Uruguay", ins["provider"])

	// Types list stays unfiltered so clients can discover other options.
	assert.Len(t, payload["availableTypes"].([]any), 3)
}

func TestSearchGuarantees(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleSearchGuarantees(context.Background(), callRequest("search-guarantees", nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	payload := resultJSON(t, result)
	assert.Equal(t, float64(2), payload["count"])
	assert.Equal(t, "Las garantías de alquiler son alternativas al depósito tradicional para arrendar viviendas en Uruguay.", payload["tip"])

	second := payload["guarantees"].([]any)[1].(map[string]any)
	assert.Equal(t, "Seguro de Caución", second["type"])
	assert.Equal(t, float64(8500), second["annualFee"])
}

func TestGetBenefits(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleGetBenefits(context.Background(), callRequest("get-benefits", nil))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.Equal(t, float64(4), payload["count"])
	assert.ElementsMatch(t, []any{"Alimentación", "Entretenimiento", "Servicios", "Combustible"},
		payload["categories"].([]any))
}

func TestGetBenefitsByCategory(t *testing.T) {
	s := newTestServer(t)

	result, err := s.handleGetBenefits(context.Background(), callRequest("get-benefits", map[string]any{
		"category": "entretenimiento",
	}))
	require.NoError(t, err)

	payload := resultJSON(t, result)
	assert.Equal(t, float64(1), payload["count"])
	benefit := payload["benefits"].([]any)[0].(map[string]any)
	assert.Equal(t, "Cine con descuento", benefit["title"])

	// Categories list stays unfiltered.
	assert.Len(t, payload["categories"].([]any), 4)
}
