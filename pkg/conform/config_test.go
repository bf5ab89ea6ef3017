package conform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart402/core/pkg/conform"
)

func validDoc() map[string]any {
	return map[string]any{
		"type":    "saas-subscription",
		"parties": []any{"vendor@example.com", "customer@example.com"},
		"payment": map[string]any{
			"amount":    float64(99),
			"token":     "USDC",
			"frequency": "monthly",
		},
	}
}

func TestValidateConfig(t *testing.T) {
	v, err := conform.New()
	require.NoError(t, err)

	assert.NoError(t, v.ValidateConfig(validDoc()))
}

func TestValidateConfig_Violations(t *testing.T) {
	v, err := conform.New()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing type", func(d map[string]any) { delete(d, "type") }},
		{"empty parties", func(d map[string]any) { d["parties"] = []any{} }},
		{"missing payment token", func(d map[string]any) {
			d["payment"] = map[string]any{"amount": float64(1), "frequency": "monthly"}
		}},
		{"wrong parties type", func(d map[string]any) { d["parties"] = "not-a-list" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDoc()
			tt.mutate(doc)
			assert.Error(t, v.ValidateConfig(doc))
		})
	}
}

func TestValidateConfig_Nil(t *testing.T) {
	v, err := conform.New()
	require.NoError(t, err)
	assert.Error(t, v.ValidateConfig(nil))
}
