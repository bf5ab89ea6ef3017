package contracts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart402/core/pkg/contracts"
)

func sampleContract(t *testing.T) contracts.UCLContract {
	t.Helper()
	cfg := baseConfig()
	cfg.Metadata = map[string]any{
		"title":       "Test Contract",
		"description": "A contract used by the codec tests",
		"category":    "testing",
	}
	cfg.Conditions = []contracts.ConditionDef{
		{ID: "uptime", Description: "Service uptime above 99%", Source: "api.uptime", Operator: ">=", Threshold: 0.99},
	}
	c, err := contracts.FromConfig(cfg)
	require.NoError(t, err)
	return c
}

func TestCodec_JSONRoundTrip(t *testing.T) {
	c := sampleContract(t)

	data, err := contracts.EncodeJSON(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"contract_id"`)
	assert.Contains(t, string(data), `"plain_english"`)

	back, err := contracts.DecodeJSON(data)
	require.NoError(t, err)
	assert.Equal(t, c.ContractID, back.ContractID)
	assert.Equal(t, c.Summary, back.Summary)
	assert.Equal(t, c.Metadata.ContractType, back.Metadata.ContractType)
	assert.True(t, c.Payment.Amount.Equal(back.Payment.Amount.Decimal))
	assert.Equal(t, c.Conditions.Required[0].ID, back.Conditions.Required[0].ID)
}

func TestCodec_YAMLRoundTrip(t *testing.T) {
	c := sampleContract(t)

	data, err := contracts.EncodeYAML(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), "contract_id:")
	assert.Contains(t, string(data), "plain_english:")

	back, err := contracts.DecodeYAML(data)
	require.NoError(t, err)
	assert.Equal(t, c.ContractID, back.ContractID)
	assert.Equal(t, c.Summary, back.Summary)
	assert.Equal(t, c.Metadata.Dates, back.Metadata.Dates)
	assert.True(t, c.Payment.Amount.Equal(back.Payment.Amount.Decimal))
}

func TestCodec_ExactDecimalAmount(t *testing.T) {
	c := sampleContract(t)
	c.Payment.Amount = contracts.MustAmount("0.10")

	data, err := contracts.EncodeYAML(c)
	require.NoError(t, err)

	back, err := contracts.DecodeYAML(data)
	require.NoError(t, err)
	assert.Equal(t, "0.10", back.Payment.Amount.String())
}

func TestCodec_DecodeJSONMalformed(t *testing.T) {
	_, err := contracts.DecodeJSON([]byte("{not json"))
	require.Error(t, err)
}
