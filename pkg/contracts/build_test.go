package contracts_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart402/core/pkg/contracts"
)

func baseConfig() contracts.ContractConfig {
	return contracts.ContractConfig{
		Type:    "saas-subscription",
		Parties: []string{"vendor@example.com", "customer@example.com"},
		Payment: contracts.PaymentConfig{
			Amount:     contracts.MustAmount("99"),
			Token:      "USDC",
			Frequency:  "monthly",
			Blockchain: "polygon",
		},
	}
}

func TestFromConfig_Basic(t *testing.T) {
	c, err := contracts.FromConfig(baseConfig())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(c.ContractID, "smart402:saas-subscription:"))
	assert.Equal(t, "1.0", c.Version)
	assert.Equal(t, contracts.Standard, c.Standard)
	assert.Equal(t, "99", c.Payment.Amount.String())
	assert.Equal(t, "USDC", c.Payment.Token)
	assert.Equal(t, "polygon", c.Payment.Blockchain)
	assert.Equal(t, "recurring", c.Payment.Structure)
	assert.Len(t, c.Metadata.Parties, 2)
	assert.Equal(t, "vendor@example.com", c.Metadata.Parties[0].Identifier)
}

func TestFromConfig_OneTimeStructure(t *testing.T) {
	cfg := baseConfig()
	cfg.Payment.Frequency = "one-time"

	c, err := contracts.FromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "one-time", c.Payment.Structure)
}

func TestFromConfig_DefaultBlockchain(t *testing.T) {
	cfg := baseConfig()
	cfg.Payment.Blockchain = ""

	c, err := contracts.FromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, contracts.DefaultBlockchain, c.Payment.Blockchain)
}

func TestFromConfig_MetadataMapping(t *testing.T) {
	cfg := baseConfig()
	cfg.Metadata = map[string]any{
		"title":       "Monthly SaaS Subscription",
		"description": "Automated monthly payment for software service",
		"category":    "saas",
		"tags":        []any{"test", "example"},
	}

	c, err := contracts.FromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Monthly SaaS Subscription", c.Summary.Title)
	assert.Equal(t, "Automated monthly payment for software service", c.Summary.PlainEnglish)
	assert.Equal(t, "saas", c.Metadata.Category)
	// Unrecognized keys survive in the pass-through bag.
	assert.Contains(t, c.Metadata.Extra, "tags")
}

func TestFromConfig_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*contracts.ContractConfig)
		field  string
	}{
		{"empty parties", func(c *contracts.ContractConfig) { c.Parties = nil }, "parties"},
		{"empty token", func(c *contracts.ContractConfig) { c.Payment.Token = "" }, "payment.token"},
		{"empty type", func(c *contracts.ContractConfig) { c.Type = "" }, "type"},
		{"negative amount", func(c *contracts.ContractConfig) { c.Payment.Amount = contracts.MustAmount("-10") }, "payment.amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(&cfg)

			_, err := contracts.FromConfig(cfg)
			require.Error(t, err)
			var cfgErr *contracts.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestNewContractID_UniqueUnderRapidCalls(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := contracts.NewContractID("test")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestCanTransition(t *testing.T) {
	assert.True(t, contracts.CanTransition(contracts.StatusDraft, contracts.StatusDeploying))
	assert.True(t, contracts.CanTransition(contracts.StatusDeploying, contracts.StatusFailed))
	assert.True(t, contracts.CanTransition(contracts.StatusDeployed, contracts.StatusActive))
	assert.False(t, contracts.CanTransition(contracts.StatusDraft, contracts.StatusDeployed))
	assert.False(t, contracts.CanTransition(contracts.StatusCompleted, contracts.StatusActive))
	assert.False(t, contracts.CanTransition(contracts.StatusFailed, contracts.StatusDraft))
	assert.True(t, contracts.StatusCompleted.Terminal())
	assert.True(t, contracts.StatusFailed.Terminal())
	assert.False(t, contracts.StatusActive.Terminal())
}
