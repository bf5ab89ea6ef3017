package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart402/core/pkg/contracts"
)

func TestNamesStableAndComplete(t *testing.T) {
	assert.Equal(t, []string{
		"affiliate-commission",
		"freelancer-milestone",
		"saas-subscription",
		"supply-chain",
		"vendor-sla",
	}, Names())
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("rental-agreement")
	require.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestInstantiateProducesBuildableConfig(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			cfg, err := Instantiate(name, Params{
				Parties: []string{"a@example.com", "b@example.com"},
				Amount:  contracts.MustAmount("49.99"),
			})
			require.NoError(t, err)

			c, err := contracts.FromConfig(cfg)
			require.NoError(t, err)
			assert.Equal(t, name, c.Metadata.ContractType)
			assert.NotEmpty(t, c.Summary.Title)
			assert.NotEmpty(t, c.Metadata.Category)
			assert.Equal(t, "49.99", c.Payment.Amount.String())
			assert.Equal(t, "USDC", c.Payment.Token)
		})
	}
}

func TestInstantiateOverrides(t *testing.T) {
	cfg, err := Instantiate("saas-subscription", Params{
		Parties:    []string{"a@example.com"},
		Amount:     contracts.MustAmount("10"),
		Token:      "DAI",
		Blockchain: "base",
	})
	require.NoError(t, err)
	assert.Equal(t, "DAI", cfg.Payment.Token)
	assert.Equal(t, "base", cfg.Payment.Blockchain)
}

func TestInstantiateFrequencyShapesStructure(t *testing.T) {
	oneTime, err := Instantiate("freelancer-milestone", Params{
		Parties: []string{"a@example.com"},
		Amount:  contracts.MustAmount("500"),
	})
	require.NoError(t, err)
	c, err := contracts.FromConfig(oneTime)
	require.NoError(t, err)
	assert.Equal(t, "one-time", c.Payment.Structure)

	recurring, err := Instantiate("vendor-sla", Params{
		Parties: []string{"a@example.com"},
		Amount:  contracts.MustAmount("500"),
	})
	require.NoError(t, err)
	c, err = contracts.FromConfig(recurring)
	require.NoError(t, err)
	assert.Equal(t, "recurring", c.Payment.Structure)
}

func TestInstantiateCopiesAreIndependent(t *testing.T) {
	first, err := Instantiate("supply-chain", Params{
		Parties: []string{"a@example.com"},
		Amount:  contracts.MustAmount("1000"),
	})
	require.NoError(t, err)
	first.Metadata["title"] = "mutated"
	first.Conditions[0].Threshold = -1.0

	second, err := Instantiate("supply-chain", Params{
		Parties: []string{"a@example.com"},
		Amount:  contracts.MustAmount("1000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Supply Chain Delivery Payment", second.Metadata["title"])
	assert.NotEqual(t, -1.0, second.Conditions[0].Threshold)
}
