package aeo

import (
	"github.com/smart402/core/pkg/canonicalize"
	"github.com/smart402/core/pkg/contracts"
)

// GenerateJSONLD renders schema.org SmartContract structured data for the
// contract. Output is canonical JSON (RFC 8785), so the same contract
// always yields byte-identical markup.
func GenerateJSONLD(c contracts.UCLContract) ([]byte, error) {
	doc := map[string]any{
		"@context":     "https://schema.org/",
		"@type":        "SmartContract",
		"identifier":   c.ContractID,
		"name":         c.Summary.Title,
		"description":  c.Summary.PlainEnglish,
		"version":      c.Version,
		"contractType": c.Metadata.ContractType,
		"category":     c.Metadata.Category,
	}
	return canonicalize.JCS(doc)
}
