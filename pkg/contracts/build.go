package contracts

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultBlockchain is used when the configuration omits a settlement
// network.
const DefaultBlockchain = "polygon"

// FromConfig builds a canonical UCLContract from a configuration input.
//
// Structural invariants are enforced here: parties must be non-empty,
// payment token must be non-empty, and the payment amount must not be
// negative. An absent payment blockchain is not an error: it defaults to
// DefaultBlockchain, so the built contract always names a settlement
// network. Completeness concerns (missing title, summary, currency) are
// deliberately left to llmo.Validate.
func FromConfig(cfg ContractConfig) (UCLContract, error) {
	if cfg.Type == "" {
		return UCLContract{}, &ConfigError{Field: "type", Reason: "must not be empty"}
	}
	if len(cfg.Parties) == 0 {
		return UCLContract{}, &ConfigError{Field: "parties", Reason: "at least one party is required"}
	}
	if cfg.Payment.Token == "" {
		return UCLContract{}, &ConfigError{Field: "payment.token", Reason: "must not be empty"}
	}
	if cfg.Payment.Amount.IsNegative() {
		return UCLContract{}, &ConfigError{Field: "payment.amount", Reason: "must not be negative"}
	}

	blockchain := cfg.Payment.Blockchain
	if blockchain == "" {
		blockchain = DefaultBlockchain
	}

	structure := "recurring"
	if cfg.Payment.Frequency == "one-time" {
		structure = "one-time"
	}

	parties := make([]Party, 0, len(cfg.Parties))
	for _, p := range cfg.Parties {
		parties = append(parties, Party{Role: "party", Identifier: p})
	}

	meta := ContractMetadata{
		ContractType: cfg.Type,
		Parties:      parties,
		Dates: DateInfo{
			Effective: time.Now().UTC().Format("2006-01-02"),
			Duration:  "12 months",
			Renewal:   "auto",
		},
	}

	summary := ContractSummary{}
	for k, v := range cfg.Metadata {
		s, _ := v.(string)
		switch k {
		case "title":
			summary.Title = s
		case "description":
			summary.PlainEnglish = s
		case "what_it_does":
			summary.WhatItDoes = s
		case "who_its_for":
			summary.WhoItsFor = s
		case "when_it_executes":
			summary.WhenItExecutes = s
		case "category":
			meta.Category = s
		default:
			if meta.Extra == nil {
				meta.Extra = make(map[string]any)
			}
			meta.Extra[k] = v
		}
	}

	return UCLContract{
		ContractID: NewContractID(cfg.Type),
		Version:    "1.0",
		Standard:   Standard,
		Summary:    summary,
		Metadata:   meta,
		Payment: PaymentTerms{
			Structure:  structure,
			Amount:     cfg.Payment.Amount,
			Currency:   "USD",
			Token:      cfg.Payment.Token,
			Blockchain: blockchain,
			Frequency:  cfg.Payment.Frequency,
		},
		Conditions: Conditions{Required: cfg.Conditions},
		Oracles:    []OracleDef{},
		Rules:      []RuleDef{},
	}, nil
}

// NewContractID returns a fresh globally unique contract ID of the form
// smart402:<type>:<hex>. The hex part combines the wall clock with a
// crypto-random suffix so that IDs minted within the same second never
// collide.
func NewContractID(contractType string) string {
	u := uuid.New()
	return fmt.Sprintf("%s%s:%x%s", IDPrefix, contractType, time.Now().Unix(), hex.EncodeToString(u[:6]))
}
