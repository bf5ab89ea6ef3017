// Package contracts defines the Universal Contract Language (UCL) schema:
// the canonical, machine-readable representation of a Smart402 contract.
//
// A UCLContract is an immutable value once constructed. The scoring,
// validation, explanation and compilation engines all consume it read-only,
// so values may be shared freely across goroutines.
package contracts

// Standard is the UCL schema revision implemented by this package.
const Standard = "UCL-1.0"

// IDPrefix is the namespace prefix carried by every generated contract ID.
const IDPrefix = "smart402:"

// UCLContract is the canonical contract document.
type UCLContract struct {
	ContractID string           `json:"contract_id" yaml:"contract_id"`
	Version    string           `json:"version" yaml:"version"`
	Standard   string           `json:"standard" yaml:"standard"`
	Summary    ContractSummary  `json:"summary" yaml:"summary"`
	Metadata   ContractMetadata `json:"metadata" yaml:"metadata"`
	Payment    PaymentTerms     `json:"payment" yaml:"payment"`
	Conditions Conditions       `json:"conditions" yaml:"conditions"`
	Oracles    []OracleDef      `json:"oracles" yaml:"oracles"`
	Rules      []RuleDef        `json:"rules" yaml:"rules"`
}

// ContractSummary holds the human-facing description. All fields are
// optional but recommended; the discoverability scorer rewards them.
type ContractSummary struct {
	Title          string `json:"title" yaml:"title"`
	PlainEnglish   string `json:"plain_english" yaml:"plain_english"`
	WhatItDoes     string `json:"what_it_does" yaml:"what_it_does"`
	WhoItsFor      string `json:"who_its_for" yaml:"who_its_for"`
	WhenItExecutes string `json:"when_it_executes" yaml:"when_it_executes"`
}

// ContractMetadata describes the parties and classification of a contract.
// Extra carries unrecognized metadata keys from the configuration input so
// that forward-compatible fields survive a round trip.
type ContractMetadata struct {
	ContractType string         `json:"contract_type" yaml:"contract_type"`
	Category     string         `json:"category" yaml:"category"`
	Parties      []Party        `json:"parties" yaml:"parties"`
	Dates        DateInfo       `json:"dates" yaml:"dates"`
	Extra        map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Party identifies one participant in the contract. Order is preserved.
type Party struct {
	Role       string `json:"role" yaml:"role"`
	Identifier string `json:"identifier" yaml:"identifier"`
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
}

// DateInfo carries the contract's temporal terms as free-form strings.
type DateInfo struct {
	Effective string `json:"effective" yaml:"effective"`
	Duration  string `json:"duration" yaml:"duration"`
	Renewal   string `json:"renewal" yaml:"renewal"`
}

// PaymentTerms defines what is paid, in what, and how often.
// Amount is an exact decimal; float formatting artifacts must never
// reach the wire.
type PaymentTerms struct {
	Structure  string `json:"structure" yaml:"structure"`
	Amount     Amount `json:"amount" yaml:"amount"`
	Currency   string `json:"currency" yaml:"currency"`
	Token      string `json:"token" yaml:"token"`
	Blockchain string `json:"blockchain" yaml:"blockchain"`
	Frequency  string `json:"frequency" yaml:"frequency"`
}

// Conditions groups the predicates gating execution. Required order is
// significant for explanation rendering; all_met evaluation is a plain
// logical AND and ignores order. Optional conditions never affect all_met.
type Conditions struct {
	Required []ConditionDef `json:"required" yaml:"required"`
	Optional []ConditionDef `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// ConditionDef is a single named, oracle-checkable predicate.
type ConditionDef struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Source      string `json:"source" yaml:"source"`
	Operator    string `json:"operator" yaml:"operator"`
	Threshold   any    `json:"threshold,omitempty" yaml:"threshold,omitempty"`
}

// OracleDef declares an external data source feeding condition checks.
type OracleDef struct {
	ID          string `json:"id" yaml:"id"`
	OracleType  string `json:"oracle_type" yaml:"oracle_type"`
	Endpoint    string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	RefreshRate string `json:"refresh_rate" yaml:"refresh_rate"`
	Required    bool   `json:"required" yaml:"required"`
}

// RuleDef binds a trigger and condition references to actions.
type RuleDef struct {
	RuleID     string         `json:"rule_id" yaml:"rule_id"`
	Name       string         `json:"name" yaml:"name"`
	Trigger    string         `json:"trigger" yaml:"trigger"`
	Conditions RuleConditions `json:"conditions" yaml:"conditions"`
	Actions    []ActionDef    `json:"actions" yaml:"actions"`
}

// RuleConditions references condition IDs combined with AND/OR semantics.
type RuleConditions struct {
	AllOf []string `json:"all_of,omitempty" yaml:"all_of,omitempty"`
	AnyOf []string `json:"any_of,omitempty" yaml:"any_of,omitempty"`
}

// ActionDef is one action fired by a rule.
type ActionDef struct {
	Action string         `json:"action" yaml:"action"`
	Params map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
}
