// Package aeo scores contracts for discoverability by automated and AI
// consumers and emits schema.org structured-data markup.
//
// Scoring is a pure function of the contract value: no I/O, no clock, no
// shared state. Safe to call concurrently.
package aeo

import (
	"strings"

	"github.com/smart402/core/pkg/contracts"
)

// Score is the weighted multi-factor discoverability result. Every
// sub-score lies in [0,1]; Total is the weighted sum of the five.
type Score struct {
	Total                float64 `json:"total"`
	SemanticRichness     float64 `json:"semantic_richness"`
	CitationFriendliness float64 `json:"citation_friendliness"`
	Findability          float64 `json:"findability"`
	AuthoritySignals     float64 `json:"authority_signals"`
	CitationPresence     float64 `json:"citation_presence"`
}

// Scoring weights. Fixed policy: they sum to exactly 1.0 and are
// compile-time constants, never runtime-mutable.
const (
	WeightSemanticRichness     = 0.25
	WeightCitationFriendliness = 0.20
	WeightFindability          = 0.25
	WeightAuthoritySignals     = 0.15
	WeightCitationPresence     = 0.15
)

// baselineSignal is the fixed default for the reserved authority and
// citation-presence factors until deployment-history signals exist.
const baselineSignal = 0.5

// CalculateScore computes the discoverability score of a contract.
func CalculateScore(c contracts.UCLContract) Score {
	s := Score{
		SemanticRichness:     semanticRichness(c),
		CitationFriendliness: citationFriendliness(c),
		Findability:          findability(c),
		AuthoritySignals:     baselineSignal,
		CitationPresence:     baselineSignal,
	}
	s.Total = s.SemanticRichness*WeightSemanticRichness +
		s.CitationFriendliness*WeightCitationFriendliness +
		s.Findability*WeightFindability +
		s.AuthoritySignals*WeightAuthoritySignals +
		s.CitationPresence*WeightCitationPresence
	return s
}

func semanticRichness(c contracts.UCLContract) float64 {
	score := 0.0
	if c.Summary.WhatItDoes != "" {
		score += 0.25
	}
	if c.Summary.WhoItsFor != "" {
		score += 0.25
	}
	if c.Summary.WhenItExecutes != "" {
		score += 0.25
	}
	if len(c.Metadata.Parties) > 0 {
		score += 0.25
	}
	return clamp(score)
}

func citationFriendliness(c contracts.UCLContract) float64 {
	score := 0.0
	if strings.HasPrefix(c.ContractID, contracts.IDPrefix) {
		score += 0.4
	}
	if len(c.Summary.PlainEnglish) > 50 {
		score += 0.3
	}
	if len(c.Conditions.Required) > 0 {
		score += 0.3
	}
	return clamp(score)
}

func findability(c contracts.UCLContract) float64 {
	score := 0.5
	if c.Metadata.Category != "" {
		score += 0.25
	}
	if c.Metadata.ContractType != "" {
		score += 0.25
	}
	return clamp(score)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
