// Package templates ships ready-made contract configurations for the
// common Smart402 agreement shapes. A template supplies the contract
// type, metadata and conditions; the caller fills in parties and payment
// terms.
package templates

import (
	"errors"
	"fmt"
	"sort"

	"github.com/smart402/core/pkg/contracts"
)

// ErrTemplateNotFound is returned for an unknown template name.
var ErrTemplateNotFound = errors.New("template not found")

// Params carries the caller-supplied values a template cannot default.
// Token and Blockchain override the template defaults when non-empty.
type Params struct {
	Parties    []string
	Amount     contracts.Amount
	Token      string
	Blockchain string
}

// Template is a named, partially filled contract configuration.
type Template struct {
	Name       string
	Type       string
	Frequency  string
	Token      string
	Metadata   map[string]any
	Conditions []contracts.ConditionDef
}

var catalog = map[string]Template{
	"saas-subscription": {
		Name:      "saas-subscription",
		Type:      "saas-subscription",
		Frequency: "monthly",
		Token:     "USDC",
		Metadata: map[string]any{
			"title":       "SaaS Subscription Agreement",
			"category":    "software",
			"description": "Recurring subscription payment for software service access.",
		},
		Conditions: []contracts.ConditionDef{
			{
				ID:          "service-available",
				Description: "Service uptime meets the committed level",
				Source:      "oracle://uptime",
				Operator:    ">=",
				Threshold:   99.5,
			},
		},
	},
	"freelancer-milestone": {
		Name:      "freelancer-milestone",
		Type:      "freelancer-milestone",
		Frequency: "one-time",
		Token:     "USDC",
		Metadata: map[string]any{
			"title":       "Freelancer Milestone Payment",
			"category":    "freelance",
			"description": "One-time payment released when the milestone is accepted.",
		},
		Conditions: []contracts.ConditionDef{
			{
				ID:          "milestone-accepted",
				Description: "Client has accepted the delivered milestone",
				Source:      "oracle://acceptance",
			},
		},
	},
	"supply-chain": {
		Name:      "supply-chain",
		Type:      "supply-chain",
		Frequency: "one-time",
		Token:     "USDC",
		Metadata: map[string]any{
			"title":       "Supply Chain Delivery Payment",
			"category":    "logistics",
			"description": "Payment triggered by verified delivery of goods.",
		},
		Conditions: []contracts.ConditionDef{
			{
				ID:          "goods-delivered",
				Description: "Carrier confirms delivery at destination",
				Source:      "oracle://delivery",
			},
			{
				ID:          "temperature-in-range",
				Description: "Cold chain stayed below the maximum temperature",
				Source:      "oracle://temperature",
				Operator:    "<=",
				Threshold:   8.0,
			},
		},
	},
	"affiliate-commission": {
		Name:      "affiliate-commission",
		Type:      "affiliate-commission",
		Frequency: "monthly",
		Token:     "USDC",
		Metadata: map[string]any{
			"title":       "Affiliate Commission Agreement",
			"category":    "marketing",
			"description": "Monthly commission payout on attributed conversions.",
		},
		Conditions: []contracts.ConditionDef{
			{
				ID:          "minimum-conversions",
				Description: "Attributed conversions reached the payout floor",
				Source:      "oracle://conversions",
				Operator:    ">=",
				Threshold:   10.0,
			},
		},
	},
	"vendor-sla": {
		Name:      "vendor-sla",
		Type:      "vendor-sla",
		Frequency: "monthly",
		Token:     "USDC",
		Metadata: map[string]any{
			"title":       "Vendor Service Level Agreement",
			"category":    "operations",
			"description": "Monthly vendor payment gated on service level compliance.",
		},
		Conditions: []contracts.ConditionDef{
			{
				ID:          "response-time",
				Description: "Average response time stays under the agreed limit",
				Source:      "oracle://response-time",
				Operator:    "<",
				Threshold:   200.0,
			},
			{
				ID:          "uptime",
				Description: "Monthly uptime meets the agreed floor",
				Source:      "oracle://uptime",
				Operator:    ">=",
				Threshold:   99.9,
			},
		},
	},
}

// Names returns all template names in lexical order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the template registered under name.
func Lookup(name string) (Template, error) {
	tpl, ok := catalog[name]
	if !ok {
		return Template{}, fmt.Errorf("lookup %q: %w", name, ErrTemplateNotFound)
	}
	return tpl, nil
}

// Instantiate combines a template with caller parameters into a contract
// configuration ready for contracts.FromConfig.
func Instantiate(name string, params Params) (contracts.ContractConfig, error) {
	tpl, err := Lookup(name)
	if err != nil {
		return contracts.ContractConfig{}, err
	}

	token := tpl.Token
	if params.Token != "" {
		token = params.Token
	}

	meta := make(map[string]any, len(tpl.Metadata))
	for k, v := range tpl.Metadata {
		meta[k] = v
	}
	conditions := make([]contracts.ConditionDef, len(tpl.Conditions))
	copy(conditions, tpl.Conditions)

	return contracts.ContractConfig{
		Type:    tpl.Type,
		Parties: params.Parties,
		Payment: contracts.PaymentConfig{
			Amount:     params.Amount,
			Token:      token,
			Frequency:  tpl.Frequency,
			Blockchain: params.Blockchain,
		},
		Conditions: conditions,
		Metadata:   meta,
	}, nil
}
