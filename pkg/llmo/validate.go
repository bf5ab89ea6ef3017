// Package llmo is the contract compiler engine: schema/business-rule
// validation, deterministic natural-language explanation, and multi-target
// source generation.
//
// Every function here is a pure, reentrant function of the contract value.
package llmo

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/smart402/core/pkg/contracts"
)

// ValidationResult reports schema and business-rule findings.
// Valid is true exactly when Errors is empty; warnings never fail a
// contract.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ValidationError is the error form of a failed validation, for callers
// that need validation as a gate rather than a report.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("contract validation failed: %v", e.Errors)
}

// Validate checks a contract for completeness and business-rule
// violations.
func Validate(c contracts.UCLContract) ValidationResult {
	var errs, warnings []string

	if c.ContractID == "" {
		errs = append(errs, "contract_id is required")
	}
	if c.Version == "" {
		errs = append(errs, "version is required")
	}
	if c.Payment.Amount.IsNegative() {
		errs = append(errs, "payment amount cannot be negative")
	}

	if c.Summary.Title == "" {
		warnings = append(warnings, "title should be provided")
	}
	if c.Summary.PlainEnglish == "" {
		warnings = append(warnings, "plain_english summary should be provided")
	}
	if c.Payment.Currency == "" {
		warnings = append(warnings, "currency should be specified")
	}
	if c.Version != "" {
		if _, err := semver.NewVersion(c.Version); err != nil {
			warnings = append(warnings, fmt.Sprintf("version %q is not a semantic version", c.Version))
		}
	}

	return ValidationResult{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}
