// Package conform validates raw contract configuration documents against
// the UCL configuration schema before they are built into contracts.
package conform

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const configSchemaURL = "https://smart402.schemas.local/contract-config.schema.json"

const configSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["type", "parties", "payment"],
  "properties": {
    "type": {"type": "string", "minLength": 1},
    "parties": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "string", "minLength": 1}
    },
    "payment": {
      "type": "object",
      "required": ["amount", "token", "frequency"],
      "properties": {
        "amount": {"type": ["number", "string"]},
        "token": {"type": "string", "minLength": 1},
        "frequency": {"type": "string", "minLength": 1},
        "blockchain": {"type": "string"}
      }
    },
    "conditions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "source": {"type": "string"},
          "operator": {"type": "string"}
        }
      }
    },
    "metadata": {"type": "object"}
  }
}`

// Validator checks configuration documents against the embedded
// Draft 2020-12 schema. The zero value is not usable; construct with New.
type Validator struct {
	schema *jsonschema.Schema
}

// New compiles the embedded configuration schema.
func New() (*Validator, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(configSchemaURL, strings.NewReader(configSchema)); err != nil {
		return nil, fmt.Errorf("config schema load failed: %w", err)
	}
	compiled, err := c.Compile(configSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("config schema compile failed: %w", err)
	}
	return &Validator{schema: compiled}, nil
}

// ValidateConfig checks a decoded (map-form) configuration document.
// The returned error describes the first schema violation found.
func (v *Validator) ValidateConfig(doc map[string]any) error {
	if doc == nil {
		return fmt.Errorf("config validation failed: document is empty")
	}
	if err := v.schema.Validate(doc); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
