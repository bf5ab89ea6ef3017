package contracts

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// EncodeJSON serializes the contract as indented JSON using the canonical
// UCL field names.
func EncodeJSON(c UCLContract) ([]byte, error) {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode contract json: %w", err)
	}
	return b, nil
}

// DecodeJSON parses a contract from its JSON form.
func DecodeJSON(data []byte) (UCLContract, error) {
	var c UCLContract
	if err := json.Unmarshal(data, &c); err != nil {
		return UCLContract{}, fmt.Errorf("decode contract json: %w", err)
	}
	return c, nil
}

// EncodeYAML serializes the contract as YAML using the canonical UCL
// field names.
func EncodeYAML(c UCLContract) ([]byte, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode contract yaml: %w", err)
	}
	return b, nil
}

// DecodeYAML parses a contract from its YAML form.
func DecodeYAML(data []byte) (UCLContract, error) {
	var c UCLContract
	if err := yaml.Unmarshal(data, &c); err != nil {
		return UCLContract{}, fmt.Errorf("decode contract yaml: %w", err)
	}
	return c, nil
}
