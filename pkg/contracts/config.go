package contracts

// ContractConfig is the loosely-typed configuration a caller supplies to
// build a UCLContract. The wire form uses "type" for the contract type.
type ContractConfig struct {
	Type       string         `json:"type" yaml:"type"`
	Parties    []string       `json:"parties" yaml:"parties"`
	Payment    PaymentConfig  `json:"payment" yaml:"payment"`
	Conditions []ConditionDef `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// PaymentConfig is the payment fragment of a ContractConfig.
type PaymentConfig struct {
	Amount     Amount `json:"amount" yaml:"amount"`
	Token      string `json:"token" yaml:"token"`
	Frequency  string `json:"frequency" yaml:"frequency"`
	Blockchain string `json:"blockchain,omitempty" yaml:"blockchain,omitempty"`
}
