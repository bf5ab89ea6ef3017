// Package x402 implements the signed payment-negotiation header protocol
// for machine-to-machine settlement of UCL contracts.
package x402

// Canonical X402 header names. Case-sensitive on the wire.
const (
	HeaderContractID        = "X402-Contract-ID"
	HeaderPaymentAmount     = "X402-Payment-Amount"
	HeaderPaymentToken      = "X402-Payment-Token"
	HeaderSettlementNetwork = "X402-Settlement-Network"
	HeaderConditionsMet     = "X402-Conditions-Met"
	HeaderSignature         = "X402-Signature"
	HeaderNonce             = "X402-Nonce"
)

// Headers is one signed payment offer. PaymentAmount is an exact decimal
// string; no floating-point formatting is ever applied.
type Headers struct {
	ContractID        string
	PaymentAmount     string
	PaymentToken      string
	SettlementNetwork string
	ConditionsMet     string
	Signature         string
	Nonce             string
}

// ToMap renders the canonical header-name mapping.
func (h Headers) ToMap() map[string]string {
	return map[string]string{
		HeaderContractID:        h.ContractID,
		HeaderPaymentAmount:     h.PaymentAmount,
		HeaderPaymentToken:      h.PaymentToken,
		HeaderSettlementNetwork: h.SettlementNetwork,
		HeaderConditionsMet:     h.ConditionsMet,
		HeaderSignature:         h.Signature,
		HeaderNonce:             h.Nonce,
	}
}
