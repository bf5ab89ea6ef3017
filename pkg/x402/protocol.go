package x402

import (
	"crypto/subtle"
	"fmt"
	"strconv"

	"github.com/smart402/core/pkg/contracts"
)

// Protocol generates and verifies signed X402 headers for a contract's
// payment terms. Safe for concurrent use.
type Protocol struct {
	signer Signer
	nonces nonceSource
}

// NewProtocol wires a protocol instance to a signer.
func NewProtocol(signer Signer) *Protocol {
	return &Protocol{signer: signer}
}

// GenerateHeaders produces a fresh signed header set for the contract.
// Every call yields a new nonce and therefore a new signature; the
// contract-derived fields are stable.
func (p *Protocol) GenerateHeaders(c contracts.UCLContract, conditionsMet bool) (Headers, error) {
	nonce := p.nonces.Next()
	amount := c.Payment.Amount.String()

	payload, err := signingPayload(c.ContractID, amount, c.Payment.Token, nonce)
	if err != nil {
		return Headers{}, fmt.Errorf("x402: build signing payload: %w", err)
	}
	sig, err := p.signer.Sign(payload)
	if err != nil {
		return Headers{}, fmt.Errorf("x402: sign headers: %w", err)
	}

	return Headers{
		ContractID:        c.ContractID,
		PaymentAmount:     amount,
		PaymentToken:      c.Payment.Token,
		SettlementNetwork: c.Payment.Blockchain,
		ConditionsMet:     strconv.FormatBool(conditionsMet),
		Signature:         sig,
		Nonce:             nonce,
	}, nil
}

// VerifyResponse recomputes the expected signature from the received
// header fields and compares it in constant time. Any missing or
// malformed field rejects the response.
func (p *Protocol) VerifyResponse(headers map[string]string) bool {
	contractID, ok := headers[HeaderContractID]
	if !ok || contractID == "" {
		return false
	}
	amount, ok := headers[HeaderPaymentAmount]
	if !ok || amount == "" {
		return false
	}
	token, ok := headers[HeaderPaymentToken]
	if !ok || token == "" {
		return false
	}
	nonce, ok := headers[HeaderNonce]
	if !ok || nonce == "" {
		return false
	}
	received, ok := headers[HeaderSignature]
	if !ok || received == "" {
		return false
	}

	payload, err := signingPayload(contractID, amount, token, nonce)
	if err != nil {
		return false
	}
	expected, err := p.signer.Sign(payload)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(received)) == 1
}
