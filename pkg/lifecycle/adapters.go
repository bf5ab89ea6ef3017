// Package lifecycle owns the mutable deployment state of a contract and
// composes the pure engines with external chain, payment and oracle
// adapters.
package lifecycle

import (
	"context"
	"time"

	"github.com/smart402/core/pkg/contracts"
)

// DeployResult is what a chain adapter reports after a successful
// deployment.
type DeployResult struct {
	Address         string `json:"address"`
	TransactionHash string `json:"transaction_hash"`
	BlockNumber     uint64 `json:"block_number,omitempty"`
	Network         string `json:"network"`
	ContractID      string `json:"contract_id"`
}

// PaymentRequest carries everything the payment adapter needs to submit
// one settlement. IdempotencyKey is stable across retries of the same
// logical payment.
type PaymentRequest struct {
	ContractID      string           `json:"contract_id"`
	ContractAddress string           `json:"contract_address"`
	Amount          contracts.Amount `json:"amount"`
	Token           string           `json:"token"`
	Network         string           `json:"network"`
	IdempotencyKey  string           `json:"idempotency_key"`
}

// PaymentResult is the payment adapter's settlement receipt.
type PaymentResult struct {
	TransactionHash string           `json:"transaction_hash"`
	Amount          contracts.Amount `json:"amount"`
	Token           string           `json:"token"`
	From            string           `json:"from"`
	To              string           `json:"to"`
}

// ConditionCheckResult maps condition IDs to their outcome. AllMet is the
// logical AND over required conditions only; optional conditions appear
// in the map but never affect AllMet.
type ConditionCheckResult struct {
	AllMet     bool            `json:"all_met"`
	Conditions map[string]bool `json:"conditions"`
	Timestamp  time.Time       `json:"timestamp"`
}

// ChainAdapter deploys compiled contract source to a settlement network.
// Implementations perform the actual RPC work; the lifecycle performs no
// retries and surfaces adapter errors unchanged.
type ChainAdapter interface {
	Deploy(ctx context.Context, network, source string) (DeployResult, error)
}

// PaymentAdapter submits one payment per call. Implementations should
// honor IdempotencyKey to make retries safe.
type PaymentAdapter interface {
	ExecutePayment(ctx context.Context, req PaymentRequest) (PaymentResult, error)
}

// ConditionEvaluator resolves a single condition predicate against
// external facts.
type ConditionEvaluator interface {
	Evaluate(ctx context.Context, cond contracts.ConditionDef) (bool, error)
}
