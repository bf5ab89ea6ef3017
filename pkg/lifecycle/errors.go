package lifecycle

import (
	"fmt"

	"github.com/smart402/core/pkg/contracts"
)

// StateError reports an operation attempted from a status that does not
// permit it.
type StateError struct {
	Op     string
	Status contracts.Status
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s while contract is %s", e.Op, e.Status)
}

// DeploymentError wraps a chain adapter failure.
type DeploymentError struct {
	ContractID string
	Network    string
	Err        error
}

func (e *DeploymentError) Error() string {
	return fmt.Sprintf("deployment of %s to %s failed: %v", e.ContractID, e.Network, e.Err)
}

func (e *DeploymentError) Unwrap() error { return e.Err }

// PaymentError wraps a payment adapter failure. The contract status is
// left untouched so the caller can retry with the same idempotency key.
type PaymentError struct {
	ContractID string
	Err        error
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment for %s failed: %v", e.ContractID, e.Err)
}

func (e *PaymentError) Unwrap() error { return e.Err }

// NetworkError reports a transport failure reaching a chain, payment or
// oracle endpoint. Adapter implementations wrap I/O failures in it so
// callers can tell transient faults from contract-level rejections.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error reaching %s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ConditionError wraps an evaluator failure for a specific condition.
type ConditionError struct {
	ConditionID string
	Err         error
}

func (e *ConditionError) Error() string {
	return fmt.Sprintf("condition %s: %v", e.ConditionID, e.Err)
}

func (e *ConditionError) Unwrap() error { return e.Err }
