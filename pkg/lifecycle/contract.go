package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/smart402/core/pkg/contracts"
	"github.com/smart402/core/pkg/llmo"
)

const tracerName = "github.com/smart402/core/pkg/lifecycle"

// Contract binds a canonical contract document to its deployment state
// and drives it through the status machine. All operations serialize on
// an internal mutex, so at most one deploy or payment is in flight at a
// time.
type Contract struct {
	mu sync.Mutex

	doc    contracts.UCLContract
	status contracts.Status

	address         string
	transactionHash string
	blockNumber     uint64
	network         string
	paymentSeq      uint64

	chain     ChainAdapter
	payments  PaymentAdapter
	evaluator ConditionEvaluator

	logger *slog.Logger
	tracer trace.Tracer
}

// New wraps doc in a lifecycle starting at Draft. Any adapter may be nil
// if the corresponding operation is never used; calling an operation
// whose adapter is nil returns an error.
func New(doc contracts.UCLContract, chain ChainAdapter, payments PaymentAdapter, evaluator ConditionEvaluator) *Contract {
	return &Contract{
		doc:       doc,
		status:    contracts.StatusDraft,
		chain:     chain,
		payments:  payments,
		evaluator: evaluator,
		logger:    slog.Default().With("contract_id", doc.ContractID),
		tracer:    otel.Tracer(tracerName),
	}
}

// SetLogger replaces the logger. Intended for wiring at construction
// time, before the contract is shared across goroutines.
func (c *Contract) SetLogger(l *slog.Logger) {
	c.logger = l.With("contract_id", c.doc.ContractID)
}

// Document returns a copy of the underlying contract document.
func (c *Contract) Document() contracts.UCLContract {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc
}

// Status reports the current lifecycle status.
func (c *Contract) Status() contracts.Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Address returns the on-chain address assigned at deployment, empty
// before Deploy succeeds.
func (c *Contract) Address() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.address
}

// TransactionHash returns the deployment transaction hash.
func (c *Contract) TransactionHash() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transactionHash
}

// Deploy validates the document, compiles it for on-chain execution and
// hands the source to the chain adapter. On adapter failure the contract
// moves to Failed; validation and compilation failures leave it in Draft.
func (c *Contract) Deploy(ctx context.Context, network string) (DeployResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctx, span := c.tracer.Start(ctx, "contract.deploy", trace.WithAttributes(
		attribute.String("contract.id", c.doc.ContractID),
		attribute.String("contract.network", network),
	))
	defer span.End()

	if c.chain == nil {
		return DeployResult{}, fmt.Errorf("deploy %s: no chain adapter configured", c.doc.ContractID)
	}
	if !contracts.CanTransition(c.status, contracts.StatusDeploying) {
		err := &StateError{Op: "deploy", Status: c.status}
		span.SetStatus(codes.Error, err.Error())
		return DeployResult{}, err
	}

	if result := llmo.Validate(c.doc); !result.Valid {
		err := &llmo.ValidationError{Errors: result.Errors}
		span.SetStatus(codes.Error, err.Error())
		return DeployResult{}, fmt.Errorf("deploy %s: %w", c.doc.ContractID, err)
	}

	source, err := llmo.Compile(c.doc, llmo.TargetSolidity)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return DeployResult{}, fmt.Errorf("deploy %s: %w", c.doc.ContractID, err)
	}

	c.status = contracts.StatusDeploying
	c.logger.InfoContext(ctx, "deploying contract", "network", network)

	res, err := c.chain.Deploy(ctx, network, source)
	if err != nil {
		c.status = contracts.StatusFailed
		derr := &DeploymentError{ContractID: c.doc.ContractID, Network: network, Err: err}
		span.RecordError(derr)
		span.SetStatus(codes.Error, derr.Error())
		c.logger.ErrorContext(ctx, "deployment failed", "network", network, "error", err)
		return DeployResult{}, derr
	}

	c.address = res.Address
	c.transactionHash = res.TransactionHash
	c.blockNumber = res.BlockNumber
	c.network = network
	c.status = contracts.StatusDeployed
	res.Network = network
	res.ContractID = c.doc.ContractID

	c.logger.InfoContext(ctx, "contract deployed",
		"network", network,
		"address", res.Address,
		"tx_hash", res.TransactionHash,
	)
	return res, nil
}

// ExecutePayment submits one payment through the payment adapter. The
// contract must be Deployed or Active. The first successful payment on a
// Deployed contract activates it. Failed submissions keep the current
// idempotency key so a retry resolves to the same logical payment.
func (c *Contract) ExecutePayment(ctx context.Context) (PaymentResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctx, span := c.tracer.Start(ctx, "contract.execute_payment", trace.WithAttributes(
		attribute.String("contract.id", c.doc.ContractID),
	))
	defer span.End()

	if c.payments == nil {
		return PaymentResult{}, fmt.Errorf("execute payment %s: no payment adapter configured", c.doc.ContractID)
	}
	if c.status != contracts.StatusDeployed && c.status != contracts.StatusActive {
		err := &StateError{Op: "execute payment", Status: c.status}
		span.SetStatus(codes.Error, err.Error())
		return PaymentResult{}, err
	}

	req := PaymentRequest{
		ContractID:      c.doc.ContractID,
		ContractAddress: c.address,
		Amount:          c.doc.Payment.Amount,
		Token:           c.doc.Payment.Token,
		Network:         c.network,
		IdempotencyKey:  fmt.Sprintf("%s:%d", c.doc.ContractID, c.paymentSeq),
	}

	res, err := c.payments.ExecutePayment(ctx, req)
	if err != nil {
		perr := &PaymentError{ContractID: c.doc.ContractID, Err: err}
		span.RecordError(perr)
		span.SetStatus(codes.Error, perr.Error())
		c.logger.ErrorContext(ctx, "payment failed", "idempotency_key", req.IdempotencyKey, "error", err)
		return PaymentResult{}, perr
	}

	c.paymentSeq++
	if c.status == contracts.StatusDeployed {
		c.status = contracts.StatusActive
	}

	c.logger.InfoContext(ctx, "payment executed",
		"tx_hash", res.TransactionHash,
		"amount", res.Amount.String(),
		"token", res.Token,
	)
	return res, nil
}

// CheckConditions evaluates every condition through the evaluator and
// reports per-condition outcomes. AllMet considers required conditions
// only and is independent of evaluation order.
func (c *Contract) CheckConditions(ctx context.Context) (ConditionCheckResult, error) {
	c.mu.Lock()
	doc := c.doc
	c.mu.Unlock()

	ctx, span := c.tracer.Start(ctx, "contract.check_conditions", trace.WithAttributes(
		attribute.String("contract.id", doc.ContractID),
	))
	defer span.End()

	if c.evaluator == nil {
		return ConditionCheckResult{}, fmt.Errorf("check conditions %s: no evaluator configured", doc.ContractID)
	}

	result := ConditionCheckResult{
		AllMet:     true,
		Conditions: make(map[string]bool),
		Timestamp:  time.Now().UTC(),
	}

	for _, cond := range doc.Conditions.Required {
		met, err := c.evaluator.Evaluate(ctx, cond)
		if err != nil {
			cerr := &ConditionError{ConditionID: cond.ID, Err: err}
			span.RecordError(cerr)
			span.SetStatus(codes.Error, cerr.Error())
			return ConditionCheckResult{}, cerr
		}
		result.Conditions[cond.ID] = met
		if !met {
			result.AllMet = false
		}
	}
	for _, cond := range doc.Conditions.Optional {
		met, err := c.evaluator.Evaluate(ctx, cond)
		if err != nil {
			cerr := &ConditionError{ConditionID: cond.ID, Err: err}
			span.RecordError(cerr)
			span.SetStatus(codes.Error, cerr.Error())
			return ConditionCheckResult{}, cerr
		}
		result.Conditions[cond.ID] = met
	}

	span.SetAttributes(attribute.Bool("conditions.all_met", result.AllMet))
	return result, nil
}

// Pause suspends an Active contract.
func (c *Contract) Pause(ctx context.Context) error {
	return c.transition(ctx, "pause", contracts.StatusPaused)
}

// Resume reactivates a Paused contract.
func (c *Contract) Resume(ctx context.Context) error {
	return c.transition(ctx, "resume", contracts.StatusActive)
}

// Complete moves the contract to its terminal Completed status.
func (c *Contract) Complete(ctx context.Context) error {
	return c.transition(ctx, "complete", contracts.StatusCompleted)
}

func (c *Contract) transition(ctx context.Context, op string, to contracts.Status) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !contracts.CanTransition(c.status, to) {
		return &StateError{Op: op, Status: c.status}
	}
	from := c.status
	c.status = to
	c.logger.InfoContext(ctx, "status changed", "from", from, "to", to)
	return nil
}
