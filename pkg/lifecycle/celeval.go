package lifecycle

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/smart402/core/pkg/contracts"
)

// FactSource resolves a condition's data source to its current value.
// Implementations typically front an oracle, an HTTP API or a test
// fixture.
type FactSource interface {
	Fact(ctx context.Context, source string) (any, error)
}

// FactFunc adapts a function to the FactSource interface.
type FactFunc func(ctx context.Context, source string) (any, error)

func (f FactFunc) Fact(ctx context.Context, source string) (any, error) { return f(ctx, source) }

// CELEvaluator compares oracle facts against condition thresholds using
// compiled CEL programs, one per comparison operator. Programs are
// compiled lazily and cached for the life of the evaluator.
type CELEvaluator struct {
	env   *cel.Env
	facts FactSource

	mu       sync.RWMutex
	programs map[string]cel.Program
}

// NewCELEvaluator builds an evaluator over the given fact source.
func NewCELEvaluator(facts FactSource) (*CELEvaluator, error) {
	env, err := cel.NewEnv(
		cel.Variable("value", cel.DynType),
		cel.Variable("threshold", cel.DynType),
	)
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}
	return &CELEvaluator{
		env:      env,
		facts:    facts,
		programs: make(map[string]cel.Program),
	}, nil
}

// Evaluate resolves the condition's fact and applies its operator against
// the threshold. A condition without a threshold is treated as a boolean
// fact.
func (e *CELEvaluator) Evaluate(ctx context.Context, cond contracts.ConditionDef) (bool, error) {
	value, err := e.facts.Fact(ctx, cond.Source)
	if err != nil {
		return false, fmt.Errorf("resolve fact %q: %w", cond.Source, err)
	}

	if cond.Threshold == nil {
		b, ok := value.(bool)
		if !ok {
			return false, fmt.Errorf("fact %q: boolean expected for condition without threshold, got %T", cond.Source, value)
		}
		return b, nil
	}

	prg, err := e.program(cond.Operator)
	if err != nil {
		return false, err
	}

	out, _, err := prg.Eval(map[string]any{
		"value":     normalizeOperand(value),
		"threshold": normalizeOperand(cond.Threshold),
	})
	if err != nil {
		return false, fmt.Errorf("evaluate condition %q: %w", cond.ID, err)
	}
	met, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("evaluate condition %q: non-boolean result %T", cond.ID, out.Value())
	}
	return met, nil
}

var comparisonOperators = map[string]bool{
	"==": true, "!=": true,
	">": true, ">=": true,
	"<": true, "<=": true,
}

func (e *CELEvaluator) program(operator string) (cel.Program, error) {
	if !comparisonOperators[operator] {
		return nil, fmt.Errorf("unsupported comparison operator %q", operator)
	}

	e.mu.RLock()
	prg, ok := e.programs[operator]
	e.mu.RUnlock()
	if ok {
		return prg, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if prg, ok := e.programs[operator]; ok {
		return prg, nil
	}

	expr := fmt.Sprintf("value %s threshold", operator)
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile comparison %q: %w", operator, issues.Err())
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("build comparison program %q: %w", operator, err)
	}
	e.programs[operator] = prg
	return prg, nil
}

// normalizeOperand widens numeric operands to float64 so decoded JSON and
// YAML values compare consistently inside CEL.
func normalizeOperand(v any) any {
	switch n := v.(type) {
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	default:
		return v
	}
}
