package llmo

import (
	"fmt"

	"github.com/smart402/core/pkg/contracts"
)

// Target is a supported compilation output language. The set is closed:
// adding a target means adding a constant, a generator, and a case in
// Compile, all checked at compile time.
type Target string

const (
	TargetSolidity   Target = "solidity"
	TargetJavaScript Target = "javascript"
	TargetGo         Target = "go"
)

// Targets lists every supported compilation target.
func Targets() []Target {
	return []Target{TargetSolidity, TargetJavaScript, TargetGo}
}

// CompilationError reports a request for an unsupported target.
type CompilationError struct {
	Target string
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("unsupported compilation target: %s", e.Target)
}

// Compile renders contract boilerplate in the requested target language.
// Free-text contract fields are escaped for the target's string and
// comment syntax; the payment amount is embedded as its exact decimal
// form.
func Compile(c contracts.UCLContract, target Target) (string, error) {
	switch target {
	case TargetSolidity:
		return compileSolidity(c), nil
	case TargetJavaScript:
		return compileJavaScript(c), nil
	case TargetGo:
		return compileGo(c), nil
	default:
		return "", &CompilationError{Target: string(target)}
	}
}
