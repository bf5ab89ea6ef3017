package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/smart402/core/pkg/aeo"
	"github.com/smart402/core/pkg/conform"
	"github.com/smart402/core/pkg/contracts"
	"github.com/smart402/core/pkg/llmo"
	"github.com/smart402/core/pkg/store"
	"github.com/smart402/core/pkg/templates"
	"github.com/smart402/core/pkg/x402"
)

// Dispatcher
func main() {
	os.Exit(Run(os.Args, os.Stdout, os.Stderr))
}

// Run is the entrypoint for testing.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		printUsage(stdout)
		return 2
	}

	switch args[1] {
	case "new":
		return runNewCmd(args[2:], stdout, stderr)
	case "templates":
		return runTemplatesCmd(stdout)
	case "conform":
		return runConformCmd(args[2:], stdout, stderr)
	case "score":
		return runScoreCmd(args[2:], stdout, stderr)
	case "validate":
		return runValidateCmd(args[2:], stdout, stderr)
	case "explain":
		return runExplainCmd(args[2:], stdout, stderr)
	case "compile":
		return runCompileCmd(args[2:], stdout, stderr)
	case "headers":
		return runHeadersCmd(args[2:], stdout, stderr)
	case "jsonld":
		return runJSONLDCmd(args[2:], stdout, stderr)
	case "export":
		return runExportCmd(args[2:], stdout, stderr)
	case "help", "--help", "-h":
		printUsage(stdout)
		return 0
	default:
		_, _ = fmt.Fprintf(stderr, "Unknown command: %s\n", args[1])
		printUsage(stderr)
		return 2
	}
}

// ANSI Colors
const (
	ColorReset = "\033[0m"
	ColorBold  = "\033[1m"
	ColorBlue  = "\033[34m"
	ColorCyan  = "\033[36m"
	ColorGreen = "\033[32m"
	ColorGray  = "\033[37m"
)

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "%sSmart402 %s%s\n", ColorBold+ColorBlue, "v0.1.0", ColorReset)
	fmt.Fprintf(w, "%sContracts agents can read, score and settle.%s\n", ColorGray, ColorReset)
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "%sUSAGE:%s\n", ColorBold, ColorReset)
	fmt.Fprintln(w, "  smart402 <command> [flags]")
	fmt.Fprintln(w, "")

	printSection(w, "AUTHORING")
	printCommand(w, "new", "Create a contract from a template (--template, --party, --amount)")
	printCommand(w, "conform", "Validate a config file and build the contract (--config, --out)")
	printCommand(w, "templates", "List available contract templates")

	printSection(w, "ANALYSIS")
	printCommand(w, "score", "Score contract discoverability (--contract, --json)")
	printCommand(w, "validate", "Validate a contract document (--contract, --json)")
	printCommand(w, "explain", "Render the plain-language explanation (--contract)")
	printCommand(w, "jsonld", "Emit the schema.org JSON-LD projection (--contract)")
	printCommand(w, "export", "Re-encode a contract as YAML or JSON (--contract, --out)")

	printSection(w, "EXECUTION")
	printCommand(w, "compile", "Compile to an execution target (--contract, --target)")
	printCommand(w, "headers", "Generate signed X402 payment headers (--contract, --key)")

	printSection(w, "UTILITIES")
	printCommand(w, "help", "Show this help")
	fmt.Fprintln(w, "")
}

func printSection(w io.Writer, title string) {
	fmt.Fprintf(w, "%s%s:%s\n", ColorBold+ColorCyan, title, ColorReset)
}

func printCommand(w io.Writer, name, desc string) {
	fmt.Fprintf(w, "  %s%-12s%s %s\n", ColorGreen, name, ColorReset, desc)
}

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func runNewCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("new", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	var (
		template   string
		parties    stringList
		amount     string
		token      string
		blockchain string
		outPath    string
	)
	cmd.StringVar(&template, "template", "", "Template name (REQUIRED, see 'smart402 templates')")
	cmd.Var(&parties, "party", "Party identifier, repeatable (REQUIRED)")
	cmd.StringVar(&amount, "amount", "", "Payment amount as a decimal string (REQUIRED)")
	cmd.StringVar(&token, "token", "", "Settlement token, overrides the template default")
	cmd.StringVar(&blockchain, "blockchain", "", "Settlement network, defaults to polygon")
	cmd.StringVar(&outPath, "out", "", "Output file; extension picks YAML or JSON (default: stdout YAML)")

	if err := cmd.Parse(args); err != nil {
		return 2
	}
	if template == "" || len(parties) == 0 || amount == "" {
		fmt.Fprintln(stderr, "Error: --template, --party and --amount are required")
		cmd.Usage()
		return 2
	}

	amt, err := contracts.NewAmount(amount)
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid amount: %v\n", err)
		return 2
	}

	cfg, err := templates.Instantiate(template, templates.Params{
		Parties:    parties,
		Amount:     amt,
		Token:      token,
		Blockchain: blockchain,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	contract, err := contracts.FromConfig(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if outPath != "" {
		if err := store.Save(contract, outPath, ""); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Contract %s written to %s\n", contract.ContractID, outPath)
		return 0
	}

	data, err := contracts.EncodeYAML(contract)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	_, _ = stdout.Write(data)
	return 0
}

func runConformCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("conform", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	var (
		configPath string
		outPath    string
	)
	cmd.StringVar(&configPath, "config", "", "Path to a YAML or JSON contract configuration (REQUIRED)")
	cmd.StringVar(&outPath, "out", "", "Write the built contract here; extension picks YAML or JSON")

	if err := cmd.Parse(args); err != nil {
		return 2
	}
	if configPath == "" {
		fmt.Fprintln(stderr, "Error: --config is required")
		cmd.Usage()
		return 2
	}

	raw, err := os.ReadFile(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	// Normalize through JSON so schema validation sees JSON-typed values
	// regardless of the input format.
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		fmt.Fprintf(stderr, "Error: parse config: %v\n", err)
		return 1
	}
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		fmt.Fprintf(stderr, "Error: normalize config: %v\n", err)
		return 1
	}
	var mapped map[string]any
	if err := json.Unmarshal(jsonBytes, &mapped); err != nil {
		fmt.Fprintf(stderr, "Error: config must be a mapping: %v\n", err)
		return 1
	}

	validator, err := conform.New()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := validator.ValidateConfig(mapped); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	var cfg contracts.ContractConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		fmt.Fprintf(stderr, "Error: decode config: %v\n", err)
		return 1
	}
	contract, err := contracts.FromConfig(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if outPath != "" {
		if err := store.Save(contract, outPath, ""); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Contract %s written to %s\n", contract.ContractID, outPath)
		return 0
	}
	data, err := contracts.EncodeYAML(contract)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	_, _ = stdout.Write(data)
	return 0
}

func runTemplatesCmd(stdout io.Writer) int {
	for _, name := range templates.Names() {
		tpl, err := templates.Lookup(name)
		if err != nil {
			continue
		}
		title, _ := tpl.Metadata["title"].(string)
		fmt.Fprintf(stdout, "%-22s %s\n", name, title)
	}
	return 0
}

func loadContract(path string, stderr io.Writer) (contracts.UCLContract, bool) {
	if path == "" {
		fmt.Fprintln(stderr, "Error: --contract is required")
		return contracts.UCLContract{}, false
	}
	c, err := store.Load(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return contracts.UCLContract{}, false
	}
	return c, true
}

func runScoreCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("score", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	var (
		path       string
		jsonOutput bool
	)
	cmd.StringVar(&path, "contract", "", "Path to contract file (REQUIRED)")
	cmd.BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	if err := cmd.Parse(args); err != nil {
		return 2
	}

	c, ok := loadContract(path, stderr)
	if !ok {
		return 2
	}

	score := aeo.CalculateScore(c)
	if jsonOutput {
		data, _ := json.MarshalIndent(score, "", "  ")
		fmt.Fprintln(stdout, string(data))
		return 0
	}
	fmt.Fprintf(stdout, "Total score:            %.3f\n", score.Total)
	fmt.Fprintf(stdout, "  Semantic richness:    %.3f\n", score.SemanticRichness)
	fmt.Fprintf(stdout, "  Citation friendliness: %.3f\n", score.CitationFriendliness)
	fmt.Fprintf(stdout, "  Findability:          %.3f\n", score.Findability)
	fmt.Fprintf(stdout, "  Authority signals:    %.3f\n", score.AuthoritySignals)
	fmt.Fprintf(stdout, "  Citation presence:    %.3f\n", score.CitationPresence)
	return 0
}

func runValidateCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("validate", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	var (
		path       string
		jsonOutput bool
	)
	cmd.StringVar(&path, "contract", "", "Path to contract file (REQUIRED)")
	cmd.BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	if err := cmd.Parse(args); err != nil {
		return 2
	}

	c, ok := loadContract(path, stderr)
	if !ok {
		return 2
	}

	result := llmo.Validate(c)
	if jsonOutput {
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(stdout, string(data))
	} else {
		if result.Valid {
			fmt.Fprintln(stdout, "Contract is valid")
		} else {
			fmt.Fprintln(stdout, "Contract is INVALID")
		}
		for _, e := range result.Errors {
			fmt.Fprintf(stdout, "  error:   %s\n", e)
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(stdout, "  warning: %s\n", w)
		}
	}
	if !result.Valid {
		return 1
	}
	return 0
}

func runExplainCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("explain", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	var path string
	cmd.StringVar(&path, "contract", "", "Path to contract file (REQUIRED)")
	if err := cmd.Parse(args); err != nil {
		return 2
	}

	c, ok := loadContract(path, stderr)
	if !ok {
		return 2
	}
	fmt.Fprint(stdout, llmo.Explain(c))
	return 0
}

func runCompileCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("compile", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	var (
		path   string
		target string
	)
	cmd.StringVar(&path, "contract", "", "Path to contract file (REQUIRED)")
	cmd.StringVar(&target, "target", string(llmo.TargetSolidity), "Compilation target (solidity|javascript|go)")
	if err := cmd.Parse(args); err != nil {
		return 2
	}

	c, ok := loadContract(path, stderr)
	if !ok {
		return 2
	}

	source, err := llmo.Compile(c, llmo.Target(target))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprint(stdout, source)
	return 0
}

func runHeadersCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("headers", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	var (
		path          string
		key           string
		conditionsMet bool
		jsonOutput    bool
	)
	cmd.StringVar(&path, "contract", "", "Path to contract file (REQUIRED)")
	cmd.StringVar(&key, "key", "", "HMAC signing key (REQUIRED)")
	cmd.BoolVar(&conditionsMet, "conditions-met", false, "Report conditions as met")
	cmd.BoolVar(&jsonOutput, "json", false, "Output headers as JSON")
	if err := cmd.Parse(args); err != nil {
		return 2
	}
	if key == "" {
		fmt.Fprintln(stderr, "Error: --key is required")
		cmd.Usage()
		return 2
	}

	c, ok := loadContract(path, stderr)
	if !ok {
		return 2
	}

	signer, err := x402.NewHMACSigner([]byte(key))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	headers, err := x402.NewProtocol(signer).GenerateHeaders(c, conditionsMet)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if jsonOutput {
		data, _ := json.MarshalIndent(headers.ToMap(), "", "  ")
		fmt.Fprintln(stdout, string(data))
		return 0
	}
	m := headers.ToMap()
	for _, name := range []string{
		x402.HeaderContractID,
		x402.HeaderPaymentAmount,
		x402.HeaderPaymentToken,
		x402.HeaderSettlementNetwork,
		x402.HeaderConditionsMet,
		x402.HeaderNonce,
		x402.HeaderSignature,
	} {
		fmt.Fprintf(stdout, "%s: %s\n", name, m[name])
	}
	return 0
}

func runExportCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("export", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	var (
		path    string
		outPath string
	)
	cmd.StringVar(&path, "contract", "", "Path to contract file (REQUIRED)")
	cmd.StringVar(&outPath, "out", "", "Destination file; extension picks YAML or JSON (REQUIRED)")
	if err := cmd.Parse(args); err != nil {
		return 2
	}
	if outPath == "" {
		fmt.Fprintln(stderr, "Error: --out is required")
		cmd.Usage()
		return 2
	}

	c, ok := loadContract(path, stderr)
	if !ok {
		return 2
	}
	if err := store.Save(c, outPath, ""); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Contract %s written to %s\n", c.ContractID, outPath)
	return 0
}

func runJSONLDCmd(args []string, stdout, stderr io.Writer) int {
	cmd := flag.NewFlagSet("jsonld", flag.ContinueOnError)
	cmd.SetOutput(stderr)

	var path string
	cmd.StringVar(&path, "contract", "", "Path to contract file (REQUIRED)")
	if err := cmd.Parse(args); err != nil {
		return 2
	}

	c, ok := loadContract(path, stderr)
	if !ok {
		return 2
	}

	data, err := aeo.GenerateJSONLD(c)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, string(data))
	return 0
}
