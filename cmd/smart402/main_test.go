package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(append([]string{"smart402"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func newTestContract(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contract.yaml")
	code, _, errOut := runCLI(t, "new",
		"--template", "saas-subscription",
		"--party", "provider@example.com",
		"--party", "customer@example.com",
		"--amount", "99.00",
		"--out", path,
	)
	require.Zero(t, code, errOut)
	return path
}

func TestRunNoArgsPrintsUsage(t *testing.T) {
	code, _, _ := runCLI(t)
	assert.Equal(t, 2, code)
}

func TestRunUnknownCommand(t *testing.T) {
	code, _, errOut := runCLI(t, "frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "Unknown command")
}

func TestTemplatesListsCatalog(t *testing.T) {
	code, out, _ := runCLI(t, "templates")
	require.Zero(t, code)
	for _, name := range []string{"saas-subscription", "freelancer-milestone", "supply-chain", "affiliate-commission", "vendor-sla"} {
		assert.Contains(t, out, name)
	}
}

func TestNewRequiresFlags(t *testing.T) {
	code, _, errOut := runCLI(t, "new", "--template", "saas-subscription")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "required")
}

func TestNewUnknownTemplate(t *testing.T) {
	code, _, errOut := runCLI(t, "new",
		"--template", "nope",
		"--party", "a@example.com",
		"--amount", "1",
	)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "template not found")
}

func TestNewWritesLoadableContract(t *testing.T) {
	path := newTestContract(t)

	code, out, _ := runCLI(t, "validate", "--contract", path)
	assert.Zero(t, code)
	assert.Contains(t, out, "valid")
}

func TestScoreJSONOutput(t *testing.T) {
	path := newTestContract(t)

	code, out, _ := runCLI(t, "score", "--contract", path, "--json")
	require.Zero(t, code)

	var score map[string]float64
	require.NoError(t, json.Unmarshal([]byte(out), &score))
	assert.Contains(t, score, "total")
	assert.Contains(t, score, "semantic_richness")
}

func TestExplainRendersMarkdown(t *testing.T) {
	path := newTestContract(t)

	code, out, _ := runCLI(t, "explain", "--contract", path)
	require.Zero(t, code)
	assert.True(t, strings.HasPrefix(out, "# "))
	assert.Contains(t, out, "## Payment Terms")
}

func TestCompileTargets(t *testing.T) {
	path := newTestContract(t)

	code, out, _ := runCLI(t, "compile", "--contract", path, "--target", "solidity")
	require.Zero(t, code)
	assert.Contains(t, out, "pragma solidity")

	code, _, errOut := runCLI(t, "compile", "--contract", path, "--target", "cobol")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "cobol")
}

func TestHeadersOutput(t *testing.T) {
	path := newTestContract(t)

	code, out, _ := runCLI(t, "headers", "--contract", path, "--key", "test-key", "--json")
	require.Zero(t, code)

	var headers map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &headers))
	assert.Contains(t, headers, "X402-Contract-ID")
	assert.Equal(t, "99.00", headers["X402-Payment-Amount"])
	assert.True(t, strings.HasPrefix(headers["X402-Signature"], "hmac-sha256:"))
}

func TestHeadersRequiresKey(t *testing.T) {
	path := newTestContract(t)
	code, _, errOut := runCLI(t, "headers", "--contract", path)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "--key is required")
}

func TestConformBuildsContractFromConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
type: saas-subscription
parties:
  - provider@example.com
  - customer@example.com
payment:
  amount: "49.99"
  token: USDC
  frequency: monthly
metadata:
  title: Hosted Search Subscription
`), 0o644))

	outPath := filepath.Join(dir, "contract.json")
	code, out, errOut := runCLI(t, "conform", "--config", configPath, "--out", outPath)
	require.Zero(t, code, errOut)
	assert.Contains(t, out, "smart402:saas-subscription:")

	code, _, _ = runCLI(t, "validate", "--contract", outPath)
	assert.Zero(t, code)
}

func TestConformRejectsInvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
type: saas-subscription
parties: []
payment:
  amount: "10"
  token: USDC
  frequency: monthly
`), 0o644))

	code, _, errOut := runCLI(t, "conform", "--config", configPath)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "config validation failed")
}

func TestExportConvertsFormats(t *testing.T) {
	yamlPath := newTestContract(t)
	jsonPath := filepath.Join(t.TempDir(), "contract.json")

	code, out, errOut := runCLI(t, "export", "--contract", yamlPath, "--out", jsonPath)
	require.Zero(t, code, errOut)
	assert.Contains(t, out, "written to")

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc["contract_id"], "smart402:")
}

func TestJSONLDOutput(t *testing.T) {
	path := newTestContract(t)

	code, out, _ := runCLI(t, "jsonld", "--contract", path)
	require.Zero(t, code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "https://schema.org/", doc["@context"])
	assert.Equal(t, "SmartContract", doc["@type"])
}
