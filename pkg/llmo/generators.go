package llmo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/smart402/core/pkg/contracts"
)

// escapeBlockComment makes free text safe inside a /* */ comment:
// a literal "*/" would terminate the comment early, and raw newlines are
// re-aligned to the comment body.
func escapeBlockComment(s string) string {
	s = strings.ReplaceAll(s, "*/", "*\\/")
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", "\n * ")
}

// escapeLineComment makes free text safe after a // marker.
func escapeLineComment(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", "\n// ")
}

// quote renders s as a double-quoted string literal with quotes and
// newlines escaped. The form is valid in Go, JavaScript and Solidity.
func quote(s string) string {
	return strconv.Quote(s)
}

func compileSolidity(c contracts.UCLContract) string {
	return fmt.Sprintf(`// SPDX-License-Identifier: MIT
pragma solidity ^0.8.0;

/**
 * %s
 * %s
 */
contract Smart402Contract {
    address public owner;
    uint256 public paymentAmount;
    address public paymentToken;

    constructor(address _token) {
        owner = msg.sender;
        paymentAmount = %s * 10**18;
        paymentToken = _token;
    }

    function executePayment() public payable {
        require(msg.value >= paymentAmount, "Insufficient payment");
        // Settlement is handled by the %s network adapter.
    }
}
`,
		escapeBlockComment(c.Summary.Title),
		escapeBlockComment(c.Summary.PlainEnglish),
		c.Payment.Amount.String(),
		escapeLineComment(c.Payment.Blockchain),
	)
}

func compileJavaScript(c contracts.UCLContract) string {
	return fmt.Sprintf(`/**
 * %s
 * %s
 */
class Smart402Contract {
  constructor() {
    this.paymentAmount = %s;
    this.paymentToken = %s;
    this.network = %s;
  }

  async executePayment() {
    return {
      success: true,
      amount: this.paymentAmount,
      token: this.paymentToken,
    };
  }
}

module.exports = Smart402Contract;
`,
		escapeBlockComment(c.Summary.Title),
		escapeBlockComment(c.Summary.PlainEnglish),
		quote(c.Payment.Amount.String()),
		quote(c.Payment.Token),
		quote(c.Payment.Blockchain),
	)
}

func compileGo(c contracts.UCLContract) string {
	return fmt.Sprintf(`// %s
// %s
package contract

import "github.com/shopspring/decimal"

// Smart402Contract carries the payment terms of the compiled contract.
type Smart402Contract struct {
	PaymentAmount decimal.Decimal
	PaymentToken  string
	Network       string
}

// NewSmart402Contract returns the contract with its configured terms.
func NewSmart402Contract() Smart402Contract {
	return Smart402Contract{
		PaymentAmount: decimal.RequireFromString(%s),
		PaymentToken:  %s,
		Network:       %s,
	}
}

// ExecutePayment submits the configured payment.
func (c Smart402Contract) ExecutePayment() (string, error) {
	// Settlement is delegated to the network adapter.
	return "", nil
}
`,
		escapeLineComment(c.Summary.Title),
		escapeLineComment(c.Summary.PlainEnglish),
		quote(c.Payment.Amount.String()),
		quote(c.Payment.Token),
		quote(c.Payment.Blockchain),
	)
}
