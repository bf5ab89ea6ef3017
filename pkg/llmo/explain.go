package llmo

import (
	"fmt"
	"strings"

	"github.com/smart402/core/pkg/contracts"
)

// Explain renders a deterministic human-readable narrative of the
// contract. Section order is fixed: Title, Plain English, Contract
// Details, Payment Terms, Conditions (the last only when required
// conditions exist). The same contract always yields byte-identical text.
func Explain(c contracts.UCLContract) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", c.Summary.Title)
	fmt.Fprintf(&b, "%s\n\n", c.Summary.PlainEnglish)

	b.WriteString("## Contract Details\n\n")
	fmt.Fprintf(&b, "- **Type**: %s\n", c.Metadata.ContractType)
	fmt.Fprintf(&b, "- **Category**: %s\n", c.Metadata.Category)
	fmt.Fprintf(&b, "- **Effective Date**: %s\n", c.Metadata.Dates.Effective)
	fmt.Fprintf(&b, "- **Duration**: %s\n\n", c.Metadata.Dates.Duration)

	b.WriteString("## Payment Terms\n\n")
	fmt.Fprintf(&b, "- **Amount**: %s %s\n", c.Payment.Amount.String(), c.Payment.Currency)
	fmt.Fprintf(&b, "- **Token**: %s\n", c.Payment.Token)
	fmt.Fprintf(&b, "- **Network**: %s\n", c.Payment.Blockchain)
	fmt.Fprintf(&b, "- **Frequency**: %s\n\n", c.Payment.Frequency)

	if len(c.Conditions.Required) > 0 {
		b.WriteString("## Conditions\n\n")
		for _, cond := range c.Conditions.Required {
			fmt.Fprintf(&b, "- %s\n", cond.Description)
		}
		b.WriteString("\n")
	}

	return b.String()
}
