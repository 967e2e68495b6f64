package output

import (
	"fmt"

	"github.com/whichchain/whichchain/pkg/identify"
)

// candidateList wraps the result set for JSON output.
type candidateList struct {
	Input      string               `json:"input"`
	Candidates []identify.Candidate `json:"candidates"`
}

// FormatCandidates renders an identification result set. JSON output is the
// candidate list verbatim; text output is a ranked table followed by the
// per-candidate reasoning.
func FormatCandidates(f *Formatter, input string, candidates []identify.Candidate) error {
	if f.IsJSON() {
		return f.Print(candidateList{Input: input, Candidates: candidates})
	}

	table := NewTable("CHAIN", "TYPE", "ENCODING", "CONFIDENCE", "NORMALIZED")
	for _, c := range candidates {
		table.AddRow(
			c.Chain,
			string(c.InputType),
			string(c.Encoding),
			fmt.Sprintf("%.2f", c.Confidence),
			c.Normalized,
		)
	}
	if err := table.Render(f.Writer()); err != nil {
		return err
	}

	if err := f.Println(); err != nil {
		return err
	}
	for _, c := range candidates {
		if err := f.Printf("%s: %s\n", c.Chain, c.Reasoning); err != nil {
			return err
		}
	}
	return nil
}
