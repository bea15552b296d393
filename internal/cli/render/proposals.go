package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// ProposalsRenderer renders proposal listings and detail views
type ProposalsRenderer struct {
	out    io.Writer
	symbol string
	json   bool
}

// NewProposalsRenderer creates a new proposals renderer
func NewProposalsRenderer(out io.Writer, symbol string, asJSON bool) *ProposalsRenderer {
	return &ProposalsRenderer{out: out, symbol: symbol, json: asJSON}
}

// RenderList renders the proposal list
func (r *ProposalsRenderer) RenderList(result *usecase.ProposalListResult) error {
	if r.json {
		return json.NewEncoder(r.out).Encode(result.Proposals)
	}

	if len(result.Proposals) == 0 {
		fmt.Fprintln(r.out, "No active proposals")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Department", "Proposed Budget", "For", "Against", "Status", "Time Left"})

	for _, view := range result.Proposals {
		p := view.Proposal
		t.AppendRow(table.Row{
			p.ID,
			addressStyle.Sprint(p.Department.Hex()),
			formatNative(p.ProposedBudget, r.symbol),
			p.VotesFor,
			p.VotesAgainst,
			statusStyle(view.Status).Sprint(view.Status),
			formatRemaining(view.SecondsRemaining),
		})
	}
	t.Render()
	return nil
}

// RenderDetail renders one proposal
func (r *ProposalsRenderer) RenderDetail(result *usecase.ShowProposalResult) error {
	if r.json {
		return json.NewEncoder(r.out).Encode(result)
	}

	p := result.View.Proposal
	fmt.Fprintf(r.out, "%s\n", headerStyle.Sprintf("Proposal %d", p.ID))
	fmt.Fprintf(r.out, "  Department:      %s\n", p.Department.Hex())
	fmt.Fprintf(r.out, "  Proposed budget: %s\n", formatNative(p.ProposedBudget, r.symbol))
	fmt.Fprintf(r.out, "  Votes for:       %s\n", result.Tally.For)
	fmt.Fprintf(r.out, "  Votes against:   %s\n", result.Tally.Against)
	fmt.Fprintf(r.out, "  Status:          %s\n", statusStyle(result.View.Status).Sprint(result.View.Status))
	fmt.Fprintf(r.out, "  Voting ends:     %s\n", p.EndTime.Format(time.RFC1123))
	if result.View.SecondsRemaining > 0 {
		fmt.Fprintf(r.out, "  Time left:       %s\n", formatRemaining(result.View.SecondsRemaining))
	}
	if result.SignerHasVoted {
		fmt.Fprintf(r.out, "  %s\n", faintStyle.Sprint("You have already voted on this proposal"))
	}
	return nil
}

func formatRemaining(seconds int64) string {
	if seconds <= 0 {
		return "-"
	}
	d := time.Duration(seconds) * time.Second
	return d.Truncate(time.Minute).String()
}
