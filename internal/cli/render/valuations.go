package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// ValuationsRenderer renders fiat valuations of department budgets
type ValuationsRenderer struct {
	out    io.Writer
	symbol string
	json   bool
}

// NewValuationsRenderer creates a new valuations renderer
func NewValuationsRenderer(out io.Writer, symbol string, asJSON bool) *ValuationsRenderer {
	return &ValuationsRenderer{out: out, symbol: symbol, json: asJSON}
}

// RenderList renders the valuation table and the rate it was priced with
func (r *ValuationsRenderer) RenderList(result *usecase.ValuationResult) error {
	if r.json {
		return json.NewEncoder(r.out).Encode(result)
	}

	if len(result.Valuations) == 0 {
		fmt.Fprintln(r.out, "No departments registered")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Budget", "Budget (USD)", "Spent", "Spent (USD)", "Remaining (USD)"})

	for _, v := range result.Valuations {
		t.AppendRow(table.Row{
			nameStyle.Sprint(v.Name),
			formatNative(v.Budget, r.symbol),
			fiatStyle.Sprintf("$%s", v.BudgetFiat),
			formatNative(v.Spent, r.symbol),
			fiatStyle.Sprintf("$%s", v.SpentFiat),
			fiatStyle.Sprintf("$%s", v.RemainingFiat),
		})
	}
	t.Render()

	fmt.Fprintf(r.out, "\nRate: $%.2f/%s via %s (fetched %s)\n",
		result.Rate.Price, r.symbol, result.Rate.Source,
		result.Rate.FetchedAt.Format(time.Kitchen))
	return nil
}
