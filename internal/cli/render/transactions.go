package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// TransactionsRenderer renders transaction listings
type TransactionsRenderer struct {
	out    io.Writer
	symbol string
	json   bool
}

// NewTransactionsRenderer creates a new transactions renderer
func NewTransactionsRenderer(out io.Writer, symbol string, asJSON bool) *TransactionsRenderer {
	return &TransactionsRenderer{out: out, symbol: symbol, json: asJSON}
}

// RenderList renders the transaction list
func (r *TransactionsRenderer) RenderList(result *usecase.TransactionListResult) error {
	if r.json {
		return json.NewEncoder(r.out).Encode(result.Transactions)
	}

	if len(result.Transactions) == 0 {
		fmt.Fprintln(r.out, "No transactions found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Department", "Type", "Amount", "Description", "Status"})

	for _, tx := range result.Transactions {
		status := processedStyle.Sprint(tx.Status)
		if tx.Status == models.TransactionStatusPending {
			status = pendingStyle.Sprint(tx.Status)
		}
		t.AppendRow(table.Row{
			tx.ID,
			addressStyle.Sprint(tx.Department.Hex()),
			tx.Type,
			formatNative(tx.Amount, r.symbol),
			tx.Description,
			status,
		})
	}
	t.Render()

	fmt.Fprintf(r.out, "\n%d transactions, %d pending\n", len(result.Transactions), result.Pending)
	return nil
}
