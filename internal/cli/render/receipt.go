package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
)

// ReceiptRenderer prints confirmation receipts for mutating calls
type ReceiptRenderer struct {
	out     io.Writer
	network *config.Network
	json    bool
}

// NewReceiptRenderer creates a new receipt renderer
func NewReceiptRenderer(out io.Writer, network *config.Network, asJSON bool) *ReceiptRenderer {
	return &ReceiptRenderer{out: out, network: network, json: asJSON}
}

// Render prints one receipt with an explorer link when the network has one
func (r *ReceiptRenderer) Render(message string, receipt *models.Receipt) error {
	if r.json {
		return json.NewEncoder(r.out).Encode(receipt)
	}

	fmt.Fprintf(r.out, "%s %s\n", activeStyle.Sprint("✓"), message)
	fmt.Fprintf(r.out, "  Tx:    %s\n", receipt.TxHash)
	fmt.Fprintf(r.out, "  Block: %d (gas used %d)\n", receipt.BlockNumber, receipt.GasUsed)
	if r.network != nil && r.network.ExplorerURL != "" {
		fmt.Fprintf(r.out, "  %s\n", faintStyle.Sprintf("%s/tx/%s", r.network.ExplorerURL, receipt.TxHash))
	}
	return nil
}
