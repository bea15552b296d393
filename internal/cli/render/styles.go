package render

import (
	"fmt"
	"math/big"

	"github.com/fatih/color"

	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
)

// Shared color styles for table output
var (
	headerStyle    = color.New(color.Bold, color.FgHiWhite)
	addressStyle   = color.New(color.Faint)
	nameStyle      = color.New(color.FgWhite, color.Bold)
	activeStyle    = color.New(color.FgGreen)
	inactiveStyle  = color.New(color.FgRed)
	pendingStyle   = color.New(color.FgYellow)
	processedStyle = color.New(color.FgGreen)
	fiatStyle      = color.New(color.FgCyan)
	faintStyle     = color.New(color.Faint)
)

// formatNative renders a smallest-unit amount as a whole-token figure with
// the network symbol.
func formatNative(amount *big.Int, symbol string) string {
	if amount == nil {
		return "-"
	}
	tokens := new(big.Float).Quo(new(big.Float).SetInt(amount), big.NewFloat(1e18))
	return fmt.Sprintf("%s %s", tokens.Text('f', 4), symbol)
}

func statusStyle(status models.ProposalStatus) *color.Color {
	switch status {
	case models.ProposalStatusActive:
		return color.New(color.FgGreen)
	case models.ProposalStatusPendingExecution:
		return color.New(color.FgYellow)
	case models.ProposalStatusExecuted:
		return color.New(color.FgCyan)
	default:
		return color.New(color.Faint)
	}
}
