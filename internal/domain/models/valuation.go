package models

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// RateSnapshot is the process-local cached exchange rate. It is advisory
// only: a stale or fallback snapshot must never block a governance or
// transaction operation.
type RateSnapshot struct {
	Price     float64   `json:"price"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Age returns how old the snapshot is at the given instant.
func (s RateSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.FetchedAt)
}

// Valuation is a department budget expressed in both denominations.
type Valuation struct {
	Department common.Address `json:"department"`
	Name       string         `json:"name"`

	// Native amounts in the smallest native-asset unit
	Budget    *big.Int `json:"budget"`
	Spent     *big.Int `json:"spent"`
	Remaining *big.Int `json:"remaining"`

	// Fiat renderings of the native amounts, fixed 2-decimal strings
	BudgetFiat    string `json:"budgetFiat"`
	SpentFiat     string `json:"spentFiat"`
	RemainingFiat string `json:"remainingFiat"`

	Rate RateSnapshot `json:"rate"`
}
