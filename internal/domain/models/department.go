package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Department is a read-through projection of an on-chain department record.
// The registry contract owns the data; nothing here is mutated locally.
type Department struct {
	// Identification
	Address common.Address `json:"address"`
	Name    string         `json:"name"`
	Head    common.Address `json:"head"`
	LogoURI string         `json:"logoUri,omitempty"`

	// On-ledger figures, in the smallest native-asset unit (wei-equivalent)
	Budget *big.Int `json:"budget"`
	Spent  *big.Int `json:"spent"`

	Efficiency     uint64 `json:"efficiency"`
	ActiveProjects uint64 `json:"activeProjects"`
	IsActive       bool   `json:"isActive"`
}

// Remaining returns budget minus spent, floored at zero. A read can race a
// concurrent processing call, so the difference may be momentarily negative.
func (d *Department) Remaining() *big.Int {
	if d.Budget == nil || d.Spent == nil {
		return new(big.Int)
	}
	rem := new(big.Int).Sub(d.Budget, d.Spent)
	if rem.Sign() < 0 {
		return new(big.Int)
	}
	return rem
}
