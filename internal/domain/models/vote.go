package models

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Vote is the (proposal, voter) pair recorded by the DAO contract. A voter
// casts at most one vote per proposal, irrevocably.
type Vote struct {
	ProposalID uint64         `json:"proposalId"`
	Voter      common.Address `json:"voter"`
	Support    bool           `json:"support"`
}

// Tally is the aggregate FOR/AGAINST vote weight for one proposal. Only the
// ledger's own counts are authoritative; no local aggregation is trusted.
type Tally struct {
	For     *big.Int `json:"for"`
	Against *big.Int `json:"against"`
}
