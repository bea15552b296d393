package models

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ProposalStatus is derived from on-chain facts and wall-clock time. It is
// never stored: two evaluations with the same inputs must always agree.
type ProposalStatus string

const (
	ProposalStatusActive           ProposalStatus = "ACTIVE"
	ProposalStatusExpired          ProposalStatus = "EXPIRED"
	ProposalStatusPendingExecution ProposalStatus = "PENDING_EXECUTION"
	ProposalStatusExecuted         ProposalStatus = "EXECUTED"
)

// Proposal is a read-through projection of an on-chain budget-change
// proposal. Vote tallies only ever increase, and only before EndTime;
// Executed is set exactly once and is terminal.
type Proposal struct {
	ID         uint64         `json:"id"`
	Department common.Address `json:"department"`

	ProposedBudget *big.Int `json:"proposedBudget"`

	VotesFor     *big.Int `json:"votesFor"`
	VotesAgainst *big.Int `json:"votesAgainst"`

	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Executed  bool      `json:"executed"`
}

// Status derives the lifecycle state of the proposal at the given instant.
//
// The ordering of the checks matters: an executed proposal stays Executed
// forever, a proposal past its end with a tie or no votes at all is Expired,
// and PendingExecution is reachable only through a strict FOR majority.
func (p *Proposal) Status(now time.Time) ProposalStatus {
	if p.Executed {
		return ProposalStatusExecuted
	}
	if now.Before(p.EndTime) {
		return ProposalStatusActive
	}
	if p.totalVotes().Sign() > 0 && p.VotesFor.Cmp(p.VotesAgainst) > 0 {
		return ProposalStatusPendingExecution
	}
	return ProposalStatusExpired
}

// Executable reports whether an execute call would be accepted by the ledger
// at the given instant.
func (p *Proposal) Executable(now time.Time) bool {
	return p.Status(now) == ProposalStatusPendingExecution
}

// SecondsRemaining returns the raw number of seconds until voting closes,
// never negative. Formatting is left to the caller.
func (p *Proposal) SecondsRemaining(now time.Time) int64 {
	remaining := p.EndTime.Unix() - now.Unix()
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (p *Proposal) totalVotes() *big.Int {
	total := new(big.Int)
	if p.VotesFor != nil {
		total.Add(total, p.VotesFor)
	}
	if p.VotesAgainst != nil {
		total.Add(total, p.VotesAgainst)
	}
	return total
}
