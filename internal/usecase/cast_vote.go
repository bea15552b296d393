package usecase

import (
	"context"
	"fmt"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/domain"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
)

// CastVoteParams contains parameters for casting a vote
type CastVoteParams struct {
	ProposalID uint64
	Support    bool
}

// CastVoteResult is the result of casting a vote
type CastVoteResult struct {
	Receipt *models.Receipt
	Vote    models.Vote
}

// CastVote is the use case for voting on an active proposal.
//
// Two caller-side guards run before anything is submitted: the proposal
// must derive Active, and the signer must not have voted yet. Both are
// advisory; the ledger enforces the same rules and remains the authority.
type CastVote struct {
	config    *config.RuntimeConfig
	proposals ProposalReader
	writer    LedgerWriter
	journal   ReceiptJournal
	clock     Clock
	sink      ProgressSink
}

// NewCastVote creates a new CastVote use case
func NewCastVote(cfg *config.RuntimeConfig, proposals ProposalReader, writer LedgerWriter, journal ReceiptJournal, clock Clock, sink ProgressSink) *CastVote {
	return &CastVote{
		config:    cfg,
		proposals: proposals,
		writer:    writer,
		journal:   journal,
		clock:     clock,
		sink:      sink,
	}
}

// Run executes the cast vote use case
func (uc *CastVote) Run(ctx context.Context, params CastVoteParams) (*CastVoteResult, error) {
	voter, err := uc.writer.Signer()
	if err != nil {
		return nil, err
	}

	proposal, err := uc.proposals.GetProposal(ctx, params.ProposalID)
	if err != nil {
		return nil, err
	}

	if status := proposal.Status(uc.clock.Now()); status != models.ProposalStatusActive {
		return nil, &domain.ProposalNotActiveError{ProposalID: params.ProposalID, Status: status}
	}

	voted, err := uc.proposals.HasVoted(ctx, params.ProposalID, voter)
	if err != nil {
		return nil, err
	}
	if voted {
		return nil, &domain.AlreadyVotedError{ProposalID: params.ProposalID, Voter: voter}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "submitting",
		Message: fmt.Sprintf("Casting vote on proposal %d", params.ProposalID),
		Spinner: true,
	})

	receipt, err := uc.writer.CastVote(ctx, params.ProposalID, params.Support)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Vote confirmed"})

	recordReceipt(ctx, uc.journal, uc.clock, uc.sink, "vote",
		fmt.Sprintf("proposal %d", params.ProposalID), receipt)

	return &CastVoteResult{
		Receipt: receipt,
		Vote:    models.Vote{ProposalID: params.ProposalID, Voter: voter, Support: params.Support},
	}, nil
}
