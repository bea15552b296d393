package usecase

import (
	"context"
	"fmt"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/domain"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
)

// ExecuteProposalParams contains parameters for executing a proposal
type ExecuteProposalParams struct {
	ProposalID uint64
}

// ExecuteProposalResult is the result of executing a proposal
type ExecuteProposalResult struct {
	Receipt *models.Receipt
}

// ExecuteProposal is the use case for executing a passed proposal. Only a
// proposal whose derived status is PendingExecution is submitted; the
// ledger re-checks the same condition on its own clock.
type ExecuteProposal struct {
	config    *config.RuntimeConfig
	proposals ProposalReader
	writer    LedgerWriter
	journal   ReceiptJournal
	clock     Clock
	sink      ProgressSink
}

// NewExecuteProposal creates a new ExecuteProposal use case
func NewExecuteProposal(cfg *config.RuntimeConfig, proposals ProposalReader, writer LedgerWriter, journal ReceiptJournal, clock Clock, sink ProgressSink) *ExecuteProposal {
	return &ExecuteProposal{
		config:    cfg,
		proposals: proposals,
		writer:    writer,
		journal:   journal,
		clock:     clock,
		sink:      sink,
	}
}

// Run executes the execute proposal use case
func (uc *ExecuteProposal) Run(ctx context.Context, params ExecuteProposalParams) (*ExecuteProposalResult, error) {
	proposal, err := uc.proposals.GetProposal(ctx, params.ProposalID)
	if err != nil {
		return nil, err
	}

	if status := proposal.Status(uc.clock.Now()); status != models.ProposalStatusPendingExecution {
		return nil, &domain.ProposalNotActiveError{ProposalID: params.ProposalID, Status: status}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "submitting",
		Message: fmt.Sprintf("Executing proposal %d", params.ProposalID),
		Spinner: true,
	})

	receipt, err := uc.writer.ExecuteProposal(ctx, params.ProposalID)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Proposal executed"})

	recordReceipt(ctx, uc.journal, uc.clock, uc.sink, "execute_proposal",
		fmt.Sprintf("proposal %d", params.ProposalID), receipt)

	return &ExecuteProposalResult{Receipt: receipt}, nil
}
