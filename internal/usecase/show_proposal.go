package usecase

import (
	"context"
	"errors"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/domain"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
)

// ShowProposalParams contains parameters for showing a proposal
type ShowProposalParams struct {
	ProposalID uint64
}

// ShowProposalResult is the result of showing a proposal
type ShowProposalResult struct {
	View ProposalView
	// Tally mirrors the on-chain counters at read time. It is provisional
	// while the proposal is active.
	Tally models.Tally
	// SignerHasVoted reports whether the configured signer already voted.
	// False when no signer is configured.
	SignerHasVoted bool
}

// ShowProposal is the use case for displaying one proposal
type ShowProposal struct {
	config    *config.RuntimeConfig
	proposals ProposalReader
	writer    LedgerWriter
	clock     Clock
}

// NewShowProposal creates a new ShowProposal use case
func NewShowProposal(cfg *config.RuntimeConfig, proposals ProposalReader, writer LedgerWriter, clock Clock) *ShowProposal {
	return &ShowProposal{
		config:    cfg,
		proposals: proposals,
		writer:    writer,
		clock:     clock,
	}
}

// Run executes the show proposal use case
func (uc *ShowProposal) Run(ctx context.Context, params ShowProposalParams) (*ShowProposalResult, error) {
	proposal, err := uc.proposals.GetProposal(ctx, params.ProposalID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	result := &ShowProposalResult{
		View: ProposalView{
			Proposal:         proposal,
			Status:           proposal.Status(now),
			SecondsRemaining: proposal.SecondsRemaining(now),
		},
		Tally: models.Tally{For: proposal.VotesFor, Against: proposal.VotesAgainst},
	}

	signer, err := uc.writer.Signer()
	if err != nil {
		if errors.Is(err, domain.ErrNoSigner) {
			return result, nil
		}
		return nil, err
	}

	voted, err := uc.proposals.HasVoted(ctx, params.ProposalID, signer)
	if err != nil {
		return nil, err
	}
	result.SignerHasVoted = voted

	return result, nil
}
