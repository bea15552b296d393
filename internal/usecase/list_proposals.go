package usecase

import (
	"context"
	"sort"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
)

// ProposalView pairs an on-chain proposal with its derived lifecycle state
// at the instant the list was taken.
type ProposalView struct {
	Proposal         *models.Proposal
	Status           models.ProposalStatus
	SecondsRemaining int64
}

// ListProposalsParams contains parameters for listing proposals
type ListProposalsParams struct {
	// ExecutableOnly keeps only proposals an execute call would succeed on.
	ExecutableOnly bool
}

// ProposalListResult is the result of listing proposals
type ProposalListResult struct {
	Proposals []ProposalView
}

// ListProposals is the use case for listing active proposals
type ListProposals struct {
	config    *config.RuntimeConfig
	proposals ProposalReader
	clock     Clock
	sink      ProgressSink
}

// NewListProposals creates a new ListProposals use case
func NewListProposals(cfg *config.RuntimeConfig, proposals ProposalReader, clock Clock, sink ProgressSink) *ListProposals {
	return &ListProposals{
		config:    cfg,
		proposals: proposals,
		clock:     clock,
		sink:      sink,
	}
}

// Run executes the list proposals use case
func (uc *ListProposals) Run(ctx context.Context, params ListProposalsParams) (*ProposalListResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading proposals",
		Spinner: true,
	})

	proposals, err := uc.proposals.ListActiveProposals(ctx)
	if err != nil {
		return nil, err
	}

	// One instant for the whole listing so derived statuses are consistent
	// with each other.
	now := uc.clock.Now()

	views := make([]ProposalView, 0, len(proposals))
	for _, p := range proposals {
		if params.ExecutableOnly && !p.Executable(now) {
			continue
		}
		views = append(views, ProposalView{
			Proposal:         p,
			Status:           p.Status(now),
			SecondsRemaining: p.SecondsRemaining(now),
		})
	}

	sort.Slice(views, func(i, j int) bool {
		return views[i].Proposal.ID < views[j].Proposal.ID
	})

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Proposals loaded"})

	return &ProposalListResult{Proposals: views}, nil
}
