package usecase_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/deptgov-org/deptgov-cli/internal/domain"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

func TestExecuteProposal(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1700000000, 0)

	passed := func() *models.Proposal {
		p := activeProposal(now)
		p.EndTime = now.Add(-time.Minute)
		p.VotesFor = big.NewInt(5)
		p.VotesAgainst = big.NewInt(2)
		return p
	}

	t.Run("executes a passed proposal", func(t *testing.T) {
		proposals := new(MockProposalReader)
		writer := new(MockLedgerWriter)
		journal := new(MockReceiptJournal)

		proposals.On("GetProposal", ctx, uint64(7)).Return(passed(), nil)
		writer.On("ExecuteProposal", ctx, uint64(7)).Return(testReceipt(), nil)
		journal.On("Append", ctx, mock.AnythingOfType("usecase.JournalEntry")).Return(nil)

		uc := usecase.NewExecuteProposal(testRuntimeConfig(), proposals, writer, journal, fixedClock{now}, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.ExecuteProposalParams{ProposalID: 7})

		require.NoError(t, err)
		assert.True(t, result.Receipt.Success)
		writer.AssertExpectations(t)
	})

	t.Run("non-executable statuses fail locally", func(t *testing.T) {
		cases := map[string]*models.Proposal{
			"still active": activeProposal(now),
			"tie expired": func() *models.Proposal {
				p := passed()
				p.VotesAgainst = p.VotesFor
				return p
			}(),
			"already executed": func() *models.Proposal {
				p := passed()
				p.Executed = true
				return p
			}(),
		}

		for name, proposal := range cases {
			t.Run(name, func(t *testing.T) {
				proposals := new(MockProposalReader)
				writer := new(MockLedgerWriter)

				proposals.On("GetProposal", ctx, uint64(7)).Return(proposal, nil)

				uc := usecase.NewExecuteProposal(testRuntimeConfig(), proposals, writer, new(MockReceiptJournal), fixedClock{now}, &MockProgressSink{})
				_, err := uc.Run(ctx, usecase.ExecuteProposalParams{ProposalID: 7})

				var notActive *domain.ProposalNotActiveError
				require.ErrorAs(t, err, &notActive)
				writer.AssertNotCalled(t, "ExecuteProposal", mock.Anything, mock.Anything)
			})
		}
	})
}
