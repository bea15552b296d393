package usecase_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/deptgov-org/deptgov-cli/internal/domain"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

func pendingTransaction() *models.Transaction {
	return &models.Transaction{
		ID:          3,
		Department:  common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Type:        models.TransactionTypeExpense,
		Amount:      big.NewInt(750),
		Description: "road repair",
		Status:      models.TransactionStatusPending,
	}
}

func TestProcessTransaction(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{}

	t.Run("processes a pending transaction", func(t *testing.T) {
		transactions := new(MockTransactionReader)
		writer := new(MockLedgerWriter)
		journal := new(MockReceiptJournal)

		transactions.On("GetTransaction", ctx, uint64(3)).Return(pendingTransaction(), nil)
		writer.On("ProcessTransaction", ctx, uint64(3), "approved").Return(testReceipt(), nil)
		journal.On("Append", ctx, mock.AnythingOfType("usecase.JournalEntry")).Return(nil)

		uc := usecase.NewProcessTransaction(testRuntimeConfig(), transactions, writer, journal, clock, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.ProcessTransactionParams{TransactionID: 3, Note: "approved"})

		require.NoError(t, err)
		assert.True(t, result.Receipt.Success)
		assert.Equal(t, uint64(3), result.Transaction.ID)
		writer.AssertExpectations(t)
	})

	t.Run("already processed fails the precondition", func(t *testing.T) {
		transactions := new(MockTransactionReader)
		writer := new(MockLedgerWriter)

		processed := pendingTransaction()
		processed.Status = models.TransactionStatusProcessed
		transactions.On("GetTransaction", ctx, uint64(3)).Return(processed, nil)

		uc := usecase.NewProcessTransaction(testRuntimeConfig(), transactions, writer, new(MockReceiptJournal), clock, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.ProcessTransactionParams{TransactionID: 3})

		assert.Nil(t, result)
		var notPending *domain.NotPendingError
		require.ErrorAs(t, err, &notPending)
		assert.Equal(t, uint64(3), notPending.TransactionID)
		assert.Equal(t, models.TransactionStatusProcessed, notPending.Status)

		writer.AssertNotCalled(t, "ProcessTransaction", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown transaction id", func(t *testing.T) {
		transactions := new(MockTransactionReader)
		transactions.On("GetTransaction", ctx, uint64(99)).Return(nil, domain.ErrNotFound)

		uc := usecase.NewProcessTransaction(testRuntimeConfig(), transactions, new(MockLedgerWriter), new(MockReceiptJournal), clock, &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.ProcessTransactionParams{TransactionID: 99})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("race with another processor surfaces the ledger verdict", func(t *testing.T) {
		transactions := new(MockTransactionReader)
		writer := new(MockLedgerWriter)

		transactions.On("GetTransaction", ctx, uint64(3)).Return(pendingTransaction(), nil)
		writer.On("ProcessTransaction", ctx, uint64(3), "").Return(nil, domain.ErrRejected)

		uc := usecase.NewProcessTransaction(testRuntimeConfig(), transactions, writer, new(MockReceiptJournal), clock, &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.ProcessTransactionParams{TransactionID: 3})

		assert.ErrorIs(t, err, domain.ErrRejected)
	})
}
