package usecase_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/deptgov-org/deptgov-cli/internal/domain"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

func TestAddSuperAdmin(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{}
	account := common.HexToAddress("0x4444444444444444444444444444444444444444")

	t.Run("grants admin rights", func(t *testing.T) {
		admin := new(MockAdminReader)
		writer := new(MockLedgerWriter)
		journal := new(MockReceiptJournal)

		admin.On("IsSuperAdmin", ctx, account).Return(false, nil)
		writer.On("AddSuperAdmin", ctx, account).Return(testReceipt(), nil)
		journal.On("Append", ctx, mock.AnythingOfType("usecase.JournalEntry")).Return(nil)

		uc := usecase.NewAddSuperAdmin(testRuntimeConfig(), admin, writer, journal, clock, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.AddSuperAdminParams{Account: account})

		require.NoError(t, err)
		assert.Equal(t, account, result.Account)
		assert.True(t, result.Receipt.Success)
		writer.AssertExpectations(t)
		journal.AssertExpectations(t)
	})

	t.Run("existing admin is not resubmitted", func(t *testing.T) {
		admin := new(MockAdminReader)
		writer := new(MockLedgerWriter)

		admin.On("IsSuperAdmin", ctx, account).Return(true, nil)

		uc := usecase.NewAddSuperAdmin(testRuntimeConfig(), admin, writer, new(MockReceiptJournal), clock, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.AddSuperAdminParams{Account: account})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrRejected)
		writer.AssertNotCalled(t, "AddSuperAdmin", mock.Anything, mock.Anything)
	})

	t.Run("zero address is rejected locally", func(t *testing.T) {
		admin := new(MockAdminReader)

		uc := usecase.NewAddSuperAdmin(testRuntimeConfig(), admin, new(MockLedgerWriter), new(MockReceiptJournal), clock, &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.AddSuperAdminParams{})

		var missing *domain.MissingFieldError
		require.ErrorAs(t, err, &missing)
		admin.AssertNotCalled(t, "IsSuperAdmin", mock.Anything, mock.Anything)
	})
}
