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

func educationDept() *models.Department {
	return &models.Department{
		Address: common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Name:    "Education",
		Budget:  big.NewInt(10000),
		Spent:   big.NewInt(2500),
	}
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{}

	t.Run("records an expense", func(t *testing.T) {
		resolver := new(MockDepartmentResolver)
		writer := new(MockLedgerWriter)
		journal := new(MockReceiptJournal)

		dept := educationDept()
		resolver.On("ResolveDepartment", ctx, "Education").Return(dept, nil)
		writer.On("CreateTransaction", ctx, dept.Address, models.TransactionTypeExpense, big.NewInt(500), "textbooks").
			Return(testReceipt(), nil)
		journal.On("Append", ctx, mock.AnythingOfType("usecase.JournalEntry")).Return(nil)

		uc := usecase.NewCreateTransaction(testRuntimeConfig(), resolver, writer, journal, clock, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.CreateTransactionParams{
			DepartmentRef: "Education",
			Type:          models.TransactionTypeExpense,
			Amount:        big.NewInt(500),
			Description:   "textbooks",
		})

		require.NoError(t, err)
		assert.Equal(t, dept, result.Department)
		assert.True(t, result.Receipt.Success)
		writer.AssertExpectations(t)
	})

	t.Run("invalid amounts fail before any ledger call", func(t *testing.T) {
		amounts := map[string]*big.Int{
			"nil":      nil,
			"zero":     big.NewInt(0),
			"negative": big.NewInt(-100),
		}

		for name, amount := range amounts {
			t.Run(name, func(t *testing.T) {
				resolver := new(MockDepartmentResolver)
				writer := new(MockLedgerWriter)

				uc := usecase.NewCreateTransaction(testRuntimeConfig(), resolver, writer, new(MockReceiptJournal), clock, &MockProgressSink{})
				result, err := uc.Run(ctx, usecase.CreateTransactionParams{
					DepartmentRef: "Education",
					Type:          models.TransactionTypeExpense,
					Amount:        amount,
					Description:   "textbooks",
				})

				assert.Nil(t, result)
				var invalid *domain.InvalidAmountError
				require.ErrorAs(t, err, &invalid)

				resolver.AssertNotCalled(t, "ResolveDepartment", mock.Anything, mock.Anything)
				writer.AssertNotCalled(t, "CreateTransaction",
					mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("missing description is rejected", func(t *testing.T) {
		writer := new(MockLedgerWriter)

		uc := usecase.NewCreateTransaction(testRuntimeConfig(), new(MockDepartmentResolver), writer, new(MockReceiptJournal), clock, &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.CreateTransactionParams{
			DepartmentRef: "Education",
			Type:          models.TransactionTypeExpense,
			Amount:        big.NewInt(500),
		})

		var missing *domain.MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "transaction description", missing.Field)
		writer.AssertNotCalled(t, "CreateTransaction",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ledger rejection is passed through", func(t *testing.T) {
		resolver := new(MockDepartmentResolver)
		writer := new(MockLedgerWriter)

		dept := educationDept()
		resolver.On("ResolveDepartment", ctx, "Education").Return(dept, nil)
		writer.On("CreateTransaction", ctx, dept.Address, models.TransactionTypeProjectFunding, big.NewInt(500), "lab").
			Return(nil, domain.ErrRejected)

		uc := usecase.NewCreateTransaction(testRuntimeConfig(), resolver, writer, new(MockReceiptJournal), clock, &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.CreateTransactionParams{
			DepartmentRef: "Education",
			Type:          models.TransactionTypeProjectFunding,
			Amount:        big.NewInt(500),
			Description:   "lab",
		})

		assert.ErrorIs(t, err, domain.ErrRejected)
	})
}
