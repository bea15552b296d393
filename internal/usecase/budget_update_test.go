package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/deptgov-org/deptgov-cli/internal/domain"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

func TestValidateBudgetUpdate(t *testing.T) {
	ctx := context.Background()

	newValidator := func(dept *models.Department) (*usecase.ValidateBudgetUpdate, *MockDepartmentResolver) {
		resolver := new(MockDepartmentResolver)
		resolver.On("ResolveDepartment", ctx, mock.Anything).Return(dept, nil)
		uc := usecase.NewValidateBudgetUpdate(testRuntimeConfig(), resolver, usecase.NoLimitPolicy{})
		return uc, resolver
	}

	t.Run("boundary amounts", func(t *testing.T) {
		tests := []struct {
			name   string
			amount *big.Int
			valid  bool
		}{
			{"nil", nil, false},
			{"zero", big.NewInt(0), false},
			{"negative", big.NewInt(-1), false},
			{"one", big.NewInt(1), true},
			{"typical", big.NewInt(15000), true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc, _ := newValidator(educationDept())
				check, err := uc.Run(ctx, usecase.ValidateBudgetUpdateParams{
					DepartmentRef: "Education",
					NewAmount:     tt.amount,
				})

				require.NoError(t, err)
				assert.Equal(t, tt.valid, check.IsValid)
				if !tt.valid {
					assert.NotEmpty(t, check.Reason)
				}
			})
		}
	})

	t.Run("delta reports the change against the current budget", func(t *testing.T) {
		tests := []struct {
			name    string
			current int64
			amount  int64
			delta   int64
		}{
			{"increase", 300, 500, 200},
			{"decrease", 10000, 4000, -6000},
			{"unchanged", 10000, 10000, 0},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				dept := educationDept()
				dept.Budget = big.NewInt(tt.current)

				uc, _ := newValidator(dept)
				check, err := uc.Run(ctx, usecase.ValidateBudgetUpdateParams{
					DepartmentRef: "Education",
					NewAmount:     big.NewInt(tt.amount),
				})

				require.NoError(t, err)
				require.True(t, check.IsValid)
				require.NotNil(t, check.Delta)
				assert.Equal(t, tt.delta, check.Delta.Int64())
			})
		}
	})

	t.Run("invalid verdict carries no delta", func(t *testing.T) {
		uc, _ := newValidator(educationDept())
		check, err := uc.Run(ctx, usecase.ValidateBudgetUpdateParams{
			DepartmentRef: "Education",
			NewAmount:     big.NewInt(-5),
		})

		require.NoError(t, err)
		require.False(t, check.IsValid)
		assert.Nil(t, check.Delta)
	})

	t.Run("increase beyond current budget is accepted", func(t *testing.T) {
		dept := educationDept()
		huge := new(big.Int).Mul(dept.Budget, big.NewInt(1000))

		uc, _ := newValidator(dept)
		check, err := uc.Run(ctx, usecase.ValidateBudgetUpdateParams{
			DepartmentRef: "Education",
			NewAmount:     huge,
		})

		require.NoError(t, err)
		assert.True(t, check.IsValid)
		assert.Empty(t, check.Reason)
	})

	t.Run("custom policy verdict is reported not errored", func(t *testing.T) {
		resolver := new(MockDepartmentResolver)
		resolver.On("ResolveDepartment", ctx, mock.Anything).Return(educationDept(), nil)

		uc := usecase.NewValidateBudgetUpdate(testRuntimeConfig(), resolver, capPolicy{cap: big.NewInt(100)})
		check, err := uc.Run(ctx, usecase.ValidateBudgetUpdateParams{
			DepartmentRef: "Education",
			NewAmount:     big.NewInt(200),
		})

		require.NoError(t, err)
		assert.False(t, check.IsValid)
		assert.Equal(t, "exceeds cap", check.Reason)
	})
}

type capPolicy struct {
	cap *big.Int
}

func (p capPolicy) CheckBudget(_ *models.Department, newAmount *big.Int) (bool, string) {
	if newAmount.Cmp(p.cap) > 0 {
		return false, "exceeds cap"
	}
	return true, ""
}

func TestApplyBudgetUpdate(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{}

	passingCheck := func() *usecase.BudgetCheck {
		dept := educationDept()
		return &usecase.BudgetCheck{
			Department:    dept,
			NewAmount:     big.NewInt(20000),
			CurrentBudget: dept.Budget,
			IsValid:       true,
		}
	}

	t.Run("update plus audit record", func(t *testing.T) {
		writer := new(MockLedgerWriter)
		journal := new(MockReceiptJournal)

		check := passingCheck()
		writer.On("UpdateBudget", ctx, check.Department.Address, check.NewAmount).Return(testReceipt(), nil)
		writer.On("CreateTransaction", ctx, check.Department.Address,
			models.TransactionTypeBudgetUpdate, check.NewAmount, mock.AnythingOfType("string")).
			Return(&models.Receipt{TxHash: "0xaudit", Success: true}, nil)
		journal.On("Append", ctx, mock.AnythingOfType("usecase.JournalEntry")).Return(nil).Twice()

		uc := usecase.NewApplyBudgetUpdate(testRuntimeConfig(), writer, journal, clock, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.ApplyBudgetUpdateParams{Check: check})

		require.NoError(t, err)
		assert.Equal(t, "0xdeadbeef", result.UpdateReceipt.TxHash)
		assert.Equal(t, "0xaudit", result.AuditReceipt.TxHash)
		writer.AssertExpectations(t)
		journal.AssertExpectations(t)
	})

	t.Run("failed audit record reports partial apply", func(t *testing.T) {
		writer := new(MockLedgerWriter)
		journal := new(MockReceiptJournal)

		check := passingCheck()
		writer.On("UpdateBudget", ctx, check.Department.Address, check.NewAmount).Return(testReceipt(), nil)
		writer.On("CreateTransaction", ctx, check.Department.Address,
			models.TransactionTypeBudgetUpdate, check.NewAmount, mock.AnythingOfType("string")).
			Return(nil, domain.ErrConnectivity)
		journal.On("Append", ctx, mock.AnythingOfType("usecase.JournalEntry")).Return(nil)

		uc := usecase.NewApplyBudgetUpdate(testRuntimeConfig(), writer, journal, clock, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.ApplyBudgetUpdateParams{Check: check})

		assert.Nil(t, result)
		var partial *domain.PartialApplyError
		require.ErrorAs(t, err, &partial)
		// The successful mutation receipt rides along for reconciliation.
		assert.Equal(t, "0xdeadbeef", partial.Receipt.TxHash)
		assert.ErrorIs(t, err, domain.ErrConnectivity)
	})

	t.Run("failed update submits no audit record", func(t *testing.T) {
		writer := new(MockLedgerWriter)

		check := passingCheck()
		writer.On("UpdateBudget", ctx, check.Department.Address, check.NewAmount).Return(nil, domain.ErrRejected)

		uc := usecase.NewApplyBudgetUpdate(testRuntimeConfig(), writer, new(MockReceiptJournal), clock, &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.ApplyBudgetUpdateParams{Check: check})

		assert.ErrorIs(t, err, domain.ErrRejected)
		// A plain failure, not a partial apply: nothing committed.
		var partial *domain.PartialApplyError
		assert.False(t, errors.As(err, &partial))
		writer.AssertNotCalled(t, "CreateTransaction",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects a failed or missing verdict", func(t *testing.T) {
		uc := usecase.NewApplyBudgetUpdate(testRuntimeConfig(), new(MockLedgerWriter), new(MockReceiptJournal), clock, &MockProgressSink{})

		var invalid *domain.InvalidAmountError

		_, err := uc.Run(ctx, usecase.ApplyBudgetUpdateParams{})
		require.ErrorAs(t, err, &invalid)

		failed := passingCheck()
		failed.IsValid = false
		failed.Reason = "new budget must be greater than 0"
		_, err = uc.Run(ctx, usecase.ApplyBudgetUpdateParams{Check: failed})
		require.ErrorAs(t, err, &invalid)
		assert.Contains(t, invalid.Reason, "greater than 0")
	})
}
