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
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

func TestRegisterDepartment(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{}
	signer := common.HexToAddress("0x2222222222222222222222222222222222222222")
	deptAddr := common.HexToAddress("0x3333333333333333333333333333333333333333")

	params := func() usecase.RegisterDepartmentParams {
		return usecase.RegisterDepartmentParams{
			Address:       deptAddr,
			Name:          "Health",
			InitialBudget: big.NewInt(5000),
		}
	}

	t.Run("registers with head defaulting to the department address", func(t *testing.T) {
		admin := new(MockAdminReader)
		writer := new(MockLedgerWriter)
		journal := new(MockReceiptJournal)

		writer.On("Signer").Return(signer, nil)
		admin.On("IsSuperAdmin", ctx, signer).Return(true, nil)
		writer.On("RegisterDepartment", ctx, usecase.RegisterDepartmentCall{
			Address:       deptAddr,
			Name:          "Health",
			InitialBudget: big.NewInt(5000),
			Head:          deptAddr,
		}).Return(testReceipt(), nil)
		journal.On("Append", ctx, mock.AnythingOfType("usecase.JournalEntry")).Return(nil)

		uc := usecase.NewRegisterDepartment(testRuntimeConfig(), admin, writer, journal, clock, &MockProgressSink{})
		result, err := uc.Run(ctx, params())

		require.NoError(t, err)
		assert.True(t, result.Receipt.Success)
		writer.AssertExpectations(t)
	})

	t.Run("non-admin signer is rejected before submission", func(t *testing.T) {
		admin := new(MockAdminReader)
		writer := new(MockLedgerWriter)

		writer.On("Signer").Return(signer, nil)
		admin.On("IsSuperAdmin", ctx, signer).Return(false, nil)

		uc := usecase.NewRegisterDepartment(testRuntimeConfig(), admin, writer, new(MockReceiptJournal), clock, &MockProgressSink{})
		result, err := uc.Run(ctx, params())

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrRejected)
		writer.AssertNotCalled(t, "RegisterDepartment", mock.Anything, mock.Anything)
	})

	t.Run("missing fields fail before any ledger call", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*usecase.RegisterDepartmentParams)
			field  string
		}{
			{"name", func(p *usecase.RegisterDepartmentParams) { p.Name = "" }, "department name"},
			{"address", func(p *usecase.RegisterDepartmentParams) { p.Address = common.Address{} }, "department address"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				admin := new(MockAdminReader)
				writer := new(MockLedgerWriter)

				p := params()
				tt.mutate(&p)

				uc := usecase.NewRegisterDepartment(testRuntimeConfig(), admin, writer, new(MockReceiptJournal), clock, &MockProgressSink{})
				_, err := uc.Run(ctx, p)

				var missing *domain.MissingFieldError
				require.ErrorAs(t, err, &missing)
				assert.Equal(t, tt.field, missing.Field)
				writer.AssertNotCalled(t, "Signer")
				writer.AssertNotCalled(t, "RegisterDepartment", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("negative initial budget is rejected", func(t *testing.T) {
		p := params()
		p.InitialBudget = big.NewInt(-1)

		uc := usecase.NewRegisterDepartment(testRuntimeConfig(), new(MockAdminReader), new(MockLedgerWriter), new(MockReceiptJournal), clock, &MockProgressSink{})
		_, err := uc.Run(ctx, p)

		var invalid *domain.InvalidAmountError
		require.ErrorAs(t, err, &invalid)
	})
}
