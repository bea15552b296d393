package usecase_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/deptgov-org/deptgov-cli/internal/domain"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

func TestValueDepartments(t *testing.T) {
	ctx := context.Background()
	snapshot := models.RateSnapshot{Price: 2000, Source: "coingecko", FetchedAt: time.Unix(1700000000, 0)}

	depts := []*models.Department{
		{Address: common.HexToAddress("0x1111111111111111111111111111111111111111"), Name: "Education", Budget: big.NewInt(100), Spent: big.NewInt(40)},
		{Address: common.HexToAddress("0x2222222222222222222222222222222222222222"), Name: "Health", Budget: big.NewInt(200), Spent: big.NewInt(50)},
		{Address: common.HexToAddress("0x3333333333333333333333333333333333333333"), Name: "Transport", Budget: big.NewInt(300), Spent: big.NewInt(60)},
	}

	t.Run("values the whole fleet with one rate snapshot", func(t *testing.T) {
		departments := new(MockDepartmentReader)
		rates := new(MockRateResolver)

		departments.On("ListDepartments", ctx).Return(depts, nil)
		for _, dept := range depts {
			departments.On("GetDepartment", mock.Anything, dept.Address).Return(dept, nil)
		}
		rates.On("GetRate", ctx).Return(snapshot).Once()
		rates.On("ConvertToFiat", mock.Anything, mock.AnythingOfType("*big.Int")).Return("1,234.00")

		uc := usecase.NewValueDepartments(testRuntimeConfig(), departments, new(MockDepartmentResolver), rates, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.ValueDepartmentsParams{})

		require.NoError(t, err)
		require.Len(t, result.Valuations, 3)
		assert.Equal(t, snapshot, result.Rate)

		// Sorted by name, each row carrying the shared snapshot.
		assert.Equal(t, "Education", result.Valuations[0].Name)
		assert.Equal(t, "Health", result.Valuations[1].Name)
		assert.Equal(t, "Transport", result.Valuations[2].Name)
		for _, v := range result.Valuations {
			assert.Equal(t, snapshot, v.Rate)
			assert.Equal(t, "1,234.00", v.BudgetFiat)
		}

		assert.Equal(t, big.NewInt(60), result.Valuations[0].Remaining)

		rates.AssertExpectations(t)
		departments.AssertExpectations(t)
	})

	t.Run("values one department by reference", func(t *testing.T) {
		departments := new(MockDepartmentReader)
		resolver := new(MockDepartmentResolver)
		rates := new(MockRateResolver)

		resolver.On("ResolveDepartment", ctx, "Health").Return(depts[1], nil)
		departments.On("GetDepartment", mock.Anything, depts[1].Address).Return(depts[1], nil)
		rates.On("GetRate", ctx).Return(snapshot)
		rates.On("ConvertToFiat", mock.Anything, mock.AnythingOfType("*big.Int")).Return("0.00")

		uc := usecase.NewValueDepartments(testRuntimeConfig(), departments, resolver, rates, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.ValueDepartmentsParams{Ref: "Health"})

		require.NoError(t, err)
		require.Len(t, result.Valuations, 1)
		assert.Equal(t, "Health", result.Valuations[0].Name)

		departments.AssertNotCalled(t, "ListDepartments", mock.Anything)
	})

	t.Run("one failing read fails the fleet valuation", func(t *testing.T) {
		departments := new(MockDepartmentReader)
		rates := new(MockRateResolver)

		departments.On("ListDepartments", ctx).Return(depts, nil)
		departments.On("GetDepartment", mock.Anything, depts[0].Address).Return(depts[0], nil).Maybe()
		departments.On("GetDepartment", mock.Anything, depts[1].Address).Return(nil, domain.ErrConnectivity)
		departments.On("GetDepartment", mock.Anything, depts[2].Address).Return(depts[2], nil).Maybe()
		rates.On("GetRate", ctx).Return(snapshot)
		rates.On("ConvertToFiat", mock.Anything, mock.AnythingOfType("*big.Int")).Return("0.00").Maybe()

		uc := usecase.NewValueDepartments(testRuntimeConfig(), departments, new(MockDepartmentResolver), rates, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.ValueDepartmentsParams{})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrConnectivity)
	})
}
