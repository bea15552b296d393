package usecase

import (
	"context"
	"math/big"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
)

// UpdatePolicy decides whether a proposed budget amount is acceptable for a
// department. The default policy accepts any positive amount: budget
// increases are a legitimate governance action and there is no on-chain
// ceiling to mirror. Deployments that want a cap plug in their own policy.
type UpdatePolicy interface {
	CheckBudget(department *models.Department, newAmount *big.Int) (ok bool, reason string)
}

// NoLimitPolicy accepts every positive amount.
type NoLimitPolicy struct{}

func (NoLimitPolicy) CheckBudget(*models.Department, *big.Int) (bool, string) {
	return true, ""
}

// ValidateBudgetUpdateParams contains parameters for validating a budget update
type ValidateBudgetUpdateParams struct {
	DepartmentRef string
	NewAmount     *big.Int
}

// BudgetCheck is the validation verdict. Validation never mutates anything;
// an invalid amount is a verdict, not an error. Delta is NewAmount minus
// CurrentBudget, negative for a reduction, and set only on a valid verdict.
type BudgetCheck struct {
	Department    *models.Department
	NewAmount     *big.Int
	CurrentBudget *big.Int
	Delta         *big.Int
	IsValid       bool
	Reason        string
}

// ValidateBudgetUpdate is the first half of the budget-update pipeline. It
// re-reads the department so the verdict is made against fresh ledger
// figures, then applies pure checks.
type ValidateBudgetUpdate struct {
	config   *config.RuntimeConfig
	resolver DepartmentResolver
	policy   UpdatePolicy
}

// NewValidateBudgetUpdate creates a new ValidateBudgetUpdate use case
func NewValidateBudgetUpdate(cfg *config.RuntimeConfig, resolver DepartmentResolver, policy UpdatePolicy) *ValidateBudgetUpdate {
	return &ValidateBudgetUpdate{
		config:   cfg,
		resolver: resolver,
		policy:   policy,
	}
}

// Run executes the validate budget update use case
func (uc *ValidateBudgetUpdate) Run(ctx context.Context, params ValidateBudgetUpdateParams) (*BudgetCheck, error) {
	dept, err := uc.resolver.ResolveDepartment(ctx, params.DepartmentRef)
	if err != nil {
		return nil, err
	}

	check := &BudgetCheck{
		Department:    dept,
		NewAmount:     params.NewAmount,
		CurrentBudget: dept.Budget,
	}

	if params.NewAmount == nil || params.NewAmount.Sign() <= 0 {
		check.Reason = "new budget must be greater than 0"
		return check, nil
	}

	if ok, reason := uc.policy.CheckBudget(dept, params.NewAmount); !ok {
		check.Reason = reason
		return check, nil
	}

	check.IsValid = true
	check.Delta = new(big.Int).Sub(params.NewAmount, dept.Budget)
	return check, nil
}
