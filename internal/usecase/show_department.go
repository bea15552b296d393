package usecase

import (
	"context"
	"math/big"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
)

// ShowDepartmentParams contains parameters for showing a department
type ShowDepartmentParams struct {
	// Ref is an 0x address or a (possibly partial) department name.
	Ref string
}

// ShowDepartmentResult is the result of showing a department
type ShowDepartmentResult struct {
	Department *models.Department
	Remaining  *big.Int
}

// ShowDepartment is the use case for displaying one department record
type ShowDepartment struct {
	config   *config.RuntimeConfig
	resolver DepartmentResolver
}

// NewShowDepartment creates a new ShowDepartment use case
func NewShowDepartment(cfg *config.RuntimeConfig, resolver DepartmentResolver) *ShowDepartment {
	return &ShowDepartment{
		config:   cfg,
		resolver: resolver,
	}
}

// Run executes the show department use case
func (uc *ShowDepartment) Run(ctx context.Context, params ShowDepartmentParams) (*ShowDepartmentResult, error) {
	dept, err := uc.resolver.ResolveDepartment(ctx, params.Ref)
	if err != nil {
		return nil, err
	}

	return &ShowDepartmentResult{
		Department: dept,
		Remaining:  dept.Remaining(),
	}, nil
}
