package usecase

import (
	"context"
	"math/big"
	"sort"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
)

// ListDepartmentsParams contains parameters for listing departments
type ListDepartmentsParams struct {
	ActiveOnly bool
}

// DepartmentSummary aggregates fleet-wide figures for the list footer.
type DepartmentSummary struct {
	Total       int
	Active      int
	TotalBudget *big.Int
	TotalSpent  *big.Int
}

// DepartmentListResult is the result of listing departments
type DepartmentListResult struct {
	Departments []*models.Department
	Summary     DepartmentSummary
}

// ListDepartments is the use case for listing registered departments
type ListDepartments struct {
	config      *config.RuntimeConfig
	departments DepartmentReader
	sink        ProgressSink
}

// NewListDepartments creates a new ListDepartments use case
func NewListDepartments(cfg *config.RuntimeConfig, departments DepartmentReader, sink ProgressSink) *ListDepartments {
	return &ListDepartments{
		config:      cfg,
		departments: departments,
		sink:        sink,
	}
}

// Run executes the list departments use case
func (uc *ListDepartments) Run(ctx context.Context, params ListDepartmentsParams) (*DepartmentListResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading departments from registry",
		Spinner: true,
	})

	departments, err := uc.departments.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}

	if params.ActiveOnly {
		filtered := departments[:0]
		for _, dept := range departments {
			if dept.IsActive {
				filtered = append(filtered, dept)
			}
		}
		departments = filtered
	}

	sort.Slice(departments, func(i, j int) bool {
		return departments[i].Name < departments[j].Name
	})

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Message: "Departments loaded",
	})

	return &DepartmentListResult{
		Departments: departments,
		Summary:     summarizeDepartments(departments),
	}, nil
}

func summarizeDepartments(departments []*models.Department) DepartmentSummary {
	summary := DepartmentSummary{
		Total:       len(departments),
		TotalBudget: new(big.Int),
		TotalSpent:  new(big.Int),
	}
	for _, dept := range departments {
		if dept.IsActive {
			summary.Active++
		}
		if dept.Budget != nil {
			summary.TotalBudget.Add(summary.TotalBudget, dept.Budget)
		}
		if dept.Spent != nil {
			summary.TotalSpent.Add(summary.TotalSpent, dept.Spent)
		}
	}
	return summary
}
