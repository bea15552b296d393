package usecase

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
)

// Bounded fan-out for fleet valuation reads.
const valuationConcurrency = 8

// ValueDepartmentsParams contains parameters for valuing departments
type ValueDepartmentsParams struct {
	// Ref values one department; empty means the whole fleet.
	Ref string
}

// ValuationResult is the result of valuing departments
type ValuationResult struct {
	Valuations []*models.Valuation
	Rate       models.RateSnapshot
}

// ValueDepartments is the use case for expressing department budgets in
// fiat. Ledger figures are always re-fetched; only the exchange rate comes
// from the resolver cache. Fleet valuation fans out one goroutine per
// department, and cancelling the context abandons the remaining reads.
type ValueDepartments struct {
	config      *config.RuntimeConfig
	departments DepartmentReader
	resolver    DepartmentResolver
	rates       RateResolver
	sink        ProgressSink
}

// NewValueDepartments creates a new ValueDepartments use case
func NewValueDepartments(cfg *config.RuntimeConfig, departments DepartmentReader, resolver DepartmentResolver, rates RateResolver, sink ProgressSink) *ValueDepartments {
	return &ValueDepartments{
		config:      cfg,
		departments: departments,
		resolver:    resolver,
		rates:       rates,
		sink:        sink,
	}
}

// Run executes the value departments use case
func (uc *ValueDepartments) Run(ctx context.Context, params ValueDepartmentsParams) (*ValuationResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Valuing department budgets",
		Spinner: true,
	})

	var departments []*models.Department
	if params.Ref != "" {
		dept, err := uc.resolver.ResolveDepartment(ctx, params.Ref)
		if err != nil {
			return nil, err
		}
		departments = []*models.Department{dept}
	} else {
		var err error
		departments, err = uc.departments.ListDepartments(ctx)
		if err != nil {
			return nil, err
		}
	}

	// One snapshot for the whole fleet so every row is priced consistently.
	rate := uc.rates.GetRate(ctx)

	valuations := make([]*models.Valuation, len(departments))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(valuationConcurrency)

	for i, dept := range departments {
		g.Go(func() error {
			// Re-read so valuations reflect current ledger figures even
			// when the input department came from an earlier listing.
			fresh, err := uc.departments.GetDepartment(gctx, dept.Address)
			if err != nil {
				return err
			}
			valuations[i] = uc.value(gctx, fresh, rate)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(valuations, func(i, j int) bool {
		return valuations[i].Name < valuations[j].Name
	})

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Valuation complete"})

	return &ValuationResult{Valuations: valuations, Rate: rate}, nil
}

func (uc *ValueDepartments) value(ctx context.Context, dept *models.Department, rate models.RateSnapshot) *models.Valuation {
	remaining := dept.Remaining()
	return &models.Valuation{
		Department:    dept.Address,
		Name:          dept.Name,
		Budget:        dept.Budget,
		Spent:         dept.Spent,
		Remaining:     remaining,
		BudgetFiat:    uc.rates.ConvertToFiat(ctx, dept.Budget),
		SpentFiat:     uc.rates.ConvertToFiat(ctx, dept.Spent),
		RemainingFiat: uc.rates.ConvertToFiat(ctx, remaining),
		Rate:          rate,
	}
}
