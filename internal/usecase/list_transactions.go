package usecase

import (
	"context"
	"sort"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
)

// ListTransactionsParams contains parameters for listing transactions
type ListTransactionsParams struct {
	// DepartmentRef narrows the listing to one department when non-empty.
	DepartmentRef string
	PendingOnly   bool
}

// TransactionListResult is the result of listing transactions
type TransactionListResult struct {
	Transactions []*models.Transaction
	Pending      int
}

// ListTransactions is the use case for listing department transactions
type ListTransactions struct {
	config       *config.RuntimeConfig
	transactions TransactionReader
	resolver     DepartmentResolver
	sink         ProgressSink
}

// NewListTransactions creates a new ListTransactions use case
func NewListTransactions(cfg *config.RuntimeConfig, transactions TransactionReader, resolver DepartmentResolver, sink ProgressSink) *ListTransactions {
	return &ListTransactions{
		config:       cfg,
		transactions: transactions,
		resolver:     resolver,
		sink:         sink,
	}
}

// Run executes the list transactions use case
func (uc *ListTransactions) Run(ctx context.Context, params ListTransactionsParams) (*TransactionListResult, error) {
	filter := models.TransactionFilter{PendingOnly: params.PendingOnly}

	if params.DepartmentRef != "" {
		dept, err := uc.resolver.ResolveDepartment(ctx, params.DepartmentRef)
		if err != nil {
			return nil, err
		}
		filter.Department = dept.Address
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading transactions",
		Spinner: true,
	})

	transactions, err := uc.transactions.ListTransactions(ctx, filter)
	if err != nil {
		return nil, err
	}

	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].ID < transactions[j].ID
	})

	pending := 0
	for _, tx := range transactions {
		if tx.Status == models.TransactionStatusPending {
			pending++
		}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Transactions loaded"})

	return &TransactionListResult{Transactions: transactions, Pending: pending}, nil
}
