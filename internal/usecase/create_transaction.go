package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/domain"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
)

// CreateTransactionParams contains parameters for creating a transaction
type CreateTransactionParams struct {
	DepartmentRef string
	Type          models.TransactionType
	Amount        *big.Int
	Description   string
}

// CreateTransactionResult is the result of creating a transaction
type CreateTransactionResult struct {
	Department *models.Department
	Receipt    *models.Receipt
}

// CreateTransaction is the use case for recording a department transaction.
// Amount validation fails fast: an invalid amount never produces a ledger
// call, so a rejected request costs nothing.
type CreateTransaction struct {
	config   *config.RuntimeConfig
	resolver DepartmentResolver
	writer   LedgerWriter
	journal  ReceiptJournal
	clock    Clock
	sink     ProgressSink
}

// NewCreateTransaction creates a new CreateTransaction use case
func NewCreateTransaction(cfg *config.RuntimeConfig, resolver DepartmentResolver, writer LedgerWriter, journal ReceiptJournal, clock Clock, sink ProgressSink) *CreateTransaction {
	return &CreateTransaction{
		config:   cfg,
		resolver: resolver,
		writer:   writer,
		journal:  journal,
		clock:    clock,
		sink:     sink,
	}
}

// Run executes the create transaction use case
func (uc *CreateTransaction) Run(ctx context.Context, params CreateTransactionParams) (*CreateTransactionResult, error) {
	if params.Amount == nil || params.Amount.Sign() <= 0 {
		return nil, &domain.InvalidAmountError{
			Amount: amountString(params.Amount),
			Reason: "amount must be greater than 0",
		}
	}
	if params.Description == "" {
		return nil, &domain.MissingFieldError{Field: "transaction description"}
	}

	dept, err := uc.resolver.ResolveDepartment(ctx, params.DepartmentRef)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "submitting",
		Message: fmt.Sprintf("Creating %s transaction for %s", params.Type, dept.Name),
		Spinner: true,
	})

	receipt, err := uc.writer.CreateTransaction(ctx, dept.Address, params.Type, params.Amount, params.Description)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Transaction recorded"})

	recordReceipt(ctx, uc.journal, uc.clock, uc.sink, "create_transaction",
		fmt.Sprintf("%s: %s", dept.Name, params.Type), receipt)

	return &CreateTransactionResult{Department: dept, Receipt: receipt}, nil
}
