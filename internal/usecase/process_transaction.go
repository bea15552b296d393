package usecase

import (
	"context"
	"fmt"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/domain"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
)

// ProcessTransactionParams contains parameters for processing a transaction
type ProcessTransactionParams struct {
	TransactionID uint64
	Note          string
}

// ProcessTransactionResult is the result of processing a transaction
type ProcessTransactionResult struct {
	Transaction *models.Transaction
	Receipt     *models.Receipt
}

// ProcessTransaction is the use case for marking a pending transaction
// processed. The transition is one-way; a record that is already processed
// fails the precondition before anything is submitted. The read-then-write
// can still race another actor, in which case the ledger rejects the
// duplicate and the rejection is mapped back onto the same precondition
// error.
type ProcessTransaction struct {
	config       *config.RuntimeConfig
	transactions TransactionReader
	writer       LedgerWriter
	journal      ReceiptJournal
	clock        Clock
	sink         ProgressSink
}

// NewProcessTransaction creates a new ProcessTransaction use case
func NewProcessTransaction(cfg *config.RuntimeConfig, transactions TransactionReader, writer LedgerWriter, journal ReceiptJournal, clock Clock, sink ProgressSink) *ProcessTransaction {
	return &ProcessTransaction{
		config:       cfg,
		transactions: transactions,
		writer:       writer,
		journal:      journal,
		clock:        clock,
		sink:         sink,
	}
}

// Run executes the process transaction use case
func (uc *ProcessTransaction) Run(ctx context.Context, params ProcessTransactionParams) (*ProcessTransactionResult, error) {
	tx, err := uc.transactions.GetTransaction(ctx, params.TransactionID)
	if err != nil {
		return nil, err
	}

	if tx.Status != models.TransactionStatusPending {
		return nil, &domain.NotPendingError{TransactionID: params.TransactionID, Status: tx.Status}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "submitting",
		Message: fmt.Sprintf("Processing transaction %d", params.TransactionID),
		Spinner: true,
	})

	receipt, err := uc.writer.ProcessTransaction(ctx, params.TransactionID, params.Note)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Transaction processed"})

	recordReceipt(ctx, uc.journal, uc.clock, uc.sink, "process_transaction",
		fmt.Sprintf("transaction %d", params.TransactionID), receipt)

	return &ProcessTransactionResult{Transaction: tx, Receipt: receipt}, nil
}
