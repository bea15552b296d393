package models

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// TransactionType mirrors the BudgetController enum; the numeric wire value
// is the index into the on-chain enum, so order is load-bearing.
type TransactionType uint8

const (
	TransactionTypeBudgetAllocation TransactionType = iota
	TransactionTypeProjectFunding
	TransactionTypeBudgetUpdate
	TransactionTypeExpense
)

// String returns the canonical name used on the wire by the original
// dashboard and in CLI input.
func (t TransactionType) String() string {
	switch t {
	case TransactionTypeBudgetAllocation:
		return "BUDGET_ALLOCATION"
	case TransactionTypeProjectFunding:
		return "PROJECT_FUNDING"
	case TransactionTypeBudgetUpdate:
		return "BUDGET_UPDATE"
	case TransactionTypeExpense:
		return "EXPENSE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(t))
	}
}

// ParseTransactionType converts a canonical name back to its enum value.
func ParseTransactionType(s string) (TransactionType, error) {
	switch s {
	case "BUDGET_ALLOCATION":
		return TransactionTypeBudgetAllocation, nil
	case "PROJECT_FUNDING":
		return TransactionTypeProjectFunding, nil
	case "BUDGET_UPDATE":
		return TransactionTypeBudgetUpdate, nil
	case "EXPENSE":
		return TransactionTypeExpense, nil
	default:
		return 0, fmt.Errorf("invalid transaction type: %s (valid: BUDGET_ALLOCATION, PROJECT_FUNDING, BUDGET_UPDATE, EXPENSE)", s)
	}
}

// TransactionStatus is the one-way Pending -> Processed state machine.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusProcessed TransactionStatus = "PROCESSED"
)

// Transaction is a department-scoped monetary transaction record owned by
// the BudgetController contract.
type Transaction struct {
	ID         uint64            `json:"id"`
	Department common.Address    `json:"department"`
	Type       TransactionType   `json:"type"`
	Amount     *big.Int          `json:"amount"`
	Description string           `json:"description"`
	Status     TransactionStatus `json:"status"`
	Note       string            `json:"note,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// TransactionFilter narrows transaction queries.
type TransactionFilter struct {
	Department  common.Address
	PendingOnly bool
}
