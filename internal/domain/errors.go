package domain

import (
	"errors"
	"fmt"

	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for ledger operations
var (
	// ErrConnectivity is returned when the ledger or a price provider could
	// not be reached after the configured retry budget. Transient; callers
	// must not treat it as a definitive failure of intent.
	ErrConnectivity = errors.New("ledger unreachable")

	// ErrRejected is returned when the ledger refused a call (authorization
	// failure, invalid state, duplicate vote). Never retried automatically.
	ErrRejected = errors.New("rejected by ledger")

	// ErrNotFound is returned when a referenced entity does not exist
	// on-ledger.
	ErrNotFound = errors.New("not found")

	// ErrNoSigner is returned when a mutating call is attempted without a
	// configured signing key.
	ErrNoSigner = errors.New("no signing key configured")
)

// InvalidAmountError reports a caller-side amount precondition failure.
// It is raised before any ledger call is attempted.
type InvalidAmountError struct {
	Amount string
	Reason string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q: %s", e.Amount, e.Reason)
}

// MissingFieldError reports a required request field left empty. Like
// InvalidAmountError it is raised before any ledger call is attempted.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// AlreadyVotedError is the caller-side guard against duplicate votes. The
// ledger remains the authority and rejects duplicates on its own.
type AlreadyVotedError struct {
	ProposalID uint64
	Voter      common.Address
}

func (e *AlreadyVotedError) Error() string {
	return fmt.Sprintf("voter %s has already voted on proposal %d", e.Voter.Hex(), e.ProposalID)
}

// ProposalNotActiveError is returned when a vote is cast against a proposal
// whose derived status is no longer Active.
type ProposalNotActiveError struct {
	ProposalID uint64
	Status     models.ProposalStatus
}

func (e *ProposalNotActiveError) Error() string {
	return fmt.Sprintf("proposal %d is not active (status: %s)", e.ProposalID, e.Status)
}

// NotPendingError reports a transaction state-machine precondition
// violation, usually a race with another actor processing the same record.
type NotPendingError struct {
	TransactionID uint64
	Status        models.TransactionStatus
}

func (e *NotPendingError) Error() string {
	return fmt.Sprintf("transaction %d is not pending (status: %s)", e.TransactionID, e.Status)
}

// PartialApplyError reports a multi-step mutation that partially committed:
// the budget change was confirmed on-ledger but the companion audit record
// failed. It carries the successful receipt so the caller can reconcile
// instead of blindly retrying the half that already took effect.
type PartialApplyError struct {
	Receipt *models.Receipt
	Err     error
}

func (e *PartialApplyError) Error() string {
	return fmt.Sprintf("budget update confirmed in tx %s but audit record failed: %v", e.Receipt.TxHash, e.Err)
}

func (e *PartialApplyError) Unwrap() error {
	return e.Err
}
