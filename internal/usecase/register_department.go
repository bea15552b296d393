package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/domain"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
)

// RegisterDepartmentParams contains parameters for registering a department
type RegisterDepartmentParams struct {
	Address       common.Address
	Name          string
	InitialBudget *big.Int
	Head          common.Address
	LogoURI       string
}

// RegisterDepartmentResult is the result of registering a department
type RegisterDepartmentResult struct {
	Receipt *models.Receipt
}

// RegisterDepartment is the use case for registering a new department.
// Registration is a super-admin operation; the signer is checked against
// the registry before submission so an unauthorized attempt costs no gas.
// The ledger enforces the same rule on its own.
type RegisterDepartment struct {
	config  *config.RuntimeConfig
	admin   AdminReader
	writer  LedgerWriter
	journal ReceiptJournal
	clock   Clock
	sink    ProgressSink
}

// NewRegisterDepartment creates a new RegisterDepartment use case
func NewRegisterDepartment(cfg *config.RuntimeConfig, admin AdminReader, writer LedgerWriter, journal ReceiptJournal, clock Clock, sink ProgressSink) *RegisterDepartment {
	return &RegisterDepartment{
		config:  cfg,
		admin:   admin,
		writer:  writer,
		journal: journal,
		clock:   clock,
		sink:    sink,
	}
}

// Run executes the register department use case
func (uc *RegisterDepartment) Run(ctx context.Context, params RegisterDepartmentParams) (*RegisterDepartmentResult, error) {
	if params.Name == "" {
		return nil, &domain.MissingFieldError{Field: "department name"}
	}
	if params.Address == (common.Address{}) {
		return nil, &domain.MissingFieldError{Field: "department address"}
	}
	if params.InitialBudget == nil || params.InitialBudget.Sign() < 0 {
		return nil, &domain.InvalidAmountError{
			Amount: amountString(params.InitialBudget),
			Reason: "initial budget must not be negative",
		}
	}

	signer, err := uc.writer.Signer()
	if err != nil {
		return nil, err
	}
	isAdmin, err := uc.admin.IsSuperAdmin(ctx, signer)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, fmt.Errorf("signer %s is not a super admin: %w", signer.Hex(), domain.ErrRejected)
	}

	head := params.Head
	if head == (common.Address{}) {
		head = params.Address
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "submitting",
		Message: fmt.Sprintf("Registering department %s", params.Name),
		Spinner: true,
	})

	receipt, err := uc.writer.RegisterDepartment(ctx, RegisterDepartmentCall{
		Address:       params.Address,
		Name:          params.Name,
		InitialBudget: params.InitialBudget,
		Head:          head,
		LogoURI:       params.LogoURI,
	})
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Department registered"})

	recordReceipt(ctx, uc.journal, uc.clock, uc.sink, "register_department", params.Name, receipt)

	return &RegisterDepartmentResult{Receipt: receipt}, nil
}

// recordReceipt appends a confirmed receipt to the local journal. The
// journal is advisory; a write failure is surfaced but never fails the
// operation that produced the receipt.
func recordReceipt(ctx context.Context, journal ReceiptJournal, clock Clock, sink ProgressSink, action, reference string, receipt *models.Receipt) {
	if journal == nil || receipt == nil {
		return
	}
	err := journal.Append(ctx, JournalEntry{
		Action:    action,
		Reference: reference,
		TxHash:    receipt.TxHash,
		Block:     receipt.BlockNumber,
		Timestamp: clock.Now(),
	})
	if err != nil {
		sink.Error(fmt.Sprintf("failed to record receipt in local journal: %v", err))
	}
}

func amountString(amount *big.Int) string {
	if amount == nil {
		return "<nil>"
	}
	return amount.String()
}
