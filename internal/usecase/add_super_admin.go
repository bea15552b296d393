package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/domain"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
)

// AddSuperAdminParams contains parameters for granting admin rights
type AddSuperAdminParams struct {
	Account common.Address
}

// AddSuperAdminResult is the result of granting admin rights
type AddSuperAdminResult struct {
	Account common.Address
	Receipt *models.Receipt
}

// AddSuperAdmin is the use case for granting registry admin rights. Grants
// already held are reported without a submission; the grant itself is
// gated to existing admins by the registry.
type AddSuperAdmin struct {
	config  *config.RuntimeConfig
	admin   AdminReader
	writer  LedgerWriter
	journal ReceiptJournal
	clock   Clock
	sink    ProgressSink
}

// NewAddSuperAdmin creates a new AddSuperAdmin use case
func NewAddSuperAdmin(cfg *config.RuntimeConfig, admin AdminReader, writer LedgerWriter, journal ReceiptJournal, clock Clock, sink ProgressSink) *AddSuperAdmin {
	return &AddSuperAdmin{
		config:  cfg,
		admin:   admin,
		writer:  writer,
		journal: journal,
		clock:   clock,
		sink:    sink,
	}
}

// Run executes the add super admin use case
func (uc *AddSuperAdmin) Run(ctx context.Context, params AddSuperAdminParams) (*AddSuperAdminResult, error) {
	if params.Account == (common.Address{}) {
		return nil, &domain.MissingFieldError{Field: "account address"}
	}

	already, err := uc.admin.IsSuperAdmin(ctx, params.Account)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, fmt.Errorf("account %s is already a super admin: %w", params.Account.Hex(), domain.ErrRejected)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "submitting",
		Message: fmt.Sprintf("Granting admin rights to %s", params.Account.Hex()),
		Spinner: true,
	})

	receipt, err := uc.writer.AddSuperAdmin(ctx, params.Account)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Admin rights granted"})

	recordReceipt(ctx, uc.journal, uc.clock, uc.sink, "add_super_admin", params.Account.Hex(), receipt)

	return &AddSuperAdminResult{Account: params.Account, Receipt: receipt}, nil
}
