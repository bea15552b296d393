package usecase

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
)

// DepartmentReader provides read access to the on-chain department registry.
type DepartmentReader interface {
	ListDepartments(ctx context.Context) ([]*models.Department, error)
	GetDepartment(ctx context.Context, address common.Address) (*models.Department, error)
}

// ProposalReader provides read access to DAO proposals and vote membership.
type ProposalReader interface {
	ListActiveProposals(ctx context.Context) ([]*models.Proposal, error)
	GetProposal(ctx context.Context, id uint64) (*models.Proposal, error)
	HasVoted(ctx context.Context, id uint64, voter common.Address) (bool, error)
}

// TransactionReader provides read access to department transactions.
type TransactionReader interface {
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error)
	GetTransaction(ctx context.Context, id uint64) (*models.Transaction, error)
}

// AdminReader checks registry admin membership.
type AdminReader interface {
	IsSuperAdmin(ctx context.Context, account common.Address) (bool, error)
}

// RegisterDepartmentCall carries the arguments of a registration call.
type RegisterDepartmentCall struct {
	Address       common.Address
	Name          string
	InitialBudget *big.Int
	Head          common.Address
	LogoURI       string
}

// LedgerWriter issues mutating contract calls. Every method blocks until the
// ledger confirms inclusion and returns the confirmation receipt; no
// mutation may be assumed effective before then. None of these calls are
// idempotent, so retries must be deduplicated by the caller using the
// proposal or transaction id.
type LedgerWriter interface {
	RegisterDepartment(ctx context.Context, call RegisterDepartmentCall) (*models.Receipt, error)
	UpdateBudget(ctx context.Context, department common.Address, newBudget *big.Int) (*models.Receipt, error)
	ProposeBudget(ctx context.Context, department common.Address, newBudget *big.Int) (*models.Receipt, error)
	CastVote(ctx context.Context, proposalID uint64, support bool) (*models.Receipt, error)
	ExecuteProposal(ctx context.Context, proposalID uint64) (*models.Receipt, error)
	CreateTransaction(ctx context.Context, department common.Address, txType models.TransactionType, amount *big.Int, description string) (*models.Receipt, error)
	ProcessTransaction(ctx context.Context, id uint64, note string) (*models.Receipt, error)
	AddSuperAdmin(ctx context.Context, account common.Address) (*models.Receipt, error)

	// Signer returns the address the writer submits from, used for
	// caller-side vote guards.
	Signer() (common.Address, error)
}

// RateResolver produces the current native->fiat exchange rate with bounded
// staleness. GetRate never fails: a total provider outage degrades to the
// last known snapshot, or to a static fallback if no fetch ever succeeded.
type RateResolver interface {
	GetRate(ctx context.Context) models.RateSnapshot
	ConvertToFiat(ctx context.Context, nativeAmount *big.Int) string
}

// JournalEntry records one confirmed mutating call for local audit.
type JournalEntry struct {
	Action    string    `yaml:"action"`
	Reference string    `yaml:"reference"`
	TxHash    string    `yaml:"txHash"`
	Block     uint64    `yaml:"block"`
	Timestamp time.Time `yaml:"timestamp"`
}

// ReceiptJournal appends confirmed receipts to the local activity journal.
type ReceiptJournal interface {
	Append(ctx context.Context, entry JournalEntry) error
}

// DepartmentResolver resolves a user-supplied department reference (an 0x
// address or a name, possibly partial) to a registered department.
type DepartmentResolver interface {
	ResolveDepartment(ctx context.Context, ref string) (*models.Department, error)
}

// Clock abstracts wall-clock time so derived proposal state is testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
