package usecase_test

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	"github.com/deptgov-org/deptgov-cli/internal/config"
	"github.com/deptgov-org/deptgov-cli/internal/domain/models"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// MockDepartmentReader is a mock implementation of DepartmentReader
type MockDepartmentReader struct {
	mock.Mock
}

func (m *MockDepartmentReader) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Department), args.Error(1)
}

func (m *MockDepartmentReader) GetDepartment(ctx context.Context, address common.Address) (*models.Department, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Department), args.Error(1)
}

// MockProposalReader is a mock implementation of ProposalReader
type MockProposalReader struct {
	mock.Mock
}

func (m *MockProposalReader) ListActiveProposals(ctx context.Context) ([]*models.Proposal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Proposal), args.Error(1)
}

func (m *MockProposalReader) GetProposal(ctx context.Context, id uint64) (*models.Proposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Proposal), args.Error(1)
}

func (m *MockProposalReader) HasVoted(ctx context.Context, id uint64, voter common.Address) (bool, error) {
	args := m.Called(ctx, id, voter)
	return args.Bool(0), args.Error(1)
}

// MockTransactionReader is a mock implementation of TransactionReader
type MockTransactionReader struct {
	mock.Mock
}

func (m *MockTransactionReader) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

func (m *MockTransactionReader) GetTransaction(ctx context.Context, id uint64) (*models.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

// MockLedgerWriter is a mock implementation of LedgerWriter
type MockLedgerWriter struct {
	mock.Mock
}

func (m *MockLedgerWriter) RegisterDepartment(ctx context.Context, call usecase.RegisterDepartmentCall) (*models.Receipt, error) {
	args := m.Called(ctx, call)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Receipt), args.Error(1)
}

func (m *MockLedgerWriter) UpdateBudget(ctx context.Context, department common.Address, newBudget *big.Int) (*models.Receipt, error) {
	args := m.Called(ctx, department, newBudget)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Receipt), args.Error(1)
}

func (m *MockLedgerWriter) ProposeBudget(ctx context.Context, department common.Address, newBudget *big.Int) (*models.Receipt, error) {
	args := m.Called(ctx, department, newBudget)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Receipt), args.Error(1)
}

func (m *MockLedgerWriter) CastVote(ctx context.Context, proposalID uint64, support bool) (*models.Receipt, error) {
	args := m.Called(ctx, proposalID, support)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Receipt), args.Error(1)
}

func (m *MockLedgerWriter) ExecuteProposal(ctx context.Context, proposalID uint64) (*models.Receipt, error) {
	args := m.Called(ctx, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Receipt), args.Error(1)
}

func (m *MockLedgerWriter) CreateTransaction(ctx context.Context, department common.Address, txType models.TransactionType, amount *big.Int, description string) (*models.Receipt, error) {
	args := m.Called(ctx, department, txType, amount, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Receipt), args.Error(1)
}

func (m *MockLedgerWriter) ProcessTransaction(ctx context.Context, id uint64, note string) (*models.Receipt, error) {
	args := m.Called(ctx, id, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Receipt), args.Error(1)
}

func (m *MockLedgerWriter) AddSuperAdmin(ctx context.Context, account common.Address) (*models.Receipt, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Receipt), args.Error(1)
}

func (m *MockLedgerWriter) Signer() (common.Address, error) {
	args := m.Called()
	return args.Get(0).(common.Address), args.Error(1)
}

// MockAdminReader is a mock implementation of AdminReader
type MockAdminReader struct {
	mock.Mock
}

func (m *MockAdminReader) IsSuperAdmin(ctx context.Context, account common.Address) (bool, error) {
	args := m.Called(ctx, account)
	return args.Bool(0), args.Error(1)
}

// MockDepartmentResolver is a mock implementation of DepartmentResolver
type MockDepartmentResolver struct {
	mock.Mock
}

func (m *MockDepartmentResolver) ResolveDepartment(ctx context.Context, ref string) (*models.Department, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Department), args.Error(1)
}

// MockReceiptJournal is a mock implementation of ReceiptJournal
type MockReceiptJournal struct {
	mock.Mock
}

func (m *MockReceiptJournal) Append(ctx context.Context, entry usecase.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockRateResolver is a mock implementation of RateResolver
type MockRateResolver struct {
	mock.Mock
}

func (m *MockRateResolver) GetRate(ctx context.Context) models.RateSnapshot {
	args := m.Called(ctx)
	return args.Get(0).(models.RateSnapshot)
}

func (m *MockRateResolver) ConvertToFiat(ctx context.Context, nativeAmount *big.Int) string {
	args := m.Called(ctx, nativeAmount)
	return args.String(0)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
	errors []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {}

func (m *MockProgressSink) Error(message string) {
	m.errors = append(m.errors, message)
}

// fixedClock always returns the same instant
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func testRuntimeConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{}
}

func testReceipt() *models.Receipt {
	return &models.Receipt{
		TxHash:      "0xdeadbeef",
		BlockNumber: 42,
		GasUsed:     21000,
		Success:     true,
	}
}
