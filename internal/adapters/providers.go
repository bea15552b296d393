package adapters

import (
	"github.com/google/wire"

	"github.com/deptgov-org/deptgov-cli/internal/adapters/journal"
	"github.com/deptgov-org/deptgov-cli/internal/adapters/ledger"
	"github.com/deptgov-org/deptgov-cli/internal/adapters/rates"
	"github.com/deptgov-org/deptgov-cli/internal/adapters/resolvers"
	"github.com/deptgov-org/deptgov-cli/internal/usecase"
)

// ProvideClock provides the production wall clock
func ProvideClock() usecase.Clock {
	return usecase.SystemClock{}
}

// ProvideUpdatePolicy provides the default budget update policy
func ProvideUpdatePolicy() usecase.UpdatePolicy {
	return usecase.NoLimitPolicy{}
}

// LedgerSet provides the on-chain gateway behind every ledger-facing port
var LedgerSet = wire.NewSet(
	ledger.NewGateway,
	wire.Bind(new(usecase.DepartmentReader), new(*ledger.Gateway)),
	wire.Bind(new(usecase.AdminReader), new(*ledger.Gateway)),
	wire.Bind(new(usecase.ProposalReader), new(*ledger.Gateway)),
	wire.Bind(new(usecase.TransactionReader), new(*ledger.Gateway)),
	wire.Bind(new(usecase.LedgerWriter), new(*ledger.Gateway)),
)

// RatesSet provides the exchange-rate resolver
var RatesSet = wire.NewSet(
	rates.NewResolver,
	wire.Bind(new(usecase.RateResolver), new(*rates.Resolver)),
)

// JournalSet provides the local receipt journal
var JournalSet = wire.NewSet(
	journal.NewFileJournal,
	wire.Bind(new(usecase.ReceiptJournal), new(*journal.FileJournal)),
)

// ResolverSet provides reference resolution implementations
var ResolverSet = wire.NewSet(
	resolvers.NewDepartmentResolverAdapter,
	wire.Bind(new(usecase.DepartmentResolver), new(*resolvers.DepartmentResolverAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ProvideClock,
	ProvideUpdatePolicy,
	LedgerSet,
	RatesSet,
	JournalSet,
	ResolverSet,
)
