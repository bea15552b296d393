package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// RuntimeConfig is the resolved per-invocation configuration assembled by
// the Provider from flags, environment, and the project deptgov.toml.
type RuntimeConfig struct {
	ProjectRoot string
	DataDir     string

	Debug          bool
	NonInteractive bool
	JSON           bool

	// Network is the resolved target ledger.
	Network *Network

	// PrivateKey is the raw hex signing key, if one is configured. Read
	// operations work without it.
	PrivateKey string

	// Ledger call policy
	LedgerCallTimeout time.Duration
	LedgerMaxRetries  int

	// Exchange-rate policy
	PriceCacheTTL        time.Duration
	PriceProviderTimeout time.Duration
	FallbackRate         float64
}

// ContractAddresses holds the deployed addresses of the three system
// contracts on one network.
type ContractAddresses struct {
	DepartmentRegistry common.Address
	BudgetController   common.Address
	ProposalManager    common.Address
}

// Network describes one target ledger.
type Network struct {
	Name         string
	ChainID      uint64
	RPCURL       string
	ExplorerURL  string
	NativeSymbol string
	Contracts    ContractAddresses
}

// DeptgovConfig is the raw shape of a project deptgov.toml.
type DeptgovConfig struct {
	DefaultNetwork string                   `toml:"default_network"`
	Networks       map[string]NetworkConfig `toml:"networks"`
}

// NetworkConfig is one [networks.<name>] block in deptgov.toml.
type NetworkConfig struct {
	ChainID      uint64 `toml:"chain_id"`
	RPCURL       string `toml:"rpc_url"`
	ExplorerURL  string `toml:"explorer_url"`
	NativeSymbol string `toml:"native_symbol"`

	DepartmentRegistry string `toml:"department_registry"`
	BudgetController   string `toml:"budget_controller"`
	ProposalManager    string `toml:"proposal_manager"`
}
