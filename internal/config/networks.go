package config

import (
	"fmt"
	"sort"
	"strings"
)

// builtinNetworks are the well-known deployments. The Flow EVM testnet is
// where the department system contracts live; anvil serves local work.
var builtinNetworks = map[string]NetworkConfig{
	"flow-testnet": {
		ChainID:      545,
		RPCURL:       "https://testnet.evm.nodes.onflow.org",
		ExplorerURL:  "https://evm-testnet.flowscan.io",
		NativeSymbol: "FLOW",

		DepartmentRegistry: "0xD6060261Df228ACFA52197E449349dbF5443e979",
		BudgetController:   "0x27c98C6Bb9Fc79Df5b14419538dAd0594851Ed4f",
		ProposalManager:    "0xe07CC12Ef3fa7922377Bb0D1B6f8194d16aeF938",
	},
	"anvil": {
		ChainID:      31337,
		RPCURL:       "http://localhost:8545",
		NativeSymbol: "ETH",
	},
}

// NetworkResolver resolves a network name to its configuration, merging
// project deptgov.toml entries over the built-in networks.
type NetworkResolver struct {
	networks map[string]NetworkConfig
}

// NewNetworkResolver creates a resolver seeded with built-in networks plus
// any project overrides.
func NewNetworkResolver(projectConfig *DeptgovConfig) *NetworkResolver {
	networks := make(map[string]NetworkConfig, len(builtinNetworks))
	for name, nc := range builtinNetworks {
		networks[name] = nc
	}
	if projectConfig != nil {
		for name, nc := range projectConfig.Networks {
			networks[strings.ToLower(name)] = nc
		}
	}
	return &NetworkResolver{networks: networks}
}

// Resolve returns the named network configuration.
func (r *NetworkResolver) Resolve(name string) (*Network, error) {
	nc, ok := r.networks[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown network %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return nc.toNetwork(strings.ToLower(name))
}

// Names lists the known network names, sorted.
func (r *NetworkResolver) Names() []string {
	names := make([]string, 0, len(r.networks))
	for name := range r.networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
