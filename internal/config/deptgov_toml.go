package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"
)

// ConfigFileName is the project configuration file holding network RPC
// endpoints and deployed contract addresses.
const ConfigFileName = "deptgov.toml"

// loadDeptgovConfig parses deptgov.toml from the project root. A missing
// file is not an error; built-in networks still apply.
func loadDeptgovConfig(projectRoot string) (*DeptgovConfig, error) {
	path := filepath.Join(projectRoot, ConfigFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &DeptgovConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}

	var cfg DeptgovConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}

	return &cfg, nil
}

// toNetwork converts a raw [networks.<name>] block into a resolved Network.
func (nc NetworkConfig) toNetwork(name string) (*Network, error) {
	for field, addr := range map[string]string{
		"department_registry": nc.DepartmentRegistry,
		"budget_controller":   nc.BudgetController,
		"proposal_manager":    nc.ProposalManager,
	} {
		if addr != "" && !common.IsHexAddress(addr) {
			return nil, fmt.Errorf("network %s: invalid %s address %q", name, field, addr)
		}
	}

	symbol := nc.NativeSymbol
	if symbol == "" {
		symbol = "FLOW"
	}

	return &Network{
		Name:         name,
		ChainID:      nc.ChainID,
		RPCURL:       nc.RPCURL,
		ExplorerURL:  nc.ExplorerURL,
		NativeSymbol: symbol,
		Contracts: ContractAddresses{
			DepartmentRegistry: common.HexToAddress(nc.DepartmentRegistry),
			BudgetController:   common.HexToAddress(nc.BudgetController),
			ProposalManager:    common.HexToAddress(nc.ProposalManager),
		},
	}, nil
}

// FindProjectRoot walks up from the current directory to find deptgov.toml.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a deptgov project (%s not found)", ConfigFileName)
		}
		dir = parent
	}
}
