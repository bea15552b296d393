package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Provider creates RuntimeConfig for Wire dependency injection.
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			// Config file is optional; built-in networks still work.
			projectRoot = "."
		}
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, ".deptgov"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		PrivateKey:     strings.TrimPrefix(v.GetString("private_key"), "0x"),

		LedgerCallTimeout: v.GetDuration("ledger_call_timeout"),
		LedgerMaxRetries:  v.GetInt("ledger_max_retries"),

		PriceCacheTTL:        v.GetDuration("price_cache_ttl"),
		PriceProviderTimeout: v.GetDuration("price_provider_timeout"),
		FallbackRate:         v.GetFloat64("fallback_rate"),
	}

	projectConfig, err := loadDeptgovConfig(projectRoot)
	if err != nil {
		return nil, err
	}

	networkName := v.GetString("network")
	if networkName == "" {
		networkName = projectConfig.DefaultNetwork
	}
	if networkName == "" {
		networkName = "flow-testnet"
	}

	resolver := NewNetworkResolver(projectConfig)
	network, err := resolver.Resolve(networkName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve network %s: %w", networkName, err)
	}
	if rpcOverride := v.GetString("rpc_url"); rpcOverride != "" {
		network.RPCURL = rpcOverride
	}
	cfg.Network = network

	return cfg, nil
}

// SetupViper creates and configures a viper instance bound to the command's
// flags. Environment variables use the DEPTGOV_ prefix.
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".deptgov"))

	v.SetEnvPrefix("DEPTGOV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("project_root", projectRoot)
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("ledger_call_timeout", "30s")
	v.SetDefault("ledger_max_retries", 3)
	v.SetDefault("price_cache_ttl", "5m")
	v.SetDefault("price_provider_timeout", "3s")
	v.SetDefault("fallback_rate", 2000.0)

	// Config file is optional
	_ = v.ReadInConfig()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			panic(err)
		}
	})

	return v
}

// ProvideNetworkResolver creates a NetworkResolver for Wire dependency injection.
func ProvideNetworkResolver(cfg *RuntimeConfig) (*NetworkResolver, error) {
	projectConfig, err := loadDeptgovConfig(cfg.ProjectRoot)
	if err != nil {
		return nil, err
	}
	return NewNetworkResolver(projectConfig), nil
}
