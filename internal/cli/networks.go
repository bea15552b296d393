package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/deptgov-org/deptgov-cli/internal/config"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List configured networks",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			resolver, err := config.ProvideNetworkResolver(app.Config)
			if err != nil {
				return err
			}

			var networks []*config.Network
			for _, name := range resolver.Names() {
				network, err := resolver.Resolve(name)
				if err != nil {
					return err
				}
				networks = append(networks, network)
			}

			if app.Config.JSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(networks)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Name", "Chain ID", "RPC", "Symbol", ""})

			for _, network := range networks {
				current := ""
				if network.Name == app.Config.Network.Name {
					current = "current"
				}
				t.AppendRow(table.Row{network.Name, network.ChainID, network.RPCURL, network.NativeSymbol, current})
			}
			t.Render()

			fmt.Fprintf(cmd.OutOrStdout(), "\nSwitch with --network <name> or DEPTGOV_NETWORK\n")
			return nil
		},
	}
}
