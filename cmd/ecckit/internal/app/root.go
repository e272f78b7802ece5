// Package app wires the ecckit CLI's subcommands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/wyvernlabs/ecckit/internal/telemetry"
)

var debug bool

// NewRootCommand builds the top-level "ecckit" command with its
// derive/wif/address children attached.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "ecckit",
		Short:         "Elliptic-curve kernel: key derivation and address formats",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			telemetry.SetGlobal(telemetry.NewConsole(debug))
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug-level logging")

	root.AddCommand(newDeriveCommand())
	root.AddCommand(newWIFCommand())
	root.AddCommand(newAddressCommand())
	return root
}
