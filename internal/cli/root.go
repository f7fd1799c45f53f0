// Package cli implements the gf2 command line tool, a thin shell around the
// gf2 package for evaluating field operations on hex-encoded elements.
package cli

import (
	"github.com/spf13/cobra"

	sss "github.com/xuganyu96/shamir-secret-sharing"
	"github.com/xuganyu96/shamir-secret-sharing/logger"
)

// NewRootCommand builds the gf2 command tree.
func NewRootCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "gf2",
		Short: "Exact arithmetic over binary extension fields GF(2^m)",
		Long: `gf2 evaluates exact field operations over GF(2^128), GF(2^192) and
GF(2^256). Operands are hex-encoded big-endian field elements of exactly
m bits (an optional 0x prefix is accepted).

Examples:
  # multiply two elements of GF(2^128)
  gf2 mul 125441988da729bdecf164defba7b692 7d89d76a644e3a1c047cb60a1b9830f0

  # invert an element of GF(2^256)
  gf2 --field 256 inv <64 hex digits>

  # sample three random elements of GF(2^192)
  gf2 --field 192 sample 3`,
		Version:       sss.Version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !verbose {
				logger.Disable()
			}
		},
	}

	cmd.PersistentFlags().IntP("field", "f", 128, "extension degree (128, 192 or 256)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable logging")

	cmd.AddCommand(
		newMulCommand(),
		newAddCommand(),
		newInvCommand(),
		newSampleCommand(),
		newFieldsCommand(),
	)
	return cmd
}

func fieldDegree(cmd *cobra.Command) int {
	degree, _ := cmd.Flags().GetInt("field")
	return degree
}
