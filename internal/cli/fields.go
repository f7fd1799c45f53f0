package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/xuganyu96/shamir-secret-sharing/gf2"
)

func newFieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the supported fields and their moduli",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			name := color.New(color.FgCyan, color.Bold)
			out := cmd.OutOrStdout()
			name.Fprint(out, "GF(2^128)")
			fmt.Fprintf(out, "  %s\n", gf2.GF2p128{}.Modulus().PolynomialString())
			name.Fprint(out, "GF(2^192)")
			fmt.Fprintf(out, "  %s\n", gf2.GF2p192{}.Modulus().PolynomialString())
			name.Fprint(out, "GF(2^256)")
			fmt.Fprintf(out, "  %s\n", gf2.GF2p256{}.Modulus().PolynomialString())
		},
	}
}
