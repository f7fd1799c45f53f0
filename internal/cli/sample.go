package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sample [n]",
		Short: "Sample uniform random field elements",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 1
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil || parsed < 1 {
					return fmt.Errorf("invalid sample count %q", args[0])
				}
				n = parsed
			}
			samples, err := runSample(fieldDegree(cmd), n)
			if err != nil {
				return err
			}
			for _, s := range samples {
				resultColor.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}
