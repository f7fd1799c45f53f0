package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resultColor = color.New(color.FgGreen)

func newMulCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mul <a> <b>",
		Short: "Multiply two field elements",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := runBinary(fieldDegree(cmd), opMul, args[0], args[1])
			if err != nil {
				return err
			}
			resultColor.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Add two field elements (identical to subtraction)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := runBinary(fieldDegree(cmd), opAdd, args[0], args[1])
			if err != nil {
				return err
			}
			resultColor.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newInvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inv <a>",
		Short: "Invert a non-zero field element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := runInv(fieldDegree(cmd), args[0])
			if err != nil {
				return err
			}
			resultColor.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
