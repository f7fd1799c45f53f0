// Command gf2 evaluates exact field operations over the binary extension
// fields GF(2^128), GF(2^192) and GF(2^256).
package main

import (
	"fmt"
	"os"

	"github.com/xuganyu96/shamir-secret-sharing/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
