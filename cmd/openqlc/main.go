// Command openqlc is a small Cobra CLI over the scheduler/pass-manager
// core, generalizing the teacher's cmd/cli (a flat main() with
// hand-built demos and no flag parsing) into a proper subcommand tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "openqlc",
		Short:         "Schedule and inspect OpenQL kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCompileCmd(), newDescribePassCmd())
	return root
}
