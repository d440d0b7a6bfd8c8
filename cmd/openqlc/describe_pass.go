package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openql-go/openql/pass"
	"github.com/openql-go/openql/scheduler"
)

// registeredPassTypes lists the option specs of every pass type this
// binary knows about, the static counterpart to the Factory entries a
// passmgr.Manager registers at runtime.
var registeredPassTypes = map[string][]pass.Spec{
	scheduler.TypeName: scheduler.Specs,
}

func newDescribePassCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe-pass <type>",
		Short: "Print a registered pass type's option table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribePass(cmd, args[0])
		},
	}
}

func runDescribePass(cmd *cobra.Command, typeName string) error {
	specs, ok := registeredPassTypes[typeName]
	if !ok {
		known := make([]string, 0, len(registeredPassTypes))
		for name := range registeredPassTypes {
			known = append(known, name)
		}
		sort.Strings(known)
		return fmt.Errorf("openqlc: unknown pass type %q (known: %s)", typeName, strings.Join(known, ", "))
	}

	sorted := append([]pass.Spec(nil), specs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", typeName)
	for _, s := range sorted {
		fmt.Fprintf(out, "  %-22s %-6s default=%-14s %s\n", s.Name, kindString(s.Kind), s.Default, s.Description)
		if len(s.Allowed) > 0 {
			fmt.Fprintf(out, "  %-22s allowed=%s\n", "", strings.Join(s.Allowed, "|"))
		}
	}
	return nil
}

func kindString(k pass.Kind) string {
	switch k {
	case pass.Bool:
		return "bool"
	case pass.Int:
		return "int"
	case pass.Enum:
		return "enum"
	default:
		return "string"
	}
}
