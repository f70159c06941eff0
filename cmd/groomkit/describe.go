package main

import (
	"fmt"

	"github.com/spf13/cobra"

	groomkit "github.com/reoring/groomkit"
)

var describers = map[string]groomkit.Describer{
	"record": groomkit.GroomingRecord{},
	"map":    groomkit.DynamicMap(nil),
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "describe record|map",
		Short:     "Print the JSON Schema type description",
		Long:      `Prints how a type is exposed to external type tooling: the record is fully structured, the state map is an opaque string.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"record", "map"},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := describers[args[0]]
			if !ok {
				return fmt.Errorf("unknown type %q (want record or map)", args[0])
			}
			desc := d.Describe()
			a.log.Debug("describe", "type", args[0], "kind", desc.Kind.String())
			return writeJSON(cmd.OutOrStdout(), desc.Schema)
		},
	}
}

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default grooming state map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), groomkit.NewGroomingStateMap())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of groomkit",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "groomkit %s\n", version)
		},
	}
}
