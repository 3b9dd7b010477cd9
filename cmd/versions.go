package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// versionsCmd looks up current versions for many objects at once
var versionsCmd = &cobra.Command{
	Use:   "versions <druid>...",
	Short: "Print the current version of one or more objects",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runVersions,
}

func init() {
	rootCmd.AddCommand(versionsCmd)
}

func runVersions(cmd *cobra.Command, args []string) error {
	result, err := client.CurrentVersions(cmd.Context(), args, cfg.DOR.Concurrency)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, druid := range args {
		if version, ok := result.Successful[druid]; ok {
			fmt.Fprintf(w, "%s\t%d\n", druid, version)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(result.Failed) == 0 {
		return nil
	}

	sort.Slice(result.Failed, func(i, j int) bool {
		return result.Failed[i].ObjectIdentifier < result.Failed[j].ObjectIdentifier
	})
	for _, failure := range result.Failed {
		logger.Error().
			Err(failure.Err).
			Str("druid", failure.ObjectIdentifier).
			Msg("Failed to look up current version")
	}
	return fmt.Errorf("%d of %d lookups failed", len(result.Failed), result.Requested)
}
