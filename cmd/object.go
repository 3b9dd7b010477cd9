package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/dor-services-client/dor"
)

var (
	workflow string
	laneID   string
)

// objectCmd groups commands acting on a single object
var objectCmd = &cobra.Command{
	Use:   "object",
	Short: "Inspect an object or start jobs for it",
}

var objectShowCmd = &cobra.Command{
	Use:   "show <druid>",
	Short: "Print the Cocina model of an object",
	Args:  cobra.ExactArgs(1),
	RunE:  runObjectShow,
}

var objectPublishCmd = &cobra.Command{
	Use:   "publish <druid>",
	Short: "Start a publish job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		location, err := client.Object(args[0]).Publish(cmd.Context(), dor.PublishOptions{
			Workflow: workflow,
			LaneID:   laneID,
		})
		return reportJob(cmd, "publish", args[0], location, err)
	},
}

var objectPreserveCmd = &cobra.Command{
	Use:   "preserve <druid>",
	Short: "Start a preservation job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		location, err := client.Object(args[0]).Preserve(cmd.Context(), dor.JobOptions{LaneID: laneID})
		return reportJob(cmd, "preserve", args[0], location, err)
	},
}

var objectShelveCmd = &cobra.Command{
	Use:   "shelve <druid>",
	Short: "Start a shelving job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		location, err := client.Object(args[0]).Shelve(cmd.Context(), dor.JobOptions{LaneID: laneID})
		return reportJob(cmd, "shelve", args[0], location, err)
	},
}

func init() {
	rootCmd.AddCommand(objectCmd)
	objectCmd.AddCommand(objectShowCmd, objectPublishCmd, objectPreserveCmd, objectShelveCmd)

	objectPublishCmd.Flags().StringVar(&workflow, "workflow", "", "workflow to report progress to")
	for _, c := range []*cobra.Command{objectPublishCmd, objectPreserveCmd, objectShelveCmd} {
		c.Flags().StringVar(&laneID, "lane-id", "", "workflow lane for the job")
	}
}

func runObjectShow(cmd *cobra.Command, args []string) error {
	model, err := client.Object(args[0]).Find(cmd.Context())
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, model.Raw(), "", "  "); err != nil {
		return fmt.Errorf("failed to format object: %w", err)
	}
	out.WriteByte('\n')

	_, err = cmd.OutOrStdout().Write(out.Bytes())
	return err
}

func reportJob(cmd *cobra.Command, job, druid, location string, err error) error {
	if err != nil {
		return err
	}

	logger.Info().
		Str("druid", druid).
		Str("job", job).
		Str("location", location).
		Msg("Job started")

	fmt.Fprintln(cmd.OutOrStdout(), location)
	return nil
}
