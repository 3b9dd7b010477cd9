package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/dor-services-client/filter"
)

var (
	filterExpr string
	preset     string
	outputPath string
	preserved  int
)

// filesCmd groups commands acting on an object's files
var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List and fetch the files of an object",
}

var filesListCmd = &cobra.Command{
	Use:   "list <druid>",
	Short: "List the filenames of an object",
	Long: `List the filenames of an object, optionally narrowed by a filter expression.

Expressions see name, base, dir, ext and depth, plus the helpers
hasExt(name, "tif", ...) and glob(name, "images/*.jp2"). Example:

  dsc files list druid:bc123df4567 --filter 'ext == "jp2" and depth == 0'`,
	Args: cobra.ExactArgs(1),
	RunE: runFilesList,
}

var filesGetCmd = &cobra.Command{
	Use:   "get <druid> <filename>",
	Short: "Download a file of an object",
	Args:  cobra.ExactArgs(2),
	RunE:  runFilesGet,
}

func init() {
	rootCmd.AddCommand(filesCmd)
	filesCmd.AddCommand(filesListCmd, filesGetCmd)

	filesListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	filesListCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")

	filesGetCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write to this path instead of stdout")
	filesGetCmd.Flags().IntVar(&preserved, "version", 0, "fetch the preserved copy from this version")
}

func runFilesList(cmd *cobra.Command, args []string) error {
	names, err := client.Object(args[0]).Files().List(cmd.Context())
	if err != nil {
		return err
	}

	expression, err := getFilterExpression()
	if err != nil {
		return err
	}
	if expression != "" {
		f, err := filter.Compile(expression)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		if names, err = f.Apply(names); err != nil {
			return err
		}
	}

	logger.Debug().
		Str("druid", args[0]).
		Str("filter", expression).
		Int("count", len(names)).
		Msg("Listed files")

	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func runFilesGet(cmd *cobra.Command, args []string) error {
	druid, filename := args[0], args[1]
	files := client.Object(druid).Files()

	var (
		content []byte
		err     error
	)
	if preserved > 0 {
		content, err = files.PreservedContent(cmd.Context(), filename, preserved)
	} else {
		content, err = files.Retrieve(cmd.Context(), filename)
	}
	if err != nil {
		return err
	}
	if content == nil {
		return fmt.Errorf("file %s not found for %s", filename, druid)
	}

	if outputPath == "" {
		_, err = cmd.OutOrStdout().Write(content)
		return err
	}
	if err := os.WriteFile(outputPath, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	logger.Info().
		Str("druid", druid).
		Str("file", filename).
		Str("output", outputPath).
		Int("bytes", len(content)).
		Msg("File saved")
	return nil
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if expression, ok := cfg.Filter.Presets[preset]; ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return "", nil
}
