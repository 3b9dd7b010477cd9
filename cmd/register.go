package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// registerCmd registers a new object from a JSON request document
var registerCmd = &cobra.Command{
	Use:   "register <request.json|->",
	Short: "Register a new object",
	Args:  cobra.ExactArgs(1),
	RunE:  runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}
	if !json.Valid(data) {
		return fmt.Errorf("request is not valid JSON")
	}

	model, err := client.Register(cmd.Context(), json.RawMessage(data))
	if err != nil {
		return err
	}

	logger.Info().Str("druid", model.ExternalIdentifier()).Msg("Object registered")
	fmt.Fprintln(cmd.OutOrStdout(), model.ExternalIdentifier())
	return nil
}
