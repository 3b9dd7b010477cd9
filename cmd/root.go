package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/dor-services-client/config"
	"github.com/s0up4200/dor-services-client/dor"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *dor.Client

	buildVersion = "dev"
	buildTime    = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dsc",
	Short: "A command line client for dor-services-app",
	Long: `dsc talks to a dor-services-app instance to inspect digital objects,
list and fetch their files, trigger publish/preserve/shelve jobs and read
preservation metadata.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// SetVersion records build information shown by the version command
func SetVersion(version, built string) {
	buildVersion = version
	buildTime = built
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(versionCmd)
}

// initializeApp loads configuration and builds the shared client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client = dor.New(dor.Config{
		URL:        cfg.DOR.URL,
		Token:      cfg.DOR.Token,
		Username:   cfg.DOR.Username,
		Password:   cfg.DOR.Password,
		APIVersion: cfg.DOR.APIVersion,
		Timeout:    cfg.DOR.Timeout,
		UserAgent:  "dsc/" + buildVersion,
		Logger:     logger,
	})

	logger.Debug().
		Str("url", cfg.DOR.URL).
		Str("api_version", cfg.DOR.APIVersion).
		Msg("Client configured")

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Colour only makes sense when a person is reading stderr
	fd := os.Stderr.Fd()
	terminal := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !terminal,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// No config is needed to print the version
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dsc %s (built %s)\n", buildVersion, buildTime)
	},
}
