package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rohankatakam/gitprice/internal/config"
	"github.com/rohankatakam/gitprice/internal/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"

	cfgFile string
	debug   bool
	logger  *logrus.Logger
	cfg     *config.Config
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}

// printError prints err, adding the context and stack trace of typed errors
// when debug logging is on
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	if !debug && (logger == nil || !logger.IsLevelEnabled(logrus.DebugLevel)) {
		return
	}
	var typed *errors.Error
	if stderrors.As(err, &typed) {
		fmt.Fprint(w, typed.DetailedString())
	}
}

var rootCmd = &cobra.Command{
	Use:   "gitprice",
	Short: "gitprice - estimate what a developer is owed from git history",
	Long: `gitprice walks an author's commits in time order and bills each step:
commits close together count as worked hours, commits after a long gap
are billed by the lines they added.

Examples:
  # Estimate with default rates ($10/h, $0.05/line)
  gitprice --author "Jane Doe"

  # Only bill work after a given Unix time, show every session
  gitprice --author jane@example.com --after 1700000000 -v 7

  # Convert a git log date to a Unix timestamp
  gitprice --convert "Thu Apr 7 15:13:13 2005 -0700"`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		logger = newLogger(cfg)
		if err != nil {
			logger.WithError(err).Warn("Failed to load config, using defaults")
			cfg = config.Default()
		}
		return nil
	},
	RunE: runEstimate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .gitprice/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")

	// Shared by every command that runs an estimate
	rootCmd.PersistentFlags().String("repo", "", "repository path (default: working directory)")
	rootCmd.PersistentFlags().String("format", "text", "output format: text, json or yaml")
	rootCmd.PersistentFlags().Int64("after", 0, "only bill commits at or after this Unix timestamp")
	rootCmd.PersistentFlags().Float64("per-hour", 0, "hourly rate (default 10)")
	rootCmd.PersistentFlags().Float64("per-line", 0, "rate per added line (default 0.05, or 0.5% of --per-hour)")
	rootCmd.PersistentFlags().Duration("gap", 0, "idle time that ends a session (default 2h)")

	rootCmd.SetVersionTemplate(`gitprice {{.Version}}
Build time: ` + BuildTime + `
Git commit: ` + GitCommit + `
`)

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(authorsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the stderr logger; --debug overrides logging.level
func newLogger(c *config.Config) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)

	level := logrus.InfoLevel
	if c != nil {
		if parsed, err := logrus.ParseLevel(c.Logging.Level); err == nil {
			level = parsed
		}
		if c.Logging.JSON {
			l.SetFormatter(&logrus.JSONFormatter{})
		}
	}
	if debug {
		level = logrus.DebugLevel
	}
	l.SetLevel(level)
	return l
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gitprice %s\nBuild time: %s\nGit commit: %s\n", Version, BuildTime, GitCommit)
	},
}
