package cmd

import (
	"fmt"
	"io"

	"linecount/pkg/config"
	"linecount/pkg/logging"
	"linecount/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	single bool // Accept exactly one file; its failure is fatal
	debug  bool // Development logging at debug level
}

// NewRootCmd builds the linecount command. The exit code of a completed run
// is stored in exitCode.
func NewRootCmd(stdout, stderr io.Writer, exitCode *int) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "linecount <file> [<file> ...]",
		Short: "linecount counts the lines of text files",
		Long: `linecount prints the number of lines of each file named on the command line.
Set ENUMERATE_CONTENTS (to any value) or pass --enumerate to also print every
line prefixed with its number.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Setup(opts.debug, version.AppName, version.Version); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := config.Load(cmd.Flags())
			code, err := runCount(cmd.Name(), args, opts.single, flags, stdout, stderr, logging.Logger)
			if err != nil {
				return err
			}
			*exitCode = code
			return nil
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.Flags().BoolVarP(&opts.single, "single", "s", false, "Accept exactly one file and stop on its error")
	rootCmd.Flags().BoolP(config.EnumerateFlag, "e", false, "Print every line prefixed with its number (same as ENUMERATE_CONTENTS)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging on stderr")

	setVersion(rootCmd)
	return rootCmd
}

// Execute runs the command with args and returns the process exit code.
// Command errors, including a wrong number of files, are printed as
// "Error: <cause>" on stderr and yield exit code 1.
func Execute(args []string, stdout, stderr io.Writer) int {
	exitCode := 0
	rootCmd := NewRootCmd(stdout, stderr, &exitCode)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		logging.Logger.Debug("linecount execution failed", zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return exitCode
}
