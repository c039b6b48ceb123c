// File: cmd/version.go
package cmd

import (
	"linecount/pkg/version"

	"github.com/spf13/cobra"
)

const shortFlag = "short"

// setVersion enables --version, and --short to print the version number only.
// A version subcommand would shadow a file named "version", so both are flags.
func setVersion(cmd *cobra.Command) {
	cmd.Version = version.Version
	cmd.Flags().Bool(shortFlag, false, "With --version, print the version number only")

	// The template runs after flag parsing, so --short is visible here.
	cobra.AddTemplateFunc("linecountVersion", func(c *cobra.Command) string {
		short, _ := c.Flags().GetBool(shortFlag)
		return version.Get().Format(short)
	})
	cmd.SetVersionTemplate("{{linecountVersion .}}\n")
}
