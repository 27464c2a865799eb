package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireConfigPath validates that exactly one config_file argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireConfigPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <config_file>

Usage: %s

Example:
  %s tables.yml --start-date 2017-08-01 --end-date 2017-08-15`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
