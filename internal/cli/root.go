package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vertica-loader",
	Short: "Load dated CSV extracts into Vertica",
	Long: `vertica-loader reads a YAML document describing one or more tables, resolves
the data file of every table for each date in the requested range, and loads
the files into Vertica with COPY ... FROM LOCAL over a single ODBC session.

Every date of every table is committed on its own and recorded in the
last_updated bookkeeping table.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration, date format or date range
  11 - Database connection failed
  13 - SQL execution failed
  14 - Data file not found`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for vertica-loader")
}
