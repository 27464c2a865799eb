package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vvka-141/vertica-loader/internal/logging"
)

var loadCmd = &cobra.Command{
	Use:   "load <config_file>",
	Short: "Load the tables of a config file into Vertica",
	Long: `Load resolves the data file of every table for each date and runs, per table:

  TRUNCATE TABLE <table>;                 (unless truncate: false)
  DELETE FROM <table> WHERE ...;          (per date, with delete_before_insert)
  COPY <table> FROM LOCAL '<file>' ...;   (per date)
  INSERT INTO last_updated ...;           (per date)
  COMMIT;                                 (per date)

Tables are loaded in document order. The run stops at the first missing
data file or failing statement; tables loaded before it stay loaded.

Arguments:
  config_file    YAML document with a file_spec block and a tables list

Examples:
  # Load today's files
  vertica-loader load tables.yml

  # Backfill two weeks
  vertica-loader load tables.yml --start-date 2017-08-01 --end-date 2017-08-15

  # Compact dates, explicit connection string
  vertica-loader load tables.yml --start-date 20170801 --date-format %Y%m%d \
    --dsn "Driver=Vertica;Servername=vertica.internal;Database=dwh"`,
	Args: RequireConfigPath,
	RunE: runLoad,
}

var loadFlags jobFlagValues

func init() {
	rootCmd.AddCommand(loadCmd)
	registerJobFlags(loadCmd, &loadFlags)
}

func runLoad(cmd *cobra.Command, args []string) error {
	job, err := buildJobConfig(args[0], loadFlags, time.Now())
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(job.Debug)
	if job.Debug {
		logger.Verbose("Logging is set to DEBUG level")
	}

	ctx, cancel := jobContext(job.Timeout)
	defer cancel()

	if _, err := newLoadService(logger).Run(ctx, job); err != nil {
		logger.Error("%v", err)
		return fmt.Errorf("load failed: %w", err)
	}
	return nil
}
