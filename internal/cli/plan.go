package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/vvka-141/vertica-loader/internal/logging"
	"github.com/vvka-141/vertica-loader/pkg/loader"
)

var planCmd = &cobra.Command{
	Use:   "plan <config_file>",
	Short: "Print the statements a load would run",
	Long: `Plan generates the statements of every table exactly as load would, checking
that each data file exists, and prints them to stdout without connecting to
the database.

Examples:
  vertica-loader plan tables.yml --start-date 2017-08-01 --end-date 2017-08-03
  vertica-loader plan tables.yml --no-debug > load.sql`,
	Args: RequireConfigPath,
	RunE: runPlan,
}

var planFlags jobFlagValues

func init() {
	rootCmd.AddCommand(planCmd)
	registerJobFlags(planCmd, &planFlags)
}

func runPlan(cmd *cobra.Command, args []string) error {
	job, err := buildJobConfig(args[0], planFlags, time.Now())
	if err != nil {
		return err
	}

	var logger loader.Logger = logging.NewNullLogger()
	if job.Debug {
		logger = logging.NewWriterLogger(cmd.ErrOrStderr(), true)
	}

	ctx, cancel := jobContext(job.Timeout)
	defer cancel()

	plans, err := newLoadService(logger).Plan(ctx, job)
	if err != nil {
		return fmt.Errorf("plan failed: %w", err)
	}

	return writePlans(cmd.OutOrStdout(), plans)
}

// writePlans prints one commented block per table.
func writePlans(w io.Writer, plans []loader.TablePlan) error {
	for i, plan := range plans {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "-- %s\n", plan.Table); err != nil {
			return err
		}
		for _, stmt := range plan.Statements {
			if _, err := fmt.Fprintln(w, stmt); err != nil {
				return err
			}
		}
	}
	return nil
}
