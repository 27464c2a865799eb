package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/ncruces/go-strftime"
	"github.com/spf13/cobra"
	"github.com/vvka-141/vertica-loader/internal/db"
	"github.com/vvka-141/vertica-loader/internal/files/filesystem"
	"github.com/vvka-141/vertica-loader/internal/services"
	"github.com/vvka-141/vertica-loader/pkg/loader"
)

// jobFlagValues holds the flags shared by load and plan.
type jobFlagValues struct {
	startDate, endDate, dateFormat, dsn string
	debug, noDebug                      bool
	timeout                             time.Duration
}

// registerJobFlags binds the shared job flags of cmd to values.
func registerJobFlags(cmd *cobra.Command, values *jobFlagValues) {
	cmd.Flags().StringVar(&values.startDate, "start-date", "",
		"Date to load, or the first date of a range (default: today, in --date-format)")
	cmd.Flags().StringVar(&values.endDate, "end-date", "",
		"Last date of the range to load, inclusive (default: load --start-date only)")
	cmd.Flags().StringVar(&values.dateFormat, "date-format", loader.DefaultDateFormat,
		"strftime format of --start-date, --end-date and the {date} placeholder")
	cmd.Flags().StringVar(&values.dsn, "dsn", "",
		"ODBC data source name or full connection string\n"+
			"Precedence: --dsn > $"+loader.DSNEnvVar+" > "+loader.DefaultDSN)
	cmd.Flags().BoolVar(&values.debug, "debug", true, "Log every statement before it is executed")
	cmd.Flags().BoolVar(&values.noDebug, "no-debug", false, "Disable statement logging")
	cmd.MarkFlagsMutuallyExclusive("debug", "no-debug")
	cmd.Flags().DurationVar(&values.timeout, "timeout", 0,
		"Abort the run after this duration (default: no limit)\n"+
			"Examples: 30m, 2h")
}

// buildJobConfig builds a JobConfig from the flag values and environment.
func buildJobConfig(configPath string, values jobFlagValues, now time.Time) (loader.JobConfig, error) {
	_ = godotenv.Load()

	dateFormat := values.dateFormat
	if dateFormat == "" {
		dateFormat = loader.DefaultDateFormat
	}

	startDate := values.startDate
	if startDate == "" {
		startDate = strftime.Format(dateFormat, now)
	}

	job := loader.JobConfig{
		RunID:      uuid.New(),
		ConfigPath: configPath,
		StartDate:  startDate,
		EndDate:    values.endDate,
		DateFormat: dateFormat,
		DSN:        resolveDSN(values.dsn),
		Timeout:    values.timeout,
		Debug:      values.debug && !values.noDebug,
	}

	if err := job.Validate(); err != nil {
		return loader.JobConfig{}, err
	}
	return job, nil
}

// resolveDSN applies flag > environment > default precedence.
func resolveDSN(flag string) string {
	if dsn := strings.TrimSpace(flag); dsn != "" {
		return dsn
	}
	if dsn := strings.TrimSpace(os.Getenv(loader.DSNEnvVar)); dsn != "" {
		return dsn
	}
	return loader.DefaultDSN
}

// newLoadService wires the production dependencies.
func newLoadService(logger loader.Logger) *services.LoadService {
	return services.NewLoadService(
		func(dsn string) (loader.Connector, error) {
			return db.NewConnector(dsn, logger)
		},
		filesystem.NewOSFileSystem(),
		logger,
	)
}

// jobContext returns a context cancelled on timeout, SIGINT or SIGTERM.
func jobContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	if timeout > 0 {
		var timeoutCancel context.CancelFunc
		ctx, timeoutCancel = context.WithTimeout(ctx, timeout)
		parentCancel := cancel
		cancel = func() {
			timeoutCancel()
			parentCancel()
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling load...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
