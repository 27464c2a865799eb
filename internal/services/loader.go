package services

import (
	"context"
	"fmt"

	"github.com/vvka-141/vertica-loader/internal/config"
	"github.com/vvka-141/vertica-loader/internal/dates"
	"github.com/vvka-141/vertica-loader/internal/db"
	"github.com/vvka-141/vertica-loader/internal/files/filesystem"
	"github.com/vvka-141/vertica-loader/internal/load"
	"github.com/vvka-141/vertica-loader/pkg/loader"
)

// LoadService turns a loader document into statements and runs them.
// Thread-Safety: NOT safe for concurrent Run() calls on the same instance.
type LoadService struct {
	connectorFactory func(dsn string) (loader.Connector, error)
	files            filesystem.FileSystemProvider
	logger           loader.Logger
}

// NewLoadService creates a new LoadService with all dependencies injected.
// Panics on nil dependencies; runtime conditions are returned as errors.
func NewLoadService(
	connectorFactory func(dsn string) (loader.Connector, error),
	files filesystem.FileSystemProvider,
	logger loader.Logger,
) *LoadService {
	if connectorFactory == nil {
		panic("connectorFactory cannot be nil")
	}
	if files == nil {
		panic("files cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &LoadService{
		connectorFactory: connectorFactory,
		files:            files,
		logger:           logger,
	}
}

// Plan generates the statements of every table without touching the
// database. It fails on the first table whose statements cannot be
// generated.
func (s *LoadService) Plan(ctx context.Context, job loader.JobConfig) ([]loader.TablePlan, error) {
	tables, err := s.tableConfigs(job)
	if err != nil {
		return nil, err
	}

	plans := make([]loader.TablePlan, 0, len(tables))
	for _, table := range tables {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		statements, err := table.GenerateSQL(s.files, s.logger)
		if err != nil {
			return nil, err
		}
		plans = append(plans, loader.TablePlan{Table: table.Table, Statements: statements})
	}
	return plans, nil
}

// Run loads every table of the job in document order over one session.
// Tables are generated and executed one at a time, so a failure leaves the
// tables before it loaded.
func (s *LoadService) Run(ctx context.Context, job loader.JobConfig) (loader.Summary, error) {
	var summary loader.Summary

	s.logger.Info("Load started (run %s)", job.RunID)

	tables, err := s.tableConfigs(job)
	if err != nil {
		return summary, err
	}

	connector, err := s.connectorFactory(job.DSN)
	if err != nil {
		return summary, fmt.Errorf("failed to create connector: %w", err)
	}

	session, err := connector.Connect(ctx)
	if err != nil {
		return summary, err
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			s.logger.Error("Failed to close session: %v", cerr)
		}
	}()

	executor := db.NewExecutor(session, s.logger)

	for _, table := range tables {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		s.logger.Info("Loading %s", table.Table)
		statements, err := table.GenerateSQL(s.files, s.logger)
		if err != nil {
			return summary, err
		}

		rows, err := executor.Execute(ctx, statements)
		summary.RowsAffected += rows
		if err != nil {
			return summary, fmt.Errorf("loading %s: %w", table.Table, err)
		}
		summary.Tables++
		summary.Statements += len(statements)
	}

	s.logger.Info("Load completed: %d tables, %d statements, %d rows", summary.Tables, summary.Statements, summary.RowsAffected)
	return summary, nil
}

func (s *LoadService) tableConfigs(job loader.JobConfig) ([]*load.LoadConfig, error) {
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job configuration: %w", err)
	}

	days, err := dates.ComputeDates(job.StartDate, job.EndDate, job.DateFormat)
	if err != nil {
		return nil, err
	}
	s.logger.Verbose("Dates to load: %v", days)

	doc, err := config.Load(s.files, job.ConfigPath)
	if err != nil {
		return nil, err
	}

	return config.LoadTableConfigs(doc, days)
}
