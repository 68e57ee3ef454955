// Package ingest bulk-loads the generated flat files into the persistent
// store with full-replace semantics per table.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/datasmiths/shopforge/internal/config"
	"github.com/datasmiths/shopforge/internal/dataset"
	"github.com/datasmiths/shopforge/internal/db"
)

type Ingestor struct {
	cfg  *config.Config
	conn *db.Connection
	log  *zap.Logger
	qb   squirrel.StatementBuilderType
}

func New(cfg *config.Config, conn *db.Connection, log *zap.Logger) *Ingestor {
	return &Ingestor{
		cfg:  cfg,
		conn: conn,
		log:  log,
		qb:   squirrel.StatementBuilder.PlaceholderFormat(conn.Placeholder()),
	}
}

// Run replaces every registry table from its CSV file, in order. A failed
// table does not roll back the tables loaded before it, and the remaining
// tables are still attempted; the per-table errors come back aggregated.
// Each loaded table gets one log line with its row count.
func (i *Ingestor) Run(ctx context.Context) error {
	run := i.log.With(zap.String("run_id", uuid.NewString()))

	var errs error
	for _, table := range dataset.Tables {
		n, err := i.loadTable(ctx, table)
		if err != nil {
			run.Error("table ingestion failed",
				zap.String("table", table.Name),
				zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}
		run.Info("rows ingested",
			zap.String("table", table.Name),
			zap.Int("rows", n))
	}
	return errs
}

func (i *Ingestor) loadTable(ctx context.Context, table dataset.Table) (int, error) {
	path := filepath.Join(i.cfg.DataDir, table.Name+".csv")
	file, err := os.Open(path)
	if err != nil {
		return 0, &dataset.ResourceError{Stage: "ingest", Path: path, Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return 0, &dataset.ResourceError{Stage: "ingest", Path: path, Err: err}
	}

	want := table.ColumnNames()
	if !columnsEqual(header, want) {
		return 0, &dataset.SchemaError{Table: table.Name, Want: want, Got: header}
	}

	records, err := reader.ReadAll()
	if err != nil {
		return 0, &dataset.ResourceError{Stage: "ingest", Path: path, Err: err}
	}

	if err := i.replaceTable(ctx, table, records); err != nil {
		return 0, fmt.Errorf("failed to replace table %s: %w", table.Name, err)
	}
	return len(records), nil
}

// replaceTable loads the rows into a staging table and swaps it in under the
// live name within one transaction, so readers never observe an empty table.
func (i *Ingestor) replaceTable(ctx context.Context, table dataset.Table, records [][]string) error {
	staging := table.Name + "_staging"

	tx, err := i.conn.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+staging); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, table.CreateSQL(staging)); err != nil {
		return err
	}

	insert := i.qb.Insert(staging).Columns(table.ColumnNames()...)
	for _, record := range records {
		values, err := convertRecord(table, record)
		if err != nil {
			return err
		}
		query, args, err := insert.Values(values...).ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table.Name); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s RENAME TO %s", staging, table.Name)); err != nil {
		return err
	}

	return tx.Commit()
}

// convertRecord coerces CSV fields to the registry's column types so the
// store receives integers as integers, not text.
func convertRecord(table dataset.Table, record []string) ([]interface{}, error) {
	values := make([]interface{}, len(record))
	for j, field := range record {
		col := table.Columns[j]
		if col.SQLType == "INTEGER" {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("column %s.%s: %w", table.Name, col.Name, err)
			}
			values[j] = n
			continue
		}
		values[j] = field
	}
	return values, nil
}

func columnsEqual(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
