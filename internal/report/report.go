// Package report executes the fixed reporting query against the store and
// renders the result set as a table.
package report

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/datasmiths/shopforge/internal/config"
	"github.com/datasmiths/shopforge/internal/dataset"
	"github.com/datasmiths/shopforge/internal/db"
)

// Result is one executed query's column order and stringified rows.
type Result struct {
	Columns []string
	Rows    [][]string
}

// Run reads the configured query file verbatim, executes it, and renders the
// result to out. The query is not parameterized or paginated.
func Run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	queryText, err := os.ReadFile(cfg.QueryPath)
	if err != nil {
		return &dataset.ResourceError{Stage: "report", Path: cfg.QueryPath, Err: err}
	}

	conn, err := db.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	result, err := Execute(ctx, conn.DB, strings.TrimSpace(string(queryText)))
	if err != nil {
		return fmt.Errorf("failed to execute report query: %w", err)
	}

	Render(out, result)
	return nil
}

// Execute runs a single statement and collects the full result set.
func Execute(ctx context.Context, database *sql.DB, query string) (*Result, error) {
	rows, err := database.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &Result{Columns: columns}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		for i := range values {
			values[i] = new(interface{})
		}
		if err := rows.Scan(values...); err != nil {
			return nil, err
		}

		record := make([]string, len(columns))
		for i, v := range values {
			record[i] = formatValue(*(v.(*interface{})))
		}
		result.Rows = append(result.Rows, record)
	}
	return result, rows.Err()
}

// Render draws the result as a box table, column order preserved.
func Render(w io.Writer, r *Result) {
	widths := make([]int, len(r.Columns))
	for i, col := range r.Columns {
		widths[i] = len(col)
	}
	for _, row := range r.Rows {
		for i, val := range row {
			if len(val) > widths[i] {
				widths[i] = len(val)
			}
		}
	}

	rule := func(left, mid, right string) {
		fmt.Fprint(w, left)
		for i := range r.Columns {
			fmt.Fprint(w, strings.Repeat("─", widths[i]+2))
			if i < len(r.Columns)-1 {
				fmt.Fprint(w, mid)
			}
		}
		fmt.Fprintln(w, right)
	}

	line := func(values []string) {
		fmt.Fprint(w, "│")
		for i, val := range values {
			fmt.Fprintf(w, " %-*s │", widths[i], val)
		}
		fmt.Fprintln(w)
	}

	rule("┌", "┬", "┐")
	line(r.Columns)
	rule("├", "┼", "┤")
	for _, row := range r.Rows {
		line(row)
	}
	rule("└", "┴", "┘")
}

func formatValue(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
