package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ValuesMarker is replaced by the generated value list when present in a prefix.
const ValuesMarker = "{}"

// maxParams is the bind parameter limit of the Postgres wire protocol.
const maxParams = 65535

var (
	// ErrRowShape indicates rows that are empty or of unequal length.
	ErrRowShape = errors.New("batch rows must be non-empty and of equal length")
	// ErrPlaceholder indicates a prefix with more than one values marker.
	ErrPlaceholder = errors.New("statement prefix contains more than one {} marker")
	// ErrTooManyParams indicates a batch that cannot be bound in one statement.
	ErrTooManyParams = errors.New("batch exceeds the bind parameter limit")
)

// Row is a single result row keyed by column name.
type Row map[string]any

// Int64 reads an integer column, accepting the integer widths drivers return.
func (r Row) Int64(column string) (int64, error) {
	switch v := r[column].(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case []byte:
		return strconv.ParseInt(string(v), 10, 64)
	case string:
		return strconv.ParseInt(v, 10, 64)
	case nil:
		return 0, fmt.Errorf("column %q missing or null", column)
	default:
		return 0, fmt.Errorf("column %q has unexpected type %T", column, v)
	}
}

// IDs extracts one integer column from every row, preserving order.
func IDs(rows []Row, column string) ([]int64, error) {
	ids := make([]int64, 0, len(rows))
	for i, row := range rows {
		id, err := row.Int64(column)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// BuildBatch renders a multi-row statement. Every value is bound through a
// positional parameter; the SQL text only ever contains placeholders.
func BuildBatch(prefix string, rows [][]any) (string, []any, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return "", nil, ErrRowShape
	}

	markers := strings.Count(prefix, ValuesMarker)
	if markers > 1 {
		return "", nil, ErrPlaceholder
	}

	width := len(rows[0])
	if len(rows)*width > maxParams {
		return "", nil, fmt.Errorf("%d rows of %d values: %w", len(rows), width, ErrTooManyParams)
	}

	var values strings.Builder
	args := make([]any, 0, len(rows)*width)
	for i, row := range rows {
		if len(row) != width {
			return "", nil, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), width, ErrRowShape)
		}
		if i > 0 {
			values.WriteString(", ")
		}
		values.WriteByte('(')
		for j, v := range row {
			if j > 0 {
				values.WriteString(", ")
			}
			args = append(args, v)
			values.WriteByte('$')
			values.WriteString(strconv.Itoa(len(args)))
		}
		values.WriteByte(')')
	}

	if markers == 1 {
		return strings.Replace(prefix, ValuesMarker, values.String(), 1), args, nil
	}
	return prefix + " " + values.String(), args, nil
}

// BatchInsert inserts all rows in one round trip and returns any rows
// produced by a RETURNING clause, in statement order. An empty batch returns
// immediately without touching the database.
func (p *Provider) BatchInsert(ctx context.Context, prefix string, rows [][]any) ([]Row, error) {
	if len(rows) == 0 {
		return []Row{}, nil
	}

	query, args, err := BuildBatch(prefix, rows)
	if err != nil {
		return nil, err
	}

	var result []Row
	err = p.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		result, err = collectRows(ctx, tx, query, args)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("batch insert: %w", err)
	}

	return result, nil
}

func collectRows(ctx context.Context, q Querier, query string, args []any) ([]Row, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	result := []Row{}
	for rows.Next() {
		values := make([]any, len(columns))
		targets := make([]any, len(columns))
		for i := range values {
			targets[i] = &values[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		row := make(Row, len(columns))
		for i, column := range columns {
			row[column] = values[i]
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return result, nil
}
