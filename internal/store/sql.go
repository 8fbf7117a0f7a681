package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// SQLStore reads rows from a MySQL or Postgres database.
type SQLStore struct {
	DB     *sql.DB
	Driver string
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{DB: db, Driver: driver}
}

func (s *SQLStore) quote(ident string) string {
	if s.Driver == DriverPostgres {
		return `"` + ident + `"`
	}
	return "`" + ident + "`"
}

func (s *SQLStore) buildSelect(q Query) string {
	var b strings.Builder
	b.WriteString("SELECT * FROM ")
	b.WriteString(s.quote(q.Table))
	if q.OrderBy != "" {
		dir := "ASC"
		if q.Descending {
			dir = "DESC"
		}
		fmt.Fprintf(&b, " ORDER BY %s %s", s.quote(q.OrderBy), dir)
	}
	if q.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", q.Limit)
	}
	return b.String()
}

func (s *SQLStore) Select(ctx context.Context, q Query) ([]Row, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, s.buildSelect(q))
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, translateError(err)
	}

	out := []Row{}
	for rows.Next() {
		vals := make([]any, len(colTypes))
		ptrs := make([]any, len(colTypes))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, translateError(err)
		}
		row := make(Row, len(colTypes))
		for i, ct := range colTypes {
			row[ct.Name()] = columnValue(ct, vals[i])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	return out, nil
}

// columnValue turns driver byte slices into strings, or numbers for decimal columns.
// Integer BOOL/BOOLEAN columns (MySQL) become bools.
func columnValue(ct *sql.ColumnType, v any) any {
	typ := strings.ToUpper(ct.DatabaseTypeName())
	if n, ok := v.(int64); ok && (typ == "BOOL" || typ == "BOOLEAN") {
		return n != 0
	}
	b, ok := v.([]byte)
	if !ok {
		return v
	}
	switch typ {
	case "DECIMAL", "NUMERIC":
		if f, err := strconv.ParseFloat(string(b), 64); err == nil {
			return f
		}
	}
	return string(b)
}

// HasTable reports whether table exists in the current schema.
func (s *SQLStore) HasTable(ctx context.Context, table string) (bool, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1`
	if s.Driver == DriverPostgres {
		query = `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = current_schema()
		  AND table_name = $1
		LIMIT 1`
	}

	var name sql.NullString
	err := s.DB.QueryRowContext(ctx, query, table).Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, translateError(err)
	}
	return name.Valid && name.String != "", nil
}
