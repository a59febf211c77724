// Package querybuilder renders the small subset of SQL the repositories
// compose dynamically: positional-placeholder SELECTs and multi-row
// INSERTs. Anything more involved is written as raw SQL at the call site.
package querybuilder

import (
	"fmt"
	"strings"
)

// Condition renders one WHERE predicate, continuing the $n placeholder
// numbering from next.
type Condition interface {
	render(next int) (sql string, args []any)
}

type equals struct {
	column string
	value  any
}

// Eq matches column = value.
func Eq(column string, value any) Condition {
	return equals{column: column, value: value}
}

func (e equals) render(next int) (string, []any) {
	return fmt.Sprintf("%s = $%d", e.column, next), []any{e.value}
}

type inSet struct {
	column string
	values []any
}

// In matches column against the given set; an empty set matches nothing.
func In(column string, values []any) Condition {
	return inSet{column: column, values: values}
}

func (c inSet) render(next int) (string, []any) {
	if len(c.values) == 0 {
		return "1=0", nil
	}

	holders := make([]string, len(c.values))
	for i := range c.values {
		holders[i] = fmt.Sprintf("$%d", next+i)
	}

	return fmt.Sprintf("%s IN (%s)", c.column, strings.Join(holders, ", ")), c.values
}

type SelectBuilder struct {
	columns   []string
	table     string
	where     []Condition
	orderBy   []string
	limit     int
	offset    int
	hasLimit  bool
	hasOffset bool
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	b.hasLimit = true
	return b
}

func (b *SelectBuilder) Offset(offset int) *SelectBuilder {
	b.offset = offset
	b.hasOffset = true
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	clauses := []string{
		"SELECT " + strings.Join(b.columns, ", "),
		"FROM " + b.table,
	}

	var args []any
	if len(b.where) > 0 {
		predicates := make([]string, 0, len(b.where))
		for _, cond := range b.where {
			sql, condArgs := cond.render(len(args) + 1)
			predicates = append(predicates, sql)
			args = append(args, condArgs...)
		}
		clauses = append(clauses, "WHERE "+strings.Join(predicates, " AND "))
	}
	if len(b.orderBy) > 0 {
		clauses = append(clauses, "ORDER BY "+strings.Join(b.orderBy, ", "))
	}
	if b.hasLimit {
		clauses = append(clauses, fmt.Sprintf("LIMIT %d", b.limit))
	}
	if b.hasOffset {
		clauses = append(clauses, fmt.Sprintf("OFFSET %d", b.offset))
	}

	return strings.Join(clauses, " "), args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// Suffix appends trailing SQL such as a RETURNING or ON CONFLICT clause.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	rowSQL := make([]string, 0, len(b.rows))
	args := make([]any, 0, len(b.rows)*len(b.columns))
	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		holders := make([]string, len(row))
		for i, value := range row {
			holders[i] = fmt.Sprintf("$%d", len(args)+1)
			args = append(args, value)
		}
		rowSQL = append(rowSQL, "("+strings.Join(holders, ", ")+")")
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		b.table, strings.Join(b.columns, ", "), strings.Join(rowSQL, ", "))
	if b.suffix != "" {
		query += " " + b.suffix
	}

	return query, args, nil
}
