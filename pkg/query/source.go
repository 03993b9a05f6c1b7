package query

import (
	"fmt"
	"strings"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Order is one sort directive.
type Order struct {
	Column    string
	Direction Direction
}

// Source is the queryable a repository paginates over: a table plus any
// join clauses and an optional GROUP BY. It is a plain value passed through
// the pagination call chain, never stored on the repository, so one request
// cannot leak joins into the next.
type Source struct {
	Table   string
	Joins   []string
	GroupBy string
}

func (s Source) fromClause() string {
	var sb strings.Builder
	sb.WriteString(" FROM ")
	sb.WriteString(s.Table)
	for _, join := range s.Joins {
		sb.WriteString(" ")
		sb.WriteString(join)
	}
	return sb.String()
}

// renderConditions renders each condition as a parameterized predicate,
// appending its bound values to args. Column names only ever come from the
// caller's whitelists or the caller's own base conditions; values are always
// bound, including for raw computed-expression conditions.
func renderConditions(conds []Condition, args []any, argIndex int) ([]string, []any, int) {
	clauses := make([]string, 0, len(conds))
	for _, c := range conds {
		switch c.Operator {
		case OpBetween:
			if len(c.Values) != 2 {
				continue
			}
			clauses = append(clauses, fmt.Sprintf("%s BETWEEN $%d AND $%d", c.Column, argIndex, argIndex+1))
			args = append(args, c.Values[0], c.Values[1])
			argIndex += 2
		case OpIn:
			if len(c.Values) == 0 {
				continue
			}
			placeholders := make([]string, len(c.Values))
			for i, v := range c.Values {
				placeholders[i] = fmt.Sprintf("$%d", argIndex)
				args = append(args, v)
				argIndex++
			}
			clauses = append(clauses, fmt.Sprintf("%s IN (%s)", c.Column, strings.Join(placeholders, ", ")))
		default:
			clauses = append(clauses, fmt.Sprintf("%s %s $%d", c.Column, c.Operator, argIndex))
			args = append(args, c.Value)
			argIndex++
		}
	}
	return clauses, args, argIndex
}

func buildCountSQL(src Source, conds []Condition) (string, []any) {
	clauses, args, _ := renderConditions(conds, []any{}, 1)

	var body strings.Builder
	body.WriteString(src.fromClause())
	if len(clauses) > 0 {
		body.WriteString(" WHERE ")
		body.WriteString(strings.Join(clauses, " AND "))
	}

	if src.GroupBy != "" {
		// A grouped source distorts COUNT(*); count the groups instead.
		return fmt.Sprintf("SELECT COUNT(*) FROM (SELECT 1%s GROUP BY %s) grouped", body.String(), src.GroupBy), args
	}
	return "SELECT COUNT(*)" + body.String(), args
}

func buildSelectSQL(src Source, cols []string, conds []Condition, order []Order, limit, offset int) (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(cols, ", "))
	sb.WriteString(src.fromClause())

	clauses, args, argIndex := renderConditions(conds, []any{}, 1)
	if len(clauses) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(clauses, " AND "))
	}
	if src.GroupBy != "" {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(src.GroupBy)
	}
	if len(order) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(renderOrder(order))
	}

	sb.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1))
	args = append(args, limit, offset)

	return sb.String(), args
}

func renderOrder(order []Order) string {
	parts := make([]string, len(order))
	for i, o := range order {
		parts[i] = fmt.Sprintf("%s %s", o.Column, o.Direction)
	}
	return strings.Join(parts, ", ")
}
