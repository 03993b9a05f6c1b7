package query

import "strings"

// Operator is a filter comparison operator.
type Operator string

const (
	OpEqual          Operator = "="
	OpGreater        Operator = ">"
	OpLess           Operator = "<"
	OpGreaterOrEqual Operator = ">="
	OpLessOrEqual    Operator = "<="
	OpBetween        Operator = "><"
	OpLike           Operator = "LIKE"
	OpIn             Operator = "IN"
)

// operatorPrefixes is checked in order. Longer prefixes come first so ">="
// is not mis-parsed as ">" followed by a literal "=".
var operatorPrefixes = []struct {
	prefix string
	op     Operator
}{
	{">=", OpGreaterOrEqual},
	{"<=", OpLessOrEqual},
	{"><", OpBetween},
	{">", OpGreater},
	{"<", OpLess},
}

// Condition is one filter predicate. Column is the resolved physical column,
// or a computed expression when Raw is set. Values carries the two bounds of
// a BETWEEN or the members of an IN; Value carries everything else.
type Condition struct {
	Column   string
	Operator Operator
	Value    string
	Values   []string
	Raw      bool
}

// parseValue extracts the operator and cleaned value from a raw filter value.
// A recognized operator prefix is stripped; a "%" anywhere in the remaining
// value forces LIKE regardless of the prefix. A BETWEEN value that does not
// split into two bounds degrades to an equality match.
func parseValue(raw string) (Operator, string, []string) {
	op := OpEqual
	value := raw
	for _, p := range operatorPrefixes {
		if strings.HasPrefix(value, p.prefix) {
			op = p.op
			value = value[len(p.prefix):]
			break
		}
	}
	value = strings.TrimSpace(value)

	if strings.Contains(value, "%") {
		return OpLike, value, nil
	}

	if op == OpBetween {
		parts := strings.SplitN(value, ",", 2)
		if len(parts) != 2 {
			return OpEqual, value, nil
		}
		return OpBetween, value, []string{strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])}
	}

	return op, value, nil
}
