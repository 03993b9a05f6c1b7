package query

import "strings"

// Formatter builds a Condition from a raw filter value, replacing the
// default operator/value parsing for one field. Formatters are registered
// per field at parser construction and validated against the searchable
// whitelist up front; returning an error drops the filter like any other
// malformed input.
type Formatter func(column, value string) (Condition, error)

// MultiValueSeparator splits a filter value into an OR-of-equals list.
const MultiValueSeparator = ";"

// MultiValue is a Formatter turning "a;b;c" into an IN condition.
// A value without separators stays a plain equality match.
func MultiValue(column, value string) (Condition, error) {
	if !strings.Contains(value, MultiValueSeparator) {
		return Condition{Column: column, Operator: OpEqual, Value: strings.TrimSpace(value)}, nil
	}

	parts := strings.Split(value, MultiValueSeparator)
	members := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			members = append(members, p)
		}
	}
	return Condition{Column: column, Operator: OpIn, Values: members}, nil
}
