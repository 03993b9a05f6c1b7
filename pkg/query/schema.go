package query

import "strings"

// Schema describes the storage mapping of one queryable entity: its table
// and the physical columns behind the well-known virtual field names.
type Schema struct {
	Table           string
	PrimaryKey      string
	CreatedAtColumn string
	UpdatedAtColumn string
}

// StandardColumns is the resolved form of the three well-known virtual names.
type StandardColumns struct {
	ID        string
	CreatedAt string
	UpdatedAt string
}

// Resolve translates a logical field name to its physical column.
// "id", "created_at" and "updated_at" (case-insensitive) map to the schema's
// declared columns; any other name passes through with "/" replaced by "."
// so joined tables can be addressed without clashing with the operator
// characters used in filter values.
func (s Schema) Resolve(name string) string {
	switch strings.ToLower(name) {
	case "id":
		if s.PrimaryKey != "" {
			return s.PrimaryKey
		}
	case "created_at":
		if s.CreatedAtColumn != "" {
			return s.CreatedAtColumn
		}
	case "updated_at":
		if s.UpdatedAtColumn != "" {
			return s.UpdatedAtColumn
		}
	}
	return strings.ReplaceAll(name, "/", ".")
}

// ResolveStandard resolves the three well-known virtual names at once.
func (s Schema) ResolveStandard() StandardColumns {
	return StandardColumns{
		ID:        s.Resolve("id"),
		CreatedAt: s.Resolve("created_at"),
		UpdatedAt: s.Resolve("updated_at"),
	}
}
