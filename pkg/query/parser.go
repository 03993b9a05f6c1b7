package query

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Reserved parameter names consumed by the parser. Everything else in the
// raw input is a candidate filter.
const (
	ParamPage   = "page"
	ParamLimit  = "limit"
	ParamSort   = "sort"
	ParamFields = "fields"
)

// PersonNameColumn is the virtual field rewritten to a locale-aware computed
// expression instead of a plain column reference.
const PersonNameColumn = "person_name"

// PersonNameCollation is the database-layer collation applied to the
// computed person-name expression. It references the connection's default
// collation rather than naming a locale, so the expression stays portable.
const PersonNameCollation = `"default"`

// Options declares what a caller permits the parser to do. Searchable and
// Sortable are the whitelists for filtering and ordering; SortableMap
// overrides the physical expression of a sortable name after validation
// (for join-ambiguous columns). RawColumns permits caller-authored SQL
// fragments in default column lists and must never be enabled for
// user-controlled input.
type Options struct {
	Searchable  []string
	Sortable    []string
	SortableMap map[string]string
	RawColumns  bool
	Formatters  map[string]Formatter
}

// Parser translates an untrusted query-parameter bag into whitelist-checked
// filter conditions, sort directives, column projections and pagination
// numbers. The input is partitioned into specials and filters exactly once,
// at construction; the parser holds no mutable state afterwards apart from
// the dropped-field diagnostic counter.
type Parser struct {
	schema      Schema
	searchable  map[string]struct{}
	sortable    map[string]struct{}
	sortableMap map[string]string
	rawColumns  bool
	formatters  map[string]Formatter

	raw     url.Values
	page    string
	limit   string
	sort    string
	fields  string
	filters url.Values

	dropped []string
}

// NewParser partitions the raw input and validates the options. A formatter
// registered for a field outside the searchable whitelist is a configuration
// error and fails immediately.
func NewParser(input url.Values, schema Schema, opts Options) (*Parser, error) {
	p := &Parser{
		schema:      schema,
		searchable:  toSet(opts.Searchable),
		sortable:    toSet(opts.Sortable),
		sortableMap: opts.SortableMap,
		rawColumns:  opts.RawColumns,
		formatters:  opts.Formatters,
		raw:         cloneValues(input),
		filters:     url.Values{},
	}

	for field := range opts.Formatters {
		if _, ok := p.searchable[field]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrFormatterNotSearchable, field)
		}
	}

	for key, values := range input {
		switch key {
		case ParamPage:
			p.page = firstTrimmed(values)
		case ParamLimit:
			p.limit = firstTrimmed(values)
		case ParamSort:
			p.sort = firstTrimmed(values)
		case ParamFields:
			p.fields = firstTrimmed(values)
		default:
			p.filters[key] = values
		}
	}

	return p, nil
}

// IsSimple reports whether the raw input is empty or carries nothing but a
// page number. Callers use it to skip condition/order/column parsing
// entirely on the common unfiltered-list path.
func (p *Parser) IsSimple() bool {
	return len(p.filters) == 0 && p.sort == "" && p.fields == "" && p.limit == ""
}

// RawQuery returns a copy of the input snapshot, for page-link construction.
func (p *Parser) RawQuery() url.Values {
	return cloneValues(p.raw)
}

// Dropped lists the filter and sort names discarded by whitelist checks.
// Diagnostic only; parsing itself never reports them.
func (p *Parser) Dropped() []string {
	return p.dropped
}

// Conditions builds the filter list. Base conditions always come first and
// are taken verbatim; parsed conditions only ever narrow them (the executor
// combines everything with AND). Filter keys whose resolved name is not in
// the searchable whitelist are dropped without error. A resolved name of
// PersonNameColumn is rewritten to the computed person-name expression over
// the given table and column and marked raw.
func (p *Parser) Conditions(base []Condition, personNameTable, personNameKey string) []Condition {
	conds := make([]Condition, 0, len(base)+len(p.filters))
	conds = append(conds, base...)

	for _, key := range sortedKeys(p.filters) {
		values := p.filters[key]
		if len(values) == 0 || values[0] == "" {
			continue
		}

		resolved := p.schema.Resolve(key)
		if _, ok := p.searchable[resolved]; !ok {
			p.dropped = append(p.dropped, key)
			continue
		}

		if f, ok := p.formatters[resolved]; ok {
			c, err := f(resolved, values[0])
			if err != nil {
				p.dropped = append(p.dropped, key)
				continue
			}
			conds = append(conds, c)
			continue
		}

		op, value, bounds := parseValue(values[0])

		if resolved == PersonNameColumn && personNameTable != "" {
			conds = append(conds, Condition{
				Column:   fmt.Sprintf("person_name(%s.%s) COLLATE %s", personNameTable, personNameKey, PersonNameCollation),
				Operator: op,
				Value:    value,
				Raw:      true,
			})
			continue
		}

		conds = append(conds, Condition{Column: resolved, Operator: op, Value: value, Values: bounds})
	}

	return conds
}

// Order builds the sort directives. When the sort special is present it is
// the only source: its tokens are resolved, whitelist-checked against
// sortable (invalid tokens dropped) and remapped through SortableMap after
// validation. When absent, the caller defaults are used verbatim. The two
// sources are never merged; a sort special whose every token is dropped
// yields an empty order, not the defaults.
func (p *Parser) Order(defaults []Order) []Order {
	if p.sort == "" {
		return append([]Order(nil), defaults...)
	}

	order := []Order{}
	for _, token := range strings.Split(p.sort, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		dir := Asc
		if strings.HasPrefix(token, "-") {
			dir = Desc
			token = token[1:]
		}

		resolved := p.schema.Resolve(token)
		if _, ok := p.sortable[resolved]; !ok {
			p.dropped = append(p.dropped, token)
			continue
		}
		if physical, ok := p.sortableMap[resolved]; ok {
			resolved = physical
		}

		order = append(order, Order{Column: resolved, Direction: dir})
	}
	return order
}

// Columns builds the projection. With a fields special present, each name is
// resolved and checked against searchable (dropped silently otherwise) and
// the primary key is force-included unless already addressed directly or via
// a table.pk alias, so rows stay identifiable. Without a fields special the
// defaults are deduplicated and used as-is; in RawColumns mode they may be
// caller-authored SQL fragments and are never resolved.
func (p *Parser) Columns(defaults []string) []string {
	if p.fields == "" {
		return dedupe(defaults)
	}

	pk := p.schema.PrimaryKey
	cols := []string{}
	hasPK := false
	for _, name := range strings.Split(p.fields, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		resolved := p.schema.Resolve(name)
		if _, ok := p.searchable[resolved]; !ok {
			p.dropped = append(p.dropped, name)
			continue
		}
		if resolved == pk || strings.HasSuffix(resolved, "."+pk) {
			hasPK = true
		}
		cols = append(cols, resolved)
	}

	if !hasPK && pk != "" {
		cols = append(cols, pk)
	}
	return dedupe(cols)
}

// CurrentPage parses the page special. Anything unparseable or below 1
// becomes page 1.
func (p *Parser) CurrentPage() int {
	page, err := strconv.Atoi(p.page)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Limit resolves the requested page size. An absent or non-positive limit
// means "no preference" and yields the caller default; an explicit limit is
// capped at max.
func (p *Parser) Limit(max, def int) int {
	if p.limit == "" {
		return def
	}
	limit, err := strconv.Atoi(p.limit)
	if err != nil || limit < 1 {
		return def
	}
	if limit >= max {
		return max
	}
	return limit
}

// RemoveConsumedKeys returns a copy of the input without the given keys.
// The original is never mutated; callers re-deriving input after consuming
// a parameter (typically fields) pass the result to a fresh parser.
func RemoveConsumedKeys(input url.Values, keys ...string) url.Values {
	out := cloneValues(input)
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func cloneValues(in url.Values) url.Values {
	out := make(url.Values, len(in))
	for k, v := range in {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func firstTrimmed(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

func sortedKeys(v url.Values) []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
