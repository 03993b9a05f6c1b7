package query

import (
	"errors"
	"net/url"
	"reflect"
	"testing"
)

func testSchema() Schema {
	return Schema{
		Table:           "work_orders",
		PrimaryKey:      "id",
		CreatedAtColumn: "created_at",
		UpdatedAtColumn: "updated_at",
	}
}

func TestSchema_Resolve(t *testing.T) {
	schema := Schema{
		Table:           "people",
		PrimaryKey:      "person_id",
		CreatedAtColumn: "inserted_at",
		UpdatedAtColumn: "modified_at",
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "primary key", in: "id", want: "person_id"},
		{name: "primary key case insensitive", in: "ID", want: "person_id"},
		{name: "created at", in: "created_at", want: "inserted_at"},
		{name: "updated at", in: "updated_at", want: "modified_at"},
		{name: "pass through", in: "status", want: "status"},
		{name: "joined table addressing", in: "company/name", want: "company.name"},
		{name: "undeclared created_at passes through", in: "status_code", want: "status_code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := schema.Resolve(tt.in); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	empty := Schema{Table: "logs"}
	if got := empty.Resolve("id"); got != "id" {
		t.Errorf("Resolve(id) with no declared pk = %q, want passthrough", got)
	}
}

func TestSchema_ResolveStandard(t *testing.T) {
	got := testSchema().ResolveStandard()
	want := StandardColumns{ID: "id", CreatedAt: "created_at", UpdatedAt: "updated_at"}
	if got != want {
		t.Errorf("ResolveStandard() = %+v, want %+v", got, want)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantOp     Operator
		wantValue  string
		wantBounds []string
	}{
		{name: "plain value", in: "active", wantOp: OpEqual, wantValue: "active"},
		{name: "greater or equal", in: ">=5", wantOp: OpGreaterOrEqual, wantValue: "5"},
		{name: "less or equal", in: "<=5", wantOp: OpLessOrEqual, wantValue: "5"},
		{name: "greater", in: ">5", wantOp: OpGreater, wantValue: "5"},
		{name: "less", in: "<5", wantOp: OpLess, wantValue: "5"},
		{name: "between", in: "><1,5", wantOp: OpBetween, wantValue: "1,5", wantBounds: []string{"1", "5"}},
		{name: "between with spaces", in: ">< 1 , 5", wantOp: OpBetween, wantValue: "1 , 5", wantBounds: []string{"1", "5"}},
		{name: "between missing bound degrades to equality", in: "><7", wantOp: OpEqual, wantValue: "7"},
		{name: "wildcard", in: "Jo%", wantOp: OpLike, wantValue: "Jo%"},
		{name: "wildcard wins over prefix", in: ">=%foo%", wantOp: OpLike, wantValue: "%foo%"},
		{name: "comma without prefix stays equality", in: "100,200", wantOp: OpEqual, wantValue: "100,200"},
		{name: "value is trimmed", in: ">= 5", wantOp: OpGreaterOrEqual, wantValue: "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, value, bounds := parseValue(tt.in)
			if op != tt.wantOp || value != tt.wantValue {
				t.Errorf("parseValue(%q) = (%q, %q), want (%q, %q)", tt.in, op, value, tt.wantOp, tt.wantValue)
			}
			if !reflect.DeepEqual(bounds, tt.wantBounds) {
				t.Errorf("parseValue(%q) bounds = %v, want %v", tt.in, bounds, tt.wantBounds)
			}
		})
	}
}

func TestParser_Conditions_Whitelist(t *testing.T) {
	input := url.Values{
		"status":       {"active"},
		"secret_field": {"1; DROP TABLE work_orders; --"},
		"password":     {"%"},
	}
	p, err := NewParser(input, testSchema(), Options{Searchable: []string{"status"}})
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}

	conds := p.Conditions(nil, "", "")
	if len(conds) != 1 {
		t.Fatalf("Conditions() = %v, want exactly the status condition", conds)
	}
	if conds[0].Column != "status" || conds[0].Operator != OpEqual || conds[0].Value != "active" {
		t.Errorf("Conditions()[0] = %+v", conds[0])
	}

	dropped := p.Dropped()
	if len(dropped) != 2 {
		t.Errorf("Dropped() = %v, want the two unauthorized keys", dropped)
	}
}

func TestParser_Conditions_BaseComesFirst(t *testing.T) {
	input := url.Values{"status": {"active"}}
	p, err := NewParser(input, testSchema(), Options{Searchable: []string{"status"}})
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}

	base := []Condition{{Column: "tenant_id", Operator: OpEqual, Value: "t-1"}}
	conds := p.Conditions(base, "", "")
	if len(conds) != 2 {
		t.Fatalf("Conditions() len = %d, want 2", len(conds))
	}
	if conds[0].Column != "tenant_id" {
		t.Errorf("Conditions()[0] = %+v, want the base condition first", conds[0])
	}
}

func TestParser_Conditions_OperatorPrefix(t *testing.T) {
	input := url.Values{"id": {">=5"}}
	p, err := NewParser(input, testSchema(), Options{Searchable: []string{"id"}})
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}

	conds := p.Conditions(nil, "", "")
	if len(conds) != 1 {
		t.Fatalf("Conditions() = %v", conds)
	}
	want := Condition{Column: "id", Operator: OpGreaterOrEqual, Value: "5"}
	if !reflect.DeepEqual(conds[0], want) {
		t.Errorf("Conditions()[0] = %+v, want %+v", conds[0], want)
	}
}

func TestParser_Conditions_Between(t *testing.T) {
	input := url.Values{"amount": {"><100,200"}}
	p, err := NewParser(input, testSchema(), Options{Searchable: []string{"amount"}})
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}

	conds := p.Conditions(nil, "", "")
	if len(conds) != 1 || conds[0].Operator != OpBetween {
		t.Fatalf("Conditions() = %v, want one BETWEEN", conds)
	}
	if !reflect.DeepEqual(conds[0].Values, []string{"100", "200"}) {
		t.Errorf("bounds = %v, want [100 200]", conds[0].Values)
	}
}

func TestParser_Conditions_PlainCommaIsEquality(t *testing.T) {
	input := url.Values{"amount": {"100,200"}}
	p, err := NewParser(input, testSchema(), Options{Searchable: []string{"amount"}})
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}

	conds := p.Conditions(nil, "", "")
	if len(conds) != 1 {
		t.Fatalf("Conditions() = %v", conds)
	}
	if conds[0].Operator != OpEqual || conds[0].Value != "100,200" {
		t.Errorf("Conditions()[0] = %+v, want exact match on the literal value", conds[0])
	}
}

func TestParser_Conditions_PersonName(t *testing.T) {
	input := url.Values{"person_name": {"Jo%"}}
	p, err := NewParser(input, testSchema(), Options{Searchable: []string{"person_name"}})
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}

	conds := p.Conditions(nil, "people", "id")
	if len(conds) != 1 {
		t.Fatalf("Conditions() = %v", conds)
	}
	c := conds[0]
	if !c.Raw {
		t.Error("person_name condition should be raw")
	}
	if c.Column != `person_name(people.id) COLLATE "default"` {
		t.Errorf("column = %q", c.Column)
	}
	if c.Operator != OpLike || c.Value != "Jo%" {
		t.Errorf("operator/value = %q/%q", c.Operator, c.Value)
	}
}

func TestParser_Conditions_EmptyValueSkipped(t *testing.T) {
	input := url.Values{"status": {""}}
	p, err := NewParser(input, testSchema(), Options{Searchable: []string{"status"}})
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}
	if conds := p.Conditions(nil, "", ""); len(conds) != 0 {
		t.Errorf("Conditions() = %v, want empty", conds)
	}
}

func TestParser_Formatter_MultiValue(t *testing.T) {
	input := url.Values{"status": {"open;assigned;closed"}}
	p, err := NewParser(input, testSchema(), Options{
		Searchable: []string{"status"},
		Formatters: map[string]Formatter{"status": MultiValue},
	})
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}

	conds := p.Conditions(nil, "", "")
	if len(conds) != 1 || conds[0].Operator != OpIn {
		t.Fatalf("Conditions() = %v, want one IN", conds)
	}
	if !reflect.DeepEqual(conds[0].Values, []string{"open", "assigned", "closed"}) {
		t.Errorf("members = %v", conds[0].Values)
	}
}

func TestParser_Formatter_SingleValueStaysEquality(t *testing.T) {
	input := url.Values{"status": {"open"}}
	p, err := NewParser(input, testSchema(), Options{
		Searchable: []string{"status"},
		Formatters: map[string]Formatter{"status": MultiValue},
	})
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}

	conds := p.Conditions(nil, "", "")
	if len(conds) != 1 || conds[0].Operator != OpEqual || conds[0].Value != "open" {
		t.Errorf("Conditions() = %v", conds)
	}
}

func TestNewParser_FormatterOutsideWhitelist(t *testing.T) {
	_, err := NewParser(url.Values{}, testSchema(), Options{
		Searchable: []string{"status"},
		Formatters: map[string]Formatter{"priority": MultiValue},
	})
	if !errors.Is(err, ErrFormatterNotSearchable) {
		t.Errorf("NewParser() error = %v, want ErrFormatterNotSearchable", err)
	}
}

func TestParser_Order(t *testing.T) {
	defaults := []Order{{Column: "created_at", Direction: Desc}}

	tests := []struct {
		name  string
		input url.Values
		opts  Options
		want  []Order
	}{
		{
			name:  "no sort uses defaults",
			input: url.Values{},
			opts:  Options{Sortable: []string{"name"}},
			want:  defaults,
		},
		{
			name:  "sort present",
			input: url.Values{"sort": {"-name"}},
			opts:  Options{Sortable: []string{"name"}},
			want:  []Order{{Column: "name", Direction: Desc}},
		},
		{
			name:  "multiple tokens",
			input: url.Values{"sort": {"name,-id"}},
			opts:  Options{Sortable: []string{"name", "id"}},
			want:  []Order{{Column: "name", Direction: Asc}, {Column: "id", Direction: Desc}},
		},
		{
			name:  "all tokens dropped never falls back to defaults",
			input: url.Values{"sort": {"-secret"}},
			opts:  Options{Sortable: []string{"name"}},
			want:  []Order{},
		},
		{
			name:  "sortable map remaps after validation",
			input: url.Values{"sort": {"customer_name"}},
			opts: Options{
				Sortable:    []string{"customer_name"},
				SortableMap: map[string]string{"customer_name": "customers.name"},
			},
			want: []Order{{Column: "customers.name", Direction: Asc}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParser(tt.input, testSchema(), tt.opts)
			if err != nil {
				t.Fatalf("NewParser() error = %v", err)
			}
			if got := p.Order(defaults); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Order() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParser_Columns(t *testing.T) {
	searchable := []string{"id", "status", "priority", "customers.id"}

	tests := []struct {
		name     string
		input    url.Values
		defaults []string
		want     []string
	}{
		{
			name:     "no fields uses defaults deduplicated",
			input:    url.Values{},
			defaults: []string{"id", "status", "status"},
			want:     []string{"id", "status"},
		},
		{
			name:     "primary key appended exactly once",
			input:    url.Values{"fields": {"status,priority"}},
			defaults: []string{"id"},
			want:     []string{"status", "priority", "id"},
		},
		{
			name:     "primary key not duplicated when requested",
			input:    url.Values{"fields": {"id,status"}},
			defaults: []string{"id"},
			want:     []string{"id", "status"},
		},
		{
			name:     "table qualified pk alias counts",
			input:    url.Values{"fields": {"customers/id,status"}},
			defaults: []string{"id"},
			want:     []string{"customers.id", "status"},
		},
		{
			name:     "unauthorized columns dropped",
			input:    url.Values{"fields": {"status,password_hash"}},
			defaults: []string{"id"},
			want:     []string{"status", "id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParser(tt.input, testSchema(), Options{Searchable: searchable})
			if err != nil {
				t.Fatalf("NewParser() error = %v", err)
			}
			if got := p.Columns(tt.defaults); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Columns() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParser_CurrentPage(t *testing.T) {
	tests := []struct {
		page string
		want int
	}{
		{page: "", want: 1},
		{page: "0", want: 1},
		{page: "-5", want: 1},
		{page: "abc", want: 1},
		{page: "3", want: 3},
	}

	for _, tt := range tests {
		p, err := NewParser(url.Values{"page": {tt.page}}, testSchema(), Options{})
		if err != nil {
			t.Fatalf("NewParser() error = %v", err)
		}
		if got := p.CurrentPage(); got != tt.want {
			t.Errorf("CurrentPage() with page=%q = %d, want %d", tt.page, got, tt.want)
		}
	}
}

func TestParser_Limit(t *testing.T) {
	tests := []struct {
		limit string
		want  int
	}{
		{limit: "", want: 50},
		{limit: "500", want: 100},
		{limit: "100", want: 100},
		{limit: "0", want: 50},
		{limit: "-1", want: 50},
		{limit: "abc", want: 50},
		{limit: "30", want: 30},
	}

	for _, tt := range tests {
		input := url.Values{}
		if tt.limit != "" {
			input.Set("limit", tt.limit)
		}
		p, err := NewParser(input, testSchema(), Options{})
		if err != nil {
			t.Fatalf("NewParser() error = %v", err)
		}
		if got := p.Limit(100, 50); got != tt.want {
			t.Errorf("Limit(100, 50) with limit=%q = %d, want %d", tt.limit, got, tt.want)
		}
	}
}

func TestParser_IsSimple(t *testing.T) {
	tests := []struct {
		name  string
		input url.Values
		want  bool
	}{
		{name: "empty", input: url.Values{}, want: true},
		{name: "page only", input: url.Values{"page": {"2"}}, want: true},
		{name: "filter present", input: url.Values{"status": {"active"}}, want: false},
		{name: "sort present", input: url.Values{"sort": {"name"}}, want: false},
		{name: "fields present", input: url.Values{"fields": {"id"}}, want: false},
		{name: "limit present", input: url.Values{"limit": {"10"}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParser(tt.input, testSchema(), Options{})
			if err != nil {
				t.Fatalf("NewParser() error = %v", err)
			}
			if got := p.IsSimple(); got != tt.want {
				t.Errorf("IsSimple() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParser_ScenarioFilteredSortedPage(t *testing.T) {
	input := url.Values{
		"name":  {"Jo%"},
		"sort":  {"-name"},
		"page":  {"2"},
		"limit": {"10"},
	}
	p, err := NewParser(input, testSchema(), Options{
		Searchable: []string{"name", "age"},
		Sortable:   []string{"name"},
	})
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}

	conds := p.Conditions(nil, "", "")
	if len(conds) != 1 {
		t.Fatalf("Conditions() = %v", conds)
	}
	want := Condition{Column: "name", Operator: OpLike, Value: "Jo%"}
	if !reflect.DeepEqual(conds[0], want) {
		t.Errorf("Conditions()[0] = %+v, want %+v", conds[0], want)
	}

	if order := p.Order(nil); !reflect.DeepEqual(order, []Order{{Column: "name", Direction: Desc}}) {
		t.Errorf("Order() = %v", order)
	}
	if page := p.CurrentPage(); page != 2 {
		t.Errorf("CurrentPage() = %d, want 2", page)
	}
	if limit := p.Limit(100, 50); limit != 10 {
		t.Errorf("Limit() = %d, want 10", limit)
	}
}

func TestRemoveConsumedKeys(t *testing.T) {
	input := url.Values{
		"fields": {"id,status"},
		"status": {"active"},
		"page":   {"2"},
	}

	out := RemoveConsumedKeys(input, ParamFields)

	if _, ok := out["fields"]; ok {
		t.Error("fields should be removed")
	}
	if out.Get("status") != "active" || out.Get("page") != "2" {
		t.Errorf("remaining keys altered: %v", out)
	}
	if input.Get("fields") != "id,status" {
		t.Error("original input mutated")
	}

	out.Set("status", "closed")
	if input.Get("status") != "active" {
		t.Error("copy shares backing storage with the original")
	}
}

func TestParser_RawQuerySnapshot(t *testing.T) {
	input := url.Values{"status": {"active"}, "page": {"2"}}
	p, err := NewParser(input, testSchema(), Options{Searchable: []string{"status"}})
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}

	input.Set("status", "mutated-after-construction")

	raw := p.RawQuery()
	if raw.Get("status") != "active" {
		t.Errorf("RawQuery() status = %q, want construction-time snapshot", raw.Get("status"))
	}
}
