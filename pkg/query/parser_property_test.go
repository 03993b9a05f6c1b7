package query

import (
	"net/url"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Whitelist safety: no filter key outside the searchable set ever reaches a
// condition, whatever its name or value contains.
func TestProperty_WhitelistSafety(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	searchable := []string{"status", "priority"}
	allowed := map[string]struct{}{"status": {}, "priority": {}}

	properties.Property("unauthorized keys never produce conditions", prop.ForAll(
		func(key, value string) bool {
			if key == "" || value == "" {
				return true
			}
			if _, ok := allowed[testSchema().Resolve(key)]; ok {
				return true
			}

			p, err := NewParser(url.Values{key: {value}}, testSchema(), Options{Searchable: searchable})
			if err != nil {
				return false
			}
			return len(p.Conditions(nil, "", "")) == 0
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.Property("condition columns always come from the whitelist", prop.ForAll(
		func(value string) bool {
			if value == "" {
				return true
			}
			input := url.Values{
				"status":      {value},
				"1;DROP":     {value},
				"' OR 1=1 --": {value},
			}
			p, err := NewParser(input, testSchema(), Options{Searchable: searchable})
			if err != nil {
				return false
			}
			for _, c := range p.Conditions(nil, "", "") {
				if _, ok := allowed[c.Column]; !ok {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

// Page numbers never drop below one and limits never exceed the cap, for any
// string input.
func TestProperty_PageAndLimitClamping(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("current page is always at least 1", prop.ForAll(
		func(raw string) bool {
			p, err := NewParser(url.Values{ParamPage: {raw}}, testSchema(), Options{})
			if err != nil {
				return false
			}
			return p.CurrentPage() >= 1
		},
		gen.AnyString(),
	))

	properties.Property("limit is always within [1, max]", prop.ForAll(
		func(raw string) bool {
			p, err := NewParser(url.Values{ParamLimit: {raw}}, testSchema(), Options{})
			if err != nil {
				return false
			}
			limit := p.Limit(100, 50)
			return limit >= 1 && limit <= 100
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
