package country

import (
	"encoding/json"
	"maps"
	"math"
)

// Option sets an attribute when building a country with New.
type Option func(*Country)

// New creates a country with the given code.
// Unset attributes default to empty strings, zero id and priority, and
// active = true.
//
// Example:
//
//	us := country.New("US",
//	    country.WithCode3("USA"),
//	    country.WithNumericCode("840"),
//	    country.WithName("United States"),
//	)
func New(code string, opts ...Option) Country {
	c := Country{
		code:   code,
		active: true,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithCode3 sets the alpha-3 code.
func WithCode3(code3 string) Option {
	return func(c *Country) { c.code3 = code3 }
}

// WithNumericCode sets the numeric code.
func WithNumericCode(numericCode string) Option {
	return func(c *Country) { c.numericCode = numericCode }
}

// WithCurrencyKey sets the currency key.
func WithCurrencyKey(currencyKey string) Option {
	return func(c *Country) { c.currencyKey = currencyKey }
}

// WithLocale sets the locale.
func WithLocale(locale string) Option {
	return func(c *Country) { c.locale = locale }
}

// WithName sets the localized name.
func WithName(name string) Option {
	return func(c *Country) { c.name = name }
}

// WithRegion sets the localized region.
func WithRegion(region string) Option {
	return func(c *Country) { c.region = region }
}

// WithContinent sets the localized continent.
func WithContinent(continent string) Option {
	return func(c *Country) { c.continent = continent }
}

// WithID sets the identifier.
func WithID(id int) Option {
	return func(c *Country) { c.id = id }
}

// WithActive sets the active flag.
func WithActive(active bool) Option {
	return func(c *Country) { c.active = active }
}

// WithGroup sets the classification tag.
func WithGroup(group string) Option {
	return func(c *Country) { c.group = group }
}

// WithPriority sets the priority.
func WithPriority(priority int) Option {
	return func(c *Country) { c.priority = priority }
}

// FromMap builds a country from a loosely typed mapping, as produced by
// decoding a JSON object into map[string]any.
// Keys that are missing or hold a value of the wrong type fall back to the
// same defaults as New. Unknown keys are ignored.
func FromMap(m map[string]any) Country {
	return Country{
		code:        stringValue(m, string(FieldCode)),
		code3:       stringValue(m, string(FieldCode3)),
		numericCode: stringValue(m, string(FieldNumericCode)),
		currencyKey: stringValue(m, string(FieldCurrencyKey)),
		locale:      stringValue(m, string(FieldLocale)),
		name:        stringValue(m, string(FieldName)),
		region:      stringValue(m, string(FieldRegion)),
		continent:   stringValue(m, string(FieldContinent)),
		id:          intValue(m, string(FieldID), 0),
		active:      boolValue(m, string(FieldActive), true),
		group:       stringValue(m, string(FieldGroup)),
		priority:    intValue(m, string(FieldPriority), 0),
	}
}

// NewCountries wraps the given records in a collection, keeping their order.
func NewCountries(countries ...Country) *Countries {
	items := make([]Country, len(countries))
	copy(items, countries)
	return &Countries{items: items}
}

// FromMaps builds a collection from mixed items.
// Country and *Country values are added as they are. Mappings are built
// with FromMap; when defaultLocale is not empty it is used as the locale of
// mappings whose "locale" key is missing or null. Items of any other type
// are skipped.
func FromMaps(items []any, defaultLocale string) *Countries {
	result := make([]Country, 0, len(items))

	for _, item := range items {
		switch v := item.(type) {
		case Country:
			result = append(result, v)
		case *Country:
			if v != nil {
				result = append(result, *v)
			}
		case map[string]any:
			if l, ok := v[string(FieldLocale)]; (!ok || l == nil) && defaultLocale != "" {
				v = withLocaleKey(v, defaultLocale)
			}
			result = append(result, FromMap(v))
		}
	}

	return &Countries{items: result}
}

// withLocaleKey returns a shallow copy of m with the locale key set,
// leaving the caller's mapping untouched.
func withLocaleKey(m map[string]any, locale string) map[string]any {
	out := maps.Clone(m)
	out[string(FieldLocale)] = locale
	return out
}

func stringValue(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func boolValue(m map[string]any, key string, def bool) bool {
	if b, ok := m[key].(bool); ok {
		return b
	}
	return def
}

func intValue(m map[string]any, key string, def int) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return int(v)
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return int(v)
		}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return def
}
