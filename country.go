package country

import "github.com/dmitrymomot/country/pkg/tzindex"

// Country is an immutable country record.
// The zero value is a country without a code; use New or FromMap to build
// records with defaults applied. With* methods return modified copies.
type Country struct {
	code        string
	code3       string
	numericCode string
	currencyKey string
	locale      string
	name        string
	region      string
	continent   string
	group       string
	id          int
	priority    int
	active      bool
}

// Code returns the ISO 3166-1 alpha-2 code.
func (c Country) Code() string { return c.code }

// Code3 returns the ISO 3166-1 alpha-3 code.
func (c Country) Code3() string { return c.code3 }

// NumericCode returns the ISO 3166-1 numeric code.
func (c Country) NumericCode() string { return c.numericCode }

// CurrencyKey returns the currency key, e.g. "USD".
func (c Country) CurrencyKey() string { return c.currencyKey }

// Locale returns the locale of the localized attributes.
// An empty locale marks a locale-neutral record.
func (c Country) Locale() string { return c.locale }

// Name returns the localized name, or the code if no name is set.
func (c Country) Name() string {
	if c.name == "" {
		return c.code
	}
	return c.name
}

// Region returns the localized region.
func (c Country) Region() string { return c.region }

// Continent returns the localized continent.
func (c Country) Continent() string { return c.continent }

// ID returns the numeric identifier assigned by the application.
func (c Country) ID() int { return c.id }

// Active reports whether the country is enabled.
func (c Country) Active() bool { return c.active }

// Group returns the classification tag, e.g. "shipping".
func (c Country) Group() string { return c.group }

// Priority returns the sort priority.
func (c Country) Priority() int { return c.priority }

// Timezones returns the IANA time zones of the country, alphabetically.
// It is derived from the code on every call; unknown codes yield an empty slice.
func (c Country) Timezones() []string {
	return tzindex.Lookup(c.code)
}

// Value returns the attribute named by f.
// The second result is false for unknown fields.
func (c Country) Value(f Field) (any, bool) {
	get, ok := accessors[f]
	if !ok {
		return nil, false
	}
	return get(c), true
}

// WithCode returns a copy with the alpha-2 code replaced.
func (c Country) WithCode(code string) Country {
	c.code = code
	return c
}

// WithCode3 returns a copy with the alpha-3 code replaced.
func (c Country) WithCode3(code3 string) Country {
	c.code3 = code3
	return c
}

// WithNumericCode returns a copy with the numeric code replaced.
func (c Country) WithNumericCode(numericCode string) Country {
	c.numericCode = numericCode
	return c
}

// WithCurrencyKey returns a copy with the currency key replaced.
func (c Country) WithCurrencyKey(currencyKey string) Country {
	c.currencyKey = currencyKey
	return c
}

// WithLocale returns a copy with the locale replaced.
func (c Country) WithLocale(locale string) Country {
	c.locale = locale
	return c
}

// WithName returns a copy with the display name replaced.
func (c Country) WithName(name string) Country {
	c.name = name
	return c
}

// WithRegion returns a copy with the region replaced.
func (c Country) WithRegion(region string) Country {
	c.region = region
	return c
}

// WithContinent returns a copy with the continent replaced.
func (c Country) WithContinent(continent string) Country {
	c.continent = continent
	return c
}

// WithID returns a copy with the numeric id replaced.
func (c Country) WithID(id int) Country {
	c.id = id
	return c
}

// WithActive returns a copy with the active flag replaced.
func (c Country) WithActive(active bool) Country {
	c.active = active
	return c
}

// WithGroup returns a copy with the classification tag replaced.
func (c Country) WithGroup(group string) Country {
	c.group = group
	return c
}

// WithPriority returns a copy with the priority replaced.
func (c Country) WithPriority(priority int) Country {
	c.priority = priority
	return c
}
