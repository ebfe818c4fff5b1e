package country

import (
	"cmp"
	"iter"
	"slices"
	"strings"
)

// Countries is an ordered, immutable collection of countries.
// Order is significant: First, Get and GetLocalized return the earliest
// match. A collection may hold several records with the same code, one per
// locale. Every query returns a new collection and leaves the receiver as it
// was. A nil *Countries behaves as an empty collection.
type Countries struct {
	items []Country
}

// Len returns the number of countries.
func (c *Countries) Len() int {
	return len(c.list())
}

// IsEmpty reports whether the collection has no countries.
func (c *Countries) IsEmpty() bool {
	return c.Len() == 0
}

// All returns a copy of the countries in collection order.
func (c *Countries) All() []Country {
	return slices.Clone(c.list())
}

// Iter returns an iterator over the countries in collection order.
// Each range over the iterator is an independent full pass.
func (c *Countries) Iter() iter.Seq[Country] {
	items := c.list()
	return func(yield func(Country) bool) {
		for _, country := range items {
			if !yield(country) {
				return
			}
		}
	}
}

// First returns the first country in collection order.
func (c *Countries) First() (Country, bool) {
	items := c.list()
	if len(items) == 0 {
		return Country{}, false
	}
	return items[0], true
}

// Filter returns the countries for which fn returns true, in order.
func (c *Countries) Filter(fn func(Country) bool) *Countries {
	items := c.list()
	result := make([]Country, 0, len(items))
	for _, country := range items {
		if fn(country) {
			result = append(result, country)
		}
	}
	return &Countries{items: result}
}

// Sort returns a stably sorted copy. A nil compare function sorts by Name.
func (c *Countries) Sort(compare func(a, b Country) int) *Countries {
	if compare == nil {
		compare = ByName
	}
	items := slices.Clone(c.list())
	slices.SortStableFunc(items, compare)
	return &Countries{items: items}
}

// ByName orders countries by their effective name.
func ByName(a, b Country) int {
	return strings.Compare(a.Name(), b.Name())
}

// ByPriority orders countries by descending priority, then by name.
func ByPriority(a, b Country) int {
	if n := cmp.Compare(b.Priority(), a.Priority()); n != 0 {
		return n
	}
	return ByName(a, b)
}

// Code keeps the countries whose alpha-2, alpha-3 or numeric code equals code.
func (c *Countries) Code(code string) *Countries {
	return c.Filter(func(country Country) bool {
		return country.Code() == code ||
			country.Code3() == code ||
			country.NumericCode() == code
	})
}

// Locale keeps the countries with the given locale.
func (c *Countries) Locale(locale string) *Countries {
	return c.Filter(func(country Country) bool { return country.Locale() == locale })
}

// Group keeps the countries with the given group.
func (c *Countries) Group(group string) *Countries {
	return c.Filter(func(country Country) bool { return country.Group() == group })
}

// Region keeps the countries with the given region.
func (c *Countries) Region(region string) *Countries {
	return c.Filter(func(country Country) bool { return country.Region() == region })
}

// Continent keeps the countries with the given continent.
func (c *Countries) Continent(continent string) *Countries {
	return c.Filter(func(country Country) bool { return country.Continent() == continent })
}

// Only keeps the countries whose alpha-2 code is in codes.
// Unlike Code, alternate codes are not considered.
func (c *Countries) Only(codes ...string) *Countries {
	set := codeSet(codes)
	return c.Filter(func(country Country) bool {
		_, ok := set[country.Code()]
		return ok
	})
}

// Except drops the countries whose alpha-2 code is in codes.
func (c *Countries) Except(codes ...string) *Countries {
	set := codeSet(codes)
	return c.Filter(func(country Country) bool {
		_, ok := set[country.Code()]
		return !ok
	})
}

// Get returns the first country matching code by any of its codes.
func (c *Countries) Get(code string) (Country, bool) {
	return c.Code(code).First()
}

// GetLocalized returns the first country matching code with the given locale.
func (c *Countries) GetLocalized(code, locale string) (Country, bool) {
	return c.Code(code).Locale(locale).First()
}

// Column maps the index attribute of each country to its field attribute.
// With an empty index the field itself is the key. Duplicate keys keep the
// value of the last country in collection order. Unknown fields produce an
// empty map. A non-scalar index (see Field.Scalar) is keyed by the printed
// list, e.g. "[Europe/Zurich]".
func (c *Countries) Column(field, index Field) map[string]any {
	if index == "" {
		index = field
	}

	result := make(map[string]any)
	if !field.Valid() || !index.Valid() {
		return result
	}

	for _, country := range c.list() {
		k, _ := country.Value(index)
		v, _ := country.Value(field)
		result[key(k)] = v
	}
	return result
}

// GroupedColumn works like Column, bucketed by the group attribute.
//
// Grouping by FieldTimezones buckets countries by the area of their first
// time zone ("America/Adak" → "America"); countries without zones are
// bucketed under their code.
func (c *Countries) GroupedColumn(group, field, index Field) map[string]map[string]any {
	if index == "" {
		index = field
	}

	result := make(map[string]map[string]any)
	if !group.Valid() || !field.Valid() || !index.Valid() {
		return result
	}

	for _, country := range c.list() {
		bucket := groupKey(country, group)

		inner, ok := result[bucket]
		if !ok {
			inner = make(map[string]any)
			result[bucket] = inner
		}

		k, _ := country.Value(index)
		v, _ := country.Value(field)
		inner[key(k)] = v
	}
	return result
}

// Map returns a collection of the same length holding fn's result for each
// country. fn receives the country and its position.
func (c *Countries) Map(fn func(country Country, i int) Country) *Countries {
	items := c.list()
	result := make([]Country, len(items))
	for i, country := range items {
		result[i] = fn(country, i)
	}
	return &Countries{items: result}
}

func (c *Countries) list() []Country {
	if c == nil {
		return nil
	}
	return c.items
}

func groupKey(country Country, group Field) string {
	if group != FieldTimezones {
		v, _ := country.Value(group)
		return key(v)
	}

	zones := country.Timezones()
	if len(zones) == 0 {
		return country.Code()
	}
	area, _, _ := strings.Cut(zones[0], "/")
	return area
}

func codeSet(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return set
}
