package country

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// countryJSON is the interchange shape of a country.
type countryJSON struct {
	Code        string   `json:"code"`
	Code3       string   `json:"code3"`
	NumericCode string   `json:"numericCode"`
	CurrencyKey string   `json:"currencyKey"`
	Locale      string   `json:"locale"`
	Name        string   `json:"name"`
	Region      string   `json:"region"`
	Continent   string   `json:"continent"`
	Timezones   []string `json:"timezones"`
	ID          int      `json:"id"`
	Active      bool     `json:"active"`
	Group       string   `json:"group"`
	Priority    int      `json:"priority"`
}

// ToMap converts the country into a plain mapping keyed by field name.
// Derived attributes (name fallback, timezones) are included.
func (c Country) ToMap() map[string]any {
	fields := Fields()
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		m[string(f)], _ = c.Value(f)
	}
	return m
}

// ToMaps converts every country with ToMap, in collection order.
func (c *Countries) ToMaps() []map[string]any {
	items := c.list()
	result := make([]map[string]any, len(items))
	for i, country := range items {
		result[i] = country.ToMap()
	}
	return result
}

// MarshalJSON implements json.Marshaler.
func (c Country) MarshalJSON() ([]byte, error) {
	return json.Marshal(countryJSON{
		Code:        c.Code(),
		Code3:       c.Code3(),
		NumericCode: c.NumericCode(),
		CurrencyKey: c.CurrencyKey(),
		Locale:      c.Locale(),
		Name:        c.Name(),
		Region:      c.Region(),
		Continent:   c.Continent(),
		Timezones:   c.Timezones(),
		ID:          c.ID(),
		Active:      c.Active(),
		Group:       c.Group(),
		Priority:    c.Priority(),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
// The object is read with FromMap semantics; timezones are ignored because
// they are derived from the code.
func (c *Country) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := decode(data, &m); err != nil {
		return fmt.Errorf("country: decoding country: %w", err)
	}
	*c = FromMap(m)
	return nil
}

// MarshalJSON implements json.Marshaler. A collection encodes as an array.
func (c *Countries) MarshalJSON() ([]byte, error) {
	items := c.list()
	if items == nil {
		items = []Country{}
	}
	return json.Marshal(items)
}

// UnmarshalJSON implements json.Unmarshaler.
// Array elements that are not objects are skipped, as in FromMaps.
func (c *Countries) UnmarshalJSON(data []byte) error {
	var items []any
	if err := decode(data, &items); err != nil {
		return fmt.Errorf("country: decoding countries: %w", err)
	}
	*c = *FromMaps(items, "")
	return nil
}

// decode unmarshals with json.Number so integer attributes keep their exact value.
func decode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
