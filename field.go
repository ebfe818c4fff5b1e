package country

import "fmt"

// Field names a country attribute for projections such as Column and
// GroupedColumn.
type Field string

// Country attributes addressable by name.
const (
	FieldCode        Field = "code"
	FieldCode3       Field = "code3"
	FieldNumericCode Field = "numericCode"
	FieldCurrencyKey Field = "currencyKey"
	FieldLocale      Field = "locale"
	FieldName        Field = "name"
	FieldRegion      Field = "region"
	FieldContinent   Field = "continent"
	FieldTimezones   Field = "timezones"
	FieldID          Field = "id"
	FieldActive      Field = "active"
	FieldGroup       Field = "group"
	FieldPriority    Field = "priority"
)

// accessors is the closed dispatch table behind Country.Value.
// Every entry routes through the public accessor so fallbacks such as
// Name() apply to projections too.
var accessors = map[Field]func(Country) any{
	FieldCode:        func(c Country) any { return c.Code() },
	FieldCode3:       func(c Country) any { return c.Code3() },
	FieldNumericCode: func(c Country) any { return c.NumericCode() },
	FieldCurrencyKey: func(c Country) any { return c.CurrencyKey() },
	FieldLocale:      func(c Country) any { return c.Locale() },
	FieldName:        func(c Country) any { return c.Name() },
	FieldRegion:      func(c Country) any { return c.Region() },
	FieldContinent:   func(c Country) any { return c.Continent() },
	FieldTimezones:   func(c Country) any { return c.Timezones() },
	FieldID:          func(c Country) any { return c.ID() },
	FieldActive:      func(c Country) any { return c.Active() },
	FieldGroup:       func(c Country) any { return c.Group() },
	FieldPriority:    func(c Country) any { return c.Priority() },
}

// Fields returns every addressable field in interchange order.
func Fields() []Field {
	return []Field{
		FieldCode, FieldCode3, FieldNumericCode, FieldCurrencyKey, FieldLocale,
		FieldName, FieldRegion, FieldContinent, FieldTimezones, FieldID,
		FieldActive, FieldGroup, FieldPriority,
	}
}

// Valid reports whether f names a known attribute.
func (f Field) Valid() bool {
	_, ok := accessors[f]
	return ok
}

// Scalar reports whether f holds a single value. Only scalar fields make
// meaningful Column keys; FieldTimezones holds a list.
func (f Field) Scalar() bool {
	return f.Valid() && f != FieldTimezones
}

// String returns the field name.
func (f Field) String() string {
	return string(f)
}

// ParseField validates a field name coming from untrusted input.
func ParseField(name string) (Field, error) {
	f := Field(name)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f, nil
}

// key renders a field value as a map key.
func key(v any) string {
	switch t := v.(type) {
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
