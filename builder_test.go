package country_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/country"
)

func TestFromMap(t *testing.T) {
	t.Parallel()

	t.Run("reads all keys", func(t *testing.T) {
		t.Parallel()

		c := country.FromMap(map[string]any{
			"code":        "US",
			"code3":       "USA",
			"numericCode": "840",
			"currencyKey": "USD",
			"locale":      "en",
			"name":        "United States",
			"region":      "",
			"continent":   "North America",
			"id":          1,
			"active":      false,
			"group":       "shipping",
			"priority":    20,
		})

		require.Equal(t, country.New("US",
			country.WithCode3("USA"),
			country.WithNumericCode("840"),
			country.WithCurrencyKey("USD"),
			country.WithLocale("en"),
			country.WithName("United States"),
			country.WithContinent("North America"),
			country.WithID(1),
			country.WithActive(false),
			country.WithGroup("shipping"),
			country.WithPriority(20),
		), c)
	})

	t.Run("missing keys take defaults", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, country.New("CH"), country.FromMap(map[string]any{"code": "CH"}))
		require.Equal(t, country.New(""), country.FromMap(map[string]any{}))
		require.Equal(t, country.New(""), country.FromMap(nil))
	})

	t.Run("wrong types take defaults", func(t *testing.T) {
		t.Parallel()

		c := country.FromMap(map[string]any{
			"code":     "CH",
			"name":     42,
			"id":       "7",
			"active":   "no",
			"priority": 1.5,
			"locale":   nil,
		})

		require.Equal(t, country.New("CH"), c)
	})

	t.Run("accepts JSON numbers", func(t *testing.T) {
		t.Parallel()

		c := country.FromMap(map[string]any{
			"code":     "CH",
			"id":       float64(12),
			"priority": json.Number("3"),
		})

		require.Equal(t, 12, c.ID())
		require.Equal(t, 3, c.Priority())
	})

	t.Run("ignores unknown keys", func(t *testing.T) {
		t.Parallel()

		c := country.FromMap(map[string]any{"code": "CH", "timezones": []any{"Mars/Base"}, "flag": "🇨🇭"})
		require.Equal(t, country.New("CH"), c)
	})
}

func TestNewCountries(t *testing.T) {
	t.Parallel()

	us := country.New("US")
	ch := country.New("CH")
	input := []country.Country{us, ch}

	countries := country.NewCountries(input...)
	input[0] = country.New("IT")

	require.Equal(t, []country.Country{us, ch}, countries.All())
}

func TestFromMaps(t *testing.T) {
	t.Parallel()

	t.Run("builds records from mappings", func(t *testing.T) {
		t.Parallel()

		countries := country.FromMaps([]any{
			map[string]any{"code": "US", "name": "United States"},
			map[string]any{"code": "CH", "name": "Switzerland"},
		}, "")

		require.Equal(t, 2, countries.Len())
		us, ok := countries.Get("US")
		require.True(t, ok)
		require.Equal(t, "United States", us.Name())
		require.Empty(t, us.Locale())
	})

	t.Run("injects default locale only when absent", func(t *testing.T) {
		t.Parallel()

		explicit := map[string]any{"code": "US", "locale": "fr"}
		absent := map[string]any{"code": "CH"}

		countries := country.FromMaps([]any{explicit, absent}, "de")

		us, ok := countries.Get("US")
		require.True(t, ok)
		require.Equal(t, "fr", us.Locale())

		ch, ok := countries.Get("CH")
		require.True(t, ok)
		require.Equal(t, "de", ch.Locale())

		_, mutated := absent["locale"]
		require.False(t, mutated, "input mapping must not be modified")
	})

	t.Run("null locale counts as absent", func(t *testing.T) {
		t.Parallel()

		countries := country.FromMaps([]any{map[string]any{"code": "US", "locale": nil}}, "de")

		us, ok := countries.First()
		require.True(t, ok)
		require.Equal(t, "de", us.Locale())
	})

	t.Run("adds records as is", func(t *testing.T) {
		t.Parallel()

		us := country.New("US", country.WithLocale("en"))
		ch := country.New("CH")

		countries := country.FromMaps([]any{us, &ch}, "de")

		require.Equal(t, []country.Country{us, ch}, countries.All())
	})

	t.Run("skips items of other shapes", func(t *testing.T) {
		t.Parallel()

		var nilCountry *country.Country
		countries := country.FromMaps([]any{
			"US",
			42,
			nil,
			nilCountry,
			[]any{"CH"},
			map[string]any{"code": "IT"},
		}, "")

		require.Equal(t, []any{"IT"}, columnValues(countries, country.FieldCode))
	})

	t.Run("preserves order", func(t *testing.T) {
		t.Parallel()

		countries := country.FromMaps([]any{
			map[string]any{"code": "US"},
			country.New("CH"),
			map[string]any{"code": "IT"},
		}, "")

		require.Equal(t, []any{"US", "CH", "IT"}, columnValues(countries, country.FieldCode))
	})
}

func columnValues(countries *country.Countries, f country.Field) []any {
	values := make([]any, 0, countries.Len())
	for c := range countries.Iter() {
		v, _ := c.Value(f)
		values = append(values, v)
	}
	return values
}
