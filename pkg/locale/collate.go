package locale

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/country"
)

// CompareNames returns a comparator for Countries.Sort that orders
// countries by name using the collation rules of the given locale.
// Unknown locales use the root collation.
//
// The returned function is not safe for concurrent use; create one per sort.
func CompareNames(key string) func(a, b country.Country) int {
	tag, ok := Tag(key)
	if !ok {
		tag = language.Und
	}
	c := collate.New(tag, collate.Loose)

	return func(a, b country.Country) int {
		if n := c.CompareString(a.Name(), b.Name()); n != 0 {
			return n
		}
		return country.ByName(a, b)
	}
}
