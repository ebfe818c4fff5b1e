// Package locale negotiates and compares locales for country datasets.
//
// Dataset keys are loose locale strings such as "en", "de-CH" or "pt_BR".
// This package maps them to BCP 47 tags so HTTP Accept-Language headers
// can be matched against the datasets a repository offers, and so country
// names can be sorted with the collation rules of a locale.
//
// # Accept-Language
//
//	available := []string{"de", "en", "fr"}
//	best := locale.Negotiate("de-CH,de;q=0.9,en;q=0.8", available, "en")
//	// best == "de"
//
// # Collation
//
//	countries.Sort(locale.CompareNames("de"))
//	// "Ägypten" sorts before "Albanien" instead of after "Zypern"
package locale
