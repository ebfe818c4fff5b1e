// Package tzindex maps ISO 3166-1 alpha-2 country codes to the IANA time zone
// identifiers used in that country.
//
// The index is built once from an embedded copy of the tz database's
// zone.tab file. Zones are returned in alphabetical order, so the first zone
// of a country is stable across tzdata releases that keep the same zones:
//
//	zones := tzindex.Lookup("US")
//	// ["America/Adak", "America/Anchorage", ...]
//
// Unknown or malformed codes yield an empty slice; lookups never fail.
package tzindex
