// Package country provides typed, locale-aware access to a static country
// reference dataset.
//
// The package has three layers:
//
//   - [Country], an immutable record of one country's attributes;
//   - [Countries], an ordered, immutable collection with filter, sort,
//     projection and lookup operations;
//   - [Repository], which resolves a requested locale to a dataset file and
//     keeps every loaded dataset for its lifetime.
//
// # Building Records
//
// Records are values. Copy-on-write setters return a modified copy:
//
//	us := country.New("US",
//	    country.WithCode3("USA"),
//	    country.WithNumericCode("840"),
//	    country.WithName("United States"),
//	)
//	nearby := us.WithRegion("Near by").WithPriority(100)
//
// Loosely typed input, such as decoded JSON, goes through [FromMap] and
// [FromMaps]. Missing or mistyped keys take the defaults of [New].
//
// # Querying Collections
//
// Every query returns a new collection:
//
//	europe := countries.Continent("Europe").Except("CH").Sort(nil)
//	names := europe.Column(country.FieldName, country.FieldCode)
//	// map[AT:Austria DE:Germany ...]
//
// Code matches the alpha-2, alpha-3 and numeric code, while Only and Except
// compare the alpha-2 code only.
//
// # Repository
//
// The repository reads <locale>.json files from a directory, an fs.FS or
// the datasets bundled in [github.com/dmitrymomot/country/resources]:
//
//	repo, err := country.NewRepository(
//	    country.WithDefaultLocale("en"),
//	    country.WithLocaleMapping(map[string]string{"de-CH": "de"}),
//	)
//
//	us, ok, err := repo.FindCountry(ctx, "US", country.InLocale("de"))
//	shipping, err := repo.FindCountries(ctx, country.InGroup("shipping"))
//
// A locale without a dataset falls back to its configured fallback locale
// and then to the default locale. Missing data is never an error: lookups
// return an empty collection or false. Only an unreadable or corrupt dataset
// file is reported, wrapped in [ErrInvalidDataset].
//
// # Thread Safety
//
// Records and collections are immutable and safe to share. A Repository may
// be used concurrently; each dataset is read at most once per repository.
package country
