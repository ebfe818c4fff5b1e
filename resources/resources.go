// Package resources bundles the default country datasets.
//
// Each file under countries/ is a JSON array of country objects for one
// locale, named <locale>.json.
package resources

import (
	"embed"
	"io/fs"
)

//go:embed countries/*.json
var countriesFS embed.FS

// Countries returns the bundled datasets with the dataset files at its root.
func Countries() fs.FS {
	sub, err := fs.Sub(countriesFS, "countries")
	if err != nil {
		// fs.Sub only fails for an invalid path literal.
		panic(err)
	}
	return sub
}
