package country

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/country/pkg/cache"
	"github.com/dmitrymomot/country/pkg/logger"
	"github.com/dmitrymomot/country/resources"
)

// DefaultLocale is the locale used when no default locale is configured.
const DefaultLocale = "en"

// datasetExt is the extension of dataset files.
const datasetExt = ".json"

// datasetKey matches the locale keys allowed as dataset file names.
var datasetKey = regexp.MustCompile(`^[a-zA-Z_-]{2,5}$`)

// Repository resolves locales to country datasets.
//
// Datasets are JSON files named <locale>.json holding an array of country
// objects. Each dataset is read at most once per repository and kept for the
// repository's lifetime. A Repository is safe for concurrent use.
type Repository struct {
	fsys          fs.FS
	datasets      *cache.Memory[*Countries]
	logger        *slog.Logger
	fallbacks     map[string]string
	mapping       map[string]string
	defaultLocale string
}

// RepositoryOption configures a Repository during construction.
type RepositoryOption func(*Repository) error

// NewRepository creates a repository.
// Without WithDirectory or WithFS the datasets bundled with this module are used.
//
// Example:
//
//	repo, err := country.NewRepository(
//	    country.WithDefaultLocale("de"),
//	    country.WithLocaleFallbacks(map[string]string{"fr-CH": "fr"}),
//	    country.WithLocaleMapping(map[string]string{"de-CH": "de"}),
//	)
func NewRepository(opts ...RepositoryOption) (*Repository, error) {
	r := &Repository{
		fsys:          resources.Countries(),
		datasets:      cache.NewMemory[*Countries](),
		logger:        logger.NewNope(),
		fallbacks:     make(map[string]string),
		mapping:       make(map[string]string),
		defaultLocale: DefaultLocale,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return r, nil
}

// WithDefaultLocale sets the locale used when none is requested and as the
// last resort of the fallback chain.
func WithDefaultLocale(locale string) RepositoryOption {
	return func(r *Repository) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		r.defaultLocale = locale
		return nil
	}
}

// WithLocaleFallbacks sets the locale to try when a requested locale has no
// dataset, e.g. {"de-CH": "de"}. Fallback locales are mapped with the locale
// mapping before loading.
func WithLocaleFallbacks(fallbacks map[string]string) RepositoryOption {
	return func(r *Repository) error {
		maps.Copy(r.fallbacks, fallbacks)
		return nil
	}
}

// WithLocaleMapping rewrites requested locales to dataset keys before
// loading, e.g. {"de-CH": "de"} reads de.json for "de-CH".
func WithLocaleMapping(mapping map[string]string) RepositoryOption {
	return func(r *Repository) error {
		maps.Copy(r.mapping, mapping)
		return nil
	}
}

// WithDirectory reads datasets from a directory on disk.
// Backslashes are treated as separators and a trailing slash is ignored.
func WithDirectory(dir string) RepositoryOption {
	return func(r *Repository) error {
		if dir == "" {
			return ErrEmptyDirectory
		}
		dir = strings.ReplaceAll(dir, `\`, "/")
		dir = strings.ReplaceAll(dir, "//", "/")
		if trimmed := strings.TrimRight(dir, "/"); trimmed != "" {
			dir = trimmed
		}
		r.fsys = os.DirFS(dir)
		return nil
	}
}

// WithFS reads datasets from the root of fsys.
func WithFS(fsys fs.FS) RepositoryOption {
	return func(r *Repository) error {
		if fsys == nil {
			return ErrNilFS
		}
		r.fsys = fsys
		return nil
	}
}

// WithLogger sets the logger for dataset loads and locale resolution.
func WithLogger(l *slog.Logger) RepositoryOption {
	return func(r *Repository) error {
		if l != nil {
			r.logger = l
		}
		return nil
	}
}

// FindOption narrows a lookup.
type FindOption func(*findOptions)

type findOptions struct {
	locale   string
	group    string
	hasGroup bool
}

// InLocale requests a locale. An empty locale means the default locale.
func InLocale(locale string) FindOption {
	return func(o *findOptions) { o.locale = locale }
}

// InGroup keeps only countries of the given group.
func InGroup(group string) FindOption {
	return func(o *findOptions) {
		o.group = group
		o.hasGroup = true
	}
}

// FindCountries returns the countries for the requested locale, falling back
// as described on resolve. A locale with no dataset anywhere in the chain
// yields an empty collection, not an error. The only error is a dataset that
// cannot be read or parsed.
func (r *Repository) FindCountries(ctx context.Context, opts ...FindOption) (*Countries, error) {
	o := findOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	requested := o.locale
	if requested == "" {
		requested = r.defaultLocale
	}

	res, err := r.resolve(ctx, requested)
	if err != nil {
		return nil, err
	}

	countries := res.countries
	if o.hasGroup {
		countries = countries.Group(o.group)
	}
	return countries, nil
}

// FindCountry returns the first country matching code by any of its codes.
// Only the locale option applies; the second result is false if nothing matches.
func (r *Repository) FindCountry(ctx context.Context, code string, opts ...FindOption) (Country, bool, error) {
	o := findOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	countries, err := r.FindCountries(ctx, InLocale(o.locale))
	if err != nil {
		return Country{}, false, err
	}

	c, ok := countries.Code(code).First()
	return c, ok, nil
}

// ResolveLocale reports which dataset key FindCountries would serve for
// locale after mapping and fallbacks. The second result is false when no
// dataset in the chain exists.
func (r *Repository) ResolveLocale(ctx context.Context, locale string) (string, bool, error) {
	if locale == "" {
		locale = r.defaultLocale
	}

	res, err := r.resolve(ctx, locale)
	if err != nil {
		return "", false, err
	}
	return res.key, res.state == stateFound, nil
}

// DefaultLocale returns the default locale.
func (r *Repository) DefaultLocale() string {
	return r.defaultLocale
}

// Locales lists the dataset keys available in the dataset source, sorted.
func (r *Repository) Locales() ([]string, error) {
	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("country: listing datasets: %w", err)
	}

	locales := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != datasetExt {
			continue
		}
		key := strings.TrimSuffix(entry.Name(), datasetExt)
		if datasetKey.MatchString(key) {
			locales = append(locales, key)
		}
	}
	slices.Sort(locales)
	return locales, nil
}

// Warm loads the datasets for keys ahead of the first lookup.
// Keys are dataset keys; no mapping or fallback is applied. Without keys the
// default locale is loaded.
func (r *Repository) Warm(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		keys = []string{r.defaultLocale}
	}

	for _, key := range keys {
		_, found, err := r.load(ctx, key)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: %q", ErrDatasetNotFound, key)
		}
	}
	return nil
}

// load returns the dataset stored under key.
// Invalid keys and missing files report found = false. Only read and parse
// failures are errors.
func (r *Repository) load(ctx context.Context, key string) (*Countries, bool, error) {
	if !datasetKey.MatchString(key) {
		return nil, false, nil
	}

	countries, err := r.datasets.GetOrLoad(ctx, key, func(ctx context.Context) (*Countries, error) {
		return r.readDataset(ctx, key)
	})
	if errors.Is(err, cache.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return countries, true, nil
}

func (r *Repository) readDataset(ctx context.Context, key string) (*Countries, error) {
	file := key + datasetExt

	data, err := fs.ReadFile(r.fsys, file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, cache.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("country: reading %q: %w", file, err)
	}

	var items []any
	if err := decode(data, &items); err != nil {
		r.logger.ErrorContext(ctx, "country dataset is corrupt",
			slog.String("file", file),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidDataset, file, err)
	}

	countries := FromMaps(items, key)
	r.logger.InfoContext(ctx, "country dataset loaded",
		slog.String("locale", key),
		slog.Int("countries", countries.Len()),
	)
	return countries, nil
}

func (r *Repository) mapLocale(locale string) string {
	if mapped, ok := r.mapping[locale]; ok {
		return mapped
	}
	return locale
}
