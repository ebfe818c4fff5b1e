package server

import (
	"cmp"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/country"
	"github.com/dmitrymomot/country/pkg/locale"
)

// requestLocale returns the explicit locale parameter or the best
// Accept-Language match among the available datasets. When the datasets
// cannot be listed the default locale is used.
func (s *Server) requestLocale(r *http.Request) string {
	if l := strings.TrimSpace(r.URL.Query().Get("locale")); l != "" {
		return l
	}

	header := r.Header.Get("Accept-Language")
	if header == "" {
		return s.repo.DefaultLocale()
	}

	available, err := s.repo.Locales()
	if err != nil {
		s.logger.WarnContext(r.Context(), "listing country datasets failed",
			slog.Any("error", err),
		)
		return s.repo.DefaultLocale()
	}
	return locale.Negotiate(header, available, s.repo.DefaultLocale())
}

// resolveLocale returns the requested locale and the dataset key that
// serves it, or "" when no dataset does.
func (s *Server) resolveLocale(r *http.Request) (requested, served string, err error) {
	requested = s.requestLocale(r)

	served, ok, err := s.repo.ResolveLocale(r.Context(), requested)
	if err != nil {
		return "", "", err
	}
	if !ok {
		served = ""
	}
	return requested, served, nil
}

// setContentLanguage names the dataset that produced the response.
func setContentLanguage(w http.ResponseWriter, served string) {
	if served != "" {
		w.Header().Set("Content-Language", served)
	}
}

// collation picks the locale for name collation.
func collation(requested, served string) string {
	if served != "" {
		return served
	}
	return requested
}

// findCountries loads the request's countries. It also returns the locale
// used for collation and the served dataset key.
func (s *Server) findCountries(r *http.Request) (*country.Countries, string, string, error) {
	requested, served, err := s.resolveLocale(r)
	if err != nil {
		return nil, "", "", err
	}

	opts := []country.FindOption{country.InLocale(requested)}
	if q := r.URL.Query(); q.Has("group") {
		opts = append(opts, country.InGroup(q.Get("group")))
	}

	countries, err := s.repo.FindCountries(r.Context(), opts...)
	if err != nil {
		return nil, "", "", err
	}
	return countries, collation(requested, served), served, nil
}

func (s *Server) listCountries(w http.ResponseWriter, r *http.Request) error {
	countries, loc, served, err := s.findCountries(r)
	if err != nil {
		return err
	}

	countries, err = applyFilters(countries, r.URL.Query(), loc)
	if err != nil {
		return err
	}

	setContentLanguage(w, served)
	writeJSON(w, http.StatusOK, countries)
	return nil
}

func applyFilters(countries *country.Countries, q url.Values, loc string) (*country.Countries, error) {
	if v := q.Get("region"); v != "" {
		countries = countries.Region(v)
	}
	if v := q.Get("continent"); v != "" {
		countries = countries.Continent(v)
	}
	if codes := splitList(q.Get("only")); len(codes) > 0 {
		countries = countries.Only(codes...)
	}
	if codes := splitList(q.Get("except")); len(codes) > 0 {
		countries = countries.Except(codes...)
	}
	if v := q.Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errBadRequest("active must be a boolean", err)
		}
		countries = countries.Filter(func(c country.Country) bool {
			return c.Active() == active
		})
	}

	switch q.Get("sort") {
	case "":
	case "name":
		countries = countries.Sort(country.ByName)
	case "collate":
		countries = countries.Sort(locale.CompareNames(loc))
	case "priority":
		countries = countries.Sort(country.ByPriority)
	default:
		return nil, errBadRequest(fmt.Sprintf("unknown sort %q", q.Get("sort")), nil)
	}
	return countries, nil
}

func (s *Server) getCountry(w http.ResponseWriter, r *http.Request) error {
	requested, served, err := s.resolveLocale(r)
	if err != nil {
		return err
	}

	// Dataset codes are upper case; the API accepts any case.
	code := strings.ToUpper(chi.URLParam(r, "code"))
	c, ok, err := s.repo.FindCountry(r.Context(), code, country.InLocale(requested))
	if err != nil {
		return err
	}
	if !ok {
		return errNotFound(fmt.Sprintf("country %q not found", code))
	}

	setContentLanguage(w, served)
	writeJSON(w, http.StatusOK, c)
	return nil
}

func (s *Server) countryColumn(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()

	field, err := country.ParseField(q.Get("field"))
	if err != nil {
		return errBadRequest(fmt.Sprintf("unknown field %q", q.Get("field")), err)
	}

	var index country.Field
	if v := q.Get("index"); v != "" {
		if index, err = country.ParseField(v); err != nil {
			return errBadRequest(fmt.Sprintf("unknown index %q", v), err)
		}
	}

	if effective := cmp.Or(index, field); !effective.Scalar() {
		return errBadRequest(fmt.Sprintf("%q cannot be used as index", effective), nil)
	}

	var group country.Field
	if v := q.Get("group_by"); v != "" {
		if group, err = country.ParseField(v); err != nil {
			return errBadRequest(fmt.Sprintf("unknown group_by %q", v), err)
		}
	}

	countries, loc, served, err := s.findCountries(r)
	if err != nil {
		return err
	}
	countries, err = applyFilters(countries, q, loc)
	if err != nil {
		return err
	}

	setContentLanguage(w, served)
	if group != "" {
		writeJSON(w, http.StatusOK, countries.GroupedColumn(group, field, index))
		return nil
	}
	writeJSON(w, http.StatusOK, countries.Column(field, index))
	return nil
}

// splitList parses a comma separated code list, upper-cased.
func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.ToUpper(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
