package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/country"
	"github.com/dmitrymomot/country/internal/server"
)

const (
	enDataset = `[
		{"code": "US", "code3": "USA", "numericCode": "840", "name": "United States", "region": "Americas", "continent": "North America", "group": "shipping", "priority": 1},
		{"code": "CH", "code3": "CHE", "numericCode": "756", "name": "Switzerland", "region": "Europe", "continent": "Europe", "group": "payment", "priority": 5},
		{"code": "AT", "code3": "AUT", "numericCode": "040", "name": "Austria", "region": "Europe", "continent": "Europe", "group": "shipping", "active": false}
	]`
	deDataset = `[
		{"code": "US", "code3": "USA", "numericCode": "840", "name": "Vereinigte Staaten", "region": "Amerika", "continent": "Nordamerika"},
		{"code": "AT", "code3": "AUT", "numericCode": "040", "name": "Österreich", "region": "Europa", "continent": "Europa"},
		{"code": "CH", "code3": "CHE", "numericCode": "756", "name": "Schweiz", "region": "Europa", "continent": "Europa"}
	]`
)

func newServer(t *testing.T, files map[string]string) *server.Server {
	t.Helper()

	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(data)}
	}
	repo, err := country.NewRepository(country.WithFS(fsys))
	require.NoError(t, err)
	return server.New(repo)
}

// unlistableFS serves files but fails to list its root.
type unlistableFS struct {
	fsys fs.FS
}

func (u unlistableFS) Open(name string) (fs.File, error) {
	if name == "." {
		return nil, errors.New("permission denied")
	}
	return u.fsys.Open(name)
}

func defaultServer(t *testing.T) *server.Server {
	t.Helper()
	return newServer(t, map[string]string{"en.json": enDataset, "de.json": deDataset})
}

func get(t *testing.T, h http.Handler, target string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type countryBody struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Locale   string `json:"locale"`
	Priority int    `json:"priority"`
}

type errorBody struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	} `json:"error"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func codes(items []countryBody) []string {
	out := make([]string, len(items))
	for i, c := range items {
		out[i] = c.Code
	}
	return out
}

func TestListCountries(t *testing.T) {
	t.Parallel()

	t.Run("default locale", func(t *testing.T) {
		t.Parallel()
		rec := get(t, defaultServer(t), "/countries")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "en", rec.Header().Get("Content-Language"))

		items := decode[[]countryBody](t, rec)
		require.Equal(t, []string{"US", "CH", "AT"}, codes(items))
		require.Equal(t, "United States", items[0].Name)
	})

	t.Run("locale parameter", func(t *testing.T) {
		t.Parallel()
		items := decode[[]countryBody](t, get(t, defaultServer(t), "/countries?locale=de"))
		require.Equal(t, "Vereinigte Staaten", items[0].Name)
	})

	t.Run("accept language", func(t *testing.T) {
		t.Parallel()
		rec := get(t, defaultServer(t), "/countries", "Accept-Language", "de-CH, fr;q=0.8")
		require.Equal(t, "de", rec.Header().Get("Content-Language"))
		items := decode[[]countryBody](t, rec)
		require.Equal(t, "Vereinigte Staaten", items[0].Name)
	})

	t.Run("unmatched accept language uses default", func(t *testing.T) {
		t.Parallel()
		rec := get(t, defaultServer(t), "/countries", "Accept-Language", "ja")
		require.Equal(t, "en", rec.Header().Get("Content-Language"))
	})

	t.Run("unknown locale falls back to default", func(t *testing.T) {
		t.Parallel()
		items := decode[[]countryBody](t, get(t, defaultServer(t), "/countries?locale=fr"))
		require.Equal(t, "United States", items[0].Name)
	})

	t.Run("filters", func(t *testing.T) {
		t.Parallel()
		srv := defaultServer(t)

		items := decode[[]countryBody](t, get(t, srv, "/countries?group=shipping"))
		require.Equal(t, []string{"US", "AT"}, codes(items))

		items = decode[[]countryBody](t, get(t, srv, "/countries?region=Europe"))
		require.Equal(t, []string{"CH", "AT"}, codes(items))

		items = decode[[]countryBody](t, get(t, srv, "/countries?continent=Europe&except=ch"))
		require.Equal(t, []string{"AT"}, codes(items))

		items = decode[[]countryBody](t, get(t, srv, "/countries?only=us,%20AT"))
		require.Equal(t, []string{"US", "AT"}, codes(items))

		items = decode[[]countryBody](t, get(t, srv, "/countries?active=false"))
		require.Equal(t, []string{"AT"}, codes(items))
	})

	t.Run("sorting", func(t *testing.T) {
		t.Parallel()
		srv := defaultServer(t)

		items := decode[[]countryBody](t, get(t, srv, "/countries?sort=name"))
		require.Equal(t, []string{"AT", "CH", "US"}, codes(items))

		items = decode[[]countryBody](t, get(t, srv, "/countries?sort=priority"))
		require.Equal(t, []string{"CH", "US", "AT"}, codes(items))

		items = decode[[]countryBody](t, get(t, srv, "/countries?locale=de&sort=collate"))
		require.Equal(t, []string{"AT", "CH", "US"}, codes(items))
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		t.Parallel()
		rec := get(t, defaultServer(t), "/countries?group=none")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("bad parameters", func(t *testing.T) {
		t.Parallel()
		srv := defaultServer(t)

		rec := get(t, srv, "/countries?sort=random")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "bad_request", decode[errorBody](t, rec).Error.Code)

		rec = get(t, srv, "/countries?active=maybe")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid dataset is a server error", func(t *testing.T) {
		t.Parallel()
		srv := newServer(t, map[string]string{"en.json": `{"not": "a list"`})
		rec := get(t, srv, "/countries")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "internal_error", decode[errorBody](t, rec).Error.Code)
	})
}

func TestContentLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   string
		header   []string
		expected string
	}{
		{name: "list direct", target: "/countries?locale=de", expected: "de"},
		{name: "list falls back to default", target: "/countries?locale=fr", expected: "en"},
		{name: "country falls back to default", target: "/countries/US?locale=fr", expected: "en"},
		{name: "column falls back to default", target: "/countries/column?field=name&locale=fr", expected: "en"},
		{name: "negotiated", target: "/countries/US", header: []string{"Accept-Language", "de-AT"}, expected: "de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := get(t, defaultServer(t), tt.target, tt.header...)
			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, tt.expected, rec.Header().Get("Content-Language"))
		})
	}

	t.Run("fallback record matches header", func(t *testing.T) {
		t.Parallel()

		rec := get(t, defaultServer(t), "/countries/US?locale=fr")
		body := decode[countryBody](t, rec)
		require.Equal(t, rec.Header().Get("Content-Language"), body.Locale)
		require.Equal(t, "United States", body.Name)
	})

	t.Run("omitted when no dataset serves the locale", func(t *testing.T) {
		t.Parallel()

		rec := get(t, newServer(t, map[string]string{"de.json": deDataset}), "/countries?locale=fr")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Header().Get("Content-Language"))
		require.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestAcceptLanguageWithUnlistableDatasets(t *testing.T) {
	t.Parallel()

	repo, err := country.NewRepository(country.WithFS(unlistableFS{fsys: fstest.MapFS{
		"en.json": &fstest.MapFile{Data: []byte(enDataset)},
	}}))
	require.NoError(t, err)

	rec := get(t, server.New(repo), "/countries", "Accept-Language", "de")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "en", rec.Header().Get("Content-Language"))
	require.Len(t, decode[[]countryBody](t, rec), 3)
}

func TestGetCountry(t *testing.T) {
	t.Parallel()

	t.Run("by any code", func(t *testing.T) {
		t.Parallel()
		srv := defaultServer(t)

		for _, code := range []string{"CH", "che", "756"} {
			rec := get(t, srv, "/countries/"+code)
			require.Equal(t, http.StatusOK, rec.Code, code)
			require.Equal(t, "CH", decode[countryBody](t, rec).Code)
		}
	})

	t.Run("localized", func(t *testing.T) {
		t.Parallel()
		rec := get(t, defaultServer(t), "/countries/AT?locale=de")
		require.Equal(t, "Österreich", decode[countryBody](t, rec).Name)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		rec := get(t, defaultServer(t), "/countries/ZZ", server.RequestIDHeader, "req-1")
		require.Equal(t, http.StatusNotFound, rec.Code)

		body := decode[errorBody](t, rec)
		require.Equal(t, "not_found", body.Error.Code)
		require.Equal(t, "req-1", body.Error.RequestID)
	})
}

func TestCountryColumn(t *testing.T) {
	t.Parallel()

	t.Run("column", func(t *testing.T) {
		t.Parallel()
		rec := get(t, defaultServer(t), "/countries/column?field=name&index=code")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, map[string]any{
			"US": "United States",
			"CH": "Switzerland",
			"AT": "Austria",
		}, decode[map[string]any](t, rec))
	})

	t.Run("grouped", func(t *testing.T) {
		t.Parallel()
		rec := get(t, defaultServer(t), "/countries/column?field=code3&index=code&group_by=continent&locale=de")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, map[string]map[string]any{
			"Nordamerika": {"US": "USA"},
			"Europa":      {"AT": "AUT", "CH": "CHE"},
		}, decode[map[string]map[string]any](t, rec))
	})

	t.Run("list field with scalar index", func(t *testing.T) {
		t.Parallel()
		rec := get(t, defaultServer(t), "/countries/column?field=timezones&index=code&only=CH")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, map[string]any{"CH": []any{"Europe/Zurich"}}, decode[map[string]any](t, rec))
	})

	t.Run("unknown fields", func(t *testing.T) {
		t.Parallel()
		srv := defaultServer(t)

		for _, target := range []string{
			"/countries/column",
			"/countries/column?field=flag",
			"/countries/column?field=name&index=flag",
			"/countries/column?field=name&group_by=flag",
			"/countries/column?field=timezones",
			"/countries/column?field=name&index=timezones",
		} {
			rec := get(t, srv, target)
			require.Equal(t, http.StatusBadRequest, rec.Code, target)
		}
	})
}

func TestHealth(t *testing.T) {
	t.Parallel()

	t.Run("live", func(t *testing.T) {
		t.Parallel()
		rec := get(t, newServer(t, nil), "/health/live")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ready", func(t *testing.T) {
		t.Parallel()
		rec := get(t, defaultServer(t), "/health/ready")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not ready without default dataset", func(t *testing.T) {
		t.Parallel()
		rec := get(t, newServer(t, map[string]string{"de.json": deDataset}), "/health/ready?format=json")
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Contains(t, rec.Body.String(), "dataset not found")
	})
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generated", func(t *testing.T) {
		t.Parallel()
		rec := get(t, defaultServer(t), "/health/live")
		require.Len(t, rec.Header().Get(server.RequestIDHeader), 36)
	})

	t.Run("propagated", func(t *testing.T) {
		t.Parallel()
		rec := get(t, defaultServer(t), "/health/live", "X-Correlation-ID", "upstream")
		require.Equal(t, "upstream", rec.Header().Get(server.RequestIDHeader))
	})
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	rec := get(t, defaultServer(t), "/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "not_found", decode[errorBody](t, rec).Error.Code)
}

func TestRun(t *testing.T) {
	t.Parallel()

	srv := defaultServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addrCh := make(chan net.Addr, 1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run(ctx, server.RunConfig{
			Addr:            "127.0.0.1:0",
			ShutdownTimeout: time.Second,
			Ready:           func(addr net.Addr) { addrCh <- addr },
		})
	}()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case err := <-errCh:
		t.Fatalf("server stopped early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + addr.String() + "/health/live")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunRequiresAddress(t *testing.T) {
	t.Parallel()

	err := defaultServer(t).Run(context.Background(), server.RunConfig{})
	require.ErrorIs(t, err, server.ErrListenAddress)
}
