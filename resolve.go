package country

import (
	"context"
	"log/slog"
)

// resolveState tracks a locale resolution.
type resolveState int

const (
	stateResolving resolveState = iota
	stateFound
	stateExhausted
)

func (s resolveState) String() string {
	switch s {
	case stateResolving:
		return "resolving"
	case stateFound:
		return "found"
	case stateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// strategy proposes a dataset key for a requested locale.
// ok = false means the strategy does not apply and the next one is tried.
type strategy struct {
	key  func(r *Repository, requested string) (key string, ok bool)
	name string
}

// strategies are evaluated in order until one yields a dataset.
var strategies = []strategy{
	{
		name: "direct",
		key: func(r *Repository, requested string) (string, bool) {
			return r.mapLocale(requested), true
		},
	},
	{
		name: "fallback",
		key: func(r *Repository, requested string) (string, bool) {
			fallback, ok := r.fallbacks[requested]
			if !ok {
				return "", false
			}
			return r.mapLocale(fallback), true
		},
	},
	{
		// The default locale is loaded as is, without mapping.
		name: "default",
		key: func(r *Repository, requested string) (string, bool) {
			if requested == r.defaultLocale {
				return "", false
			}
			return r.defaultLocale, true
		},
	},
}

type resolution struct {
	countries *Countries
	key       string
	strategy  string
	state     resolveState
}

// resolve finds the dataset for a requested locale:
//
//  1. the requested locale, rewritten by the locale mapping;
//  2. the configured fallback of the requested locale, rewritten by the
//     locale mapping;
//  3. the default locale, unless it was the requested one.
//
// If no step finds a dataset the resolution is exhausted and yields an
// empty collection.
func (r *Repository) resolve(ctx context.Context, requested string) (resolution, error) {
	res := resolution{state: stateResolving}

	for _, s := range strategies {
		if res.state != stateResolving {
			break
		}

		key, ok := s.key(r, requested)
		if !ok {
			continue
		}

		countries, found, err := r.load(ctx, key)
		if err != nil {
			return resolution{}, err
		}
		if found {
			res = resolution{
				state:     stateFound,
				countries: countries,
				key:       key,
				strategy:  s.name,
			}
		}
	}

	if res.state == stateResolving {
		res = resolution{
			state:     stateExhausted,
			countries: NewCountries(),
		}
	}

	r.logger.DebugContext(ctx, "country locale resolved",
		slog.String("requested", requested),
		slog.String("state", res.state.String()),
		slog.String("strategy", res.strategy),
		slog.String("dataset", res.key),
	)

	return res, nil
}
