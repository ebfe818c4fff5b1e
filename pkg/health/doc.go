// Package health provides HTTP handlers for health probes.
//
// [LivenessHandler] always answers OK while the process runs.
// [ReadinessHandler] runs a set of named [Checks] in parallel under a shared
// timeout and answers 503 if any of them fails:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"datasets": func(ctx context.Context) error {
//			return repo.Warm(ctx)
//		},
//	}, health.WithTimeout(2*time.Second)))
//
// Responses are plain text unless the client asks for JSON with
// "Accept: application/json" or "?format=json":
//
//	{"status":"unhealthy","checks":{"datasets":{"status":"unhealthy","error":"..."}}}
//
// Panicking checks are reported as failed instead of crashing the probe.
package health
