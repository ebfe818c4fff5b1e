// Package server exposes a country.Repository over HTTP.
//
// Routes:
//
//	GET /countries                 list, filtered by query parameters
//	GET /countries/column          Column / GroupedColumn projections
//	GET /countries/{code}          one country, 404 when absent
//	GET /health/live               liveness probe
//	GET /health/ready              readiness probe, loads the default dataset
//
// The locale of a request is the "locale" query parameter or, when absent,
// the best match of Accept-Language among the repository's datasets.
// Content-Language names the dataset that served the response.
// Errors are rendered as JSON:
//
//	{"error":{"code":"not_found","message":"country not found","request_id":"..."}}
package server
