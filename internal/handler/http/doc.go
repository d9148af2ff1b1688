// Package http serves the client's local status API.
//
// The API is read-only apart from a reload trigger: it exposes the cached
// library, process health, build information and Prometheus metrics.
// Request tracing, access logging, response compression and response
// signing are handled here before requests reach the library store.
package http
