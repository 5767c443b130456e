// Package observability provides structured logging, Prometheus metrics,
// health probes, and graceful shutdown for the Bookstand service.
//
// The logger is a thin wrapper over log/slog emitting JSON. Metrics cover
// the HTTP surface plus the catalog and review domains and are served on a
// separate health port alongside /health liveness and readiness probes.
package observability
