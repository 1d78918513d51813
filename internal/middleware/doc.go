// Package middleware provides gin middleware for the route map layer.
//
// # Middleware Components
//
//   - Logging: structured request/response logging with request IDs
//   - Recovery: panic recovery with stack trace logging
//   - Normalize: request payload-section existence flags
//   - Errors: error-to-status mapping over the canonical status table
//   - NotFound: per-tree 404 handlers for the root and api trees
//   - Metrics: Prometheus request counters and latency histograms
//   - Tracing: OpenTelemetry span per request
//
// Middleware constructors follow the gin convention: Xxx(logger)
// returns a handler with defaults, XxxWithConfig(cfg) accepts custom
// configuration.
package middleware
