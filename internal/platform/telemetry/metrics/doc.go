// Package metrics provides operational metrics collection.
//
// Metrics are collected by a gRPC unary interceptor and exposed in Prometheus
// format on an optional HTTP endpoint. The interceptor records:
//   - Request count by method and status code
//   - Request latency by method
//   - In-flight requests
//
// Each Metrics value owns its registry so tests and multiple servers in one
// process never collide on collector registration.
package metrics
