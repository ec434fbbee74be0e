// Package monitoring exposes Prometheus metrics for the synthesis
// service: request outcomes, synthesis latency, and archive sizes.
package monitoring
