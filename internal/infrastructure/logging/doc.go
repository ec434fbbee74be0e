// Package logging provides structured logging using uber/zap.
//
// Two modes: production JSON output for machine parsing, development
// colored console output for human readability.
package logging
