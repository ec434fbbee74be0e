// Package http exposes the synthesis pipeline over a small REST
// surface: synthesize, dry-run validate, capability listing, and
// health. Failures return the full violation list, never a partial
// archive.
package http
