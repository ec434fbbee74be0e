// Package schema validates raw app descriptions against the catalog.
//
// Validation runs in ordered classes (structure, naming, properties,
// bindings) and fails fast on the first class that has violations, but
// collects every violation of that class before returning so callers
// get actionable batch feedback. On success the component property bags
// have been converted to typed values; no partially valid tree is ever
// passed downstream.
package schema
