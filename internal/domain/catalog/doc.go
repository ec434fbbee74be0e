// Package catalog is the single source of truth for the target format's
// component kinds, their property tables, events, action and operator
// signatures, and the format/language version pair.
//
// The schema validator, property normalizer, block synthesizer, and
// archive assembler all read these tables; adding a component kind or
// action kind is a change to this package only.
package catalog
