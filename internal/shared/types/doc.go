// Package types defines the shared data model for the synthesizer.
//
// The model mirrors the structure the AI collaborator produces: an
// AppDescription owning ScreenDescriptions, each holding a component
// tree plus event bindings. Loose property bags arriving over the wire
// are converted into the closed Value union at the validation boundary
// so downstream stages never re-check types.
package types
