// Package blocks converts event bindings into the target's visual
// block intermediate representation: a tree of typed nodes with typed
// argument sockets, one top-level event block per binding.
//
// Block identifiers and placement coordinates are pure functions of
// emission order, so identical input yields an identical tree.
// A malformed tree produces an archive that parses but misbehaves when
// opened in the host tool, so tests assert on tree shape.
package blocks
