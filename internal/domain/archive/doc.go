// Package archive lays out a resolved project into the host tool's
// exact container format and serializes it as a single zip archive.
//
// Layout contract: `assets/` (may be empty), `src/<package dirs>/`
// holding one UI-layout (.scm) and one block-logic (.bky) document per
// screen, and `youngandroidproject/project.properties` with the flat
// project metadata. Output bytes are a deterministic function of the
// resolved project: fixed entry order, fixed timestamps, canonical
// property iteration order.
package archive
