// Package core is the rendering kernel: it turns an ast.Node into a live
// screen subtree and keeps mounting points in sync with assignments.
//
// # Building
//
// Builder.Build materializes the root element through the leaf factory and
// then walks the children in order:
//
//   - static text becomes a text node
//   - nested nodes are built recursively and appended
//   - bindings become text nodes updated by the data tree
//   - mounting points install an Accessor on the State and append an anchor
//
// Any other child is a StructureError and stops the build.
//
// # Mounting points
//
// Every mounting point owns an anchor node created at build time. Writes
// through the mounting point's Accessor insert and remove Mountable root
// nodes relative to that anchor:
//
//	state.Set("header", header)                 // single slot
//	state.Set("items", []core.Mountable{a, b})  // list, rendered a then b
//
// A Mountable may occupy only one mounting point at a time. Writing one that
// is attached elsewhere is reported on the diagnostic channel and ignored.
// Writing the value a mounting point already holds does nothing.
//
// Mounting point names must not collide with the reserved names listed by
// ReservedNames.
package core
