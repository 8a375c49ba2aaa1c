// Package scene decodes declarative TOML descriptions of composition trees
// into pointfn shapes, so parametric scenes can be authored as data and
// sampled without writing Go.
//
// What:
//
//   - A scene document holds one [shape] table: a node with a kind
//     ("circle", "line", "twist", "connect", "loft") plus that kind's
//     constants and nested child tables.
//   - Load parses a document and builds the tree through the pointfn
//     constructors, so every scene passes exactly the same validation as
//     hand-built trees.
//
// Why:
//
//   - The composition tree is pure data; a text format for it makes scenes
//     versionable, diffable and tool-friendly.
//
// Format:
//
//	[shape]
//	kind = "twist"
//	axis = [0.0, 0.0, 1.0]
//	rate = 1.0
//
//	[shape.source]
//	kind = "connect"
//
//	[shape.source.a]
//	kind = "circle"
//	radius = 1.0
//
//	[shape.source.b]
//	kind = "circle"
//	center = [0.0, 0.0, 2.0]
//	radius = 1.0
//
// Triples are three-element float arrays. Omitted circle centers default to
// the origin; omitted circle normals and twist axes default to +Z. Line
// endpoints and combinator children are required.
//
// Decoding is one-way by design: scenes are an input format, not a
// round-trip persistence layer — the built tree stays sealed.
//
// Errors:
//
//   - ErrNoShape: the document has no [shape] table.
//   - ErrUnknownKind: a node's kind is not one of the five above.
//   - ErrMissingChild: a combinator node lacks a required child table.
//   - ErrBadTriple: a point/vector field is not a three-element array.
//   - Construction errors from pointfn propagate unchanged (wrapped with
//     the offending kind for context).
package scene
