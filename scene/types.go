// Package scene defines the document types and sentinel errors for the
// scene subpackage of github.com/katalvlaran/hop.
package scene

import "errors"

// Sentinel errors for scene decoding.
var (
	// ErrNoShape indicates the document contains no [shape] table.
	ErrNoShape = errors.New("scene: document has no [shape] table")

	// ErrUnknownKind indicates a node's kind field is not one of
	// circle, line, twist, connect, loft.
	ErrUnknownKind = errors.New("scene: unknown node kind")

	// ErrMissingChild indicates a combinator node lacks a required child
	// table (twist.source, connect.a/b, loft.cross/path).
	ErrMissingChild = errors.New("scene: combinator node is missing a required child")

	// ErrBadTriple indicates a point or vector field is not a
	// three-element float array.
	ErrBadTriple = errors.New("scene: point/vector fields must be three-element arrays")
)

// Node kinds accepted in scene documents.
const (
	KindCircle  = "circle"
	KindLine    = "line"
	KindTwist   = "twist"
	KindConnect = "connect"
	KindLoft    = "loft"
)

// Document is the root of a scene file: a single shape tree.
type Document struct {
	Shape *Node `toml:"shape"`
}

// Node is one node of the declarative tree. Kind selects which of the
// remaining fields are meaningful; the rest stay zero.
type Node struct {
	Kind string `toml:"kind"`

	// Circle constants.
	Center []float64 `toml:"center"`
	Radius float64   `toml:"radius"`
	Normal []float64 `toml:"normal"`

	// Line constants.
	P0 []float64 `toml:"p0"`
	P1 []float64 `toml:"p1"`

	// Twist constants.
	Axis []float64 `toml:"axis"`
	Rate float64   `toml:"rate"`

	// Children.
	Source *Node `toml:"source"` // twist
	A      *Node `toml:"a"`      // connect
	B      *Node `toml:"b"`      // connect
	Cross  *Node `toml:"cross"`  // loft
	Path   *Node `toml:"path"`   // loft
}
