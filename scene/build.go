package scene

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/hop/geom"
	"github.com/katalvlaran/hop/pointfn"
)

// Load parses a TOML scene document and builds its composition tree.
// Every node goes through the pointfn constructors, so a loaded scene is
// validated exactly like a hand-built one.
func Load(data []byte) (pointfn.Shape, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	if doc.Shape == nil {
		return nil, ErrNoShape
	}

	return Build(doc.Shape)
}

// Build constructs the pointfn shape described by a decoded node tree.
func Build(n *Node) (pointfn.Shape, error) {
	if n == nil {
		return nil, ErrMissingChild
	}

	switch n.Kind {
	case KindCircle:
		return buildCircle(n)
	case KindLine:
		return buildLine(n)
	case KindTwist:
		return buildTwist(n)
	case KindConnect:
		return buildConnect(n)
	case KindLoft:
		return buildLoft(n)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, n.Kind)
	}
}

// buildCircle maps a circle node through pointfn.Circle. Center defaults
// to the origin and normal to +Z when omitted.
func buildCircle(n *Node) (pointfn.Shape, error) {
	center, err := pointAt(n.Center, geom.Origin())
	if err != nil {
		return nil, err
	}
	normal, err := vecAt(n.Normal, geom.UnitZ())
	if err != nil {
		return nil, err
	}

	s, err := pointfn.Circle(center, n.Radius, normal)
	if err != nil {
		return nil, fmt.Errorf("scene: circle: %w", err)
	}

	return s, nil
}

// buildLine maps a line node through pointfn.Line. Both endpoints are required.
func buildLine(n *Node) (pointfn.Shape, error) {
	if n.P0 == nil || n.P1 == nil {
		return nil, fmt.Errorf("%w: line needs p0 and p1", ErrBadTriple)
	}
	p0, err := pointAt(n.P0, geom.Origin())
	if err != nil {
		return nil, err
	}
	p1, err := pointAt(n.P1, geom.Origin())
	if err != nil {
		return nil, err
	}

	s, err := pointfn.Line(p0, p1)
	if err != nil {
		return nil, fmt.Errorf("scene: line: %w", err)
	}

	return s, nil
}

// buildTwist builds the child first, then wraps it. Axis defaults to +Z.
func buildTwist(n *Node) (pointfn.Shape, error) {
	if n.Source == nil {
		return nil, fmt.Errorf("%w: twist needs source", ErrMissingChild)
	}
	src, err := Build(n.Source)
	if err != nil {
		return nil, err
	}
	axis, err := vecAt(n.Axis, geom.UnitZ())
	if err != nil {
		return nil, err
	}

	s, err := pointfn.Twist(src, axis, n.Rate)
	if err != nil {
		return nil, fmt.Errorf("scene: twist: %w", err)
	}

	return s, nil
}

func buildConnect(n *Node) (pointfn.Shape, error) {
	if n.A == nil || n.B == nil {
		return nil, fmt.Errorf("%w: connect needs a and b", ErrMissingChild)
	}
	a, err := Build(n.A)
	if err != nil {
		return nil, err
	}
	b, err := Build(n.B)
	if err != nil {
		return nil, err
	}

	s, err := pointfn.Connect(a, b)
	if err != nil {
		return nil, fmt.Errorf("scene: connect: %w", err)
	}

	return s, nil
}

func buildLoft(n *Node) (pointfn.Shape, error) {
	if n.Cross == nil || n.Path == nil {
		return nil, fmt.Errorf("%w: loft needs cross and path", ErrMissingChild)
	}
	cross, err := Build(n.Cross)
	if err != nil {
		return nil, err
	}
	path, err := Build(n.Path)
	if err != nil {
		return nil, err
	}

	s, err := pointfn.Loft(cross, path)
	if err != nil {
		return nil, fmt.Errorf("scene: loft: %w", err)
	}

	return s, nil
}

// pointAt converts a decoded triple to a point, falling back to def when
// the field was omitted entirely.
func pointAt(t []float64, def geom.Point3) (geom.Point3, error) {
	if t == nil {
		return def, nil
	}
	if len(t) != 3 {
		return geom.Point3{}, fmt.Errorf("%w: got %d elements", ErrBadTriple, len(t))
	}

	return geom.Point3{X: t[0], Y: t[1], Z: t[2]}, nil
}

// vecAt converts a decoded triple to a vector, falling back to def when
// the field was omitted entirely.
func vecAt(t []float64, def geom.Vec3) (geom.Vec3, error) {
	if t == nil {
		return def, nil
	}
	if len(t) != 3 {
		return geom.Vec3{}, fmt.Errorf("%w: got %d elements", ErrBadTriple, len(t))
	}

	return geom.Vec3{X: t[0], Y: t[1], Z: t[2]}, nil
}
