// Package geom provides the immutable 3D value types shared by all of hop:
// Vec3 (a direction/displacement) and Point3 (a location), together with the
// numeric tolerance policy used across the library.
//
// What:
//
//   - Vec3: Add, Sub, Scale, Dot, Cross, Norm, Normalize, RotateAround
//     (Rodrigues' rotation about a unit axis).
//   - Point3: Translate by Vec3, Sub yielding Vec3, Lerp (exact at t=0, t=1).
//   - Finiteness checks (IsFinite) and componentwise tolerance comparison
//     (EqualWithin) against DefaultEpsilon.
//
// Why:
//
//   - Generators and combinators compute with points and axes; they need one
//     shared, allocation-free value vocabulary with no hidden identity.
//   - Tolerance and finiteness policy must be decided once, not per caller.
//
// Invariants:
//
//   - Both types are plain value structs: copying is cheap, equality carries
//     no identity, and no method mutates its receiver.
//   - No method introduces NaN/Inf on finite inputs except where mathematics
//     demands it (Normalize of a zero vector returns ErrZeroVector instead).
//
// Errors:
//
//   - ErrZeroVector: Normalize or axis construction on a zero-length vector.
//
// Complexity: every operation is O(1) with no allocation.
package geom
