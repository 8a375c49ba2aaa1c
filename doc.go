// Package hop is a small calculus for parametric 3D geometry: points are
// functions of parameters, and shapes are built by composing those functions
// instead of deriving closed-form surface equations by hand.
//
// 🚀 What is hop?
//
//	A deterministic, lock-free library that brings together:
//		• Geometry primitives: immutable Vec3/Point3 value types with
//		  vector algebra and Rodrigues rotation
//		• Generators: circle and line leaves mapping a parameter to a point
//		• Combinators: twist, connect and loft, each producing a new
//		  generator from existing ones
//		• A composition tree: immutable, acyclic, built once and evaluated
//		  arbitrarily many times
//		• An evaluator: a pure function from (tree, parameters) to a point
//
// ✨ Why choose hop?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – pure evaluation, sentinel errors, no hidden state
//   - Parallel by construction – independent evaluations need no locks
//   - Declarative – trees can be described in TOML and sampled to point clouds
//
// Under the hood, everything is organized under four subpackages:
//
//	geom/    — Vec3, Point3 value types and the numeric tolerance policy
//	pointfn/ — generators, combinators, the composition tree and Evaluate
//	scene/   — TOML descriptions of composition trees
//	sample/  — parameter-grid sampling into point clouds
//
// Quick ASCII example:
//
//	    twist
//	      │
//	   connect          a hyperboloid: two circles joined by lines,
//	    /   \           then twisted about the vertical axis
//	circle  circle
//
// Dive into examples/ for the hyperbola, helix and scene walkthroughs.
//
//	go get github.com/katalvlaran/hop
package hop
