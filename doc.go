// Package space3 is a dense linear-algebra kernel for three-dimensional
// space: Vector3 and Matrix3 value types with arithmetic, geometric, and
// decomposition operations for real-time graphics and physics work.
//
// Matrix3 stores its nine entries column-major while constructors read their
// arguments row-major. Every mutating operation (Add, Prod, Trans, Inv, ...)
// has a copying counterpart suffixed C that returns a fresh instance; the
// mutating forms return the receiver for chaining.
//
// Comparisons are fuzzy: Equal and Zero test squared distance against the
// shared Epsilon2 tolerance rather than exact bits. Inversion of a matrix
// whose determinant is exactly zero fails with ErrSingular; scalar division
// by zero keeps IEEE-754 semantics and simply propagates Inf or NaN.
package space3
