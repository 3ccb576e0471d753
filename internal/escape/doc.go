// Package escape implements the escape-time test for the quadratic map
// z(n+1) = z(n)^2 + c with z(0) = c.
//
// The package exposes a single pure function:
//
//   - [Classify]: iterates one point of the complex plane and reports
//     whether its orbit leaves the bound radius within maxIter steps
//
// and the [Result] sum type it returns.
//
// # Precision
//
// All arithmetic is single precision. Each product is rounded to float32
// before it is added, so escape steps stay bit-comparable across
// architectures that would otherwise fuse multiply-add.
package escape
