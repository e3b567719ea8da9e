// Package vector implements the 1-D sparse container of the core engine:
// a power-of-two table of bucket.Bucket1 keyed by the low bits of the
// index, with flag-gated mutation (NONZERO/POSITIVE eps-collapse,
// READONLY rejection), a monotonic revision counter, and a rehash that
// grows or shrinks the table as entry density drifts, building each
// resized table in a new bucket array and swapping it in.
//
// Construction uses functional options: New(opts ...Option) validates
// its options once, up front, and returns an error instead of panicking
// on a bad combination.
package vector
