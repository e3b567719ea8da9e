// Package kernel implements the cross-container arithmetic of the core
// engine: graph/vector addition and matrix-vector product, degree and
// weight projections, degree/weight anomaly scores, node-set filtering,
// edge-weight normalization, and the double-precision weight sum.
// Single-container scaling (MulConst)
// lives as a method on vector.Vector/graph.Graph instead, since it
// needs bucket-level access to bump revision exactly once; every
// kernel here is built entirely on the public Vector/Graph API.
package kernel
