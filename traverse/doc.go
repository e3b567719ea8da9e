// Package traverse implements the breadth-first traversal driver over a
// graph.Graph and the shortest-path/connectivity helpers built on top of
// it: Distance*, AllDistances*, and ConnectedComponents.
//
// Unlike a plain FIFO BFS, the driver pops from a min-heap frontier so it
// can double as either an unweighted (hop-count) or weighted (edge-weight)
// shortest-path walk depending on the useWeights flag passed to BFS: the
// heap discipline guarantees nodes are visited in non-decreasing distance
// order either way, which the helpers rely on to prune early.
package traverse
