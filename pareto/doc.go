// Package pareto implements a multi-objective edge/node stability
// metric: given a sequence of graph or vector snapshots, rank each
// edge/index by (−mean, variance) and peel off successive
// Pareto-efficient fronts, each written into the result at an
// escalating weight.
package pareto
