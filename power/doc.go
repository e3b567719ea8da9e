// Package power implements a power-iteration eigenvector estimate:
// repeated multiplication of a graph against a vector, L2-renormalized
// at every step, optionally stopped early once the step delta falls
// under a tolerance, with an optional Rayleigh-quotient eigenvalue
// estimate at the end.
package power
