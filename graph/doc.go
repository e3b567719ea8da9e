// Package graph implements the 2-D sparse container of the core engine:
// a power-of-two table of bucket.Bucket2 keyed by the low bits of
// (source, target), with the undirected mirror-edge invariant,
// flag-gated mutation, a rehash that rebuilds the table into a new
// bucket array and swaps it in, and a binary persistence format.
//
// A Graph may additionally carry a weak, non-owning backpointer to an
// owning Timeline and membership in a CacheList; both are modeled as
// narrow interfaces the timeline collaborator implements, since that
// collaborator's own storage is out of scope for this package.
package graph
