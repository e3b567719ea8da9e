// Package bucket implements the sorted packed-array containers that back
// every Vector and Graph in tvgraph: Bucket1 holds (index, weight) pairs
// sorted by index; Bucket2 holds (source, target, weight) triples sorted
// by (target, source).
//
// Every mutator keeps its bucket strictly sorted with no duplicate keys.
// Lookups first check a per-bucket "hint" (the last slot touched), so
// repeated access to the same key is O(1). Any other key takes a full
// O(log n) binary search; the search does not expand outward from the
// hint, so walking neighboring keys gains nothing from it.
//
// Growth is geometric (capacity doubles) to keep amortized append cost
// O(1). Compress shrinks a bucket to fit its entries, but only once the
// slack is large and never below a low-water mark, avoiding
// pathological churn on small buckets.
package bucket
