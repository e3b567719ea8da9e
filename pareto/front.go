package pareto

import "sort"

// candidate is one edge or index awaiting front assignment: value1 =
// -mean (so a larger mean sorts first) and value2 = the variance proxy.
type candidate struct {
	value1 float64
	value2 float64
}

// sweepFronts sorts candidates lexicographically by (value1, value2),
// then repeatedly peels a rising Pareto front off the front of the
// remaining list: within one sweep, a candidate is selected if it is
// the first of the scan, strictly improves on the running best value2,
// or ties the running best exactly on (value1, value2) — the running
// best resets at the start of every sweep and tracks the last selected
// candidate, not a held minimum. write is called once per selected
// candidate (identified by its index into candidates) with that
// front's weight; w starts at 1 and is updated after each sweep
// (additive w += 1 when base == 0, multiplicative w *= base otherwise).
func sweepFronts(candidates []candidate, base float64, write func(index int, weight float32) error) error {
	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := candidates[order[i]], candidates[order[j]]
		if a.value1 != b.value1 {
			return a.value1 < b.value1
		}
		return a.value2 < b.value2
	})

	remaining := order
	w := float32(1)
	for len(remaining) > 0 {
		var selected, rest []int
		var best candidate
		haveBest := false
		for _, idx := range remaining {
			c := candidates[idx]
			take := !haveBest ||
				c.value2 < best.value2 ||
				(c.value1 == best.value1 && c.value2 == best.value2)
			if take {
				selected = append(selected, idx)
				best = c
				haveBest = true
			} else {
				rest = append(rest, idx)
			}
		}
		for _, idx := range selected {
			if err := write(idx, w); err != nil {
				return err
			}
		}
		if base == 0 {
			w += 1
		} else {
			w *= float32(base)
		}
		remaining = rest
	}
	return nil
}
