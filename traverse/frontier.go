package traverse

// BfsEntry describes one node reached by the traversal driver: To is the
// node itself, From its predecessor (Root, i.e. ^uint64(0), for the
// source entry), Hops the edge count from the source, and
// Weight the accumulated edge weight from the source (meaningful only when
// BFS was invoked with useWeights true).
type BfsEntry struct {
	Weight float64
	Hops   uint32
	From   uint64
	To     uint64
}

// frontier is a container/heap.Interface priority queue over BfsEntry,
// ordered by Weight when useWeights is set and by Hops otherwise. Ties
// break in FIFO insertion order via seq, assigned from a monotonic
// counter at Push time, so traversal order is deterministic for a
// fixed graph and source.
type frontier struct {
	entries    []BfsEntry
	seq        []uint64
	nextSeq    uint64
	useWeights bool
}

func (f *frontier) Len() int { return len(f.entries) }

func (f *frontier) Less(i, j int) bool {
	if f.useWeights {
		if f.entries[i].Weight != f.entries[j].Weight {
			return f.entries[i].Weight < f.entries[j].Weight
		}
	} else if f.entries[i].Hops != f.entries[j].Hops {
		return f.entries[i].Hops < f.entries[j].Hops
	}
	return f.seq[i] < f.seq[j]
}

func (f *frontier) Swap(i, j int) {
	f.entries[i], f.entries[j] = f.entries[j], f.entries[i]
	f.seq[i], f.seq[j] = f.seq[j], f.seq[i]
}

func (f *frontier) Push(x any) {
	f.entries = append(f.entries, x.(BfsEntry))
	f.seq = append(f.seq, f.nextSeq)
	f.nextSeq++
}

func (f *frontier) Pop() any {
	n := len(f.entries)
	e := f.entries[n-1]
	f.entries = f.entries[:n-1]
	f.seq = f.seq[:n-1]
	return e
}
