package graph

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"tvgraph/bucket"
	"tvgraph/flags"
	"tvgraph/internal/xerrors"
)

// magicTag and formatVersion are the binary header constants:
// little-endian "TVGG" and the single supported format revision.
const (
	magicTag      uint32 = 0x47475654
	formatVersion uint32 = 1
	headerSize           = 20 // tag + version + flags + bitsSource + bitsTarget, 4 bytes each
	entrySize            = 24 // source(8) + target(8) + weight(4) + 4 bytes padding
)

// Save writes g to w in a little-endian packed format: a 20-byte
// header (tag, version, flags with transient bits stripped, bitsSource,
// bitsTarget) followed by one (num_entries, Entry2...) block per
// bucket, in table order.
func (g *Graph) Save(w io.Writer) error {
	header := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(header[0:4], magicTag)
	binary.LittleEndian.PutUint32(header[4:8], formatVersion)
	binary.LittleEndian.PutUint32(header[8:12], uint32(flags.StripTransient(g.flags)))
	binary.LittleEndian.PutUint32(header[12:16], uint32(g.bitsSource))
	binary.LittleEndian.PutUint32(header[16:20], uint32(g.bitsTarget))
	if _, err := w.Write(header); err != nil {
		return xerrors.New(xerrors.KindIoError, "graph: write header: "+err.Error())
	}

	entryBuf := make([]byte, entrySize)
	for i := range g.buckets {
		b := &g.buckets[i]
		var countBuf [8]byte
		binary.LittleEndian.PutUint64(countBuf[:], uint64(b.Len()))
		if _, err := w.Write(countBuf[:]); err != nil {
			return xerrors.New(xerrors.KindIoError, "graph: write bucket count: "+err.Error())
		}
		var writeErr error
		b.Each(func(e bucket.Entry2) bool {
			binary.LittleEndian.PutUint64(entryBuf[0:8], e.Source)
			binary.LittleEndian.PutUint64(entryBuf[8:16], e.Target)
			binary.LittleEndian.PutUint32(entryBuf[16:20], math.Float32bits(e.Weight))
			entryBuf[20], entryBuf[21], entryBuf[22], entryBuf[23] = 0, 0, 0, 0
			if _, err := w.Write(entryBuf); err != nil {
				writeErr = err
				return false
			}
			return true
		})
		if writeErr != nil {
			return xerrors.New(xerrors.KindIoError, "graph: write entry: "+writeErr.Error())
		}
	}
	return nil
}

// Load reads a Graph back from r in the format Save writes. It rejects
// a mismatched tag, mismatched version, or bit exponents above 31, and
// reconstructs the bucket array directly from the header's exponents
// without calling the rehasher.
func Load(r io.Reader) (*Graph, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, xerrors.New(xerrors.KindIoError, "graph: read header: "+err.Error())
	}
	tag := binary.LittleEndian.Uint32(header[0:4])
	if tag != magicTag {
		return nil, xerrors.New(xerrors.KindIoError, fmt.Sprintf("graph: bad tag 0x%x", tag))
	}
	version := binary.LittleEndian.Uint32(header[4:8])
	if version != formatVersion {
		return nil, xerrors.New(xerrors.KindIoError, fmt.Sprintf("graph: unsupported version %d", version))
	}
	fileFlags := flags.Flags(binary.LittleEndian.Uint32(header[8:12]))
	bitsSource := binary.LittleEndian.Uint32(header[12:16])
	bitsTarget := binary.LittleEndian.Uint32(header[16:20])
	if bitsSource > 31 || bitsTarget > 31 {
		return nil, xerrors.New(xerrors.KindIoError, "graph: bit exponent exceeds 31")
	}
	if !flags.Known(fileFlags) {
		return nil, xerrors.New(xerrors.KindIoError, "graph: unknown flag bit in header")
	}

	g := &Graph{
		bitsSource: uint(bitsSource),
		bitsTarget: uint(bitsTarget),
		flags:      fileFlags,
		eps:        defaultEpsilon,
		refcount:   1,
		optimize:   initialOptimize,
		buckets:    make([]bucket.Bucket2, 1<<(bitsSource+bitsTarget)),
	}

	entryBuf := make([]byte, entrySize)
	for i := range g.buckets {
		var countBuf [8]byte
		if _, err := io.ReadFull(r, countBuf[:]); err != nil {
			return nil, xerrors.New(xerrors.KindIoError, "graph: read bucket count: "+err.Error())
		}
		count := binary.LittleEndian.Uint64(countBuf[:])
		for e := uint64(0); e < count; e++ {
			if _, err := io.ReadFull(r, entryBuf); err != nil {
				return nil, xerrors.New(xerrors.KindIoError, "graph: read entry: "+err.Error())
			}
			source := binary.LittleEndian.Uint64(entryBuf[0:8])
			target := binary.LittleEndian.Uint64(entryBuf[8:16])
			weight := math.Float32frombits(binary.LittleEndian.Uint32(entryBuf[16:20]))
			if err := g.buckets[i].Set(source, target, weight); err != nil {
				return nil, err
			}
			if g.Directed() || source <= target {
				g.numEdges++
			}
		}
	}
	return g, nil
}

// SaveFile opens path for writing and calls Save. Persistence is
// synchronous file I/O on the caller's own thread, like every other
// operation this package exposes.
func (g *Graph) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return xerrors.New(xerrors.KindIoError, "graph: open for write: "+err.Error())
	}
	defer f.Close()
	return g.Save(f)
}

// LoadFile opens path for reading and calls Load.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.New(xerrors.KindIoError, "graph: open for read: "+err.Error())
	}
	defer f.Close()
	return Load(f)
}
