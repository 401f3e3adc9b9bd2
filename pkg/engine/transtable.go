package engine

import (
	. "github.com/hmarinho/ventania/pkg/common"
)

// Score bands. Anything beyond MateInMaxPly is a mate distance and
// gets ply-normalized on its way in and out of the table.
const (
	MateScore    = 30000
	MateInMaxPly = 29000
)

const (
	TTExact = iota
	TTAlpha
	TTBeta
)

// TTEntry is exactly 16 bytes so that a four-entry cluster fills one
// cache line.
type TTEntry struct {
	Key        uint64
	Move       PackedMove
	Score      int16
	Depth      int8
	Flag       uint8
	Generation uint8
	_          uint8
}

type TTCluster struct {
	Entry [4]TTEntry
}

type TransTable struct {
	table       []TTCluster
	numClusters uint64
	generation  uint8
}

func roundPowerOfTwo(size uint64) uint64 {
	var x = uint64(1)
	for (x << 1) <= size {
		x <<= 1
	}
	return x
}

// NewTransTable sizes the table to the largest power of two clusters
// that fits the requested megabytes. Zero clusters is legal: probes
// miss and stores drop.
func NewTransTable(megabytes int) *TransTable {
	var tt = &TransTable{}
	tt.Resize(megabytes)
	return tt
}

func (tt *TransTable) Resize(megabytes int) {
	var clusterCount = uint64(megabytes) * 1024 * 1024 / 64
	if clusterCount == 0 {
		tt.table = nil
		tt.numClusters = 0
		tt.generation = 0
		return
	}
	tt.numClusters = roundPowerOfTwo(clusterCount)
	tt.table = make([]TTCluster, tt.numClusters)
	tt.generation = 0
}

func (tt *TransTable) Clear() {
	for i := range tt.table {
		tt.table[i] = TTCluster{}
	}
	tt.generation = 0
}

// NewSearch ages the table; stale generations become preferred
// replacement victims.
func (tt *TransTable) NewSearch() {
	tt.generation++
}

// scoreToTT converts a search mate score, which counts plies from the
// root, into a distance counted from this node, so the entry stays
// valid when the position reappears at a different ply. scoreFromTT
// converts it back for the probing ply.
func scoreToTT(score, ply int) int {
	if score > MateInMaxPly {
		return score + ply
	}
	if score < -MateInMaxPly {
		return score - ply
	}
	return score
}

func scoreFromTT(score, ply int) int {
	if score > MateInMaxPly {
		return score - ply
	}
	if score < -MateInMaxPly {
		return score + ply
	}
	return score
}

// Probe scans the four cluster entries for the key and returns the
// entry with its score made relative to the probing ply.
func (tt *TransTable) Probe(key uint64, ply int) (TTEntry, bool) {
	if tt.numClusters == 0 {
		return TTEntry{}, false
	}
	var cluster = &tt.table[key&(tt.numClusters-1)]
	for i := range cluster.Entry {
		if cluster.Entry[i].Key == key {
			var entry = cluster.Entry[i]
			entry.Score = int16(scoreFromTT(int(entry.Score), ply))
			return entry, true
		}
	}
	return TTEntry{}, false
}

// Store writes the entry into its cluster. A matching key is always
// updated in place; otherwise the victim is the entry with the highest
// replacement score: +1000 when its generation is stale, plus
// (255 - depth) to evict shallow work first. Ties keep the earlier
// slot.
func (tt *TransTable) Store(key uint64, depth, score, flag int, bestMove Move, ply int) {
	if tt.numClusters == 0 {
		return
	}
	var ttScore = scoreToTT(score, ply)
	var cluster = &tt.table[key&(tt.numClusters-1)]

	var targetIdx = -1
	var replaceScore = -1
	for i := range cluster.Entry {
		if cluster.Entry[i].Key == key {
			targetIdx = i
			break
		}
		var entryScore = 255 - int(cluster.Entry[i].Depth)
		if cluster.Entry[i].Generation != tt.generation {
			entryScore += 1000
		}
		if entryScore > replaceScore {
			replaceScore = entryScore
			targetIdx = i
		}
	}

	var e = &cluster.Entry[targetIdx]
	e.Key = key
	e.Move = bestMove.Pack()
	e.Score = int16(ttScore)
	e.Depth = int8(depth)
	e.Flag = uint8(flag)
	e.Generation = tt.generation
}

// Hashfull estimates the fill rate in permilage by sampling the first
// thousand clusters.
func (tt *TransTable) Hashfull() int {
	if tt.numClusters == 0 {
		return 0
	}
	var limit = tt.numClusters
	if limit > 1000 {
		limit = 1000
	}
	var samples, occupied = 0, 0
	for i := uint64(0); i < limit; i++ {
		for j := range tt.table[i].Entry {
			if tt.table[i].Entry[j].Key != 0 {
				occupied++
			}
			samples++
		}
	}
	return occupied * 1000 / samples
}
