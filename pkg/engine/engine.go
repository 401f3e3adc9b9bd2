package engine

import (
	"time"

	. "github.com/hmarinho/ventania/pkg/common"
)

const Inf = 1000000

const (
	ttMoveScore  = 30000
	killer1Score = 9000
	killer2Score = 8000
	maxHistory   = 7000
)

// Engine owns the search state: the transposition table survives
// between calls and ages out, the killer and history tables reset on
// every SearchBestMove.
type Engine struct {
	transTable *TransTable
	killers    [MaxPly][2]Move
	history    [2][64][64]int
	nodes      int64
	qnodes     int64
}

// SearchInfo is the side channel of a completed search.
type SearchInfo struct {
	Depth    int
	Score    int
	Nodes    int64
	QNodes   int64
	Time     time.Duration
	NPS      int64
	Hashfull int
}

func NewEngine(hashMegabytes int) *Engine {
	return &Engine{
		transTable: NewTransTable(hashMegabytes),
	}
}

func (e *Engine) TransTable() *TransTable {
	return e.transTable
}

func (e *Engine) Clear() {
	e.transTable.Clear()
	e.killers = [MaxPly][2]Move{}
	e.history = [2][64][64]int{}
}

func sideIndex(whiteMove bool) int {
	if whiteMove {
		return 0
	}
	return 1
}

func (e *Engine) searchInfo(start time.Time, depth, score int) SearchInfo {
	var elapsed = time.Since(start)
	var us = elapsed.Microseconds()
	if us == 0 {
		us = 1
	}
	var total = e.nodes + e.qnodes
	return SearchInfo{
		Depth:    depth,
		Score:    score,
		Nodes:    e.nodes,
		QNodes:   e.qnodes,
		Time:     elapsed,
		NPS:      total * 1000000 / us,
		Hashfull: e.transTable.Hashfull(),
	}
}
