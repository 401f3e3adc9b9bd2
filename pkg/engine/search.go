package engine

import (
	"sort"
	"time"

	. "github.com/hmarinho/ventania/pkg/common"
	"github.com/hmarinho/ventania/pkg/eval"
)

// SearchBestMove runs an iterative-deepening negamax from depth 1 up
// to maxDepth and returns the best move of the deepest completed
// iteration. A position with no legal moves, or maxDepth <= 0,
// returns the null move; mate and stalemate at the root are the
// caller's business.
func (e *Engine) SearchBestMove(p Position, maxDepth int) (Move, SearchInfo) {
	var start = time.Now()
	e.nodes, e.qnodes = 0, 0
	e.killers = [MaxPly][2]Move{}
	e.history = [2][64][64]int{}
	e.transTable.NewSearch()

	p.UpdateAttackMaps()

	var globalBest = MoveEmpty
	var globalScore = -Inf
	var completedDepth = 0

	for currentDepth := 1; currentDepth <= maxDepth; currentDepth++ {
		var alpha, beta = -Inf, Inf

		// Regenerated every iteration: the ordering changes as the
		// table fills up.
		var moves = GenerateMoves(&p)
		if len(moves) == 0 {
			return MoveEmpty, e.searchInfo(start, completedDepth, globalScore)
		}

		if entry, ok := e.transTable.Probe(p.Key, 0); ok {
			var ttMove = entry.Move.Unpack()
			for i := range moves {
				if moves[i].Equals(ttMove) {
					moves[i].Score = ttMoveScore
					break
				}
			}
		}
		sortByScore(moves)

		var iterationBest = MoveEmpty
		var iterationScore = -Inf

		for _, move := range moves {
			var next = p.ApplyMove(move)
			next.UpdateAttackMaps()
			var score = -e.negamax(&next, currentDepth-1, -beta, -alpha, 1)

			if score > iterationScore {
				iterationScore = score
				iterationBest = move
			}
			if score > alpha {
				alpha = score
				// Store the new root best right away so the deepest
				// finished work survives an interrupted search.
				e.transTable.Store(p.Key, currentDepth, score, TTExact, move, 0)
			}
		}

		globalBest = iterationBest
		globalScore = iterationScore
		completedDepth = currentDepth
	}

	return globalBest, e.searchInfo(start, completedDepth, globalScore)
}

func (e *Engine) negamax(p *Position, depth, alpha, beta, ply int) int {
	e.nodes++
	var alphaOrig = alpha

	if ply >= MaxPly {
		return eval.Evaluate(p)
	}

	var inCheck = p.InCheck()
	if inCheck {
		// Forcing sequences get one extra ply.
		depth++
	}

	if depth <= 0 {
		return e.quiescence(p, alpha, beta)
	}

	var ttMove = MoveEmpty
	if entry, ok := e.transTable.Probe(p.Key, ply); ok {
		ttMove = entry.Move.Unpack()
		if int(entry.Depth) >= depth {
			var ttScore = int(entry.Score)
			switch entry.Flag {
			case TTExact:
				return ttScore
			case TTAlpha:
				if ttScore <= alpha {
					return ttScore
				}
			case TTBeta:
				if ttScore >= beta {
					return ttScore
				}
			}
		}
	}

	var moves = GenerateMoves(p)
	if len(moves) == 0 {
		if inCheck {
			// Closer mates score higher.
			return -MateScore + ply
		}
		return 0
	}

	if ply < MaxPly {
		var side = sideIndex(p.WhiteMove)
		for i := range moves {
			if !ttMove.IsEmpty() && moves[i].Equals(ttMove) {
				moves[i].Score = ttMoveScore
				continue
			}
			if moves[i].IsCapture() {
				continue
			}
			if moves[i].Equals(e.killers[ply][0]) {
				moves[i].Score = killer1Score
			} else if moves[i].Equals(e.killers[ply][1]) {
				moves[i].Score = killer2Score
			} else {
				moves[i].Score = Min(e.history[side][moves[i].From][moves[i].To], maxHistory)
			}
		}
	}
	sortByScore(moves)

	var bestVal = -Inf
	var bestMove = MoveEmpty

	for _, move := range moves {
		var next = p.ApplyMove(move)
		next.UpdateAttackMaps()
		var score = -e.negamax(&next, depth-1, -beta, -alpha, ply+1)

		if score > bestVal {
			bestVal = score
			bestMove = move
		}
		alpha = Max(alpha, bestVal)
		if alpha >= beta {
			if !move.IsCapture() && ply < MaxPly {
				e.updateKiller(move, ply)
				var side = sideIndex(p.WhiteMove)
				var h = e.history[side][move.From][move.To] + depth*depth
				if h > maxHistory {
					h = maxHistory
				}
				e.history[side][move.From][move.To] = h
			}
			break
		}
	}

	var flag = TTExact
	if bestVal <= alphaOrig {
		flag = TTAlpha
	} else if bestVal >= beta {
		flag = TTBeta
	}
	e.transTable.Store(p.Key, depth, bestVal, flag, bestMove, ply)

	return bestVal
}

func (e *Engine) quiescence(p *Position, alpha, beta int) int {
	e.qnodes++

	var standPat = eval.Evaluate(p)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var moves = GenerateForcingMoves(p)
	sortByScore(moves)

	for _, move := range moves {
		var next = p.ApplyMove(move)
		next.UpdateAttackMaps()
		var score = -e.quiescence(&next, -beta, -alpha)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

func (e *Engine) updateKiller(move Move, ply int) {
	if !move.Equals(e.killers[ply][0]) {
		e.killers[ply][1] = e.killers[ply][0]
		e.killers[ply][0] = move
	}
}

func sortByScore(moves []Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Score > moves[j].Score
	})
}
