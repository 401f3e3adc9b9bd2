package eval

import (
	. "github.com/hmarinho/ventania/pkg/common"
)

const (
	midgamePhase = 24
)

const (
	queenPhase  = 4
	rookPhase   = 2
	bishopPhase = 1
	knightPhase = 1
)

// gamePhase derives the taper weight from the remaining material:
// 24 is a full middlegame, 0 a bare endgame.
func gamePhase(p *Position) int {
	var phase = 0
	phase += queenPhase * PopCount(p.Pieces[WQueen]|p.Pieces[BQueen])
	phase += rookPhase * PopCount(p.Pieces[WRook]|p.Pieces[BRook])
	phase += bishopPhase * PopCount(p.Pieces[WBishop]|p.Pieces[BBishop])
	phase += knightPhase * PopCount(p.Pieces[WKnight]|p.Pieces[BKnight])
	if phase > midgamePhase {
		phase = midgamePhase
	}
	return phase
}

func pstScore(bb uint64, mg, eg *[64]int, mgWeight, egWeight int, white bool) int {
	var sMG, sEG = 0, 0
	for x := bb; x != 0; x &= x - 1 {
		var sq = FirstOne(x)
		if !white {
			sq = FlipSquare(sq)
		}
		sMG += mg[sq]
		sEG += eg[sq]
	}
	return sMG*mgWeight + sEG*egWeight
}

// Evaluate scores the position in centipawns from the point of view
// of the side to move: material plus tapered piece-square tables.
func Evaluate(p *Position) int {
	var mgWeight = gamePhase(p)
	var egWeight = midgamePhase - mgWeight

	var material = 0
	for piece := WPawn; piece <= WQueen; piece++ {
		material += PieceValues[piece] * PopCount(p.Pieces[piece])
	}
	for piece := BPawn; piece <= BQueen; piece++ {
		material -= PieceValues[piece] * PopCount(p.Pieces[piece])
	}

	var pst = 0
	pst += pstScore(p.Pieces[WPawn], &pstPawnMg, &pstPawnEg, mgWeight, egWeight, true)
	pst -= pstScore(p.Pieces[BPawn], &pstPawnMg, &pstPawnEg, mgWeight, egWeight, false)
	pst += pstScore(p.Pieces[WKnight], &pstKnightMg, &pstKnightEg, mgWeight, egWeight, true)
	pst -= pstScore(p.Pieces[BKnight], &pstKnightMg, &pstKnightEg, mgWeight, egWeight, false)
	pst += pstScore(p.Pieces[WBishop], &pstBishopMg, &pstBishopEg, mgWeight, egWeight, true)
	pst -= pstScore(p.Pieces[BBishop], &pstBishopMg, &pstBishopEg, mgWeight, egWeight, false)
	pst += pstScore(p.Pieces[WRook], &pstRookMg, &pstRookEg, mgWeight, egWeight, true)
	pst -= pstScore(p.Pieces[BRook], &pstRookMg, &pstRookEg, mgWeight, egWeight, false)
	pst += pstScore(p.Pieces[WQueen], &pstQueenMg, &pstQueenEg, mgWeight, egWeight, true)
	pst -= pstScore(p.Pieces[BQueen], &pstQueenMg, &pstQueenEg, mgWeight, egWeight, false)
	pst += pstScore(p.Pieces[WKing], &pstKingMg, &pstKingEg, mgWeight, egWeight, true)
	pst -= pstScore(p.Pieces[BKing], &pstKingMg, &pstKingEg, mgWeight, egWeight, false)

	var result = material + pst/midgamePhase

	if !p.WhiteMove {
		result = -result
	}
	return result
}

// Piece-square tables, white point of view, a1 = index 0. Black reads
// the vertically mirrored square.

var pstPawnMg = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 21, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pstPawnEg = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	10, 10, 10, 10, 10, 10, 10, 10,
	20, 20, 20, 20, 20, 20, 20, 20,
	30, 30, 30, 30, 30, 30, 30, 30,
	50, 50, 50, 50, 50, 50, 50, 50,
	70, 70, 70, 70, 70, 70, 70, 70,
	90, 90, 90, 90, 90, 90, 90, 90,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pstKnightMg = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var pstKnightEg = [64]int{
	-20, -10, 0, 0, 0, 0, -10, -20,
	-10, 5, 10, 15, 15, 10, 5, -10,
	0, 10, 15, 20, 20, 15, 10, 0,
	0, 15, 20, 25, 25, 20, 15, 0,
	0, 15, 20, 25, 25, 20, 15, 0,
	0, 10, 15, 20, 20, 15, 10, 0,
	-10, 5, 10, 15, 15, 10, 5, -10,
	-20, -10, 0, 0, 0, 0, -10, -20,
}

var pstBishopMg = [64]int{
	-30, -10, -10, -10, -10, -10, -10, -30,
	-10, 15, 0, 0, 0, 0, 20, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 15, 15, 10, 0, -10,
	-10, 5, 15, 20, 20, 15, 5, -10,
	-10, 10, 10, 15, 15, 10, 10, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-30, -10, -10, -10, -10, -10, -10, -30,
}

var pstBishopEg = [64]int{
	-10, -5, -5, -5, -5, -5, -5, -10,
	-5, 5, 5, 5, 5, 5, 5, -5,
	-5, 5, 10, 10, 10, 10, 5, -5,
	-5, 5, 10, 15, 15, 10, 5, -5,
	-5, 5, 10, 15, 15, 10, 5, -5,
	-5, 5, 10, 10, 10, 10, 5, -5,
	-5, 5, 5, 5, 5, 5, 5, -5,
	-10, -5, -5, -5, -5, -5, -5, -10,
}

var pstRookMg = [64]int{
	0, 0, 5, 10, 10, 5, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	15, 20, 20, 20, 20, 20, 20, 15,
	0, 0, 5, 10, 10, 5, 0, 0,
}

var pstRookEg = [64]int{
	0, 0, 5, 10, 10, 5, 0, 0,
	0, 0, 5, 10, 10, 5, 0, 0,
	10, 15, 15, 20, 20, 15, 15, 10,
	10, 15, 20, 25, 25, 20, 15, 10,
	10, 15, 20, 25, 25, 20, 15, 10,
	10, 15, 15, 20, 20, 15, 15, 10,
	0, 0, 5, 10, 10, 5, 0, 0,
	0, 0, 5, 10, 10, 5, 0, 0,
}

var pstQueenMg = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 10, 10, 5, 0, -5,
	0, 0, 5, 10, 10, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var pstQueenEg = [64]int{
	-10, -5, -5, -5, -5, -5, -5, -10,
	-5, 5, 5, 5, 5, 5, 5, -5,
	-5, 5, 10, 10, 10, 10, 5, -5,
	-5, 5, 10, 15, 15, 10, 5, -5,
	-5, 5, 10, 15, 15, 10, 5, -5,
	-5, 5, 10, 10, 10, 10, 5, -5,
	-5, 5, 5, 5, 5, 5, 5, -5,
	-10, -5, -5, -5, -5, -5, -5, -10,
}

var pstKingMg = [64]int{
	30, 40, 20, 0, 0, 20, 40, 30,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -30, -40, -40, -30, -20, -10,
	-20, -30, -40, -50, -50, -40, -30, -20,
	-30, -40, -50, -60, -60, -50, -40, -30,
	-40, -50, -60, -70, -70, -60, -50, -40,
	-50, -60, -70, -80, -80, -70, -60, -50,
	-50, -60, -70, -80, -80, -70, -60, -50,
}

var pstKingEg = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-50, -40, -30, -20, -20, -30, -40, -50,
}
