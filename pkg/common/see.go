package common

// See runs the swap algorithm on the destination square of a capture:
// both sides keep recapturing with their least valuable attacker,
// X-ray attackers re-enter as the occupancy thins out, and either side
// may stand pat when continuing loses material. The result is the net
// material balance for the moving side in centipawns.
// https://www.chessprogramming.org/SEE_-_The_Swap_Algorithm
func See(p *Position, m Move) int {
	var from, to = m.From, m.To
	var occ = p.AllPieces()

	var gain [32]int
	if (m.Flags & FlagEnPassant) != 0 {
		occ &^= SquareMask[to+let(p.WhiteMove, -8, 8)]
		gain[0] = PieceValues[WPawn]
	} else {
		gain[0] = PieceValues[p.WhatPiece(to)]
	}

	var bishopsQueens = p.Pieces[WBishop] | p.Pieces[BBishop] | p.Pieces[WQueen] | p.Pieces[BQueen]
	var rooksQueens = p.Pieces[WRook] | p.Pieces[BRook] | p.Pieces[WQueen] | p.Pieces[BQueen]

	var d = 0
	var aPiece = p.WhatPiece(from)
	var fromSet = SquareMask[from]
	var attadef = p.AttackersTo(to, occ)
	var whiteTurn = p.WhiteMove

	for fromSet != 0 {
		d++
		gain[d] = PieceValues[aPiece] - gain[d-1]
		attadef &^= fromSet
		occ &^= fromSet
		attadef |= (BishopAttacks(to, occ) & bishopsQueens) | (RookAttacks(to, occ) & rooksQueens)
		attadef &= occ
		whiteTurn = !whiteTurn
		fromSet, aPiece = leastValuableAttacker(p, attadef, whiteTurn)
	}

	for d--; d > 0; d-- {
		gain[d-1] = -Max(-gain[d-1], gain[d])
	}
	return gain[0]
}

// SeeGEZero reports whether the capture does not lose material.
func SeeGEZero(p *Position, m Move) bool {
	return See(p, m) >= 0
}

func leastValuableAttacker(p *Position, attadef uint64, white bool) (fromSet uint64, piece int) {
	var lo, hi = WPawn, WKing
	if !white {
		lo, hi = BPawn, BKing
	}
	for piece = lo; piece <= hi; piece++ {
		if sub := p.Pieces[piece] & attadef; sub != 0 {
			return sub & -sub, piece
		}
	}
	return 0, Empty
}
