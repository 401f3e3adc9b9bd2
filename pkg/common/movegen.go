package common

const (
	f1g1Mask = (uint64(1) << SquareF1) | (uint64(1) << SquareG1)
	b1d1Mask = (uint64(1) << SquareB1) | (uint64(1) << SquareC1) | (uint64(1) << SquareD1)
	c1d1Mask = (uint64(1) << SquareC1) | (uint64(1) << SquareD1)
	f8g8Mask = (uint64(1) << SquareF8) | (uint64(1) << SquareG8)
	b8d8Mask = (uint64(1) << SquareB8) | (uint64(1) << SquareC8) | (uint64(1) << SquareD8)
	c8d8Mask = (uint64(1) << SquareC8) | (uint64(1) << SquareD8)
)

const (
	captureScoreBase = 10000
	promotionBonus   = 1000
)

// newMove assembles a move with its generation-time ordering score:
// captures get 10000 + MVV - LVA, promotions an extra value bonus.
// The search overwrites quiet scores with killer/history data later.
func (p *Position) newMove(from, to, flags, promotion int) Move {
	var m = Move{From: from, To: to, Flags: flags, Promotion: promotion}
	if (flags & FlagCapture) != 0 {
		var victim = WPawn
		if (flags & FlagEnPassant) == 0 {
			victim = p.WhatPiece(to)
		}
		m.Score = captureScoreBase + PieceValues[victim] - PieceValues[p.WhatPiece(from)]
	}
	if (flags & FlagPromotion) != 0 {
		m.Score += PieceValues[promotion] + promotionBonus
	}
	return m
}

// moveIsLegal applies the move and rejects it when the mover's king
// lands in the opponent's refreshed attack map.
func (p *Position) moveIsLegal(m Move) bool {
	var next = p.ApplyMove(m)
	next.UpdateAttackMaps()
	if p.WhiteMove {
		return (next.Pieces[WKing] & next.BlackAttacks) == 0
	}
	return (next.Pieces[BKing] & next.WhiteAttacks) == 0
}

// enumerateMoves walks every pseudo-legal move of the side to move and
// hands (from, to, flags, promotion) to the policy. The policies
// layered on top decide legality and filtering, which keeps one
// geometric enumeration shared between the full, forcing, check
// response and piece-restricted generators.
func (p *Position) enumerateMoves(add func(from, to, flags, promotion int)) {
	var ownPieces = p.OwnPieces()
	var oppPieces = p.OppPieces()
	var allPieces = p.AllPieces()
	var from, to int
	var fromBB, toBB uint64

	if p.WhiteMove {
		for fromBB = p.Pieces[WPawn]; fromBB != 0; fromBB &= fromBB - 1 {
			from = FirstOne(fromBB)
			if (SquareMask[from+8] & allPieces) == 0 {
				if Rank(from) == Rank7 {
					add(from, from+8, FlagPromotion, WQueen)
					add(from, from+8, FlagPromotion, WRook)
					add(from, from+8, FlagPromotion, WBishop)
					add(from, from+8, FlagPromotion, WKnight)
				} else {
					add(from, from+8, FlagQuiet, Empty)
					if Rank(from) == Rank2 && (SquareMask[from+16]&allPieces) == 0 {
						add(from, from+16, FlagDoublePawnPush, Empty)
					}
				}
			}
			for toBB = whitePawnAttacks[from] & oppPieces; toBB != 0; toBB &= toBB - 1 {
				to = FirstOne(toBB)
				if Rank(to) == Rank8 {
					add(from, to, FlagCapture|FlagPromotion, WQueen)
					add(from, to, FlagCapture|FlagPromotion, WRook)
					add(from, to, FlagCapture|FlagPromotion, WBishop)
					add(from, to, FlagCapture|FlagPromotion, WKnight)
				} else {
					add(from, to, FlagCapture, Empty)
				}
			}
			if p.EpSquare != SquareNone && (whitePawnAttacks[from]&SquareMask[p.EpSquare]) != 0 {
				add(from, p.EpSquare, FlagEnPassant|FlagCapture, Empty)
			}
		}
	} else {
		for fromBB = p.Pieces[BPawn]; fromBB != 0; fromBB &= fromBB - 1 {
			from = FirstOne(fromBB)
			if (SquareMask[from-8] & allPieces) == 0 {
				if Rank(from) == Rank2 {
					add(from, from-8, FlagPromotion, BQueen)
					add(from, from-8, FlagPromotion, BRook)
					add(from, from-8, FlagPromotion, BBishop)
					add(from, from-8, FlagPromotion, BKnight)
				} else {
					add(from, from-8, FlagQuiet, Empty)
					if Rank(from) == Rank7 && (SquareMask[from-16]&allPieces) == 0 {
						add(from, from-16, FlagDoublePawnPush, Empty)
					}
				}
			}
			for toBB = blackPawnAttacks[from] & oppPieces; toBB != 0; toBB &= toBB - 1 {
				to = FirstOne(toBB)
				if Rank(to) == Rank1 {
					add(from, to, FlagCapture|FlagPromotion, BQueen)
					add(from, to, FlagCapture|FlagPromotion, BRook)
					add(from, to, FlagCapture|FlagPromotion, BBishop)
					add(from, to, FlagCapture|FlagPromotion, BKnight)
				} else {
					add(from, to, FlagCapture, Empty)
				}
			}
			if p.EpSquare != SquareNone && (blackPawnAttacks[from]&SquareMask[p.EpSquare]) != 0 {
				add(from, p.EpSquare, FlagEnPassant|FlagCapture, Empty)
			}
		}
	}

	var knights, bishops, rooks, queens, king uint64
	if p.WhiteMove {
		knights, bishops, rooks = p.Pieces[WKnight], p.Pieces[WBishop], p.Pieces[WRook]
		queens, king = p.Pieces[WQueen], p.Pieces[WKing]
	} else {
		knights, bishops, rooks = p.Pieces[BKnight], p.Pieces[BBishop], p.Pieces[BRook]
		queens, king = p.Pieces[BQueen], p.Pieces[BKing]
	}

	for fromBB = knights; fromBB != 0; fromBB &= fromBB - 1 {
		from = FirstOne(fromBB)
		for toBB = KnightAttacks[from] &^ ownPieces; toBB != 0; toBB &= toBB - 1 {
			to = FirstOne(toBB)
			add(from, to, captureFlag(to, oppPieces), Empty)
		}
	}

	for fromBB = bishops; fromBB != 0; fromBB &= fromBB - 1 {
		from = FirstOne(fromBB)
		for toBB = BishopAttacks(from, allPieces) &^ ownPieces; toBB != 0; toBB &= toBB - 1 {
			to = FirstOne(toBB)
			add(from, to, captureFlag(to, oppPieces), Empty)
		}
	}

	for fromBB = rooks; fromBB != 0; fromBB &= fromBB - 1 {
		from = FirstOne(fromBB)
		for toBB = RookAttacks(from, allPieces) &^ ownPieces; toBB != 0; toBB &= toBB - 1 {
			to = FirstOne(toBB)
			add(from, to, captureFlag(to, oppPieces), Empty)
		}
	}

	for fromBB = queens; fromBB != 0; fromBB &= fromBB - 1 {
		from = FirstOne(fromBB)
		for toBB = QueenAttacks(from, allPieces) &^ ownPieces; toBB != 0; toBB &= toBB - 1 {
			to = FirstOne(toBB)
			add(from, to, captureFlag(to, oppPieces), Empty)
		}
	}

	{
		var oppAttacks = p.BlackAttacks
		if !p.WhiteMove {
			oppAttacks = p.WhiteAttacks
		}
		from = FirstOne(king)
		// Destinations inside the opponent attack map are discarded
		// early; make-and-test stays authoritative for the slider
		// shadow behind the king.
		for toBB = KingAttacks[from] &^ ownPieces &^ oppAttacks; toBB != 0; toBB &= toBB - 1 {
			to = FirstOne(toBB)
			add(from, to, captureFlag(to, oppPieces), Empty)
		}

		if (king & oppAttacks) == 0 {
			if p.WhiteMove {
				if (p.CastleRights&WhiteKingSide) != 0 &&
					(allPieces&f1g1Mask) == 0 &&
					(oppAttacks&f1g1Mask) == 0 {
					add(SquareE1, SquareG1, FlagKingCastle, Empty)
				}
				if (p.CastleRights&WhiteQueenSide) != 0 &&
					(allPieces&b1d1Mask) == 0 &&
					(oppAttacks&c1d1Mask) == 0 {
					add(SquareE1, SquareC1, FlagQueenCastle, Empty)
				}
			} else {
				if (p.CastleRights&BlackKingSide) != 0 &&
					(allPieces&f8g8Mask) == 0 &&
					(oppAttacks&f8g8Mask) == 0 {
					add(SquareE8, SquareG8, FlagKingCastle, Empty)
				}
				if (p.CastleRights&BlackQueenSide) != 0 &&
					(allPieces&b8d8Mask) == 0 &&
					(oppAttacks&c8d8Mask) == 0 {
					add(SquareE8, SquareC8, FlagQueenCastle, Empty)
				}
			}
		}
	}
}

func captureFlag(to int, oppPieces uint64) int {
	if (SquareMask[to] & oppPieces) != 0 {
		return FlagCapture
	}
	return FlagQuiet
}

// GenerateMoves returns every legal move for the side to move. The
// attack maps of p must be current.
func GenerateMoves(p *Position) []Move {
	var moves = make([]Move, 0, MaxMoves)
	p.enumerateMoves(func(from, to, flags, promotion int) {
		var m = p.newMove(from, to, flags, promotion)
		if p.moveIsLegal(m) {
			moves = append(moves, m)
		}
	})
	return moves
}

// GenerateForcingMoves returns the quiescence subset: captures and
// promotions only. Captures with a victim at most as valuable as the
// attacker must also stand a non-losing exchange.
func GenerateForcingMoves(p *Position) []Move {
	var moves = make([]Move, 0, 64)
	p.enumerateMoves(func(from, to, flags, promotion int) {
		if (flags & (FlagCapture | FlagPromotion)) == 0 {
			return
		}
		var m = p.newMove(from, to, flags, promotion)
		if (flags & FlagCapture) != 0 {
			var victim = WPawn
			if (flags & FlagEnPassant) == 0 {
				victim = p.WhatPiece(to)
			}
			if PieceValues[victim] <= PieceValues[p.WhatPiece(from)] && !SeeGEZero(p, m) {
				return
			}
		}
		if p.moveIsLegal(m) {
			moves = append(moves, m)
		}
	})
	return moves
}

// GenerateCheckResponses returns the legal moves of a side in check:
// king moves only under double check; king moves, captures of the
// checker and interpositions on the checking ray otherwise. Outside of
// check it degrades to full generation.
func GenerateCheckResponses(p *Position) []Move {
	var checkers = p.Checkers()
	if checkers == 0 {
		return GenerateMoves(p)
	}
	var moves = make([]Move, 0, 32)
	var kingSq = p.KingSquare(p.WhiteMove)
	var double = MoreThanOne(checkers)
	var checkerSq = FirstOne(checkers)
	var block = Between(checkerSq, kingSq)

	p.enumerateMoves(func(from, to, flags, promotion int) {
		if from != kingSq {
			if double {
				return
			}
			var ok = to == checkerSq
			if (flags&FlagEnPassant) != 0 && checkerSq == to+let(p.WhiteMove, -8, 8) {
				ok = true
			}
			if !ok && (SquareMask[to]&block) != 0 {
				ok = true
			}
			if !ok {
				return
			}
		}
		var m = p.newMove(from, to, flags, promotion)
		if p.moveIsLegal(m) {
			moves = append(moves, m)
		}
	})
	return moves
}

// GeneratePieceMoves restricts full generation to one colored piece
// code; SAN disambiguation is its only caller.
func GeneratePieceMoves(p *Position, piece int) []Move {
	var moves = make([]Move, 0, 32)
	p.enumerateMoves(func(from, to, flags, promotion int) {
		if p.WhatPiece(from) != piece {
			return
		}
		var m = p.newMove(from, to, flags, promotion)
		if p.moveIsLegal(m) {
			moves = append(moves, m)
		}
	})
	return moves
}
