package common

import "testing"

var testFENs = []string{
	InitialPositionFen,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"8/p1P5/P7/3p4/5p1p/3p1P1P/K2p2pp/3R2nk w - - 0 1",
	"8/7p/p5pb/4k3/P1pPn3/8/P5PP/1rB2RK1 b - d3 0 28",
	"1K1k4/8/5n2/3p4/8/1BN2B2/6b1/7b w - - 0 1",
	"6k1/5ppp/3r4/8/3R2b1/8/5PPP/R3qB1K b - - 0 1",
	"2rqkb1r/p1pnpppp/3p3n/3B4/2BPP3/1QP5/PP3PPP/RN2K1NR w KQk - 0 1",
	"1rr3k1/4ppb1/2q1bnp1/1p2B1Q1/6P1/2p2P2/2P1B2R/2K4R w - - 0 1",
	"1k1r4/1pp4p/p7/4p3/8/P5P1/1PP4P/2K1R3 w - - 0 1",
	"1k1r3q/1ppn3p/p4b2/4p3/8/P2N2P1/1PP1R1BP/2K1Q3 w - - 0 1",
	"r2qk2r/pppb1ppp/2np4/1Bb5/4n3/5N2/PPP2PPP/RNBQR1K1 b kq - 1 1",
	"rnb1kbnr/pp1ppppp/8/1q6/2PpP3/5N2/PP3PPP/RNBQ1K1R b kq c3 0 6",
	"r5rk/5p1p/5R2/4B3/8/8/7P/7K w - - 0 1",
	"rnbqk3/p7/2P5/1B6/8/8/8/4K3 w q - 0 1",
}

func checkInvariants(t *testing.T, p *Position, context string) {
	t.Helper()
	if PopCount(p.Pieces[WKing]) != 1 || PopCount(p.Pieces[BKing]) != 1 {
		t.Fatal("king count", context)
	}
	var union uint64
	for piece := WPawn; piece < PieceNB; piece++ {
		if (union & p.Pieces[piece]) != 0 {
			t.Fatal("overlapping piece bitboards", context)
		}
		union |= p.Pieces[piece]
	}
	if p.Key != p.ComputeKey() {
		t.Fatal("hash mismatch", context)
	}
	if p.EpSquare != SquareNone {
		var rank = Rank(p.EpSquare)
		if rank != Rank3 && rank != Rank6 {
			t.Fatal("en passant rank", context)
		}
		if rank == Rank3 && (p.Pieces[WPawn]&SquareMask[p.EpSquare+8]) == 0 {
			t.Fatal("en passant pusher", context)
		}
		if rank == Rank6 && (p.Pieces[BPawn]&SquareMask[p.EpSquare-8]) == 0 {
			t.Fatal("en passant pusher", context)
		}
	}
}

// Every legal move from every fixture, two plies deep, must preserve
// the position invariants and keep the incremental hash equal to the
// recomputed one.
func TestApplyMoveInvariants(t *testing.T) {
	for _, fen := range testFENs {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		checkInvariants(t, &p, fen)
		for _, move := range GenerateMoves(&p) {
			var child = p.ApplyMove(move)
			child.UpdateAttackMaps()
			checkInvariants(t, &child, fen+" "+move.String())
			for _, reply := range GenerateMoves(&child) {
				var grandchild = child.ApplyMove(reply)
				grandchild.UpdateAttackMaps()
				checkInvariants(t, &grandchild, fen+" "+move.String()+" "+reply.String())
			}
		}
	}
}

func TestFenRoundTrip(t *testing.T) {
	for _, fen := range testFENs {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		var p2, err2 = NewPositionFromFEN(p.String())
		if err2 != nil {
			t.Fatal(err2)
		}
		if p.Key != p2.Key {
			t.Error(fen, p.String())
		}
	}
}

func TestFenRejectsGarbage(t *testing.T) {
	for _, fen := range []string{
		"",
		"hello",
		"8/8/8/8/8/8/8/8 w - -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
	} {
		if _, err := NewPositionFromFEN(fen); err == nil {
			t.Error("accepted", fen)
		}
	}
}

func TestCastlingRightsClearing(t *testing.T) {
	var p, err = NewPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var tests = []struct {
		move   string
		rights int
	}{
		{"e1g1", BlackKingSide | BlackQueenSide},
		{"e1c1", BlackKingSide | BlackQueenSide},
		{"a1a8", WhiteKingSide | BlackKingSide},
		{"h1h8", WhiteQueenSide | BlackQueenSide},
		{"a1b1", WhiteKingSide | BlackKingSide | BlackQueenSide},
		{"e1e2", BlackKingSide | BlackQueenSide},
	}
	for _, test := range tests {
		var mv, ok = ParseMoveCoord(&p, test.move)
		if !ok {
			t.Fatal("move not found", test.move)
		}
		var child = p.ApplyMove(mv)
		if child.CastleRights != test.rights {
			t.Error(test.move, child.CastleRights, test.rights)
		}
	}
}

func TestCastlingMovesRook(t *testing.T) {
	var p, _ = NewPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	var mv, _ = ParseMoveCoord(&p, "e1g1")
	var child = p.ApplyMove(mv)
	if child.WhatPiece(SquareF1) != WRook || child.WhatPiece(SquareH1) != Empty {
		t.Error("kingside rook", child.String())
	}
	mv, _ = ParseMoveCoord(&p, "e1c1")
	child = p.ApplyMove(mv)
	if child.WhatPiece(SquareD1) != WRook || child.WhatPiece(SquareA1) != Empty {
		t.Error("queenside rook", child.String())
	}
}

func TestEnPassantCapture(t *testing.T) {
	var p, err = NewPositionFromFEN("8/7p/p5pb/4k3/P1pPn3/8/P5PP/1rB2RK1 b - d3 0 28")
	if err != nil {
		t.Fatal(err)
	}
	var mv, ok = ParseMoveCoord(&p, "c4d3")
	if !ok {
		t.Fatal("en passant capture not generated")
	}
	if (mv.Flags & FlagEnPassant) == 0 {
		t.Fatal("flag missing")
	}
	var child = p.ApplyMove(mv)
	child.UpdateAttackMaps()
	if child.WhatPiece(SquareD4) != Empty {
		t.Error("captured pawn still on d4")
	}
	if child.WhatPiece(SquareD3) != BPawn {
		t.Error("capturing pawn not on d3")
	}
	checkInvariants(t, &child, "after en passant")
}

// AttackersTo must agree with a direct geometric scan of the board.
func TestAttackersTo(t *testing.T) {
	for _, fen := range testFENs {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		var occ = p.AllPieces()
		for sq := 0; sq < 64; sq++ {
			var want uint64
			for x := occ; x != 0; x &= x - 1 {
				var from = FirstOne(x)
				if (slowAttacks(&p, p.WhatPiece(from), from, occ) & SquareMask[sq]) != 0 {
					want |= SquareMask[from]
				}
			}
			if got := p.AttackersTo(sq, occ); got != want {
				t.Error(fen, SquareName(sq), BitboardString(got), BitboardString(want))
			}
		}
	}
}

func TestMirrorPosition(t *testing.T) {
	for _, fen := range testFENs {
		var p, _ = NewPositionFromFEN(fen)
		var m = MirrorPosition(&p)
		checkInvariants(t, &m, "mirror of "+fen)
		var back = MirrorPosition(&m)
		if back.Key != p.Key {
			t.Error(fen, back.String())
		}
	}
}
