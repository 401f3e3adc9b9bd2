package common

import "testing"

func TestMoveString(t *testing.T) {
	var p, _ = NewPositionFromFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	var found = map[string]bool{}
	for _, mv := range GenerateMoves(&p) {
		found[mv.String()] = true
	}
	for _, want := range []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n", "a1a2", "a1b2", "a1b1"} {
		if !found[want] {
			t.Error("missing", want)
		}
	}
	if MoveEmpty.String() != "0000" {
		t.Error(MoveEmpty.String())
	}
}

func TestMoveToSAN(t *testing.T) {
	var tests = []struct {
		fen  string
		lan  string
		want string
	}{
		{InitialPositionFen, "e2e4", "e4"},
		{InitialPositionFen, "g1f3", "Nf3"},
		{kiwipeteFen, "e1g1", "O-O"},
		{kiwipeteFen, "e1c1", "O-O-O"},
		{kiwipeteFen, "e5g6", "Nxg6"},
		{kiwipeteFen, "d5e6", "dxe6"},
		// file disambiguation between two knights
		{"4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1", "b1d2", "Nbd2"},
		{"4k3/8/8/8/8/5N2/8/1N2K3 w - - 0 1", "f3d2", "Nfd2"},
		// rank disambiguation between doubled rooks
		{"4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "a1a3", "R1a3"},
		{"4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "a5a3", "R5a3"},
		// promotion
		{"8/P6k/8/8/8/8/8/K7 w - - 0 1", "a7a8r", "a8=R"},
		// mate suffix
		{"7k/6pp/8/8/8/8/8/R3K3 w Q - 0 1", "a1a8", "Ra8#"},
		// check suffix
		{"k3r3/8/8/8/8/8/8/4K3 b - - 0 1", "e8e2", "Re2+"},
	}
	for _, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		var mv, ok = ParseMoveCoord(&p, test.lan)
		if !ok {
			t.Fatal("move not found", test.lan, test.fen)
		}
		if got := MoveToSAN(&p, mv); got != test.want {
			t.Error(test.lan, got, test.want)
		}
	}
}

func TestSANRoundTrip(t *testing.T) {
	for _, fen := range testFENs {
		var p, _ = NewPositionFromFEN(fen)
		for _, mv := range GenerateMoves(&p) {
			var san = MoveToSAN(&p, mv)
			var back, ok = ParseMoveSAN(&p, san)
			if !ok || !back.Equals(mv) {
				t.Error(fen, mv, san)
			}
		}
	}
}
