package draughtsmg_test

import (
	"errors"
	"testing"

	dm "checkers-engine/draughtsmg"
)

func TestApplyFlipsTurnAndKeepsInvariants(t *testing.T) {
	b := dm.Initial()
	for _, m := range dm.GenerateMoves(b) {
		next := dm.Apply(b, m)
		if next.Turn() != dm.White {
			t.Errorf("%q: turn should flip to White", m)
		}
		if !next.Validate() {
			t.Errorf("%q: successor violates invariants", m)
		}
		if b.Turn() != dm.Black || !b.Validate() {
			t.Errorf("%q: Apply mutated its input", m)
		}
	}
}

func TestApplyCapturesMatchEncoding(t *testing.T) {
	b, err := dm.ParseFEN("B:W14,23:B9,28")
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range dm.GenerateMoves(b) {
		next := dm.Apply(b, m)
		removed := b.Whites() &^ next.Whites()
		if removed != m.Captures() {
			t.Errorf("%q: removed %08X but encoding says %08X", m, removed, m.Captures())
		}
	}
}

func TestApplyPromotesOnBackRank(t *testing.T) {
	// Black man one slide away from White's back rank.
	b, err := dm.ParseFEN("B:W5:B27")
	if err != nil {
		t.Fatal(err)
	}
	m := mustMove(t, "27-31")
	next, err := dm.TakeAction(b, m)
	if err != nil {
		t.Fatal(err)
	}
	if next.Kings()&(dm.Bitmask(1)<<30) == 0 {
		t.Error("man stopping on square 31 should be crowned")
	}
}

func TestApplyKingStatusCarried(t *testing.T) {
	b, err := dm.ParseFEN("B:W32:BK14")
	if err != nil {
		t.Fatal(err)
	}
	m := mustMove(t, "14-10")
	next, err := dm.TakeAction(b, m)
	if err != nil {
		t.Fatal(err)
	}
	if next.Kings()&(dm.Bitmask(1)<<9) == 0 {
		t.Error("king status should follow the piece")
	}
}

func TestApplyZobristIncremental(t *testing.T) {
	// Walk a few plies and rely on Validate, which recomputes the key
	// from scratch and compares it against the incremental one.
	b := dm.Initial()
	for ply := 0; ply < 12; ply++ {
		moves := dm.GenerateMoves(b)
		if len(moves) == 0 {
			break
		}
		b = dm.Apply(b, moves[ply%len(moves)])
		if !b.Validate() {
			t.Fatalf("ply %d: incremental zobrist key diverged", ply)
		}
	}
}

func TestHashDiffersAcrossTurnAndKings(t *testing.T) {
	a, _ := dm.ParseFEN("B:W21:B1")
	b, _ := dm.ParseFEN("W:W21:B1")
	if a.Hash() == b.Hash() {
		t.Error("turn must affect the hash")
	}
	c, _ := dm.ParseFEN("B:W21:BK1")
	if a.Hash() == c.Hash() {
		t.Error("crowning must affect the hash")
	}
}

func TestNoProgressClock(t *testing.T) {
	// Two lone kings shuffling: every ply is a king slide.
	b, err := dm.ParseFEN("B:WK21:BK12")
	if err != nil {
		t.Fatal(err)
	}
	if b.NoProgressPlies() != 0 {
		t.Fatal("fresh position should start at zero")
	}
	b = dm.Apply(b, mustMove(t, "12-8"))
	if b.NoProgressPlies() != 1 {
		t.Errorf("king slide should tick the clock, got %d", b.NoProgressPlies())
	}
	b = dm.Apply(b, mustMove(t, "21-17"))
	if b.NoProgressPlies() != 2 {
		t.Errorf("clock = %d, want 2", b.NoProgressPlies())
	}
}

func TestNoProgressResetOnManMove(t *testing.T) {
	b, err := dm.ParseFEN("B:WK21,32:BK12,1")
	if err != nil {
		t.Fatal(err)
	}
	b = dm.Apply(b, mustMove(t, "12-8"))  // king slide: tick
	b = dm.Apply(b, mustMove(t, "21-17")) // king slide: tick
	if b.NoProgressPlies() != 2 {
		t.Fatalf("clock = %d, want 2", b.NoProgressPlies())
	}
	b = dm.Apply(b, mustMove(t, "1-6")) // man advance resets
	if b.NoProgressPlies() != 0 {
		t.Errorf("man advance should reset the clock, got %d", b.NoProgressPlies())
	}
}

func TestDrawByNoProgress(t *testing.T) {
	old := dm.DrawMovePlies
	dm.DrawMovePlies = 4
	defer func() { dm.DrawMovePlies = old }()

	b, err := dm.ParseFEN("B:WK21:BK12")
	if err != nil {
		t.Fatal(err)
	}
	texts := []string{"12-8", "21-17", "8-12", "17-21"}
	for _, s := range texts {
		if b.GameState() != dm.InProgress {
			t.Fatalf("draw adjudicated early at clock %d", b.NoProgressPlies())
		}
		b = dm.Apply(b, mustMove(t, s))
	}
	if b.GameState() != dm.Drawn {
		t.Errorf("game state = %v, want Draw after %d quiet plies", b.GameState(), dm.DrawMovePlies)
	}
}

func TestTakeActionRejectsIllegal(t *testing.T) {
	b := dm.Initial()
	// White's men cannot move on Black's turn.
	if _, err := dm.TakeAction(b, mustMove(t, "21-17")); !errors.Is(err, dm.ErrInvalidMove) {
		t.Errorf("err = %v, want ErrInvalidMove", err)
	}
	// A slide is illegal while a capture is available.
	capture, err := dm.ParseFEN("B:W14:B1,9")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := dm.TakeAction(capture, mustMove(t, "1-6")); !errors.Is(err, dm.ErrInvalidMove) {
		t.Errorf("err = %v, want ErrInvalidMove", err)
	}
	if _, err := dm.TakeAction(capture, mustMove(t, "9x18")); err != nil {
		t.Errorf("legal capture rejected: %v", err)
	}
}
