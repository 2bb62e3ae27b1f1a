package engine

import (
	dm "checkers-engine/draughtsmg"
)

// Evaluator maps a position to a signed score. Positive favors Black,
// negative favors White, zero is balanced. Scores must stay strictly
// inside (-MateScore, MateScore) and be deterministic per input.
type Evaluator interface {
	Evaluate(b dm.Board) int32
}

// Material is the default evaluator: piece-count material with crowned
// pieces weighted up.
type Material struct {
	ManValue  int32
	KingValue int32
}

// NewMaterial returns the standard material evaluator.
func NewMaterial() Material {
	return Material{ManValue: 100, KingValue: 250}
}

func (e Material) Evaluate(b dm.Board) int32 {
	blacks := b.Blacks()
	whites := b.Whites()
	kings := b.Kings()

	blackMen := int32(dm.PopCount(blacks &^ kings))
	blackKings := int32(dm.PopCount(blacks & kings))
	whiteMen := int32(dm.PopCount(whites &^ kings))
	whiteKings := int32(dm.PopCount(whites & kings))

	return e.ManValue*(blackMen-whiteMen) + e.KingValue*(blackKings-whiteKings)
}
