package draughtsmg

// Direction sets per side. Men may only move and jump toward the opposing
// back rank; kings use all four diagonals.
var (
	allDirections   = [4]Direction{UpLeft, UpRight, DownLeft, DownRight}
	blackDirections = [2]Direction{DownLeft, DownRight}
	whiteDirections = [2]Direction{UpLeft, UpRight}
)

// forwardDirections returns the two advancing diagonals for a side.
func forwardDirections(c Color) []Direction {
	if c == Black {
		return blackDirections[:]
	}
	return whiteDirections[:]
}

// pieceDirections returns the legal diagonals for a piece of the given
// side and crown status.
func pieceDirections(c Color, king bool) []Direction {
	if king {
		return allDirections[:]
	}
	return forwardDirections(c)
}

// Movers returns the mask of side-to-move pieces with at least one simple
// slide available.
func Movers(b Board) Bitmask {
	own := b.side(b.turn)
	kings := own & b.kings
	empty := b.Empty()

	var movers Bitmask
	for _, d := range forwardDirections(b.turn) {
		movers |= Shift(empty, d.Opposite()) & own
	}
	if kings != 0 {
		for _, d := range forwardDirections(b.turn.Other()) {
			movers |= Shift(empty, d.Opposite()) & kings
		}
	}
	return movers
}

// Jumpers returns the mask of side-to-move pieces with at least one
// capture available.
func Jumpers(b Board) Bitmask {
	own := b.side(b.turn)
	opp := b.side(b.turn.Other())
	kings := own & b.kings
	empty := b.Empty()

	var jumpers Bitmask
	for _, d := range forwardDirections(b.turn) {
		targets := Shift(empty, d.Opposite()) & opp
		jumpers |= Shift(targets, d.Opposite()) & own
	}
	if kings != 0 {
		for _, d := range forwardDirections(b.turn.Other()) {
			targets := Shift(empty, d.Opposite()) & opp
			jumpers |= Shift(targets, d.Opposite()) & kings
		}
	}
	return jumpers
}

// HasCapture reports whether the side to move is under the forced-capture
// rule.
func HasCapture(b Board) bool { return Jumpers(b) != 0 }

// GenerateMoves enumerates the complete legal move set for the side to
// move. When any capture exists only capture sequences are returned; the
// ordering is deterministic (origin squares ascending, directions in
// UpLeft, UpRight, DownLeft, DownRight order).
func GenerateMoves(b Board) []Move {
	if jumpers := Jumpers(b); jumpers != 0 {
		g := jumpGen{
			opp:   b.side(b.turn.Other()),
			all:   b.Occupied(),
			turn:  b.turn,
			crown: promotionRank(b.turn),
			moves: make([]Move, 0, 8),
		}
		for jumpers != 0 {
			origin := popLSB(&jumpers)
			g.origin = origin
			g.king = b.kings&bit(origin) != 0
			g.chase(origin, 0, g.dirs[:0])
		}
		return g.moves
	}

	movers := Movers(b)
	moves := make([]Move, 0, 16)
	empty := b.Empty()
	for movers != 0 {
		from := popLSB(&movers)
		king := b.kings&bit(from) != 0
		for _, d := range pieceDirections(b.turn, king) {
			to := slideTo[d][from]
			if to >= 0 && empty&bit(uint8(to)) != 0 {
				moves = append(moves, packMove(from, uint8(to), nil))
			}
		}
	}
	return moves
}

// jumpGen holds the state of the capture depth-first enumeration for one
// position.
type jumpGen struct {
	opp   Bitmask // opponent occupancy
	all   Bitmask // total occupancy including the moving piece's origin
	turn  Color
	crown Bitmask

	origin uint8
	king   bool
	dirs   [MaxJumps]Direction
	moves  []Move
}

// chase extends the jump chain from cur. captured holds the men already
// jumped this sequence; they stay on the board (blocking landings) but may
// not be taken twice. The origin square is treated as vacated.
func (g *jumpGen) chase(cur uint8, captured Bitmask, dirs []Direction) {
	extended := false
	if len(dirs) < MaxJumps {
		occupied := g.all &^ bit(g.origin)
		for _, d := range pieceDirections(g.turn, g.king) {
			over := slideTo[d][cur]
			land := jumpTo[d][cur]
			if over < 0 || land < 0 {
				continue
			}
			overBit := bit(uint8(over))
			if g.opp&overBit == 0 || captured&overBit != 0 {
				continue
			}
			if occupied&bit(uint8(land)) != 0 {
				continue
			}
			extended = true
			next := append(dirs, d)
			if !g.king && g.crown&bit(uint8(land)) != 0 {
				// Crowning ends the turn; the new king may not continue.
				g.moves = append(g.moves, packMove(g.origin, uint8(land), next))
				continue
			}
			g.chase(uint8(land), captured|overBit, next)
		}
	}
	if !extended && len(dirs) > 0 {
		g.moves = append(g.moves, packMove(g.origin, cur, dirs))
	}
}
