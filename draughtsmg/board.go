package draughtsmg

import "strings"

// Color identifies a side. Black moves first and advances toward higher
// row indices; White advances toward lower.
type Color uint8

const (
	Black Color = 0
	White Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// Promotion rows. A Man stopping on the opposing back rank becomes a King.
const (
	blackBackRank Bitmask = 0x0000000F // rows 0..: Black's own back row
	whiteBackRank Bitmask = 0xF0000000
)

// promotionRank returns the squares on which the given side's men crown.
func promotionRank(c Color) Bitmask {
	if c == Black {
		return whiteBackRank
	}
	return blackBackRank
}

// GameState reports whether a game has been decided.
type GameState uint8

const (
	InProgress GameState = iota
	BlackWins
	WhiteWins
	Drawn
)

func (gs GameState) String() string {
	switch gs {
	case BlackWins:
		return "Win(Black)"
	case WhiteWins:
		return "Win(White)"
	case Drawn:
		return "Draw"
	}
	return "InProgress"
}

// winState maps a winning color to the matching GameState.
func winState(c Color) GameState {
	if c == Black {
		return BlackWins
	}
	return WhiteWins
}

// DrawMovePlies is the no-progress threshold for draw adjudication, in
// plies: a game is drawn once this many consecutive half-moves pass with
// no capture and no man advance. The default corresponds to the
// conventional 40-move rule (40 by each side).
var DrawMovePlies uint8 = 80

// Board is a complete snapshot of a game position. Boards are small value
// objects; every mutation produces a new Board and never touches the old
// one.
type Board struct {
	blacks Bitmask
	whites Bitmask
	kings  Bitmask
	turn   Color

	// Half-moves since the last capture or man advance.
	noProgress uint8

	// Incrementally maintained zobrist key.
	key uint64
}

// Initial returns the standard starting position: twelve men per side,
// Black to move.
func Initial() Board {
	b := Board{
		blacks: 0x00000FFF,
		whites: 0xFFF00000,
		turn:   Black,
	}
	b.key = b.computeKey()
	return b
}

// Blacks returns the mask of squares holding Black pieces.
func (b Board) Blacks() Bitmask { return b.blacks }

// Whites returns the mask of squares holding White pieces.
func (b Board) Whites() Bitmask { return b.whites }

// Kings returns the mask of squares holding crowned pieces.
func (b Board) Kings() Bitmask { return b.kings }

// Turn reports the side to move.
func (b Board) Turn() Color { return b.turn }

// Occupied returns the mask of all occupied squares.
func (b Board) Occupied() Bitmask { return b.blacks | b.whites }

// Empty returns the mask of all unoccupied playable squares.
func (b Board) Empty() Bitmask { return ^(b.blacks | b.whites) }

// Hash returns the position's zobrist key.
func (b Board) Hash() uint64 { return b.key }

// NoProgressPlies returns the half-moves elapsed since the last capture or
// man advance.
func (b Board) NoProgressPlies() uint8 { return b.noProgress }

// side returns the occupancy mask for the given color.
func (b Board) side(c Color) Bitmask {
	if c == Black {
		return b.blacks
	}
	return b.whites
}

// Validate checks the position invariants: no doubly occupied square, the
// king mask a subset of occupancy, and the cached zobrist key in sync.
func (b Board) Validate() bool {
	if b.blacks&b.whites != 0 {
		return false
	}
	if b.kings&^(b.blacks|b.whites) != 0 {
		return false
	}
	if b.turn != Black && b.turn != White {
		return false
	}
	return b.key == b.computeKey()
}

// GameState adjudicates the position: a side to move with no legal moves
// has lost, and a stretch of DrawMovePlies half-moves without progress is
// a draw.
func (b Board) GameState() GameState {
	if Movers(b)|Jumpers(b) == 0 {
		return winState(b.turn.Other())
	}
	if b.noProgress >= DrawMovePlies {
		return Drawn
	}
	return InProgress
}

// Pretty renders the board as ASCII art: lowercase letters for men,
// uppercase for kings, '.' for an empty dark square and spaces for the
// unplayable light squares.
func (b Board) Pretty() string {
	var sb strings.Builder
	sq := uint8(0)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if (row+col)%2 == 0 {
				sb.WriteByte(' ')
				continue
			}
			m := bit(sq)
			switch {
			case b.blacks&m != 0 && b.kings&m != 0:
				sb.WriteByte('B')
			case b.blacks&m != 0:
				sb.WriteByte('b')
			case b.whites&m != 0 && b.kings&m != 0:
				sb.WriteByte('W')
			case b.whites&m != 0:
				sb.WriteByte('w')
			default:
				sb.WriteByte('.')
			}
			sq++
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
