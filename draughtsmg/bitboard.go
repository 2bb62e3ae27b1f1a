package draughtsmg

import "math/bits"

// Bitmask is a 32-bit occupancy mask over the playable dark squares.
// Bit i corresponds to square i; squares run 0..31 row-major from the
// top-left dark square, four per row.
type Bitmask uint32

// AllSquares has every playable square set.
const AllSquares Bitmask = 0xFFFFFFFF

// Row-parity masks. Rows of four squares alternate which physical column
// the diagonals fall on, so shifts use different offsets per row parity.
const (
	evenRows Bitmask = 0x0F0F0F0F // rows 0, 2, 4, 6
	oddRows  Bitmask = 0xF0F0F0F0 // rows 1, 3, 5, 7
	leftCol  Bitmask = 0x11111111 // leftmost square of each row group (i%4 == 0)
	rightCol Bitmask = 0x88888888 // rightmost square of each row group (i%4 == 3)
)

// Direction names one of the four diagonal directions. The numeric values
// are the 2-bit codes used inside the Move encoding.
type Direction uint8

const (
	UpLeft Direction = iota
	UpRight
	DownLeft
	DownRight
)

var directionNames = [4]string{"up-left", "up-right", "down-left", "down-right"}

func (d Direction) String() string { return directionNames[d&3] }

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction { return 3 - d }

// Shift moves every set bit one diagonal step in direction d. Bits whose
// step would leave the board are dropped.
func Shift(m Bitmask, d Direction) Bitmask {
	switch d {
	case UpLeft:
		return (m&evenRows)>>4 | (m&oddRows&^leftCol)>>5
	case UpRight:
		return (m&evenRows&^rightCol)>>3 | (m&oddRows)>>4
	case DownLeft:
		return (m&evenRows)<<4 | (m&oddRows&^leftCol)<<3
	case DownRight:
		return (m&evenRows&^rightCol)<<5 | (m&oddRows)<<4
	}
	return 0
}

// PopCount returns the number of set squares.
func PopCount(m Bitmask) int { return bits.OnesCount32(uint32(m)) }

// FirstSquare returns the lowest set square index. m must be non-zero.
func FirstSquare(m Bitmask) uint8 { return uint8(bits.TrailingZeros32(uint32(m))) }

// popLSB removes and returns the least significant set square from the mask.
func popLSB(m *Bitmask) uint8 {
	sq := uint8(bits.TrailingZeros32(uint32(*m)))
	*m &= *m - 1
	return sq
}

// bit returns a mask with only square sq set.
func bit(sq uint8) Bitmask { return Bitmask(1) << sq }

// Per-square step tables, derived from Shift so the two views of the
// geometry cannot drift apart. An entry of -1 means the step leaves the
// board.
var (
	slideTo [4][32]int8
	jumpTo  [4][32]int8
)

func init() {
	for d := Direction(0); d < 4; d++ {
		for sq := uint8(0); sq < 32; sq++ {
			one := Shift(bit(sq), d)
			if one == 0 {
				slideTo[d][sq] = -1
			} else {
				slideTo[d][sq] = int8(FirstSquare(one))
			}
			two := Shift(one, d)
			if two == 0 {
				jumpTo[d][sq] = -1
			} else {
				jumpTo[d][sq] = int8(FirstSquare(two))
			}
		}
	}
}

// SlideTarget returns the adjacent square in direction d, or ok=false at
// the board edge.
func SlideTarget(sq uint8, d Direction) (uint8, bool) {
	t := slideTo[d][sq]
	return uint8(t), t >= 0
}

// JumpTarget returns the square two diagonal steps away in direction d, or
// ok=false at the board edge.
func JumpTarget(sq uint8, d Direction) (uint8, bool) {
	t := jumpTo[d][sq]
	return uint8(t), t >= 0
}
