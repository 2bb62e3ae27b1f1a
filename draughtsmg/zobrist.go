package draughtsmg

import "math/rand"

// Zobrist keys: 32 per color, 32 more XORed in for crowned pieces, and one
// for the side to move. White to move is the XORed state so the initial
// position keeps a stable key.
var (
	zobristTable [97]uint64
	turnKey      uint64
)

func init() {
	// Fixed seed keeps hashes reproducible across runs and in tests.
	rnd := rand.New(rand.NewSource(25184470690726))
	for i := range zobristTable {
		zobristTable[i] = rnd.Uint64()
	}
	turnKey = zobristTable[96]
}

// pieceKey returns the zobrist key for a piece of the given color and
// crown status on a square.
func pieceKey(sq uint8, c Color, king bool) uint64 {
	var key uint64
	if c == Black {
		key = zobristTable[sq]
	} else {
		key = zobristTable[32+uint32(sq)]
	}
	if king {
		key ^= zobristTable[64+uint32(sq)]
	}
	return key
}

// computeKey rebuilds the zobrist key from scratch. Apply maintains the
// key incrementally; this is the reference used by Validate and the
// constructors.
func (b Board) computeKey() uint64 {
	var key uint64
	for m := b.blacks; m != 0; {
		sq := popLSB(&m)
		key ^= pieceKey(sq, Black, b.kings&bit(sq) != 0)
	}
	for m := b.whites; m != 0; {
		sq := popLSB(&m)
		key ^= pieceKey(sq, White, b.kings&bit(sq) != 0)
	}
	if b.turn == White {
		key ^= turnKey
	}
	return key
}
