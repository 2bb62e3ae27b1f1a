package draughtsmg

import "fmt"

// Apply plays a move and returns the successor position. The caller must
// supply a legal move for b's side to move; Apply is total on legal input
// and never mutates b.
func Apply(b Board, m Move) Board {
	src := m.Source()
	dst := m.Destination()
	us := b.turn
	srcBit := bit(src)
	dstBit := bit(dst)
	king := b.kings&srcBit != 0

	next := b

	// Lift the moving piece off its origin.
	if us == Black {
		next.blacks &^= srcBit
	} else {
		next.whites &^= srcBit
	}
	next.kings &^= srcBit
	next.key ^= pieceKey(src, us, king)

	// Clear every jumped man.
	caps := m.Captures()
	them := us.Other()
	for c := caps; c != 0; {
		sq := popLSB(&c)
		cBit := bit(sq)
		capturedKing := next.kings&cBit != 0
		if them == Black {
			next.blacks &^= cBit
		} else {
			next.whites &^= cBit
		}
		next.kings &^= cBit
		next.key ^= pieceKey(sq, them, capturedKing)
	}

	// Land on the destination, crowning a man that stops on the far rank.
	crowned := king
	if !king && promotionRank(us)&dstBit != 0 {
		crowned = true
	}
	if us == Black {
		next.blacks |= dstBit
	} else {
		next.whites |= dstBit
	}
	if crowned {
		next.kings |= dstBit
	}
	next.key ^= pieceKey(dst, us, crowned)

	// A capture or a man's advance resets the no-progress clock.
	if caps != 0 || !king {
		next.noProgress = 0
	} else if next.noProgress < 255 {
		next.noProgress++
	}

	next.turn = them
	next.key ^= turnKey
	return next
}

// TakeAction validates m against the legal move set before applying it.
// This is the entry point for externally supplied moves.
func TakeAction(b Board, m Move) (Board, error) {
	for _, legal := range GenerateMoves(b) {
		if legal == m {
			return Apply(b, m), nil
		}
	}
	return b, fmt.Errorf("%w: %s", ErrInvalidMove, m)
}
