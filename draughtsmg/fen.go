package draughtsmg

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the PDN FEN string for the standard initial position.
const FENStartPos = "B:W21,22,23,24,25,26,27,28,29,30,31,32:B1,2,3,4,5,6,7,8,9,10,11,12"

// parseColor maps a single-letter color field.
func parseColor(s string) (Color, error) {
	switch s {
	case "B":
		return Black, nil
	case "W":
		return White, nil
	}
	return 0, fmt.Errorf("%w: color must be 'B' or 'W', got %q", ErrMalformedFEN, s)
}

// parseSide reads one side's piece list ("W21,22,K30" without the leading
// colon) and returns its color and the piece and king masks.
func parseSide(s string) (Color, Bitmask, Bitmask, error) {
	if len(s) == 0 {
		return 0, 0, 0, fmt.Errorf("%w: empty side field", ErrMalformedFEN)
	}
	color, err := parseColor(s[:1])
	if err != nil {
		return 0, 0, 0, err
	}

	var pieces, kings Bitmask
	rest := s[1:]
	if rest == "" {
		return color, 0, 0, nil
	}
	for _, item := range strings.Split(rest, ",") {
		king := false
		if strings.HasPrefix(item, "K") {
			king = true
			item = item[1:]
		}
		pos, err := strconv.Atoi(item)
		if err != nil || pos < 1 || pos > 32 {
			return 0, 0, 0, fmt.Errorf("%w: %q is not a position 1-32", ErrMalformedFEN, item)
		}
		mask := bit(uint8(pos - 1))
		if pieces&mask != 0 {
			return 0, 0, 0, fmt.Errorf("%w: square %d listed twice", ErrMalformedFEN, pos)
		}
		pieces |= mask
		if king {
			kings |= mask
		}
	}
	return color, pieces, kings, nil
}

// ParseFEN parses a PDN FEN string such as
// "B:W21,22,23,K30:B1,2,3,K8" into a Board. The two side lists may appear
// in either order but must cover both colors. The PDN form carries no
// no-progress clock, so the parsed board's clock starts at zero.
func ParseFEN(fen string) (Board, error) {
	parts := strings.Split(strings.TrimSpace(fen), ":")
	if len(parts) != 3 {
		return Board{}, fmt.Errorf("%w: expected two ':' separators", ErrMalformedFEN)
	}

	turn, err := parseColor(parts[0])
	if err != nil {
		return Board{}, err
	}

	c1, p1, k1, err := parseSide(parts[1])
	if err != nil {
		return Board{}, err
	}
	c2, p2, k2, err := parseSide(parts[2])
	if err != nil {
		return Board{}, err
	}
	if c1 == c2 {
		return Board{}, fmt.Errorf("%w: both side lists are %v", ErrMalformedFEN, c1)
	}

	b := Board{turn: turn, kings: k1 | k2}
	if c1 == Black {
		b.blacks, b.whites = p1, p2
	} else {
		b.blacks, b.whites = p2, p1
	}
	if b.blacks&b.whites != 0 {
		return Board{}, fmt.Errorf("%w: square occupied by both sides", ErrMalformedFEN)
	}
	b.key = b.computeKey()
	return b, nil
}

// ToFEN renders the canonical PDN FEN for the position: side to move, then
// the White list, then the Black list, squares ascending. The no-progress
// clock is not part of the format and is lost on a round trip.
func (b Board) ToFEN() string {
	var sb strings.Builder
	if b.turn == Black {
		sb.WriteByte('B')
	} else {
		sb.WriteByte('W')
	}
	sb.WriteString(":W")
	writeSquares(&sb, b.whites, b.kings)
	sb.WriteString(":B")
	writeSquares(&sb, b.blacks, b.kings)
	return sb.String()
}

func writeSquares(sb *strings.Builder, pieces, kings Bitmask) {
	first := true
	for m := pieces; m != 0; {
		sq := popLSB(&m)
		if !first {
			sb.WriteByte(',')
		}
		first = false
		if kings&bit(sq) != 0 {
			sb.WriteByte('K')
		}
		sb.WriteString(strconv.Itoa(int(sq) + 1))
	}
}
