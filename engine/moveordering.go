package engine

import (
	dm "checkers-engine/draughtsmg"
)

// A transposition-table hint outranks everything else; after that, longer
// capture chains come first.
const hintScore int32 = 1 << 20

type scoredMove struct {
	move  dm.Move
	score int32
}

type moveList struct {
	moves []scoredMove
}

// scoreMoves attaches an ordering score to every move.
func scoreMoves(moves []dm.Move, hint dm.Move) moveList {
	list := moveList{moves: make([]scoredMove, len(moves))}
	for i, m := range moves {
		score := int32(m.JumpLen())
		if m == hint {
			score = hintScore
		}
		list.moves[i] = scoredMove{move: m, score: score}
	}
	return list
}

// orderNextMove swaps the best remaining move into position index. Picking
// lazily beats a full sort when a cutoff ends the loop early; strict
// comparison keeps the order deterministic for equal scores.
func orderNextMove(index int, list *moveList) {
	bestIndex := index
	bestScore := list.moves[index].score
	for i := index + 1; i < len(list.moves); i++ {
		if list.moves[i].score > bestScore {
			bestIndex = i
			bestScore = list.moves[i].score
		}
	}
	if bestIndex != index {
		list.moves[index], list.moves[bestIndex] = list.moves[bestIndex], list.moves[index]
	}
}

// orderedMoves returns the fully ordered move slice for root dispatch.
func orderedMoves(moves []dm.Move, hint dm.Move) []dm.Move {
	list := scoreMoves(moves, hint)
	ordered := make([]dm.Move, len(moves))
	for i := range list.moves {
		orderNextMove(i, &list)
		ordered[i] = list.moves[i].move
	}
	return ordered
}
