package engine

import (
	"sync"

	dm "checkers-engine/draughtsmg"
)

// Bound kinds for transposition entries.
const (
	AlphaFlag = iota // fail-low: stored score is an upper bound
	BetaFlag         // fail-high: stored score is a lower bound
	ExactFlag
)

const ttShards = 64

// TTEntry is one memoized search result.
type TTEntry struct {
	Key   uint64
	Depth int8
	Score int32
	Flag  int8
	Move  dm.Move
}

type ttShard struct {
	mu      sync.RWMutex
	entries map[uint64]TTEntry
}

// TransTable is a concurrent position-keyed cache of search results.
// Reads take a shared lock per shard, writes an exclusive one; the full
// key is stored and verified so index collisions cannot surface a foreign
// entry.
type TransTable struct {
	shards [ttShards]ttShard
}

// NewTransTable returns an empty table.
func NewTransTable() *TransTable {
	tt := &TransTable{}
	for i := range tt.shards {
		tt.shards[i].entries = make(map[uint64]TTEntry)
	}
	return tt
}

func (tt *TransTable) shard(key uint64) *ttShard {
	return &tt.shards[key&(ttShards-1)]
}

// Probe looks up an entry by full key.
func (tt *TransTable) Probe(key uint64) (TTEntry, bool) {
	sh := tt.shard(key)
	sh.mu.RLock()
	e, ok := sh.entries[key]
	sh.mu.RUnlock()
	return e, ok
}

// Store records a search result. An existing strictly deeper entry for the
// same position is kept in preference to a shallower one.
func (tt *TransTable) Store(key uint64, depth int8, ply int8, move dm.Move, score int32, flag int8) {
	// Mate scores are stored relative to the storing node so they stay
	// valid at any ply they are probed from.
	if score > MateScore {
		score += int32(ply)
	} else if score < -MateScore {
		score -= int32(ply)
	}

	sh := tt.shard(key)
	sh.mu.Lock()
	if old, ok := sh.entries[key]; !ok || depth >= old.Depth {
		sh.entries[key] = TTEntry{Key: key, Depth: depth, Score: score, Flag: flag, Move: move}
	}
	sh.mu.Unlock()
}

// Clear drops every entry.
func (tt *TransTable) Clear() {
	for i := range tt.shards {
		sh := &tt.shards[i]
		sh.mu.Lock()
		sh.entries = make(map[uint64]TTEntry)
		sh.mu.Unlock()
	}
}

// Len returns the total number of stored entries.
func (tt *TransTable) Len() int {
	n := 0
	for i := range tt.shards {
		sh := &tt.shards[i]
		sh.mu.RLock()
		n += len(sh.entries)
		sh.mu.RUnlock()
	}
	return n
}

// scoreFromTT converts a stored score back to the probing node's view,
// undoing the mate-distance adjustment applied by Store.
func scoreFromTT(score int32, ply int8) int32 {
	if score > MateScore {
		return score - int32(ply)
	}
	if score < -MateScore {
		return score + int32(ply)
	}
	return score
}
