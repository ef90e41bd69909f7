//
// Asymptote - a chess engine core in GO
//
// MIT License
//
// Copyright (c) 2019-2020 Ren Wild
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package evaluator

import (
	. "github.com/RenWild/asymptote/internal/types"
)

// pawnCacheEntries is the fixed number of slots of the pawn cache
const pawnCacheEntries = 2048

// cacheEntry holds the pawn structure scores for one pawn formation.
// The stored bitboards are the verification: a hit requires both to
// match exactly, so index collisions can never return a wrong score.
type cacheEntry struct {
	pawns Bitboard
	color Bitboard
	mg    Score
	eg    Score
}

// pawnCache is a fixed size cache for pawn structure scores owned by
// the enclosing Eval. Indexed by the pawn-only Zobrist key.
type pawnCache struct {
	data   [pawnCacheEntries]cacheEntry
	hits   uint64
	misses uint64
}

// get returns the cached scores for the given pawn formation or
// ok == false when the slot holds a different formation.
func (pc *pawnCache) get(pawnKey uint64, pawns Bitboard, whitePawns Bitboard) (mg Score, eg Score, ok bool) {
	e := &pc.data[pawnKey%pawnCacheEntries]
	if e.pawns == pawns && e.color == whitePawns {
		pc.hits++
		return e.mg, e.eg, true
	}
	pc.misses++
	return 0, 0, false
}

// put stores the scores for the given pawn formation, replacing
// whatever occupied the slot.
func (pc *pawnCache) put(pawnKey uint64, pawns Bitboard, whitePawns Bitboard, mg Score, eg Score) {
	e := &pc.data[pawnKey%pawnCacheEntries]
	e.pawns = pawns
	e.color = whitePawns
	e.mg = mg
	e.eg = eg
}
