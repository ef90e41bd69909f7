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
	"github.com/RenWild/asymptote/internal/config"
	"github.com/RenWild/asymptote/internal/position"
	. "github.com/RenWild/asymptote/internal/types"
)

// passed pawn bonus tables indexed by the relative rank of the pawn.
// Relative rank 1 is one step from promotion.
var (
	passerOnRankBonusMg = [8]Score{0, 60, 50, 40, 30, 20, 10, 0}
	passerOnRankBonusEg = [8]Score{0, 160, 80, 40, 20, 10, 10, 0}
)

// pawnCorridor[side][sq] covers all squares in front of a pawn on sq
// on its own and the adjacent files. An enemy pawn inside the
// corridor stops the pawn from being passed.
var pawnCorridor [2][SqLength]Bitboard

func init() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f := int(sq.FileOf())
		r := int(sq.RankOf())
		for df := -1; df <= 1; df++ {
			if f+df < 0 || f+df > 7 {
				continue
			}
			for fr := r + 1; fr <= 7; fr++ {
				pawnCorridor[ColorIndex(true)][sq] |= SquareOf(File(f+df), Rank(fr)).Bb()
			}
			for fr := r - 1; fr >= 0; fr-- {
				pawnCorridor[ColorIndex(false)][sq] |= SquareOf(File(f+df), Rank(fr)).Bb()
			}
		}
	}
}

// pawns returns the pawn structure score (white minus black) with
// mid and end game parts. Results are cached in the pawn cache - the
// cache entry is verified by the full pawn bitboards, so a false
// positive from the index is impossible.
func (e *Eval) pawns(p *position.Position, pawnHash uint64) (Score, Score) {
	pawns := p.Pawns()
	whitePawns := p.ColorBb() & pawns

	if config.Settings.Eval.UsePawnCache {
		if mg, eg, ok := e.pawnCache.get(pawnHash, pawns, whitePawns); ok {
			return mg, eg
		}
	}

	wmg, weg := e.pawnsForSide(p, true)
	bmg, beg := e.pawnsForSide(p, false)

	if config.Settings.Eval.UsePawnCache {
		e.pawnCache.put(pawnHash, pawns, whitePawns, wmg-bmg, weg-beg)
	}

	return wmg - bmg, weg - beg
}

// pawnsForSide scores passed and isolated pawns for one side. A
// passed pawn that is doubled gets no passer bonus. An isolated pawn
// is penalised in the mid game always and in the end game only when
// it is not passed.
func (e *Eval) pawnsForSide(p *position.Position, white bool) (Score, Score) {
	us := p.Us(white)
	side := ColorIndex(white)

	isolatedMid := config.Settings.Eval.IsolatedPawnMidMalus
	isolatedEnd := config.Settings.Eval.IsolatedPawnEndMalus

	mg := Score(0)
	eg := Score(0)

	for b := p.Pawns() & us; b != 0; {
		sq := b.PopLsb()
		corridorBb := pawnCorridor[side][sq]
		fileForwardBb := corridorBb & sq.FileOf().Bb()
		passed := (corridorBb & ^us & p.Pawns()).IsEmpty()
		doubled := (fileForwardBb & us & p.Pawns()).AtLeastOne()

		if passed && !doubled {
			relativeRank := int(sq.RankOf())
			if white {
				relativeRank ^= 7
			}
			mg += passerOnRankBonusMg[relativeRank]
			eg += passerOnRankBonusEg[relativeRank]
		}

		if (adjacentFiles(sq.FileOf()) & p.Pawns() & us).IsEmpty() {
			mg -= isolatedMid
			if !passed {
				eg -= isolatedEnd
			}
		}
	}

	return mg, eg
}

// positionalScore returns the doubled pawn file penalties (white
// minus black) computed from the incrementally maintained pawns per
// file counters.
func (e *Eval) positionalScore() Score {
	penalty := [9]Score{0, 0, 25, 60, 90, 140, 200, 270, 270}

	score := Score(0)
	for _, numPawns := range e.pawnsPerFile[1] {
		score -= penalty[numPawns]
	}
	for _, numPawns := range e.pawnsPerFile[0] {
		score += penalty[numPawns]
	}
	return score
}

// adjacentFiles returns a bitboard of the files east and west of the
// given file
func adjacentFiles(f File) Bitboard {
	b := BbZero
	if f > FileA {
		b |= (f - 1).Bb()
	}
	if f < FileH {
		b |= (f + 1).Bb()
	}
	return b
}
