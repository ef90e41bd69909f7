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

// Package evaluator contains structures and functions to calculate
// the value of a chess position in centi pawns: material, piece
// square tables, mobility, rook files, pawn structure and king safety
// with mid game / end game phase interpolation. Material, piece
// square sums and pawns per file are maintained incrementally in
// lockstep with the position via MakeMove / UnmakeMove.
package evaluator

import (
	"github.com/RenWild/asymptote/internal/config"
	"github.com/RenWild/asymptote/internal/position"
	. "github.com/RenWild/asymptote/internal/types"
)

// Eval holds the incrementally updated evaluation state of a
// position: the material counts, the per side piece square sums, the
// per file pawn counts and the pawn structure cache.
// Create a new instance from a position with NewEval. Not safe for
// concurrent use - every search thread must own its own instance.
//
// MakeMove and UnmakeMove must be called immediately BEFORE the
// corresponding Position call - they read the pre-call state of the
// position.
type Eval struct {
	material Material

	// piece square sums, [black, white]
	pst [2]Score

	// pawn counts per file, [ColorIndex][file]
	pawnsPerFile [2][8]int

	pawnCache pawnCache
}

// mobility tables indexed by the number of reachable squares, each
// demeaned by its average so mid mobility scores zero
const (
	knightMobilityAvg Score = 108
	bishopMobilityAvg Score = 110
	rookMobilityAvg   Score = 105
)

var (
	knightMobility = [9]Score{-20, 40, 80, 120, 130, 140, 150, 160, 170}

	bishopMobility = [14]Score{
		0, 40, 80, 100, 110, 115, 120, 125, 130, 135, 140, 145, 150, 155}

	rookMobility = [15]Score{
		0, 40, 80, 90, 100, 105, 110, 115, 120, 125, 130, 135, 140, 145, 150}
)

// distance of a square to the nearest center square
// @formatter:off
var centerDistance = [SqLength]Score{
	3, 3, 3, 3, 3, 3, 3, 3,
	3, 2, 2, 2, 2, 2, 2, 3,
	3, 2, 1, 1, 1, 1, 2, 3,
	3, 2, 1, 0, 0, 1, 2, 3,
	3, 2, 1, 0, 0, 1, 2, 3,
	3, 2, 1, 1, 1, 1, 2, 3,
	3, 2, 2, 2, 2, 2, 2, 3,
	3, 3, 3, 3, 3, 3, 3, 3}

// @formatter:on

// NewEval creates a new evaluation state from the given position.
func NewEval(p *position.Position) *Eval {
	e := &Eval{
		material: materialFromPosition(p),
	}

	for _, white := range [2]bool{false, true} {
		us := p.Us(white)
		sum := Score(0)
		for piece := Pawn; piece <= King; piece++ {
			for b := p.PieceBb(piece) & us; b != 0; {
				sum += Pst(piece, white, b.PopLsb())
			}
		}
		e.pst[ColorIndex(white)] = sum

		for b := p.Pawns() & us; b != 0; {
			e.pawnsPerFile[ColorIndex(white)][b.PopLsb().FileOf()]++
		}
	}

	return e
}

// Material returns the incrementally maintained material counts.
// The search uses Material().IsDraw() to detect insufficient
// material before asking for a score.
func (e *Eval) Material() *Material {
	return &e.material
}

// Score calculates the static evaluation of the position in centi
// pawns from the view of the side to move. The pawn hash is the
// incrementally maintained pawn-only Zobrist key of the position and
// indexes the pawn cache.
func (e *Eval) Score(p *position.Position, pawnHash uint64) Score {
	score := e.material.Score()
	score += e.pst[1] - e.pst[0]
	score += e.positionalScore()
	if config.Settings.Eval.UseMobility {
		score += e.mobilityForSide(true, p) - e.mobilityForSide(false, p)
	}
	score += e.rooksForSide(p, true) - e.rooksForSide(p, false)

	phase := e.phase()
	if config.Settings.Eval.UseKingSafety {
		kingMg, kingEg := e.kingSafety(p)
		score += (kingMg*phase + kingEg*(GamePhaseMax-phase)) / GamePhaseMax
	}
	if config.Settings.Eval.UsePawnEval {
		pawnsMg, pawnsEg := e.pawns(p, pawnHash)
		score += (pawnsMg*phase + pawnsEg*(GamePhaseMax-phase)) / GamePhaseMax
	}

	if p.WhiteToMove() {
		return score
	}
	return -score
}

// phase returns the game phase as the non pawn material sum, capped
// at GamePhaseMax - promotions can push the material sum past the
// start value.
func (e *Eval) phase() Score {
	phase := e.material.NonPawnMaterial()
	if phase > GamePhaseMax {
		phase = GamePhaseMax
	}
	return phase
}

// mobilityForSide computes the mobility score of one side: reachable
// pawn target squares times the pawn mobility bonus plus the indexed
// knight, bishop and rook mobility tables. Knight mobility excludes
// squares attacked by enemy pawns.
func (e *Eval) mobilityForSide(white bool, p *position.Position) Score {
	us := p.Us(white)
	rank3 := Rank3_Bb
	if !white {
		rank3 = Rank6_Bb
	}

	pawnStopSquares := (p.Pawns() & us).Forward(white, 1)
	pawnMobility := pawnStopSquares & ^p.AllPieces()
	pawnMobility |= (pawnMobility & rank3).Forward(white, 1) & ^p.AllPieces()
	pawnMobility |= p.AllPieces() & ^us & (pawnStopSquares.Left(1) | pawnStopSquares.Right(1))

	knightScore := Score(0)
	theirPawns := p.Pawns() & ^us
	theirPawnAttacks := theirPawns.Forward(!white, 1).Left(1) | theirPawns.Forward(!white, 1).Right(1)
	for b := p.Knights() & us; b != 0; {
		sq := b.PopLsb()
		mobility := GetAttacksBb(Knight, sq, BbZero) & ^theirPawnAttacks
		knightScore += knightMobility[mobility.PopCount()] - knightMobilityAvg
	}

	bishopScore := Score(0)
	for b := p.Bishops() & us; b != 0; {
		sq := b.PopLsb()
		mobility := GetAttacksBb(Bishop, sq, p.AllPieces())
		bishopScore += bishopMobility[mobility.PopCount()] - bishopMobilityAvg
	}

	rookScore := Score(0)
	for b := p.Rooks() & us; b != 0; {
		sq := b.PopLsb()
		mobility := GetAttacksBb(Rook, sq, p.AllPieces())
		rookScore += rookMobility[mobility.PopCount()] - rookMobilityAvg
	}

	return config.Settings.Eval.PawnMobilityBonus*Score(pawnMobility.PopCount()) +
		knightScore + bishopScore + rookScore
}

// rooksForSide scores rooks on open and half open files for one side.
func (e *Eval) rooksForSide(p *position.Position, white bool) Score {
	us := p.Us(white)

	score := Score(0)
	for b := p.Rooks() & us; b != 0; {
		fileBb := b.PopLsb().FileOf().Bb()
		if (p.Pawns() & fileBb).IsEmpty() {
			score += config.Settings.Eval.RookOpenFileBonus
		} else if (p.Pawns() & us & fileBb).IsEmpty() {
			score += config.Settings.Eval.RookHalfOpenFileBonus
		}
	}
	return score
}

// kingSafety returns the king safety scores (white minus black) with
// mid and end game parts.
func (e *Eval) kingSafety(p *position.Position) (Score, Score) {
	wmg, weg := e.kingSafetyForSide(p, true)
	bmg, beg := e.kingSafetyForSide(p, false)
	return wmg - bmg, weg - beg
}

// kingSafetyForSide computes the king safety of one side. When the
// opponent has no queen and at most one rook only the end game centre
// distance penalty applies. Otherwise an index is accumulated from
// missing shield pawns, enemy pawns near the king, the king standing
// on an open or half open file and an enemy rook sharing the king's
// file; the mid game penalty is the squared index.
func (e *Eval) kingSafetyForSide(p *position.Position, white bool) (Score, Score) {
	us := p.Us(white)
	them := ^us

	king := p.Kings() & us
	kingSq := p.KingSq(white)
	kingFile := kingSq.FileOf().Bb()
	adjacent := king.Left(1) | king | king.Right(1)
	front := adjacent.Forward(white, 1)
	distantFront := adjacent.Forward(white, 2)

	egPenalty := centerDistance[kingSq]

	skipKingSafety := e.material.Count(!white, Queen) == 0 && e.material.Count(!white, Rook) <= 1
	if skipKingSafety {
		return 0, -config.Settings.Eval.KingCenterDistanceMalus * egPenalty
	}

	index := Score(0)
	index += Score(3-(front&p.Pawns()&us).PopCount()) * 2
	index += Score(3 - (distantFront & p.Pawns() & us).PopCount())
	index += Score((front & p.Pawns() & them).PopCount())
	index += Score((distantFront & p.Pawns() & them).PopCount())

	// king on open file
	if (kingFile & p.Pawns()).IsEmpty() {
		index += 2
	}

	// king on half-open file
	if (kingFile & p.Pawns()).PopCount() == 1 {
		index += 1
	}

	// on same file as opposing rook
	if (kingFile & p.Rooks() & them).AtLeastOne() {
		index += 1
	}

	mgPenalty := index * index
	return -mgPenalty, -config.Settings.Eval.KingCenterDistanceMalus * egPenalty
}

// MakeMove mirrors Position.MakeMove on the evaluation aggregates:
// piece square sums, material counts and pawns per file. Must be
// called immediately before the position applies the move.
func (e *Eval) MakeMove(m Move, p *position.Position) {
	wtm := p.WhiteToMove()
	us := ColorIndex(wtm)
	them := 1 - us

	e.pst[us] -= Pst(m.Piece, wtm, m.From)
	if m.Promoted != PieceNone {
		e.pst[us] += Pst(m.Promoted, wtm, m.To)
	} else {
		e.pst[us] += Pst(m.Piece, wtm, m.To)
	}

	if m.Captured != PieceNone {
		if m.EnPassant {
			e.pst[them] -= Pst(Pawn, !wtm, m.To.Backward(wtm, 1))
		} else {
			e.pst[them] -= Pst(m.Captured, !wtm, m.To)
		}
	}

	if m.Piece == Pawn {
		e.pawnsPerFile[us][m.From.FileOf()]--
	}

	if m.Captured != PieceNone {
		if m.Captured == Pawn {
			e.pawnsPerFile[them][m.To.FileOf()]--
		}
		e.material.counts[them][m.Captured]--
	}

	switch m.Piece {
	case Pawn:
		if m.Promoted != PieceNone {
			e.material.counts[us][Pawn]--
			e.material.counts[us][m.Promoted]++
		} else {
			e.pawnsPerFile[us][m.To.FileOf()]++
		}
	case King:
		if m.To == m.From.Right(2) {
			// castle kingside
			e.pst[us] -= Pst(Rook, wtm, m.To.Right(1))
			e.pst[us] += Pst(Rook, wtm, m.To.Left(1))
		} else if m.From == m.To.Right(2) {
			// castle queenside
			e.pst[us] -= Pst(Rook, wtm, m.To.Left(2))
			e.pst[us] += Pst(Rook, wtm, m.To.Right(1))
		}
	}
}

// UnmakeMove mirrors Position.UnmakeMove on the evaluation
// aggregates. Must be called immediately before the position unmakes
// the move - the position is still in its post-move state.
func (e *Eval) UnmakeMove(m Move, p *position.Position) {
	unmakingWhite := !p.WhiteToMove()
	us := ColorIndex(unmakingWhite)
	them := 1 - us

	e.pst[us] += Pst(m.Piece, unmakingWhite, m.From)
	if m.Promoted != PieceNone {
		e.pst[us] -= Pst(m.Promoted, unmakingWhite, m.To)
	} else {
		e.pst[us] -= Pst(m.Piece, unmakingWhite, m.To)
	}

	if m.Captured != PieceNone {
		if m.EnPassant {
			e.pst[them] += Pst(Pawn, !unmakingWhite, m.To.Backward(unmakingWhite, 1))
		} else {
			e.pst[them] += Pst(m.Captured, !unmakingWhite, m.To)
		}
	}

	switch m.Piece {
	case Pawn:
		e.pawnsPerFile[us][m.From.FileOf()]++
	case King:
		if m.To == m.From.Right(2) {
			// castle kingside
			e.pst[us] += Pst(Rook, unmakingWhite, m.To.Right(1))
			e.pst[us] -= Pst(Rook, unmakingWhite, m.To.Left(1))
		} else if m.From == m.To.Right(2) {
			// castle queenside
			e.pst[us] += Pst(Rook, unmakingWhite, m.To.Left(2))
			e.pst[us] -= Pst(Rook, unmakingWhite, m.To.Right(1))
		}
	}

	if m.Captured != PieceNone {
		if m.Captured == Pawn {
			e.pawnsPerFile[them][m.To.FileOf()]++
		}
		e.material.counts[them][m.Captured]++
	}

	if m.Piece == Pawn {
		if m.Promoted != PieceNone {
			e.material.counts[us][Pawn]++
			e.material.counts[us][m.Promoted]--
		} else {
			e.pawnsPerFile[us][m.To.FileOf()]--
		}
	}
}
