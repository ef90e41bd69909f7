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

// Material holds the piece counts of both sides. It is updated
// incrementally by Eval.MakeMove / Eval.UnmakeMove.
type Material struct {
	// piece counts for Pawn..Queen, indexed [ColorIndex][Piece]
	counts [2][5]int
}

// materialFromPosition counts the pieces on the given position.
func materialFromPosition(p *position.Position) Material {
	m := Material{}
	for _, white := range [2]bool{false, true} {
		us := p.Us(white)
		c := ColorIndex(white)
		m.counts[c][Pawn] = (p.Pawns() & us).PopCount()
		m.counts[c][Knight] = (p.Knights() & us).PopCount()
		m.counts[c][Bishop] = (p.Bishops() & us).PopCount()
		m.counts[c][Rook] = (p.Rooks() & us).PopCount()
		m.counts[c][Queen] = (p.Queens() & us).PopCount()
	}
	return m
}

// Count returns the number of pieces of the given type and side.
func (m *Material) Count(white bool, piece Piece) int {
	return m.counts[ColorIndex(white)][piece]
}

// Score returns the material balance in centi pawns from white's
// view including the bishop pair bonus and the trade incentive:
// the side ahead in material gets a bonus on its pawns while the
// trailing side's pawns are penalised - encouraging the leader to
// trade pieces but keep pawns.
func (m *Material) Score() Score {
	white := &m.counts[1]
	black := &m.counts[0]

	whiteMaterial := PawnScore*Score(white[Pawn]) +
		KnightScore*Score(white[Knight]) +
		BishopScore*Score(white[Bishop]) +
		RookScore*Score(white[Rook]) +
		QueenScore*Score(white[Queen])

	blackMaterial := PawnScore*Score(black[Pawn]) +
		KnightScore*Score(black[Knight]) +
		BishopScore*Score(black[Bishop]) +
		RookScore*Score(black[Rook]) +
		QueenScore*Score(black[Queen])

	threshold := config.Settings.Eval.TradeThreshold
	tradeBonus := config.Settings.Eval.TradePawnBonus
	if whiteMaterial > blackMaterial+threshold {
		whiteMaterial += tradeBonus * Score(white[Pawn])
		blackMaterial -= tradeBonus * Score(black[Pawn])
	} else if blackMaterial > whiteMaterial+threshold {
		blackMaterial += tradeBonus * Score(black[Pawn])
		whiteMaterial -= tradeBonus * Score(white[Pawn])
	}

	if white[Bishop] > 1 {
		whiteMaterial += config.Settings.Eval.BishopPairBonus
	}
	if black[Bishop] > 1 {
		blackMaterial += config.Settings.Eval.BishopPairBonus
	}

	return whiteMaterial - blackMaterial
}

// NonPawnMaterial returns the game phase value: the sum of the non
// pawn material units of both sides weighted with N=3, B=3, R=5, Q=9.
func (m *Material) NonPawnMaterial() Score {
	white := &m.counts[1]
	black := &m.counts[0]
	return 3*Score(white[Knight]+black[Knight]) +
		3*Score(white[Bishop]+black[Bishop]) +
		5*Score(white[Rook]+black[Rook]) +
		9*Score(white[Queen]+black[Queen])
}

// IsDraw returns true if no side has enough material to force a mate.
// The search treats such positions as a known draw.
func (m *Material) IsDraw() bool {
	white := &m.counts[1]
	black := &m.counts[0]

	if white[Pawn] > 0 || white[Rook] > 0 || white[Queen] > 0 {
		return false
	}
	if black[Pawn] > 0 || black[Rook] > 0 || black[Queen] > 0 {
		return false
	}

	if white[Bishop] == 0 && white[Knight] == 0 {
		if black[Bishop] == 0 && black[Knight] < 3 {
			return true
		}
		if black[Bishop] > 0 && black[Bishop]+black[Knight] > 1 {
			return false
		}
		return black[Knight] < 3
	}

	if black[Bishop] == 0 && black[Knight] == 0 {
		if white[Bishop] == 0 && white[Knight] < 3 {
			return true
		}
		if white[Bishop] > 0 && white[Bishop]+white[Knight] > 1 {
			return false
		}
		return white[Knight] < 3
	}

	return false
}
