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

package position

import (
	. "github.com/RenWild/asymptote/internal/types"
)

// See returns the static exchange evaluation of the move: the
// predicted material balance of the complete capture sequence on the
// target square assuming both sides always capture with their
// cheapest attacker, relative to the side to move. The search uses
// See(m) >= 0 as the good/bad capture split and for pruning.
func (p *Position) See(m Move) Score {
	allowedPieces := p.allPieces ^ m.From.Bb()

	capturedValue := Score(0)
	if m.Captured != PieceNone {
		capturedValue = m.Captured.Value()
	}

	pieceAfterMove := m.Piece
	if m.Promoted != PieceNone {
		pieceAfterMove = m.Promoted
	}
	promotionValue := pieceAfterMove.Value() - m.Piece.Value()

	return capturedValue + promotionValue -
		p.seeSquare(m.To, pieceAfterMove, allowedPieces, !p.whiteToMove)
}

// seeSquare solves the capture sequence on the square for the side
// given by white. The piece currently occupying the square is the
// capture target. Attackers are recomputed at every level over the
// remaining allowed pieces so x-ray attackers appear automatically as
// blocking pieces are removed.
func (p *Position) seeSquare(sq Square, occupier Piece, allowedPieces Bitboard, white bool) Score {
	value := Score(0)
	piece, fromBb := p.cheapestCaptures(sq, allowedPieces, white)

	captureValue := occupier.Value()
	promotion := piece == Pawn && ((white && sq.RankOf() == Rank8) || (!white && sq.RankOf() == Rank1))
	pieceAfterMove := piece
	if promotion {
		pieceAfterMove = Queen
	}
	promotionValue := pieceAfterMove.Value() - piece.Value()

	for b := fromBb; b != 0; {
		from := b.PopLsb()
		gain := captureValue + promotionValue -
			p.seeSquare(sq, pieceAfterMove, allowedPieces^from.Bb(), !white)
		if gain > value {
			value = gain
		}
		// no attacker can do better than winning the full occupier
		if value >= captureValue+promotionValue {
			break
		}
	}

	return value
}

// cheapestCaptures returns the cheapest piece type of the given side
// able to capture on the square together with a bitboard of all its
// candidates. Attacks are computed over the allowed pieces only.
func (p *Position) cheapestCaptures(sq Square, allowedPieces Bitboard, white bool) (Piece, Bitboard) {
	us := p.Us(white) & allowedPieces

	// en passant captures are not accounted for - the move preceding
	// an en passant capture is always non capturing
	capturers := p.bb[Pawn] & us &
		(sq.Bb().Backward(white, 1).Left(1) | sq.Bb().Backward(white, 1).Right(1))
	if capturers.AtLeastOne() {
		return Pawn, capturers
	}

	capturers = p.bb[Knight] & us & GetAttacksBb(Knight, sq, BbZero)
	if capturers.AtLeastOne() {
		return Knight, capturers
	}

	bishopAttackerSquares := us & GetAttacksBb(Bishop, sq, allowedPieces)
	capturers = p.bb[Bishop] & bishopAttackerSquares
	if capturers.AtLeastOne() {
		return Bishop, capturers
	}

	rookAttackerSquares := us & GetAttacksBb(Rook, sq, allowedPieces)
	capturers = p.bb[Rook] & rookAttackerSquares
	if capturers.AtLeastOne() {
		return Rook, capturers
	}

	capturers = p.bb[Queen] & us & (bishopAttackerSquares | rookAttackerSquares)
	if capturers.AtLeastOne() {
		return Queen, capturers
	}

	capturers = p.bb[King] & us & GetAttacksBb(King, sq, BbZero)
	return King, capturers
}
