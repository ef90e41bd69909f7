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

package types

import "strings"

// Move is a plain value type describing a single chess move. A move
// does not know whose turn it is - that is read from the position it
// is applied to. Captured and Promoted are PieceNone when the move is
// not a capture respectively not a promotion.
type Move struct {
	From Square
	To   Square

	Piece     Piece
	Captured  Piece
	Promoted  Piece
	EnPassant bool
}

// MoveNone is the empty non valid move
var MoveNone = Move{From: SqNone, To: SqNone, Piece: PieceNone, Captured: PieceNone, Promoted: PieceNone}

// IsQuiet returns true when the move neither captures nor promotes.
func (m Move) IsQuiet() bool {
	return m.Captured == PieceNone && m.Promoted == PieceNone
}

// IsKingsideCastle returns true when a king move is the kingside
// castle. Only meaningful for king moves.
func (m Move) IsKingsideCastle() bool {
	return m.To == m.From.Right(2)
}

// IsQueensideCastle returns true when a king move is the queenside
// castle. Only meaningful for king moves.
func (m Move) IsQueensideCastle() bool {
	return m.To == m.From.Left(2)
}

// MvvLvaScore returns the most-valuable-victim / least-valuable-
// attacker ordering score of the move. Queen promotions get an
// additional bonus. The values are not compatible with evaluation
// scores.
func (m Move) MvvLvaScore() int32 {
	score := int32(0)
	if m.Captured != PieceNone {
		score = 128 * int32(m.Captured.OrderingValue())
	}
	if m.Promoted == Queen {
		score += int32(Queen.OrderingValue())
	}
	score -= int32(m.Piece.OrderingValue())
	return score
}

// Algebraic returns the long algebraic notation of the move
// (e.g. e2e4, e7e8q).
func (m Move) Algebraic() string {
	var os strings.Builder
	os.WriteString(m.From.String())
	os.WriteString(m.To.String())
	if m.Promoted != PieceNone {
		os.WriteString(m.Promoted.Char())
	}
	return os.String()
}

// String returns the long algebraic notation of the move.
func (m Move) String() string {
	if m == MoveNone {
		return "NoMove"
	}
	return m.Algebraic()
}
