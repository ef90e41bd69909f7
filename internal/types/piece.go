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

// Piece is a set of constants for the piece types in chess. The
// constants double as the index into the per piece bitboard array of
// a position.
type Piece int8

// Piece types with stable indices 0-5. PieceNone marks the absence
// of a piece (e.g. no capture, no promotion).
const (
	Pawn      Piece = iota // 0
	Knight    Piece = iota // 1
	Bishop    Piece = iota // 2
	Rook      Piece = iota // 3
	Queen     Piece = iota // 4
	King      Piece = iota // 5
	PieceNone Piece = iota // 6
)

// PtLength number of distinct piece types
const PtLength = 6

// IsValid check if p is a valid piece type
func (p Piece) IsValid() bool {
	return p >= Pawn && p <= King
}

// end game centi pawn values used by the static exchange evaluation
var pieceValues = [PtLength]Score{100, 300, 320, 500, 1000, 10000}

// Value returns the centi pawn value of the piece type as used by
// the static exchange evaluation.
func (p Piece) Value() Score {
	return pieceValues[p]
}

// tuned values used only for move ordering (MVV-LVA)
var orderingValues = [PtLength]Score{120, 300, 300, 550, 1000, 10000}

// OrderingValue returns the piece value used for MVV-LVA move
// ordering. Not compatible with evaluation scores.
func (p Piece) OrderingValue() Score {
	return orderingValues[p]
}

// array of string labels for piece types
var pieceTypeToString = [PtLength + 1]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King", "NoPiece"}

// String returns a string representation of a piece type
func (p Piece) String() string {
	return pieceTypeToString[p]
}

const pieceTypeToChar = "pnbrqk"

// Char returns a single lower case char representation of a piece
// type as used in FEN strings for black pieces. Returns "-" for
// PieceNone.
func (p Piece) Char() string {
	if !p.IsValid() {
		return "-"
	}
	return string(pieceTypeToChar[p])
}
