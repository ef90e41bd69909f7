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

// Pst returns the piece square value for the piece type on the given
// square. The tables are written from white's perspective - the white
// lookup flips the rank by xor-ing the square index with 0b111000.
func Pst(p Piece, fromWhitePerspective bool, sq Square) Score {
	if fromWhitePerspective {
		return pst[p][sq^0b111_000]
	}
	return pst[p][sq]
}

// positional values for pieces, first row is rank 8
// @formatter:off
var (
	pawnPst = [SqLength]Score{
		 24,  28,  35,  50,  50,  35,  28,  24,
		 16,  23,  27,  34,  34,  27,  23,  16,
		  5,   7,  11,  20,  20,  11,   7,   5,
		-12,  -9,  -2,  11,  11,  -2,  -9, -12,
		-21, -20, -12,   2,   2, -12, -20, -21,
		-17, -14, -14,  -6,  -6, -14, -14, -17,
		-21, -20, -18, -15, -15, -18, -20, -21,
		  0,   0,   0,   0,   0,   0,   0,   0}

	knightPst = [SqLength]Score{
		-10, -10, -10, -10, -10, -10, -10, -10,
		-10,   0,  10,  15,  15,  10,   0, -10,
		-10,   5,  15,  20,  20,  15,   5, -10,
		-10,   5,  15,  20,  20,  15,   5, -10,
		-10,   0,  15,  20,  20,  15,   0, -10,
		-10,   0,  10,  10,  10,  10,   0, -10,
		-10,   0,   0,   5,   5,   0,   0, -10,
		-10, -10, -10, -10, -10, -10, -10, -10}

	bishopPst = [SqLength]Score{
		-10, -10, -10, -10, -10, -10, -10, -10,
		-10,   0,   5,  10,  10,   5,   0, -10,
		-10,   5,  10,  20,  20,  10,   5, -10,
		-10,   5,  10,  20,  20,  10,   5, -10,
		-10,   0,  10,  15,  15,  10,   0, -10,
		-10,   5,  10,  10,  10,  10,   5, -10,
		-10,  10,   0,   5,   5,   0,  10, -10,
		-10, -10, -10, -10, -10, -10, -10, -10}

	rookPst = [SqLength]Score{
		 20,  20,  20,  25,  25,  20,  20,  20,
		 20,  20,  20,  25,  25,  20,  20,  20,
		  0,   0,   0,   5,   5,   0,   0,   0,
		  0,   0,   0,   5,   5,   0,   0,   0,
		  0,   0,   0,   5,   5,   0,   0,   0,
		 -5,   0,   0,  10,  10,   0,   0,  -5,
		 -5,  -5,   0,  15,  15,   0,  -5,  -5,
		-10,  -5,  10,  25,  25,  10,  -5, -10}

	queenPst = [SqLength]Score{}

	kingPst = [SqLength]Score{}
)

// @formatter:on

// pst maps a piece type to its piece square table
var pst = [PtLength]*[SqLength]Score{
	&pawnPst, &knightPst, &bishopPst, &rookPst, &queenPst, &kingPst,
}
