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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareFileRank(t *testing.T) {
	tests := []struct {
		sq   Square
		file File
		rank Rank
	}{
		{SqA1, FileA, Rank1},
		{SqH8, FileH, Rank8},
		{SqE4, FileE, Rank4},
		{SqB7, FileB, Rank7},
	}
	for _, test := range tests {
		assert.Equal(t, test.file, test.sq.FileOf())
		assert.Equal(t, test.rank, test.sq.RankOf())
		assert.Equal(t, test.sq, SquareOf(test.file, test.rank))
	}
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "a1", SqA1.String())
	assert.Equal(t, "h8", SqH8.String())
	assert.Equal(t, "e4", SqE4.String())
	assert.Equal(t, "-", SqNone.String())
}

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SqA1, MakeSquare("a1"))
	assert.Equal(t, SqH8, MakeSquare("h8"))
	assert.Equal(t, SqE4, MakeSquare("e4"))
	assert.Equal(t, SqNone, MakeSquare("i1"))
	assert.Equal(t, SqNone, MakeSquare("a9"))
	assert.Equal(t, SqNone, MakeSquare("xx"))
	assert.Equal(t, SqNone, MakeSquare(""))
}

func TestSquareSteps(t *testing.T) {
	assert.Equal(t, SqE3, SqE2.Forward(true, 1))
	assert.Equal(t, SqE4, SqE2.Forward(true, 2))
	assert.Equal(t, SqE6, SqE7.Forward(false, 1))
	assert.Equal(t, SqE2, SqE3.Backward(true, 1))
	assert.Equal(t, SqD4, SqE4.Left(1))
	assert.Equal(t, SqF4, SqE4.Right(1))
	assert.Equal(t, SqC1, SqE1.Left(2))
	assert.Equal(t, SqG1, SqE1.Right(2))
}

func TestPieceValues(t *testing.T) {
	assert.Equal(t, Score(100), Pawn.Value())
	assert.Equal(t, Score(300), Knight.Value())
	assert.Equal(t, Score(320), Bishop.Value())
	assert.Equal(t, Score(500), Rook.Value())
	assert.Equal(t, Score(1000), Queen.Value())
	assert.Equal(t, Score(10000), King.Value())
}

func TestPstMirror(t *testing.T) {
	// black indexes the tables directly, white flips the rank
	for sq := SqA1; sq <= SqH8; sq++ {
		mirror := Square(uint8(sq) ^ 0b111_000)
		for piece := Pawn; piece <= King; piece++ {
			assert.Equal(t, Pst(piece, true, sq), Pst(piece, false, mirror))
		}
	}

	// spot checks against the pawn table
	assert.Equal(t, Score(-15), Pst(Pawn, true, SqE2))
	assert.Equal(t, Score(-15), Pst(Pawn, false, SqE7))
	assert.Equal(t, Score(50), Pst(Pawn, true, SqD8))
	assert.Equal(t, Score(0), Pst(Queen, true, SqD4))
	assert.Equal(t, Score(0), Pst(King, false, SqE8))
}
