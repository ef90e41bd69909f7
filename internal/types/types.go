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

// Package types contains the user defined data types and the pre
// computed tables the chess engine core is built from: bitboards,
// squares, pieces, moves, magic attack tables and piece square tables.
// Many of these would be perfect enum candidates but GO does not
// provide enums.
package types

var initialized = false

// init initializes the pre computed data structures (bitboards, magic
// attack tables). It is called automatically when
// the package is loaded and keeps an initialized flag to avoid
// multiple executions. All tables are immutable afterwards and may be
// shared read-only across threads.
func init() {
	if initialized {
		return
	}
	initBb()
	initMagics()
	initialized = true
}

const (
	// SqLength number of squares on a board
	SqLength int = 64

	// AllMovesCap is the recommended capacity for reusable buffers
	// holding all moves of a position
	AllMovesCap = 128

	// CapturesCap is the recommended capacity for reusable buffers
	// holding the captures of a position
	CapturesCap = 64

	// GamePhaseMax is the maximum game phase value. The game phase is
	// the sum of the non pawn material units of both sides weighted
	// with N=3, B=3, R=5, Q=9
	GamePhaseMax = 62
)

// ColorIndex maps a side given as "is white" to the index used in all
// per-side arrays. Index 1 is white, index 0 is black.
func ColorIndex(white bool) int {
	if white {
		return 1
	}
	return 0
}
