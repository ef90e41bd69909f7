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
	"strconv"

	"github.com/RenWild/asymptote/internal/util"
)

// Score represents the value of a chess position in centi pawns
// from the view of the side to move.
type Score = int16

// Constants for scores
const (
	// ScoreDraw is the score of a drawn position
	ScoreDraw Score = 0

	// MateScore is the sentinel for mate scores. The search adjusts
	// it by the ply the mate was found at.
	MateScore Score = 20000

	// evaluation material values (mid game == end game)
	PawnScore   Score = 100
	KnightScore Score = 300
	BishopScore Score = 320
	RookScore   Score = 500
	QueenScore  Score = 1000
)

// IsMateScore returns true if the score is in the range reserved
// for mate announcements.
func IsMateScore(s Score) bool {
	return util.Abs16(s) > MateScore-1000 && util.Abs16(s) <= MateScore
}

// ScoreString returns a human readable representation of a score
// as used by UCI front ends ("cp 13" or "mate 3").
func ScoreString(s Score) string {
	if IsMateScore(s) {
		plies := int(MateScore - util.Abs16(s))
		moves := (plies + 1) / 2
		if s < 0 {
			return "mate -" + strconv.Itoa(moves)
		}
		return "mate " + strconv.Itoa(moves)
	}
	return "cp " + strconv.Itoa(int(s))
}
