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

// Package history provides the history heuristic table the search
// uses for move sorting: a side x from x to counter table with a
// quadratic depth bonus and automatic rescaling.
package history

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/RenWild/asymptote/internal/types"
)

var out = message.NewPrinter(language.German)

// History is a side x from-square x to-square counter table updated
// by the search on beta cutoffs.
type History struct {
	fromTo [2][SqLength][SqLength]int32
}

// NewHistory creates a new empty History instance.
func NewHistory() *History {
	return &History{}
}

// Score reads the history counter for the move of the given side.
func (h *History) Score(white bool, m Move) int32 {
	return h.fromTo[ColorIndex(white)][m.From][m.To]
}

// Increase adds depth squared to the counter of the move. When any
// counter exceeds the Score range every entry of the table is divided
// by 4.
func (h *History) Increase(white bool, m Move, depth int) {
	d := int32(depth)
	entry := &h.fromTo[ColorIndex(white)][m.From][m.To]
	*entry += d * d
	if *entry <= math.MaxInt16 {
		return
	}

	for stm := 0; stm < 2; stm++ {
		for from := 0; from < SqLength; from++ {
			for to := 0; to < SqLength; to++ {
				h.fromTo[stm][from][to] /= 4
			}
		}
	}
}

// String returns a dump of all non zero counters. Only used for
// debugging.
func (h *History) String() string {
	sb := strings.Builder{}
	for from := SqA1; from <= SqH8; from++ {
		for to := SqA1; to <= SqH8; to++ {
			w := h.fromTo[1][from][to]
			b := h.fromTo[0][from][to]
			if w == 0 && b == 0 {
				continue
			}
			sb.WriteString(out.Sprintf("Move=%s%s: w=%-7d b=%-7d\n", from.String(), to.String(), w, b))
		}
	}
	return sb.String()
}
