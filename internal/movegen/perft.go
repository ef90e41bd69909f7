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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/RenWild/asymptote/internal/moveslice"
	"github.com/RenWild/asymptote/internal/position"
	. "github.com/RenWild/asymptote/internal/types"
)

var out = message.NewPrinter(language.German)

// Perft is a class to test the move generation of the chess engine.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates a new empty Perft instance
func NewPerft() *Perft {
	return &Perft{}
}

// Stop can be used when perft has been started in a goroutine to
// stop the currently running perft test
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// Perft counts the leaf nodes of the legal move tree of the position
// to the given depth. The node counter and the leaf statistics counters
// (captures, en passant, promotions, castles, checks) are updated.
func (perft *Perft) Perft(p *position.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	perft.resetCounter()
	mg := NewMoveGen()
	buffers := make([]*moveslice.MoveSlice, depth+1)
	for i := 0; i <= depth; i++ {
		buffers[i] = moveslice.NewMoveSlice(AllMovesCap)
	}
	perft.Nodes = perft.miniMax(depth, p, mg, buffers)
	return perft.Nodes
}

// StartPerft runs a perft test on the given fen printing the node
// counts and statistics for the given depth.
// If this has been started in a go routine it can be stopped via Stop()
func (perft *Perft) StartPerft(fen string, depth int, printStats bool) {
	perft.stopFlag = false
	perft.resetCounter()

	// set 1 as minimum
	if depth <= 0 {
		depth = 1
	}

	p, err := position.NewPositionFen(fen)
	if err != nil {
		out.Printf("Perft aborted. Invalid fen: %s\n", fen)
		return
	}

	mg := NewMoveGen()
	buffers := make([]*moveslice.MoveSlice, depth+1)
	for i := 0; i <= depth; i++ {
		buffers[i] = moveslice.NewMoveSlice(AllMovesCap)
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := perft.miniMax(depth, p, mg, buffers)
	elapsed := time.Since(start)

	if perft.stopFlag {
		out.Print("Perft stopped\n")
		return
	}

	perft.Nodes = result

	out.Printf("Time         : %d ms\n", elapsed.Milliseconds())
	out.Printf("NPS          : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	if printStats {
		out.Printf("   Captures  : %d\n", perft.CaptureCounter)
		out.Printf("   EnPassant : %d\n", perft.EnpassantCounter)
		out.Printf("   Checks    : %d\n", perft.CheckCounter)
		out.Printf("   Castles   : %d\n", perft.CastleCounter)
		out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	}
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

func (perft *Perft) miniMax(depth int, p *position.Position, mg *Movegen, buffers []*moveslice.MoveSlice) uint64 {
	totalNodes := uint64(0)

	moves := buffers[depth]
	mg.AllMoves(p, moves)

	for i := 0; i < moves.Len(); i++ {
		if perft.stopFlag {
			return 0
		}
		m := moves.At(i)
		if !p.MoveIsLegal(m) {
			continue
		}
		if depth > 1 {
			details := p.Details()
			p.MakeMove(m)
			totalNodes += perft.miniMax(depth-1, p, mg, buffers)
			p.UnmakeMove(m, details)
		} else {
			totalNodes++
			if m.Captured != PieceNone {
				perft.CaptureCounter++
				if m.EnPassant {
					perft.EnpassantCounter++
				}
			}
			if m.Promoted != PieceNone {
				perft.PromotionCounter++
			}
			if m.Piece == King && (m.IsKingsideCastle() || m.IsQueensideCastle()) {
				perft.CastleCounter++
			}
			if p.MoveWillCheck(m) {
				perft.CheckCounter++
			}
		}
	}

	return totalNodes
}

func (perft *Perft) resetCounter() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CaptureCounter = 0
	perft.EnpassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
}
