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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RenWild/asymptote/internal/position"
)

// The standard leaf counts from the start position.
// https://www.chessprogramming.org/Perft_Results
var startPositionResults = []uint64{1, 20, 400, 8_902, 197_281, 4_865_609}

func TestPerftStartPosition(t *testing.T) {
	maxDepth := 4
	if !testing.Short() {
		maxDepth = 5
	}
	for depth := 1; depth <= maxDepth; depth++ {
		p := position.NewPosition()
		perft := NewPerft()
		nodes := perft.Perft(p, depth)
		assert.Equal(t, startPositionResults[depth], nodes, "depth %d", depth)
		// the position is restored after the run
		assert.Equal(t, position.StartFen, p.StringFen())
	}
}

func TestPerftKiwipete(t *testing.T) {
	// position 2 from the chessprogramming wiki exercises castling,
	// en passant and promotions early
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	expected := []uint64{1, 48, 2_039, 97_862}

	maxDepth := 3
	for depth := 1; depth <= maxDepth; depth++ {
		p, err := position.NewPositionFen(fen)
		require.NoError(t, err)
		perft := NewPerft()
		assert.Equal(t, expected[depth], perft.Perft(p, depth), "depth %d", depth)
	}
}

func TestPerftPosition3(t *testing.T) {
	// position 3 from the chessprogramming wiki - many en passant and
	// pinned pawn edge cases
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	expected := []uint64{1, 14, 191, 2_812, 43_238}

	for depth := 1; depth <= 4; depth++ {
		p, err := position.NewPositionFen(fen)
		require.NoError(t, err)
		perft := NewPerft()
		assert.Equal(t, expected[depth], perft.Perft(p, depth), "depth %d", depth)
	}
}

func TestPerftPromotionPosition(t *testing.T) {
	// promotion heavy position
	fen := "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1"
	expected := []uint64{1, 24, 496, 9_483}

	for depth := 1; depth <= 3; depth++ {
		p, err := position.NewPositionFen(fen)
		require.NoError(t, err)
		perft := NewPerft()
		assert.Equal(t, expected[depth], perft.Perft(p, depth), "depth %d", depth)
	}
}
