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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/RenWild/asymptote/internal/types"
)

func seeOf(t *testing.T, fen string, alg string) Score {
	p, err := NewPositionFen(fen)
	require.NoError(t, err)
	m, err := MoveFromAlgebraic(p, alg)
	require.NoError(t, err)
	require.True(t, p.MoveIsPseudoLegal(m), "%s on %s", alg, fen)
	return p.See(m)
}

func TestSeeSimplePawnWinsPawn(t *testing.T) {
	// pawn takes pawn, no recapture available
	see := seeOf(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4d5")
	assert.Equal(t, Score(100), see)
}

func TestSeeDefendedPawn(t *testing.T) {
	// pawn takes pawn, pawn recaptures - even trade
	see := seeOf(t, "4k3/8/2p5/3p4/4P3/8/8/4K3 w - - 0 1", "e4d5")
	assert.Equal(t, Score(0), see)

	// knight takes a pawn defended by a pawn - loses the knight
	see = seeOf(t, "4k3/8/2p5/3p4/8/4N3/8/4K3 w - - 0 1", "e3d5")
	assert.Equal(t, Score(100-300), see)
}

func TestSeeQueenTakesDefendedRook(t *testing.T) {
	// queen takes rook, rook recaptures: +500 - 1000
	see := seeOf(t, "4k3/8/8/3r4/8/3r4/3Q4/4K3 w - - 0 1", "d2d3")
	assert.Equal(t, Score(500-1000), see)
}

func TestSeeXrayAttackers(t *testing.T) {
	// white rook takes the pawn on d5, the second white rook behind it
	// backs up the capture against the rook on d8:
	// Rxd5 Rxd5 Rxd5 wins a pawn and a rook for a rook
	see := seeOf(t, "3rk3/8/8/3p4/8/8/3R4/3RK3 w - - 0 1", "d2d5")
	assert.Equal(t, Score(100+500-500), see)
}

func TestSeeEqualExchangeSequence(t *testing.T) {
	// knight takes pawn, defended by a knight, backed up by our bishop:
	// Nxd5 Nxd5 Bxd5 nets a pawn
	see := seeOf(t, "4k3/8/5n2/3p4/8/4N3/6B1/4K3 w - - 0 1", "e3d5")
	assert.Equal(t, Score(100), see)
}

func TestSeeNonCaptureDefendedSquare(t *testing.T) {
	// moving a knight to a square attacked by a pawn loses the knight
	see := seeOf(t, "4k3/8/2p5/8/3N4/8/8/4K3 w - - 0 1", "d4b5")
	assert.Equal(t, Score(-300), see)

	// moving to a safe square is neutral
	see = seeOf(t, "4k3/8/2p5/8/3N4/8/8/4K3 w - - 0 1", "d4f3")
	assert.Equal(t, Score(0), see)
}

func TestSeeConsistency(t *testing.T) {
	// see(m) equals captured value (plus promotion delta) minus the
	// best continuation of the opponent on the target square
	p, err := NewPositionFen("4k3/8/2p5/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	m, err := MoveFromAlgebraic(p, "e4d5")
	require.NoError(t, err)

	allowed := p.AllPieces() ^ m.From.Bb()
	response := p.seeSquare(m.To, Pawn, allowed, false)
	assert.Equal(t, Pawn.Value()-response, p.See(m))
}
