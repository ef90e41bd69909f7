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

// applies a sequence of long algebraic moves to the position
func playMoves(t *testing.T, p *Position, moves ...string) {
	for _, alg := range moves {
		m, err := MoveFromAlgebraic(p, alg)
		require.NoError(t, err, "move %s", alg)
		require.True(t, p.MoveIsPseudoLegal(m), "move %s not pseudo legal on %s", alg, p.StringFen())
		require.True(t, p.MoveIsLegal(m), "move %s not legal on %s", alg, p.StringFen())
		p.MakeMove(m)
	}
}

func TestStartPositionFromFen(t *testing.T) {
	p, err := NewPositionFen(StartFen)
	require.NoError(t, err)

	assert.True(t, p.WhiteToMove())
	assert.Equal(t, 1, p.Fullmove())
	assert.Equal(t, uint8(0), p.Details().Halfmove)
	assert.Equal(t, EnPassantNone, p.Details().EnPassant)
	assert.Equal(t, CastleAll, p.Details().Castling)

	assert.Equal(t, 32, p.AllPieces().PopCount())
	assert.Equal(t, 16, p.WhitePieces().PopCount())
	assert.Equal(t, 16, p.BlackPieces().PopCount())
	assert.Equal(t, 16, p.Pawns().PopCount())
	assert.Equal(t, SqE1, p.KingSq(true))
	assert.Equal(t, SqE8, p.KingSq(false))

	// all piece bitboards or-ed together are all pieces and each side
	// has exactly one king
	all := p.Pawns() | p.Knights() | p.Bishops() | p.Rooks() | p.Queens() | p.Kings()
	assert.Equal(t, p.AllPieces(), all)
	assert.Equal(t, 1, (p.Kings() & p.WhitePieces()).PopCount())
	assert.Equal(t, 1, (p.Kings() & p.BlackPieces()).PopCount())

	// fen round trip
	assert.Equal(t, StartFen, p.StringFen())

	// NewPosition() without argument is the start position
	assert.Equal(t, StartFen, NewPosition().StringFen())
}

func TestFenErrors(t *testing.T) {
	tests := []struct {
		fen   string
		field string
	}{
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", "fen"},
		{"rnbqkbnr/ppXppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", "board"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -", "side"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KXkq -", "castling"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq i6", "en-passant"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e3", "en-passant"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x", "halfmove"},
	}
	for _, test := range tests {
		_, err := NewPositionFen(test.fen)
		require.Error(t, err, "fen %s", test.fen)
		parseErr, ok := err.(*ParseError)
		require.True(t, ok)
		assert.Equal(t, test.field, parseErr.Field)
	}

	// halfmove and fullmove are optional
	p, err := NewPositionFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	require.NoError(t, err)
	assert.Equal(t, uint8(0), p.Details().Halfmove)
	assert.Equal(t, 1, p.Fullmove())
}

func TestMakeMovePawnDouble(t *testing.T) {
	p := NewPosition()
	playMoves(t, p, "e2e4")

	assert.False(t, p.WhiteToMove())
	assert.Equal(t, uint8(0), p.Details().Halfmove)
	// no enemy pawn is placed to capture on e3 so the en passant file
	// is not set
	assert.Equal(t, EnPassantNone, p.Details().EnPassant)
	assert.Equal(t, 1, p.Fullmove())
	assert.True(t, p.Pawns().Has(SqE4))
	assert.False(t, p.Pawns().Has(SqE2))
	assert.True(t, p.ColorBb().Has(SqE4))
}

func TestEnPassantOnlyWhenCapturable(t *testing.T) {
	p := NewPosition()

	// after e4, a6, e5 the black d-pawn double step lands next to the
	// white e5 pawn - only now the en passant file is set
	playMoves(t, p, "e2e4", "a7a6", "e4e5", "d7d5")
	assert.Equal(t, uint8(FileD), p.Details().EnPassant)

	// the white pawn can capture en passant
	m, err := MoveFromAlgebraic(p, "e5d6")
	require.NoError(t, err)
	assert.True(t, m.EnPassant)
	assert.Equal(t, Pawn, m.Captured)
	assert.True(t, p.MoveIsPseudoLegal(m))
	assert.True(t, p.MoveIsLegal(m))

	details := p.Details()
	p.MakeMove(m)
	assert.True(t, p.Pawns().Has(SqD6))
	assert.False(t, p.Pawns().Has(SqD5))
	assert.False(t, p.Pawns().Has(SqE5))
	p.UnmakeMove(m, details)
	assert.True(t, p.Pawns().Has(SqD5))
	assert.True(t, p.Pawns().Has(SqE5))
}

func TestEnPassantClearedAfterReply(t *testing.T) {
	p := NewPosition()
	playMoves(t, p, "e2e4", "a7a6", "e4e5", "d7d5", "b1c3")
	assert.Equal(t, EnPassantNone, p.Details().EnPassant)
}

func TestHalfmoveClock(t *testing.T) {
	p := NewPosition()
	playMoves(t, p, "g1f3", "g8f6")
	assert.Equal(t, uint8(2), p.Details().Halfmove)

	// pawn move resets
	playMoves(t, p, "d2d4")
	assert.Equal(t, uint8(0), p.Details().Halfmove)

	playMoves(t, p, "b8c6", "f3e5")
	assert.Equal(t, uint8(2), p.Details().Halfmove)

	// capture resets
	playMoves(t, p, "c6e5")
	assert.Equal(t, uint8(0), p.Details().Halfmove)
}

func TestCastlingRights(t *testing.T) {
	p := NewPosition()
	playMoves(t, p, "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6")

	// white castles kingside
	m, err := MoveFromAlgebraic(p, "e1g1")
	require.NoError(t, err)
	require.True(t, p.MoveIsPseudoLegal(m))
	require.True(t, p.MoveIsLegal(m))

	details := p.Details()
	p.MakeMove(m)
	assert.True(t, p.Kings().Has(SqG1))
	assert.True(t, p.Rooks().Has(SqF1))
	assert.False(t, p.Rooks().Has(SqH1))
	assert.Equal(t, uint8(0), p.Details().Castling&(CastleWhiteKside|CastleWhiteQside))
	assert.Equal(t, CastleBlackKside|CastleBlackQside, p.Details().Castling)

	p.UnmakeMove(m, details)
	assert.True(t, p.Kings().Has(SqE1))
	assert.True(t, p.Rooks().Has(SqH1))
	assert.Equal(t, CastleAll, p.Details().Castling)
}

func TestRookMoveClearsCastlingRight(t *testing.T) {
	p := NewPosition()
	playMoves(t, p, "h2h4", "a7a5", "h1h3")
	assert.Equal(t, uint8(0), p.Details().Castling&CastleWhiteKside)
	assert.NotEqual(t, uint8(0), p.Details().Castling&CastleWhiteQside)

	playMoves(t, p, "a8a6")
	assert.Equal(t, uint8(0), p.Details().Castling&CastleBlackQside)
	assert.NotEqual(t, uint8(0), p.Details().Castling&CastleBlackKside)
}

func TestCastlingThroughAttackedSquareIsIllegal(t *testing.T) {
	// black rook on f8 attacks f1 - white may not castle kingside
	p, err := NewPositionFen("4kr2/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)

	m := Move{From: SqE1, To: SqG1, Piece: King, Captured: PieceNone, Promoted: PieceNone}
	assert.True(t, p.MoveIsPseudoLegal(m))
	assert.False(t, p.MoveIsLegal(m))

	// rook on g8 attacks only the destination - also illegal
	p, err = NewPositionFen("4k1r1/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	assert.False(t, p.MoveIsLegal(m))

	// rook on h8 attacks neither e1, f1 nor g1 - legal
	p, err = NewPositionFen("4k2r/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	assert.True(t, p.MoveIsLegal(m))
}

func TestPinnedPieceMoveIsIllegal(t *testing.T) {
	// the white knight on e4 is pinned against the king by the rook e8
	p, err := NewPositionFen("4r1k1/8/8/8/4N3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	pinned := Move{From: SqE4, To: SqC5, Piece: Knight, Captured: PieceNone, Promoted: PieceNone}
	assert.True(t, p.MoveIsPseudoLegal(pinned))
	assert.False(t, p.MoveIsLegal(pinned))

	// king steps aside - legal
	kingMove := Move{From: SqE1, To: SqD1, Piece: King, Captured: PieceNone, Promoted: PieceNone}
	assert.True(t, p.MoveIsLegal(kingMove))
}

func TestInCheckAndCheckers(t *testing.T) {
	p, err := NewPositionFen("4k3/8/8/8/8/3n4/5q2/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.True(t, p.InCheck())
	checkers := p.Checkers()
	assert.Equal(t, 2, checkers.PopCount())
	assert.True(t, checkers.Has(SqD3))
	assert.True(t, checkers.Has(SqF2))

	start := NewPosition()
	assert.False(t, start.InCheck())
	assert.Equal(t, BbZero, start.Checkers())
}

func TestMoveWillCheck(t *testing.T) {
	p2, err := NewPositionFen("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)

	check := Move{From: SqA1, To: SqA8, Piece: Rook, Captured: PieceNone, Promoted: PieceNone}
	noCheck := Move{From: SqA1, To: SqB1, Piece: Rook, Captured: PieceNone, Promoted: PieceNone}
	assert.True(t, p2.MoveWillCheck(check))
	assert.False(t, p2.MoveWillCheck(noCheck))

	// discovered check: the bishop moves away and reveals the rook
	p3, err := NewPositionFen("4k3/8/8/8/8/4B3/8/4RK2 w - - 0 1")
	require.NoError(t, err)
	reveal := Move{From: SqE3, To: SqD4, Piece: Bishop, Captured: PieceNone, Promoted: PieceNone}
	assert.True(t, p3.MoveWillCheck(reveal))

	// promotion gives check
	p4, err := NewPositionFen("4k3/6P1/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	promo := Move{From: SqG7, To: SqG8, Piece: Pawn, Captured: PieceNone, Promoted: Queen}
	assert.True(t, p4.MoveWillCheck(promo))
	promoKnight := Move{From: SqG7, To: SqG8, Piece: Pawn, Captured: PieceNone, Promoted: Knight}
	assert.False(t, p4.MoveWillCheck(promoKnight))
}

func TestMakeUnmakeRestoresPosition(t *testing.T) {
	p := NewPosition()

	moves := []string{
		"e2e4", "a7a6", "e4e5", "d7d5", "e5d6", "c7d6",
		"g1f3", "b8c6", "f1e2", "g8f6", "e1g1", "d6d5",
		"d2d4", "c8g4", "b1c3", "e7e6", "c1e3", "f8b4",
	}

	type snapshot struct {
		fen     string
		details IrreversibleDetails
		move    Move
	}
	var stack []snapshot

	for _, alg := range moves {
		m, err := MoveFromAlgebraic(p, alg)
		require.NoError(t, err)
		require.True(t, p.MoveIsLegal(m), "move %s on %s", alg, p.StringFen())
		stack = append(stack, snapshot{fen: p.StringFen(), details: p.Details(), move: m})
		p.MakeMove(m)

		// aggregate invariants hold after every make
		all := p.Pawns() | p.Knights() | p.Bishops() | p.Rooks() | p.Queens() | p.Kings()
		require.Equal(t, p.AllPieces(), all)
		require.Equal(t, p.AllPieces()&p.ColorBb(), p.WhitePieces())
		require.Equal(t, p.AllPieces()&^p.ColorBb(), p.BlackPieces())
		require.Equal(t, 1, (p.Kings() & p.WhitePieces()).PopCount())
		require.Equal(t, 1, (p.Kings() & p.BlackPieces()).PopCount())
	}

	for i := len(stack) - 1; i >= 0; i-- {
		p.UnmakeMove(stack[i].move, stack[i].details)
		require.Equal(t, stack[i].fen, p.StringFen())
	}

	assert.Equal(t, StartFen, p.StringFen())
}

func TestNullmove(t *testing.T) {
	p := NewPosition()
	playMoves(t, p, "e2e4", "a7a6", "e4e5", "d7d5")
	require.Equal(t, uint8(FileD), p.Details().EnPassant)

	fenBefore := p.StringFen()
	details := p.Details()

	p.MakeNullmove()
	assert.False(t, p.WhiteToMove())
	assert.Equal(t, EnPassantNone, p.Details().EnPassant)
	assert.Equal(t, details.Halfmove+1, p.Details().Halfmove)

	p.UnmakeNullmove(details)
	assert.Equal(t, fenBefore, p.StringFen())
}

func TestMoveIsPseudoLegal(t *testing.T) {
	p := NewPosition()

	tests := []struct {
		move     Move
		expected bool
	}{
		// legal pawn single and double step
		{Move{From: SqE2, To: SqE3, Piece: Pawn, Captured: PieceNone, Promoted: PieceNone}, true},
		{Move{From: SqE2, To: SqE4, Piece: Pawn, Captured: PieceNone, Promoted: PieceNone}, true},
		// pawn cannot jump three squares
		{Move{From: SqE2, To: SqE5, Piece: Pawn, Captured: PieceNone, Promoted: PieceNone}, false},
		// no capture available on d3
		{Move{From: SqE2, To: SqD3, Piece: Pawn, Captured: Pawn, Promoted: PieceNone}, false},
		// knight moves
		{Move{From: SqG1, To: SqF3, Piece: Knight, Captured: PieceNone, Promoted: PieceNone}, true},
		{Move{From: SqG1, To: SqG3, Piece: Knight, Captured: PieceNone, Promoted: PieceNone}, false},
		// wrong piece on from square
		{Move{From: SqE2, To: SqE3, Piece: Knight, Captured: PieceNone, Promoted: PieceNone}, false},
		// blocked sliders
		{Move{From: SqA1, To: SqA3, Piece: Rook, Captured: PieceNone, Promoted: PieceNone}, false},
		{Move{From: SqF1, To: SqC4, Piece: Bishop, Captured: PieceNone, Promoted: PieceNone}, false},
		// target occupied by own piece
		{Move{From: SqA1, To: SqA2, Piece: Rook, Captured: PieceNone, Promoted: PieceNone}, false},
		// castling with blocked squares
		{Move{From: SqE1, To: SqG1, Piece: King, Captured: PieceNone, Promoted: PieceNone}, false},
	}
	for i, test := range tests {
		assert.Equal(t, test.expected, p.MoveIsPseudoLegal(test.move), "test %d: %s", i, test.move.String())
	}

	// black to move - white moves are not pseudo legal
	playMoves(t, p, "e2e4")
	assert.False(t, p.MoveIsPseudoLegal(Move{From: SqD2, To: SqD4, Piece: Pawn, Captured: PieceNone, Promoted: PieceNone}))
	assert.True(t, p.MoveIsPseudoLegal(Move{From: SqD7, To: SqD5, Piece: Pawn, Captured: PieceNone, Promoted: PieceNone}))

	// double step over an occupied intermediate square is not pseudo legal
	p2, err := NewPositionFen("4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, p2.MoveIsPseudoLegal(Move{From: SqE2, To: SqE4, Piece: Pawn, Captured: PieceNone, Promoted: PieceNone}))
}

func TestMoveFromAlgebraicErrors(t *testing.T) {
	p := NewPosition()

	tests := []string{
		"",       // empty
		"e2",     // too short
		"e2e4qq", // too long
		"i2i4",   // invalid file
		"e9e4",   // invalid rank
		"e4e5",   // no piece on from square
		"e7e8x",  // invalid promotion piece
	}
	for _, alg := range tests {
		_, err := MoveFromAlgebraic(p, alg)
		assert.Error(t, err, "notation %q", alg)
	}

	// promotions decode the promoted piece
	promo, err := NewPositionFen("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	require.NoError(t, err)
	m, err := MoveFromAlgebraic(promo, "a7a8q")
	require.NoError(t, err)
	assert.Equal(t, Queen, m.Promoted)
	assert.Equal(t, Pawn, m.Piece)
}

func TestPromotion(t *testing.T) {
	p, err := NewPositionFen("8/P6k/8/8/8/8/7K/8 w - - 0 1")
	require.NoError(t, err)

	m, err := MoveFromAlgebraic(p, "a7a8q")
	require.NoError(t, err)
	require.True(t, p.MoveIsPseudoLegal(m))
	require.True(t, p.MoveIsLegal(m))

	details := p.Details()
	fen := p.StringFen()
	p.MakeMove(m)
	assert.True(t, p.Queens().Has(SqA8))
	assert.Equal(t, 0, p.Pawns().PopCount())
	p.UnmakeMove(m, details)
	assert.Equal(t, fen, p.StringFen())
}
