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

// Package hash maintains the incrementally updated Zobrist hash of a
// position. Every XOR the position performs on its bitboards has a
// mirror XOR into the hash. A separate pawn-only key is maintained the
// same way and feeds the pawn evaluation cache.
//
// The hasher is driven in lockstep with the position: call
// Hasher.MakeMove / Hasher.UnmakeMove immediately BEFORE the
// corresponding Position call - the hasher reads the pre-call state of
// the position.
package hash

import (
	"github.com/RenWild/asymptote/internal/position"
	. "github.com/RenWild/asymptote/internal/types"
)

// Key is a 64-bit Zobrist hash value.
type Key uint64

// DefaultSeed is the seed used by NewHasher. Tests rely on the
// resulting key tables being stable across runs and implementations.
var DefaultSeed = [32]byte{
	1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233,
	1, 2, 4, 8, 16, 32, 64, 128,
	1, 2, 6, 24, 120,
	2, 3, 5, 7, 11, 13,
}

// Hasher holds the fixed random key tables and the incrementally
// maintained hash of the driven position. Not safe for concurrent use.
type Hasher struct {
	color   [SqLength]Key
	pawns   [SqLength]Key
	knights [SqLength]Key
	bishops [SqLength]Key
	rooks   [SqLength]Key
	queens  [SqLength]Key
	kings   [SqLength]Key

	whiteToMove Key
	enPassant   [8]Key
	castle      [16]Key

	hash    Key
	pawnKey Key
}

// NewHasher creates a Hasher with key tables generated from the
// default seed.
func NewHasher() *Hasher {
	return NewHasherFromSeed(DefaultSeed)
}

// NewHasherFromSeed creates a Hasher with key tables generated from
// the given 32-byte seed using a reproducible PRNG. Equal seeds
// produce equal key tables.
func NewHasherFromSeed(seed [32]byte) *Hasher {
	rng := newRandom(seed)
	h := &Hasher{}
	rng.fill(h.color[:])
	rng.fill(h.pawns[:])
	rng.fill(h.knights[:])
	rng.fill(h.bishops[:])
	rng.fill(h.rooks[:])
	rng.fill(h.queens[:])
	rng.fill(h.kings[:])
	h.whiteToMove = Key(rng.rand64())
	rng.fill(h.enPassant[:])
	rng.fill(h.castle[:])
	return h
}

// Hash returns the current hash of the driven position.
func (h *Hasher) Hash() Key {
	return h.hash
}

// PawnKey returns the current pawn-only hash of the driven position.
// It changes only on pawn moves, pawn captures, promotions and en
// passant removals.
func (h *Hasher) PawnKey() Key {
	return h.pawnKey
}

// pieceKeys maps a piece type to its key table.
func (h *Hasher) pieceKeys(p Piece) *[SqLength]Key {
	switch p {
	case Pawn:
		return &h.pawns
	case Knight:
		return &h.knights
	case Bishop:
		return &h.bishops
	case Rook:
		return &h.rooks
	case Queen:
		return &h.queens
	case King:
		return &h.kings
	}
	panic("pieceKeys called with invalid piece " + p.String())
}

// MakeMove mirrors Position.MakeMove on the hash. Must be called
// immediately before the position applies the move.
func (h *Hasher) MakeMove(pos *position.Position, m Move) {
	wtm := pos.WhiteToMove()
	details := pos.Details()

	rank2 := Rank2_Bb
	rank4 := Rank4_Bb
	if !wtm {
		rank2 = Rank7_Bb
		rank4 = Rank5_Bb
	}

	// en passant file out and - if the move creates one - in again.
	// This mirrors the position's en passant rule exactly: the file is
	// only set when an enemy pawn is placed to capture.
	if details.EnPassant != position.EnPassantNone {
		h.hash ^= h.enPassant[details.EnPassant]
	}
	theirPawns := pos.Them(wtm) & pos.Pawns()
	if pos.Pawns()&rank2&m.From.Bb() != 0 &&
		rank4&m.To.Bb() != 0 &&
		(theirPawns.Left(1)|theirPawns.Right(1))&m.To.Bb() != 0 {
		h.hash ^= h.enPassant[m.From.FileOf()]
	}

	castling := details.Castling
	h.hash ^= h.castle[castling]

	// captured piece out
	if m.Captured != PieceNone {
		if m.EnPassant {
			capSq := m.To.Backward(wtm, 1)
			h.hash ^= h.pawns[capSq]
			h.pawnKey ^= h.pawns[capSq]
			if !wtm {
				h.hash ^= h.color[capSq]
				h.pawnKey ^= h.color[capSq]
			}
		} else {
			h.hash ^= h.pieceKeys(m.Captured)[m.To]
			if m.Captured == Pawn {
				h.pawnKey ^= h.pawns[m.To]
				if !wtm {
					h.pawnKey ^= h.color[m.To]
				}
			}
		}
	}

	// moving piece out of from and into to
	switch m.Piece {
	case Pawn:
		h.hash ^= h.pawns[m.From]
		h.pawnKey ^= h.pawns[m.From]
		if wtm {
			h.pawnKey ^= h.color[m.From]
		}
		if m.Promoted != PieceNone {
			h.hash ^= h.pieceKeys(m.Promoted)[m.To]
		} else {
			h.hash ^= h.pawns[m.To]
			h.pawnKey ^= h.pawns[m.To]
			if wtm {
				h.pawnKey ^= h.color[m.To]
			}
		}
	case King:
		if m.To == m.From.Right(2) {
			// castle kingside
			h.hash ^= h.rooks[m.To.Right(1)]
			h.hash ^= h.rooks[m.To.Left(1)]
			if wtm {
				h.hash ^= h.color[m.To.Right(1)]
				h.hash ^= h.color[m.To.Left(1)]
			}
		} else if m.From == m.To.Right(2) {
			// castle queenside
			h.hash ^= h.rooks[m.To.Left(2)]
			h.hash ^= h.rooks[m.To.Right(1)]
			if wtm {
				h.hash ^= h.color[m.To.Left(2)]
				h.hash ^= h.color[m.To.Right(1)]
			}
		}

		h.hash ^= h.kings[m.From]
		h.hash ^= h.kings[m.To]

		if wtm {
			castling &= position.CastleBlackKside | position.CastleBlackQside
		} else {
			castling &= position.CastleWhiteKside | position.CastleWhiteQside
		}
	default:
		keys := h.pieceKeys(m.Piece)
		h.hash ^= keys[m.From]
		h.hash ^= keys[m.To]
	}

	if m.From == SqA1 || m.To == SqA1 {
		castling &^= position.CastleWhiteQside
	}
	if m.From == SqH1 || m.To == SqH1 {
		castling &^= position.CastleWhiteKside
	}
	if m.From == SqA8 || m.To == SqA8 {
		castling &^= position.CastleBlackQside
	}
	if m.From == SqH8 || m.To == SqH8 {
		castling &^= position.CastleBlackKside
	}

	// any white piece square changing occupancy mirrors into the color
	// keys. For a black mover only a captured white piece changes a
	// white square.
	if wtm {
		h.hash ^= h.color[m.To]
		h.hash ^= h.color[m.From]
	} else if pos.ColorBb().Has(m.To) {
		h.hash ^= h.color[m.To]
	}

	h.hash ^= h.castle[castling]
	h.hash ^= h.whiteToMove
}

// UnmakeMove mirrors Position.UnmakeMove on the hash. Must be called
// immediately before the position unmakes the move - the position is
// still in its post-move state.
func (h *Hasher) UnmakeMove(pos *position.Position, m Move, details position.IrreversibleDetails) {
	h.hash ^= h.whiteToMove

	current := pos.Details()
	if current.EnPassant != position.EnPassantNone {
		h.hash ^= h.enPassant[current.EnPassant]
	}
	if details.EnPassant != position.EnPassantNone {
		h.hash ^= h.enPassant[details.EnPassant]
	}
	h.hash ^= h.castle[current.Castling]
	h.hash ^= h.castle[details.Castling]

	unmakingWhite := !pos.WhiteToMove()

	if unmakingWhite {
		h.hash ^= h.color[m.From]
		h.hash ^= h.color[m.To]
	} else if pos.ColorBb().Has(m.From) {
		h.hash ^= h.color[m.From]
	}

	switch m.Piece {
	case Pawn:
		h.hash ^= h.pawns[m.From]
		h.pawnKey ^= h.pawns[m.From]
		if unmakingWhite {
			h.pawnKey ^= h.color[m.From]
		}
		if m.Promoted != PieceNone {
			h.hash ^= h.pieceKeys(m.Promoted)[m.To]
		} else {
			h.hash ^= h.pawns[m.To]
			h.pawnKey ^= h.pawns[m.To]
			if unmakingWhite {
				h.pawnKey ^= h.color[m.To]
			}
		}
	case King:
		h.hash ^= h.kings[m.To]
		h.hash ^= h.kings[m.From]

		if m.To == m.From.Right(2) {
			// castle kingside
			h.hash ^= h.rooks[m.To.Right(1)]
			h.hash ^= h.rooks[m.To.Left(1)]
			if unmakingWhite {
				h.hash ^= h.color[m.To.Right(1)]
				h.hash ^= h.color[m.To.Left(1)]
			}
		} else if m.From == m.To.Right(2) {
			// castle queenside
			h.hash ^= h.rooks[m.To.Left(2)]
			h.hash ^= h.rooks[m.To.Right(1)]
			if unmakingWhite {
				h.hash ^= h.color[m.To.Left(2)]
				h.hash ^= h.color[m.To.Right(1)]
			}
		}
	default:
		keys := h.pieceKeys(m.Piece)
		h.hash ^= keys[m.To]
		h.hash ^= keys[m.From]
	}

	if m.Captured != PieceNone {
		if m.EnPassant {
			capSq := m.To.Backward(unmakingWhite, 1)
			h.hash ^= h.pawns[capSq]
			h.pawnKey ^= h.pawns[capSq]
			if !unmakingWhite {
				h.hash ^= h.color[capSq]
				h.pawnKey ^= h.color[capSq]
			}
		} else {
			h.hash ^= h.pieceKeys(m.Captured)[m.To]
			if !unmakingWhite {
				h.hash ^= h.color[m.To]
			}
			if m.Captured == Pawn {
				h.pawnKey ^= h.pawns[m.To]
				if !unmakingWhite {
					h.pawnKey ^= h.color[m.To]
				}
			}
		}
	}
}

// MakeNullmove mirrors Position.MakeNullmove on the hash. Must be
// called before the position applies the null move.
func (h *Hasher) MakeNullmove(pos *position.Position) {
	h.hash ^= h.whiteToMove
	if pos.Details().EnPassant != position.EnPassantNone {
		h.hash ^= h.enPassant[pos.Details().EnPassant]
	}
}

// UnmakeNullmove mirrors Position.UnmakeNullmove on the hash. Must be
// called before the position unmakes the null move.
func (h *Hasher) UnmakeNullmove(pos *position.Position, details position.IrreversibleDetails) {
	h.hash ^= h.whiteToMove
	if pos.Details().EnPassant != position.EnPassantNone {
		h.hash ^= h.enPassant[pos.Details().EnPassant]
	}
	if details.EnPassant != position.EnPassantNone {
		h.hash ^= h.enPassant[details.EnPassant]
	}
	h.hash ^= h.castle[pos.Details().Castling]
	h.hash ^= h.castle[details.Castling]
}
