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

// Package position represents data structures and functions for a chess
// board and its position. It uses bitboards for the piece placement, a
// color bitboard for the side of each piece and keeps the irreversible
// details (castling rights, en passant file, halfmove clock) in a small
// value struct the search saves before a move and supplies back on
// unmake.
//
// Create a new instance with NewPosition() for the start position or
// NewPositionFen(fen) for an arbitrary position.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/RenWild/asymptote/internal/assert"
	myLogging "github.com/RenWild/asymptote/internal/logging"
	. "github.com/RenWild/asymptote/internal/types"
)

var log *logging.Logger

// StartFen is a string with the fen position for a standard chess game
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Castling right bits as stored in IrreversibleDetails.Castling
const (
	CastleWhiteKside uint8 = 0x1
	CastleWhiteQside uint8 = 0x2
	CastleBlackKside uint8 = 0x4
	CastleBlackQside uint8 = 0x8

	CastleAll = CastleWhiteKside | CastleWhiteQside | CastleBlackKside | CastleBlackQside
)

// EnPassantNone marks the absence of an en passant file in
// IrreversibleDetails.EnPassant.
const EnPassantNone uint8 = 255

// IrreversibleDetails holds the details of a position whose changes can
// not be undone easily and which are therefore kept in a stack of past
// values by the search.
type IrreversibleDetails struct {

	// Number of plies of both players since the last capture or pawn
	// move. Used for the 50 moves rule.
	Halfmove uint8

	// The file of the target square of a possible en passant capture.
	// EnPassantNone when no such capture is possible. The en passant
	// file is only set when an enemy pawn is placed to actually
	// capture en passant.
	EnPassant uint8

	// Possible castling moves for both sides.
	Castling uint8
}

// Position holds all information to completely describe a chess
// position. Not safe for concurrent use - every search thread must own
// its own instance.
type Position struct {

	// The color of the piece occupying the respective square, if any.
	// A set bit corresponds to the white side. Consumers must
	// intersect with allPieces before testing for black.
	color Bitboard

	// Bitboard of each piece type on the board, indexed by Piece.
	bb [PtLength]Bitboard

	// Bitboard of all pieces of a single color. [black, white].
	pieces [2]Bitboard

	// Whether it is white's turn to move.
	whiteToMove bool

	// Number of the current full move. Incremented after black moves.
	fullmove int

	// The irreversible details of this position.
	details IrreversibleDetails

	// A bitboard of all pieces on the board.
	allPieces Bitboard

	// The squares the [black, white] king is occupying. Could be
	// calculated from the bitboards but cached here for speed.
	kingSq [2]Square
}

// //////////////////////////////////////////////////////
// // Construction
// //////////////////////////////////////////////////////

// NewPosition creates a new position.
// When called without an argument the position will be the start
// position. When a fen string is given the position is set up from
// it; an invalid fen falls back to the start position and logs the
// error. Additional fens/strings are ignored.
func NewPosition(fen ...string) *Position {
	if len(fen) == 0 {
		p, _ := NewPositionFen(StartFen)
		return p
	}
	p, err := NewPositionFen(fen[0])
	if err != nil {
		p, _ = NewPositionFen(StartFen)
	}
	return p
}

// NewPositionFen creates a new position with the given fen string as
// board position. It returns nil and a ParseError if the fen was
// invalid.
func NewPositionFen(fen string) (*Position, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	p := &Position{}
	if err := p.setupBoard(fen); err != nil {
		log.Errorf("fen not valid, position can't be created: %s", err)
		return nil, err
	}
	return p, nil
}

// //////////////////////////////////////////////////////
// // Getters
// //////////////////////////////////////////////////////

// WhiteToMove returns true when it is white's turn to move
func (p *Position) WhiteToMove() bool { return p.whiteToMove }

// Fullmove returns the number of the current full move
func (p *Position) Fullmove() int { return p.fullmove }

// Details returns the irreversible details of the position. The
// search saves this before MakeMove and supplies it back to
// UnmakeMove.
func (p *Position) Details() IrreversibleDetails { return p.details }

// PieceBb returns the bitboard of the given piece type for both sides
func (p *Position) PieceBb(piece Piece) Bitboard { return p.bb[piece] }

// Pawns returns the bitboard of all pawns
func (p *Position) Pawns() Bitboard { return p.bb[Pawn] }

// Knights returns the bitboard of all knights
func (p *Position) Knights() Bitboard { return p.bb[Knight] }

// Bishops returns the bitboard of all bishops
func (p *Position) Bishops() Bitboard { return p.bb[Bishop] }

// Rooks returns the bitboard of all rooks
func (p *Position) Rooks() Bitboard { return p.bb[Rook] }

// Queens returns the bitboard of all queens
func (p *Position) Queens() Bitboard { return p.bb[Queen] }

// Kings returns the bitboard of both kings
func (p *Position) Kings() Bitboard { return p.bb[King] }

// AllPieces returns a bitboard of all pieces currently on the board
func (p *Position) AllPieces() Bitboard { return p.allPieces }

// ColorBb returns the color bitboard. A set bit is a square occupied
// by a white piece.
func (p *Position) ColorBb() Bitboard { return p.color }

// WhitePieces returns a bitboard of all white pieces
func (p *Position) WhitePieces() Bitboard { return p.pieces[1] }

// BlackPieces returns a bitboard of all black pieces
func (p *Position) BlackPieces() Bitboard { return p.pieces[0] }

// Us returns the pieces of the given side
func (p *Position) Us(white bool) Bitboard { return p.pieces[ColorIndex(white)] }

// Them returns the pieces of the opponent of the given side
func (p *Position) Them(white bool) Bitboard { return p.pieces[1-ColorIndex(white)] }

// KingSq returns the square the king of the given side occupies
func (p *Position) KingSq(white bool) Square { return p.kingSq[ColorIndex(white)] }

// FindPiece returns the piece type occupying the given square or
// PieceNone when the square is empty.
func (p *Position) FindPiece(sq Square) Piece {
	b := sq.Bb()
	switch {
	case p.bb[Pawn]&b != 0:
		return Pawn
	case p.bb[Knight]&b != 0:
		return Knight
	case p.bb[Bishop]&b != 0:
		return Bishop
	case p.bb[Rook]&b != 0:
		return Rook
	case p.bb[Queen]&b != 0:
		return Queen
	case p.bb[King]&b != 0:
		return King
	}
	return PieceNone
}

// Copy returns a deep copy of the position. A position holds no
// references so the value copy is complete.
func (p *Position) Copy() *Position {
	c := *p
	return &c
}

// //////////////////////////////////////////////////////
// // Make / Unmake
// //////////////////////////////////////////////////////

// MakeMove applies the move to the position. Due to performance there
// is no check if the move is legal or even pseudo legal on the current
// position - applying an illegal move produces undefined state.
// Callers filter with MoveIsLegal first.
func (p *Position) MakeMove(m Move) {
	if assert.DEBUG {
		assert.Assert(p.Us(p.whiteToMove).Has(m.From), "MakeMove: no own piece on from square %s", m.From.String())
		assert.Assert(p.FindPiece(m.From) == m.Piece, "MakeMove: piece mismatch for move %s", m.String())
	}

	them := p.Them(p.whiteToMove)
	rank2 := Rank2_Bb
	rank4 := Rank4_Bb
	if !p.whiteToMove {
		rank2 = Rank7_Bb
		rank4 = Rank5_Bb
	}

	// the en passant file is only set when an enemy pawn sits next to
	// the double stepped pawn and could actually capture
	p.details.EnPassant = EnPassantNone
	theirPawns := them & p.bb[Pawn]
	if p.bb[Pawn]&rank2&m.From.Bb() != 0 &&
		rank4&m.To.Bb() != 0 &&
		(theirPawns.Left(1)|theirPawns.Right(1))&m.To.Bb() != 0 {
		p.details.EnPassant = uint8(m.From.FileOf())
	}

	p.details.Halfmove++

	p.bb[m.Piece] ^= m.From.Bb()

	if m.Captured != PieceNone {
		p.details.Halfmove = 0
		if m.EnPassant {
			capSq := m.To.Backward(p.whiteToMove, 1)
			p.bb[Pawn] ^= capSq.Bb()
			if !p.whiteToMove {
				p.color ^= capSq.Bb()
			}
		} else {
			p.bb[m.Captured] ^= m.To.Bb()
			if !p.whiteToMove {
				p.color ^= m.To.Bb()
			}
		}
	}

	if m.Promoted != PieceNone {
		p.bb[m.Promoted] ^= m.To.Bb()
	} else {
		p.bb[m.Piece] ^= m.To.Bb()
	}

	switch m.Piece {
	case Pawn:
		p.details.Halfmove = 0
	case King:
		p.kingSq[ColorIndex(p.whiteToMove)] = m.To
		if m.From.Right(2) == m.To { // castle kingside
			p.bb[Rook] ^= m.To.Right(1).Bb()
			p.bb[Rook] ^= m.To.Left(1).Bb()
			if p.whiteToMove {
				p.color ^= m.To.Right(1).Bb()
				p.color ^= m.To.Left(1).Bb()
			}
		} else if m.From.Left(2) == m.To { // castle queenside
			p.bb[Rook] ^= m.To.Left(2).Bb()
			p.bb[Rook] ^= m.To.Right(1).Bb()
			if p.whiteToMove {
				p.color ^= m.To.Left(2).Bb()
				p.color ^= m.To.Right(1).Bb()
			}
		}
		if p.whiteToMove {
			p.details.Castling &^= CastleWhiteKside | CastleWhiteQside
		} else {
			p.details.Castling &^= CastleBlackKside | CastleBlackQside
		}
	}

	// any move from or to a corner square invalidates the
	// corresponding castling right
	if m.From == SqA1 || m.To == SqA1 {
		p.details.Castling &^= CastleWhiteQside
	}
	if m.From == SqH1 || m.To == SqH1 {
		p.details.Castling &^= CastleWhiteKside
	}
	if m.From == SqA8 || m.To == SqA8 {
		p.details.Castling &^= CastleBlackQside
	}
	if m.From == SqH8 || m.To == SqH8 {
		p.details.Castling &^= CastleBlackKside
	}

	if p.whiteToMove {
		p.color ^= m.To.Bb()
		p.color ^= m.From.Bb()
	} else {
		p.fullmove++
	}

	p.whiteToMove = !p.whiteToMove
	p.updateAggregates()
}

// UnmakeMove undoes a move previously made with MakeMove given the
// irreversible details saved before the move was made. After the call
// the position is bit for bit identical to the state before MakeMove.
func (p *Position) UnmakeMove(m Move, details IrreversibleDetails) {
	p.details = details
	p.whiteToMove = !p.whiteToMove
	unmakingWhite := p.whiteToMove

	if unmakingWhite {
		p.color ^= m.From.Bb()
		p.color ^= m.To.Bb()
	} else {
		p.fullmove--
	}

	p.bb[m.Piece] ^= m.From.Bb()

	if m.Captured != PieceNone {
		if m.EnPassant {
			capSq := m.To.Backward(unmakingWhite, 1)
			p.bb[Pawn] ^= capSq.Bb()
			if !unmakingWhite {
				p.color ^= capSq.Bb()
			}
		} else {
			p.bb[m.Captured] ^= m.To.Bb()
			if !unmakingWhite {
				p.color ^= m.To.Bb()
			}
		}
	}

	if m.Promoted != PieceNone {
		p.bb[m.Promoted] ^= m.To.Bb()
	} else {
		p.bb[m.Piece] ^= m.To.Bb()
	}

	if m.Piece == King {
		p.kingSq[ColorIndex(unmakingWhite)] = m.From
		if m.From.Right(2) == m.To { // castle kingside
			p.bb[Rook] ^= m.To.Right(1).Bb()
			p.bb[Rook] ^= m.To.Left(1).Bb()
			if unmakingWhite {
				p.color ^= m.To.Right(1).Bb()
				p.color ^= m.To.Left(1).Bb()
			}
		} else if m.From.Left(2) == m.To { // castle queenside
			p.bb[Rook] ^= m.To.Left(2).Bb()
			p.bb[Rook] ^= m.To.Right(1).Bb()
			if unmakingWhite {
				p.color ^= m.To.Left(2).Bb()
				p.color ^= m.To.Right(1).Bb()
			}
		}
	}

	p.updateAggregates()
}

// MakeNullmove applies a null move (no move, just change of the side
// to move) allowing one side to make two consecutive moves. The caller
// saves Details() beforehand.
func (p *Position) MakeNullmove() {
	p.whiteToMove = !p.whiteToMove
	p.details.EnPassant = EnPassantNone
	p.details.Halfmove++
}

// UnmakeNullmove undoes a previous null move.
func (p *Position) UnmakeNullmove(details IrreversibleDetails) {
	p.whiteToMove = !p.whiteToMove
	p.details = details
}

// recompute the aggregate bitboards from the piece bitboards and the
// color bitboard
func (p *Position) updateAggregates() {
	p.allPieces = p.bb[Pawn] | p.bb[Knight] | p.bb[Bishop] | p.bb[Rook] | p.bb[Queen] | p.bb[King]
	p.pieces[1] = p.allPieces & p.color
	p.pieces[0] = p.allPieces &^ p.color
}

// //////////////////////////////////////////////////////
// // Attacks, checks and legality
// //////////////////////////////////////////////////////

// isAttacked checks whether the given square is attacked by the
// opponent of the side to move.
func (p *Position) isAttacked(sq Square) bool {
	them := p.Them(p.whiteToMove)

	if GetAttacksBb(Bishop, sq, p.allPieces)&(p.bb[Bishop]|p.bb[Queen])&them != 0 {
		return true
	}
	if GetAttacksBb(Rook, sq, p.allPieces)&(p.bb[Rook]|p.bb[Queen])&them != 0 {
		return true
	}
	if GetAttacksBb(Knight, sq, BbZero)&p.bb[Knight]&them != 0 {
		return true
	}

	theirPawns := p.bb[Pawn] & them
	if theirPawns.Backward(p.whiteToMove, 1).Left(1).Has(sq) {
		return true
	}
	if theirPawns.Backward(p.whiteToMove, 1).Right(1).Has(sq) {
		return true
	}

	return GetAttacksBb(King, sq, BbZero)&p.bb[King]&them != 0
}

// InCheck checks whether the current side to move is in check.
func (p *Position) InCheck() bool {
	return p.isAttacked(p.KingSq(p.whiteToMove))
}

// Checkers returns a bitboard of all opponent pieces giving check to
// the side to move.
func (p *Position) Checkers() Bitboard {
	kingSq := p.KingSq(p.whiteToMove)
	them := p.Them(p.whiteToMove)
	checkers := GetPawnAttacks(p.whiteToMove, kingSq) & p.bb[Pawn]
	checkers |= GetAttacksBb(Knight, kingSq, BbZero) & p.bb[Knight]
	checkers |= GetAttacksBb(Bishop, kingSq, p.allPieces) & (p.bb[Bishop] | p.bb[Queen])
	checkers |= GetAttacksBb(Rook, kingSq, p.allPieces) & (p.bb[Rook] | p.bb[Queen])
	return checkers & them
}

// MoveIsLegal tests a pseudo legal move for legality on the current
// position. The move is applied virtually to the bitboards (the
// position itself is not touched) and the own king is tested for
// attacks through the updated occupancy. For castling the king's
// start square and the traversed square must not be attacked either -
// the destination is covered by the post move scan.
func (p *Position) MoveIsLegal(m Move) bool {
	allPieces := p.allPieces
	king := p.KingSq(p.whiteToMove)
	them := p.Them(p.whiteToMove) & allPieces

	if m.Piece == King {
		king = m.To

		if m.From.Bb().Left(2).Has(m.To) {
			// queenside castling
			if p.isAttacked(m.From) || p.isAttacked(m.From.Left(1)) {
				return false
			}
			allPieces ^= m.From.Bb()
			allPieces ^= m.To.Bb()
			// rook movement
			allPieces ^= m.To.Left(2).Bb()
			allPieces ^= m.To.Right(1).Bb()
		} else if m.From.Bb().Right(2).Has(m.To) {
			// kingside castling
			if p.isAttacked(m.From) || p.isAttacked(m.From.Right(1)) {
				return false
			}
			allPieces ^= m.From.Bb()
			allPieces ^= m.To.Bb()
			// rook movement
			allPieces ^= m.To.Right(1).Bb()
			allPieces ^= m.To.Left(1).Bb()
		} else {
			allPieces ^= m.From.Bb()
			if m.Captured == PieceNone {
				allPieces ^= m.To.Bb()
			} else {
				them ^= m.To.Bb()
			}
		}
	} else if m.EnPassant {
		allPieces ^= m.From.Bb()
		allPieces ^= m.To.Bb()
		capBb := m.To.Backward(p.whiteToMove, 1).Bb()
		allPieces ^= capBb
		them ^= capBb
	} else if m.Captured != PieceNone {
		allPieces ^= m.From.Bb()
		them ^= m.To.Bb()
	} else {
		allPieces ^= m.From.Bb()
		allPieces ^= m.To.Bb()
	}

	if GetAttacksBb(Knight, king, BbZero)&them&p.bb[Knight] != 0 {
		return false
	}
	if GetAttacksBb(King, king, BbZero)&them&p.bb[King] != 0 {
		return false
	}
	if GetAttacksBb(Bishop, king, allPieces)&them&(p.bb[Queen]|p.bb[Bishop]) != 0 {
		return false
	}
	if GetAttacksBb(Rook, king, allPieces)&them&(p.bb[Queen]|p.bb[Rook]) != 0 {
		return false
	}

	theirPawns := p.bb[Pawn] & them
	if (theirPawns.Left(1) | theirPawns.Right(1)).Backward(p.whiteToMove, 1).Has(king) {
		return false
	}

	return true
}

// MoveWillCheck determines whether the move would put the opponent's
// king in check without actually playing it. Used by the search to
// extend checking moves.
func (p *Position) MoveWillCheck(m Move) bool {
	us := p.Us(p.whiteToMove)
	allPieces := p.allPieces
	pawns := p.bb[Pawn] & us
	knights := p.bb[Knight] & us
	bishops := (p.bb[Bishop] | p.bb[Queen]) & us
	rooks := (p.bb[Rook] | p.bb[Queen]) & us

	allPieces ^= m.From.Bb()
	allPieces |= m.To.Bb()

	switch m.Piece {
	case Pawn:
		pawns ^= m.From.Bb()
		pawns |= m.To.Bb()

		if m.EnPassant {
			allPieces ^= m.To.Backward(p.whiteToMove, 1).Bb()
		}

		if m.Promoted != PieceNone {
			pawns ^= m.To.Bb()
			switch m.Promoted {
			case Knight:
				knights |= m.To.Bb()
			case Bishop:
				bishops |= m.To.Bb()
			case Rook:
				rooks |= m.To.Bb()
			case Queen:
				bishops |= m.To.Bb()
				rooks |= m.To.Bb()
			}
		}
	case Knight:
		knights ^= m.From.Bb()
		knights |= m.To.Bb()
	case Bishop:
		bishops ^= m.From.Bb()
		bishops |= m.To.Bb()
	case Rook:
		rooks ^= m.From.Bb()
		rooks |= m.To.Bb()
	case Queen:
		bishops ^= m.From.Bb()
		bishops |= m.To.Bb()
		rooks ^= m.From.Bb()
		rooks |= m.To.Bb()
	case King:
		if m.To == m.From.Right(2) {
			// kingside castling
			rooks ^= m.To.Right(1).Bb()
			rooks |= m.To.Left(1).Bb()
			allPieces ^= m.To.Right(1).Bb()
			allPieces |= m.To.Left(1).Bb()
		} else if m.To == m.From.Left(2) {
			// queenside castling
			rooks ^= m.To.Left(2).Bb()
			rooks |= m.To.Right(1).Bb()
			allPieces ^= m.To.Left(2).Bb()
			allPieces |= m.To.Right(1).Bb()
		}
	}

	theirKing := p.KingSq(!p.whiteToMove)
	if GetAttacksBb(Knight, theirKing, BbZero)&knights != 0 {
		return true
	}
	if GetAttacksBb(Bishop, theirKing, allPieces)&bishops != 0 {
		return true
	}
	if GetAttacksBb(Rook, theirKing, allPieces)&rooks != 0 {
		return true
	}
	return (pawns.Left(1) | pawns.Right(1)).Forward(p.whiteToMove, 1).Has(theirKing)
}

// MoveIsPseudoLegal tests whether the move obeys the piece movement
// rules and the piece color constraints on the current position. The
// move may still leave the own king in check - use MoveIsLegal for
// the full test.
func (p *Position) MoveIsPseudoLegal(m Move) bool {
	us := p.Us(p.whiteToMove)

	// piece must actually belong to us
	if !us.Has(m.From) {
		return false
	}

	// target square must not be occupied by us
	if us.Has(m.To) {
		return false
	}

	// the moving piece must be correct
	if p.FindPiece(m.From) != m.Piece {
		return false
	}

	// the captured piece must be correct
	if p.FindPiece(m.To) != m.Captured && !m.EnPassant {
		return false
	}

	// en passant and promotion only exist for pawn moves
	if m.Piece != Pawn && (m.EnPassant || m.Promoted != PieceNone) {
		return false
	}

	switch m.Piece {
	case Pawn:
		if m.EnPassant {
			if p.details.EnPassant == EnPassantNone {
				return false
			}
			epCapturersRank := Rank4
			if p.whiteToMove {
				epCapturersRank = Rank5
			}
			epSquare := SquareOf(File(p.details.EnPassant), epCapturersRank)
			theirPawns := p.bb[Pawn] &^ us
			return m.To == epSquare.Forward(p.whiteToMove, 1) && theirPawns.Has(epSquare)
		}

		possibleTargets := m.From.Forward(p.whiteToMove, 1).Bb()
		if m.Captured != PieceNone {
			possibleTargets |= possibleTargets.Left(1)
			possibleTargets |= possibleTargets.Right(1)
			possibleTargets ^= m.From.Forward(p.whiteToMove, 1).Bb()
		} else {
			// double step through an empty intermediate square
			rank3 := Rank3_Bb
			if !p.whiteToMove {
				rank3 = Rank6_Bb
			}
			possibleTargets |= (possibleTargets & rank3 &^ p.allPieces).Forward(p.whiteToMove, 1)
		}

		if !possibleTargets.Has(m.To) {
			return false
		}
		if (Rank1_Bb | Rank8_Bb).Has(m.To) {
			return m.Promoted != PieceNone
		}
		return true
	case Knight:
		return GetAttacksBb(Knight, m.From, BbZero).Has(m.To)
	case Bishop:
		return GetAttacksBb(Bishop, m.From, p.allPieces).Has(m.To)
	case Rook:
		return GetAttacksBb(Rook, m.From, p.allPieces).Has(m.To)
	case Queen:
		return GetAttacksBb(Queen, m.From, p.allPieces).Has(m.To)
	case King:
		if m.To == m.From.Right(2) {
			if p.whiteToMove {
				return p.details.Castling&CastleWhiteKside > 0 &&
					p.allPieces&Bitboard(0x00_00_00_00_00_00_00_60) == 0 &&
					(p.bb[Rook]&us).Has(SqH1)
			}
			return p.details.Castling&CastleBlackKside > 0 &&
				p.allPieces&Bitboard(0x60_00_00_00_00_00_00_00) == 0 &&
				(p.bb[Rook]&us).Has(SqH8)
		}
		if m.To == m.From.Left(2) {
			if p.whiteToMove {
				return p.details.Castling&CastleWhiteQside > 0 &&
					p.allPieces&Bitboard(0x00_00_00_00_00_00_00_0E) == 0 &&
					(p.bb[Rook]&us).Has(SqA1)
			}
			return p.details.Castling&CastleBlackQside > 0 &&
				p.allPieces&Bitboard(0x0E_00_00_00_00_00_00_00) == 0 &&
				(p.bb[Rook]&us).Has(SqA8)
		}
		return GetAttacksBb(King, m.From, BbZero).Has(m.To)
	}
	return false
}

// //////////////////////////////////////////////////////
// // String output
// //////////////////////////////////////////////////////

// String returns a visual matrix of the board and pieces together with
// the fen of the position. Only used for debugging.
func (p *Position) String() string {
	var os strings.Builder
	os.WriteString(p.StringFen())
	os.WriteString("\n+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, Rank8-r)
			os.WriteString("| ")
			os.WriteString(p.pieceChar(sq))
			os.WriteString(" ")
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

func (p *Position) pieceChar(sq Square) string {
	piece := p.FindPiece(sq)
	if piece == PieceNone {
		return " "
	}
	if p.color.Has(sq) {
		return strings.ToUpper(piece.Char())
	}
	return piece.Char()
}

// StringFen returns a string with the FEN of the current position
func (p *Position) StringFen() string {
	var fen strings.Builder

	// pieces
	for r := Rank1; r <= Rank8; r++ {
		emptySquares := 0
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, Rank8-r)
			if p.FindPiece(sq) == PieceNone {
				emptySquares++
				continue
			}
			if emptySquares > 0 {
				fen.WriteString(strconv.Itoa(emptySquares))
				emptySquares = 0
			}
			fen.WriteString(p.pieceChar(sq))
		}
		if emptySquares > 0 {
			fen.WriteString(strconv.Itoa(emptySquares))
		}
		if r < Rank8 {
			fen.WriteString("/")
		}
	}

	// next player
	if p.whiteToMove {
		fen.WriteString(" w ")
	} else {
		fen.WriteString(" b ")
	}

	// castling
	if p.details.Castling == 0 {
		fen.WriteString("-")
	} else {
		if p.details.Castling&CastleWhiteKside > 0 {
			fen.WriteString("K")
		}
		if p.details.Castling&CastleWhiteQside > 0 {
			fen.WriteString("Q")
		}
		if p.details.Castling&CastleBlackKside > 0 {
			fen.WriteString("k")
		}
		if p.details.Castling&CastleBlackQside > 0 {
			fen.WriteString("q")
		}
	}

	// en passant
	fen.WriteString(" ")
	if p.details.EnPassant == EnPassantNone {
		fen.WriteString("-")
	} else {
		epRank := Rank3
		if p.whiteToMove {
			epRank = Rank6
		}
		fen.WriteString(SquareOf(File(p.details.EnPassant), epRank).String())
	}

	// halfmove clock and fullmove number
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(int(p.details.Halfmove)))
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.fullmove))

	return fen.String()
}

// //////////////////////////////////////////////////////
// // FEN parsing
// //////////////////////////////////////////////////////

// ParseError is returned when a FEN string contains an unrecognised
// character. It carries the offending character and the name of the
// FEN field it was found in.
type ParseError struct {
	Char  byte
	Field string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected character %q in fen %s field", e.Char, e.Field)
}

// setupBoard sets up the position from a fen. This is the only way to
// get a valid Position instance.
func (p *Position) setupBoard(fen string) error {
	fenParts := strings.Fields(strings.TrimSpace(fen))
	if len(fenParts) < 4 {
		return &ParseError{Char: ' ', Field: "fen"}
	}

	// board - the fen starts at a8 and runs to h1 with / jumping to
	// file a of the next lower rank
	file := 0
	rank := 7
	for i := 0; i < len(fenParts[0]); i++ {
		c := fenParts[0][i]
		switch c {
		case '/':
			file = 0
			rank--
			continue
		case '1', '2', '3', '4', '5', '6', '7', '8':
			file += int(c - '0')
			continue
		}

		piece := PieceNone
		switch c {
		case 'P', 'p':
			piece = Pawn
		case 'N', 'n':
			piece = Knight
		case 'B', 'b':
			piece = Bishop
		case 'R', 'r':
			piece = Rook
		case 'Q', 'q':
			piece = Queen
		case 'K', 'k':
			piece = King
		default:
			return &ParseError{Char: c, Field: "board"}
		}
		white := c >= 'A' && c <= 'Z'

		if file > 7 || rank < 0 {
			return &ParseError{Char: c, Field: "board"}
		}
		sq := SquareOf(File(file), Rank(rank))
		p.bb[piece] ^= sq.Bb()
		p.pieces[ColorIndex(white)] ^= sq.Bb()
		file++
	}
	p.color = p.pieces[1]
	p.allPieces = p.pieces[0] | p.pieces[1]

	if p.bb[King]&p.pieces[1] == 0 || p.bb[King]&p.pieces[0] == 0 {
		return &ParseError{Char: 'K', Field: "board"}
	}
	p.kingSq[0] = (p.bb[King] & p.pieces[0]).Lsb()
	p.kingSq[1] = (p.bb[King] & p.pieces[1]).Lsb()

	// side to move
	switch fenParts[1] {
	case "w":
		p.whiteToMove = true
	case "b":
		p.whiteToMove = false
	default:
		return &ParseError{Char: fenParts[1][0], Field: "side"}
	}

	// castling rights
	p.details.Castling = 0
	if fenParts[2] != "-" {
		for i := 0; i < len(fenParts[2]); i++ {
			switch fenParts[2][i] {
			case 'K':
				p.details.Castling |= CastleWhiteKside
			case 'Q':
				p.details.Castling |= CastleWhiteQside
			case 'k':
				p.details.Castling |= CastleBlackKside
			case 'q':
				p.details.Castling |= CastleBlackQside
			default:
				return &ParseError{Char: fenParts[2][i], Field: "castling"}
			}
		}
	}

	// en passant - only the file matters to the engine, the rank is
	// validated against the side to move
	p.details.EnPassant = EnPassantNone
	if fenParts[3] != "-" {
		if len(fenParts[3]) != 2 {
			return &ParseError{Char: fenParts[3][0], Field: "en-passant"}
		}
		epFile := fenParts[3][0]
		epRank := fenParts[3][1]
		if epFile < 'a' || epFile > 'h' {
			return &ParseError{Char: epFile, Field: "en-passant"}
		}
		if (p.whiteToMove && epRank != '6') || (!p.whiteToMove && epRank != '3') {
			return &ParseError{Char: epRank, Field: "en-passant"}
		}
		p.details.EnPassant = epFile - 'a'
	}

	// halfmove clock (50 moves rule) - optional
	p.details.Halfmove = 0
	if len(fenParts) >= 5 {
		number, err := strconv.Atoi(fenParts[4])
		if err != nil || number < 0 || number > 255 {
			return &ParseError{Char: fenParts[4][0], Field: "halfmove"}
		}
		p.details.Halfmove = uint8(number)
	}

	// fullmove number - optional, defaults to 1
	p.fullmove = 1
	if len(fenParts) >= 6 {
		number, err := strconv.Atoi(fenParts[5])
		if err != nil || number < 0 {
			return &ParseError{Char: fenParts[5][0], Field: "fullmove"}
		}
		if number == 0 {
			number = 1
		}
		p.fullmove = number
	}

	return nil
}

// //////////////////////////////////////////////////////
// // Long algebraic move notation
// //////////////////////////////////////////////////////

// BadMoveError is returned when a long algebraic move string can not
// be decoded on the current position.
type BadMoveError struct {
	Notation string
}

func (e *BadMoveError) Error() string {
	return fmt.Sprintf("bad move: %q", e.Notation)
}

// MoveFromAlgebraic decodes a move given in long algebraic notation
// (e.g. e2e4, e7e8q) on the given position. The remaining move fields
// (moving piece, captured piece, en passant) are completed from the
// position. En passant is detected when a pawn changes file with an
// empty destination.
func MoveFromAlgebraic(p *Position, alg string) (Move, error) {
	if len(alg) < 4 || len(alg) > 5 {
		return MoveNone, &BadMoveError{Notation: alg}
	}

	from := MakeSquare(alg[0:2])
	to := MakeSquare(alg[2:4])
	if from == SqNone || to == SqNone {
		return MoveNone, &BadMoveError{Notation: alg}
	}

	piece := p.FindPiece(from)
	if piece == PieceNone {
		return MoveNone, &BadMoveError{Notation: alg}
	}

	var captured Piece
	enPassant := false
	if piece == Pawn && !p.allPieces.Has(to) && from.FileOf() != to.FileOf() {
		enPassant = true
		captured = Pawn
	} else {
		captured = p.FindPiece(to)
	}

	promoted := PieceNone
	if len(alg) == 5 {
		switch alg[4] {
		case 'q':
			promoted = Queen
		case 'n':
			promoted = Knight
		case 'r':
			promoted = Rook
		case 'b':
			promoted = Bishop
		default:
			return MoveNone, &BadMoveError{Notation: alg}
		}
	}

	return Move{
		From:      from,
		To:        to,
		Piece:     piece,
		Captured:  captured,
		Promoted:  promoted,
		EnPassant: enPassant,
	}, nil
}
