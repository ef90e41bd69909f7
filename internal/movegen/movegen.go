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

// Package movegen contains functionality to create pseudo legal moves
// on a chess position. Moves are generated in three flavours: all
// moves, good captures (split by static exchange evaluation into good
// and bad) and quiet moves. The caller filters to legal moves via
// Position.MoveIsLegal.
package movegen

import (
	"github.com/RenWild/asymptote/internal/moveslice"
	"github.com/RenWild/asymptote/internal/position"
	. "github.com/RenWild/asymptote/internal/types"
)

// Movegen is a move generator. It holds no state of its own - all
// moves are written into caller supplied reusable buffers. Create via
// NewMoveGen().
type Movegen struct{}

// NewMoveGen creates a new instance of a move generator
func NewMoveGen() *Movegen {
	return &Movegen{}
}

// AllMoves generates every pseudo legal move of the side to move into
// the given buffer. The buffer is cleared first. Recommended buffer
// capacity is AllMovesCap.
func (mg *Movegen) AllMoves(p *position.Position, moves *moveslice.MoveSlice) {
	moves.Clear()
	targets := ^p.Us(p.WhiteToMove())
	mg.pawn(p, targets, moves)
	mg.knight(p, targets, moves)
	mg.bishop(p, targets, moves)
	mg.rook(p, targets, moves)
	mg.queen(p, targets, moves)
	mg.king(p, targets, moves)
}

// GoodCaptures generates the tactical moves of the side to move and
// splits them by See(m) >= 0 into good and bad captures. The MVV-LVA
// ordering scores of the generated moves are returned in the parallel
// score slices. All buffers are cleared first.
//
// The generated target set depends on the check state:
// under double check only king moves to enemy occupied squares are
// generated; under single check the evasion targets are the checker,
// the promotion rank and the en passant square; without check every
// move to an enemy occupied square, pawn promotions and en passant.
func (mg *Movegen) GoodCaptures(p *position.Position,
	moves *moveslice.MoveSlice, scores *[]int32,
	badMoves *moveslice.MoveSlice, badScores *[]int32) {

	allPieces := p.AllPieces()
	them := p.Them(p.WhiteToMove())
	moves.Clear()
	badMoves.Clear()
	*scores = (*scores)[:0]
	*badScores = (*badScores)[:0]

	checkers := p.Checkers()

	switch {
	case checkers.MoreThanOne():
		mg.king(p, them&allPieces, moves)
	case checkers.AtLeastOne():
		ep := mg.enPassantTargetBb(p)
		promotionRank := mg.promotionRankBb(p)
		mg.pawn(p, checkers|promotionRank|ep, moves)
		mg.knight(p, checkers, moves)
		mg.bishop(p, checkers, moves)
		mg.rook(p, checkers, moves)
		mg.queen(p, checkers, moves)
		mg.king(p, them&allPieces, moves)
	default:
		ep := mg.enPassantTargetBb(p)
		promotionRank := mg.promotionRankBb(p)
		mg.pawn(p, them&allPieces|promotionRank|ep, moves)
		mg.knight(p, them&allPieces, moves)
		mg.bishop(p, them&allPieces, moves)
		mg.rook(p, them&allPieces, moves)
		mg.queen(p, them&allPieces, moves)
		mg.king(p, them&allPieces, moves)
	}

	// split by static exchange evaluation
	for i := 0; i < moves.Len(); {
		m := moves.At(i)
		if p.See(m) >= 0 {
			*scores = append(*scores, m.MvvLvaScore())
			i++
		} else {
			*badScores = append(*badScores, m.MvvLvaScore())
			badMoves.PushBack(m)
			moves.SwapRemove(i)
		}
	}
}

// QuietMoves generates the non capturing, non promoting moves of the
// side to move into the given buffer. Under double check only the non
// capturing king moves are generated; under single check all quiet
// moves are generated, including the blocking ones, and the legality
// filter reduces them to the evasions. The buffer is cleared first.
func (mg *Movegen) QuietMoves(p *position.Position, moves *moveslice.MoveSlice) {
	moves.Clear()

	if p.Checkers().MoreThanOne() {
		mg.king(p, ^p.AllPieces(), moves)
		return
	}

	promotionRank := mg.promotionRankBb(p)
	ep := mg.enPassantTargetBb(p)

	mg.pawn(p, ^p.AllPieces()&^promotionRank&^ep, moves)
	mg.knight(p, ^p.AllPieces(), moves)
	mg.bishop(p, ^p.AllPieces(), moves)
	mg.rook(p, ^p.AllPieces(), moves)
	mg.queen(p, ^p.AllPieces(), moves)
	mg.king(p, ^p.AllPieces(), moves)
}

// //////////////////////////////////////////////////////
// // Private
// //////////////////////////////////////////////////////

// promotionRankBb returns the promotion rank of the side to move
func (mg *Movegen) promotionRankBb(p *position.Position) Bitboard {
	if p.WhiteToMove() {
		return Rank8_Bb
	}
	return Rank1_Bb
}

// enPassantTargetBb returns a bitboard of the en passant target
// square or BbZero when en passant is not available
func (mg *Movegen) enPassantTargetBb(p *position.Position) Bitboard {
	details := p.Details()
	if details.EnPassant == position.EnPassantNone {
		return BbZero
	}
	if p.WhiteToMove() {
		return SquareOf(File(details.EnPassant), Rank6).Bb()
	}
	return SquareOf(File(details.EnPassant), Rank3).Bb()
}

// adjacentFiles returns a bitboard of the files east and west of the
// given file
func adjacentFiles(f File) Bitboard {
	b := BbZero
	if f > FileA {
		b |= (f - 1).Bb()
	}
	if f < FileH {
		b |= (f + 1).Bb()
	}
	return b
}

// pawn generates all pawn moves to the given target set: single and
// double pushes, promotions (Q, N, R, B), ordinary and promoting
// captures and en passant.
func (mg *Movegen) pawn(p *position.Position, targets Bitboard, moves *moveslice.MoveSlice) {
	wtm := p.WhiteToMove()
	us := p.Us(wtm)
	them := p.Them(wtm)

	promoting := Rank8
	rank3 := Rank3_Bb
	if !wtm {
		promoting = Rank1
		rank3 = Rank6_Bb
	}

	pawns := p.Pawns() & us
	singleStepTargets := pawns.Forward(wtm, 1) & ^p.AllPieces() & targets
	doubleStepTargets := (pawns.Forward(wtm, 1)&^p.AllPieces()&rank3).Forward(wtm, 1) &
		^p.AllPieces() & targets
	capturesLeft := pawns.Forward(wtm, 1).Left(1) & them & targets
	capturesRight := pawns.Forward(wtm, 1).Right(1) & them & targets

	for b := singleStepTargets; b != 0; {
		to := b.PopLsb()
		if to.RankOf() == promoting {
			for _, promoted := range promotionPieces {
				moves.PushBack(Move{
					From:     to.Backward(wtm, 1),
					To:       to,
					Piece:    Pawn,
					Captured: PieceNone,
					Promoted: promoted,
				})
			}
		} else {
			moves.PushBack(Move{
				From:     to.Backward(wtm, 1),
				To:       to,
				Piece:    Pawn,
				Captured: PieceNone,
				Promoted: PieceNone,
			})
		}
	}

	for b := doubleStepTargets; b != 0; {
		to := b.PopLsb()
		moves.PushBack(Move{
			From:     to.Backward(wtm, 2),
			To:       to,
			Piece:    Pawn,
			Captured: PieceNone,
			Promoted: PieceNone,
		})
	}

	// en passant
	details := p.Details()
	if details.EnPassant != position.EnPassantNone {
		capturersRank := Rank4_Bb
		epSquare := SquareOf(File(details.EnPassant), Rank3)
		if wtm {
			capturersRank = Rank5_Bb
			epSquare = SquareOf(File(details.EnPassant), Rank6)
		}
		capturers := us & p.Pawns() & adjacentFiles(File(details.EnPassant)) & capturersRank

		if targets.Has(epSquare) {
			for b := capturers; b != 0; {
				from := b.PopLsb()
				moves.PushBack(Move{
					From:      from,
					To:        SquareOf(File(details.EnPassant), from.Forward(wtm, 1).RankOf()),
					Piece:     Pawn,
					Captured:  Pawn,
					Promoted:  PieceNone,
					EnPassant: true,
				})
			}
		}
	}

	// ordinary pawn captures including promoting captures
	// captures to the left (file b to file a, ...)
	for b := capturesLeft; b != 0; {
		to := b.PopLsb()
		captured := p.FindPiece(to)
		from := to.Backward(wtm, 1).Right(1)

		if to.RankOf() == promoting {
			for _, promoted := range promotionPieces {
				moves.PushBack(Move{From: from, To: to, Piece: Pawn, Captured: captured, Promoted: promoted})
			}
		} else {
			moves.PushBack(Move{From: from, To: to, Piece: Pawn, Captured: captured, Promoted: PieceNone})
		}
	}

	// captures to the right (file a to file b, ...)
	for b := capturesRight; b != 0; {
		to := b.PopLsb()
		captured := p.FindPiece(to)
		from := to.Backward(wtm, 1).Left(1)

		if to.RankOf() == promoting {
			for _, promoted := range promotionPieces {
				moves.PushBack(Move{From: from, To: to, Piece: Pawn, Captured: captured, Promoted: promoted})
			}
		} else {
			moves.PushBack(Move{From: from, To: to, Piece: Pawn, Captured: captured, Promoted: PieceNone})
		}
	}
}

// promotion pieces in the order the moves are emitted
var promotionPieces = [4]Piece{Queen, Knight, Rook, Bishop}

func (mg *Movegen) knight(p *position.Position, targets Bitboard, moves *moveslice.MoveSlice) {
	us := p.Us(p.WhiteToMove())
	for pieces := p.Knights() & us; pieces != 0; {
		from := pieces.PopLsb()
		for b := targets & GetAttacksBb(Knight, from, BbZero); b != 0; {
			to := b.PopLsb()
			moves.PushBack(Move{From: from, To: to, Piece: Knight, Captured: p.FindPiece(to), Promoted: PieceNone})
		}
	}
}

func (mg *Movegen) bishop(p *position.Position, targets Bitboard, moves *moveslice.MoveSlice) {
	us := p.Us(p.WhiteToMove())
	for pieces := p.Bishops() & us; pieces != 0; {
		from := pieces.PopLsb()
		for b := targets & GetAttacksBb(Bishop, from, p.AllPieces()); b != 0; {
			to := b.PopLsb()
			moves.PushBack(Move{From: from, To: to, Piece: Bishop, Captured: p.FindPiece(to), Promoted: PieceNone})
		}
	}
}

func (mg *Movegen) rook(p *position.Position, targets Bitboard, moves *moveslice.MoveSlice) {
	us := p.Us(p.WhiteToMove())
	for pieces := p.Rooks() & us; pieces != 0; {
		from := pieces.PopLsb()
		for b := targets & GetAttacksBb(Rook, from, p.AllPieces()); b != 0; {
			to := b.PopLsb()
			moves.PushBack(Move{From: from, To: to, Piece: Rook, Captured: p.FindPiece(to), Promoted: PieceNone})
		}
	}
}

func (mg *Movegen) queen(p *position.Position, targets Bitboard, moves *moveslice.MoveSlice) {
	us := p.Us(p.WhiteToMove())
	for pieces := p.Queens() & us; pieces != 0; {
		from := pieces.PopLsb()
		for b := targets & GetAttacksBb(Queen, from, p.AllPieces()); b != 0; {
			to := b.PopLsb()
			moves.PushBack(Move{From: from, To: to, Piece: Queen, Captured: p.FindPiece(to), Promoted: PieceNone})
		}
	}
}

// king generates the king step moves and the castling moves. Castling
// requires the castling right, empty squares between king and rook and
// the corner rook still in place. Whether the king crosses an attacked
// square is verified later by Position.MoveIsLegal.
func (mg *Movegen) king(p *position.Position, targets Bitboard, moves *moveslice.MoveSlice) {
	wtm := p.WhiteToMove()
	us := p.Us(wtm)
	details := p.Details()

	var castleKside, castleQside bool
	if wtm {
		castleKside = details.Castling&position.CastleWhiteKside > 0 &&
			p.AllPieces()&Bitboard(0x00_00_00_00_00_00_00_60) == 0 &&
			(p.Rooks() & us).Has(SqH1)
		castleQside = details.Castling&position.CastleWhiteQside > 0 &&
			p.AllPieces()&Bitboard(0x00_00_00_00_00_00_00_0E) == 0 &&
			(p.Rooks() & us).Has(SqA1)
	} else {
		castleKside = details.Castling&position.CastleBlackKside > 0 &&
			p.AllPieces()&Bitboard(0x60_00_00_00_00_00_00_00) == 0 &&
			(p.Rooks() & us).Has(SqH8)
		castleQside = details.Castling&position.CastleBlackQside > 0 &&
			p.AllPieces()&Bitboard(0x0E_00_00_00_00_00_00_00) == 0 &&
			(p.Rooks() & us).Has(SqA8)
	}

	from := p.KingSq(wtm)
	for b := targets & GetAttacksBb(King, from, BbZero); b != 0; {
		to := b.PopLsb()
		moves.PushBack(Move{From: from, To: to, Piece: King, Captured: p.FindPiece(to), Promoted: PieceNone})
	}

	if castleKside && targets.Has(from.Right(2)) {
		moves.PushBack(Move{From: from, To: from.Right(2), Piece: King, Captured: PieceNone, Promoted: PieceNone})
	}

	if castleQside && targets.Has(from.Left(2)) {
		moves.PushBack(Move{From: from, To: from.Left(2), Piece: King, Captured: PieceNone, Promoted: PieceNone})
	}
}
