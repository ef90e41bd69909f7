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
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit unsigned int with 1 bit for each square on the board
type Bitboard uint64

// Various constant bitboards
const (
	BbZero Bitboard = Bitboard(0)
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = Bitboard(1)

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb Bitboard = FileA_Bb << 1
	FileC_Bb Bitboard = FileA_Bb << 2
	FileD_Bb Bitboard = FileA_Bb << 3
	FileE_Bb Bitboard = FileA_Bb << 4
	FileF_Bb Bitboard = FileA_Bb << 5
	FileG_Bb Bitboard = FileA_Bb << 6
	FileH_Bb Bitboard = FileA_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb Bitboard = Rank1_Bb << (8 * 1)
	Rank3_Bb Bitboard = Rank1_Bb << (8 * 2)
	Rank4_Bb Bitboard = Rank1_Bb << (8 * 3)
	Rank5_Bb Bitboard = Rank1_Bb << (8 * 4)
	Rank6_Bb Bitboard = Rank1_Bb << (8 * 5)
	Rank7_Bb Bitboard = Rank1_Bb << (8 * 6)
	Rank8_Bb Bitboard = Rank1_Bb << (8 * 7)
)

// Bb returns a Bitboard of the square by accessing the pre calculated
// square to bitboard array.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// Has tests if a square (bit) is set
func (b Bitboard) Has(sq Square) bool {
	return b&sqBb[sq] != 0
}

// IsEmpty returns true if no bit of the bitboard is set
func (b Bitboard) IsEmpty() bool {
	return b == BbZero
}

// AtLeastOne returns true if at least one bit of the bitboard is set
func (b Bitboard) AtLeastOne() bool {
	return b != BbZero
}

// MoreThanOne returns true if more than one bit of the bitboard is set
func (b Bitboard) MoreThanOne() bool {
	return b&(b-1) != BbZero
}

// Forward shifts all bits of the bitboard n ranks ahead from the
// view of the given side. Bits shifted off the board are dropped.
func (b Bitboard) Forward(white bool, n int) Bitboard {
	if white {
		return b << (8 * uint(n))
	}
	return b >> (8 * uint(n))
}

// Backward shifts all bits of the bitboard n ranks back from the
// view of the given side. Bits shifted off the board are dropped.
func (b Bitboard) Backward(white bool, n int) Bitboard {
	return b.Forward(!white, n)
}

// Left shifts all bits of the bitboard n files towards file a.
// Bits wrapping over the board edge are masked out.
func (b Bitboard) Left(n int) Bitboard {
	if n > 7 {
		return BbZero
	}
	return (b >> uint(n)) & leftMasks[n]
}

// Right shifts all bits of the bitboard n files towards file h.
// Bits wrapping over the board edge are masked out.
func (b Bitboard) Right(n int) Bitboard {
	if n > 7 {
		return BbZero
	}
	return (b << uint(n)) & rightMasks[n]
}

// PopCount returns the number of one bits ("population count") in b.
// This equals the number of squares set in a Bitboard
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the least significant bit of the 64-bit Bb.
// This translates directly to the Square which is returned.
// If the bitboard is empty SqNone will be returned.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the Lsb square and removes it from the bitboard.
// The given bitboard is changed directly.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b = *b & (*b - 1)
	return lsb
}

// String returns a string representation of the 64 bits
func (b Bitboard) String() string {
	return fmt.Sprintf("%-0.64b", b)
}

// StringBoard returns a string representation of the Bb
// as a board off 8x8 squares
func (b Bitboard) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, Rank8-r)) {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// GetAttacksBb returns a bitboard representing all the squares attacked by a
// piece of the given type (not pawn) placed on the given square.
// For sliding pieces this uses the pre-computed magic bitboard attack tables.
// For Knight and King the occupied bitboard is ignored (can be BbZero)
// as for these non sliders the pre-computed pseudo attacks are used.
func GetAttacksBb(p Piece, sq Square, occupied Bitboard) Bitboard {
	switch p {
	case Knight:
		return knightAttacks[sq]
	case Bishop:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)]
	case Rook:
		return rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case Queen:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)] |
			rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case King:
		return kingAttacks[sq]
	}
	panic("GetAttacksBb called with unsupported piece type " + p.String())
}

// GetPawnAttacks returns a Bb of the squares a pawn of the given side
// on the given square attacks.
func GetPawnAttacks(white bool, sq Square) Bitboard {
	return pawnAttacks[ColorIndex(white)][sq]
}

// ////////////////////
// Pre compute helpers
// ////////////////////

var (
	// Internal pre computed square to square bitboard array.
	sqBb [SqLength]Bitboard

	// masks applied after file shifts to erase bits wrapping
	// over the board edge. Index is the shift distance.
	leftMasks  [8]Bitboard
	rightMasks [8]Bitboard

	// Internal Bb for attacks of the non sliding pieces
	knightAttacks [SqLength]Bitboard
	kingAttacks   [SqLength]Bitboard
	pawnAttacks   [2][SqLength]Bitboard
)

// deltas as (file, rank) steps
var (
	knightDeltas = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingDeltas   = [8][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	bishopDeltas = [4][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	rookDeltas   = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
)

// Pre computes various bitboards to avoid runtime calculation
func initBb() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = BbOne << sq
	}

	for n := 0; n < 8; n++ {
		var left, right Bitboard
		for f := 0; f < 8-n; f++ {
			left |= FileA_Bb << f
		}
		for f := n; f < 8; f++ {
			right |= FileA_Bb << f
		}
		leftMasks[n] = left
		rightMasks[n] = right
	}

	stepAttacksPreCompute()
}

// pre compute all possible attacked squares per color, piece and square
// for the non sliding pieces
func stepAttacksPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f := int(sq.FileOf())
		r := int(sq.RankOf())
		for _, d := range knightDeltas {
			if to := squareAt(f+d[0], r+d[1]); to != SqNone {
				knightAttacks[sq] |= sqBb[to]
			}
		}
		for _, d := range kingDeltas {
			if to := squareAt(f+d[0], r+d[1]); to != SqNone {
				kingAttacks[sq] |= sqBb[to]
			}
		}
		for _, df := range [2]int{-1, 1} {
			if to := squareAt(f+df, r+1); to != SqNone {
				pawnAttacks[ColorIndex(true)][sq] |= sqBb[to]
			}
			if to := squareAt(f+df, r-1); to != SqNone {
				pawnAttacks[ColorIndex(false)][sq] |= sqBb[to]
			}
		}
	}
}

func squareAt(f int, r int) Square {
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return SqNone
	}
	return SquareOf(File(f), Rank(r))
}

// slidingAttack calculates sliding attacks along the given direction
// deltas for the given square and the given board occupation. Walks
// square by square and is not very efficient. Doesn't matter for
// pre-computing but should not be used during move gen or search.
func slidingAttack(deltas *[4][2]int, sq Square, occupied Bitboard) Bitboard {
	attacks := BbZero
	f0 := int(sq.FileOf())
	r0 := int(sq.RankOf())
	for _, d := range deltas {
		f, r := f0+d[0], r0+d[1]
		for {
			s := squareAt(f, r)
			if s == SqNone {
				break
			}
			attacks |= sqBb[s]
			if occupied.Has(s) {
				break
			}
			f += d[0]
			r += d[1]
		}
	}
	return attacks
}
