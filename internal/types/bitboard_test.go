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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPopCount(t *testing.T) {
	tests := []struct {
		value    Bitboard
		expected int
	}{
		{BbZero, 0},
		{BbAll, 64},
		{BbOne, 1},
		{FileA_Bb, 8},
		{Rank8_Bb, 8},
		{FileD_Bb | Rank4_Bb, 15},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.value.PopCount())
	}
}

func TestBitboardHas(t *testing.T) {
	assert.True(t, FileA_Bb.Has(SqA1))
	assert.True(t, FileA_Bb.Has(SqA8))
	assert.False(t, FileA_Bb.Has(SqB1))
	assert.True(t, Rank4_Bb.Has(SqE4))
	assert.False(t, Rank4_Bb.Has(SqE5))
}

func TestBitboardTests(t *testing.T) {
	assert.True(t, BbZero.IsEmpty())
	assert.False(t, BbZero.AtLeastOne())
	assert.False(t, BbZero.MoreThanOne())
	assert.True(t, SqE4.Bb().AtLeastOne())
	assert.False(t, SqE4.Bb().MoreThanOne())
	assert.True(t, (SqE4.Bb() | SqA1.Bb()).MoreThanOne())
}

func TestBitboardForwardBackward(t *testing.T) {
	tests := []struct {
		value    Bitboard
		white    bool
		n        int
		expected Bitboard
	}{
		{SqE2.Bb(), true, 1, SqE3.Bb()},
		{SqE2.Bb(), true, 2, SqE4.Bb()},
		{SqE7.Bb(), false, 1, SqE6.Bb()},
		{SqE7.Bb(), false, 2, SqE5.Bb()},
		{Rank8_Bb, true, 1, BbZero},
		{Rank1_Bb, false, 1, BbZero},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.value.Forward(test.white, test.n))
		assert.Equal(t, test.expected, test.value.Backward(!test.white, test.n))
	}
}

func TestBitboardLeftRight(t *testing.T) {
	// shifts off the edge mask out wrapped bits
	tests := []struct {
		value    Bitboard
		left     Bitboard
		right    Bitboard
	}{
		{SqE4.Bb(), SqD4.Bb(), SqF4.Bb()},
		{SqA4.Bb(), BbZero, SqB4.Bb()},
		{SqH4.Bb(), SqG4.Bb(), BbZero},
		{FileA_Bb, BbZero, FileB_Bb},
		{FileH_Bb, FileG_Bb, BbZero},
	}
	for _, test := range tests {
		assert.Equal(t, test.left, test.value.Left(1))
		assert.Equal(t, test.right, test.value.Right(1))
	}

	assert.Equal(t, SqC4.Bb(), SqE4.Bb().Left(2))
	assert.Equal(t, SqG4.Bb(), SqE4.Bb().Right(2))
	assert.Equal(t, BbZero, SqB4.Bb().Left(2))
	assert.Equal(t, BbZero, SqG4.Bb().Right(2))
}

func TestBitboardPopLsb(t *testing.T) {
	b := SqA1.Bb() | SqE4.Bb() | SqH8.Bb()

	// iteration is in ascending square order
	assert.Equal(t, SqA1, b.PopLsb())
	assert.Equal(t, SqE4, b.PopLsb())
	assert.Equal(t, SqH8, b.PopLsb())
	assert.Equal(t, SqNone, b.PopLsb())
	assert.Equal(t, BbZero, b)
}

func TestKnightAndKingAttacks(t *testing.T) {
	tests := []struct {
		piece    Piece
		sq       Square
		expected int
	}{
		{Knight, SqA1, 2},
		{Knight, SqE4, 8},
		{Knight, SqH8, 2},
		{Knight, SqB1, 3},
		{King, SqA1, 3},
		{King, SqE4, 8},
		{King, SqE1, 5},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, GetAttacksBb(test.piece, test.sq, BbZero).PopCount(),
			"piece %s on %s", test.piece.String(), test.sq.String())
	}

	assert.True(t, GetAttacksBb(Knight, SqG1, BbZero).Has(SqF3))
	assert.True(t, GetAttacksBb(Knight, SqG1, BbZero).Has(SqH3))
	assert.True(t, GetAttacksBb(Knight, SqG1, BbZero).Has(SqE2))
}

func TestPawnAttacks(t *testing.T) {
	assert.Equal(t, SqD5.Bb()|SqF5.Bb(), GetPawnAttacks(true, SqE4))
	assert.Equal(t, SqD3.Bb()|SqF3.Bb(), GetPawnAttacks(false, SqE4))
	assert.Equal(t, SqB3.Bb(), GetPawnAttacks(true, SqA2))
	assert.Equal(t, SqG6.Bb(), GetPawnAttacks(false, SqH7))
}

func TestSliderAttacksEmptyBoard(t *testing.T) {
	assert.Equal(t, 14, GetAttacksBb(Rook, SqE4, BbZero).PopCount())
	assert.Equal(t, 13, GetAttacksBb(Bishop, SqE4, BbZero).PopCount())
	assert.Equal(t, 27, GetAttacksBb(Queen, SqE4, BbZero).PopCount())
	assert.Equal(t, 7, GetAttacksBb(Bishop, SqA1, BbZero).PopCount())
	assert.Equal(t, 14, GetAttacksBb(Rook, SqA1, BbZero).PopCount())
}

func TestSliderAttacksWithBlockers(t *testing.T) {
	// rook e4, blockers on e6 and g4
	occ := SqE6.Bb() | SqG4.Bb()
	attacks := GetAttacksBb(Rook, SqE4, occ)
	assert.True(t, attacks.Has(SqE5))
	assert.True(t, attacks.Has(SqE6)) // blocker itself is attacked
	assert.False(t, attacks.Has(SqE7))
	assert.True(t, attacks.Has(SqF4))
	assert.True(t, attacks.Has(SqG4))
	assert.False(t, attacks.Has(SqH4))
	assert.True(t, attacks.Has(SqE1))
	assert.True(t, attacks.Has(SqA4))

	// bishop c1, blocker on e3
	occ = SqE3.Bb()
	attacks = GetAttacksBb(Bishop, SqC1, occ)
	assert.True(t, attacks.Has(SqD2))
	assert.True(t, attacks.Has(SqE3))
	assert.False(t, attacks.Has(SqF4))
	assert.True(t, attacks.Has(SqB2))
	assert.True(t, attacks.Has(SqA3))
}

// The magic lookups must agree with the simple walking attack
// generation for every square over a set of pseudo random occupancies.
func TestMagicAttacksAgainstReference(t *testing.T) {
	rng := newPrnG(918273)
	for sq := SqA1; sq <= SqH8; sq++ {
		for i := 0; i < 100; i++ {
			occ := Bitboard(rng.rand64() & rng.rand64())
			assert.Equal(t, slidingAttack(&bishopDeltas, sq, occ), GetAttacksBb(Bishop, sq, occ),
				"bishop attacks differ on %s", sq.String())
			assert.Equal(t, slidingAttack(&rookDeltas, sq, occ), GetAttacksBb(Rook, sq, occ),
				"rook attacks differ on %s", sq.String())
		}
	}
}
