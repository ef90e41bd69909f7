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

// Magic holds all magic bitboard data relevant for a single square.
// Attacks is a slice into the shared attack table - both slider types
// share the table via disjoint offsets.
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

// index calculates the index into the attack table
//  occ  &= mask
//  occ  *= magic
//  occ >>= shift
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}

// single attack table shared by bishops and rooks
const magicTableSize = 156_800

var (
	attackTable  []Bitboard
	bishopMagics [SqLength]Magic
	rookMagics   [SqLength]Magic
)

// initMagics computes all bishop and rook attacks at startup. Magic
// bitboards are used to look up attacks of sliding pieces with a
// single multiply-shift-index. As a reference see
// https://www.chessprogramming.org/Magic_Bitboards ("fancy" approach).
func initMagics() {
	attackTable = make([]Bitboard, magicTableSize)
	offset := initSliderMagics(&bishopMagics, &bishopDeltas, 0)
	initSliderMagics(&rookMagics, &rookDeltas, offset)
}

// initSliderMagics finds a magic number for every square and fills the
// shared attack table starting at the given offset. Returns the offset
// behind the last filled slab.
func initSliderMagics(magics *[SqLength]Magic, deltas *[4][2]int, offset int) int {

	// PrnG seeds picked to find the magics in a short time
	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	occupancy := [4096]Bitboard{}
	reference := [4096]Bitboard{}
	epoch := [4096]int{}
	cnt := 0

	for sq := SqA1; sq <= SqH8; sq++ {

		// Board edges are not considered in the relevant occupancies
		edges := ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())

		// Given a square the mask is the bitboard of sliding attacks
		// from the square computed on an empty board. The index must be
		// big enough to contain all the attacks for each possible
		// subset of the mask and so is 2 to the power of the number of
		// 1s of the mask. Hence the shift applied to the 64 bit word.
		m := &magics[sq]
		m.Mask = slidingAttack(deltas, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())
		m.Attacks = attackTable[offset:]

		// Use the Carry-Rippler trick to enumerate all subsets of the
		// mask and store the corresponding sliding attack bitboard in
		// reference[].
		// https://www.chessprogramming.org/Traversing_Subsets_of_a_Set
		b := BbZero
		size := 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(deltas, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 { // do - while(b)
				break
			}
		}
		m.Attacks = m.Attacks[:size]

		rng := newPrnG(seeds[sq.RankOf()])

		// Find a magic for the square picking up an (almost) random
		// number until we find one that passes the verification test.
		// The attack database for the square is built up as a side
		// effect of verifying the magic. The attempt count is tracked
		// in epoch[] so the table does not have to be reset after every
		// failed attempt - constructive collisions are allowed.
		for i := 0; i < size; {
			for m.Magic = 0; ((m.Magic * m.Mask) >> 56).PopCount() < 6; {
				m.Magic = Bitboard(rng.sparseRand())
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}

		offset += size
	}

	return offset
}

// PrnG random generator for the magic bitboard search.
// xorshift64star Pseudo-Random Number Generator based on original code
// written and dedicated to the public domain by Sebastiano Vigna
// (2014). Outputs 64-bit numbers, period 2^64 - 1.
// For further analysis see
//   <http://vigna.di.unimi.it/ftp/papers/xorshift.pdf>
type prnG struct {
	s uint64
}

// newPrnG creates a new instance of the pseudo random generator.
// Seed must not be zero.
func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand is used to init the magic numbers quickly. Output
// values only have 1/8th of their bits set on average.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
