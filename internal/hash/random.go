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

package hash

// random is a xorshift64star pseudo-random number generator.
// Based on original code written and dedicated to the public domain
// by Sebastiano Vigna (2014). Outputs 64-bit numbers, passes
// Dieharder and SmallCrush test batteries, period 2^64 - 1.
// For further analysis see
//   <http://vigna.di.unimi.it/ftp/papers/xorshift.pdf>
type random struct {
	s uint64
}

// newRandom creates a random generator with its 64-bit state derived
// from the given 32-byte seed. The folding is deterministic so the
// generated key tables are stable across runs and platforms.
func newRandom(seed [32]byte) *random {
	s := uint64(0)
	for _, b := range seed {
		s = s*31 + uint64(b) + 1
	}
	if s == 0 {
		s = 1070372
	}
	return &random{s: s}
}

// rand64 returns a 64-bit random number.
func (r *random) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * uint64(2685821657736338717)
}

// fill fills the given key slice from the generator.
func (r *random) fill(keys []Key) {
	for i := range keys {
		keys[i] = Key(r.rand64())
	}
}
