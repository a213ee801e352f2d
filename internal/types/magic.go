/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

// Magic holds all magic bitboards relevant for a single square.
// Taken from Stockfish. License see https://stockfishchess.org/about/
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

// initMagics computes all rook and bishop attacks at startup. Magic
// bitboards are used to look up attacks of sliding pieces. As a reference
// see https://www.chessprogramming.org/Magic_Bitboards. In particular,
// here we use the so called "fancy" approach. Taken from Stockfish.
func initMagics(table *[]Bitboard, magics *[64]Magic, directions *[4]Direction) {
	// Optimal PrnG seeds to pick the correct magics in the shortest time.
	// Indexed by rank of the square being initialised.
	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	occupancy := [4096]Bitboard{}
	reference := [4096]Bitboard{}
	var edges, b Bitboard
	cnt := 0
	size := 0
	epoch := [4096]int{}

	for sq := Square(0); sq < SqLength; sq++ {
		// Board edges are not considered in the relevant occupancies.
		edges = ((rankBb[Rank1] | rankBb[Rank8]) &^ sq.RankOf().Bb()) |
			((fileBb[FileA] | fileBb[FileH]) &^ sq.FileOf().Bb())

		// Given a square 'sq', the mask is the bitboard of sliding attacks
		// from 'sq' computed on an empty board. The index must be big
		// enough to contain all the attacks for each possible subset of
		// the mask, so it is 2 power the number of 1s of the mask. Hence
		// we deduce the size of the shift to apply to get the index.
		m := &(*magics)[sq]
		m.Mask = slidingAttack(directions, sq, BbZero, 0) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		// Set the offset for the attacks table of the square. Individual
		// table sizes per square with "Fancy Magic Bitboards".
		if sq == 0 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		// Use the Carry-Rippler trick to enumerate all subsets of
		// masks[s] and store the corresponding sliding attack bitboard in
		// reference[]. https://www.chessprogramming.org/Traversing_Subsets_of_a_Set
		b = 0
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b, 0)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}

		rng := newPrnG(seeds[sq.RankOf()])

		// Find a magic for square 's' picking up an (almost) random
		// number until we find one that passes the verification test. A
		// good magic maps every possible occupancy to an index that looks
		// up the correct sliding attack in the attacks[s] database; we
		// build that database for square 's' as a side effect of
		// verifying the magic.
		for i := 0; i < size; {
			for m.Magic = 0; ; {
				m.Magic = Bitboard(rng.sparseRand())
				if ((m.Magic * m.Mask) >> 56).PopCount() < 6 {
					break
				}
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
	}
}

// index calculates the index into the attacks table for a given occupancy.
// https://www.chessprogramming.org/Magic_Bitboards
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}

// index2attack looks up the attack bitboard for a given occupancy.
func (m *Magic) index2attack(occupied Bitboard) Bitboard {
	return m.Attacks[m.index(occupied)]
}

// PrnG is the random generator used to find magic bitboard multipliers.
// From Stockfish. xorshift64star Pseudo-Random Number Generator, based on
// original code written and dedicated to the public domain by Sebastiano
// Vigna (2014).
//  -  Outputs 64-bit numbers
//  -  Passes Dieharder and SmallCrush test batteries
//  -  Does not require warm-up, no zeroland to escape
//  -  Internal state is a single 64-bit integer
//  -  Period is 2^64 - 1
type PrnG struct {
	s uint64
}

// newPrnG creates a new instance of the pseudo random generator.
func newPrnG(seed uint64) *PrnG {
	return &PrnG{s: seed}
}

func (r *PrnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand is used to fast-init magic numbers: output values only have
// 1/8th of their bits set on average.
func (r *PrnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
