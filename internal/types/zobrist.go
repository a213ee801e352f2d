//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
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

// Key is a Zobrist hash of a position.
type Key uint64

// Zobrist holds the process-wide pseudo-random key tables used to
// incrementally hash a position. Generated once, from a fixed seed, so
// hashes are reproducible across runs -- spec.md's Design Notes call this
// out explicitly as a requirement, not an accident.
var Zobrist = struct {
	Piece    [PieceLength][SqLength]Key
	Castle   [16]Key
	EpFile   [8]Key
	SideToMove Key
}{}

// fixed seed for the Zobrist key generator, distinct from the magic search
// seeds so neither table perturbs the other.
const zobristSeed uint64 = 0x9E3779B97F4A7C15

func initZobrist() {
	rng := newPrnG(zobristSeed)
	for p := Piece(0); p < PieceLength; p++ {
		for sq := Square(0); sq < SqLength; sq++ {
			Zobrist.Piece[p][sq] = Key(rng.rand64())
		}
	}
	for i := range Zobrist.Castle {
		Zobrist.Castle[i] = Key(rng.rand64())
	}
	for i := range Zobrist.EpFile {
		Zobrist.EpFile[i] = Key(rng.rand64())
	}
	Zobrist.SideToMove = Key(rng.rand64())
}
