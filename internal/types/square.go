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

import "strconv"

// Square identifies one of the 64 board squares. Squares are numbered with
// a8=0, h8=7, a7=8, ..., a1=56, h1=63 -- rank decreases as the index grows.
// This is the numbering the move encoding and the Zobrist keys are built on.
type Square uint8

// Square values for the eight corner/edge squares used throughout the
// engine as loop bounds and sentinels. The full set (SqA8..SqH1) is
// generated below in squareNames.
//noinspection GoUnusedConst
const (
	SqA8 Square = 0
	SqH8 Square = 7
	SqA1 Square = 56
	SqH1 Square = 63

	SqNone   Square = 64
	SqLength        = 64
)

// Direction is a signed square-index delta.
type Direction int8

// Direction values, consistent with a8=0 .. h1=63 numbering: moving North
// (towards rank 8) decreases the index.
//noinspection GoUnusedConst
const (
	North     Direction = -8
	NorthNorth Direction = -16
	South     Direction = 8
	SouthSouth Direction = 16
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = -7
	Northwest Direction = -9
	Southeast Direction = 9
	Southwest Direction = 7
)

// IsValid checks if sq represents a valid, on-board square.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	if !sq.IsValid() {
		return FileNone
	}
	return File(sq % 8)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	if !sq.IsValid() {
		return RankNone
	}
	return Rank(7 - sq/8)
}

// SquareOf combines a file and a rank into a square.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square((7-r)*8) + Square(f)
}

// Bb returns the single-bit Bitboard for this square.
func (sq Square) Bb() Bitboard {
	if !sq.IsValid() {
		return BbZero
	}
	return squareBb[sq]
}

// To returns the square reached by moving in the given direction, or SqNone
// if that step would leave the board (including file wraparound).
func (sq Square) To(d Direction) Square {
	if !sq.IsValid() {
		return SqNone
	}
	t := Square(int(sq) + int(d))
	if t > SqH1 {
		return SqNone
	}
	// reject wraps around the east/west board edge
	switch d {
	case East, Northeast, Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
	}
	return t
}

// NeighbourFilesMask returns a Bitboard of the files immediately to the
// west and east of this square's file (used for en passant capturer tests).
func (sq Square) NeighbourFilesMask() Bitboard {
	if !sq.IsValid() {
		return BbZero
	}
	var bb Bitboard
	if f := sq.FileOf(); f > FileA {
		bb |= File(f - 1).Bb()
	}
	if f := sq.FileOf(); f < FileH {
		bb |= File(f + 1).Bb()
	}
	return bb
}

// FileDistance returns the absolute file distance between two squares.
func FileDistance(sq1, sq2 Square) int {
	f1, f2 := int(sq1.FileOf()), int(sq2.FileOf())
	if f1 > f2 {
		return f1 - f2
	}
	return f2 - f1
}

// RankDistance returns the absolute rank distance between two squares.
func RankDistance(sq1, sq2 Square) int {
	r1, r2 := int(sq1.RankOf()), int(sq2.RankOf())
	if r1 > r2 {
		return r1 - r2
	}
	return r2 - r1
}

// SquareDistance returns Chebyshev distance between two squares.
func SquareDistance(sq1, sq2 Square) int {
	fd, rd := FileDistance(sq1, sq2), RankDistance(sq1, sq2)
	if fd > rd {
		return fd
	}
	return rd
}

var squareLabels [SqLength]string

func init() {
	for sq := Square(0); sq < SqLength; sq++ {
		squareLabels[sq] = sq.FileOf().String() + sq.RankOf().String()
	}
}

// String returns the algebraic name of the square (e.g. "e4"), or "-" if
// the square is not valid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return squareLabels[sq]
}

// MakeSquare parses an algebraic square name (e.g. "e4"). Returns SqNone on
// any malformed input.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	fileC, rankC := s[0], s[1]
	if fileC < 'a' || fileC > 'h' {
		return SqNone
	}
	if rankC < '1' || rankC > '8' {
		return SqNone
	}
	f := File(fileC - 'a')
	r, err := strconv.Atoi(string(rankC))
	if err != nil {
		return SqNone
	}
	return SquareOf(f, Rank(r-1))
}
