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

// Package types provides the primitive board representation types shared by
// every other package: squares, colors, piece types, bitboards, magic
// attack tables and moves.
package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares; bit i is set iff square i is a
// member of the set.
type Bitboard uint64

// BbZero and BbAll are the empty and full bitboards.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// File and rank masks, indexed 0..7 (FileA..FileH / Rank1..Rank8).
var (
	fileBb [8]Bitboard
	rankBb [8]Bitboard

	squareBb [SqLength]Bitboard

	// masks used to drop bits that would otherwise wrap around the board
	// when shifting in a direction with an east or west component.
	notFileA Bitboard
	notFileH Bitboard

	knightAttacks [SqLength]Bitboard
	kingAttacks   [SqLength]Bitboard
	pawnAttacks   [ColorLength][SqLength]Bitboard

	between [SqLength][SqLength]Bitboard

	rookMagics   [SqLength]Magic
	bishopMagics [SqLength]Magic
	rookTable    []Bitboard
	bishopTable  []Bitboard

	rookDirections   = [4]Direction{North, South, East, West}
	bishopDirections = [4]Direction{Northeast, Northwest, Southeast, Southwest}

	initialized bool
)

func init() {
	for f := FileA; f <= FileH; f++ {
		var bb Bitboard
		for r := Rank1; r <= Rank8; r++ {
			bb.PushSquare(SquareOf(f, r))
		}
		fileBb[f] = bb
	}
	for r := Rank1; r <= Rank8; r++ {
		var bb Bitboard
		for f := FileA; f <= FileH; f++ {
			bb.PushSquare(SquareOf(f, r))
		}
		rankBb[r] = bb
	}
	for sq := Square(0); sq < SqLength; sq++ {
		squareBb[sq] = Bitboard(1) << sq
	}
	notFileA = ^fileBb[FileA]
	notFileH = ^fileBb[FileH]

	initLeaperAttacks()
	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)
	initMagics(&rookTable, &rookMagics, &rookDirections)
	initMagics(&bishopTable, &bishopMagics, &bishopDirections)
	initBetween()
	initPosValues()
	initZobrist()
	initCastlingRights()

	initialized = true
}

// Has reports whether the given square is a member of the bitboard.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != BbZero
}

// PushSquare sets the given square's bit.
func (b *Bitboard) PushSquare(sq Square) {
	*b |= sq.Bb()
}

// PopSquare clears the given square's bit.
func (b *Bitboard) PopSquare(sq Square) {
	*b &^= sq.Bb()
}

// Lsb returns the least significant set square, SqNone if empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set square, SqNone if empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb clears and returns the least significant set square.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		*b &= *b - 1
	}
	return sq
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// ShiftBitboard shifts every bit of b one step in direction d, masking off
// bits that would wrap around the east or west edge of the board.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b >> 8
	case South:
		return b << 8
	case NorthNorth:
		return b >> 16
	case SouthSouth:
		return b << 16
	case East:
		return (b & notFileH) << 1
	case West:
		return (b & notFileA) >> 1
	case Northeast:
		return (b & notFileH) >> 7
	case Southeast:
		return (b & notFileH) << 9
	case Northwest:
		return (b & notFileA) >> 9
	case Southwest:
		return (b & notFileA) << 7
	default:
		return BbZero
	}
}

func initLeaperAttacks() {
	for sq := Square(0); sq < SqLength; sq++ {
		knightAttacks[sq] = knightAttacksFrom(sq)
		kingAttacks[sq] = slidingAttack(&[4]Direction{North, South, East, West}, sq, BbAll, 1) |
			slidingAttack(&[4]Direction{Northeast, Northwest, Southeast, Southwest}, sq, BbAll, 1)
		pawnAttacks[White][sq] = pawnAttacksFrom(White, sq)
		pawnAttacks[Black][sq] = pawnAttacksFrom(Black, sq)
	}
}

func knightAttacksFrom(sq Square) Bitboard {
	type delta struct{ df, dr int }
	deltas := []delta{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	var bb Bitboard
	f, r := int(sq.FileOf()), int(sq.RankOf())
	for _, d := range deltas {
		nf, nr := f+d.df, r+d.dr
		if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
			continue
		}
		bb.PushSquare(SquareOf(File(nf), Rank(nr)))
	}
	return bb
}

func pawnAttacksFrom(c Color, sq Square) Bitboard {
	bb := sq.Bb()
	if c == White {
		return ShiftBitboard(bb, Northeast) | ShiftBitboard(bb, Northwest)
	}
	return ShiftBitboard(bb, Southeast) | ShiftBitboard(bb, Southwest)
}

// slidingAttack walks each of the given directions from sq, stopping at
// board edges or, once maxSteps is reached, after that many steps (0 means
// unbounded). Also stops upon reaching an occupied square (inclusive).
// Used both by king init (maxSteps=1) and by magic initialisation
// and the between-squares table (maxSteps=0).
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard, maxSteps int) Bitboard {
	var attack Bitboard
	for i := 0; i < 4; i++ {
		s := sq
		for step := 0; maxSteps == 0 || step < maxSteps; step++ {
			next := s.To(directions[i])
			if next == SqNone {
				break
			}
			s = next
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

func initBetween() {
	for s1 := Square(0); s1 < SqLength; s1++ {
		for s2 := Square(0); s2 < SqLength; s2++ {
			if s1 == s2 {
				between[s1][s2] = s1.Bb()
				continue
			}
			rookAtt := GetAttacksBb(Rook, s1, BbZero)
			bishopAtt := GetAttacksBb(Bishop, s1, BbZero)
			switch {
			case rookAtt.Has(s2):
				between[s1][s2] = slidingAttack(&rookDirections, s1, s2.Bb(), 0) & slidingAttack(&rookDirections, s2, s1.Bb(), 0)
				between[s1][s2].PushSquare(s1)
				between[s1][s2].PushSquare(s2)
			case bishopAtt.Has(s2):
				between[s1][s2] = slidingAttack(&bishopDirections, s1, s2.Bb(), 0) & slidingAttack(&bishopDirections, s2, s1.Bb(), 0)
				between[s1][s2].PushSquare(s1)
				between[s1][s2].PushSquare(s2)
			default:
				between[s1][s2] = BbZero
			}
		}
	}
}

// Intermediate returns the squares strictly between sq1 and sq2 on a shared
// rank, file or diagonal, plus the two endpoints; BbZero if not aligned.
func Intermediate(sq1, sq2 Square) Bitboard {
	return between[sq1][sq2]
}

// GetPawnAttacks returns the squares attacked by a pawn of color c on sq.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// GetPseudoAttacks returns the precomputed leaper attack set for knight or
// king; panics for any other piece type (sliders need GetAttacksBb).
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	switch pt {
	case Knight:
		return knightAttacks[sq]
	case King:
		return kingAttacks[sq]
	default:
		panic("GetPseudoAttacks only supports Knight and King")
	}
}

// GetAttacksBb returns the attack bitboard for a piece of type pt standing
// on sq, given the full board occupancy. Panics for Pawn (use
// GetPawnAttacks) and PtNone.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return knightAttacks[sq]
	case King:
		return kingAttacks[sq]
	case Rook:
		return rookMagics[sq].index2attack(occupied)
	case Bishop:
		return bishopMagics[sq].index2attack(occupied)
	case Queen:
		return rookMagics[sq].index2attack(occupied) | bishopMagics[sq].index2attack(occupied)
	default:
		panic("GetAttacksBb does not support Pawn or PtNone")
	}
}

// String renders the bitboard as 64 '1'/'0' characters, a8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for sq := Square(0); sq < SqLength; sq++ {
		if b.Has(sq) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// StringBoard renders the bitboard as an 8x8 ASCII board, rank 8 on top.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}
