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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardHasPushPop(t *testing.T) {
	var bb Bitboard
	bb.PushSquare(SqA1)
	bb.PushSquare(SqH8)
	assert.True(t, bb.Has(SqA1))
	assert.True(t, bb.Has(SqH8))
	assert.False(t, bb.Has(SqA8))
	bb.PopSquare(SqA1)
	assert.False(t, bb.Has(SqA1))
	assert.True(t, bb.Has(SqH8))
}

func TestBitboardLsbMsb(t *testing.T) {
	var bb Bitboard
	assert.Equal(t, SqNone, bb.Lsb())
	assert.Equal(t, SqNone, bb.Msb())

	bb.PushSquare(SqA8)
	bb.PushSquare(SqH1)
	assert.Equal(t, SqA8, bb.Lsb())
	assert.Equal(t, SqH1, bb.Msb())

	popped := bb.PopLsb()
	assert.Equal(t, SqA8, popped)
	assert.Equal(t, SqH1, bb.Lsb())
}

func TestBitboardPopCount(t *testing.T) {
	var bb Bitboard
	assert.Equal(t, 0, bb.PopCount())
	bb.PushSquare(SqA1)
	bb.PushSquare(SqH8)
	bb.PushSquare(SqA8)
	assert.Equal(t, 3, bb.PopCount())
}

func TestShiftBitboardVerticalNorthSouth(t *testing.T) {
	a2 := MakeSquare("a2")
	bb := a2.Bb()
	assert.Equal(t, MakeSquare("a3").Bb(), ShiftBitboard(bb, North))
	assert.Equal(t, SqA1.Bb(), ShiftBitboard(bb, South))
}

func TestShiftBitboardEastWestNoWrap(t *testing.T) {
	// h-file pawns must not wrap to the a-file when shifted east, and
	// vice versa for a-file pawns shifted west.
	assert.Equal(t, BbZero, ShiftBitboard(SqH1.Bb(), East))
	assert.Equal(t, BbZero, ShiftBitboard(SqA1.Bb(), West))
	assert.Equal(t, MakeSquare("b1").Bb(), ShiftBitboard(SqA1.Bb(), East))
}

func TestGetPawnAttacks(t *testing.T) {
	e4 := MakeSquare("e4")
	whiteAtt := GetPawnAttacks(White, e4)
	assert.True(t, whiteAtt.Has(MakeSquare("d5")))
	assert.True(t, whiteAtt.Has(MakeSquare("f5")))
	assert.Equal(t, 2, whiteAtt.PopCount())

	blackAtt := GetPawnAttacks(Black, e4)
	assert.True(t, blackAtt.Has(MakeSquare("d3")))
	assert.True(t, blackAtt.Has(MakeSquare("f3")))
	assert.Equal(t, 2, blackAtt.PopCount())
}

func TestGetPseudoAttacksKnight(t *testing.T) {
	att := GetPseudoAttacks(Knight, MakeSquare("d4"))
	assert.Equal(t, 8, att.PopCount())
	assert.True(t, att.Has(MakeSquare("b3")))
	assert.True(t, att.Has(MakeSquare("f5")))

	cornerAtt := GetPseudoAttacks(Knight, SqA1)
	assert.Equal(t, 2, cornerAtt.PopCount())
}

func TestGetPseudoAttacksKing(t *testing.T) {
	att := GetPseudoAttacks(King, MakeSquare("d4"))
	assert.Equal(t, 8, att.PopCount())

	cornerAtt := GetPseudoAttacks(King, SqA1)
	assert.Equal(t, 3, cornerAtt.PopCount())
}

func TestGetAttacksBbRook(t *testing.T) {
	// rook on d4, empty board -> 14 squares (full rank + file minus self).
	att := GetAttacksBb(Rook, MakeSquare("d4"), BbZero)
	assert.Equal(t, 14, att.PopCount())

	// block it in on all four sides with adjacent occupied squares.
	occ := MakeSquare("d5").Bb() | MakeSquare("d3").Bb() | MakeSquare("c4").Bb() | MakeSquare("e4").Bb()
	blocked := GetAttacksBb(Rook, MakeSquare("d4"), occ)
	assert.Equal(t, 4, blocked.PopCount())
	assert.True(t, blocked.Has(MakeSquare("d5")))
	assert.False(t, blocked.Has(MakeSquare("d6")))
}

func TestGetAttacksBbBishop(t *testing.T) {
	att := GetAttacksBb(Bishop, MakeSquare("d4"), BbZero)
	assert.Equal(t, 13, att.PopCount())
}

func TestGetAttacksBbQueen(t *testing.T) {
	rookAtt := GetAttacksBb(Rook, MakeSquare("d4"), BbZero)
	bishopAtt := GetAttacksBb(Bishop, MakeSquare("d4"), BbZero)
	queenAtt := GetAttacksBb(Queen, MakeSquare("d4"), BbZero)
	assert.Equal(t, rookAtt|bishopAtt, queenAtt)
}

func TestIntermediate(t *testing.T) {
	a1, h8 := SqA1, SqH8
	between := Intermediate(a1, h8)
	assert.True(t, between.Has(a1))
	assert.True(t, between.Has(h8))
	assert.True(t, between.Has(MakeSquare("d4")))
	assert.False(t, between.Has(MakeSquare("a2")))

	assert.Equal(t, SqA1.Bb(), Intermediate(SqA1, SqA1))
	assert.Equal(t, BbZero, Intermediate(SqA1, MakeSquare("b3")))
}

func TestBitboardString(t *testing.T) {
	bb := SqA8.Bb()
	s := bb.String()
	assert.Len(t, s, 64)
	assert.Equal(t, byte('1'), s[0])
}

func TestBitboardStringBoard(t *testing.T) {
	bb := SqA8.Bb() | SqH1.Bb()
	board := bb.StringBoard()
	assert.NotEmpty(t, board)
}
