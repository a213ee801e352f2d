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

func TestSquareType(t *testing.T) {
	tests := []struct {
		value    Square
		expected int
	}{
		{SqA8, 0},
		{SqH8, 7},
		{SqA1, 56},
		{SqH1, 63},
		{SqNone, 64},
		{Square(100), 100},
	}
	for _, test := range tests {
		assert.EqualValues(t, test.expected, test.value)
	}
}

func TestValidSquare(t *testing.T) {
	tests := []struct {
		value    Square
		expected bool
	}{
		{SqA8, true},
		{SqH1, true},
		{SqNone, false},
		{Square(100), false},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.value.IsValid())
	}
}

func TestSquareStr(t *testing.T) {
	tests := []struct {
		value    Square
		expected string
	}{
		{SqA8, "a8"},
		{SqH8, "h8"},
		{SqA1, "a1"},
		{SqH1, "h1"},
		{SqNone, "-"},
		{Square(100), "-"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.value.String())
	}
}

func TestSquareFromFileRank(t *testing.T) {
	tests := []struct {
		file   File
		rank   Rank
		square Square
	}{
		{FileA, Rank8, SqA8},
		{FileH, Rank8, SqH8},
		{FileA, Rank1, SqA1},
		{FileH, Rank1, SqH1},
		{FileNone, RankNone, SqNone},
		{FileA, Rank(50), SqNone},
	}
	for _, test := range tests {
		assert.Equal(t, test.square, SquareOf(test.file, test.rank))
	}
}

func TestFileRankOf(t *testing.T) {
	assert.Equal(t, FileA, SqA1.FileOf())
	assert.Equal(t, Rank1, SqA1.RankOf())
	assert.Equal(t, FileH, SqH8.FileOf())
	assert.Equal(t, Rank8, SqH8.RankOf())
}

func TestSquareDir(t *testing.T) {
	a1, a2, a3, b1 := MakeSquare("a1"), MakeSquare("a2"), MakeSquare("a3"), MakeSquare("b1")
	h7 := MakeSquare("h7")

	assert.Equal(t, a2, a1.To(North))
	assert.Equal(t, a3, a1.To(North).To(North))
	assert.Equal(t, b1, a1.To(East))
	assert.Equal(t, a1, a2.To(South))
	assert.Equal(t, SqNone, a2.To(South).To(South))
	assert.Equal(t, SqNone, a1.To(West))
	assert.Equal(t, SqNone, SqH8.To(North))
	assert.Equal(t, SqNone, SqH8.To(East))
	assert.Equal(t, h7, SqH8.To(South))
	assert.Equal(t, SqNone, SqA1.To(East).To(East).To(East).To(East).To(East).To(East).To(East).To(East))
}

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SqA8, MakeSquare("a8"))
	assert.Equal(t, SqH8, MakeSquare("h8"))
	assert.Equal(t, SqA1, MakeSquare("a1"))
	assert.Equal(t, SqH1, MakeSquare("h1"))
	assert.Equal(t, SqNone, MakeSquare("i1"))
	assert.Equal(t, SqNone, MakeSquare("a9"))
	assert.Equal(t, SqNone, MakeSquare("aa"))
}

func TestSquareDistance(t *testing.T) {
	assert.Equal(t, 0, SquareDistance(SqA1, SqA1))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 7, FileDistance(SqA1, SqH8))
	assert.Equal(t, 7, RankDistance(SqA1, SqH8))
}
