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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosValuesMirror(t *testing.T) {
	// White and Black share the same table, mirrored vertically: a pawn on
	// e2 for White should score the same as a pawn on e7 for Black.
	assert.Equal(t, PosMidValue(WhitePawn, SqE2), PosMidValue(BlackPawn, MakeSquare("e7")))
	assert.Equal(t, PosEndValue(WhiteKnight, SqD4), PosEndValue(BlackKnight, MakeSquare("d5")))
}

func TestPosValuesKnownCell(t *testing.T) {
	assert.Equal(t, Value(0), PosMidValue(WhitePawn, SqE2))
	assert.Equal(t, Value(90), PosEndValue(WhitePawn, SqE2))
	assert.Equal(t, Value(-30), PosMidValue(WhitePawn, MakeSquare("d7")))
}
