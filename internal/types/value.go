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

// Value is a centipawn evaluation or search score.
type Value int32

// Value constants used throughout search and evaluation.
//noinspection GoUnusedConst
const (
	ValueZero     Value = 0
	ValueDraw     Value = 0
	ValueInf      Value = 20000
	ValueNA       Value = -ValueInf - 1
	ValueMate     Value = 19000
	ValueMateInMaxPly  Value = ValueMate - 1000
	ValueMin      Value = -ValueMate
	ValueMax      Value = ValueMate

	// ValueCheckMate is the score reported for the strongest possible mate.
	ValueCheckMate Value = ValueMax
	// ValueCheckMateThreshold is the score above (or below, negated) which a
	// value is considered a forced mate rather than a material evaluation.
	ValueCheckMateThreshold Value = ValueCheckMate - MaxDepth - 1
)

// GamePhaseMax is the material-sum threshold (in minor-piece units) above
// which the position is considered fully "mid game" for PST blending.
const GamePhaseMax = 24

// IsValid checks v is within the representable evaluation/search range.
func (v Value) IsValid() bool {
	return v >= -ValueInf && v <= ValueInf
}

// IsCheckMateValue reports whether v encodes a forced mate score (for
// either side), used by the UCI "score mate N" formatting and by
// spec-level "score >= MATE_VALUE - k" assertions.
func (v Value) IsCheckMateValue() bool {
	return v >= ValueMateInMaxPly || v <= -ValueMateInMaxPly
}
