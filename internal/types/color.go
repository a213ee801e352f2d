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

// Color represents the side to move or the owner of a piece.
type Color uint8

// Color values.
//noinspection GoUnusedConst
const (
	White       Color = iota
	Black       Color = iota
	ColorNone   Color = iota
	ColorLength       = ColorNone
)

// IsValid checks if c represents a valid color.
func (c Color) IsValid() bool {
	return c < ColorNone
}

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// MoveDirection returns the direction a pawn of this color moves towards
// (North for White, South for Black).
func (c Color) MoveDirection() Direction {
	if c == White {
		return North
	}
	return South
}

const colorLabels string = "wb"

// String returns "w" or "b", "-" if the color is invalid.
func (c Color) String() string {
	if c >= ColorNone {
		return "-"
	}
	return string(colorLabels[c])
}
