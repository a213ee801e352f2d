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
	"fmt"
	"strings"
)

// MoveType distinguishes the four shapes a move can take.
type MoveType uint8

// MoveType values.
//noinspection GoUnusedConst
const (
	Normal    MoveType = 0
	Promotion MoveType = 1
	Castle    MoveType = 2
	EnPassant MoveType = 3

	// Castling is another name for Castle, used by the position code.
	Castling = Castle
)

// IsValid checks t is one of the four known move types (always true for a
// 2-bit field, kept for symmetry with the other types' IsValid methods).
func (t MoveType) IsValid() bool {
	return t <= EnPassant
}

func (t MoveType) String() string {
	switch t {
	case Normal:
		return "n"
	case Promotion:
		return "p"
	case Castle:
		return "c"
	case EnPassant:
		return "e"
	default:
		return "-"
	}
}

// Move is a 16-bit encoded chess move: destination, origin, move type and
// (for promotions) the promoted-to piece type.
//
// A move carries no ordering score of its own. The teacher's Move packs a
// 16-bit sort value into its upper bits; this engine instead keeps Move a
// pure value type and pairs it with a score in ScoredMove for ordering
// buffers (see ScoredMove below), per the recommendation that a systems
// reimplementation should prefer an explicit {move, score} pair to bit
// packing.
//
//  BITMAP 16-bit
//  1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//  5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  --------------------------------
//                       1 1 1 1 1 1  to
//           1 1 1 1 1 1              from
//       1 1                          promotion piece type (pt-2 -> 0-3)
//   1 1                              move type
type Move uint16

// Move sentinels.
//noinspection GoUnusedConst
const (
	MoveNone Move = 0
	MoveNull Move = 65
)

const (
	fromShift     uint = 6
	promTypeShift uint = 12
	typeShift     uint = 14

	squareMask   Move = 0x3F
	toMask            = squareMask
	fromMask          = squareMask << fromShift
	promTypeMask Move = 3 << promTypeShift
	moveTypeMask Move = 3 << typeShift
)

// CreateMove returns an encoded Move. promType is ignored unless t is
// Promotion.
func CreateMove(from, to Square, t MoveType, promType PieceType) Move {
	if promType < Knight {
		promType = Knight
	}
	// promType is reduced to 2 bits (Knight, Bishop, Rook, Queen) by
	// subtracting Knight's value to get a number in 0..3.
	return Move(to) |
		Move(from)<<fromShift |
		Move(promType-Knight)<<promTypeShift |
		Move(t)<<typeShift
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m & toMask)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// MoveType returns the move's type.
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> typeShift)
}

// PromotionType returns the promoted-to piece type. Meaningless unless
// MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m&promTypeMask)>>promTypeShift) + Knight
}

// IsValid checks the move has valid squares, promotion type and move type.
// MoveNone is never valid.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.PromotionType().IsValid() &&
		m.MoveType().IsValid()
}

// String is a UCI-compatible rendering of the move, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		sb.WriteString(m.PromotionType().Char())
	}
	return sb.String()
}

// StringUci is an alias for String, kept because search and UCI output
// code refers to moves by this name throughout the codebase.
func (m Move) StringUci() string {
	return m.String()
}

// MoveOf strips any ordering score carried alongside m, returning the bare
// move. Defined on Move itself (as the identity) as well as on ScoredMove
// so callers that only know they are holding "something move-shaped" -- a
// plain Move or a scored one pulled out of a move list -- can always reach
// the underlying move the same way.
func (m Move) MoveOf() Move {
	return m
}

// SetValue pairs m with an ordering/search score, producing a ScoredMove.
func (m Move) SetValue(v Value) ScoredMove {
	return ScoredMove{Move: m, Score: v}
}

// StringBits is a diagnostic rendering used by tests and the "d" command.
func (m Move) StringBits() string {
	return fmt.Sprintf(
		"Move{from=%s to=%s type=%s promo=%s (%d)}",
		m.From(), m.To(), m.MoveType(), m.PromotionType().Char(), uint16(m))
}

// ScoredMove pairs a Move with a score. Move generation and ordering
// buffers hold []ScoredMove rather than encoding the score into the move
// bits themselves (see the Move doc comment). The transposition table
// reuses the same pair to remember a position's best move alongside the
// search value that move produced.
//
// Move is embedded rather than named so a ScoredMove can be used wherever
// a Move is expected (m.From(), m.To(), m.StringUci(), ...) without an
// explicit ".Move" everywhere move lists are walked.
type ScoredMove struct {
	Move
	Score Value
}

// ValueOf returns the score paired with the move.
func (sm ScoredMove) ValueOf() Value {
	return sm.Score
}
