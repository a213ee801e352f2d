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

// Package history provides data structures and functionality to manage
// history driven move tables (e.g. history counter, counter moves, etc.)
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.German)

// History is a data structure updated during search to provide the move
// generator with valuable information for move sorting. HistoryCount is
// indexed [color][pieceType][toSquare] rather than [color][from][to]: two
// quiet moves landing on the same square score the same regardless of
// origin, which shrinks the table from 8192 to 768 entries and matches how the move ordering table
// looks the score up (it only ever has the moving piece and destination
// at hand, not a resolved "from/to" pair yet).
type History struct {
	HistoryCount [ColorLength][PtLength][SqLength]int64
	CounterMoves [ColorLength][SqLength]Move
}

// NewHistory creates a new History instance.
func NewHistory() *History {
	return &History{}
}

// Update increases the history score for a quiet move that caused a
// beta cutoff by the search depth, so cutoffs found deeper in the
// tree count for more.
func (h *History) Update(c Color, pt PieceType, to Square, depth int) {
	h.HistoryCount[c][pt][to] += int64(depth)
}

// Penalize decreases the history score for a quiet move that was tried
// but did not cause a beta cutoff, clamped at zero.
func (h *History) Penalize(c Color, pt PieceType, to Square, depth int) {
	h.HistoryCount[c][pt][to] -= int64(depth)
	if h.HistoryCount[c][pt][to] < 0 {
		h.HistoryCount[c][pt][to] = 0
	}
}

// Get returns the current history score for a quiet move.
func (h *History) Get(c Color, pt PieceType, to Square) int64 {
	return h.HistoryCount[c][pt][to]
}

// SetCounterMove records m as the best reply to the move just made by c's
// opponent landing on square to.
func (h *History) SetCounterMove(c Color, to Square, m Move) {
	h.CounterMoves[c][to] = m
}

// CounterMove returns the recorded counter-move reply, MoveNone if none.
func (h *History) CounterMove(c Color, to Square) Move {
	return h.CounterMoves[c][to]
}

// Clear resets all history and counter-move data, used at the start of a
// new game.
func (h *History) Clear() {
	*h = History{}
}

func (h History) String() string {
	sb := strings.Builder{}
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt < PtLength; pt++ {
			for to := Square(0); to < SqLength; to++ {
				count := h.HistoryCount[c][pt][to]
				if count == 0 {
					continue
				}
				sb.WriteString(out.Sprintf("%s %s->%s: %d\n", c.String(), pt.String(), to.String(), count))
			}
		}
	}
	return sb.String()
}
