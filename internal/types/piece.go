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

// PieceType identifies the kind of piece, independent of color.
type PieceType uint8

// PieceType values.
//noinspection GoUnusedConst
const (
	Pawn     PieceType = iota
	Knight   PieceType = iota
	Bishop   PieceType = iota
	Rook     PieceType = iota
	Queen    PieceType = iota
	King     PieceType = iota
	PtNone   PieceType = iota
	PtLength           = PtNone
)

// IsValid checks if pt represents a valid piece type.
func (pt PieceType) IsValid() bool {
	return pt < PtNone
}

const pieceTypeLabels string = "pnbrqk"

// Char returns a single lower case letter for the piece type, "-" if invalid.
func (pt PieceType) Char() string {
	if pt >= PtNone {
		return "-"
	}
	return string(pieceTypeLabels[pt])
}

// String returns the lower case letter for the piece type, "-" if invalid.
func (pt PieceType) String() string {
	return pt.Char()
}

// pieceTypeValue is the material value used by the position's material
// counts and the evaluator's material term; move ordering's MVV term uses
// mvvValue below instead.
var pieceTypeValue = [PtLength + 1]Value{100, 320, 330, 500, 900, 2000, 0}

// ValueOf returns the static material value of a piece type.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

// mvvValue is the piece-type value used by the move scorer's MVV (most
// valuable victim) term; PieceType.ValueOf() is not reused here because the
// ordering table calls for different numbers than the evaluator's material
// term (King holds -1, as a captured king never legally occurs, but the
// table must still be total).
//
//  PAWN=200 KNIGHT=300 BISHOP=350 ROOK=500 QUEEN=1000 KING=-1 NONE=100
var mvvValue = [PtLength + 1]int{200, 300, 350, 500, 1000, -1, 100}

// Mvv returns the most-valuable-victim score used by move ordering.
func (pt PieceType) Mvv() int {
	return mvvValue[pt]
}

// Piece combines a Color and a PieceType into a single board-occupant value,
// used as the index for piece-square tables and the `board[64]` array.
type Piece uint8

// Piece values. Ordered white pieces first, then black, matching the
// teacher's board[64] occupant encoding.
//noinspection GoUnusedConst
const (
	WhitePawn   Piece = iota // 0
	WhiteKnight              // 1
	WhiteBishop              // 2
	WhiteRook                // 3
	WhiteQueen               // 4
	WhiteKing                // 5
	BlackPawn                // 6
	BlackKnight              // 7
	BlackBishop              // 8
	BlackRook                // 9
	BlackQueen               // 10
	BlackKing                // 11
	PieceNone                // 12
	PieceLength = PieceNone
)

// MakePiece combines a color and a piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	if !c.IsValid() || !pt.IsValid() {
		return PieceNone
	}
	return Piece(c)*6 + Piece(pt)
}

// ColorOf returns the color of the piece.
func (p Piece) ColorOf() Color {
	if p >= PieceNone {
		return ColorNone
	}
	return Color(p / 6)
}

// TypeOf returns the piece type of the piece.
func (p Piece) TypeOf() PieceType {
	if p >= PieceNone {
		return PtNone
	}
	return PieceType(p % 6)
}

// ValueOf returns the material value of the piece.
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

const pieceLabels string = "PNBRQKpnbrqk"

// Char returns the FEN letter for the piece ("-" if PieceNone).
func (p Piece) Char() string {
	if p >= PieceNone {
		return "-"
	}
	return string(pieceLabels[p])
}

// String returns the FEN letter for the piece.
func (p Piece) String() string {
	return p.Char()
}

// PieceFromChar parses a single FEN piece letter. Returns PieceNone if s is
// not exactly one recognised letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	for i := 0; i < len(pieceLabels); i++ {
		if pieceLabels[i] == s[0] {
			return Piece(i)
		}
	}
	return PieceNone
}
