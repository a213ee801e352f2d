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

import "strings"

// CastlingRights encodes the four castling availabilities as a 4-bit set.
//  CastlingNone         CastlingRights = 0  // 0000
//  CastlingWhiteOO      CastlingRights = 1  // 0001
//  CastlingWhiteOOO                    = 2  // 0010
//  CastlingWhite                       = 3  // 0011
//  CastlingBlackOO                     = 4  // 0100
//  CastlingBlackOOO                    = 8  // 1000
//  CastlingBlack                       = 12 // 1100
//  CastlingAny                         = 15 // 1111
type CastlingRights uint8

// Constants for castling.
//noinspection GoUnusedConst
const (
	CastlingNone         CastlingRights = 0
	CastlingWhiteOO      CastlingRights = 1
	CastlingWhiteOOO                    = CastlingWhiteOO << 1
	CastlingWhite                       = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlackOO                     = CastlingWhiteOO << 2
	CastlingBlackOOO                    = CastlingBlackOO << 1
	CastlingBlack                       = CastlingBlackOO | CastlingBlackOOO
	CastlingAny                         = CastlingWhite | CastlingBlack
	CastlingRightsLength CastlingRights = 16
)

// Has reports whether any of rhs's castling bits is set in cr.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs != 0
}

// Remove clears rhs's bits from cr.
func (cr *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*cr = *cr &^ rhs
	return *cr
}

// Add sets rhs's bits in cr.
func (cr *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*cr = *cr | rhs
	return *cr
}

// String renders the FEN castling field, e.g. "KQkq" or "-".
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var sb strings.Builder
	if cr.Has(CastlingWhiteOO) {
		sb.WriteString("K")
	}
	if cr.Has(CastlingWhiteOOO) {
		sb.WriteString("Q")
	}
	if cr.Has(CastlingBlackOO) {
		sb.WriteString("k")
	}
	if cr.Has(CastlingBlackOOO) {
		sb.WriteString("q")
	}
	return sb.String()
}

// castlingRightsOf[sq] is the set of castling rights lost when a piece
// moves from or to sq (a king or rook leaving its home square, or a rook
// being captured on its home square).
var castlingRightsOf [SqLength]CastlingRights

func initCastlingRights() {
	castlingRightsOf[MakeSquare("e1")] = CastlingWhite
	castlingRightsOf[SqA1] = CastlingWhiteOOO
	castlingRightsOf[SqH1] = CastlingWhiteOO
	castlingRightsOf[MakeSquare("e8")] = CastlingBlack
	castlingRightsOf[SqA8] = CastlingBlackOOO
	castlingRightsOf[SqH8] = CastlingBlackOO
}

// GetCastlingRights returns the castling rights affected by a move touching sq.
func GetCastlingRights(sq Square) CastlingRights {
	return castlingRightsOf[sq]
}
