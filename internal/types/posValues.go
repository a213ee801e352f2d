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
	"github.com/corvidchess/corvid/internal/assert"
)

// PosMidValue returns the pre computed piece-square value for the piece on
// the given square in the mid game.
func PosMidValue(p Piece, sq Square) Value {
	if assert.DEBUG {
		assert.Assert(initialized, "types package has not been initialized")
	}
	return posMidValue[p][sq]
}

// PosEndValue returns the pre computed piece-square value for the piece on
// the given square in the end game.
func PosEndValue(p Piece, sq Square) Value {
	if assert.DEBUG {
		assert.Assert(initialized, "types package has not been initialized")
	}
	return posEndValue[p][sq]
}

// PosValue blends the mid and end game piece-square values for the given
// game phase (0 == pure end game, GamePhaseMax == pure mid game). Used by
// move ordering and evaluation, both of which need a single score rather
// than the separate mid/end components.
func PosValue(p Piece, sq Square, gamePhase int) Value {
	mid, end := PosMidValue(p, sq), PosEndValue(p, sq)
	return (Value(gamePhase)*mid + Value(GamePhaseMax-gamePhase)*end) / GamePhaseMax
}

// vflip mirrors a square across the board's horizontal center line,
// keeping the file and swapping the rank -- used to re-use a single,
// White-oriented piece-square table for Black.
func vflip(sq Square) Square {
	return SquareOf(sq.FileOf(), Rank(7-int(sq.RankOf())))
}

// initPosValues precomputes, for every piece, the mid/end game
// piece-square value on every square. The raw tables below are written
// a8-first (rank 8 top row to rank 1 bottom row), which is exactly this
// engine's Square numbering, so White reads them unmirrored and Black
// reads the vertically mirrored square.
func initPosValues() {
	for sq := Square(0); sq < SqLength; sq++ {
		posMidValue[WhitePawn][sq] = pawnsMidGame[sq]
		posEndValue[WhitePawn][sq] = pawnsEndGame[sq]
		posMidValue[BlackPawn][sq] = pawnsMidGame[vflip(sq)]
		posEndValue[BlackPawn][sq] = pawnsEndGame[vflip(sq)]

		posMidValue[WhiteKnight][sq] = knightMidGame[sq]
		posEndValue[WhiteKnight][sq] = knightEndGame[sq]
		posMidValue[BlackKnight][sq] = knightMidGame[vflip(sq)]
		posEndValue[BlackKnight][sq] = knightEndGame[vflip(sq)]

		posMidValue[WhiteBishop][sq] = bishopMidGame[sq]
		posEndValue[WhiteBishop][sq] = bishopEndGame[sq]
		posMidValue[BlackBishop][sq] = bishopMidGame[vflip(sq)]
		posEndValue[BlackBishop][sq] = bishopEndGame[vflip(sq)]

		posMidValue[WhiteRook][sq] = rookMidGame[sq]
		posEndValue[WhiteRook][sq] = rookEndGame[sq]
		posMidValue[BlackRook][sq] = rookMidGame[vflip(sq)]
		posEndValue[BlackRook][sq] = rookEndGame[vflip(sq)]

		posMidValue[WhiteQueen][sq] = queenMidGame[sq]
		posEndValue[WhiteQueen][sq] = queenEndGame[sq]
		posMidValue[BlackQueen][sq] = queenMidGame[vflip(sq)]
		posEndValue[BlackQueen][sq] = queenEndGame[vflip(sq)]

		posMidValue[WhiteKing][sq] = kingMidGame[sq]
		posEndValue[WhiteKing][sq] = kingEndGame[sq]
		posMidValue[BlackKing][sq] = kingMidGame[vflip(sq)]
		posEndValue[BlackKing][sq] = kingEndGame[vflip(sq)]
	}
}

var (
	posMidValue = [PieceLength][SqLength]Value{}
	posEndValue = [PieceLength][SqLength]Value{}

	// positional values for pieces, White's perspective, a8 first.
	// @formatter:off
	pawnsMidGame = [SqLength]Value{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -30, -30, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 30, 30, 0, 0, 0,
		5, 5, 10, 30, 30, 10, 5, 5,
		0, 5, 5, 5, 5, 5, 5, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0}

	pawnsEndGame = [SqLength]Value{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		5, 10, 10, 10, 10, 10, 10, 5,
		10, 10, 20, 20, 20, 10, 10, 10,
		20, 30, 30, 40, 40, 30, 30, 20,
		40, 50, 50, 60, 60, 50, 50, 40,
		90, 90, 90, 90, 90, 90, 90, 90,
		0, 0, 0, 0, 0, 0, 0, 0}

	knightMidGame = [SqLength]Value{
		-50, -25, -20, -30, -30, -20, -25, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50}

	knightEndGame = [SqLength]Value{
		-50, -40, -20, -30, -30, -20, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50}

	bishopMidGame = [SqLength]Value{
		-20, -10, -40, -10, -10, -40, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20}

	bishopEndGame = [SqLength]Value{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20}

	rookMidGame = [SqLength]Value{
		-15, -10, 15, 15, 15, 15, -10, -15,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		10, 10, 10, 10, 10, 10, 10, 10,
		5, 5, 5, 5, 5, 5, 5, 5}

	rookEndGame = [SqLength]Value{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 5, 5, 5, 5, 5, 5, 5}

	queenMidGame = [SqLength]Value{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 2, 2, 2, 2, 0, -5,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20}

	queenEndGame = [SqLength]Value{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20}

	kingMidGame = [SqLength]Value{
		20, 50, 0, -20, -20, 0, 50, 20,
		0, 0, -20, -20, -20, -20, 0, 0,
		-10, -20, -20, -30, -30, -30, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30}

	kingEndGame = [SqLength]Value{
		-50, -30, -30, -30, -30, -30, -30, -50,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-50, -30, -30, -20, -20, -30, -30, -50}
	// @formatter:on
)
