package shell

import (
	"fmt"

	"github.com/hmarinho/ventania/pkg/common"
)

const (
	whiteKing   = "♔"
	whiteQueen  = "♕"
	whiteRook   = "♖"
	whiteBishop = "♗"
	whiteKnight = "♘"
	whitePawn   = "♙"
	blackKing   = "♚"
	blackQueen  = "♛"
	blackRook   = "♜"
	blackBishop = "♝"
	blackKnight = "♞"
	blackPawn   = "♟"
)

var chessSymbols = [common.PieceNB]string{
	common.Empty:   " ",
	common.WPawn:   whitePawn,
	common.WKnight: whiteKnight,
	common.WBishop: whiteBishop,
	common.WRook:   whiteRook,
	common.WQueen:  whiteQueen,
	common.WKing:   whiteKing,
	common.BPawn:   blackPawn,
	common.BKnight: blackKnight,
	common.BBishop: blackBishop,
	common.BRook:   blackRook,
	common.BQueen:  blackQueen,
	common.BKing:   blackKing,
}

func PrintPosition(p *common.Position) {
	for i := 0; i < 64; i++ {
		sq := common.FlipSquare(i)
		fmt.Print(chessSymbols[p.WhatPiece(sq)])
		fmt.Print(" ")
		if common.File(sq) == common.FileH {
			fmt.Println()
		}
	}
}
