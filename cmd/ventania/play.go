package main

import (
	"github.com/hmarinho/ventania/pkg/common"
	"github.com/hmarinho/ventania/shell"
)

func playHandler() error {
	var fen = cliArgs.GetString("fen", common.InitialPositionFen)
	var depth = cliArgs.GetInt("depth", 6)
	var hash = cliArgs.GetInt("hash", 64)
	var white = cliArgs.GetBool("white", true)
	return shell.RunConsole(fen, depth, hash, white)
}
