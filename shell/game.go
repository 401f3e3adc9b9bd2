package shell

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/hmarinho/ventania/pkg/common"
	"github.com/hmarinho/ventania/pkg/engine"
)

// Game layers the rules the search core leaves to its callers:
// threefold repetition via the Zobrist keys of the played line and the
// fifty-move counter.
type Game struct {
	position  common.Position
	keys      []uint64
	rule50    int
	humanSide bool
}

func NewGame(fen string, humanWhite bool) (*Game, error) {
	var p, err = common.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{
		position:  p,
		keys:      []uint64{p.Key},
		humanSide: humanWhite,
	}, nil
}

func (g *Game) play(mv common.Move) {
	var moving = g.position.WhatPiece(mv.From)
	if mv.IsCapture() || moving == common.WPawn || moving == common.BPawn {
		g.rule50 = 0
	} else {
		g.rule50++
	}
	g.position = g.position.ApplyMove(mv)
	g.position.UpdateAttackMaps()
	g.keys = append(g.keys, g.position.Key)
}

func (g *Game) isThreefold() bool {
	var count = 0
	for _, key := range g.keys {
		if key == g.position.Key {
			count++
		}
	}
	return count >= 3
}

// Result reports "", "1-0", "0-1" or "1/2-1/2".
func (g *Game) Result() string {
	if len(common.GenerateMoves(&g.position)) == 0 {
		if !g.position.InCheck() {
			return "1/2-1/2"
		}
		if g.position.WhiteMove {
			return "0-1"
		}
		return "1-0"
	}
	if g.isThreefold() || g.rule50 >= 100 {
		return "1/2-1/2"
	}
	return ""
}

// RunConsole plays human against engine on the terminal. Moves are
// accepted in coordinate or SAN form.
func RunConsole(fen string, depth, hashMegabytes int, humanWhite bool) error {
	var game, err = NewGame(fen, humanWhite)
	if err != nil {
		return err
	}
	var eng = engine.NewEngine(hashMegabytes)
	var reader = bufio.NewScanner(os.Stdin)

	for {
		PrintPosition(&game.position)
		if result := game.Result(); result != "" {
			fmt.Println(result)
			return nil
		}

		var mv common.Move
		if game.position.WhiteMove == game.humanSide {
			fmt.Print("> ")
			if !reader.Scan() {
				return reader.Err()
			}
			var input = strings.TrimSpace(reader.Text())
			if input == "quit" {
				return nil
			}
			var ok bool
			if mv, ok = common.ParseMoveCoord(&game.position, input); !ok {
				if mv, ok = common.ParseMoveSAN(&game.position, input); !ok {
					fmt.Println("illegal move:", input)
					continue
				}
			}
		} else {
			var info engine.SearchInfo
			mv, info = eng.SearchBestMove(game.position, depth)
			if mv.IsEmpty() {
				continue
			}
			fmt.Printf("%v (depth %v score %v nodes %v time %v)\n",
				common.MoveToSAN(&game.position, mv),
				info.Depth, info.Score, info.Nodes+info.QNodes, info.Time)
		}
		game.play(mv)
	}
}
