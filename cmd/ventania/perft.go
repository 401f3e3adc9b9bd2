package main

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hmarinho/ventania/pkg/common"
)

type perftItem struct {
	fen   string
	depth int
	nodes int64
}

// https://www.chessprogramming.org/Perft_Results
var perftSuite = []perftItem{
	{common.InitialPositionFen, 5, 4865609},
	{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -", 4, 4085603},
	{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -", 5, 674624},
	{"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 4, 422333},
	{"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 4, 2103487},
	{"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 4, 3894594},
}

func perft(p *common.Position, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	var result int64
	for _, move := range common.GenerateMoves(p) {
		if depth == 1 {
			result++
			continue
		}
		var child = p.ApplyMove(move)
		child.UpdateAttackMaps()
		result += perft(&child, depth-1)
	}
	return result
}

// perftHandler either divides a single position or validates the
// whole suite, fanning the suite positions out across the CPUs.
func perftHandler() error {
	var fen = cliArgs.GetString("fen", "")
	var depth = cliArgs.GetInt("depth", 5)

	if fen != "" {
		var p, err = common.NewPositionFromFEN(fen)
		if err != nil {
			return err
		}
		return perftDivide(&p, depth)
	}

	log.Println("perft suite started")
	defer log.Println("perft suite finished")

	var start = time.Now()
	var g, _ = errgroup.WithContext(context.Background())
	g.SetLimit(runtime.NumCPU())

	for i := range perftSuite {
		var item = perftSuite[i]
		g.Go(func() error {
			var p, err = common.NewPositionFromFEN(item.fen)
			if err != nil {
				return err
			}
			var nodes = perft(&p, item.depth)
			if nodes != item.nodes {
				return fmt.Errorf("perft mismatch %v depth %v: got %v want %v",
					item.fen, item.depth, nodes, item.nodes)
			}
			log.Println("ok", item.fen, "depth", item.depth, "nodes", nodes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Println("Time", time.Since(start))
	return nil
}

func perftDivide(p *common.Position, depth int) error {
	var start = time.Now()
	var total int64
	for _, move := range common.GenerateMoves(p) {
		var child = p.ApplyMove(move)
		child.UpdateAttackMaps()
		var nodes = perft(&child, depth-1)
		total += nodes
		fmt.Printf("%v: %v\n", move, nodes)
	}
	fmt.Println("Nodes", total)
	fmt.Println("Time", time.Since(start))
	return nil
}
