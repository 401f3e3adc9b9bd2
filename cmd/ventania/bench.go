package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hmarinho/ventania/pkg/common"
	"github.com/hmarinho/ventania/pkg/engine"
)

var benchFens = []string{
	common.InitialPositionFen,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
	"r5rk/5p1p/5R2/4B3/8/8/7P/7K w - - 0 1",
	"2rqkb1r/p1pnpppp/3p3n/3B4/2BPP3/1QP5/PP3PPP/RN2K1NR w KQk - 0 1",
	"1rr3k1/4ppb1/2q1bnp1/1p2B1Q1/6P1/2p2P2/2P1B2R/2K4R w - - 0 1",
	"3q4/pp3pkp/5npN/2bpr1B1/4r3/2P2Q2/PP3PPP/R4RK1 w - - 0 1",
	"8/7p/p5pb/4k3/P1pPn3/8/P5PP/1rB2RK1 b - d3 0 28",
}

func benchHandler() error {
	var depth = cliArgs.GetInt("depth", 7)
	var hash = cliArgs.GetInt("hash", 64)

	log.Println("benchmark started", "depth", depth, "hash", hash)
	defer log.Println("benchmark finished")

	var eng = engine.NewEngine(hash)
	var start = time.Now()
	var nodes int64
	for _, fen := range benchFens {
		var p, err = common.NewPositionFromFEN(fen)
		if err != nil {
			return err
		}
		var move, info = eng.SearchBestMove(p, depth)
		nodes += info.Nodes + info.QNodes
		fmt.Printf("%-72v %-7v score %v\n", fen, move, info.Score)
	}
	var elapsed = time.Since(start)
	fmt.Println("Time", elapsed)
	fmt.Println("Nodes", nodes)
	fmt.Println("kNPS", nodes/(1+elapsed.Milliseconds()))
	return nil
}
