package main

import (
	"log"
	"os"
)

var cliArgs *CommandArgs

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cliArgs = NewCommandArgs(os.Args)

	var handler = NewCommandHandler()
	handler.Add("perft", perftHandler)
	handler.Add("bench", benchHandler)
	handler.Add("play", playHandler)

	var commandName = cliArgs.CommandName()
	if commandName == "" {
		commandName = "play"
	}
	if err := handler.Execute(commandName); err != nil {
		log.Fatal(err)
	}
}
