package main

import (
	"log"
	"os"

	"github.com/chazu/fieldzone/cmd/zonectl/commands"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("zonectl: ")
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
