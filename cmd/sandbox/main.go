package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"platformer/internal/game"
	"platformer/internal/level"
)

func main() {
	levelRef := flag.String("level", "grassland", "built-in level name or path to a level .yaml (hot reloaded)")
	list := flag.Bool("list", false, "list the built-in levels and exit")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(level.Names(), "\n"))
		return
	}

	g := game.New(*levelRef)
	if err := g.Run(); err != nil {
		log.Printf("sandbox: %v", err)
		os.Exit(1)
	}
}
