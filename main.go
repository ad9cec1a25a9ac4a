package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/raindrop/ecs/system"
	"github.com/milk9111/raindrop/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	levelName := flag.String("level", "", "level script in levels/ (basename, .tengo optional)")
	watch := flag.Bool("watch", false, "reload prefabs and levels from disk when they change")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	system.Debug = *debug

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Fatal(err)
	}
	if *levelName != "" {
		tuning.Game.Level = *levelName
	}

	ebiten.SetWindowSize(int(tuning.Game.ScreenWidth), int(tuning.Game.ScreenHeight))
	ebiten.SetWindowTitle("raindrop")
	ebiten.SetTPS(tuning.Game.TPS)

	game, err := NewGame(tuning, *debug, *watch, *mute)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
