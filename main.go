package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	debug := flag.Bool("debug", false, "draw collision shapes and probes")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "sandbox.json", "level file on disk or in levels/")
	specName := flag.String("spec", "player.yaml", "player spec in prefabs/")
	verbose := flag.Bool("v", false, "log every movement event")
	flag.Parse()

	lg := logrus.New()
	lg.Formatter = &logrus.TextFormatter{ForceColors: true}
	lg.Level = logrus.InfoLevel
	if *verbose {
		lg.Level = logrus.DebugLevel
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("platformer")

	game, err := NewGame(*levelName, *specName, *debug, lg)
	if err != nil {
		lg.WithError(err).Fatal("start game")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		lg.WithError(err).Fatal("run game")
	}
}
