//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifelike/internal/app"
	"lifelike/internal/core"
	"lifelike/internal/life"
	"lifelike/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	sim, err := core.NewSim(cfg.Sim, cfg.SimMap())
	if sim == nil {
		log.Fatalf("build %s: %v", cfg.Sim, err)
	}
	if life.IsWarning(err) {
		log.Printf("warning: %v", err)
	}
	automaton, ok := sim.(app.Automaton)
	if !ok {
		log.Fatalf("sim %q does not support interactive editing", cfg.Sim)
	}

	session := app.NewSession(automaton, cfg.Scale, cfg.TPS, cfg.Save)
	game := app.New(session, cfg.Scale)
	size := sim.Size()

	ebiten.SetWindowTitle("Game of Life — " + automaton.Rules().String())
	ebiten.SetWindowSize(size.W*cfg.Scale+ui.PanelWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
