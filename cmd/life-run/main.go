// Command life-run steps a board without a window and reports the population
// after every generation.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"lifelike/internal/app"
	"lifelike/internal/core"
	"lifelike/internal/life"
	"lifelike/internal/pattern"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 100, "generations to simulate")
	out := flag.String("out", "", "write the final board to this file")
	quiet := flag.Bool("quiet", false, "only print the final population")
	list := flag.Bool("list", false, "list bundled patterns and exit")
	flag.Parse()

	if *list {
		for _, name := range pattern.Samples() {
			fmt.Println(name)
		}
		return
	}
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
		log.Fatalf("sim %q does not expose a board", cfg.Sim)
	}

	session := app.NewSession(automaton, 1, cfg.TPS, cfg.Save)
	for gen := 1; gen <= *steps; gen++ {
		if err := session.StepOnce(); err != nil {
			log.Fatalf("generation %d: %v", gen, err)
		}
		if !*quiet {
			fmt.Printf("%d\t%d\n", gen, automaton.Board().Population())
		}
	}
	if *quiet {
		fmt.Println(automaton.Board().Population())
	}
	if *out != "" {
		if err := session.SaveTo(*out); err != nil {
			log.Fatal(err)
		}
		fmt.Fprintf(os.Stderr, "saved %dx%d board to %s\n", automaton.Board().W, automaton.Board().H, *out)
	}
}
