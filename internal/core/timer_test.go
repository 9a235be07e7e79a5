package core

import (
	"testing"
	"time"
)

func TestFixedStepPacesTicks(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a period should not step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full period should step")
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	fs.ShouldStep()

	clock = clock.Add(5 * time.Second)
	steps := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps > 2 {
		t.Fatalf("stall produced %d catch-up steps", steps)
	}
}

func TestFixedStepTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != 60 {
		t.Fatalf("default TPS = %d, want 60", fs.TPS())
	}
	fs.SetTPS(25)
	if fs.TPS() != 25 {
		t.Fatalf("TPS = %d, want 25", fs.TPS())
	}
}
