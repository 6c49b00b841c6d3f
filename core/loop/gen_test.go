package loop

import (
	"errors"
	"math/rand"
	"os"
	"testing"

	"github.com/alexduckmanton/rope-game/core/grid"
	game_log "github.com/alexduckmanton/rope-game/internal/log"
)

var testLogger *game_log.Logger

func init() {
	testLogger = game_log.New(os.Stdout, game_log.LevelError)
}

func TestGenerateClosedTours(t *testing.T) {
	for _, size := range []int{2, 4, 6, 8} {
		g := grid.New(size)
		for seed := int64(0); seed < 5; seed++ {
			gen := NewGenerator(g, rand.New(rand.NewSource(seed)), testLogger)
			p, err := gen.Generate()
			if err != nil {
				t.Fatalf("size %d seed %d: %v", size, seed, err)
			}
			if err := p.Validate(g); err != nil {
				t.Fatalf("size %d seed %d: invalid tour: %v", size, seed, err)
			}
		}
	}
}

func TestGenerateOddBoardFailsFast(t *testing.T) {
	gen := NewGenerator(grid.New(5), rand.New(rand.NewSource(1)), testLogger)
	_, err := gen.Generate()
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("odd board: got %v, want ErrExhausted", err)
	}
}

func TestGenerateTinyBoardFails(t *testing.T) {
	gen := NewGenerator(grid.New(1), rand.New(rand.NewSource(1)), testLogger)
	if _, err := gen.Generate(); !errors.Is(err, ErrExhausted) {
		t.Fatalf("1x1 board: got %v, want ErrExhausted", err)
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	g := grid.New(6)
	p1, err := NewGenerator(g, rand.New(rand.NewSource(42)), testLogger).Generate()
	if err != nil {
		t.Fatal(err)
	}
	p2, err := NewGenerator(g, rand.New(rand.NewSource(42)), testLogger).Generate()
	if err != nil {
		t.Fatal(err)
	}
	if len(p1) != len(p2) {
		t.Fatalf("same seed produced different tours")
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("same seed produced different tours at index %d", i)
		}
	}
}
