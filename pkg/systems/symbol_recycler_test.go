package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/config"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/types"
)

func TestWeightedRecyclerZeroWeight(t *testing.T) {
	table := config.DefaultSymbolTable()
	for i := range table.Symbols {
		if table.Symbols[i].ID != types.SymbolB {
			table.Symbols[i].Weight = 0
		}
	}

	r := NewWeightedRecycler(table, rand.New(rand.NewPCG(1, 2)))
	for i := 0; i < 100; i++ {
		if got := r.Next(i % 3); got != types.SymbolB {
			t.Fatalf("draw %d = %s, want B", i, got)
		}
	}
}

func TestWeightedRecyclerDistribution(t *testing.T) {
	r := NewWeightedRecycler(config.DefaultSymbolTable(), rand.New(rand.NewPCG(7, 11)))

	const draws = 20000
	counts := make(map[types.SymbolID]int)
	for i := 0; i < draws; i++ {
		counts[r.Next(0)]++
	}

	// 默认权重 1:3:3:3
	wild := float64(counts[types.SymbolWild]) / draws
	if wild < 0.07 || wild > 0.13 {
		t.Errorf("wild frequency = %.3f, want about 0.10", wild)
	}
	for _, id := range []types.SymbolID{types.SymbolA, types.SymbolB, types.SymbolC} {
		f := float64(counts[id]) / draws
		if f < 0.25 || f > 0.35 {
			t.Errorf("%s frequency = %.3f, want about 0.30", id, f)
		}
	}
	if counts[types.SymbolUnknown] != 0 {
		t.Error("recycler must never produce Unknown")
	}
}

func TestWeightedRecyclerEmpty(t *testing.T) {
	r := NewWeightedRecycler(&config.SymbolTable{}, rand.New(rand.NewPCG(1, 1)))
	if got := r.Next(0); got != types.SymbolUnknown {
		t.Errorf("empty recycler = %s, want Unknown", got)
	}
}
