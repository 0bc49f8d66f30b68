package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/config"
)

func TestNewSlotMachine(t *testing.T) {
	tests := []struct {
		name    string
		cfg     func() *config.SlotConfig
		table   *config.SymbolTable
		rng     *rand.Rand
		wantErr bool
	}{
		{"默认配置", func() *config.SlotConfig { return nil }, nil, rand.New(rand.NewPCG(1, 1)), false},
		{"缺少随机源", func() *config.SlotConfig { return nil }, nil, nil, true},
		{"无效配置", func() *config.SlotConfig {
			c := config.DefaultSlotConfig()
			c.Reels.Count = 0
			return c
		}, nil, rand.New(rand.NewPCG(1, 1)), true},
		{"无效符号表", func() *config.SlotConfig { return nil }, &config.SymbolTable{}, rand.New(rand.NewPCG(1, 1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewSlotMachine(tt.cfg(), tt.table, tt.rng)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(m.Reels()) != 3 {
				t.Errorf("Reels() = %d, want 3", len(m.Reels()))
			}
			for i := 0; i < 3; i++ {
				if len(m.Symbols(i)) != 5 {
					t.Errorf("Symbols(%d) = %d, want 5", i, len(m.Symbols(i)))
				}
			}
			if m.Symbols(3) != nil || m.Symbols(-1) != nil {
				t.Error("out-of-range Symbols should return nil")
			}
			if m.IsSpinning() || m.LastResults() != nil {
				t.Error("new machine should be idle with no results")
			}
		})
	}
}

func TestSlotMachineTurbo(t *testing.T) {
	m := newTestMachine(t, nil)
	m.SetTurbo(true)
	if !m.Turbo() {
		t.Fatal("Turbo() should be true")
	}

	m.Update(0)
	m.RequestSpin()
	plan := m.LastPlan()
	last := plan[len(plan)-1].DurationMs
	if last != (2500+2*600)*m.Config().Spin.TurboScale {
		t.Errorf("last reel turbo duration = %v", last)
	}

	runFrames(m, 16, last+16)
	if m.IsSpinning() {
		t.Error("turbo spin should finish within the scaled duration")
	}
}

func TestSlotMachineSpinStartCallback(t *testing.T) {
	m := newTestMachine(t, nil)
	started := 0
	m.SetCallbacks(func() { started++ }, nil, nil)

	m.Update(0)
	m.RequestSpin()
	m.RequestSpin()
	if started != 1 {
		t.Errorf("OnSpinStart fired %d times, want 1", started)
	}
}
