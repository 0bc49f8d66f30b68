package systems

import (
	"math"
	"testing"

	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/components"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/config"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/ecs"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/types"
)

// countingRecycler 记录每个转轮的回收次数
type countingRecycler struct {
	calls map[int]int
	next  types.SymbolID
}

func newCountingRecycler(next types.SymbolID) *countingRecycler {
	return &countingRecycler{calls: make(map[int]int), next: next}
}

func (c *countingRecycler) Next(reelIndex int) types.SymbolID {
	c.calls[reelIndex]++
	return c.next
}

func smallConfig() *config.SlotConfig {
	cfg := config.DefaultSlotConfig()
	cfg.Reels.Count = 1
	cfg.Reels.SymbolSize = 100
	return cfg
}

func TestReelSystemOffsetsAndBlur(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := smallConfig()
	_, reels := buildReels(t, em, cfg)
	reel := reels[0]

	rs := NewReelSystem(em, cfg, newCountingRecycler(types.SymbolA))

	reel.Position = 0.5
	rs.Update()

	want := []float64{-50, 50, 150, 250, 350}
	for slot, id := range reel.Slots {
		sym, _ := ecs.GetComponent[*components.SymbolComponent](em, id)
		if math.Abs(sym.OffsetY-want[slot]) > 1e-9 {
			t.Errorf("slot %d offset = %v, want %v", slot, sym.OffsetY, want[slot])
		}
	}

	wantBlur := 0.5 * cfg.Reels.BlurGain
	if math.Abs(reel.VelocityBlur-wantBlur) > 1e-9 {
		t.Errorf("VelocityBlur = %v, want %v", reel.VelocityBlur, wantBlur)
	}

	// 位置不变时模糊归零
	rs.Update()
	if reel.VelocityBlur != 0 {
		t.Errorf("VelocityBlur = %v after idle frame, want 0", reel.VelocityBlur)
	}
}

// TestRecycleEdgeTriggered 每个槽位每滚过一圈恰好回收一次，静止时不回收
func TestRecycleEdgeTriggered(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := smallConfig()
	_, reels := buildReels(t, em, cfg)
	reel := reels[0]

	recycler := newCountingRecycler(types.SymbolWild)
	rs := NewReelSystem(em, cfg, recycler)

	for i := 0; i <= 50; i++ {
		reel.Position = float64(i) * 0.1
		rs.Update()
	}
	if got := recycler.calls[0]; got != 5 {
		t.Fatalf("recycled %d times over one full revolution, want 5", got)
	}

	// 停在边界上多帧，不能重复回收
	for i := 0; i < 10; i++ {
		rs.Update()
	}
	if got := recycler.calls[0]; got != 5 {
		t.Errorf("recycled %d times after idle frames, want 5", got)
	}

	// 所有槽位都已被回收为新身份
	for slot, id := range reel.Slots {
		sym, _ := ecs.GetComponent[*components.SymbolComponent](em, id)
		if sym.Identity != types.SymbolWild {
			t.Errorf("slot %d identity = %s, want Wild", slot, sym.Identity)
		}
	}
}

// TestRecycleOnlyTopBoundary 槽位在窗口内移动时不回收
func TestRecycleOnlyTopBoundary(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := smallConfig()
	_, reels := buildReels(t, em, cfg)
	reel := reels[0]

	recycler := newCountingRecycler(types.SymbolA)
	rs := NewReelSystem(em, cfg, recycler)

	// 位置 0 → 0.9：槽位 4 的偏移从 300 增加到 390，没有越界
	for i := 0; i <= 9; i++ {
		reel.Position = float64(i) * 0.1
		rs.Update()
	}
	if got := recycler.calls[0]; got != 0 {
		t.Errorf("recycled %d times before any wrap, want 0", got)
	}

	reel.Position = 1.0
	rs.Update()
	if got := recycler.calls[0]; got != 1 {
		t.Errorf("recycled %d times after first wrap, want 1", got)
	}
	sym, _ := ecs.GetComponent[*components.SymbolComponent](em, reel.Slots[4])
	if sym.OffsetY >= 0 {
		t.Errorf("slot 4 offset = %v, want above the window", sym.OffsetY)
	}
}
