package systems

import (
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/components"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/config"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/ecs"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/entities"
)

// ReelSystem 转轮视觉系统
//
// 职责：
//   - 根据连续位置重新计算每个槽位的垂直偏移
//   - 根据位置变化量计算运动模糊强度
//   - 槽位越过窗口顶部边界时回收符号（边沿触发）
//
// 每帧在补间调度器推进之后调用一次。
type ReelSystem struct {
	entityManager *ecs.EntityManager
	recycler      SymbolRecycler
	symbolSize    float64
	blurGain      float64
}

// NewReelSystem 创建转轮视觉系统
func NewReelSystem(em *ecs.EntityManager, cfg *config.SlotConfig, recycler SymbolRecycler) *ReelSystem {
	return &ReelSystem{
		entityManager: em,
		recycler:      recycler,
		symbolSize:    cfg.Reels.SymbolSize,
		blurGain:      cfg.Reels.BlurGain,
	}
}

// Update 更新所有转轮
func (s *ReelSystem) Update() {
	for _, reelID := range ecs.GetEntitiesWith1[*components.ReelComponent](s.entityManager) {
		reel, _ := ecs.GetComponent[*components.ReelComponent](s.entityManager, reelID)
		s.advanceVisual(reel)
	}
}

// advanceVisual 根据当前位置刷新一个转轮的符号偏移和模糊值
func (s *ReelSystem) advanceVisual(reel *components.ReelComponent) {
	slotCount := reel.SlotCount()

	reel.VelocityBlur = (reel.Position - reel.PreviousPosition) * s.blurGain
	reel.PreviousPosition = reel.Position

	for slot, symbolID := range reel.Slots {
		sym, ok := ecs.GetComponent[*components.SymbolComponent](s.entityManager, symbolID)
		if !ok {
			continue
		}

		sym.PrevOffsetY = sym.OffsetY
		sym.OffsetY = entities.SlotOffset(reel.Position, slot, slotCount, s.symbolSize)

		// 上一帧在窗口下方、这一帧跳到窗口上方：刚好完整滚过一圈
		if sym.OffsetY < 0 && sym.PrevOffsetY > s.symbolSize {
			sym.Identity = s.recycler.Next(reel.Index)
		}
	}
}
