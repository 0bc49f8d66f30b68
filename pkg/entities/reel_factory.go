package entities

import (
	"fmt"
	"math"

	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/components"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/config"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/ecs"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/types"
)

// SymbolSource 提供符号身份
// 创建转轮时用它为每个槽位抽取初始符号
type SymbolSource interface {
	Next(reelIndex int) types.SymbolID
}

// NewReelEntity 创建转轮实体及其全部符号实体
//
// 参数:
//   - em: 实体管理器
//   - index: 转轮序号（从左到右，从 0 开始）
//   - cfg: 老虎机配置（槽位数量、符号尺寸）
//   - source: 初始符号来源
//
// 返回:
//   - ecs.EntityID: 转轮实体ID
//   - error: 参数无效时返回错误
//
// 符号初始偏移按位置 0 计算：offset(j) = j*size - size，
// 即槽位 0 位于窗口上方的过扫描行。
func NewReelEntity(
	em *ecs.EntityManager,
	index int,
	cfg *config.SlotConfig,
	source SymbolSource,
) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("slot config cannot be nil")
	}
	if source == nil {
		return 0, fmt.Errorf("symbol source cannot be nil")
	}
	if index < 0 || index >= cfg.Reels.Count {
		return 0, fmt.Errorf("invalid reel index %d, must be between 0 and %d", index, cfg.Reels.Count-1)
	}

	size := cfg.Reels.SymbolSize
	slotCount := cfg.Reels.SlotCount

	reelID := em.CreateEntity()
	reel := &components.ReelComponent{
		Index: index,
		X:     float64(index) * (size + config.ReelGap),
		Slots: make([]ecs.EntityID, 0, slotCount),
		State: components.ReelIdle,
	}

	for slot := 0; slot < slotCount; slot++ {
		symbolID := em.CreateEntity()
		offset := SlotOffset(0, slot, slotCount, size)
		sym := &components.SymbolComponent{
			Identity:    source.Next(index),
			Reel:        reelID,
			Slot:        slot,
			OffsetY:     offset,
			PrevOffsetY: offset,
		}
		sym.ResetAppearance()
		ecs.AddComponent(em, symbolID, sym)
		reel.Slots = append(reel.Slots, symbolID)
	}

	ecs.AddComponent(em, reelID, reel)
	return reelID, nil
}

// SlotOffset 计算槽位相对可见窗口顶部的垂直偏移
// offset = ((position + slot) mod slotCount) * size - size
func SlotOffset(position float64, slot, slotCount int, size float64) float64 {
	n := float64(slotCount)
	wrapped := math.Mod(position+float64(slot), n)
	if wrapped < 0 {
		wrapped += n
	}
	return wrapped*size - size
}
