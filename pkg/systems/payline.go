package systems

import (
	"math"

	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/components"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/ecs"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/types"
)

// LineResult 一行赔付线的判定结果
// 每次旋转结束时重新计算，不做持久化
type LineResult struct {
	// Row 槽位窗口内的行号
	Row int
	// Symbols 每个转轮在该行的符号身份（从左到右）
	Symbols []types.SymbolID
	// Entities 对应的符号实体，供中奖展示使用
	Entities []ecs.EntityID
	// IsWin 是否中奖
	IsWin bool
}

// RoundHalfUp 四舍五入（0.5 向上取整）
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// RowSlotIndex 将停止位置映射为某一行显示的槽位下标
// index = (row - round(position)) mod slotCount，结果归一化到 [0, slotCount)
func RowSlotIndex(row int, position float64, slotCount int) int {
	index := (row - RoundHalfUp(position)) % slotCount
	if index < 0 {
		index += slotCount
	}
	return index
}

// ValidateLine 判定一行是否中奖
//
// 规则：忽略所有百搭后，剩余符号必须完全相同；
//   - 全部是百搭：中奖
//   - 只有一种非百搭符号（不论百搭数量）：中奖
//   - 两种及以上非百搭符号：不中奖
//   - 含有未知符号：不中奖（缺失的身份不匹配任何符号）
func ValidateLine(symbols []types.SymbolID) bool {
	if len(symbols) == 0 {
		return false
	}

	matched := types.SymbolUnknown
	for _, s := range symbols {
		if !s.IsKnown() {
			return false
		}
		if s.IsWild() {
			continue
		}
		if matched == types.SymbolUnknown {
			matched = s
			continue
		}
		if s != matched {
			return false
		}
	}
	return true
}

// EvaluatePaylines 判定给定行的赔付线
// 每一行独立判定，可能同时有多行中奖，全部返回
//
// 参数：
//   - em: 实体管理器
//   - reels: 转轮实体（从左到右）
//   - rows: 参与判定的行号
func EvaluatePaylines(em *ecs.EntityManager, reels []ecs.EntityID, rows []int) []LineResult {
	results := make([]LineResult, 0, len(rows))

	for _, row := range rows {
		line := LineResult{
			Row:      row,
			Symbols:  make([]types.SymbolID, 0, len(reels)),
			Entities: make([]ecs.EntityID, 0, len(reels)),
		}

		for _, reelID := range reels {
			identity := types.SymbolUnknown
			var symbolID ecs.EntityID

			if reel, ok := ecs.GetComponent[*components.ReelComponent](em, reelID); ok && reel.SlotCount() > 0 {
				symbolID = reel.Slots[RowSlotIndex(row, reel.Position, reel.SlotCount())]
				if sym, ok := ecs.GetComponent[*components.SymbolComponent](em, symbolID); ok {
					identity = sym.Identity
				}
			}

			line.Symbols = append(line.Symbols, identity)
			line.Entities = append(line.Entities, symbolID)
		}

		line.IsWin = ValidateLine(line.Symbols)
		results = append(results, line)
	}

	return results
}

// WinningLines 过滤出中奖行
func WinningLines(results []LineResult) []LineResult {
	wins := make([]LineResult, 0, len(results))
	for _, r := range results {
		if r.IsWin {
			wins = append(wins, r)
		}
	}
	return wins
}
