package systems

import (
	"math/rand/v2"

	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/config"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/entities"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/types"
)

// SymbolRecycler 决定槽位滚出可见窗口后的下一个符号身份
// 这只是连续供给符号的视觉模拟，与任何赔付表无关
type SymbolRecycler interface {
	entities.SymbolSource
}

// WeightedRecycler 按符号表权重随机抽取符号
type WeightedRecycler struct {
	ids     []types.SymbolID
	weights []int
	total   int
	rng     *rand.Rand
}

// NewWeightedRecycler 创建加权回收器
// table 应已通过 Validate()；权重为 0 的符号永远不会被抽中
func NewWeightedRecycler(table *config.SymbolTable, rng *rand.Rand) *WeightedRecycler {
	r := &WeightedRecycler{rng: rng}
	for _, def := range table.Symbols {
		if def.Weight <= 0 {
			continue
		}
		r.ids = append(r.ids, def.ID)
		r.weights = append(r.weights, def.Weight)
		r.total += def.Weight
	}
	return r
}

// Next 抽取下一个符号（与转轮无关，所有转轮共用同一分布）
func (r *WeightedRecycler) Next(int) types.SymbolID {
	if r.total == 0 {
		return types.SymbolUnknown
	}
	pick := r.rng.IntN(r.total)
	for i, w := range r.weights {
		if pick < w {
			return r.ids[i]
		}
		pick -= w
	}
	return r.ids[len(r.ids)-1]
}
