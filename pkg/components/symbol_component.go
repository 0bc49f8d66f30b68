package components

import (
	"image/color"

	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/ecs"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/types"
)

// NeutralTint 中性色调（不改变贴图颜色）
var NeutralTint = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// SymbolComponent 符号组件
// 转轮上的一个槽位，渲染层读取其身份、偏移、色调和透明度
type SymbolComponent struct {
	// Identity 符号身份，决定显示的贴图；由回收器直接赋值
	Identity types.SymbolID

	// Reel 所属转轮实体
	Reel ecs.EntityID

	// Slot 在转轮上的槽位下标
	Slot int

	// OffsetY 相对可见窗口顶部的垂直偏移（像素）
	// 取值范围 [-symbolSize, (slotCount-1)*symbolSize - symbolSize)
	OffsetY float64

	// PrevOffsetY 上一帧的偏移，用于检测越过窗口边界的跳变
	PrevOffsetY float64

	// Tint 色调（中性为白色）
	Tint color.RGBA

	// Alpha 透明度 0.0 ~ 1.0
	Alpha float64
}

// ResetAppearance 恢复中性色调和完全不透明
func (s *SymbolComponent) ResetAppearance() {
	s.Tint = NeutralTint
	s.Alpha = 1.0
}
