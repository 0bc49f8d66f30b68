package components

import "github.com/Simpleskill/Inferno-Reels-iGaming/pkg/tween"

// WinPhase 中奖高亮动画的阶段
// 顺序：ChangeColor → HoldHighlight → ChangeBack → HoldNeutral → FadeOut → FadeIn → 循环
type WinPhase int

const (
	// WinPhaseChangeColor 瞬间切换为高亮色
	WinPhaseChangeColor WinPhase = iota
	// WinPhaseHoldHighlight 保持高亮
	WinPhaseHoldHighlight
	// WinPhaseChangeBack 瞬间还原中性色
	WinPhaseChangeBack
	// WinPhaseHoldNeutral 保持中性色
	WinPhaseHoldNeutral
	// WinPhaseFadeOut 透明度降到暗值（缓入）
	WinPhaseFadeOut
	// WinPhaseFadeIn 透明度回到 1（缓出）
	WinPhaseFadeIn
)

// String 返回阶段名称
func (p WinPhase) String() string {
	switch p {
	case WinPhaseChangeColor:
		return "ChangeColor"
	case WinPhaseHoldHighlight:
		return "HoldHighlight"
	case WinPhaseChangeBack:
		return "ChangeBack"
	case WinPhaseHoldNeutral:
		return "HoldNeutral"
	case WinPhaseFadeOut:
		return "FadeOut"
	case WinPhaseFadeIn:
		return "FadeIn"
	default:
		return "Unknown"
	}
}

// WinHighlightComponent 中奖高亮组件
// 挂在中奖符号实体上；同一时刻最多持有一个活动补间，取消只需停止该补间并移除组件
type WinHighlightComponent struct {
	// Row 中奖行
	Row int

	// Phase 当前阶段
	Phase WinPhase

	// Tween 当前阶段的补间句柄（瞬时阶段为 0）
	Tween tween.Handle

	// Loops 已完成的循环次数
	Loops int
}
