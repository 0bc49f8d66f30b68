package systems

import (
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/components"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/ecs"
)

// PointerState 一帧的指针输入（鼠标或触摸）
// 由场景从具体输入后端采集，系统本身不依赖渲染库
type PointerState struct {
	X, Y float64
	// Pressed 按键按住中
	Pressed bool
	// JustReleased 本帧刚刚松开
	JustReleased bool
}

// ButtonSystem 按钮交互系统
// 负责处理按钮的悬停、按下和点击
//
// 职责：
//   - 检测悬停（更新按钮状态为 UIHovered）
//   - 检测点击（松开瞬间触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Update 根据指针状态更新所有按钮
func (s *ButtonSystem) Update(pointer PointerState) {
	for _, entityID := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)

		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !isPointInButton(pointer.X, pointer.Y, button) {
			button.State = components.UINormal
			continue
		}

		switch {
		case pointer.Pressed:
			button.State = components.UIClicked
		case pointer.JustReleased:
			if button.OnClick != nil {
				button.OnClick()
			}
			button.State = components.UIHovered
		default:
			button.State = components.UIHovered
		}
	}
}

// isPointInButton 检测点是否在按钮范围内
func isPointInButton(x, y float64, button *components.ButtonComponent) bool {
	return x >= button.X &&
		x <= button.X+button.Width &&
		y >= button.Y &&
		y <= button.Y+button.Height
}
