package entities

import (
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/components"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/ecs"
)

// NewButton 创建按钮实体
//
// 参数：
//   - em: 实体管理器
//   - x, y, width, height: 按钮区域（屏幕坐标）
//   - label: 按钮文字
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewButton(
	em *ecs.EntityManager,
	x, y, width, height float64,
	label string,
	onClick func(),
) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Label:   label,
		State:   components.UINormal,
		Enabled: true,
		OnClick: onClick,
	})
	return entity
}
