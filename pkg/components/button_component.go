package components

// ButtonComponent 按钮组件（ECS 架构）
// 只包含布局、文字、状态和回调，外观由渲染层决定
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 禁用时不响应点击
type ButtonComponent struct {
	// X, Y 按钮左上角屏幕坐标
	X float64
	Y float64

	// Width, Height 按钮尺寸（像素）
	Width  float64
	Height float64

	// Label 按钮文字
	Label string

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool

	// OnClick 点击回调函数
	OnClick func()
}
