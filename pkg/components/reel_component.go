package components

import "github.com/Simpleskill/Inferno-Reels-iGaming/pkg/ecs"

// ReelState 转轮状态
type ReelState int

const (
	// ReelIdle 静止：位置不变，没有活动补间
	ReelIdle ReelState = iota
	// ReelSpinning 旋转：持有一个指向未来位置的补间
	ReelSpinning
)

// String 返回状态名称
func (s ReelState) String() string {
	if s == ReelSpinning {
		return "Spinning"
	}
	return "Idle"
}

// ReelComponent 转轮组件
// 一条循环的符号槽带，加上连续的滚动位置
//
// 位置语义：
//   - 整数部分：已经滚过的槽位数
//   - 小数部分：槽位内的动画偏移
//   - 旋转期间只增不减，从不在中途重置
type ReelComponent struct {
	// Index 转轮序号（从左到右，从 0 开始）
	Index int

	// X 转轮左边缘相对转轮窗口的 X 坐标（像素）
	X float64

	// Slots 符号实体，长度固定，下标循环使用
	Slots []ecs.EntityID

	// Position 连续滚动位置
	Position float64

	// PreviousPosition 上一帧的位置，用于计算滚动速度
	PreviousPosition float64

	// VelocityBlur 由速度推导出的模糊强度，仅用于视觉反馈
	VelocityBlur float64

	// State 当前状态
	State ReelState

	// TargetPosition 本次旋转的目标位置（旋转中有效）
	TargetPosition float64

	// SpinDurationMs 本次旋转的补间时长（旋转中有效）
	SpinDurationMs float64
}

// SlotCount 返回槽位数量
func (r *ReelComponent) SlotCount() int {
	return len(r.Slots)
}
