package config

// 布局配置常量
// 本文件定义了老虎机场景中的布局参数，包括窗口尺寸、转轮窗口位置、按钮位置等

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 逻辑屏幕宽度，与实际窗口大小无关
	GameWindowWidth = 800
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 640
)

// Reel Window Configuration (转轮窗口配置)
const (
	// ReelWindowTop 可见 3×3 区域顶部 Y 坐标
	ReelWindowTop = 90.0

	// ReelGap 相邻转轮之间的水平间隔（像素）
	ReelGap = 20.0

	// ReelFramePadding 转轮窗口边框留白
	ReelFramePadding = 10.0

	// BlurGhostThreshold 模糊值低于该阈值时不绘制拖影
	BlurGhostThreshold = 0.5

	// BlurGhostCount 拖影层数
	BlurGhostCount = 3
)

// Spin Button Configuration (旋转按钮配置)
const (
	SpinButtonWidth    = 180.0
	SpinButtonHeight   = 56.0
	SpinButtonBottom   = 24.0 // 按钮底边距屏幕底部的距离
	SpinButtonFontSize = 28.0
	HUDFontSize        = 18.0
	SymbolFontSize     = 72.0
)

// ReelWindowBounds 计算可见 3×3 区域的位置和尺寸（水平居中）
//
// 参数：
//   - reelCount: 转轮数量
//   - visibleRows: 可见行数
//   - symbolSize: 符号边长
//
// 返回：
//   - x, y: 左上角坐标
//   - w, h: 宽高
func ReelWindowBounds(reelCount, visibleRows int, symbolSize float64) (x, y, w, h float64) {
	w = float64(reelCount)*symbolSize + float64(reelCount-1)*ReelGap
	h = float64(visibleRows) * symbolSize
	x = (GameWindowWidth - w) / 2
	y = ReelWindowTop
	return x, y, w, h
}

// SpinButtonBounds 返回旋转按钮的位置和尺寸（水平居中，贴近底部）
func SpinButtonBounds() (x, y, w, h float64) {
	x = (GameWindowWidth - SpinButtonWidth) / 2
	y = GameWindowHeight - SpinButtonBottom - SpinButtonHeight
	return x, y, SpinButtonWidth, SpinButtonHeight
}
