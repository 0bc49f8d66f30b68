package utils

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值。
// 回弹类曲线在中途可能超过 1，最终 f(1) = 1。
//
// 参考：https://easings.net/

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// DefaultBackoutAmount 转轮停止时的默认回弹幅度
const DefaultBackoutAmount = 0.7

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseInQuad 二次方缓入
// 特点：开始慢，结束较快（用于中奖符号淡出）
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢（用于中奖符号淡入）
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseBackout 回弹缓出：先越过终点再回落
// 公式：f(t) = (t-1)² * ((amount+1)*(t-1) + amount) + 1
//
// 参数：
//   - amount: 回弹幅度，0 时退化为普通缓出，越大越明显
func EaseBackout(amount float64) EasingFunc {
	return func(t float64) float64 {
		u := t - 1
		return u*u*((amount+1)*u+amount) + 1
	}
}

// Lerp 线性插值
// 按 a*(1-t) + b*t 计算，t=0 精确返回 a，t=1 精确返回 b
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
