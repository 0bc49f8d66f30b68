package utils

import "time"

// Clock 单调毫秒时钟
// 每帧只采样一次，所有动画都基于"当前时间 - 起始时间"推进，与帧率无关
type Clock interface {
	// NowMillis 返回单调递增的毫秒时间戳
	NowMillis() float64
}

// SystemClock 基于进程启动时刻的真实时钟
type SystemClock struct {
	start time.Time
}

// NewSystemClock 创建真实时钟，时间从 0 开始计
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMillis 返回自创建以来经过的毫秒数（time.Since 使用单调时钟读数）
func (c *SystemClock) NowMillis() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// ManualClock 手动推进的时钟
// 用于测试和无界面模拟器（固定步长推进）
type ManualClock struct {
	now float64
}

// NewManualClock 创建从 start 开始的手动时钟
func NewManualClock(start float64) *ManualClock {
	return &ManualClock{now: start}
}

// NowMillis 返回当前时间
func (c *ManualClock) NowMillis() float64 {
	return c.now
}

// Advance 推进 ms 毫秒（负值被忽略，保持单调）
func (c *ManualClock) Advance(ms float64) float64 {
	if ms > 0 {
		c.now += ms
	}
	return c.now
}
