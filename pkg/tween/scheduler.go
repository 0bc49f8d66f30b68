// Package tween 提供基于时间的数值插值调度器
//
// 调度器不持有任何"对象 + 属性名"，每个补间通过强类型的 Set 闭包写回目标值，
// 因此可以驱动任意 float64 字段（转轮位置、符号透明度等）。
//
// 调度器是可注入的实例，不存在全局补间列表。所有方法只能在帧循环所在的
// 单一 goroutine 中调用。
package tween

import (
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/utils"
)

// Handle 补间句柄，用于取消或查询补间
// 0 保留为无效句柄
type Handle uint64

// Tween 描述一次从 From 到 To 的插值
type Tween struct {
	// From 起始值
	From float64
	// To 目标值，完成时精确写入
	To float64
	// Duration 持续时间（毫秒），<= 0 表示下一次 Tick 立即完成
	Duration float64
	// Easing 缓动函数，nil 时使用调度器的默认缓动（回弹）
	Easing utils.EasingFunc

	// Set 写回插值结果，可为 nil（纯延时补间）
	Set func(value float64)
	// OnChange 每次写回后调用（可选）
	OnChange func(value float64)
	// OnComplete 完成时同步调用一次（可选），被 Stop 取消的补间不会调用
	OnComplete func()
}

// entry 调度器内部的活动补间
type entry struct {
	Tween
	handle  Handle
	start   float64
	removed bool
}

// Scheduler 补间调度器
//
// 每帧调用一次 Tick(now)；now 为单调毫秒时间戳。
// Tick 分两步：先按注册顺序推进所有补间并写回数值，
// 再按注册顺序触发本帧完成的 OnComplete 并移除。
// 回调中新注册的补间从下一次 Tick 开始推进，回调中取消的补间不再触发。
type Scheduler struct {
	active        []*entry
	nextHandle    Handle
	now           float64
	ticking       bool
	defaultEasing utils.EasingFunc
}

// NewScheduler 创建调度器，默认缓动为 EaseBackout(DefaultBackoutAmount)
func NewScheduler() *Scheduler {
	return &Scheduler{
		active:        make([]*entry, 0, 16),
		defaultEasing: utils.EaseBackout(utils.DefaultBackoutAmount),
	}
}

// SetDefaultEasing 替换默认缓动函数（nil 被忽略）
func (s *Scheduler) SetDefaultEasing(fn utils.EasingFunc) {
	if fn != nil {
		s.defaultEasing = fn
	}
}

// Now 返回最近一次 Tick 的时间戳，新补间以此为起始时间
func (s *Scheduler) Now() float64 {
	return s.now
}

// Schedule 注册补间并返回句柄
func (s *Scheduler) Schedule(t Tween) Handle {
	if t.Easing == nil {
		t.Easing = s.defaultEasing
	}
	s.nextHandle++
	s.active = append(s.active, &entry{
		Tween:  t,
		handle: s.nextHandle,
		start:  s.now,
	})
	return s.nextHandle
}

// Stop 取消补间，不触发 OnComplete
// 返回 false 表示句柄无效或补间已结束
func (s *Scheduler) Stop(h Handle) bool {
	for _, e := range s.active {
		if e.handle == h && !e.removed {
			e.removed = true
			if !s.ticking {
				s.compact()
			}
			return true
		}
	}
	return false
}

// IsActive 判断补间是否仍在运行
func (s *Scheduler) IsActive(h Handle) bool {
	if h == 0 {
		return false
	}
	for _, e := range s.active {
		if e.handle == h {
			return !e.removed
		}
	}
	return false
}

// Len 返回活动补间数量
func (s *Scheduler) Len() int {
	n := 0
	for _, e := range s.active {
		if !e.removed {
			n++
		}
	}
	return n
}

// Tick 推进所有活动补间
func (s *Scheduler) Tick(now float64) {
	if now > s.now {
		s.now = now
	}

	s.ticking = true
	defer func() {
		s.ticking = false
		s.compact()
	}()

	// 只处理本帧开始时已存在的补间
	batch := make([]*entry, len(s.active))
	copy(batch, s.active)

	completed := make([]*entry, 0, 4)
	for _, e := range batch {
		if e.removed {
			continue
		}

		phase := 1.0
		if e.Duration > 0 {
			phase = utils.Clamp01((s.now - e.start) / e.Duration)
		}

		value := e.To
		if phase < 1 {
			value = utils.Lerp(e.From, e.To, e.Easing(phase))
		}
		if e.Set != nil {
			e.Set(value)
		}
		if e.OnChange != nil {
			e.OnChange(value)
		}
		if phase >= 1 {
			completed = append(completed, e)
		}
	}

	for _, e := range completed {
		// 可能已被前一个完成回调取消
		if e.removed {
			continue
		}
		e.removed = true
		if e.OnComplete != nil {
			e.OnComplete()
		}
	}
}

// compact 移除已完成或已取消的补间，保持注册顺序
func (s *Scheduler) compact() {
	kept := s.active[:0]
	for _, e := range s.active {
		if !e.removed {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(s.active); i++ {
		s.active[i] = nil
	}
	s.active = kept
}
