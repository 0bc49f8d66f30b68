package tween

import (
	"math"
	"testing"

	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/utils"
)

// TestTweenReachesTargetExactly 补间推进超过时长后精确到达目标、被移除、OnComplete 只触发一次
func TestTweenReachesTargetExactly(t *testing.T) {
	s := NewScheduler()
	value := 0.0
	completeCount := 0

	h := s.Schedule(Tween{
		From:       0,
		To:         17.3,
		Duration:   1000,
		Set:        func(v float64) { value = v },
		OnComplete: func() { completeCount++ },
	})

	for now := 0.0; now <= 1500; now += 16.6 {
		s.Tick(now)
	}
	// 额外多推进几次，确认不会重复触发
	s.Tick(2000)
	s.Tick(3000)

	if value != 17.3 {
		t.Errorf("value = %v, want exactly 17.3", value)
	}
	if completeCount != 1 {
		t.Errorf("OnComplete fired %d times, want 1", completeCount)
	}
	if s.IsActive(h) {
		t.Error("tween should be removed after completion")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

// TestTweenIntermediateValues 中间值遵循 lerp(from, to, easing(phase))
func TestTweenIntermediateValues(t *testing.T) {
	s := NewScheduler()
	var value float64
	s.Schedule(Tween{
		From:     10,
		To:       20,
		Duration: 100,
		Easing:   utils.EaseLinear,
		Set:      func(v float64) { value = v },
	})

	s.Tick(25)
	if math.Abs(value-12.5) > 1e-9 {
		t.Errorf("at 25%% value = %v, want 12.5", value)
	}
	s.Tick(50)
	if math.Abs(value-15) > 1e-9 {
		t.Errorf("at 50%% value = %v, want 15", value)
	}
}

// TestTweenNonPositiveDuration 时长 <= 0 时下一次 Tick 立即完成
func TestTweenNonPositiveDuration(t *testing.T) {
	for _, d := range []float64{0, -5} {
		s := NewScheduler()
		value := 0.0
		done := false
		s.Schedule(Tween{
			From:       1,
			To:         9,
			Duration:   d,
			Set:        func(v float64) { value = v },
			OnComplete: func() { done = true },
		})
		s.Tick(0)
		if !done || value != 9 {
			t.Errorf("duration %v: done=%v value=%v, want completion at 9", d, done, value)
		}
		if s.Len() != 0 {
			t.Errorf("duration %v: tween not removed", d)
		}
	}
}

// TestStopDoesNotFireOnComplete 取消补间不触发 OnComplete
func TestStopDoesNotFireOnComplete(t *testing.T) {
	s := NewScheduler()
	fired := false
	h := s.Schedule(Tween{To: 1, Duration: 100, OnComplete: func() { fired = true }})

	s.Tick(50)
	if !s.Stop(h) {
		t.Fatal("Stop should return true for an active tween")
	}
	s.Tick(500)

	if fired {
		t.Error("OnComplete must not fire for a stopped tween")
	}
	if s.Stop(h) {
		t.Error("Stop should return false for an already stopped tween")
	}
}

// TestCompletionSchedulesNextTween 完成回调中注册的新补间从下一帧开始推进
func TestCompletionSchedulesNextTween(t *testing.T) {
	s := NewScheduler()
	chained := 0

	var scheduleNext func()
	scheduleNext = func() {
		chained++
		s.Schedule(Tween{Duration: 0, OnComplete: scheduleNext})
	}
	s.Schedule(Tween{Duration: 0, OnComplete: scheduleNext})

	s.Tick(0)
	if chained != 1 {
		t.Fatalf("after first tick chained = %d, want 1 (no same-tick re-entry)", chained)
	}
	s.Tick(1)
	if chained != 2 {
		t.Errorf("after second tick chained = %d, want 2", chained)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1 pending tween", s.Len())
	}
}

// TestCompletionOrderAndCancellation 同帧完成按注册顺序回调，前一个回调取消的补间不再回调
func TestCompletionOrderAndCancellation(t *testing.T) {
	s := NewScheduler()
	var order []int
	var second Handle

	s.Schedule(Tween{Duration: 10, OnComplete: func() {
		order = append(order, 1)
		s.Stop(second)
	}})
	second = s.Schedule(Tween{Duration: 10, OnComplete: func() { order = append(order, 2) }})
	s.Schedule(Tween{Duration: 10, OnComplete: func() { order = append(order, 3) }})

	s.Tick(20)

	if len(order) != 2 || order[0] != 1 || order[1] != 3 {
		t.Errorf("completion order = %v, want [1 3]", order)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

// TestAllTweensAdvanceBeforeCompletions 同帧内所有补间先推进，再触发完成回调
func TestAllTweensAdvanceBeforeCompletions(t *testing.T) {
	s := NewScheduler()
	var later float64
	var observed float64

	s.Schedule(Tween{
		Duration:   10,
		OnComplete: func() { observed = later },
	})
	s.Schedule(Tween{
		From:     0,
		To:       100,
		Duration: 20,
		Easing:   utils.EaseLinear,
		Set:      func(v float64) { later = v },
	})

	s.Tick(10)
	if observed != 50 {
		t.Errorf("completion observed later = %v, want 50 (already advanced this tick)", observed)
	}
}

// TestScheduleStartsAtLastTick 新补间的起始时间是最近一次 Tick 的时间
func TestScheduleStartsAtLastTick(t *testing.T) {
	s := NewScheduler()
	s.Tick(1000)
	var value float64
	s.Schedule(Tween{From: 0, To: 1, Duration: 100, Easing: utils.EaseLinear, Set: func(v float64) { value = v }})

	s.Tick(1050)
	if math.Abs(value-0.5) > 1e-9 {
		t.Errorf("value = %v, want 0.5", value)
	}
	if s.Now() != 1050 {
		t.Errorf("Now() = %v, want 1050", s.Now())
	}
}

// TestTickIgnoresBackwardsTime 时间戳回退时不回退进度
func TestTickIgnoresBackwardsTime(t *testing.T) {
	s := NewScheduler()
	var value float64
	s.Schedule(Tween{From: 0, To: 10, Duration: 100, Easing: utils.EaseLinear, Set: func(v float64) { value = v }})

	s.Tick(60)
	s.Tick(30)
	if math.Abs(value-6) > 1e-9 {
		t.Errorf("value = %v, want 6", value)
	}
}

func TestDefaultEasingIsBackout(t *testing.T) {
	s := NewScheduler()
	peak := 0.0
	s.Schedule(Tween{From: 0, To: 1, Duration: 100, Set: func(v float64) {
		if v > peak {
			peak = v
		}
	}})
	for now := 0.0; now <= 100; now++ {
		s.Tick(now)
	}
	if peak <= 1 {
		t.Errorf("default easing should overshoot, peak = %v", peak)
	}
}
