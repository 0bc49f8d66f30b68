package utils

import (
	"math"
	"testing"
)

// TestLerp 测试线性插值的端点与中间值
func TestLerp(t *testing.T) {
	pairs := [][2]float64{{0, 10}, {-5, 5}, {100, -100}, {3.25, 3.25}, {1e6, 1e6 + 17}}
	steps := []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1}

	for _, p := range pairs {
		a, b := p[0], p[1]
		if got := Lerp(a, b, 0); got != a {
			t.Errorf("Lerp(%v, %v, 0) = %v, want exactly %v", a, b, got, a)
		}
		if got := Lerp(a, b, 1); got != b {
			t.Errorf("Lerp(%v, %v, 1) = %v, want exactly %v", a, b, got, b)
		}
		for _, s := range steps {
			want := a + (b-a)*s
			if got := Lerp(a, b, s); math.Abs(got-want) > 1e-6 {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", a, b, s, got, want)
			}
		}
	}
}

// TestEaseBackout 测试回弹曲线：端点固定，中途越过 1
func TestEaseBackout(t *testing.T) {
	ease := EaseBackout(DefaultBackoutAmount)

	if got := ease(0); math.Abs(got) > 1e-9 {
		t.Errorf("backout(0) = %v, want 0", got)
	}
	if got := ease(1); got != 1 {
		t.Errorf("backout(1) = %v, want 1", got)
	}

	peak := 0.0
	for i := 0; i <= 100; i++ {
		if v := ease(float64(i) / 100); v > peak {
			peak = v
		}
	}
	if peak <= 1 {
		t.Errorf("backout should overshoot past 1, peak = %v", peak)
	}

	// amount = 0 时没有越界
	flat := EaseBackout(0)
	for i := 0; i <= 100; i++ {
		if v := flat(float64(i) / 100); v > 1+1e-9 {
			t.Fatalf("backout(amount=0) overshoots at t=%v: %v", float64(i)/100, v)
		}
	}
}

// TestEaseQuad 测试二次方缓入缓出
func TestEaseQuad(t *testing.T) {
	tests := []struct {
		name     string
		fn       EasingFunc
		input    float64
		expected float64
	}{
		{"缓入起点", EaseInQuad, 0, 0},
		{"缓入中点", EaseInQuad, 0.5, 0.25},
		{"缓入终点", EaseInQuad, 1, 1},
		{"缓出起点", EaseOutQuad, 0, 0},
		{"缓出中点", EaseOutQuad, 0.5, 0.75},
		{"缓出终点", EaseOutQuad, 1, 1},
		{"线性中点", EaseLinear, 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.input); math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("f(%v) = %v, 期望 %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(-0.5) != 0 || Clamp01(1.5) != 1 || Clamp01(0.3) != 0.3 {
		t.Error("Clamp01 returned unexpected values")
	}
}
