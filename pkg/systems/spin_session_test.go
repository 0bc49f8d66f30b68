package systems

import "testing"

func TestSpinSession(t *testing.T) {
	s := NewSpinSession()
	if s.IsRunning() {
		t.Fatal("new session should be idle")
	}
	if !s.Start() {
		t.Fatal("Start on idle session should succeed")
	}
	if s.Start() {
		t.Error("Start while running should fail")
	}

	s.Complete([]LineResult{{Row: 1, IsWin: true}, {Row: 2}, {Row: 3, IsWin: true}})
	if s.IsRunning() {
		t.Error("session should be idle after Complete")
	}

	// 空闲时 Complete 不计数
	s.Complete([]LineResult{{Row: 1, IsWin: true}})

	s.Start()
	s.Complete([]LineResult{{Row: 1}, {Row: 2}})

	stats := s.Stats()
	if stats.Spins != 2 || stats.WinningSpins != 1 || stats.WinningLines != 2 {
		t.Errorf("stats = %+v, want {Spins:2 WinningSpins:1 WinningLines:2}", stats)
	}
	if stats.HitRate() != 0.5 {
		t.Errorf("HitRate = %v, want 0.5", stats.HitRate())
	}
	if (SpinStats{}).HitRate() != 0 {
		t.Error("HitRate of empty stats should be 0")
	}
}
