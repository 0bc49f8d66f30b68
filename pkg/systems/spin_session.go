package systems

// SpinStats 会话内的旋转统计（仅内存，不持久化）
type SpinStats struct {
	// Spins 已完成的旋转次数
	Spins int
	// WinningSpins 至少有一行中奖的旋转次数
	WinningSpins int
	// WinningLines 累计中奖行数
	WinningLines int
}

// HitRate 中奖旋转占比
func (s SpinStats) HitRate() float64 {
	if s.Spins == 0 {
		return 0
	}
	return float64(s.WinningSpins) / float64(s.Spins)
}

// SpinSession 旋转会话状态
//
// 保证同一时刻最多只有一次旋转：
//   - Start 只在空闲时成功
//   - Complete 在所有转轮停止后调用
type SpinSession struct {
	running bool
	stats   SpinStats
}

// NewSpinSession 创建会话
func NewSpinSession() *SpinSession {
	return &SpinSession{}
}

// IsRunning 是否正在旋转
func (s *SpinSession) IsRunning() bool {
	return s.running
}

// Start 开始一次旋转；已在旋转中时返回 false
func (s *SpinSession) Start() bool {
	if s.running {
		return false
	}
	s.running = true
	return true
}

// Complete 结束旋转并记录结果
func (s *SpinSession) Complete(results []LineResult) {
	if !s.running {
		return
	}
	s.running = false

	s.stats.Spins++
	wins := len(WinningLines(results))
	if wins > 0 {
		s.stats.WinningSpins++
		s.stats.WinningLines += wins
	}
}

// Stats 返回统计快照
func (s *SpinSession) Stats() SpinStats {
	return s.stats
}
