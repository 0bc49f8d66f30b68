package systems

import (
	"log"

	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/components"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/config"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/ecs"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/tween"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/utils"
)

// JitterFunc 返回 [0, max] 内的随机整数（额外停止格数）
type JitterFunc func(max int) int

// SpinPlan 单个转轮的旋转计划
type SpinPlan struct {
	Reel       int
	Extra      int
	Target     float64
	DurationMs float64
}

// PlanSpin 计算一次旋转中每个转轮的目标位置和时长
//
// 第 i 个转轮：
//
//	extra    = jitter(MaxExtraStops)
//	target   = position + BaseStops + i*StopsPerReel + extra
//	duration = BaseDurationMs + i*DurationPerReelMs + extra*DurationPerExtraMs
//
// 随机抖动可能让右侧转轮的时长不大于左侧，此时提升到 左侧时长 + MinStopGapMs，
// 保证从左到右依次停止。turbo 模式下所有时长按 TurboScale 等比缩放。
func PlanSpin(cfg config.SpinConfig, positions []float64, jitter JitterFunc, turbo bool) []SpinPlan {
	plans := make([]SpinPlan, len(positions))

	for i, pos := range positions {
		extra := 0
		if jitter != nil {
			extra = jitter(cfg.MaxExtraStops)
		}
		if extra < 0 {
			extra = 0
		} else if extra > cfg.MaxExtraStops {
			extra = cfg.MaxExtraStops
		}

		duration := cfg.BaseDurationMs +
			float64(i)*cfg.DurationPerReelMs +
			float64(extra)*cfg.DurationPerExtraMs

		if i > 0 {
			prev := plans[i-1].DurationMs
			if duration < prev+cfg.MinStopGapMs {
				duration = prev + cfg.MinStopGapMs
			}
			// MinStopGapMs 为 0 时仍需严格递增
			if duration <= prev {
				duration = prev + 1
			}
		}

		plans[i] = SpinPlan{
			Reel:       i,
			Extra:      extra,
			Target:     pos + float64(cfg.BaseStops+i*cfg.StopsPerReel+extra),
			DurationMs: duration,
		}
	}

	if turbo {
		for i := range plans {
			plans[i].DurationMs *= cfg.TurboScale
		}
	}

	return plans
}

// SpinSystem 旋转控制系统
//
// 职责：
//   - 响应旋转请求，为每个转轮注册位置补间
//   - 所有转轮停止后判定赔付线并启动中奖展示
//
// 会话状态由 SpinSession 持有；旋转中再次请求是无操作。
type SpinSystem struct {
	entityManager *ecs.EntityManager
	scheduler     *tween.Scheduler
	session       *SpinSession
	presenter     *WinPresenterSystem
	cfg           *config.SlotConfig
	reels         []ecs.EntityID
	jitter        JitterFunc
	easing        utils.EasingFunc
	turbo         bool

	// 本次旋转尚未停止的转轮数量
	pending int

	lastPlan    []SpinPlan
	lastResults []LineResult

	// OnSpinStart 旋转开始时调用（可选）
	OnSpinStart func()
	// OnReelStop 单个转轮停止时调用（可选）
	OnReelStop func(reelIndex int)
	// OnSpinComplete 所有转轮停止并完成判定后调用（可选）
	OnSpinComplete func(results []LineResult)
}

// NewSpinSystem 创建旋转控制系统
//
// 参数：
//   - reels: 转轮实体（从左到右）
//   - jitter: 额外停止格数的随机源
func NewSpinSystem(
	em *ecs.EntityManager,
	scheduler *tween.Scheduler,
	session *SpinSession,
	presenter *WinPresenterSystem,
	cfg *config.SlotConfig,
	reels []ecs.EntityID,
	jitter JitterFunc,
) *SpinSystem {
	return &SpinSystem{
		entityManager: em,
		scheduler:     scheduler,
		session:       session,
		presenter:     presenter,
		cfg:           cfg,
		reels:         reels,
		jitter:        jitter,
		easing:        utils.EaseBackout(cfg.Spin.BackoutAmount),
	}
}

// SetTurbo 开关快速模式，下一次旋转生效
func (s *SpinSystem) SetTurbo(enabled bool) {
	s.turbo = enabled
}

// Turbo 是否为快速模式
func (s *SpinSystem) Turbo() bool {
	return s.turbo
}

// SetJitter 替换随机源（测试中用于固定抖动）
func (s *SpinSystem) SetJitter(jitter JitterFunc) {
	s.jitter = jitter
}

// LastPlan 最近一次旋转的计划
func (s *SpinSystem) LastPlan() []SpinPlan {
	return s.lastPlan
}

// LastResults 最近一次旋转的判定结果（尚未完成过旋转时为 nil）
func (s *SpinSystem) LastResults() []LineResult {
	return s.lastResults
}

// StartSpin 开始旋转
// 已有旋转进行中时不做任何事并返回 false
func (s *SpinSystem) StartSpin() bool {
	if s.session.IsRunning() {
		log.Printf("[SpinSystem] Spin requested while running, ignored")
		return false
	}

	// 先清除上一轮的中奖展示
	s.presenter.StopAll()
	s.session.Start()

	reels := make([]*components.ReelComponent, 0, len(s.reels))
	positions := make([]float64, 0, len(s.reels))
	for _, id := range s.reels {
		reel, ok := ecs.GetComponent[*components.ReelComponent](s.entityManager, id)
		if !ok {
			continue
		}
		reels = append(reels, reel)
		positions = append(positions, reel.Position)
	}

	if len(reels) == 0 {
		s.finish()
		return true
	}

	s.lastPlan = PlanSpin(s.cfg.Spin, positions, s.jitter, s.turbo)
	s.pending = len(reels)

	for i, reel := range reels {
		plan := s.lastPlan[i]
		reel.State = components.ReelSpinning
		reel.TargetPosition = plan.Target
		reel.SpinDurationMs = plan.DurationMs

		r := reel
		s.scheduler.Schedule(tween.Tween{
			From:     r.Position,
			To:       plan.Target,
			Duration: plan.DurationMs,
			Easing:   s.easing,
			Set:      func(v float64) { r.Position = v },
			OnComplete: func() {
				s.onReelStopped(r)
			},
		})
	}

	log.Printf("[SpinSystem] Spin started: %d reels, turbo=%v", len(reels), s.turbo)
	if s.OnSpinStart != nil {
		s.OnSpinStart()
	}
	return true
}

// onReelStopped 单个转轮的补间完成
func (s *SpinSystem) onReelStopped(reel *components.ReelComponent) {
	reel.State = components.ReelIdle
	s.pending--

	log.Printf("[SpinSystem] Reel %d stopped at %.0f", reel.Index, reel.Position)
	if s.OnReelStop != nil {
		s.OnReelStop(reel.Index)
	}

	if s.pending == 0 {
		s.finish()
	}
}

// finish 所有转轮停止：判定赔付线、结束会话、启动中奖展示
func (s *SpinSystem) finish() {
	results := EvaluatePaylines(s.entityManager, s.reels, s.cfg.Paylines.Rows)
	s.lastResults = results
	s.session.Complete(results)

	for _, line := range WinningLines(results) {
		s.presenter.Present(line)
	}

	log.Printf("[SpinSystem] Spin complete: %d winning lines", len(WinningLines(results)))
	if s.OnSpinComplete != nil {
		s.OnSpinComplete(results)
	}
}
