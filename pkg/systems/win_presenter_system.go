package systems

import (
	"image/color"
	"log"

	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/components"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/config"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/ecs"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/tween"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/utils"
)

// WinPresenterSystem 中奖展示系统
//
// 对中奖行的每个符号循环播放：
// 高亮 → 保持 → 还原 → 保持 → 淡出 → 淡入 → 再次高亮 ...
// 直到 StopAll 被调用（下一次旋转开始时）。
//
// 每个符号同一时刻最多一个活动补间，句柄记录在 WinHighlightComponent 中。
type WinPresenterSystem struct {
	entityManager *ecs.EntityManager
	scheduler     *tween.Scheduler
	highlight     color.RGBA
	holdMs        float64
	fadeMs        float64
	dimAlpha      float64
}

// NewWinPresenterSystem 创建中奖展示系统
func NewWinPresenterSystem(em *ecs.EntityManager, scheduler *tween.Scheduler, cfg config.WinConfig) *WinPresenterSystem {
	return &WinPresenterSystem{
		entityManager: em,
		scheduler:     scheduler,
		highlight:     color.RGBA{R: cfg.HighlightColor[0], G: cfg.HighlightColor[1], B: cfg.HighlightColor[2], A: 255},
		holdMs:        cfg.HoldMs,
		fadeMs:        cfg.FadeMs,
		dimAlpha:      cfg.DimAlpha,
	}
}

// Present 开始展示一条中奖行
// 返回开始播放的符号数量；非中奖行或已在展示中的符号被跳过
func (p *WinPresenterSystem) Present(line LineResult) int {
	if !line.IsWin {
		return 0
	}

	started := 0
	for _, id := range line.Entities {
		if !ecs.HasComponent[*components.SymbolComponent](p.entityManager, id) {
			continue
		}
		// 多条中奖线共用同一个符号时只播放一次
		if ecs.HasComponent[*components.WinHighlightComponent](p.entityManager, id) {
			continue
		}
		hl := &components.WinHighlightComponent{Row: line.Row}
		ecs.AddComponent(p.entityManager, id, hl)
		p.enterPhase(id, hl, components.WinPhaseChangeColor)
		started++
	}

	log.Printf("[WinPresenter] Presenting row %d (%v), %d symbols", line.Row, line.Symbols, started)
	return started
}

// StopAll 取消所有中奖动画，并把所有符号恢复为中性色调、完全不透明
func (p *WinPresenterSystem) StopAll() {
	for _, id := range ecs.GetEntitiesWith1[*components.WinHighlightComponent](p.entityManager) {
		hl, _ := ecs.GetComponent[*components.WinHighlightComponent](p.entityManager, id)
		if hl.Tween != 0 {
			p.scheduler.Stop(hl.Tween)
		}
		ecs.RemoveComponent[*components.WinHighlightComponent](p.entityManager, id)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.SymbolComponent](p.entityManager) {
		sym, _ := ecs.GetComponent[*components.SymbolComponent](p.entityManager, id)
		sym.ResetAppearance()
	}
}

// IsPresenting 是否有中奖动画正在播放
func (p *WinPresenterSystem) IsPresenting() bool {
	return len(ecs.GetEntitiesWith1[*components.WinHighlightComponent](p.entityManager)) > 0
}

// enterPhase 进入指定阶段；瞬时阶段直接衔接下一阶段
func (p *WinPresenterSystem) enterPhase(id ecs.EntityID, hl *components.WinHighlightComponent, phase components.WinPhase) {
	sym, ok := ecs.GetComponent[*components.SymbolComponent](p.entityManager, id)
	if !ok {
		return
	}

	hl.Phase = phase
	hl.Tween = 0

	switch phase {
	case components.WinPhaseChangeColor:
		sym.Tint = p.highlight
		p.enterPhase(id, hl, components.WinPhaseHoldHighlight)

	case components.WinPhaseHoldHighlight:
		hl.Tween = p.delay(id, hl, p.holdMs, components.WinPhaseChangeBack)

	case components.WinPhaseChangeBack:
		sym.Tint = components.NeutralTint
		p.enterPhase(id, hl, components.WinPhaseHoldNeutral)

	case components.WinPhaseHoldNeutral:
		hl.Tween = p.delay(id, hl, p.holdMs, components.WinPhaseFadeOut)

	case components.WinPhaseFadeOut:
		hl.Tween = p.scheduler.Schedule(tween.Tween{
			From:     sym.Alpha,
			To:       p.dimAlpha,
			Duration: p.fadeMs,
			Easing:   utils.EaseInQuad,
			Set:      func(v float64) { sym.Alpha = v },
			OnComplete: func() {
				p.advance(id, hl, components.WinPhaseFadeIn)
			},
		})

	case components.WinPhaseFadeIn:
		hl.Tween = p.scheduler.Schedule(tween.Tween{
			From:     sym.Alpha,
			To:       1.0,
			Duration: p.fadeMs,
			Easing:   utils.EaseOutQuad,
			Set:      func(v float64) { sym.Alpha = v },
			OnComplete: func() {
				hl.Loops++
				p.advance(id, hl, components.WinPhaseChangeColor)
			},
		})
	}
}

// delay 注册纯延时补间，结束后进入 next 阶段
func (p *WinPresenterSystem) delay(id ecs.EntityID, hl *components.WinHighlightComponent, ms float64, next components.WinPhase) tween.Handle {
	return p.scheduler.Schedule(tween.Tween{
		Duration: ms,
		Easing:   utils.EaseLinear,
		OnComplete: func() {
			p.advance(id, hl, next)
		},
	})
}

// advance 补间完成后的阶段切换
// 组件已被移除或替换时放弃（展示已被取消）
func (p *WinPresenterSystem) advance(id ecs.EntityID, hl *components.WinHighlightComponent, next components.WinPhase) {
	current, ok := ecs.GetComponent[*components.WinHighlightComponent](p.entityManager, id)
	if !ok || current != hl {
		return
	}
	p.enterPhase(id, hl, next)
}
