package systems

import (
	"fmt"
	"math/rand/v2"

	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/components"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/config"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/ecs"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/entities"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/tween"
)

// SlotMachine 老虎机引擎
//
// 组合实体管理器、补间调度器和各个系统，是前端（Ebitengine 场景、终端界面、
// 无头模拟器）唯一需要接触的入口。所有方法只能在帧循环所在的 goroutine 中调用。
type SlotMachine struct {
	entityManager *ecs.EntityManager
	scheduler     *tween.Scheduler
	session       *SpinSession
	recycler      SymbolRecycler
	reelSystem    *ReelSystem
	spinSystem    *SpinSystem
	presenter     *WinPresenterSystem
	cfg           *config.SlotConfig
	table         *config.SymbolTable
	reels         []ecs.EntityID
}

// NewSlotMachine 创建老虎机并构建所有转轮
//
// 参数：
//   - cfg: 老虎机参数（nil 时使用默认值）
//   - table: 符号表（nil 时使用默认值）
//   - rng: 随机源，用于符号回收和停止抖动
func NewSlotMachine(cfg *config.SlotConfig, table *config.SymbolTable, rng *rand.Rand) (*SlotMachine, error) {
	if cfg == nil {
		cfg = config.DefaultSlotConfig()
	}
	if table == nil {
		table = config.DefaultSymbolTable()
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid slot config: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid symbol table: %w", err)
	}

	m := &SlotMachine{
		entityManager: ecs.NewEntityManager(),
		scheduler:     tween.NewScheduler(),
		session:       NewSpinSession(),
		recycler:      NewWeightedRecycler(table, rng),
		cfg:           cfg,
		table:         table,
	}

	for i := 0; i < cfg.Reels.Count; i++ {
		id, err := entities.NewReelEntity(m.entityManager, i, cfg, m.recycler)
		if err != nil {
			return nil, fmt.Errorf("failed to create reel %d: %w", i, err)
		}
		m.reels = append(m.reels, id)
	}

	m.reelSystem = NewReelSystem(m.entityManager, cfg, m.recycler)
	m.presenter = NewWinPresenterSystem(m.entityManager, m.scheduler, cfg.Win)
	m.spinSystem = NewSpinSystem(
		m.entityManager, m.scheduler, m.session, m.presenter, cfg, m.reels,
		func(max int) int { return rng.IntN(max + 1) },
	)

	return m, nil
}

// RequestSpin 请求旋转；旋转中返回 false
func (m *SlotMachine) RequestSpin() bool {
	return m.spinSystem.StartSpin()
}

// Update 推进一帧
// now 为单调递增的毫秒时间戳
func (m *SlotMachine) Update(now float64) {
	m.scheduler.Tick(now)
	m.reelSystem.Update()
}

// IsSpinning 是否正在旋转
func (m *SlotMachine) IsSpinning() bool {
	return m.session.IsRunning()
}

// SetTurbo 开关快速模式
func (m *SlotMachine) SetTurbo(enabled bool) {
	m.spinSystem.SetTurbo(enabled)
}

// Turbo 是否为快速模式
func (m *SlotMachine) Turbo() bool {
	return m.spinSystem.Turbo()
}

// SetCallbacks 设置旋转事件回调（任一参数可为 nil）
func (m *SlotMachine) SetCallbacks(onStart func(), onReelStop func(int), onComplete func([]LineResult)) {
	m.spinSystem.OnSpinStart = onStart
	m.spinSystem.OnReelStop = onReelStop
	m.spinSystem.OnSpinComplete = onComplete
}

// Reels 返回转轮组件（从左到右）
func (m *SlotMachine) Reels() []*components.ReelComponent {
	reels := make([]*components.ReelComponent, 0, len(m.reels))
	for _, id := range m.reels {
		if reel, ok := ecs.GetComponent[*components.ReelComponent](m.entityManager, id); ok {
			reels = append(reels, reel)
		}
	}
	return reels
}

// Symbols 返回某个转轮的符号组件（按槽位顺序）
func (m *SlotMachine) Symbols(reelIndex int) []*components.SymbolComponent {
	if reelIndex < 0 || reelIndex >= len(m.reels) {
		return nil
	}
	reel, ok := ecs.GetComponent[*components.ReelComponent](m.entityManager, m.reels[reelIndex])
	if !ok {
		return nil
	}
	symbols := make([]*components.SymbolComponent, 0, reel.SlotCount())
	for _, id := range reel.Slots {
		if sym, ok := ecs.GetComponent[*components.SymbolComponent](m.entityManager, id); ok {
			symbols = append(symbols, sym)
		}
	}
	return symbols
}

// LastResults 最近一次旋转的判定结果
func (m *SlotMachine) LastResults() []LineResult {
	return m.spinSystem.LastResults()
}

// LastPlan 最近一次旋转的计划
func (m *SlotMachine) LastPlan() []SpinPlan {
	return m.spinSystem.LastPlan()
}

// Stats 返回会话统计
func (m *SlotMachine) Stats() SpinStats {
	return m.session.Stats()
}

// Config 返回老虎机参数
func (m *SlotMachine) Config() *config.SlotConfig {
	return m.cfg
}

// SymbolTable 返回符号表
func (m *SlotMachine) SymbolTable() *config.SymbolTable {
	return m.table
}

// EntityManager 返回实体管理器
func (m *SlotMachine) EntityManager() *ecs.EntityManager {
	return m.entityManager
}

// Scheduler 返回补间调度器
func (m *SlotMachine) Scheduler() *tween.Scheduler {
	return m.scheduler
}

// Presenter 返回中奖展示系统
func (m *SlotMachine) Presenter() *WinPresenterSystem {
	return m.presenter
}

// SpinSystem 返回旋转控制系统
func (m *SlotMachine) SpinSystem() *SpinSystem {
	return m.spinSystem
}
