package config

import (
	"fmt"

	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// SlotConfigPath 老虎机参数配置文件路径
const SlotConfigPath = "data/slot.yaml"

// SlotConfig 老虎机参数配置
//
// 控制转轮尺寸、旋转时长、中奖展示节奏等可调参数。
// 配置文件位置: data/slot.yaml
type SlotConfig struct {
	Reels    ReelsConfig    `yaml:"reels"`
	Spin     SpinConfig     `yaml:"spin"`
	Paylines PaylinesConfig `yaml:"paylines"`
	Win      WinConfig      `yaml:"win"`
}

// ReelsConfig 转轮配置
type ReelsConfig struct {
	// Count 转轮数量（从左到右）
	Count int `yaml:"count"`

	// SlotCount 每个转轮的符号槽数量
	// 可见 3 行 + 上下各 1 行的过扫描行
	SlotCount int `yaml:"slotCount"`

	// SymbolSize 符号边长（像素），即一个槽位的高度
	SymbolSize float64 `yaml:"symbolSize"`

	// BlurGain 运动模糊增益：blur = (position - previousPosition) * BlurGain
	BlurGain float64 `yaml:"blurGain"`
}

// SpinConfig 旋转配置
//
// 第 i 个转轮（从 0 开始）：
//
//	extra    = randomInt(0, MaxExtraStops)  （含两端）
//	target   = position + BaseStops + i*StopsPerReel + extra
//	duration = BaseDurationMs + i*DurationPerReelMs + extra*DurationPerExtraMs
type SpinConfig struct {
	BaseStops          int     `yaml:"baseStops"`
	StopsPerReel       int     `yaml:"stopsPerReel"`
	MaxExtraStops      int     `yaml:"maxExtraStops"`
	BaseDurationMs     float64 `yaml:"baseDurationMs"`
	DurationPerReelMs  float64 `yaml:"durationPerReelMs"`
	DurationPerExtraMs float64 `yaml:"durationPerExtraMs"`

	// MinStopGapMs 相邻转轮停止的最小间隔
	// 随机抖动可能让右侧转轮先停，此时把它的时长提升到左侧转轮时长 + 该间隔
	MinStopGapMs float64 `yaml:"minStopGapMs"`

	// BackoutAmount 停止时回弹曲线的幅度
	BackoutAmount float64 `yaml:"backoutAmount"`

	// TurboScale 快速模式下的时长缩放系数 (0, 1]
	TurboScale float64 `yaml:"turboScale"`
}

// PaylinesConfig 赔付线配置
type PaylinesConfig struct {
	// Rows 参与判定的行（槽位窗口内的行号）
	// 第 0 行和最后一行是过扫描行，不参与判定
	Rows []int `yaml:"rows"`
}

// WinConfig 中奖展示配置
type WinConfig struct {
	// HighlightColor 高亮颜色 [R, G, B]
	HighlightColor [3]uint8 `yaml:"highlightColor"`
	// HoldMs 高亮/还原后的停留时间
	HoldMs float64 `yaml:"holdMs"`
	// FadeMs 淡出、淡入各自的时长
	FadeMs float64 `yaml:"fadeMs"`
	// DimAlpha 淡出后的透明度
	DimAlpha float64 `yaml:"dimAlpha"`
}

// DefaultSlotConfig 返回与 data/slot.yaml 一致的默认配置
func DefaultSlotConfig() *SlotConfig {
	return &SlotConfig{
		Reels: ReelsConfig{
			Count:      3,
			SlotCount:  5,
			SymbolSize: 150,
			BlurGain:   8,
		},
		Spin: SpinConfig{
			BaseStops:          10,
			StopsPerReel:       5,
			MaxExtraStops:      2,
			BaseDurationMs:     2500,
			DurationPerReelMs:  600,
			DurationPerExtraMs: 600,
			MinStopGapMs:       150,
			BackoutAmount:      0.7,
			TurboScale:         0.5,
		},
		Paylines: PaylinesConfig{
			Rows: []int{1, 2, 3},
		},
		Win: WinConfig{
			HighlightColor: [3]uint8{255, 196, 0},
			HoldMs:         400,
			FadeMs:         350,
			DimAlpha:       0.35,
		},
	}
}

// LoadSlotConfig 加载老虎机参数配置
//
// 参数:
//   - path: 配置文件路径（如 "data/slot.yaml"）
//
// 返回:
//   - *SlotConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadSlotConfig(path string) (*SlotConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read slot config: %w", err)
	}
	return ParseSlotConfig(data)
}

// ParseSlotConfig 解析 YAML 数据
// 未出现在文件中的字段保留默认值
func ParseSlotConfig(data []byte) (*SlotConfig, error) {
	cfg := DefaultSlotConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse slot config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid slot config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *SlotConfig) Validate() error {
	if c.Reels.Count < 1 {
		return fmt.Errorf("reels.count must be >= 1, got %d", c.Reels.Count)
	}
	if c.Reels.SlotCount < 3 {
		return fmt.Errorf("reels.slotCount must be >= 3, got %d", c.Reels.SlotCount)
	}
	if c.Reels.SymbolSize <= 0 {
		return fmt.Errorf("reels.symbolSize must be > 0, got %.1f", c.Reels.SymbolSize)
	}
	if c.Spin.MaxExtraStops < 1 {
		return fmt.Errorf("spin.maxExtraStops must be >= 1, got %d", c.Spin.MaxExtraStops)
	}
	if c.Spin.BaseStops < 1 || c.Spin.StopsPerReel < 0 {
		return fmt.Errorf("spin stops must be positive (baseStops=%d, stopsPerReel=%d)",
			c.Spin.BaseStops, c.Spin.StopsPerReel)
	}
	if c.Spin.BaseDurationMs < 0 || c.Spin.DurationPerReelMs < 0 ||
		c.Spin.DurationPerExtraMs < 0 || c.Spin.MinStopGapMs < 0 {
		return fmt.Errorf("spin durations must be >= 0")
	}
	if c.Spin.TurboScale <= 0 || c.Spin.TurboScale > 1 {
		return fmt.Errorf("spin.turboScale must be in (0, 1], got %.2f", c.Spin.TurboScale)
	}
	if len(c.Paylines.Rows) == 0 {
		return fmt.Errorf("paylines.rows must not be empty")
	}
	for _, row := range c.Paylines.Rows {
		if row < 0 || row >= c.Reels.SlotCount {
			return fmt.Errorf("payline row %d outside slot window [0, %d)", row, c.Reels.SlotCount)
		}
	}
	if c.Win.HoldMs < 0 || c.Win.FadeMs < 0 {
		return fmt.Errorf("win timings must be >= 0")
	}
	if c.Win.DimAlpha < 0 || c.Win.DimAlpha > 1 {
		return fmt.Errorf("win.dimAlpha must be in [0, 1], got %.2f", c.Win.DimAlpha)
	}
	return nil
}

// VisibleRows 可见行数（去掉上下两行过扫描）
func (c *SlotConfig) VisibleRows() int {
	return c.Reels.SlotCount - 2
}
