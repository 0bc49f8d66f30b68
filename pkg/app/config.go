package app

import (
	"fmt"

	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/config"
	"github.com/kelseyhightower/envconfig"
)

// Config 定义应用启动配置
// 先从环境变量读取，命令行参数可以再覆盖
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool `envconfig:"REELS_VERBOSE" default:"false"`

	// Seed 随机种子，0 表示使用当前时间
	Seed uint64 `envconfig:"REELS_SEED" default:"0"`

	// Turbo 强制以快速模式启动（覆盖已保存的设置）
	Turbo bool `envconfig:"REELS_TURBO" default:"false"`

	// SlotConfigPath 老虎机参数文件
	SlotConfigPath string `envconfig:"REELS_SLOT_CONFIG" default:"data/slot.yaml"`

	// SymbolTablePath 符号表文件
	SymbolTablePath string `envconfig:"REELS_SYMBOLS" default:"assets/config/symbols.yaml"`
}

// LoadConfig 从环境变量加载启动配置
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}

// DefaultConfig 返回不读取环境变量的默认配置（移动端使用）
func DefaultConfig() Config {
	return Config{
		SlotConfigPath:  config.SlotConfigPath,
		SymbolTablePath: config.SymbolTablePath,
	}
}
