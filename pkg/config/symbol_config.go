package config

import (
	"fmt"

	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/embedded"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/types"
	"gopkg.in/yaml.v3"
)

// SymbolTablePath 符号外观配置文件路径
const SymbolTablePath = "assets/config/symbols.yaml"

// SymbolDef 单个符号的外观与回收权重
type SymbolDef struct {
	// ID 符号身份（YAML 中写名称，如 "wild"）
	ID types.SymbolID `yaml:"id"`
	// Label 贴图上绘制的文字
	Label string `yaml:"label"`
	// Color 贴图底色 [R, G, B]
	Color [3]uint8 `yaml:"color"`
	// Weight 回收时被选中的相对权重（仅用于视觉模拟，与赔付无关）
	Weight int `yaml:"weight"`
	// Image 可选贴图路径，为空时程序化生成
	Image string `yaml:"image,omitempty"`
}

// SymbolTable 符号表
type SymbolTable struct {
	Symbols []SymbolDef `yaml:"symbols"`
}

// DefaultSymbolTable 返回与 assets/config/symbols.yaml 一致的默认符号表
func DefaultSymbolTable() *SymbolTable {
	return &SymbolTable{
		Symbols: []SymbolDef{
			{ID: types.SymbolWild, Label: "W", Color: [3]uint8{214, 40, 40}, Weight: 1},
			{ID: types.SymbolA, Label: "A", Color: [3]uint8{247, 127, 0}, Weight: 3},
			{ID: types.SymbolB, Label: "B", Color: [3]uint8{252, 191, 73}, Weight: 3},
			{ID: types.SymbolC, Label: "C", Color: [3]uint8{120, 60, 160}, Weight: 3},
		},
	}
}

// LoadSymbolTable 加载符号表
func LoadSymbolTable(path string) (*SymbolTable, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read symbol table: %w", err)
	}

	var table SymbolTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse symbol table: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid symbol table: %w", err)
	}
	return &table, nil
}

// Validate 验证符号表：每个有效符号恰好出现一次，权重非负且总和大于 0
func (t *SymbolTable) Validate() error {
	seen := make(map[types.SymbolID]bool, len(t.Symbols))
	total := 0
	for _, def := range t.Symbols {
		if !def.ID.IsKnown() {
			return fmt.Errorf("symbol table contains unknown symbol")
		}
		if seen[def.ID] {
			return fmt.Errorf("symbol %s defined twice", def.ID)
		}
		if def.Weight < 0 {
			return fmt.Errorf("symbol %s has negative weight %d", def.ID, def.Weight)
		}
		seen[def.ID] = true
		total += def.Weight
	}
	for _, id := range types.AllSymbols() {
		if !seen[id] {
			return fmt.Errorf("symbol %s missing from table", id)
		}
	}
	if total == 0 {
		return fmt.Errorf("symbol weights sum to zero")
	}
	return nil
}

// Lookup 查找符号定义
func (t *SymbolTable) Lookup(id types.SymbolID) (SymbolDef, bool) {
	for _, def := range t.Symbols {
		if def.ID == id {
			return def, true
		}
	}
	return SymbolDef{}, false
}
