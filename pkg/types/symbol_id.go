// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"fmt"
	"strings"
)

// SymbolID 定义转轮符号的身份
// 身份是符号实体上的一等字段，由回收器直接设置，赔付线判定只读取该字段
type SymbolID int

const (
	// SymbolUnknown 未知/缺失的符号（零值）
	// 判定时视为不匹配任何符号，所在的线永远不中奖
	SymbolUnknown SymbolID = iota
	// SymbolWild 百搭符号，可替代任意其他符号
	SymbolWild
	// SymbolA 普通符号 A
	SymbolA
	// SymbolB 普通符号 B
	SymbolB
	// SymbolC 普通符号 C
	SymbolC
)

// AllSymbols 返回所有有效符号（不含 SymbolUnknown），顺序固定
func AllSymbols() []SymbolID {
	return []SymbolID{SymbolWild, SymbolA, SymbolB, SymbolC}
}

// String 返回符号的字符串表示
func (s SymbolID) String() string {
	switch s {
	case SymbolWild:
		return "Wild"
	case SymbolA:
		return "A"
	case SymbolB:
		return "B"
	case SymbolC:
		return "C"
	default:
		return "Unknown"
	}
}

// IsWild 判断是否为百搭符号
func (s SymbolID) IsWild() bool {
	return s == SymbolWild
}

// IsKnown 判断是否为有效符号
func (s SymbolID) IsKnown() bool {
	return s >= SymbolWild && s <= SymbolC
}

// ParseSymbolID 将配置文件中的名称解析为 SymbolID（大小写不敏感）
func ParseSymbolID(name string) (SymbolID, error) {
	for _, id := range AllSymbols() {
		if strings.EqualFold(id.String(), strings.TrimSpace(name)) {
			return id, nil
		}
	}
	return SymbolUnknown, fmt.Errorf("unknown symbol %q", name)
}

// UnmarshalYAML 支持在 YAML 中直接书写符号名称（如 "wild", "A"）
func (s *SymbolID) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	id, err := ParseSymbolID(name)
	if err != nil {
		return err
	}
	*s = id
	return nil
}

// MarshalYAML 将符号序列化为名称
func (s SymbolID) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}
