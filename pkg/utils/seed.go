package utils

import (
	"math/rand/v2"
	"time"
)

// SeedOrTime 0 表示使用当前时间作为种子
func SeedOrTime(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}

// NewSeededRand 创建 PCG 随机源
// 同一个种子总是产生同一串随机数（旋转抖动、符号回收都可复现）
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
