// Package audio 合成老虎机音效
//
// 所有音效都由正弦波即时合成，不依赖音频文件。
// 同一份 ToneSpec 既可以编码成 Ebitengine 的 PCM 字节，也可以作为 beep.Streamer 播放。
package audio

import (
	"encoding/binary"
	"math"
)

// Note 一个音符：频率从 StartHz 线性滑到 EndHz
type Note struct {
	StartHz    float64
	EndHz      float64
	DurationMs float64
}

// ToneSpec 一段合成音效，由若干音符依次组成
type ToneSpec struct {
	Notes []Note
	// Gain 峰值振幅 0.0 ~ 1.0
	Gain float64
}

// 音效 ID
const (
	SoundSpinStart = "SOUND_SPIN_START"
	SoundReelStop  = "SOUND_REEL_STOP"
	SoundWin       = "SOUND_WIN"
)

// SoundSpecs 所有音效的合成参数
var SoundSpecs = map[string]ToneSpec{
	// 上扬的滑音
	SoundSpinStart: {
		Notes: []Note{{StartHz: 220, EndHz: 440, DurationMs: 180}},
		Gain:  0.35,
	},
	// 短促的低音
	SoundReelStop: {
		Notes: []Note{{StartHz: 160, EndHz: 110, DurationMs: 70}},
		Gain:  0.5,
	},
	// C-E-G 琶音
	SoundWin: {
		Notes: []Note{
			{StartHz: 523.25, EndHz: 523.25, DurationMs: 120},
			{StartHz: 659.25, EndHz: 659.25, DurationMs: 120},
			{StartHz: 783.99, EndHz: 783.99, DurationMs: 240},
		},
		Gain: 0.3,
	},
}

// attackMs 每个音符的起音时长，避免爆音
const attackMs = 5.0

// RenderTone 渲染单声道采样，取值范围 [-Gain, Gain]
//
// 每个音符使用正弦波，频率在音符内线性滑动，
// 包络为 attackMs 线性起音 + 二次衰减。
func RenderTone(spec ToneSpec, sampleRate int) []float64 {
	total := 0
	for _, n := range spec.Notes {
		total += noteSamples(n, sampleRate)
	}

	out := make([]float64, 0, total)
	for _, n := range spec.Notes {
		count := noteSamples(n, sampleRate)
		phase := 0.0
		attack := attackMs / 1000 * float64(sampleRate)

		for i := 0; i < count; i++ {
			t := float64(i) / float64(count)
			freq := n.StartHz + (n.EndHz-n.StartHz)*t
			phase += 2 * math.Pi * freq / float64(sampleRate)

			env := (1 - t) * (1 - t)
			if float64(i) < attack {
				env *= float64(i) / attack
			}
			out = append(out, math.Sin(phase)*env*spec.Gain)
		}
	}
	return out
}

// SynthesizeTone 合成 16 位有符号小端立体声 PCM（Ebitengine audio 的原生格式）
func SynthesizeTone(spec ToneSpec, sampleRate int) []byte {
	samples := RenderTone(spec, sampleRate)
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := int16(s * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

// noteSamples 音符的采样帧数
func noteSamples(n Note, sampleRate int) int {
	if n.DurationMs <= 0 {
		return 0
	}
	return int(n.DurationMs / 1000 * float64(sampleRate))
}
