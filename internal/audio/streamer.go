package audio

import "github.com/gopxl/beep"

// ToneStreamer 把预渲染的单声道采样作为 beep.Streamer 输出（左右声道相同）
type ToneStreamer struct {
	samples []float64
	pos     int
}

// NewToneStreamer 渲染 spec 并返回可交给 speaker.Play 的流
func NewToneStreamer(spec ToneSpec, sr beep.SampleRate) *ToneStreamer {
	return &ToneStreamer{samples: RenderTone(spec, int(sr))}
}

// Stream 实现 beep.Streamer
func (s *ToneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	for n < len(samples) && s.pos < len(s.samples) {
		v := s.samples[s.pos]
		samples[n][0] = v
		samples[n][1] = v
		n++
		s.pos++
	}
	return n, true
}

// Err 实现 beep.Streamer
func (s *ToneStreamer) Err() error {
	return nil
}

// Len 采样帧总数
func (s *ToneStreamer) Len() int {
	return len(s.samples)
}

// Position 已输出的采样帧数
func (s *ToneStreamer) Position() int {
	return s.pos
}
