package audio

import (
	"encoding/binary"
	"testing"
)

func TestSynthesizeToneLength(t *testing.T) {
	const rate = 48000

	tests := []struct {
		name string
		spec ToneSpec
		want int
	}{
		{"单音符", ToneSpec{Notes: []Note{{440, 440, 100}}, Gain: 0.5}, 4800 * 4},
		{"多音符", ToneSpec{Notes: []Note{{440, 440, 50}, {880, 880, 50}}, Gain: 0.5}, 4800 * 4},
		{"零时长", ToneSpec{Notes: []Note{{440, 440, 0}}, Gain: 0.5}, 0},
		{"空", ToneSpec{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := len(SynthesizeTone(tt.spec, rate))
			if got != tt.want {
				t.Errorf("len = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSynthesizeToneEnvelope(t *testing.T) {
	buf := SynthesizeTone(ToneSpec{Notes: []Note{{440, 440, 100}}, Gain: 1}, 48000)

	sample := func(i int) int16 {
		return int16(binary.LittleEndian.Uint16(buf[i*4:]))
	}

	// 第一帧处于起音开头，必须为 0
	if sample(0) != 0 {
		t.Errorf("first sample = %d, want 0", sample(0))
	}

	// 左右声道相同
	for i := 0; i < len(buf)/4; i += 97 {
		l := binary.LittleEndian.Uint16(buf[i*4:])
		r := binary.LittleEndian.Uint16(buf[i*4+2:])
		if l != r {
			t.Fatalf("frame %d: left %d != right %d", i, l, r)
		}
	}

	// 衰减：最后 10% 的峰值明显小于前 20%
	frames := len(buf) / 4
	peak := func(from, to int) int {
		m := 0
		for i := from; i < to; i++ {
			v := int(sample(i))
			if v < 0 {
				v = -v
			}
			if v > m {
				m = v
			}
		}
		return m
	}
	head := peak(0, frames/5)
	tail := peak(frames*9/10, frames)
	if tail*4 >= head {
		t.Errorf("tail peak %d not decayed relative to head peak %d", tail, head)
	}
}

func TestSoundSpecsDefined(t *testing.T) {
	for _, id := range []string{SoundSpinStart, SoundReelStop, SoundWin} {
		spec, ok := SoundSpecs[id]
		if !ok {
			t.Errorf("missing sound spec %s", id)
			continue
		}
		if len(SynthesizeTone(spec, 48000)) == 0 {
			t.Errorf("sound %s synthesizes to nothing", id)
		}
	}
}

func TestRenderToneMatchesPCM(t *testing.T) {
	spec := SoundSpecs[SoundReelStop]
	samples := RenderTone(spec, 44100)
	pcm := SynthesizeTone(spec, 44100)
	if len(pcm) != len(samples)*4 {
		t.Fatalf("pcm length %d, want %d", len(pcm), len(samples)*4)
	}
	for i, s := range samples {
		if s > spec.Gain || s < -spec.Gain {
			t.Fatalf("sample %d = %v exceeds gain %v", i, s, spec.Gain)
		}
	}
}
