package main

import (
	"log"
	"time"

	"github.com/Simpleskill/Inferno-Reels-iGaming/internal/audio"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// soundBoard 通过 beep speaker 播放合成音效
// 扬声器初始化失败时静默运行
type soundBoard struct {
	enabled   bool
	audioInit bool
}

func newSoundBoard(enabled bool) *soundBoard {
	sb := &soundBoard{enabled: enabled}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("[TUI] Audio initialization failed: %v", err)
		return sb
	}
	sb.audioInit = true
	return sb
}

func (sb *soundBoard) play(soundID string) {
	if !sb.enabled || !sb.audioInit {
		return
	}
	spec, ok := audio.SoundSpecs[soundID]
	if !ok {
		log.Printf("[TUI] Warning: Sound not found: %s", soundID)
		return
	}
	speaker.Play(audio.NewToneStreamer(spec, sampleRate))
}

func (sb *soundBoard) toggle() {
	sb.enabled = !sb.enabled
	log.Printf("[TUI] Sound enabled: %v", sb.enabled)
}

func (sb *soundBoard) close() {
	if sb.audioInit {
		speaker.Close()
	}
}
