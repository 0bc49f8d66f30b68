package game

import (
	"testing"

	synth "github.com/Simpleskill/Inferno-Reels-iGaming/internal/audio"
)

// 没有音频上下文时所有操作都是安全的无操作
func TestAudioManagerWithoutContext(t *testing.T) {
	sm := NewSettingsManager(nil)
	am := NewAudioManager(nil, sm)

	if am.PlaySound(synth.SoundWin) {
		t.Error("PlaySound without audio context should return false")
	}
	am.PreloadSounds([]string{synth.SoundSpinStart, synth.SoundReelStop})
	am.StopAll()

	am.SetSoundVolume(0.3)
	if am.GetSoundVolume() != 0.3 {
		t.Errorf("GetSoundVolume = %v, want 0.3", am.GetSoundVolume())
	}
	if sm.GetSettings().SoundVolume != 0.3 {
		t.Error("SetSoundVolume should update settings")
	}
}

func TestAudioManagerDefaultVolume(t *testing.T) {
	am := NewAudioManager(nil, nil)
	if am.GetSoundVolume() != DefaultSettings().SoundVolume {
		t.Errorf("default volume = %v", am.GetSoundVolume())
	}
}
