package game

import (
	"log"

	synth "github.com/Simpleskill/Inferno-Reels-iGaming/internal/audio"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理所有音效的播放
//   - 从 SettingsManager 读取音效开关和音量
//   - 音效由 SoundSpecs 合成，不依赖音频文件
type AudioManager struct {
	audioContext    *audio.Context           // 可为 nil（静音模式）
	settingsManager *SettingsManager         // 可为 nil（使用默认音量）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（音效ID -> 播放器）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 音频上下文，nil 时所有播放请求被忽略
//   - sm: SettingsManager 实例（可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())

	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// SetSoundVolume 设置音效音量，影响后续播放的所有音效
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}

	for _, player := range am.soundPlayers {
		player.SetVolume(am.getSoundVolume())
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.getSoundVolume()
}

// StopAll 停止所有正在播放的音效（关闭音效时调用）
func (am *AudioManager) StopAll() {
	for _, player := range am.soundPlayers {
		player.Pause()
	}
}

// PreloadSounds 预合成音效
// 在场景初始化时调用，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	for _, soundID := range soundIDs {
		am.getSoundPlayer(soundID)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(soundIDs))
}

// getSoundPlayer 获取或合成音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if am.audioContext == nil {
		return nil
	}

	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	spec, ok := synth.SoundSpecs[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}

	pcm := synth.SynthesizeTone(spec, am.audioContext.SampleRate())
	player := am.audioContext.NewPlayerFromBytes(pcm)
	am.soundPlayers[soundID] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}
