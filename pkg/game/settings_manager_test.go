package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时目录中创建 gdata manager
func openTestGdata(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{
		AppName: "test_inferno_reels",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.TurboSpin {
		t.Error("TurboSpin: got true, want false")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetTurboSpin(true)

	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got %v", err)
	}
	if !sm.GetSettings().TurboSpin {
		t.Error("in-memory setting lost")
	}

	// Load 在降级模式下恢复默认值
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode error: %v", err)
	}
	if sm.GetSettings().TurboSpin {
		t.Error("Load() in degraded mode should reset to defaults")
	}
}

// TestSettingsSaveLoadRoundTrip 测试保存后重新加载
func TestSettingsSaveLoadRoundTrip(t *testing.T) {
	gm := openTestGdata(t)

	sm := NewSettingsManager(gm)
	sm.SetSoundVolume(0.25)
	sm.SetSoundEnabled(false)
	sm.SetTurboSpin(true)
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewSettingsManager(gm)
	got := reloaded.GetSettings()
	if got.SoundVolume != 0.25 || got.SoundEnabled || !got.TurboSpin || !got.Fullscreen {
		t.Errorf("reloaded settings = %+v", got)
	}
}

// TestSettingsCorruptedData 测试损坏的设置文件回退到默认值
func TestSettingsCorruptedData(t *testing.T) {
	gm := openTestGdata(t)
	if err := gm.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [oops")); err != nil {
		t.Fatalf("SaveObjectProp error: %v", err)
	}

	sm := NewSettingsManager(gm)
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("corrupted settings should fall back to defaults, got %+v", sm.GetSettings())
	}
}

// TestSettingsPartialFile 旧文件缺少的字段保持默认值
func TestSettingsPartialFile(t *testing.T) {
	gm := openTestGdata(t)
	if err := gm.SaveObjectProp(settingsObject, settingsProperty, []byte("turboSpin: true\nsoundVolume: 3\n")); err != nil {
		t.Fatalf("SaveObjectProp error: %v", err)
	}

	got := NewSettingsManager(gm).GetSettings()
	if !got.TurboSpin {
		t.Error("TurboSpin should be loaded")
	}
	if !got.SoundEnabled {
		t.Error("missing SoundEnabled should default to true")
	}
	if got.SoundVolume != 1.0 {
		t.Errorf("SoundVolume = %v, want clamped 1.0", got.SoundVolume)
	}
}

func TestClampVolume(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{1.5, 1},
	}
	for _, tt := range tests {
		if got := clampVolume(tt.in); got != tt.want {
			t.Errorf("clampVolume(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToggleAndSave(t *testing.T) {
	gm := openTestGdata(t)
	sm := NewSettingsManager(gm)

	if !sm.ToggleAndSave(&sm.GetSettings().TurboSpin) {
		t.Fatal("toggle should turn turbo on")
	}
	if !NewSettingsManager(gm).GetSettings().TurboSpin {
		t.Error("toggle should be persisted")
	}
}
