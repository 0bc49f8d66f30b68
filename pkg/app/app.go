// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端、浏览器和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"image/color"
	"io"
	"log"

	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/config"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/game"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/scenes"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/systems"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// gdataAppName 设置存储使用的应用名
const gdataAppName = "inferno_reels"

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入资源。
// 配置或资源加载失败不会返回错误，而是显示 ErrorScene，
// 这样浏览器和移动端也能看到失败原因。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	settingsManager := game.NewSettingsManager(openSettingsStore())
	if cfg.Turbo {
		settingsManager.SetTurboSpin(true)
	}
	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	audioContext := audio.NewContext(48000)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	log.Printf("[App] AudioManager initialized")

	resourceManager := game.NewResourceManager()
	sceneManager := game.NewSceneManager()

	a := &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}

	slotCfg, err := config.LoadSlotConfig(cfg.SlotConfigPath)
	if err != nil {
		sceneManager.SwitchTo(scenes.NewErrorScene(err))
		return a, nil
	}
	symbolTable, err := config.LoadSymbolTable(cfg.SymbolTablePath)
	if err != nil {
		sceneManager.SwitchTo(scenes.NewErrorScene(err))
		return a, nil
	}
	log.Printf("[Config] Loaded %s (%d reels) and %s (%d symbols)",
		cfg.SlotConfigPath, slotCfg.Reels.Count, cfg.SymbolTablePath, len(symbolTable.Symbols))

	seed := utils.SeedOrTime(cfg.Seed)
	log.Printf("[App] Random seed: %d", seed)
	machine, err := systems.NewSlotMachine(slotCfg, symbolTable, utils.NewSeededRand(seed))
	if err != nil {
		sceneManager.SwitchTo(scenes.NewErrorScene(err))
		return a, nil
	}

	slotScene, err := scenes.NewSlotScene(resourceManager, sceneManager, settingsManager, audioManager, machine, utils.NewSystemClock())
	if err != nil {
		sceneManager.SwitchTo(scenes.NewErrorScene(err))
		return a, nil
	}
	sceneManager.SwitchTo(slotScene)

	return a, nil
}

// openSettingsStore 打开 gdata 存储，失败时返回 nil（设置只保存在内存中）
func openSettingsStore() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	if path := utils.GetStoragePath(); path != "" {
		log.Printf("[App] Storage path: %s", path)
	}
	m, err := gdata.Open(gdata.Config{AppName: gdataAppName})
	if err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v", err)
		return nil
	}
	return m
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 退出全屏后需要等待几帧才能正确设置窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏并保存
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		if !fullscreen {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settingsManager.SetFullscreen(fullscreen)
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
