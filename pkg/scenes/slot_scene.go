package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	synth "github.com/Simpleskill/Inferno-Reels-iGaming/internal/audio"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/components"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/config"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/ecs"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/entities"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/game"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/systems"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 36, G: 6, B: 8, A: 255}
	frameColor      = color.RGBA{R: 90, G: 20, B: 14, A: 255}
	frameEdgeColor  = color.RGBA{R: 240, G: 120, B: 30, A: 255}
	reelColor       = color.RGBA{R: 16, G: 4, B: 6, A: 255}
	titleColor      = color.RGBA{R: 255, G: 170, B: 40, A: 255}
	hudColor        = color.RGBA{R: 230, G: 210, B: 200, A: 255}
)

// SlotScene 老虎机主场景
//
// 负责：
//   - 采集输入（空格/回车/点击旋转按钮，M 音效，T 快速模式）
//   - 每帧用墙钟时间推进 SlotMachine
//   - 绘制转轮窗口（离屏裁剪）、运动拖影、旋转按钮和统计信息
type SlotScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager

	machine      *systems.SlotMachine
	clock        utils.Clock
	buttonSystem *systems.ButtonSystem
	spinButtonID ecs.EntityID

	// 转轮窗口离屏图层，超出可见区域的符号被自然裁剪
	reelLayer                          *ebiten.Image
	windowX, windowY, windowW, windowH float64

	titleFace  *text.GoTextFace
	buttonFace *text.GoTextFace
	hudFace    *text.GoTextFace

	lastWinLines int
}

// NewSlotScene 创建老虎机场景
//
// 返回错误时调用方应切换到 ErrorScene 并显示错误信息
func NewSlotScene(
	rm *game.ResourceManager,
	sm *game.SceneManager,
	settings *game.SettingsManager,
	am *game.AudioManager,
	machine *systems.SlotMachine,
	clock utils.Clock,
) (*SlotScene, error) {
	cfg := machine.Config()

	if err := rm.BuildSymbolTextures(machine.SymbolTable(), cfg.Reels.SymbolSize); err != nil {
		return nil, fmt.Errorf("failed to build symbol textures: %w", err)
	}

	scene := &SlotScene{
		resourceManager: rm,
		sceneManager:    sm,
		settingsManager: settings,
		audioManager:    am,
		machine:         machine,
		clock:           clock,
		buttonSystem:    systems.NewButtonSystem(machine.EntityManager()),
	}

	var err error
	if scene.titleFace, err = rm.LoadFont(game.DefaultFontPath, 36); err != nil {
		return nil, err
	}
	if scene.buttonFace, err = rm.LoadFont(game.DefaultFontPath, config.SpinButtonFontSize); err != nil {
		return nil, err
	}
	if scene.hudFace, err = rm.LoadFont(game.DefaultFontPath, config.HUDFontSize); err != nil {
		return nil, err
	}

	scene.windowX, scene.windowY, scene.windowW, scene.windowH =
		config.ReelWindowBounds(cfg.Reels.Count, cfg.VisibleRows(), cfg.Reels.SymbolSize)
	scene.reelLayer = ebiten.NewImage(int(math.Ceil(scene.windowW)), int(math.Ceil(scene.windowH)))

	scene.createSpinButton()

	machine.SetTurbo(settings.GetSettings().TurboSpin)
	machine.SetCallbacks(
		func() { am.PlaySound(synth.SoundSpinStart) },
		func(int) { am.PlaySound(synth.SoundReelStop) },
		scene.onSpinComplete,
	)
	am.PreloadSounds([]string{synth.SoundSpinStart, synth.SoundReelStop, synth.SoundWin})

	log.Printf("[SlotScene] Created: %d reels, window %.0fx%.0f at (%.0f, %.0f)",
		cfg.Reels.Count, scene.windowW, scene.windowH, scene.windowX, scene.windowY)
	return scene, nil
}

// createSpinButton 创建旋转按钮实体
func (s *SlotScene) createSpinButton() {
	x, y, w, h := config.SpinButtonBounds()
	s.spinButtonID = entities.NewButton(s.machine.EntityManager(), x, y, w, h, "SPIN", s.requestSpin)
}

// requestSpin 请求旋转（旋转中被忽略）
func (s *SlotScene) requestSpin() {
	if !s.machine.RequestSpin() {
		log.Printf("[SlotScene] Spin ignored, reels still running")
	}
}

// onSpinComplete 所有转轮停止
func (s *SlotScene) onSpinComplete(results []systems.LineResult) {
	s.lastWinLines = len(systems.WinningLines(results))
	if s.lastWinLines > 0 {
		s.audioManager.PlaySound(synth.SoundWin)
	}
}

// Update 处理输入并推进引擎
func (s *SlotScene) Update(deltaTime float64) {
	s.handleKeyboard()
	s.buttonSystem.Update(s.pointerState())

	if button, ok := ecs.GetComponent[*components.ButtonComponent](s.machine.EntityManager(), s.spinButtonID); ok {
		button.Enabled = !s.machine.IsSpinning()
	}

	s.machine.Update(s.clock.NowMillis())
}

// handleKeyboard 键盘输入
func (s *SlotScene) handleKeyboard() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.requestSpin()
	}

	settings := s.settingsManager.GetSettings()

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if !s.settingsManager.ToggleAndSave(&settings.SoundEnabled) {
			s.audioManager.StopAll()
		}
		log.Printf("[SlotScene] Sound enabled: %v", settings.SoundEnabled)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		s.machine.SetTurbo(s.settingsManager.ToggleAndSave(&settings.TurboSpin))
		log.Printf("[SlotScene] Turbo spin: %v", settings.TurboSpin)
	}
}

// pointerState 合并鼠标和触摸输入
func (s *SlotScene) pointerState() systems.PointerState {
	game.UpdateLastTouchPosition()
	pressed, x, y := game.GetPointerState()
	state := systems.PointerState{X: float64(x), Y: float64(y), Pressed: pressed}
	if released, rx, ry := game.IsPointerJustReleased(); released {
		state.X, state.Y = float64(rx), float64(ry)
		state.Pressed = false
		state.JustReleased = true
	}
	return state
}

// Draw 绘制场景
func (s *SlotScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s.drawTitle(screen)
	s.drawReelFrame(screen)
	s.drawReels()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(s.windowX, s.windowY)
	screen.DrawImage(s.reelLayer, op)

	s.drawPaylineMarkers(screen)
	s.drawSpinButton(screen)
	s.drawHUD(screen)
}

// drawTitle 标题
func (s *SlotScene) drawTitle(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(config.GameWindowWidth/2, 24)
	op.ColorScale.ScaleWithColor(titleColor)
	text.Draw(screen, "INFERNO REELS", s.titleFace, op)
}

// drawReelFrame 转轮窗口边框和每个转轮的底色
func (s *SlotScene) drawReelFrame(screen *ebiten.Image) {
	pad := float32(config.ReelFramePadding)
	x, y := float32(s.windowX), float32(s.windowY)
	w, h := float32(s.windowW), float32(s.windowH)

	vector.DrawFilledRect(screen, x-pad, y-pad, w+2*pad, h+2*pad, frameColor, true)
	vector.StrokeRect(screen, x-pad, y-pad, w+2*pad, h+2*pad, 3, frameEdgeColor, true)

	size := float32(s.machine.Config().Reels.SymbolSize)
	for _, reel := range s.machine.Reels() {
		vector.DrawFilledRect(screen, x+float32(reel.X), y, size, h, reelColor, true)
	}
}

// drawReels 把所有可见符号绘制到离屏图层
func (s *SlotScene) drawReels() {
	s.reelLayer.Clear()

	cfg := s.machine.Config()
	size := cfg.Reels.SymbolSize

	for i, reel := range s.machine.Reels() {
		// 本帧位移（像素），拖影沿运动反方向分布
		travel := 0.0
		if cfg.Reels.BlurGain > 0 {
			travel = reel.VelocityBlur / cfg.Reels.BlurGain * size
		}
		ghosts := math.Abs(reel.VelocityBlur) >= config.BlurGhostThreshold

		for _, sym := range s.machine.Symbols(i) {
			if sym.OffsetY <= -size || sym.OffsetY >= s.windowH {
				continue
			}
			tex := s.resourceManager.GetSymbolTexture(sym.Identity)
			if tex == nil {
				continue
			}

			if ghosts {
				for k := 1; k <= config.BlurGhostCount; k++ {
					dy := -travel * float64(k) / float64(config.BlurGhostCount+1)
					alpha := sym.Alpha * 0.4 / float64(k)
					s.drawSymbol(tex, reel.X, sym.OffsetY+dy, size, sym.Tint, alpha)
				}
			}
			s.drawSymbol(tex, reel.X, sym.OffsetY, size, sym.Tint, sym.Alpha)
		}
	}
}

// drawSymbol 以色调和透明度绘制一个符号
func (s *SlotScene) drawSymbol(tex *ebiten.Image, x, y, size float64, tint color.RGBA, alpha float64) {
	bounds := tex.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(bounds.Dx()), size/float64(bounds.Dy()))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(tint)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	s.reelLayer.DrawImage(tex, op)
}

// drawPaylineMarkers 在窗口两侧标出判定行，中奖行高亮
func (s *SlotScene) drawPaylineMarkers(screen *ebiten.Image) {
	cfg := s.machine.Config()
	size := cfg.Reels.SymbolSize

	winning := make(map[int]bool)
	for _, line := range systems.WinningLines(s.machine.LastResults()) {
		winning[line.Row] = true
	}
	if s.machine.IsSpinning() {
		winning = nil
	}

	highlight := color.RGBA{R: cfg.Win.HighlightColor[0], G: cfg.Win.HighlightColor[1], B: cfg.Win.HighlightColor[2], A: 255}
	for _, row := range cfg.Paylines.Rows {
		// 第 r 行的中心位于窗口内 (r-1)*size + size/2
		cy := float32(s.windowY + float64(row-1)*size + size/2)
		clr := color.Color(frameEdgeColor)
		if winning[row] {
			clr = highlight
		}
		left := float32(s.windowX - config.ReelFramePadding)
		right := float32(s.windowX + s.windowW + config.ReelFramePadding)
		vector.DrawFilledCircle(screen, left-8, cy, 6, clr, true)
		vector.DrawFilledCircle(screen, right+8, cy, 6, clr, true)
	}
}

// drawSpinButton 旋转按钮
func (s *SlotScene) drawSpinButton(screen *ebiten.Image) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.machine.EntityManager(), s.spinButtonID)
	if !ok {
		return
	}

	fill := color.RGBA{R: 200, G: 50, B: 20, A: 255}
	switch button.State {
	case components.UIHovered:
		fill = color.RGBA{R: 235, G: 80, B: 30, A: 255}
	case components.UIClicked:
		fill = color.RGBA{R: 150, G: 30, B: 10, A: 255}
	case components.UIDisabled:
		fill = color.RGBA{R: 90, G: 60, B: 60, A: 255}
	}

	x, y := float32(button.X), float32(button.Y)
	w, h := float32(button.Width), float32(button.Height)
	vector.DrawFilledRect(screen, x, y, w, h, fill, true)
	vector.StrokeRect(screen, x, y, w, h, 2, frameEdgeColor, true)

	label := button.Label
	if s.machine.Turbo() {
		label += " >>"
	}

	// 阴影 + 文字，与按钮中心对齐
	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(button.X+button.Width/2+2, button.Y+button.Height/2+1)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 180})
	text.Draw(screen, label, s.buttonFace, shadowOp)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(button.X+button.Width/2, button.Y+button.Height/2-1)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, label, s.buttonFace, op)
}

// drawHUD 统计和开关状态
func (s *SlotScene) drawHUD(screen *ebiten.Image) {
	stats := s.machine.Stats()
	settings := s.settingsManager.GetSettings()

	lines := []string{
		fmt.Sprintf("Spins %d   Wins %d   Lines %d   Hit %.1f%%",
			stats.Spins, stats.WinningSpins, stats.WinningLines, stats.HitRate()*100),
	}
	// 移动端没有键盘，不显示快捷键
	if !utils.IsMobile() {
		lines = append(lines, fmt.Sprintf("[M] Sound %s   [T] Turbo %s   [F11] Fullscreen",
			onOff(settings.SoundEnabled), onOff(settings.TurboSpin)))
	}
	if !s.machine.IsSpinning() && s.lastWinLines > 0 {
		lines = append(lines, fmt.Sprintf("%d winning line(s)!", s.lastWinLines))
	}

	_, btnY, _, _ := config.SpinButtonBounds()
	y := s.windowY + s.windowH + config.ReelFramePadding + 12
	for _, line := range lines {
		if y+config.HUDFontSize > btnY {
			break
		}
		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
		op.GeoM.Translate(config.GameWindowWidth/2, y)
		op.ColorScale.ScaleWithColor(hudColor)
		text.Draw(screen, line, s.hudFace, op)
		y += config.HUDFontSize + 6
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
