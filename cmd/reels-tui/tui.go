package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/Simpleskill/Inferno-Reels-iGaming/internal/audio"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/components"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/config"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/systems"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// 终端布局（字符格）
const (
	cellWidth  = 9 // 一个符号的宽度
	cellHeight = 3 // 一个符号的高度
	reelSpace  = 2 // 转轮之间的空列
	marginLeft = 4
	marginTop  = 3
)

var (
	styleDefault = tcell.StyleDefault
	styleFrame   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(240, 120, 30))
	styleTitle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 170, 40)).Bold(true)
	styleMarker  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 196, 0))
	styleHUD     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(230, 210, 200))
)

type tui struct {
	screen  tcell.Screen
	machine *systems.SlotMachine
	clock   utils.Clock
	sound   *soundBoard

	message string
}

func newTUI(screen tcell.Screen, machine *systems.SlotMachine, clock utils.Clock, sound *soundBoard) *tui {
	t := &tui{
		screen:  screen,
		machine: machine,
		clock:   clock,
		sound:   sound,
		message: "Press SPACE to spin",
	}
	machine.SetCallbacks(
		func() {
			t.message = "Spinning..."
			sound.play(audio.SoundSpinStart)
		},
		func(int) { sound.play(audio.SoundReelStop) },
		t.onSpinComplete,
	)
	return t
}

func (t *tui) onSpinComplete(results []systems.LineResult) {
	wins := systems.WinningLines(results)
	if len(wins) == 0 {
		t.message = "No win"
		return
	}
	t.message = fmt.Sprintf("%d winning line(s)!", len(wins))
	t.sound.play(audio.SoundWin)
}

func (t *tui) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}
		case <-ticker.C:
			t.machine.Update(t.clock.NowMillis())
			t.draw()
		}
	}
}

// handleInput 处理一个终端事件，返回 false 表示退出
func (t *tui) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			t.spin()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				t.spin()
			case 't', 'T':
				t.machine.SetTurbo(!t.machine.Turbo())
				log.Printf("[TUI] Turbo: %v", t.machine.Turbo())
			case 'm', 'M':
				t.sound.toggle()
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *tui) spin() {
	if !t.machine.RequestSpin() {
		log.Printf("[TUI] Spin ignored: reels still spinning")
	}
}

func (t *tui) cleanup() {
	t.sound.close()
	t.screen.Fini()
}

// draw 绘制整帧
func (t *tui) draw() {
	t.screen.Clear()

	cfg := t.machine.Config()
	rows := cfg.VisibleRows()
	reels := t.machine.Reels()
	width := len(reels)*cellWidth + (len(reels)-1)*reelSpace
	height := rows * cellHeight

	drawText(t.screen, marginLeft, 1, styleTitle, "INFERNO REELS")
	drawFrame(t.screen, marginLeft-1, marginTop-1, width+2, height+2)

	for i, reel := range reels {
		x := marginLeft + i*(cellWidth+reelSpace)
		for _, sym := range t.machine.Symbols(i) {
			t.drawSymbol(x, sym, reel.VelocityBlur, cfg.Reels.SymbolSize, rows)
		}
	}

	// 赔付线标记：槽位窗口第 row 行对应可见第 row-1 行
	for _, row := range cfg.Paylines.Rows {
		visible := row - 1
		if visible < 0 || visible >= rows {
			continue
		}
		y := marginTop + visible*cellHeight + cellHeight/2
		t.screen.SetContent(marginLeft-2, y, '▶', nil, styleMarker)
		t.screen.SetContent(marginLeft+width+1, y, '◀', nil, styleMarker)
	}

	hudY := marginTop + height + 2
	stats := t.machine.Stats()
	drawText(t.screen, marginLeft, hudY, styleHUD, t.message)
	drawText(t.screen, marginLeft, hudY+1, styleHUD, fmt.Sprintf(
		"Spins: %d   Winning spins: %d   Lines: %d   Hit rate: %.1f%%",
		stats.Spins, stats.WinningSpins, stats.WinningLines, stats.HitRate()*100))
	drawText(t.screen, marginLeft, hudY+2, styleHUD, fmt.Sprintf(
		"[Space] Spin   [T] Turbo %s   [M] Sound %s   [Q] Quit",
		onOff(t.machine.Turbo()), onOff(t.sound.enabled)))

	t.screen.Show()
}

// drawSymbol 绘制一个符号格，裁剪到可见窗口内
func (t *tui) drawSymbol(x int, sym *components.SymbolComponent, blur, size float64, rows int) {
	def, _ := t.machine.SymbolTable().Lookup(sym.Identity)
	style := symbolStyle(def, sym)
	glyph := blurGlyph(blur)

	top := marginTop + cellTop(sym.OffsetY, size)
	bottom := marginTop + rows*cellHeight
	for r := 0; r < cellHeight; r++ {
		y := top + r
		if y < marginTop || y >= bottom {
			continue
		}
		for c := 0; c < cellWidth; c++ {
			ch := ' '
			if glyph != 0 && c%2 == 1 {
				ch = glyph
			}
			t.screen.SetContent(x+c, y, ch, nil, style)
		}
		if glyph == 0 && r == cellHeight/2 {
			label := def.Label
			if label == "" {
				label = sym.Identity.String()
			}
			drawText(t.screen, x+(cellWidth-len(label))/2, y, style.Bold(true), label)
		}
	}
}

// cellTop 像素偏移换算为相对窗口顶部的字符行
func cellTop(offset, size float64) int {
	return int(math.Floor(offset / size * cellHeight))
}

// blurGlyph 根据模糊强度选择拖影字符，0 表示不模糊（正常显示文字）
func blurGlyph(blur float64) rune {
	b := math.Abs(blur)
	switch {
	case b < config.BlurGhostThreshold:
		return 0
	case b < 2:
		return '┆'
	default:
		return '│'
	}
}

// symbolStyle 底色取符号颜色（高亮时取色调），再按透明度压暗
func symbolStyle(def config.SymbolDef, sym *components.SymbolComponent) tcell.Style {
	r, g, b := float64(def.Color[0]), float64(def.Color[1]), float64(def.Color[2])
	if sym.Tint != components.NeutralTint {
		r, g, b = float64(sym.Tint.R), float64(sym.Tint.G), float64(sym.Tint.B)
	}
	a := math.Max(0, math.Min(1, sym.Alpha))
	bg := tcell.NewRGBColor(int32(r*a), int32(g*a), int32(b*a))

	fg := tcell.ColorWhite
	if (0.299*r+0.587*g+0.114*b)*a > 140 {
		fg = tcell.ColorBlack
	}
	return styleDefault.Background(bg).Foreground(fg)
}

func drawFrame(s tcell.Screen, x, y, w, h int) {
	for i := 1; i < w-1; i++ {
		s.SetContent(x+i, y, '─', nil, styleFrame)
		s.SetContent(x+i, y+h-1, '─', nil, styleFrame)
	}
	for j := 1; j < h-1; j++ {
		s.SetContent(x, y+j, '│', nil, styleFrame)
		s.SetContent(x+w-1, y+j, '│', nil, styleFrame)
	}
	s.SetContent(x, y, '┌', nil, styleFrame)
	s.SetContent(x+w-1, y, '┐', nil, styleFrame)
	s.SetContent(x, y+h-1, '└', nil, styleFrame)
	s.SetContent(x+w-1, y+h-1, '┘', nil, styleFrame)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
