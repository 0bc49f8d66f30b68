package scenes

import (
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ErrorScene 阻塞式错误提示
// 资源加载失败时显示错误信息，不再进入老虎机场景
type ErrorScene struct {
	lines []string
}

// NewErrorScene 创建错误场景
func NewErrorScene(err error) *ErrorScene {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	log.Printf("[ErrorScene] %s", msg)

	lines := []string{"Inferno Reels failed to start:", ""}
	lines = append(lines, wrapText(msg, errorLineWidth)...)
	return &ErrorScene{lines: lines}
}

// errorLineWidth 每行最多字符数（调试字体 6px 宽）
const errorLineWidth = 120

// Update 错误场景没有交互
func (s *ErrorScene) Update(deltaTime float64) {}

// Draw 绘制错误信息
func (s *ErrorScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 60, G: 0, B: 0, A: 255})
	for i, line := range s.lines {
		ebitenutil.DebugPrintAt(screen, line, 16, 16+i*16)
	}
}

// Lines 返回要显示的文本行
func (s *ErrorScene) Lines() []string {
	return s.lines
}

// wrapText 按宽度折行，保留原有换行
func wrapText(msg string, width int) []string {
	var out []string
	for _, para := range strings.Split(msg, "\n") {
		for len(para) > width {
			cut := strings.LastIndex(para[:width+1], " ")
			if cut <= 0 {
				cut = width
			}
			out = append(out, para[:cut])
			para = strings.TrimLeft(para[cut:], " ")
		}
		out = append(out, para)
	}
	return out
}
