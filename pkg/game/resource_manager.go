package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // Register PNG decoder

	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/config"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/embedded"
	"github.com/Simpleskill/Inferno-Reels-iGaming/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontPath 使用内置 Go Regular 字体的路径标记
const DefaultFontPath = ""

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images, font faces and symbol textures,
// ensuring that resources are loaded only once and reused throughout the game.
//
// Files are read through pkg/embedded, so the same code works with the embedded
// asset tree (release builds, WASM, mobile) and the working directory (development).
//
// Thread Safety Note:
// This implementation is NOT thread-safe. For the single-threaded game loop,
// no synchronization is needed.
type ResourceManager struct {
	imageCache     map[string]*ebiten.Image          // Cache for loaded images: path -> Image
	fontFaceCache  map[string]*text.GoTextFace       // Cache for text faces: path:size -> Face
	fontSources    map[string]*text.GoTextFaceSource // Parsed font sources: path -> Source
	symbolTextures map[types.SymbolID]*ebiten.Image  // Symbol textures built by BuildSymbolTextures
}

// NewResourceManager creates and initializes a new ResourceManager instance with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:     make(map[string]*ebiten.Image),
		fontFaceCache:  make(map[string]*text.GoTextFace),
		fontSources:    make(map[string]*text.GoTextFaceSource),
		symbolTextures: make(map[types.SymbolID]*ebiten.Image),
	}
}

// LoadImage loads a PNG image from the specified path and caches it for future use.
//
// Returns an error if the file cannot be read or decoded. Does not panic.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadFont creates a text face of the given size.
// An empty path (DefaultFontPath) selects the built-in Go Regular font.
//
// Returns an error if the font file cannot be read or parsed.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, exists := rm.fontSources[path]
	if !exists {
		fontData := goregular.TTF
		if path != DefaultFontPath {
			data, err := embedded.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
			}
			fontData = data
		}

		var err error
		source, err = text.NewGoTextFaceSource(bytes.NewReader(fontData))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %q: %w", path, err)
		}
		rm.fontSources[path] = source
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// GetFont retrieves a previously loaded font face from the cache, or nil.
func (rm *ResourceManager) GetFont(path string, size float64) *text.GoTextFace {
	return rm.fontFaceCache[fmt.Sprintf("%s:%.1f", path, size)]
}

// BuildSymbolTextures creates one square texture per symbol in the table.
//
// A symbol with an Image path uses that file; otherwise the texture is drawn
// procedurally (coloured tile, bevel and label). Any failure is returned so the
// caller can show it to the player instead of rendering blank reels.
func (rm *ResourceManager) BuildSymbolTextures(table *config.SymbolTable, size float64) error {
	face, err := rm.LoadFont(DefaultFontPath, config.SymbolFontSize)
	if err != nil {
		return err
	}

	for _, def := range table.Symbols {
		if def.Image != "" {
			img, err := rm.LoadImage(def.Image)
			if err != nil {
				return fmt.Errorf("symbol %s: %w", def.ID, err)
			}
			rm.symbolTextures[def.ID] = img
			continue
		}
		rm.symbolTextures[def.ID] = drawSymbolTile(def, size, face)
	}
	return nil
}

// GetSymbolTexture 返回符号贴图，未构建时返回 nil
func (rm *ResourceManager) GetSymbolTexture(id types.SymbolID) *ebiten.Image {
	return rm.symbolTextures[id]
}

// drawSymbolTile 程序化绘制符号贴图
func drawSymbolTile(def config.SymbolDef, size float64, face *text.GoTextFace) *ebiten.Image {
	px := int(size)
	img := ebiten.NewImage(px, px)

	base := color.RGBA{R: def.Color[0], G: def.Color[1], B: def.Color[2], A: 255}
	inset := float32(size * 0.06)
	s := float32(size)

	// 底色 + 内框
	vector.DrawFilledRect(img, inset, inset, s-2*inset, s-2*inset, shade(base, 0.55), true)
	vector.DrawFilledRect(img, 2*inset, 2*inset, s-4*inset, s-4*inset, base, true)
	vector.StrokeRect(img, inset, inset, s-2*inset, s-2*inset, 3, shade(base, 1.3), true)

	// 百搭额外绘制圆形徽章
	if def.ID.IsWild() {
		vector.DrawFilledCircle(img, s/2, s/2, s*0.32, shade(base, 0.7), true)
		vector.StrokeCircle(img, s/2, s/2, s*0.32, 4, color.RGBA{255, 220, 120, 255}, true)
	}

	// 文字阴影
	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(size/2+3, size/2+3)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 160})
	text.Draw(img, def.Label, face, shadowOp)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(size/2, size/2)
	op.ColorScale.ScaleWithColor(color.RGBA{255, 255, 255, 255})
	text.Draw(img, def.Label, face, op)

	return img
}

// shade 按比例调整颜色亮度（结果截断到 255）
func shade(c color.RGBA, factor float64) color.RGBA {
	scale := func(v uint8) uint8 {
		f := float64(v) * factor
		if f > 255 {
			return 255
		}
		return uint8(f)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
