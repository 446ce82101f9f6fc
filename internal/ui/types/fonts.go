package types

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// basicfont only ships one 7x13 face, so larger text is drawn at 1x into a
// cached image and scaled up with nearest filtering.
type Fonts struct {
	Normal font.Face
	Small  font.Face
}

var defaultFonts *Fonts

func InitFonts() {
	defaultFonts = &Fonts{
		Normal: basicfont.Face7x13,
		Small:  basicfont.Face7x13,
	}
}

func GetFonts() *Fonts {
	if defaultFonts == nil {
		InitFonts()
	}
	return defaultFonts
}

type labelKey struct {
	text  string
	color color.RGBA
}

var (
	labelCache   = make(map[labelKey]*ebiten.Image)
	labelCacheMu sync.Mutex
)

const maxCachedLabels = 256

// TextSize is the size of s drawn at the given scale.
func TextSize(s string, scale float64) (int, int) {
	bounds := text.BoundString(GetFonts().Normal, s)
	return int(float64(bounds.Dx()) * scale), int(float64(bounds.Dy()) * scale)
}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(dst *ebiten.Image, s string, x, y int, scale float64, clr color.RGBA) {
	if s == "" {
		return
	}
	img := label(s, clr)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(img, op)
}

// DrawTextCentered centers s horizontally on cx.
func DrawTextCentered(dst *ebiten.Image, s string, cx, y int, scale float64, clr color.RGBA) {
	w, _ := TextSize(s, scale)
	DrawText(dst, s, cx-w/2, y, scale, clr)
}

func label(s string, clr color.RGBA) *ebiten.Image {
	labelCacheMu.Lock()
	defer labelCacheMu.Unlock()

	key := labelKey{text: s, color: clr}
	if img, ok := labelCache[key]; ok {
		return img
	}
	if len(labelCache) >= maxCachedLabels {
		labelCache = make(map[labelKey]*ebiten.Image)
	}

	face := GetFonts().Normal
	bounds := text.BoundString(face, s)
	img := ebiten.NewImage(bounds.Dx()+1, bounds.Dy()+1)
	text.Draw(img, s, face, -bounds.Min.X, -bounds.Min.Y, clr)
	labelCache[key] = img
	return img
}
