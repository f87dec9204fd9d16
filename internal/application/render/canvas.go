package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ImageCanvas draws onto an ebiten image
type ImageCanvas struct {
	img *ebiten.Image
}

// NewImageCanvas wraps img
func NewImageCanvas(img *ebiten.Image) *ImageCanvas {
	return &ImageCanvas{img: img}
}

func (c *ImageCanvas) Clear(col color.Color) {
	c.img.Fill(col)
}

func (c *ImageCanvas) FillRect(x, y, w, h float64, col color.Color) {
	ebitenutil.DrawRect(c.img, x, y, w, h, col)
}

func (c *ImageCanvas) Text(s string, x, y int) {
	ebitenutil.DebugPrintAt(c.img, s, x, y)
}
