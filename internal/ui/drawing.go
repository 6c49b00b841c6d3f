package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Draw primitives are variables so tests can override them to capture
// draw calls without a GPU.
var drawLine = func(dst *ebiten.Image, x1, y1, x2, y2, width float32, c color.Color) {
	vector.StrokeLine(dst, x1, y1, x2, y2, width, c, true)
}

var drawCircle = func(dst *ebiten.Image, cx, cy, r float32, c color.Color) {
	vector.DrawFilledCircle(dst, cx, cy, r, c, true)
}

var drawRect = func(dst *ebiten.Image, x, y, w, h float32, c color.Color) {
	vector.DrawFilledRect(dst, x, y, w, h, c, false)
}

var drawText = func(dst *ebiten.Image, s string, x, y int, c color.Color) {
	text.Draw(dst, s, basicfont.Face7x13, x, y, c)
}
