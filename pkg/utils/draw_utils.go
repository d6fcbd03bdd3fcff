package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawRoundedRect 绘制填充圆角矩形
// 由两个十字交叉的矩形和四个角上的圆拼成
func DrawRoundedRect(dst *ebiten.Image, x, y, width, height, radius float32, clr color.Color) {
	if radius*2 > width {
		radius = width / 2
	}
	if radius*2 > height {
		radius = height / 2
	}
	if radius <= 0 {
		vector.DrawFilledRect(dst, x, y, width, height, clr, true)
		return
	}
	vector.DrawFilledRect(dst, x+radius, y, width-2*radius, height, clr, true)
	vector.DrawFilledRect(dst, x, y+radius, width, height-2*radius, clr, true)
	vector.DrawFilledCircle(dst, x+radius, y+radius, radius, clr, true)
	vector.DrawFilledCircle(dst, x+width-radius, y+radius, radius, clr, true)
	vector.DrawFilledCircle(dst, x+radius, y+height-radius, radius, clr, true)
	vector.DrawFilledCircle(dst, x+width-radius, y+height-radius, radius, clr, true)
}

// DrawText 从左上角绘制文字
func DrawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	if face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// DrawCenteredText 以 (cx, cy) 为中心绘制单行文字
func DrawCenteredText(dst *ebiten.Image, s string, face *text.GoTextFace, cx, cy float64, clr color.Color) {
	if face == nil || s == "" {
		return
	}
	w, h := text.Measure(s, face, 0)
	DrawText(dst, s, face, cx-w/2, cy-h/2, clr)
}

// DrawWrappedText 在宽度 maxWidth 内自动换行并水平居中绘制，返回占用的高度
//
// 参数：
//   - cx: 文字块的水平中心
//   - top: 第一行的上边缘
func DrawWrappedText(dst *ebiten.Image, s string, face *text.GoTextFace, cx, top, maxWidth float64, clr color.Color) float64 {
	if face == nil || s == "" {
		return 0
	}
	lineHeight := face.Size * 1.3
	lines := WrapText(s, face, maxWidth)
	for i, line := range lines {
		w, _ := text.Measure(line, face, 0)
		DrawText(dst, line, face, cx-w/2, top+float64(i)*lineHeight, clr)
	}
	return float64(len(lines)) * lineHeight
}
