package systems

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/components"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/ecs"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

// ButtonRenderSystem 按钮渲染系统
// 以圆角矩形绘制按钮背景，文字多行居中
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{entityManager: em}
}

// Draw 绘制所有可见按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if button.Hidden {
			continue
		}
		s.drawButton(screen, button, pos.X, pos.Y)
	}
}

func (s *ButtonRenderSystem) drawButton(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	// 按下时向下偏移，模拟按压
	if button.State == components.UIClicked {
		y += 3
	} else {
		// 底部阴影
		utils.DrawRoundedRect(screen, float32(x), float32(y+4), float32(button.Width), float32(button.Height), float32(button.Radius), shadowColor)
	}

	fill := buttonFillColor(button)
	if button.Border.A > 0 {
		const bw = 4
		utils.DrawRoundedRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), float32(button.Radius), button.Border)
		utils.DrawRoundedRect(screen, float32(x+bw), float32(y+bw), float32(button.Width-2*bw), float32(button.Height-2*bw), float32(button.Radius-bw), fill)
	} else {
		utils.DrawRoundedRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), float32(button.Radius), fill)
	}

	if button.Font == nil || button.Label == "" {
		return
	}
	lines := strings.Split(button.Label, "\n")
	lineHeight := button.Font.Size * 1.2
	top := y + button.Height/2 - lineHeight*float64(len(lines))/2
	textColor := button.TextColor
	if !button.Enabled {
		textColor.A = textColor.A / 2
	}
	for i, line := range lines {
		w, _ := text.Measure(line, button.Font, 0)
		utils.DrawText(screen, line, button.Font, x+button.Width/2-w/2, top+float64(i)*lineHeight, textColor)
	}
}

// shadowColor 按钮阴影颜色
var shadowColor = color.RGBA{A: 60}

// buttonFillColor 根据交互状态调整背景颜色
func buttonFillColor(button *components.ButtonComponent) color.RGBA {
	c := button.Color
	switch button.State {
	case components.UIHovered:
		return lighten(c, 0.15)
	case components.UIClicked:
		return darken(c, 0.1)
	case components.UIDisabled:
		return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
	default:
		return c
	}
}

// lighten 向白色混合
func lighten(c color.RGBA, amount float64) color.RGBA {
	mix := func(v uint8) uint8 { return uint8(float64(v) + (255-float64(v))*amount) }
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

// darken 向黑色混合
func darken(c color.RGBA, amount float64) color.RGBA {
	mix := func(v uint8) uint8 { return uint8(float64(v) * (1 - amount)) }
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

// SliderRenderSystem 滑块渲染系统
type SliderRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewSliderRenderSystem 创建滑块渲染系统
func NewSliderRenderSystem(em *ecs.EntityManager) *SliderRenderSystem {
	return &SliderRenderSystem{entityManager: em}
}

// Draw 绘制所有可见滑块：标签、滑槽、已填充部分和圆形滑块
func (s *SliderRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.SliderComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if slider.Hidden {
			continue
		}

		if slider.Font != nil && slider.Label != "" {
			label := slider.Label + " " + percentLabel(slider.Value)
			utils.DrawText(screen, label, slider.Font, pos.X, pos.Y-slider.Font.Size*1.6, slider.FillColor)
		}

		x, y := float32(pos.X), float32(pos.Y)
		w, h := float32(slider.Width), float32(slider.Height)
		utils.DrawRoundedRect(screen, x, y, w, h, h/2, slider.TrackColor)
		utils.DrawRoundedRect(screen, x, y, w*float32(slider.Value), h, h/2, slider.FillColor)

		knobX := x + w*float32(slider.Value)
		radius := h * 0.9
		if slider.IsDragging || slider.IsHovered {
			radius = h * 1.1
		}
		vector.DrawFilledCircle(screen, knobX, y+h/2, radius, color.White, true)
		vector.StrokeCircle(screen, knobX, y+h/2, radius, 3, slider.FillColor, true)
	}
}
