package scenes

import (
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/components"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/game"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

// 涂色布局：左侧是花朵，右侧是调色板
const (
	flowerCenterX    = 300.0
	flowerCenterY    = 240.0
	flowerPetalSize  = 100.0
	flowerPetalDist  = 85.0
	flowerCenterSize = 80.0
	paletteX         = 560.0
	paletteY         = 120.0
	paletteSwatch    = 60.0
	paletteGap       = 14.0
)

// petalOffset 第 i 片花瓣（共 n 片）相对花心的偏移，第一片朝上
func petalOffset(i, n int, dist float64) (float32, float32) {
	angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	return float32(math.Cos(angle) * dist), float32(math.Sin(angle) * dist)
}

// regionRect 返回涂色区域按钮的位置和尺寸
// 支持 petal1..petalN、center、stem、leaf
func regionRect(region string, petals int) (x, y, w, h float64, ok bool) {
	switch {
	case region == "center":
		return flowerCenterX - flowerCenterSize/2, flowerCenterY - flowerCenterSize/2, flowerCenterSize, flowerCenterSize, true
	case region == "stem":
		return flowerCenterX - 12, flowerCenterY + 100, 24, 200, true
	case region == "leaf":
		return flowerCenterX + 14, flowerCenterY + 180, 100, 44, true
	case strings.HasPrefix(region, "petal"):
		n, err := strconv.Atoi(strings.TrimPrefix(region, "petal"))
		if err != nil || n < 1 || n > petals {
			return 0, 0, 0, 0, false
		}
		dx, dy := petalOffset(n-1, petals, flowerPetalDist)
		return flowerCenterX + float64(dx) - flowerPetalSize/2, flowerCenterY + float64(dy) - flowerPetalSize/2, flowerPetalSize, flowerPetalSize, true
	}
	return 0, 0, 0, 0, false
}

// countPetals 统计区域中的花瓣数量
func countPetals(regions []string) int {
	n := 0
	for _, r := range regions {
		if strings.HasPrefix(r, "petal") {
			n++
		}
	}
	return n
}

// paintingScene 涂色
// 花朵的每个区域都是一个按钮，按钮颜色就是区域当前的颜色
type paintingScene struct {
	minigameScene
	painting *minigames.PaintingSession
	regions  map[string]*components.ButtonComponent
	swatches []*components.ButtonComponent
}

func newPaintingScene(deps Deps) *paintingScene {
	s := &paintingScene{regions: make(map[string]*components.ButtonComponent)}
	s.painting = minigames.NewPaintingSession(deps.State.Games.Painting, deps.State.Stickers, deps.Random)
	s.init(deps, game.ScreenPainting, s.painting, s)

	// 茎和叶子先创建，花瓣和花心画在上面
	regions := s.painting.Regions()
	petals := countPetals(regions)
	ordered := make([]string, 0, len(regions))
	for _, r := range regions {
		if r == "stem" || r == "leaf" {
			ordered = append(ordered, r)
		}
	}
	for _, r := range regions {
		if r != "stem" && r != "leaf" && r != "center" {
			ordered = append(ordered, r)
		}
	}
	for _, r := range regions {
		if r == "center" {
			ordered = append(ordered, r)
		}
	}

	for _, region := range ordered {
		x, y, w, h, ok := regionRect(region, petals)
		if !ok {
			log.Printf("[PaintingScene] Warning: no layout for region %q", region)
			continue
		}
		button := s.addPlayButton(x, y, w, h, "", s.painting.Fill(region), func() {
			s.painting.Paint(region)
		})
		button.Radius = math.Min(w, h) / 2
		button.Border = colorText
		s.regions[region] = button
	}

	for i, swatch := range s.painting.Palette() {
		x := paletteX + float64(i%2)*(paletteSwatch+paletteGap)
		y := paletteY + float64(i/2)*(paletteSwatch+paletteGap)
		button := s.addPlayButton(x, y, paletteSwatch, paletteSwatch, "", swatch.Color, func() {
			s.painting.SelectColor(i)
		})
		button.Radius = paletteSwatch / 2
		s.swatches = append(s.swatches, button)
	}

	s.addPlayButton(paletteX, 440, 2*paletteSwatch+paletteGap, 60, "Pronto", colorGreen, func() {
		s.painting.Finish()
	})
	return s
}

func (s *paintingScene) refresh() {
	for region, button := range s.regions {
		button.Color = s.painting.Fill(region)
	}
	for i, button := range s.swatches {
		if i == s.painting.Selected() {
			button.Border = colorText
		} else {
			button.Border = colorGray
		}
	}
}

func (s *paintingScene) drawBoard(screen *ebiten.Image) {
	palette := s.painting.Palette()
	if sel := s.painting.Selected(); sel >= 0 && sel < len(palette) {
		utils.DrawCenteredText(screen, palette[sel].Name, s.smallFont,
			paletteX+paletteSwatch+paletteGap/2, paletteY-24, colorText)
	}
}
