package scenes

import (
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/game"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

// 菜单布局
const (
	menuColumns    = 3
	menuCardWidth  = 220.0
	menuCardHeight = 120.0
	menuCardGap    = 16.0
	menuGridY      = 110.0
)

// menuCardColors 每个游戏卡片的颜色
var menuCardColors = map[game.Screen]color.RGBA{
	game.ScreenMemory:     {R: 129, G: 140, B: 248, A: 255},
	game.ScreenPuzzle:     {R: 192, G: 132, B: 252, A: 255},
	game.ScreenSorting:    {R: 34, G: 197, B: 94, A: 255},
	game.ScreenGarden:     {R: 45, G: 212, B: 191, A: 255},
	game.ScreenPainting:   {R: 248, G: 113, B: 113, A: 255},
	game.ScreenRunner:     {R: 96, G: 165, B: 250, A: 255},
	game.ScreenFriendship: {R: 244, G: 114, B: 182, A: 255},
	game.ScreenEnergy:     {R: 250, G: 204, B: 21, A: 255},
	game.ScreenLab:        colorPrimary,
}

// menuScene 游戏菜单：games.yaml 中列出的每个游戏一张卡片
type menuScene struct {
	uiScene
	screens []game.Screen
}

func newMenuScene(deps Deps) *menuScene {
	s := &menuScene{uiScene: newUIScene(deps)}

	s.addButton(config.BackButtonX, config.BackButtonY, config.BackButtonWidth, config.BackButtonHeight, "Início", colorDark, func() {
		s.deps.Nav.NavigateTo(game.ScreenHome)
	})
	s.addButton(config.GameWindowWidth-config.BackButtonX-config.BackButtonWidth, config.BackButtonY, config.BackButtonWidth, config.BackButtonHeight,
		"Álbum", colorYellow, func() {
			s.deps.Nav.NavigateTo(game.ScreenStickers)
		}).TextColor = colorDark

	for _, entry := range deps.State.Games.Menu {
		screen, ok := game.ParseScreen(entry.Screen)
		if !ok {
			log.Printf("[MenuScene] Warning: unknown screen %q in menu", entry.Screen)
			continue
		}
		i := len(s.screens)
		s.screens = append(s.screens, screen)
		x, y := menuCardOrigin(i)
		fill, ok := menuCardColors[screen]
		if !ok {
			fill = colorPrimary
		}
		label := strings.Join(utils.WrapText(entry.Title, s.bodyFont, menuCardWidth-24), "\n")
		s.addButton(x, y, menuCardWidth, menuCardHeight, label, fill, func() {
			s.deps.Nav.NavigateTo(screen)
		}).Radius = 20
	}
	return s
}

// menuCardOrigin 第 i 张卡片的左上角，行距按卡片高度计算
func menuCardOrigin(i int) (float64, float64) {
	x, _ := config.GridCellOrigin(i, menuColumns, menuCardWidth, menuCardGap, 0)
	return x, menuGridY + float64(i/menuColumns)*(menuCardHeight+menuCardGap)
}

func (s *menuScene) Update(dt float64) {
	s.elapsed += dt
	s.uiLayer.update(dt)
}

func (s *menuScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorCream)
	s.drawTitle(screen, "Escolha uma brincadeira!", colorPrimary)
	s.uiLayer.draw(screen)
}
