package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/game"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

// 垃圾分类布局
const (
	sortingItemSize  = 200.0
	sortingItemY     = 120.0
	sortingBinWidth  = 220.0
	sortingBinHeight = 110.0
	sortingBinY      = 400.0
)

var (
	colorRecycle = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	colorOrganic = color.RGBA{R: 146, G: 98, B: 57, A: 255}
)

// sortingScene 垃圾分类
type sortingScene struct {
	minigameScene
	sorting *minigames.SortingSession
}

func newSortingScene(deps Deps) *sortingScene {
	s := &sortingScene{}
	s.sorting = minigames.NewSortingSession(deps.State.Games.Sorting, deps.State.Stickers, deps.Random)
	s.init(deps, game.ScreenSorting, s.sorting, s)

	left := config.GameWindowWidth/2 - sortingBinWidth - 20
	s.addPlayButton(left, sortingBinY, sortingBinWidth, sortingBinHeight, "Reciclável", colorRecycle, func() {
		s.sorting.Sort(minigames.BinRecycle)
	})
	s.addPlayButton(config.GameWindowWidth/2+20, sortingBinY, sortingBinWidth, sortingBinHeight, "Orgânico", colorOrganic, func() {
		s.sorting.Sort(minigames.BinOrganic)
	})
	return s
}

func (s *sortingScene) refresh() {}

func (s *sortingScene) drawBoard(screen *ebiten.Image) {
	utils.DrawCenteredText(screen, fmt.Sprintf("Pontos: %d de %d", s.sorting.Score(), s.sorting.Total()),
		s.smallFont, config.GameWindowWidth/2, config.TitleY+40, colorText)

	item, ok := s.sorting.Current()
	if !ok {
		return
	}

	// 物品卡片轻轻上下浮动
	bob := float32(6 * utils.Pulse(s.elapsed, 2))
	x := float32(config.GameWindowWidth-sortingItemSize) / 2
	y := float32(sortingItemY) + bob
	utils.DrawRoundedRect(screen, x, y, sortingItemSize, sortingItemSize, 24, colorWhite)
	vector.StrokeRect(screen, x, y, sortingItemSize, sortingItemSize, 2, colorGray, true)
	utils.DrawWrappedText(screen, item.Name, s.bodyFont, config.GameWindowWidth/2, float64(y)+sortingItemSize/2-14, sortingItemSize-24, colorText)

	if s.sorting.Phase() == minigames.PhaseFeedback {
		label, clr := "Muito bem!", colorGreen
		if !s.sorting.LastCorrect() {
			label, clr = "Ops!", colorRed
		}
		utils.DrawCenteredText(screen, label, s.titleFont, config.GameWindowWidth/2, sortingBinY-40, clr)
	}
}
