package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/components"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/game"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/types"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

var (
	colorLaneA = color.RGBA{R: 187, G: 247, B: 208, A: 255}
	colorLaneB = color.RGBA{R: 220, G: 252, B: 231, A: 255}
	colorRock  = color.RGBA{R: 120, G: 113, B: 108, A: 255}
)

// runnerScene 跑道躲避
// 等待开始阶段显示介绍卡片和"Começar!"按钮
type runnerScene struct {
	minigameScene
	runner *minigames.RunnerSession
	start  *components.ButtonComponent
	keys   utils.KeyInput
}

func newRunnerScene(deps Deps) *runnerScene {
	s := &runnerScene{keys: deps.Keys}
	s.runner = minigames.NewRunnerSession(deps.State.Games.Runner, deps.State.Stickers, deps.Random)
	s.init(deps, game.ScreenRunner, s.runner, s)

	s.start = s.addButton((config.GameWindowWidth-220)/2, 330, 220, 70, "Começar!", colorGreen, func() {
		s.runner.Start()
	})
	s.addPlayButton(520, 524, 120, 60, "Cima", colorPrimary, func() { s.runner.MoveUp() })
	s.addPlayButton(660, 524, 120, 60, "Baixo", colorPrimary, func() { s.runner.MoveDown() })
	return s
}

func (s *runnerScene) refresh() {
	s.start.Hidden = s.runner.Phase() != minigames.PhaseIntro
	switch {
	case s.keys.JustPressed(ebiten.KeyArrowUp), s.keys.JustPressed(ebiten.KeyW):
		s.runner.MoveUp()
	case s.keys.JustPressed(ebiten.KeyArrowDown), s.keys.JustPressed(ebiten.KeyS):
		s.runner.MoveDown()
	case s.keys.JustPressed(ebiten.KeySpace), s.keys.JustPressed(ebiten.KeyEnter):
		if s.runner.Phase() == minigames.PhaseIntro {
			s.runner.Start()
		}
	}
}

func (s *runnerScene) drawBoard(screen *ebiten.Image) {
	lanes := s.runner.Lanes()
	laneHeight := float32(config.RunnerFieldHeight / float64(max(lanes, 1)))
	for i := 0; i < lanes; i++ {
		clr := colorLaneA
		if i%2 == 1 {
			clr = colorLaneB
		}
		vector.DrawFilledRect(screen, 0, float32(config.RunnerFieldY)+float32(i)*laneHeight, config.GameWindowWidth, laneHeight, clr, false)
	}

	radius := s.runner.ItemWidth() / 2
	for _, item := range s.runner.Items() {
		cx := float32(item.X + radius)
		cy := float32(config.LaneCenterY(item.Lane, lanes))
		if item.Kind == components.PickupObstacle {
			vector.DrawFilledCircle(screen, cx, cy, float32(radius), colorRock, true)
			vector.DrawFilledCircle(screen, cx-float32(radius)*0.3, cy-float32(radius)*0.3, float32(radius)*0.25, colorGray, true)
		} else {
			vector.DrawFilledCircle(screen, cx, cy, float32(radius)*0.8, colorYellow, true)
			vector.StrokeCircle(screen, cx, cy, float32(radius)*0.8, 3, color.RGBA{R: 234, G: 179, B: 8, A: 255}, true)
		}
	}

	if profile, ok := config.GetCharacterProfile(types.CharacterJuninho); ok {
		px := s.runner.PlayerX() + config.RunnerPlayerDrawWidth/4
		drawAvatar(screen, s.deps.State.Resources, profile, px, config.LaneCenterY(s.runner.Lane(), lanes), float64(laneHeight)*0.4)
	}

	utils.DrawText(screen, fmt.Sprintf("Estrelas: %d", s.runner.Score()), s.bodyFont, 24, 536, colorText)

	if s.runner.Phase() == minigames.PhaseIntro {
		vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, colorDim, false)
		utils.DrawRoundedRect(screen, 180, 140, 440, 290, 28, colorWhite)
		utils.DrawCenteredText(screen, s.title, s.titleFont, config.GameWindowWidth/2, 190, colorPrimary)
		utils.DrawWrappedText(screen, s.deps.State.Games.Runner.Intro, s.bodyFont, config.GameWindowWidth/2, 230, 380, colorText)
	}
}
