package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/components"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/ecs"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/game"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

// floaterColors 气球颜色
var floaterColors = map[components.FloaterKind]color.RGBA{
	components.FloaterSun:       colorYellow,
	components.FloaterStar:      {R: 251, G: 146, B: 60, A: 255},
	components.FloaterSmile:     {R: 244, G: 114, B: 182, A: 255},
	components.FloaterLightning: {R: 167, G: 139, B: 250, A: 255},
}

// energyScene 能量挑战
// 每个气球对应交互层中的一个按钮实体，每帧与会话中的气球同步
type energyScene struct {
	minigameScene
	energy   *minigames.EnergySession
	start    *components.ButtonComponent
	balloons map[ecs.EntityID]ecs.EntityID // 会话气球ID -> 按钮实体ID
}

func newEnergyScene(deps Deps) *energyScene {
	s := &energyScene{balloons: make(map[ecs.EntityID]ecs.EntityID)}
	s.energy = minigames.NewEnergySession(deps.State.Games.Energy, deps.State.Stickers, deps.Random)
	s.init(deps, game.ScreenEnergy, s.energy, s)

	s.start = s.addButton((config.GameWindowWidth-220)/2, 330, 220, 70, "COMEÇAR!", colorGreen, func() {
		s.energy.Start()
	})
	return s
}

// refresh 为新气球创建按钮、移动已有按钮、删除消失气球的按钮
func (s *energyScene) refresh() {
	s.start.Hidden = s.energy.Phase() != minigames.PhaseIntro

	alive := make(map[ecs.EntityID]bool)
	for _, f := range s.energy.Floaters() {
		alive[f.ID] = true
		x, y := config.EnergyToScreen(f.X, f.Y)
		x -= config.EnergyFloaterSize / 2
		if buttonID, ok := s.balloons[f.ID]; ok {
			if pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, buttonID); ok {
				pos.X, pos.Y = x, y
			}
			continue
		}

		floaterID := f.ID
		buttonID, button := s.newButton(x, y, config.EnergyFloaterSize, config.EnergyFloaterSize, "", floaterColors[f.Kind], func() {
			s.energy.Tap(floaterID)
		})
		button.Radius = config.EnergyFloaterSize / 2
		s.playButtons = append(s.playButtons, button)
		s.balloons[f.ID] = buttonID
	}

	for floaterID, buttonID := range s.balloons {
		if alive[floaterID] {
			continue
		}
		s.removePlayButton(buttonID)
		delete(s.balloons, floaterID)
	}
	s.em.RemoveMarkedEntities()
}

func (s *energyScene) drawBoard(screen *ebiten.Image) {
	// 能量条
	barX := float32(config.GameWindowWidth-config.EnergyBarWidth) / 2
	ratio := 0.0
	if full := s.energy.MaxEnergy(); full > 0 {
		ratio = s.energy.Energy() / full
	}
	utils.DrawRoundedRect(screen, barX, 62, config.EnergyBarWidth, 22, 11, colorGray)
	utils.DrawRoundedRect(screen, barX, 62, float32(config.EnergyBarWidth*ratio), 22, 11, colorGreen)
	utils.DrawText(screen, fmt.Sprintf("Pontos: %d", s.energy.Score()), s.bodyFont, 620, 58, colorText)

	// 气球的绳子画在按钮下面
	for _, f := range s.energy.Floaters() {
		x, y := config.EnergyToScreen(f.X, f.Y)
		vector.StrokeLine(screen, float32(x), float32(y+config.EnergyFloaterSize), float32(x), float32(y+config.EnergyFloaterSize+30), 2, colorGray, true)
	}

	if s.energy.Phase() == minigames.PhaseIntro {
		vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, colorDim, false)
		utils.DrawRoundedRect(screen, 180, 140, 440, 290, 28, colorWhite)
		utils.DrawCenteredText(screen, s.title, s.titleFont, config.GameWindowWidth/2, 190, colorPrimary)
		utils.DrawWrappedText(screen, s.deps.State.Games.Energy.Intro, s.bodyFont, config.GameWindowWidth/2, 230, 380, colorText)
	}
}

// restarted 新一局开始前清空上一局残留的气球按钮
func (s *energyScene) restarted() {
	for floaterID, buttonID := range s.balloons {
		s.removePlayButton(buttonID)
		delete(s.balloons, floaterID)
	}
	s.em.RemoveMarkedEntities()
}
