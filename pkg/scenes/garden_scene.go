package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/game"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

// 照顾植物布局
const (
	gardenPotY       = 420.0
	gardenToolWidth  = 150.0
	gardenToolHeight = 80.0
	gardenToolY      = 480.0
)

var (
	colorWater = color.RGBA{R: 96, G: 165, B: 250, A: 255}
	colorLove  = color.RGBA{R: 244, G: 114, B: 182, A: 255}
	colorPot   = color.RGBA{R: 194, G: 120, B: 72, A: 255}
	colorStem  = color.RGBA{R: 22, G: 163, B: 74, A: 255}
)

// gardenTools 工具按钮
var gardenTools = []struct {
	need  minigames.Need
	label string
	clr   color.RGBA
}{
	{minigames.NeedWater, "Água", colorWater},
	{minigames.NeedSun, "Sol", colorYellow},
	{minigames.NeedLove, "Carinho", colorLove},
}

// needLabel 气泡中显示的需求
func needLabel(n minigames.Need) string {
	for _, tool := range gardenTools {
		if tool.need == n {
			return tool.label
		}
	}
	return ""
}

// gardenScene 照顾植物
type gardenScene struct {
	minigameScene
	garden *minigames.GardenSession
}

func newGardenScene(deps Deps) *gardenScene {
	s := &gardenScene{}
	s.garden = minigames.NewGardenSession(deps.State.Games.Garden, deps.State.Stickers, deps.Random)
	s.init(deps, game.ScreenGarden, s.garden, s)

	total := float64(len(gardenTools))*gardenToolWidth + float64(len(gardenTools)-1)*20
	left := (config.GameWindowWidth - total) / 2
	for i, tool := range gardenTools {
		x := left + float64(i)*(gardenToolWidth+20)
		s.addPlayButton(x, gardenToolY, gardenToolWidth, gardenToolHeight, tool.label, tool.clr, func() {
			s.garden.Apply(tool.need)
		})
	}
	return s
}

func (s *gardenScene) refresh() {}

func (s *gardenScene) drawBoard(screen *ebiten.Image) {
	cx := float32(config.GameWindowWidth / 2)
	stages := max(s.garden.Stages(), 1)
	growth := float32(s.garden.Stage()) / float32(stages)

	// 茎随阶段长高，叶子在第一阶段之后出现
	stemHeight := 20 + growth*200
	stemTop := float32(gardenPotY) - stemHeight
	vector.DrawFilledRect(screen, cx-5, stemTop, 10, stemHeight, colorStem, true)
	if s.garden.Stage() >= 1 {
		vector.DrawFilledCircle(screen, cx-26, stemTop+stemHeight*0.6, 18, colorGreen, true)
		vector.DrawFilledCircle(screen, cx+26, stemTop+stemHeight*0.45, 18, colorGreen, true)
	}
	if s.garden.Stage() >= stages {
		for i := 0; i < 6; i++ {
			dx, dy := petalOffset(i, 6, 30)
			vector.DrawFilledCircle(screen, cx+dx, stemTop+dy, 22, colorLove, true)
		}
		vector.DrawFilledCircle(screen, cx, stemTop, 20, colorYellow, true)
	} else {
		vector.DrawFilledCircle(screen, cx, stemTop, 12, colorGreen, true)
	}

	// 花盆
	utils.DrawRoundedRect(screen, cx-80, gardenPotY, 160, 50, 12, colorPot)

	if s.garden.Phase() != minigames.PhasePlaying {
		return
	}
	// 需求气泡
	bubbleX, bubbleY := cx+70, stemTop-70
	utils.DrawRoundedRect(screen, bubbleX, bubbleY, 170, 56, 20, colorWhite)
	vector.DrawFilledCircle(screen, bubbleX+10, bubbleY+60, 8, colorWhite, true)
	utils.DrawCenteredText(screen, needLabel(s.garden.Need())+"?", s.bodyFont, float64(bubbleX)+85, float64(bubbleY)+28, colorText)
}
