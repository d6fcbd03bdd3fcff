package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/components"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/game"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

// 首页布局
const (
	homeCardWidth  = 130.0
	homeCardHeight = 170.0
	homeCardGap    = 14.0
	homeCardY      = 120.0
	homePlayWidth  = 220.0
	homePlayHeight = 80.0
	homePlayY      = 370.0
)

// homeScene 首页：角色卡片、"JOGAR"按钮和家长设置入口
type homeScene struct {
	uiScene
	profiles []config.CharacterProfile
	cards    []*components.ButtonComponent
	play     *components.ButtonComponent
}

func newHomeScene(deps Deps) *homeScene {
	s := &homeScene{
		uiScene:  newUIScene(deps),
		profiles: config.CharacterProfiles(),
	}

	for i, p := range s.profiles {
		x, y := s.cardOrigin(i)
		card := s.addButton(x, y, homeCardWidth, homeCardHeight, "", p.Color, func() {
			s.introduce(p)
		})
		card.Radius = 20
		s.cards = append(s.cards, card)
	}

	s.play = s.addButton((config.GameWindowWidth-homePlayWidth)/2, homePlayY, homePlayWidth, homePlayHeight, "JOGAR", colorYellow, func() {
		s.deps.Nav.NavigateTo(game.ScreenMenu)
	})
	s.play.TextColor = colorDark
	s.play.Radius = homePlayHeight / 2
	s.addButton(config.GameWindowWidth-136, 16, 120, 44, "Ajustes", colorDark, func() {
		s.deps.Nav.NavigateTo(game.ScreenSettings)
	})
	return s
}

func (s *homeScene) cardOrigin(i int) (float64, float64) {
	return config.GridCellOrigin(i, len(s.profiles), homeCardWidth, homeCardGap, homeCardY)
}

// introduce 角色用自己的声音做自我介绍
func (s *homeScene) introduce(p config.CharacterProfile) {
	s.playCue(minigames.CuePop)
	s.speak(fmt.Sprintf("Eu sou %s. %s!", p.Name, p.Trait), p.Gender)
}

func (s *homeScene) Update(dt float64) {
	s.elapsed += dt
	s.uiLayer.update(dt)
}

func (s *homeScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorCream)
	s.drawTitle(screen, "Turminha do Guia", colorPrimary)
	utils.DrawCenteredText(screen, "Toque em um amigo para conhecer!", s.smallFont, config.GameWindowWidth/2, config.TitleY+40, colorText)

	// "JOGAR" 按钮后面的呼吸光圈
	glow := utils.Pulse(s.elapsed, 1.6)
	pad := float32(6 + 8*glow)
	x := float32(config.GameWindowWidth-homePlayWidth)/2 - pad
	utils.DrawRoundedRect(screen, x, homePlayY-pad, homePlayWidth+2*pad, homePlayHeight+2*pad, homePlayHeight/2+pad, tint(colorYellow, 0.6))

	s.uiLayer.draw(screen)

	rm := s.deps.State.Resources
	for i, p := range s.profiles {
		x, y := s.cardOrigin(i)
		if s.cards[i].State == components.UIClicked {
			y += 3
		}
		cx := x + homeCardWidth/2
		drawAvatar(screen, rm, p, cx, y+62, 44)
		utils.DrawCenteredText(screen, p.Name, s.bodyFont, cx, y+124, colorWhite)
		utils.DrawCenteredText(screen, p.Trait, s.smallFont, cx, y+150, colorWhite)
	}

	utils.DrawCenteredText(screen, "INSTITUTO GUIA SOCIAL © 2024", s.smallFont, config.GameWindowWidth/2, config.GameWindowHeight-70, colorDark)
}
