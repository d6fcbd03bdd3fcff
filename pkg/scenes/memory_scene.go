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

// memoryScene 记忆翻牌
// 背面朝上的牌是按钮，翻开的牌隐藏按钮并画出角色头像
type memoryScene struct {
	minigameScene
	memory *minigames.MemorySession
	cards  []*components.ButtonComponent
}

func newMemoryScene(deps Deps) *memoryScene {
	s := &memoryScene{}
	s.memory = minigames.NewMemorySession(deps.State.Games.Memory, deps.State.Stickers, deps.Random)
	s.init(deps, game.ScreenMemory, s.memory, s)

	for i := range s.memory.Cards() {
		x, y := s.cardOrigin(i)
		s.cards = append(s.cards, s.addPlayButton(x, y, config.MemoryCardSize, config.MemoryCardSize, "?", colorPrimary, func() {
			s.memory.Flip(i)
		}))
	}
	return s
}

func (s *memoryScene) cardOrigin(i int) (float64, float64) {
	return config.GridCellOrigin(i, config.MemoryColumns, config.MemoryCardSize, config.MemoryCardGap, config.MemoryGridY)
}

func (s *memoryScene) refresh() {
	cards := s.memory.Cards()
	for i, button := range s.cards {
		button.Hidden = i >= len(cards) || cards[i].FaceUp || cards[i].Matched
	}
}

func (s *memoryScene) drawBoard(screen *ebiten.Image) {
	utils.DrawCenteredText(screen, fmt.Sprintf("Pares: %d de %d", s.memory.Matches(), s.memory.Pairs()),
		s.smallFont, config.GameWindowWidth/2, config.TitleY+40, colorText)

	rm := s.deps.State.Resources
	for i, card := range s.memory.Cards() {
		if !card.FaceUp && !card.Matched {
			continue
		}
		x, y := s.cardOrigin(i)
		size := float32(config.MemoryCardSize)
		border := colorYellow
		if card.Matched {
			border = colorGreen
		}
		utils.DrawRoundedRect(screen, float32(x), float32(y), size, size, 16, border)
		utils.DrawRoundedRect(screen, float32(x)+4, float32(y)+4, size-8, size-8, 12, colorWhite)
		if profile, ok := config.GetCharacterProfile(card.Character); ok {
			cx := x + config.MemoryCardSize/2
			drawAvatar(screen, rm, profile, cx, y+config.MemoryCardSize*0.42, config.MemoryCardSize*0.3)
			utils.DrawCenteredText(screen, profile.Name, s.smallFont, cx, y+config.MemoryCardSize-18, colorText)
		}
	}
}
