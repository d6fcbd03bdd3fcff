package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/components"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/types"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

// 相册布局
const (
	albumTileWidth  = 140.0
	albumTileHeight = 190.0
	albumTileGap    = 14.0
	albumTileY      = 170.0
)

// 相册台词
const (
	lineStickerOwned  = "Essa é a figurinha do %s!"
	lineStickerLocked = "Continue jogando para ganhar essa figurinha!"
)

// albumScene 贴纸相册
// 已解锁的贴纸显示角色头像，未解锁的显示锁定卡片；点击任一卡片都会念一句话
type albumScene struct {
	uiScene
	profiles []config.CharacterProfile
	tiles    []*components.ButtonComponent
}

func newAlbumScene(deps Deps) *albumScene {
	s := &albumScene{
		uiScene:  newUIScene(deps),
		profiles: config.CharacterProfiles(),
	}
	s.addBackButton()

	for i, p := range s.profiles {
		x, y := s.tileOrigin(i)
		tile := s.addButton(x, y, albumTileWidth, albumTileHeight, "", colorGray, func() {
			s.describe(p)
		})
		tile.Radius = 18
		s.tiles = append(s.tiles, tile)
	}
	s.refresh()
	return s
}

func (s *albumScene) tileOrigin(i int) (float64, float64) {
	return config.GridCellOrigin(i, len(s.profiles), albumTileWidth, albumTileGap, albumTileY)
}

// describe 念出贴纸的说明
func (s *albumScene) describe(p config.CharacterProfile) {
	if s.deps.State.Stickers.IsUnlocked(p.ID) {
		s.playCue(minigames.CuePop)
		s.speak(fmt.Sprintf(lineStickerOwned, p.Name), p.Gender)
		return
	}
	s.playCue(minigames.CueClick)
	s.speak(lineStickerLocked, types.GenderFemale)
}

// refresh 根据解锁状态设置卡片颜色
func (s *albumScene) refresh() {
	for i, p := range s.profiles {
		if s.deps.State.Stickers.IsUnlocked(p.ID) {
			s.tiles[i].Color = p.Color
			s.tiles[i].Border = colorYellow
		} else {
			s.tiles[i].Color = colorGray
			s.tiles[i].Border = colorWhite
		}
	}
}

func (s *albumScene) Update(dt float64) {
	s.elapsed += dt
	s.refresh()
	s.uiLayer.update(dt)
}

func (s *albumScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorCream)
	s.drawTitle(screen, "Álbum da Turma", colorPrimary)
	ledger := s.deps.State.Stickers
	utils.DrawCenteredText(screen, fmt.Sprintf("%d de %d Figurinhas", ledger.Count(), len(s.profiles)),
		s.bodyFont, config.GameWindowWidth/2, config.TitleY+50, colorText)

	s.uiLayer.draw(screen)

	rm := s.deps.State.Resources
	for i, p := range s.profiles {
		x, y := s.tileOrigin(i)
		if s.tiles[i].State == components.UIClicked {
			y += 3
		}
		cx := x + albumTileWidth/2
		if ledger.IsUnlocked(p.ID) {
			drawAvatar(screen, rm, p, cx, y+74, 48)
			utils.DrawCenteredText(screen, p.Name, s.bodyFont, cx, y+148, colorWhite)
			continue
		}
		utils.DrawCenteredText(screen, "?", s.titleFont, cx, y+74, colorWhite)
		utils.DrawCenteredText(screen, "Bloqueado", s.smallFont, cx, y+148, colorText)
	}
}
