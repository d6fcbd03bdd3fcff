package scenes

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/components"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/game"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
)

// 拼图布局
const (
	puzzleGap     = 8.0
	puzzleInset   = 6.0
	puzzlePreview = 120.0
)

// puzzleScene 拼图
// 每个格子是一个按钮，拼图块图片画在按钮上面
type puzzleScene struct {
	minigameScene
	puzzle  *minigames.PuzzleSession
	slots   []*components.ButtonComponent
	picture *ebiten.Image // 完整图片，首次绘制时生成
}

func newPuzzleScene(deps Deps) *puzzleScene {
	s := &puzzleScene{}
	s.puzzle = minigames.NewPuzzleSession(deps.State.Games.Puzzle, deps.State.Stickers, deps.Random)
	s.init(deps, game.ScreenPuzzle, s.puzzle, s)

	for i := range s.puzzle.Slots() {
		x, y := s.slotOrigin(i)
		s.slots = append(s.slots, s.addPlayButton(x, y, config.PuzzlePieceSize, config.PuzzlePieceSize, "", colorWhite, func() {
			s.puzzle.Select(i)
		}))
	}
	return s
}

func (s *puzzleScene) slotOrigin(i int) (float64, float64) {
	return config.GridCellOrigin(i, config.PuzzleColumns, config.PuzzlePieceSize, puzzleGap, config.PuzzleGridY)
}

func (s *puzzleScene) refresh() {
	for i, button := range s.slots {
		if i == s.puzzle.Selected() {
			button.Border = colorYellow
		} else {
			button.Border = colorGray
		}
	}
}

func (s *puzzleScene) drawBoard(screen *ebiten.Image) {}

// drawOverlay 在每个格子按钮上画出它当前放着的拼图块
func (s *puzzleScene) drawOverlay(screen *ebiten.Image) {
	picture := s.ensurePicture()
	cols := config.PuzzleColumns
	size := int(config.PuzzlePieceSize)
	for i, piece := range s.puzzle.Slots() {
		x, y := s.slotOrigin(i)
		if s.slots[i].State == components.UIClicked {
			y += 3
		}
		px, py := (piece%cols)*size, (piece/cols)*size
		sub := picture.SubImage(image.Rect(px, py, px+size, py+size)).(*ebiten.Image)

		op := &ebiten.DrawImageOptions{}
		scale := (config.PuzzlePieceSize - 2*puzzleInset) / config.PuzzlePieceSize
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x+puzzleInset, y+puzzleInset)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(sub, op)
	}

	// 右侧的完整图片预览
	rows := (len(s.slots) + cols - 1) / cols
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(puzzlePreview/float64(cols*size), puzzlePreview/float64(max(rows, 1)*size))
	op.GeoM.Translate(config.GameWindowWidth-puzzlePreview-40, config.PuzzleGridY)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(picture, op)
	vector.StrokeRect(screen, config.GameWindowWidth-puzzlePreview-40, config.PuzzleGridY, puzzlePreview, puzzlePreview, 2, colorGray, true)
}

// ensurePicture 生成拼图用的完整图片：奖励角色的大头像
func (s *puzzleScene) ensurePicture() *ebiten.Image {
	if s.picture != nil {
		return s.picture
	}
	cols := config.PuzzleColumns
	rows := (len(s.slots) + cols - 1) / cols
	w := cols * int(config.PuzzlePieceSize)
	h := max(rows, 1) * int(config.PuzzlePieceSize)
	s.picture = ebiten.NewImage(w, h)
	s.picture.Fill(colorCream)

	if profile, ok := config.GetCharacterProfile(s.deps.State.Games.Puzzle.Reward); ok {
		s.picture.Fill(tint(profile.Color, 0.6))
		drawAvatar(s.picture, s.deps.State.Resources, profile, float64(w)/2, float64(h)/2, float64(min(w, h))*0.4)
	}
	return s.picture
}

// Dispose 释放会话和拼图图片
func (s *puzzleScene) Dispose() {
	s.minigameScene.Dispose()
	if s.picture != nil {
		s.picture.Deallocate()
		s.picture = nil
	}
}
