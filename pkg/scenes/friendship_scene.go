package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/components"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/game"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

// 友谊问答布局
const (
	friendAvatarX      = 150.0
	friendAvatarY      = 230.0
	friendBubbleX      = 270.0
	friendBubbleY      = 140.0
	friendBubbleWidth  = 490.0
	friendBubbleHeight = 170.0
	friendOptionY      = 350.0
	friendOptionHeight = 70.0
)

// friendshipScene 友谊问答
// 选项按钮数量取所有情景中最多的选项数，多余的按钮隐藏
type friendshipScene struct {
	minigameScene
	friendship *minigames.FriendshipSession
	options    []*components.ButtonComponent
	narrated   int // 已经念过的情景序号
}

func newFriendshipScene(deps Deps) *friendshipScene {
	s := &friendshipScene{narrated: -1}
	s.friendship = minigames.NewFriendshipSession(deps.State.Games.Friendship, deps.State.Stickers, deps.Random)
	s.init(deps, game.ScreenFriendship, s.friendship, s)

	most := 0
	for _, scenario := range deps.State.Games.Friendship.Scenarios {
		most = max(most, len(scenario.Options))
	}
	width := (config.GameWindowWidth - 80 - float64(most-1)*20) / float64(max(most, 1))
	for j := 0; j < most; j++ {
		x := 40 + float64(j)*(width+20)
		s.options = append(s.options, s.addPlayButton(x, friendOptionY, width, friendOptionHeight, "", colorPrimary, func() {
			if scenario, ok := s.friendship.Scenario(); ok && j < len(scenario.Options) {
				s.friendship.Choose(scenario.Options[j].ID)
			}
		}))
	}
	return s
}

func (s *friendshipScene) refresh() {
	scenario, ok := s.friendship.Scenario()
	if !ok {
		return
	}
	for j, button := range s.options {
		button.Hidden = j >= len(scenario.Options)
		if !button.Hidden {
			button.Label = scenario.Options[j].Label
		}
	}

	// 每个情景出现时念一次情景描述
	if idx := s.friendship.ScenarioIndex(); idx != s.narrated && s.friendship.Phase() == minigames.PhasePlaying {
		s.narrated = idx
		if profile, ok := config.GetCharacterProfile(scenario.Friend); ok {
			s.speak(scenario.Situation, profile.Gender)
		}
	}
}

// restarted 重新开始后重新念第一个情景
func (s *friendshipScene) restarted() {
	s.narrated = -1
}

func (s *friendshipScene) drawBoard(screen *ebiten.Image) {
	scenario, ok := s.friendship.Scenario()
	if !ok {
		return
	}
	utils.DrawCenteredText(screen, fmt.Sprintf("Situação %d de %d", s.friendship.ScenarioIndex()+1, len(s.deps.State.Games.Friendship.Scenarios)),
		s.smallFont, config.GameWindowWidth/2, config.TitleY+40, colorText)

	if profile, ok := config.GetCharacterProfile(scenario.Friend); ok {
		drawAvatar(screen, s.deps.State.Resources, profile, friendAvatarX, friendAvatarY, 70)
		utils.DrawCenteredText(screen, profile.Name, s.bodyFont, friendAvatarX, friendAvatarY+95, colorText)
	}

	utils.DrawRoundedRect(screen, friendBubbleX, friendBubbleY, friendBubbleWidth, friendBubbleHeight, 24, colorWhite)
	vector.DrawFilledCircle(screen, friendBubbleX-6, friendBubbleY+friendBubbleHeight/2, 14, colorWhite, true)
	utils.DrawWrappedText(screen, scenario.Situation, s.bodyFont, friendBubbleX+friendBubbleWidth/2, friendBubbleY+40, friendBubbleWidth-48, colorText)

	if fb := s.friendship.Feedback(); fb != nil {
		clr := colorGreen
		if !fb.Correct {
			clr = colorRed
		}
		top := float32(friendOptionY + friendOptionHeight + 24)
		utils.DrawRoundedRect(screen, 80, top, config.GameWindowWidth-160, 70, 20, clr)
		utils.DrawWrappedText(screen, fb.Text, s.bodyFont, config.GameWindowWidth/2, float64(top)+20, config.GameWindowWidth-200, colorWhite)
	}
}
