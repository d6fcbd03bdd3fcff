package scenes

import (
	"fmt"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/game"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

// 加载画面时序（秒）
const (
	loadingDuration = 2.5 // 进度条从 0 走到 100%
	loadingHold     = 0.5 // 100% 之后停留
)

// 进度条布局
const (
	loadingBarWidth  = 420.0
	loadingBarHeight = 28.0
	loadingBarY      = 400.0
)

// loadingScene 启动时的加载画面
// 角色头像依次跳动，进度条走完后进入首页；期间预加载字体和头像
type loadingScene struct {
	uiScene
	progress float64
	done     bool
	profiles []config.CharacterProfile
}

func newLoadingScene(deps Deps) *loadingScene {
	s := &loadingScene{
		uiScene:  newUIScene(deps),
		profiles: config.CharacterProfiles(),
	}
	s.preload()
	return s
}

// preload 预加载常用字号和角色头像，缺失的头像只记录一次
func (s *loadingScene) preload() {
	rm := s.deps.State.Resources
	for _, size := range []float64{config.TitleFontSize, config.BodyFontSize, config.SmallFontSize} {
		if _, err := rm.LoadFont(game.FontRegular, size); err != nil {
			log.Printf("[LoadingScene] Warning: %v", err)
		}
		if _, err := rm.LoadFont(game.FontBold, size); err != nil {
			log.Printf("[LoadingScene] Warning: %v", err)
		}
	}
	for _, p := range s.profiles {
		if _, err := rm.LoadImage(avatarImagePath(p)); err != nil {
			log.Printf("[LoadingScene] Avatar for %s not bundled, using drawn avatar", p.Name)
		}
	}
}

// Update 推进进度，停留结束后打开首页
func (s *loadingScene) Update(dt float64) {
	if s.done {
		return
	}
	s.elapsed += dt
	s.progress = utils.EaseOutCubic(s.elapsed / loadingDuration)
	if s.elapsed >= loadingDuration+loadingHold {
		s.done = true
		s.deps.Nav.Open(game.ScreenHome)
	}
}

// percent 返回当前进度百分比（0~100）
func (s *loadingScene) percent() int {
	return int(math.Round(s.progress * 100))
}

func (s *loadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorPrimary)

	// 头像排成一行，依次上下跳动
	n := len(s.profiles)
	spacing := 120.0
	left := config.GameWindowWidth/2 - spacing*float64(n-1)/2
	for i, p := range s.profiles {
		phase := s.elapsed*4 - float64(i)*0.6
		bounce := math.Abs(math.Sin(phase)) * 24
		drawAvatar(screen, s.deps.State.Resources, p, left+float64(i)*spacing, 250-bounce, 44)
	}

	x := float32(config.GameWindowWidth-loadingBarWidth) / 2
	utils.DrawRoundedRect(screen, x, loadingBarY, loadingBarWidth, loadingBarHeight, loadingBarHeight/2, colorDark)
	if s.progress > 0 {
		utils.DrawRoundedRect(screen, x, loadingBarY, float32(loadingBarWidth*s.progress), loadingBarHeight, loadingBarHeight/2, colorYellow)
	}
	utils.DrawCenteredText(screen, fmt.Sprintf("Carregando diversão... %d%%", s.percent()), s.bodyFont,
		config.GameWindowWidth/2, loadingBarY+60, colorWhite)
	utils.DrawCenteredText(screen, "Turminha do Guia", s.titleFont, config.GameWindowWidth/2, config.GameWindowHeight-50, colorYellow)
}
