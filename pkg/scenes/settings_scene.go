package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/components"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

// 设置页布局
const (
	settingsPanelX     = 120.0
	settingsPanelWidth = config.GameWindowWidth - 2*settingsPanelX
	settingsMusicY     = 150.0
	settingsSoundY     = 330.0
	settingsSliderX    = settingsPanelX + 40
	settingsSliderW    = settingsPanelWidth - 80
	settingsToggleW    = 120.0
	settingsVersion    = "Versão 1.1.0"
)

// settingsScene 家长设置页：音乐开关、音乐音量和旁白音量
// 每次修改都由 SettingsManager 立即保存
type settingsScene struct {
	uiScene
	toggle      *components.ButtonComponent
	musicSlider *components.SliderComponent
	soundSlider *components.SliderComponent
}

func newSettingsScene(deps Deps) *settingsScene {
	s := &settingsScene{uiScene: newUIScene(deps)}
	s.addBackButton()

	settings := deps.State.Settings
	current := settings.GetSettings()

	s.toggle = s.addButton(settingsPanelX+settingsPanelWidth-settingsToggleW-24, settingsMusicY+20, settingsToggleW, 48, "", colorGreen, func() {
		settings.SetMusicEnabled(!settings.GetSettings().MusicEnabled)
	})
	s.toggle.Radius = 24

	s.musicSlider = s.addSlider(settingsSliderX, settingsMusicY+120, settingsSliderW, "Volume", current.MusicVolume, settings.SetMusicVolume)
	s.soundSlider = s.addSlider(settingsSliderX, settingsSoundY+120, settingsSliderW, "Volume", current.SoundVolume, settings.SetSoundVolume)
	// 松开时用新音量播放一次试听音效
	s.soundSlider.OnRelease = func() {
		s.playCue(minigames.CueClick)
	}
	s.refresh()
	return s
}

// refresh 让开关按钮和音乐滑块跟随当前设置
func (s *settingsScene) refresh() {
	enabled := s.deps.State.Settings.GetSettings().MusicEnabled
	if enabled {
		s.toggle.Label, s.toggle.Color = "Ligada", colorGreen
	} else {
		s.toggle.Label, s.toggle.Color = "Desligada", colorGray
	}
	s.toggle.TextColor = colorWhite
	if !enabled {
		s.toggle.TextColor = colorText
	}
	s.musicSlider.Hidden = !enabled
}

func (s *settingsScene) Update(dt float64) {
	s.elapsed += dt
	s.uiLayer.update(dt)
	s.refresh()
}

func (s *settingsScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorCream)
	s.drawTitle(screen, "Configurações", colorDark)
	utils.DrawCenteredText(screen, "Área para os responsáveis", s.smallFont, config.GameWindowWidth/2, config.TitleY+40, colorText)

	s.drawSection(screen, settingsMusicY, "Música de Fundo", "Melodia relaxante")
	s.drawSection(screen, settingsSoundY, "Narração e Sons", "Volume da voz dos personagens")

	s.uiLayer.draw(screen)

	utils.DrawCenteredText(screen, settingsVersion, s.smallFont, config.GameWindowWidth/2, config.GameWindowHeight-30, colorGray)
}

// drawSection 绘制一个设置分组的卡片、标题和副标题
func (s *settingsScene) drawSection(screen *ebiten.Image, y float64, title, subtitle string) {
	utils.DrawRoundedRect(screen, settingsPanelX, float32(y), settingsPanelWidth, 160, 20, colorWhite)
	utils.DrawText(screen, title, s.bodyFont, settingsPanelX+24, y+20, colorPrimary)
	utils.DrawText(screen, subtitle, s.smallFont, settingsPanelX+24, y+56, colorText)
}
