// Package scenes 实现应用的各个画面
//
// 每个画面是一个 game.Scene，由 NewSceneFactory 按 game.Screen 创建。
// 交互元素都是 ECS 按钮或滑块实体，由 systems 包的交互和渲染系统驱动；
// 小游戏画面只负责把会话状态画出来、把点击转成会话操作，
// 并把会话产生的效果交给 GameState.Dispatch。
package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/components"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/ecs"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/game"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/lab"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/systems"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/types"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// 品牌配色
var (
	colorPrimary = color.RGBA{R: 26, G: 138, B: 143, A: 255}
	colorDark    = color.RGBA{R: 15, G: 109, B: 113, A: 255}
	colorYellow  = color.RGBA{R: 250, G: 203, B: 50, A: 255}
	colorCream   = color.RGBA{R: 255, G: 251, B: 235, A: 255}
	colorWhite   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorGreen   = color.RGBA{R: 34, G: 197, B: 94, A: 255}
	colorRed     = color.RGBA{R: 248, G: 113, B: 113, A: 255}
	colorGray    = color.RGBA{R: 209, G: 213, B: 219, A: 255}
	colorText    = color.RGBA{R: 31, G: 41, B: 55, A: 255}
	colorDim     = color.RGBA{A: 150}
)

// tint 把颜色按 amount 比例向白色混合
func tint(c color.RGBA, amount float64) color.RGBA {
	mix := func(v uint8) uint8 { return uint8(float64(v) + (255-float64(v))*amount) }
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

// Deps 场景共享的依赖
type Deps struct {
	State  *game.GameState
	Nav    *game.Navigator
	Editor lab.ImageEditor    // 实验室的图片编辑服务，nil 时生成会失败并提示
	Input  utils.PointerInput // 指针输入，nil 时读取真实鼠标和触摸
	Keys   utils.KeyInput     // 键盘输入，nil 时读取真实键盘
	Random minigames.Random   // 小游戏随机数来源，nil 时使用时间种子
}

// withDefaults 为空的输入和随机数来源填入默认实现
func (d Deps) withDefaults() Deps {
	if d.Input == nil {
		d.Input = utils.DefaultPointer
	}
	if d.Keys == nil {
		d.Keys = utils.DefaultKeys
	}
	if d.Random == nil {
		d.Random = minigames.NewRandom()
	}
	return d
}

// uiLayer 一层独立的交互元素
// 弹窗（胜利界面、家长验证）各自拥有一层，打开时只更新最上层
type uiLayer struct {
	em           *ecs.EntityManager
	buttonSystem *systems.ButtonSystem
	sliderSystem *systems.SliderSystem
	buttonRender *systems.ButtonRenderSystem
	sliderRender *systems.SliderRenderSystem
	font         *text.GoTextFace
}

func newUILayer(input utils.PointerInput, font *text.GoTextFace) uiLayer {
	em := ecs.NewEntityManager()
	return uiLayer{
		em:           em,
		buttonSystem: systems.NewButtonSystem(em, input),
		sliderSystem: systems.NewSliderSystem(em, input),
		buttonRender: systems.NewButtonRenderSystem(em),
		sliderRender: systems.NewSliderRenderSystem(em),
		font:         font,
	}
}

// update 更新按钮和滑块，返回本帧是否有按钮被点击
func (l *uiLayer) update(dt float64) bool {
	clicked := l.buttonSystem.Update(dt)
	l.sliderSystem.Update(dt)
	return clicked
}

func (l *uiLayer) draw(screen *ebiten.Image) {
	l.sliderRender.Draw(screen)
	l.buttonRender.Draw(screen)
}

// addButton 创建一个按钮实体
//
// 参数：
//   - x, y: 左上角
//   - w, h: 尺寸
//   - label: 文字（可多行）
//   - fill: 背景颜色
//   - onClick: 点击回调
//
// 返回：
//   - *components.ButtonComponent: 场景可直接修改其 Label、Color、Enabled 和 Hidden
func (l *uiLayer) addButton(x, y, w, h float64, label string, fill color.RGBA, onClick func()) *components.ButtonComponent {
	_, button := l.newButton(x, y, w, h, label, fill, onClick)
	return button
}

// newButton 与 addButton 相同，同时返回实体ID（需要移除按钮时使用）
func (l *uiLayer) newButton(x, y, w, h float64, label string, fill color.RGBA, onClick func()) (ecs.EntityID, *components.ButtonComponent) {
	id := l.em.CreateEntity()
	button := &components.ButtonComponent{
		Label:     label,
		Font:      l.font,
		Color:     fill,
		TextColor: colorWhite,
		Width:     w,
		Height:    h,
		Radius:    16,
		Enabled:   true,
		OnClick:   onClick,
	}
	l.em.AddComponent(id, button)
	l.em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	return id, button
}

// addSlider 创建一个滑块实体
func (l *uiLayer) addSlider(x, y, w float64, label string, value float64, onChange func(float64)) *components.SliderComponent {
	id := l.em.CreateEntity()
	slider := &components.SliderComponent{
		Width:         w,
		Height:        14,
		Value:         value,
		Step:          0.05,
		Label:         label,
		Font:          l.font,
		TrackColor:    colorGray,
		FillColor:     colorPrimary,
		OnValueChange: onChange,
	}
	l.em.AddComponent(id, slider)
	l.em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	return slider
}

// uiScene 所有画面的公共部分：依赖、字体、主交互层和计时
type uiScene struct {
	uiLayer
	deps      Deps
	titleFont *text.GoTextFace
	bodyFont  *text.GoTextFace
	smallFont *text.GoTextFace
	elapsed   float64
}

func newUIScene(deps Deps) uiScene {
	rm := deps.State.Resources
	body := rm.GetFont(game.FontBold, config.BodyFontSize)
	return uiScene{
		uiLayer:   newUILayer(deps.Input, body),
		deps:      deps,
		titleFont: rm.GetFont(game.FontBold, config.TitleFontSize),
		bodyFont:  body,
		smallFont: rm.GetFont(game.FontRegular, config.SmallFontSize),
	}
}

// newLayer 创建与本画面共享输入和字体的新交互层
func (s *uiScene) newLayer() uiLayer {
	return newUILayer(s.deps.Input, s.bodyFont)
}

// addBackButton 左上角的"Voltar"按钮
func (s *uiScene) addBackButton() *components.ButtonComponent {
	return s.addButton(config.BackButtonX, config.BackButtonY, config.BackButtonWidth, config.BackButtonHeight,
		"Voltar", colorDark, s.deps.Nav.Back)
}

// dispatch 把会话效果交给音频和旁白
func (s *uiScene) dispatch(effects []minigames.Effect) {
	if len(effects) > 0 {
		s.deps.State.Dispatch(effects)
	}
}

// playCue 直接播放一个音效
func (s *uiScene) playCue(cue minigames.Cue) {
	s.deps.State.Audio.PlayCue(string(cue))
}

// speak 以指定性别的声音念一句话
func (s *uiScene) speak(line string, gender types.Gender) {
	s.dispatch([]minigames.Effect{{Speech: line, Voice: gender}})
}

// drawTitle 在顶部居中绘制标题
func (s *uiScene) drawTitle(screen *ebiten.Image, title string, clr color.Color) {
	utils.DrawCenteredText(screen, title, s.titleFont, config.GameWindowWidth/2, config.TitleY, clr)
}
