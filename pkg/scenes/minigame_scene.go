package scenes

import (
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/components"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/ecs"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/game"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
)

// minigameView 各小游戏画面自己实现的部分
type minigameView interface {
	// refresh 每帧把会话状态同步到按钮（文字、颜色、可见性）
	refresh()
	// drawBoard 绘制游戏区域
	drawBoard(screen *ebiten.Image)
}

// overlayDrawer 需要在按钮上面再画一层的画面实现
type overlayDrawer interface {
	drawOverlay(screen *ebiten.Image)
}

// scorer 有分数的小游戏实现，分数会显示在结果面板上
type scorer interface {
	Score() int
}

// minigameScene 小游戏画面的公共框架
//
// 负责驱动会话、分发效果、在游戏结束时打开结果面板，
// 并且只在 PhasePlaying 阶段启用游戏按钮。
type minigameScene struct {
	uiScene
	session     minigames.Session
	view        minigameView
	title       string
	victory     *victoryPanel
	playButtons []*components.ButtonComponent
}

// init 初始化框架并创建返回按钮和结果面板
//
// 参数：
//   - deps: 场景依赖
//   - screen: 所属画面（用于读取菜单标题）
//   - session: 小游戏会话
//   - view: 具体画面
func (m *minigameScene) init(deps Deps, screen game.Screen, session minigames.Session, view minigameView) {
	m.uiScene = newUIScene(deps)
	m.session = session
	m.view = view
	m.title = menuTitle(deps.State.Games, screen)
	m.victory = newVictoryPanel(&m.uiScene, m.replay)
	m.addBackButton()
}

// menuTitle 返回画面在菜单中的标题
func menuTitle(games *config.GamesConfig, screen game.Screen) string {
	for _, entry := range games.Menu {
		if entry.Screen == screen.String() {
			return entry.Title
		}
	}
	return ""
}

// addPlayButton 创建只在游戏进行中可点的按钮
func (m *minigameScene) addPlayButton(x, y, w, h float64, label string, fill color.RGBA, onClick func()) *components.ButtonComponent {
	button := m.addButton(x, y, w, h, label, fill, onClick)
	m.playButtons = append(m.playButtons, button)
	return button
}

// removePlayButton 销毁一个游戏按钮实体
// 实体在下一次 RemoveMarkedEntities 时真正移除
func (m *minigameScene) removePlayButton(id ecs.EntityID) {
	if button, ok := ecs.GetComponent[*components.ButtonComponent](m.em, id); ok {
		m.playButtons = slices.DeleteFunc(m.playButtons, func(b *components.ButtonComponent) bool { return b == button })
	}
	m.em.DestroyEntity(id)
}

// restarter 需要在重新开始时清理自身状态的画面实现
type restarter interface {
	restarted()
}

// replay "De Novo"：重置会话
func (m *minigameScene) replay() {
	m.session.Reset()
	m.dispatch(m.session.Drain())
	if r, ok := m.view.(restarter); ok {
		r.restarted()
	}
}

// Update 推进会话；结果面板打开时只更新面板
func (m *minigameScene) Update(dt float64) {
	m.elapsed += dt
	if m.victory.visible {
		m.victory.update(dt)
		m.session.Update(dt)
		m.dispatch(m.session.Drain())
		return
	}

	m.view.refresh()
	playing := m.session.Phase() == minigames.PhasePlaying
	for _, button := range m.playButtons {
		button.Enabled = playing
	}
	m.uiLayer.update(dt)

	m.session.Update(dt)
	m.dispatch(m.session.Drain())

	if m.session.Phase().Finished() {
		score, showScore := 0, false
		if s, ok := m.session.(scorer); ok {
			score, showScore = s.Score(), true
		}
		m.victory.show(m.session, score, showScore)
	}
}

// Draw 背景、标题、游戏区域、按钮和结果面板
func (m *minigameScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorCream)
	m.drawTitle(screen, m.title, colorDark)
	m.view.drawBoard(screen)
	m.uiLayer.draw(screen)
	if o, ok := m.view.(overlayDrawer); ok {
		o.drawOverlay(screen)
	}
	m.victory.draw(screen)
}

// Dispose 离开画面时释放会话，取消所有延迟转换
func (m *minigameScene) Dispose() {
	m.session.Dispose()
}
