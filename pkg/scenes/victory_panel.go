package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

// 胜利面板布局
const (
	victoryPanelWidth  = 440.0
	victoryPanelHeight = 420.0
	victoryButtonWidth = 170.0
	confettiCount      = 40
)

// victoryPanel 小游戏结束时覆盖在画面上的结果面板
// 新解锁贴纸时展示角色头像，否则展示奖牌
type victoryPanel struct {
	uiLayer
	owner *uiScene

	visible    bool
	message    string
	score      int
	showScore  bool
	profile    config.CharacterProfile
	newSticker bool
	elapsed    float64
	confetti   []confettiPiece
}

// confettiPiece 一片彩纸
type confettiPiece struct {
	x, y  float64
	speed float64
	size  float32
	clr   color.RGBA
}

// confettiColors 彩纸颜色
var confettiColors = []color.RGBA{colorYellow, colorGreen, colorRed, colorPrimary, {R: 192, G: 132, B: 252, A: 255}}

// newVictoryPanel 创建隐藏的结果面板
//
// 参数：
//   - owner: 所属画面
//   - onReplay: "De Novo" 按钮回调，通常是重置会话
func newVictoryPanel(owner *uiScene, onReplay func()) *victoryPanel {
	p := &victoryPanel{
		uiLayer: owner.newLayer(),
		owner:   owner,
	}

	left := (config.GameWindowWidth-victoryPanelWidth)/2 + 40
	top := (config.GameWindowHeight+victoryPanelHeight)/2 - 90
	p.addButton(left, top, victoryButtonWidth, 60, "De Novo", colorGreen, func() {
		p.hide()
		onReplay()
	})
	p.addButton(left+victoryButtonWidth+20, top, victoryButtonWidth, 60, "Menu", colorPrimary, owner.deps.Nav.Back)
	return p
}

// show 根据会话结果打开面板
//
// 参数：
//   - session: 已结束的会话
//   - score: 本局分数，showScore 为 false 时不显示
func (p *victoryPanel) show(session minigames.Session, score int, showScore bool) {
	p.visible = true
	p.elapsed = 0
	p.message = session.Victory()
	if p.message == "" {
		p.message = "Parabéns!"
	}
	p.score = score
	p.showScore = showScore

	reward, unlocked := session.Reward()
	p.newSticker = false
	if profile, ok := config.GetCharacterProfile(reward); ok && unlocked {
		p.profile = profile
		p.newSticker = true
	}

	rng := p.owner.deps.Random
	p.confetti = p.confetti[:0]
	for i := 0; i < confettiCount; i++ {
		p.confetti = append(p.confetti, confettiPiece{
			x:     rng.Float64() * config.GameWindowWidth,
			y:     -rng.Float64() * config.GameWindowHeight,
			speed: 80 + rng.Float64()*120,
			size:  float32(4 + rng.Float64()*5),
			clr:   confettiColors[rng.IntN(len(confettiColors))],
		})
	}
}

func (p *victoryPanel) hide() {
	p.visible = false
}

// update 推进彩纸并处理按钮
func (p *victoryPanel) update(dt float64) {
	if !p.visible {
		return
	}
	p.elapsed += dt
	for i := range p.confetti {
		c := &p.confetti[i]
		c.y += c.speed * dt
		if c.y > config.GameWindowHeight {
			c.y -= config.GameWindowHeight + 20
		}
	}
	p.uiLayer.update(dt)
}

func (p *victoryPanel) draw(screen *ebiten.Image) {
	if !p.visible {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, colorDim, false)
	for _, c := range p.confetti {
		vector.DrawFilledRect(screen, float32(c.x), float32(c.y), c.size, c.size*1.6, c.clr, false)
	}

	// 面板从小弹出
	scale := utils.EaseOutBack(utils.Clamp01(p.elapsed / 0.4))
	w := victoryPanelWidth * scale
	h := victoryPanelHeight * scale
	x := (config.GameWindowWidth - w) / 2
	y := (config.GameWindowHeight - h) / 2
	utils.DrawRoundedRect(screen, float32(x), float32(y), float32(w), float32(h), 28, colorWhite)
	if scale < 0.95 {
		return
	}

	cx := config.GameWindowWidth / 2.0
	top := (config.GameWindowHeight - victoryPanelHeight) / 2
	rm := p.owner.deps.State.Resources
	if p.newSticker {
		utils.DrawCenteredText(screen, "NOVA FIGURINHA!", p.owner.bodyFont, cx, top+36, colorPrimary)
		bob := 4 * utils.Pulse(p.elapsed, 1.2)
		drawAvatar(screen, rm, p.profile, cx, top+120+bob, 56)
		utils.DrawCenteredText(screen, p.profile.Name, p.owner.smallFont, cx, top+192, colorText)
	} else {
		// 奖牌：两条绶带和一个圆牌
		vector.DrawFilledRect(screen, float32(cx)-34, float32(top)+40, 26, 60, colorRed, true)
		vector.DrawFilledRect(screen, float32(cx)+8, float32(top)+40, 26, 60, colorPrimary, true)
		vector.DrawFilledCircle(screen, float32(cx), float32(top+120), 54, colorYellow, true)
		vector.StrokeCircle(screen, float32(cx), float32(top+120), 42, 4, colorWhite, true)
		utils.DrawCenteredText(screen, "1", p.owner.titleFont, cx, top+120, colorWhite)
	}
	utils.DrawCenteredText(screen, p.message, p.owner.titleFont, cx, top+232, colorText)
	if p.showScore {
		utils.DrawCenteredText(screen, fmt.Sprintf("Pontos: %d", p.score), p.owner.bodyFont, cx, top+272, colorDark)
	}
	p.uiLayer.draw(screen)
}
