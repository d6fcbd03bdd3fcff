package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/game"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

// 家长验证面板布局
const (
	gatePanelWidth  = 420.0
	gatePanelHeight = 540.0
	gateKeyWidth    = 80.0
	gateKeyHeight   = 56.0
	gateKeyGap      = 8.0
	gateKeypadY     = 250.0
)

// gateKeys 数字键盘的按键顺序（3 列）
var gateKeys = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "←", "0", "OK"}

// Overlay 覆盖在所有画面之上的全局层：家长验证面板和旁白字幕
//
// 家长验证打开时拦截全部输入，当前画面本帧不更新。
type Overlay struct {
	uiScene
	gate *game.ParentalGate // 按键层对应的验证，验证更换时重建
	keys utils.KeyInput
}

// NewOverlay 创建全局覆盖层
func NewOverlay(deps Deps) *Overlay {
	deps = deps.withDefaults()
	return &Overlay{
		uiScene: newUIScene(deps),
		keys:    deps.Keys,
	}
}

// Update 更新覆盖层
//
// 返回：
//   - bool: 家长验证是否处于打开状态（为 true 时调用方应跳过画面更新）
func (o *Overlay) Update(dt float64) bool {
	o.elapsed += dt
	gate := o.deps.Nav.Gate()
	if gate == nil {
		o.gate = nil
		return false
	}
	if gate != o.gate {
		o.buildKeypad(gate)
	}

	o.handleKeyboard(gate)
	if o.deps.Nav.Gate() == gate {
		o.uiLayer.update(dt)
	}
	return true
}

// buildKeypad 为新的验证重建数字键盘
func (o *Overlay) buildKeypad(gate *game.ParentalGate) {
	o.gate = gate
	o.uiLayer = o.newLayer()

	left := (config.GameWindowWidth - 3*gateKeyWidth - 2*gateKeyGap) / 2
	for i, key := range gateKeys {
		x := left + float64(i%3)*(gateKeyWidth+gateKeyGap)
		y := gateKeypadY + float64(i/3)*(gateKeyHeight+gateKeyGap)
		switch key {
		case "←":
			o.addButton(x, y, gateKeyWidth, gateKeyHeight, key, colorGray, func() {
				o.playCue(minigames.CueClick)
				gate.Backspace()
			})
		case "OK":
			o.addButton(x, y, gateKeyWidth, gateKeyHeight, "Entrar", colorGreen, o.submit)
		default:
			digit := rune(key[0])
			o.addButton(x, y, gateKeyWidth, gateKeyHeight, key, colorPrimary, func() {
				o.playCue(minigames.CueClick)
				gate.TypeDigit(digit)
			})
		}
	}

	panelTop := (config.GameWindowHeight - gatePanelHeight) / 2
	o.addButton((config.GameWindowWidth-160)/2, panelTop+gatePanelHeight-60, 160, 44, "Voltar", colorDark, o.deps.Nav.CancelGate)
}

// handleKeyboard 数字键输入、退格删除、回车提交、Esc 取消
func (o *Overlay) handleKeyboard(gate *game.ParentalGate) {
	for _, r := range o.keys.AppendChars(nil) {
		gate.TypeDigit(r)
	}
	switch {
	case o.keys.JustPressed(ebiten.KeyBackspace):
		gate.Backspace()
	case o.keys.JustPressed(ebiten.KeyEnter), o.keys.JustPressed(ebiten.KeyNumpadEnter):
		o.submit()
	case o.keys.JustPressed(ebiten.KeyEscape):
		o.deps.Nav.CancelGate()
	}
}

func (o *Overlay) submit() {
	if o.gate == nil {
		return
	}
	o.deps.Nav.SubmitGate(o.gate.Answer())
}

// Draw 绘制字幕条和打开中的家长验证
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.drawCaption(screen)
	if o.gate == nil || o.deps.Nav.Gate() != o.gate {
		return
	}
	gate := o.gate

	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, colorDim, false)
	left := float32(config.GameWindowWidth-gatePanelWidth) / 2
	top := float32(config.GameWindowHeight-gatePanelHeight) / 2
	utils.DrawRoundedRect(screen, left, top, gatePanelWidth, gatePanelHeight, 24, colorWhite)

	cx := config.GameWindowWidth / 2.0
	utils.DrawCenteredText(screen, "Área dos Adultos", o.titleFont, cx, float64(top)+36, colorDark)
	utils.DrawCenteredText(screen, "Resolva para continuar:", o.smallFont, cx, float64(top)+76, colorText)
	utils.DrawCenteredText(screen, gate.Problem(), o.titleFont, cx, float64(top)+116, colorPrimary)

	// 输入框，光标闪烁
	boxY := float64(top) + 140
	utils.DrawRoundedRect(screen, float32(cx)-80, float32(boxY), 160, 44, 10, colorCream)
	answer := gate.Answer()
	if utils.Pulse(o.elapsed, 1) > 0.5 {
		answer += "_"
	}
	utils.DrawCenteredText(screen, answer, o.titleFont, cx, boxY+22, colorText)
	if msg := gate.Message(); msg != "" {
		utils.DrawCenteredText(screen, msg, o.smallFont, cx, boxY+64, colorRed)
	}

	o.uiLayer.draw(screen)
}

// drawCaption 屏幕底部显示最近一句旁白
func (o *Overlay) drawCaption(screen *ebiten.Image) {
	caption, ok := o.deps.State.Narrator.Caption()
	if !ok {
		return
	}
	y := float32(config.GameWindowHeight - config.CaptionHeight)
	vector.DrawFilledRect(screen, 0, y, config.GameWindowWidth, config.CaptionHeight, colorDim, false)
	lines := utils.WrapText(caption, o.smallFont, config.GameWindowWidth-40)
	if len(lines) > 2 {
		lines = lines[:2]
	}
	lineHeight := config.SmallFontSize * 1.3
	startY := float64(y) + (config.CaptionHeight-float64(len(lines))*lineHeight)/2 + lineHeight/2
	for i, line := range lines {
		utils.DrawCenteredText(screen, line, o.smallFont, config.GameWindowWidth/2, startY+float64(i)*lineHeight, colorWhite)
	}
}
