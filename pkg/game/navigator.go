package game

import (
	"log"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
)

// Screen 应用中的一个画面
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenHome
	ScreenMenu
	ScreenStickers
	ScreenMemory
	ScreenSorting
	ScreenGarden
	ScreenPainting
	ScreenRunner
	ScreenFriendship
	ScreenEnergy
	ScreenPuzzle
	ScreenLab
	ScreenSettings
)

// screenNames 画面名称（菜单配置和 --screen 参数使用）
var screenNames = map[Screen]string{
	ScreenLoading:    "loading",
	ScreenHome:       "home",
	ScreenMenu:       "menu",
	ScreenStickers:   "stickers",
	ScreenMemory:     "memory",
	ScreenSorting:    "sorting",
	ScreenGarden:     "garden",
	ScreenPainting:   "painting",
	ScreenRunner:     "runner",
	ScreenFriendship: "friendship",
	ScreenEnergy:     "energy",
	ScreenPuzzle:     "puzzle",
	ScreenLab:        "lab",
	ScreenSettings:   "settings",
}

// String 返回画面名称
func (s Screen) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseScreen 解析画面名称
func ParseScreen(name string) (Screen, bool) {
	for s, n := range screenNames {
		if n == name {
			return s, true
		}
	}
	return ScreenLoading, false
}

// Gated 进入该画面是否需要通过家长验证
func (s Screen) Gated() bool {
	return s == ScreenLab || s == ScreenSettings
}

// BackTarget 在该画面按"返回"时前往的画面
func (s Screen) BackTarget() Screen {
	switch s {
	case ScreenSettings, ScreenMenu, ScreenHome, ScreenLoading:
		return ScreenHome
	default:
		return ScreenMenu
	}
}

// CuePlayer 播放音效的能力（AudioManager 实现）
type CuePlayer interface {
	PlayCue(cue string) bool
}

// Navigator 画面导航
// 记录当前画面，保证同一时间只有一个场景处于活动状态；
// 需要家长验证的画面先打开验证，通过后才切换。
type Navigator struct {
	scenes  *SceneManager
	cues    CuePlayer
	rng     minigames.Random
	current Screen
	gate    *ParentalGate
}

// NewNavigator 创建导航器
//
// 参数：
//   - scenes: 场景管理器（必须已设置工厂函数）
//   - cues: 音效播放器，可为 nil
//   - rng: 家长验证题目的随机数来源，为 nil 时使用时间种子
func NewNavigator(scenes *SceneManager, cues CuePlayer, rng minigames.Random) *Navigator {
	if rng == nil {
		rng = minigames.NewRandom()
	}
	return &Navigator{
		scenes:  scenes,
		cues:    cues,
		rng:     rng,
		current: ScreenLoading,
	}
}

// NavigateTo 前往指定画面
// 需要验证的画面打开家长验证并记住目标，其他画面立即切换
func (n *Navigator) NavigateTo(screen Screen) {
	n.playClick()
	if screen.Gated() {
		n.gate = NewParentalGate(screen, n.rng)
		log.Printf("[Navigator] Parental gate opened for %s", screen)
		return
	}
	n.open(screen)
}

// Back 返回上一级画面
func (n *Navigator) Back() {
	n.NavigateTo(n.current.BackTarget())
}

// Open 不经过验证直接切换（启动时和 --screen 参数使用）
func (n *Navigator) Open(screen Screen) {
	n.gate = nil
	n.open(screen)
}

func (n *Navigator) open(screen Screen) {
	if n.scenes.Load(screen) {
		n.current = screen
	}
}

// Gate 返回打开中的家长验证，未打开时为 nil
func (n *Navigator) Gate() *ParentalGate {
	return n.gate
}

// SubmitGate 提交家长验证的答案
//
// 返回：
//   - bool: 答对时切换到目标画面并返回 true
func (n *Navigator) SubmitGate(answer string) bool {
	if n.gate == nil {
		return false
	}
	if !n.gate.Submit(answer) {
		n.playCue(string(minigames.CueError))
		return false
	}
	pending := n.gate.Pending()
	n.gate = nil
	n.open(pending)
	return true
}

// CancelGate 关闭家长验证，留在当前画面
func (n *Navigator) CancelGate() {
	if n.gate == nil {
		return
	}
	n.playClick()
	n.gate = nil
}

// Current 返回当前画面
func (n *Navigator) Current() Screen {
	return n.current
}

func (n *Navigator) playClick() {
	n.playCue(string(minigames.CueClick))
}

func (n *Navigator) playCue(cue string) {
	if n.cues != nil {
		n.cues.PlayCue(cue)
	}
}
