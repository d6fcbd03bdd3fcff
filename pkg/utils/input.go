// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerInput 指针输入来源（鼠标或触摸）
// UI 系统通过此接口读取输入，测试时注入 mock
type PointerInput interface {
	// Position 返回当前指针位置
	Position() (int, int)
	// Pressed 指针是否处于按下状态
	Pressed() bool
	// JustReleased 本帧是否刚刚释放
	JustReleased() bool
}

// ebitenPointer 基于 Ebitengine 的默认实现
type ebitenPointer struct{}

func (ebitenPointer) Position() (int, int) {
	return GetPointerPosition()
}

func (ebitenPointer) Pressed() bool {
	return IsPointerPressed()
}

func (ebitenPointer) JustReleased() bool {
	released, _, _ := IsPointerJustReleased()
	return released
}

// DefaultPointer 读取真实鼠标和触摸输入
var DefaultPointer PointerInput = ebitenPointer{}

// KeyInput 键盘输入来源
// 家长验证、跑道游戏和实验室通过此接口读取按键，测试时注入 mock
type KeyInput interface {
	// AppendChars 追加本帧输入的字符
	AppendChars(chars []rune) []rune
	// JustPressed 按键本帧是否刚刚按下
	JustPressed(key ebiten.Key) bool
}

// ebitenKeys 基于 Ebitengine 的默认实现
type ebitenKeys struct{}

func (ebitenKeys) AppendChars(chars []rune) []rune {
	return ebiten.AppendInputChars(chars)
}

func (ebitenKeys) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// DefaultKeys 读取真实键盘输入
var DefaultKeys KeyInput = ebitenKeys{}

// InRect 点 (x, y) 是否落在矩形内（含边界）
func InRect(x, y, rx, ry, rw, rh float64) bool {
	return x >= rx && x <= rx+rw && y >= ry && y <= ry+rh
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		lastTouchX, lastTouchY = x, y
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// IsPointerPressed 检查是否有指针按下（鼠标左键或触摸）
func IsPointerPressed() bool {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// 保存最后一次触摸位置（用于触摸释放时获取位置）
var lastTouchX, lastTouchY int

// UpdateLastTouchPosition 更新最后一次触摸位置
// 应该在每帧更新时调用
func UpdateLastTouchPosition() {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
	}
}

// IsPointerJustReleased 检查是否刚刚释放指针（触摸或鼠标）
// 返回是否释放以及释放位置
func IsPointerJustReleased() (bool, int, int) {
	// 触摸释放时使用保存的最后触摸位置
	releasedTouchIDs := inpututil.AppendJustReleasedTouchIDs(nil)
	if len(releasedTouchIDs) > 0 {
		return true, lastTouchX, lastTouchY
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
