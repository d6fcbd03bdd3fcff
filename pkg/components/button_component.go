package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的所有数据：外观、文字、状态、回调
//
// 所有可点击的东西都是按钮实体：菜单卡片、记忆牌、调色板、拼图格子。
// 场景每帧把会话状态同步到 Label 和 Color，按钮系统负责交互。
type ButtonComponent struct {
	// Label 按钮上显示的文字（可多行，以 \n 分隔）
	Label string
	// Font 文字字体
	Font *text.GoTextFace
	// Color 背景颜色
	Color color.RGBA
	// TextColor 文字颜色
	TextColor color.RGBA
	// Border 边框颜色，A 为 0 时不绘制边框
	Border color.RGBA

	// Width 按钮宽度（像素）
	Width float64
	// Height 按钮高度（像素）
	Height float64
	// Radius 圆角半径（像素）
	Radius float64

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击，绘制时变暗）
	Enabled bool
	// Hidden 隐藏的按钮既不绘制也不响应
	Hidden bool

	// OnClick 点击回调函数（指针在按钮内释放时触发）
	OnClick func()
}
