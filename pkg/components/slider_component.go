package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SliderComponent 滑动条组件
// 用于音量控制等需要滑动调整数值的UI元素
type SliderComponent struct {
	// 滑槽尺寸，滑块直径等于滑槽高度
	Width  float64
	Height float64

	// 当前值（0.0 - 1.0）
	Value float64
	// Step 量化步长，0 表示连续
	Step float64

	// 标签文字，显示在滑槽上方，后接百分比
	Label string
	Font  *text.GoTextFace

	// 颜色
	TrackColor color.RGBA
	FillColor  color.RGBA

	// 状态
	IsDragging bool // 是否正在拖动
	IsHovered  bool // 是否鼠标悬停
	Hidden     bool // 隐藏时不绘制也不响应

	// 回调函数
	OnValueChange func(value float64) // 值改变时的回调
	OnRelease     func()              // 拖动结束时的回调（播放试听音效）
}
