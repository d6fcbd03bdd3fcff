package systems

import (
	"fmt"
	"math"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/components"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/ecs"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

// SliderSystem 滑块交互系统
// 负责处理滑块的拖拽交互
//
// 职责：
//   - 检测指针是否在滑槽区域内
//   - 检测按下/拖拽状态
//   - 计算点击位置并转换为 0.0~1.0 的 Value（按 Step 量化）
//   - 更新 SliderComponent.Value 并调用 OnValueChange 回调
type SliderSystem struct {
	entityManager *ecs.EntityManager
	input         utils.PointerInput
}

// NewSliderSystem 创建滑块交互系统
// input 为 nil 时读取真实鼠标和触摸
func NewSliderSystem(em *ecs.EntityManager, input utils.PointerInput) *SliderSystem {
	if input == nil {
		input = utils.DefaultPointer
	}
	return &SliderSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 更新滑块交互状态
func (s *SliderSystem) Update(deltaTime float64) {
	mouseX, mouseY := s.input.Position()
	pressed := s.input.Pressed()

	entities := ecs.GetEntitiesWith2[*components.SliderComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		slider, _ := ecs.GetComponent[*components.SliderComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if slider.Hidden {
			slider.IsDragging = false
			slider.IsHovered = false
			continue
		}

		// 滑块半径向两侧扩展的可点击区域
		knob := slider.Height
		inSlot := utils.InRect(float64(mouseX), float64(mouseY), pos.X-knob/2, pos.Y-knob/2, slider.Width+knob, slider.Height+knob)
		slider.IsHovered = inSlot

		wasDragging := slider.IsDragging
		if !pressed {
			slider.IsDragging = false
			if wasDragging && slider.OnRelease != nil {
				slider.OnRelease()
			}
			continue
		}
		if !inSlot && !slider.IsDragging {
			continue
		}
		slider.IsDragging = true

		newValue := quantize(calculateValue(float64(mouseX), pos.X, slider.Width), slider.Step)
		if newValue != slider.Value {
			slider.Value = newValue
			if slider.OnValueChange != nil {
				slider.OnValueChange(newValue)
			}
		}
	}
}

// calculateValue 根据指针X坐标计算滑块值，结果截断到 [0, 1]
func calculateValue(mouseX, slotX, slotWidth float64) float64 {
	if slotWidth <= 0 {
		return 0.0
	}
	return utils.Clamp01((mouseX - slotX) / slotWidth)
}

// quantize 按步长取整，消除浮点误差
func quantize(value, step float64) float64 {
	if step <= 0 {
		return value
	}
	q := math.Round(value/step) * step
	return math.Round(q*1e6) / 1e6
}

// percentLabel 把 0~1 的值格式化为百分比
func percentLabel(value float64) string {
	return fmt.Sprintf("%d%%", int(value*100+0.5))
}
