package systems

import (
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/components"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/ecs"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的指针悬停、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测指针在按钮内释放（触发 OnClick 回调）
//   - 根据 Enabled 和 Hidden 决定是否响应交互
//
// 每帧最多触发一个 OnClick：回调可能切换场景或重建按钮。
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	input         utils.PointerInput
}

// NewButtonSystem 创建按钮交互系统
//
// 参数：
//   - em: 实体管理器
//   - input: 指针输入，为 nil 时读取真实鼠标和触摸
func NewButtonSystem(em *ecs.EntityManager, input utils.PointerInput) *ButtonSystem {
	if input == nil {
		input = utils.DefaultPointer
	}
	return &ButtonSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 更新按钮交互状态
//
// 返回：
//   - bool: 本帧是否有按钮被点击
func (s *ButtonSystem) Update(deltaTime float64) bool {
	x, y := s.input.Position()
	pressed := s.input.Pressed()
	released := s.input.JustReleased()

	var clicked func()
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if button.Hidden {
			button.State = components.UINormal
			continue
		}
		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !utils.InRect(float64(x), float64(y), pos.X, pos.Y, button.Width, button.Height) {
			button.State = components.UINormal
			continue
		}

		switch {
		case pressed:
			button.State = components.UIClicked
		case released && clicked == nil:
			clicked = button.OnClick
			if clicked == nil {
				clicked = func() {}
			}
			button.State = components.UIHovered
		default:
			button.State = components.UIHovered
		}
	}

	if clicked != nil {
		clicked()
		return true
	}
	return false
}
