package systems

import (
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/components"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/ecs"
)

// mockPointer 用于测试的 mock 指针输入
type mockPointer struct {
	x, y     int
	pressed  bool
	released bool
}

func (m *mockPointer) Position() (int, int) { return m.x, m.y }
func (m *mockPointer) Pressed() bool        { return m.pressed }
func (m *mockPointer) JustReleased() bool   { return m.released }

// addButton 在 (x, y) 创建 100x50 的按钮实体
func addButton(em *ecs.EntityManager, x, y float64, onClick func()) *components.ButtonComponent {
	id := em.CreateEntity()
	button := &components.ButtonComponent{
		Width:   100,
		Height:  50,
		Enabled: true,
		OnClick: onClick,
	}
	em.AddComponent(id, button)
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	return button
}
