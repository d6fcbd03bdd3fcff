package systems

import (
	"testing"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/components"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/ecs"
)

// TestButtonSystemStates 测试悬停、按下、释放的状态流转
func TestButtonSystemStates(t *testing.T) {
	em := ecs.NewEntityManager()
	input := &mockPointer{}
	clicks := 0
	button := addButton(em, 100, 100, func() { clicks++ })
	system := NewButtonSystem(em, input)

	tests := []struct {
		name      string
		pointer   mockPointer
		wantState components.UIState
		wantClick int
	}{
		{"指针在按钮外", mockPointer{x: 10, y: 10}, components.UINormal, 0},
		{"悬停", mockPointer{x: 150, y: 120}, components.UIHovered, 0},
		{"按下", mockPointer{x: 150, y: 120, pressed: true}, components.UIClicked, 0},
		{"在按钮内释放", mockPointer{x: 150, y: 120, released: true}, components.UIHovered, 1},
		{"在按钮外释放", mockPointer{x: 300, y: 120, released: true}, components.UINormal, 1},
	}

	for _, tt := range tests {
		*input = tt.pointer
		system.Update(1.0 / 60.0)
		if button.State != tt.wantState {
			t.Errorf("%s: state = %s, want %s", tt.name, button.State, tt.wantState)
		}
		if clicks != tt.wantClick {
			t.Errorf("%s: clicks = %d, want %d", tt.name, clicks, tt.wantClick)
		}
	}
}

// TestButtonSystemDisabledAndHidden 测试禁用和隐藏的按钮不响应
func TestButtonSystemDisabledAndHidden(t *testing.T) {
	em := ecs.NewEntityManager()
	input := &mockPointer{x: 150, y: 120, released: true}
	clicks := 0
	disabled := addButton(em, 100, 100, func() { clicks++ })
	disabled.Enabled = false
	hidden := addButton(em, 100, 100, func() { clicks++ })
	hidden.Hidden = true

	if NewButtonSystem(em, input).Update(1.0 / 60.0) {
		t.Error("Update should report no click")
	}
	if clicks != 0 {
		t.Errorf("disabled or hidden buttons must not click, got %d", clicks)
	}
	if disabled.State != components.UIDisabled {
		t.Errorf("disabled button state = %s", disabled.State)
	}
	if hidden.State != components.UINormal {
		t.Errorf("hidden button state = %s", hidden.State)
	}
}

// TestButtonSystemOneClickPerFrame 重叠的按钮每帧只触发一个回调
func TestButtonSystemOneClickPerFrame(t *testing.T) {
	em := ecs.NewEntityManager()
	input := &mockPointer{x: 150, y: 120, released: true}
	var order []string
	addButton(em, 100, 100, func() { order = append(order, "first") })
	addButton(em, 120, 110, func() { order = append(order, "second") })

	if !NewButtonSystem(em, input).Update(1.0 / 60.0) {
		t.Error("Update should report a click")
	}
	if len(order) != 1 || order[0] != "first" {
		t.Errorf("expected only the first button to fire, got %v", order)
	}
}

// TestButtonSystemClickRebuildsEntities 回调中清空实体不会影响本帧
func TestButtonSystemClickRebuildsEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	input := &mockPointer{x: 150, y: 120, released: true}
	addButton(em, 100, 100, func() { em.Reset() })

	NewButtonSystem(em, input).Update(1.0 / 60.0)
	if em.Count() != 0 {
		t.Errorf("expected entities to be cleared by the callback, got %d", em.Count())
	}
}
