package components

import "testing"

// TestCollisionOverlapsX 测试 X 方向重叠判定
func TestCollisionOverlapsX(t *testing.T) {
	item := &CollisionComponent{Width: 50}

	tests := []struct {
		name   string
		itemX  float64
		expect bool
	}{
		{"物体在玩家右侧", 90, false},
		{"物体刚接触玩家右边缘", 89.9, true},
		{"物体与玩家完全重叠", 50, true},
		{"物体刚离开玩家左边缘", 0, false},
		{"物体部分在玩家左侧", 0.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 玩家位于 x=50，宽度 40
			if got := item.OverlapsX(tt.itemX, 50, 40); got != tt.expect {
				t.Errorf("OverlapsX(%.1f) = %v, want %v", tt.itemX, got, tt.expect)
			}
		})
	}
}

// TestKindNames 测试种类名称
func TestKindNames(t *testing.T) {
	if PickupStar.String() != "star" || PickupObstacle.String() != "obstacle" {
		t.Error("unexpected pickup kind names")
	}
	names := []string{}
	for _, k := range FloaterKinds {
		names = append(names, k.String())
	}
	want := []string{"sun", "star", "smile", "lightning"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("floater kind %d: expected %s, got %s", i, want[i], names[i])
		}
	}
}
