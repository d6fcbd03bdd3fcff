package utils

import "testing"

// TestInRect 测试点与矩形的命中判定
func TestInRect(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"中心", 150, 125, true},
		{"左上角", 100, 100, true},
		{"右下角", 200, 150, true},
		{"左侧外", 99, 125, false},
		{"下方外", 150, 151, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InRect(tt.x, tt.y, 100, 100, 100, 50); got != tt.want {
				t.Errorf("InRect(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
