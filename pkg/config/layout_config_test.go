package config

import (
	"math"
	"testing"
)

// TestLaneCenterY 测试跑道中心坐标计算
func TestLaneCenterY(t *testing.T) {
	laneHeight := RunnerFieldHeight / 3

	tests := []struct {
		name  string
		lane  int
		lanes int
		want  float64
	}{
		{"第一条跑道", 0, 3, RunnerFieldY + laneHeight/2},
		{"中间跑道", 1, 3, RunnerFieldY + laneHeight*1.5},
		{"最后一条跑道", 2, 3, RunnerFieldY + laneHeight*2.5},
		{"跑道数非法", 1, 0, RunnerFieldY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LaneCenterY(tt.lane, tt.lanes)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("LaneCenterY(%d, %d) = %.3f, want %.3f", tt.lane, tt.lanes, got, tt.want)
			}
		})
	}
}

// TestEnergyToScreen 测试百分比坐标映射
func TestEnergyToScreen(t *testing.T) {
	x, y := EnergyToScreen(50, 100)
	if x != GameWindowWidth/2 {
		t.Errorf("x: expected %d, got %.1f", GameWindowWidth/2, x)
	}
	if y != EnergyFieldY+EnergyFieldHeight {
		t.Errorf("y: expected %.1f, got %.1f", EnergyFieldY+EnergyFieldHeight, y)
	}

	_, top := EnergyToScreen(0, 0)
	if top != EnergyFieldY {
		t.Errorf("top: expected %.1f, got %.1f", EnergyFieldY, top)
	}
}

// TestGridCellOrigin 测试网格布局居中
func TestGridCellOrigin(t *testing.T) {
	x0, y0 := GridCellOrigin(0, 4, 100, 10, 50)
	x3, _ := GridCellOrigin(3, 4, 100, 10, 50)
	_, y4 := GridCellOrigin(4, 4, 100, 10, 50)

	// 左右边距相等
	left := x0
	right := GameWindowWidth - (x3 + 100)
	if math.Abs(left-right) > 0.001 {
		t.Errorf("grid not centred: left=%.1f right=%.1f", left, right)
	}
	if y0 != 50 {
		t.Errorf("first row y: expected 50, got %.1f", y0)
	}
	if y4 != 160 {
		t.Errorf("second row y: expected 160, got %.1f", y4)
	}
}
