package components

// PositionComponent 实体的位置
// 跑道游戏使用屏幕像素，能量游戏使用百分比坐标 (0~100)
type PositionComponent struct {
	X float64
	Y float64
}
