package components

// CollisionComponent 定义实体的碰撞检测边界框
// 跑道游戏用它与玩家判定重叠（只比较 X 方向，跑道相同即视为 Y 方向重叠）
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度（像素）
	Height  float64 // 碰撞盒高度（像素）
	OffsetX float64 // 碰撞盒相对于实体位置的X偏移量（像素），正值向右偏移
	OffsetY float64 // 碰撞盒相对于实体位置的Y偏移量（像素），正值向下偏移
}

// OverlapsX 判断两个区间 [x, x+w) 是否重叠
func (c *CollisionComponent) OverlapsX(x, otherX, otherWidth float64) bool {
	left := x + c.OffsetX
	return left < otherX+otherWidth && left+c.Width > otherX
}
