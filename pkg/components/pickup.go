package components

// PickupKind 跑道上物体的种类
type PickupKind int

const (
	// PickupStar 星星，碰到后加分
	PickupStar PickupKind = iota
	// PickupObstacle 石头，碰到后游戏结束
	PickupObstacle
)

// String 返回物体种类名称
func (k PickupKind) String() string {
	if k == PickupObstacle {
		return "obstacle"
	}
	return "star"
}

// PickupComponent 跑道上的可碰撞物体
type PickupComponent struct {
	Kind PickupKind
}
