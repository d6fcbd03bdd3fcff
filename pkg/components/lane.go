package components

// LaneComponent 标记实体所在的跑道（0 开始）
type LaneComponent struct {
	Lane int
}
