package components

// FloaterKind 能量游戏中漂浮物的种类（只影响外观）
type FloaterKind int

const (
	FloaterSun FloaterKind = iota
	FloaterStar
	FloaterSmile
	FloaterLightning
)

// FloaterKinds 全部漂浮物种类，用于均匀随机选择
var FloaterKinds = []FloaterKind{FloaterSun, FloaterStar, FloaterSmile, FloaterLightning}

// String 返回漂浮物种类名称
func (k FloaterKind) String() string {
	switch k {
	case FloaterSun:
		return "sun"
	case FloaterStar:
		return "star"
	case FloaterSmile:
		return "smile"
	case FloaterLightning:
		return "lightning"
	default:
		return "unknown"
	}
}

// FloaterComponent 向上漂浮、可点击的能量气球
type FloaterComponent struct {
	Kind  FloaterKind
	Speed float64 // 每 16 毫秒上升的百分比
}
