package synth

import (
	"math"
	"sort"
)

// Ramp 从上一个控制点到当前控制点的过渡方式
type Ramp int

const (
	// Step 在控制点时刻直接跳变
	Step Ramp = iota
	// Linear 线性过渡
	Linear
	// Exponential 指数过渡（两端必须同号且非零，否则保持上一个值）
	Exponential
)

// Point 包络控制点
type Point struct {
	At    float64 // 秒
	Value float64
	Ramp  Ramp
}

// Envelope 分段包络，最后一个控制点之后保持不变
type Envelope []Point

// Constant 返回恒定值包络
func Constant(v float64) Envelope {
	return Envelope{{At: 0, Value: v}}
}

// ValueAt 返回 t 秒时的包络值
func (e Envelope) ValueAt(t float64) float64 {
	if len(e) == 0 {
		return 0
	}
	// 第一个 At > t 的控制点
	i := sort.Search(len(e), func(i int) bool { return e[i].At > t })
	if i == 0 {
		return e[0].Value
	}
	prev := e[i-1]
	if i == len(e) {
		return prev.Value
	}

	next := e[i]
	span := next.At - prev.At
	if span <= 0 {
		return prev.Value
	}
	frac := (t - prev.At) / span

	switch next.Ramp {
	case Linear:
		return prev.Value + (next.Value-prev.Value)*frac
	case Exponential:
		if prev.Value == 0 || next.Value == 0 || (prev.Value > 0) != (next.Value > 0) {
			return prev.Value
		}
		return prev.Value * math.Pow(next.Value/prev.Value, frac)
	default:
		return prev.Value
	}
}
