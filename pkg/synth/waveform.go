// Package synth 程序化合成音效与背景音乐音符
//
// 所有声音都由振荡器 + 频率包络 + 增益包络描述，渲染为 48kHz 立体声
// 16 位小端 PCM，可直接交给 ebiten 的 audio.Context.NewPlayerFromBytes 播放。
package synth

import "math"

// SampleRate 渲染采样率，与音频上下文保持一致
const SampleRate = 48000

// bytesPerFrame 立体声 16 位，每帧 4 字节
const bytesPerFrame = 4

// Waveform 振荡器波形
type Waveform int

const (
	Sine Waveform = iota
	Triangle
	Square
	Sawtooth
)

// String 返回波形名称
func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	default:
		return "unknown"
	}
}

// Sample 返回波形在相位 phase（周期的比例，[0,1)）处的取值，范围 [-1,1]
// 所有波形在相位 0 处从 0 开始上升（方波除外），与常见合成器一致
func (w Waveform) Sample(phase float64) float64 {
	phase -= math.Floor(phase)
	switch w {
	case Triangle:
		p := phase + 0.25
		if p >= 1 {
			p--
		}
		return 1 - 4*math.Abs(p-0.5)
	case Square:
		if phase < 0.5 {
			return 1
		}
		return -1
	case Sawtooth:
		p := phase + 0.5
		if p >= 1 {
			p--
		}
		return 2*p - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
