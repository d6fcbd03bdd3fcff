package synth

import "math"

// Voice 一个振荡器发出的一段声音
type Voice struct {
	Wave     Waveform
	Freq     Envelope // Hz
	Gain     Envelope // 线性增益
	Duration float64  // 秒
}

// Frames 返回渲染的采样帧数
func (v Voice) Frames() int {
	if v.Duration <= 0 {
		return 0
	}
	return int(math.Round(v.Duration * SampleRate))
}

// Render 渲染为立体声 S16LE PCM
func (v Voice) Render() []byte {
	return v.RenderDelayed(0)
}

// RenderDelayed 在声音前插入 delay 秒静音后渲染
// 背景音乐用它把音符放到预定的时刻开始
func (v Voice) RenderDelayed(delay float64) []byte {
	lead := 0
	if delay > 0 {
		lead = int(math.Round(delay * SampleRate))
	}
	frames := v.Frames()
	buf := make([]byte, (lead+frames)*bytesPerFrame)

	phase := 0.0
	out := buf[lead*bytesPerFrame:]
	for i := 0; i < frames; i++ {
		t := float64(i) / SampleRate
		s := v.Wave.Sample(phase) * v.Gain.ValueAt(t)
		phase += v.Freq.ValueAt(t) / SampleRate

		pcm := toInt16(s)
		off := i * bytesPerFrame
		out[off] = byte(pcm)
		out[off+1] = byte(pcm >> 8)
		out[off+2] = byte(pcm)
		out[off+3] = byte(pcm >> 8)
	}
	return buf
}

// toInt16 把 [-1,1] 的浮点采样量化为 16 位整数
func toInt16(s float64) int16 {
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	return int16(math.Round(s * math.MaxInt16))
}

// Peak 返回 PCM 中左声道的最大绝对值，测试和调试用
func Peak(pcm []byte) int {
	peak := 0
	for off := 0; off+1 < len(pcm); off += bytesPerFrame {
		v := int(int16(uint16(pcm[off]) | uint16(pcm[off+1])<<8))
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}
