package synth

// 音符频率（Hz）
const (
	NoteC4  = 261.63
	NoteD4  = 293.66
	NoteE4  = 329.63
	NoteG4  = 392.00
	NoteA4  = 440.00
	NoteC5  = 523.25
	NoteCs5 = 554.00
	NoteE5  = 659.25
)

// Pentatonic 背景音乐使用的 C 大调五声音阶
var Pentatonic = []float64{NoteC4, NoteD4, NoteE4, NoteG4, NoteA4, NoteC5}

// 背景音乐音符的包络参数
const (
	noteAttack   = 0.05
	noteDecayEnd = 0.8
	noteLength   = 1.0
	noteMaxGain  = 0.1
	noteFloor    = 0.001
)

// cueFloor 音效指数衰减的终点增益，不随音量缩放
const cueFloor = 0.01

// CueVoice 返回音效名对应的声音
//
// 参数：
//   - name: 音效名（click、pop、success、error、hero）
//   - volume: 音效音量 (0.0 ~ 1.0)
//
// 返回：
//   - Voice: 声音描述
//   - bool: 音效名未知或音量为 0 时返回 false
func CueVoice(name string, volume float64) (Voice, bool) {
	if volume <= 0 {
		return Voice{}, false
	}

	switch name {
	case "click":
		return Voice{
			Wave:     Sine,
			Freq:     Envelope{{At: 0, Value: 800}, {At: 0.1, Value: 1200, Ramp: Exponential}},
			Gain:     Envelope{{At: 0, Value: 0.3 * volume}, {At: 0.1, Value: cueFloor, Ramp: Exponential}},
			Duration: 0.1,
		}, true
	case "pop":
		return Voice{
			Wave:     Triangle,
			Freq:     Envelope{{At: 0, Value: 400}, {At: 0.1, Value: 600, Ramp: Linear}},
			Gain:     Envelope{{At: 0, Value: 0.5 * volume}, {At: 0.15, Value: cueFloor, Ramp: Exponential}},
			Duration: 0.15,
		}, true
	case "success":
		return Voice{
			Wave: Square,
			Freq: Envelope{{At: 0, Value: NoteC5}, {At: 0.1, Value: NoteE5}},
			Gain: Envelope{
				{At: 0, Value: 0.1 * volume},
				{At: 0.2, Value: 0.1 * volume, Ramp: Linear},
				{At: 0.4, Value: cueFloor, Ramp: Exponential},
			},
			Duration: 0.4,
		}, true
	case "error":
		return Voice{
			Wave:     Sawtooth,
			Freq:     Envelope{{At: 0, Value: 150}, {At: 0.2, Value: 100, Ramp: Linear}},
			Gain:     Envelope{{At: 0, Value: 0.3 * volume}, {At: 0.3, Value: cueFloor, Ramp: Exponential}},
			Duration: 0.3,
		}, true
	case "hero":
		return Voice{
			Wave:     Triangle,
			Freq:     Envelope{{At: 0, Value: NoteA4}, {At: 0.1, Value: NoteCs5}, {At: 0.2, Value: 659}},
			Gain:     Envelope{{At: 0, Value: 0.2 * volume}, {At: 0.6, Value: 0, Ramp: Linear}},
			Duration: 0.6,
		}, true
	}
	return Voice{}, false
}

// NoteVoice 返回背景音乐的一个音符：三角波，0.05 秒线性起音，
// 0.8 秒时指数衰减到几乎无声，总长 1 秒
func NoteVoice(freq, volume float64) Voice {
	return Voice{
		Wave: Triangle,
		Freq: Constant(freq),
		Gain: Envelope{
			{At: 0, Value: 0},
			{At: noteAttack, Value: noteMaxGain * volume, Ramp: Linear},
			{At: noteDecayEnd, Value: noteFloor, Ramp: Exponential},
		},
		Duration: noteLength,
	}
}
