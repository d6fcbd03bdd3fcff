package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/synth"
)

// AudioManager 音频管理器
// 职责：
//   - 把音效名合成为 PCM 并单次播放
//   - 为背景音乐调度器播放音符
//   - 从 SettingsManager 读取音量设置
//
// 每次播放都创建独立的播放器，重叠的请求互不影响。
// 没有音频上下文时所有播放都是空操作。
type AudioManager struct {
	context         *audio.Context   // 音频上下文，可为 nil（静音）
	settingsManager *SettingsManager // 设置管理器（用于读取音量设置，可为 nil）
	players         []*audio.Player  // 正在播放的播放器

	// output 播放 PCM，测试中可替换
	output func(pcm []byte)
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: 音频上下文（采样率必须是 synth.SampleRate，可为 nil）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		context:         ctx,
		settingsManager: sm,
	}
	if ctx != nil {
		if supportsSampleRate(ctx.SampleRate()) {
			am.output = am.playPCM
		} else {
			log.Printf("[AudioManager] Context sample rate %d does not match %d, audio disabled", ctx.SampleRate(), synth.SampleRate)
		}
	}
	return am
}

// supportsSampleRate 合成的 PCM 只能在 synth.SampleRate 的上下文中播放
func supportsSampleRate(rate int) bool {
	return rate == synth.SampleRate
}

// PlayCue 播放音效
// 音效使用 SoundVolume 设置控制音量，音量为 0 时不播放
//
// 参数：
//   - cue: 音效名（click、pop、success、error、hero）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlayCue(cue string) bool {
	if am.output == nil || cue == "" {
		return false
	}

	voice, ok := synth.CueVoice(cue, am.getSoundVolume())
	if !ok {
		return false
	}
	am.output(voice.Render())
	return true
}

// PlayNote 播放背景音乐音符
// 音符使用播放时刻的 MusicVolume，音量变化只影响之后的音符
//
// 参数：
//   - freq: 音高（Hz）
//   - delay: 距离现在多少秒后开始发声
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlayNote(freq, delay float64) bool {
	if am.output == nil {
		return false
	}
	volume := am.getMusicVolume()
	if volume <= 0 {
		return false
	}
	am.output(synth.NoteVoice(freq, volume).RenderDelayed(delay))
	return true
}

// playPCM 创建一个新的播放器播放 PCM，并回收已经播放完的播放器
func (am *AudioManager) playPCM(pcm []byte) {
	am.prune()
	player := am.context.NewPlayerFromBytes(pcm)
	player.Play()
	am.players = append(am.players, player)
}

// prune 关闭已经播放完的播放器
func (am *AudioManager) prune() {
	kept := am.players[:0]
	for _, p := range am.players {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		if err := p.Close(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to close player: %v", err)
		}
	}
	am.players = kept
}

// ActivePlayers 返回正在播放的播放器数量
func (am *AudioManager) ActivePlayers() int {
	am.prune()
	return len(am.players)
}

// getMusicVolume 获取音乐音量设置
func (am *AudioManager) getMusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return DefaultSettings().MusicVolume
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}
