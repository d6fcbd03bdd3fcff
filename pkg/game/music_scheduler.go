package game

import (
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/synth"
)

// 背景音乐调度参数
const (
	musicPollInterval = 0.025 // 调度器轮询间隔（秒）
	musicLookahead    = 0.1   // 提前调度的时间窗口（秒）
	musicStartDelay   = 0.1   // 开始后第一个音符的延迟（秒）
	musicNoteChance   = 0.7   // 每个音符位置发声的概率
	musicNoteStep     = 0.25  // 八分音符间隔（秒）
	musicNoteJitter   = 0.05  // 间隔的随机抖动上限（秒）
)

// NotePlayer 播放单个音符的能力（AudioManager 实现）
type NotePlayer interface {
	PlayNote(freq, delay float64) bool
}

// MusicScheduler 背景音乐调度器
//
// 由游戏循环推进的"预读"调度器：每 25ms 检查一次，把接下来 0.1 秒内
// 的音符位置安排好。每个位置有 70% 的概率从五声音阶中随机选一个音，
// 位置之间间隔 0.25 秒加一点随机抖动。
// 调度器只在设置中启用音乐时运行。
type MusicScheduler struct {
	player   NotePlayer
	settings *SettingsManager
	rng      minigames.Random

	now      float64 // 调度器时钟（秒）
	nextNote float64 // 下一个音符位置
	poll     float64 // 距离上次轮询经过的时间
	running  bool
}

// NewMusicScheduler 创建背景音乐调度器
//
// 参数：
//   - player: 音符播放器
//   - settings: 设置管理器（决定是否运行，可为 nil 表示始终运行）
//   - rng: 随机数来源，为 nil 时使用时间种子
func NewMusicScheduler(player NotePlayer, settings *SettingsManager, rng minigames.Random) *MusicScheduler {
	if rng == nil {
		rng = minigames.NewRandom()
	}
	return &MusicScheduler{
		player:   player,
		settings: settings,
		rng:      rng,
	}
}

// Start 开始调度，第一个音符在 0.1 秒后
func (ms *MusicScheduler) Start() {
	if ms.running {
		return
	}
	ms.running = true
	ms.nextNote = ms.now + musicStartDelay
	ms.poll = 0
	ms.schedule()
}

// Stop 停止调度，已经安排的音符会自然结束
func (ms *MusicScheduler) Stop() {
	ms.running = false
}

// Running 调度器是否在运行
func (ms *MusicScheduler) Running() bool {
	return ms.running
}

// Update 推进调度器时钟，并根据音乐开关启动或停止
func (ms *MusicScheduler) Update(dt float64) {
	ms.now += dt

	enabled := ms.settings == nil || ms.settings.GetSettings().MusicEnabled
	switch {
	case enabled && !ms.running:
		ms.Start()
		return
	case !enabled && ms.running:
		ms.Stop()
	}
	if !ms.running {
		return
	}

	ms.poll += dt
	if ms.poll+1e-9 < musicPollInterval {
		return
	}
	ms.poll = 0
	ms.schedule()
}

// schedule 安排预读窗口内的所有音符位置
func (ms *MusicScheduler) schedule() {
	for ms.nextNote < ms.now+musicLookahead {
		if ms.rng.Float64() < musicNoteChance && ms.player != nil {
			pitch := synth.Pentatonic[ms.rng.IntN(len(synth.Pentatonic))]
			delay := ms.nextNote - ms.now
			if delay < 0 {
				delay = 0
			}
			ms.player.PlayNote(pitch, delay)
		}
		ms.nextNote += musicNoteStep + ms.rng.Float64()*musicNoteJitter
	}
}
