package game

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/internal/speech"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
)

// GameState 跨场景共享的服务
// 在启动时构造一次，由 App 持有并传给场景工厂
type GameState struct {
	Games     *config.GamesConfig
	Resources *ResourceManager
	Settings  *SettingsManager
	Stickers  *StickerLedger
	Audio     *AudioManager
	Music     *MusicScheduler
	Narrator  *Narrator
}

// Options 构造 GameState 的依赖，零值字段表示不可用
type Options struct {
	Store        PropStore      // 持久化存储，nil 为仅内存模式
	AudioContext *audio.Context // 音频上下文，nil 为静音
	Speech       speech.Engine  // 语音引擎，nil 为仅字幕
	Random       minigames.Random
}

// NewGameState 构造全部共享服务
//
// 参数：
//   - games: 已加载的小游戏配置
//   - opts: 外部依赖
//
// 返回：
//   - *GameState: 共享服务
func NewGameState(games *config.GamesConfig, opts Options) *GameState {
	settings := NewSettingsManager(opts.Store)
	audioManager := NewAudioManager(opts.AudioContext, settings)
	return &GameState{
		Games:     games,
		Resources: NewResourceManager(),
		Settings:  settings,
		Stickers:  NewStickerLedger(opts.Store),
		Audio:     audioManager,
		Music:     NewMusicScheduler(audioManager, settings, opts.Random),
		Narrator:  NewNarrator(opts.Speech, settings),
	}
}

// Dispatch 把会话产生的效果交给音频和旁白
func (gs *GameState) Dispatch(effects []minigames.Effect) {
	for _, e := range effects {
		if e.Cue != minigames.CueNone {
			gs.Audio.PlayCue(string(e.Cue))
		}
		if e.Speech != "" {
			gs.Narrator.Speak(e.Speech, e.Voice)
		}
	}
}

// Update 推进背景音乐和字幕
func (gs *GameState) Update(dt float64) {
	gs.Music.Update(dt)
	gs.Narrator.Update(dt)
}

// Close 停止所有后台活动（游戏退出时调用）
func (gs *GameState) Close() {
	gs.Music.Stop()
	gs.Narrator.Stop()
}
