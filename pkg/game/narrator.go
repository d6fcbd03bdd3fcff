package game

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/internal/speech"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/types"
)

// 朗读参数
const (
	narrationLang        = "pt-BR"
	narrationRate        = 1.1
	narrationPitchFemale = 1.2
	narrationPitchMale   = 1.0
)

// 声音挑选规则：葡萄牙语声音中名称包含这些关键字的优先
var (
	femaleVoiceNames = []string{"Maria", "Luciana", "Google Português"}
	maleVoiceNames   = []string{"Daniel", "Felipe"}
)

// Narrator 旁白分发器
//
// 新的朗读会打断正在进行的朗读。最后一句话会作为字幕显示几秒钟，
// 没有语音引擎时只显示字幕。
type Narrator struct {
	engine   speech.Engine
	settings *SettingsManager

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	caption      string
	captionTimer float64
}

// NewNarrator 创建旁白分发器
//
// 参数：
//   - engine: 语音引擎，为 nil 时使用静音引擎
//   - settings: 设置管理器（朗读音量取 SoundVolume，可为 nil）
func NewNarrator(engine speech.Engine, settings *SettingsManager) *Narrator {
	if engine == nil {
		engine = speech.SilentEngine{}
	}
	return &Narrator{
		engine:   engine,
		settings: settings,
	}
}

// Speak 朗读一段文字
//
// 参数：
//   - text: 文字内容
//   - gender: 旁白声音的性别
func (n *Narrator) Speak(text string, gender types.Gender) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	n.caption = text
	n.captionTimer = config.CaptionDuration

	u := n.BuildUtterance(text, gender)

	n.mu.Lock()
	if n.cancel != nil {
		n.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	n.cancel = cancel
	n.mu.Unlock()

	if u.Volume <= 0 {
		return
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		if err := n.engine.Speak(ctx, u); err != nil && ctx.Err() == nil {
			log.Printf("[Narrator] Warning: %v", err)
		}
	}()
}

// BuildUtterance 根据性别挑选声音并生成朗读请求
func (n *Narrator) BuildUtterance(text string, gender types.Gender) speech.Utterance {
	u := speech.Utterance{
		Text:   text,
		Lang:   narrationLang,
		Rate:   narrationRate,
		Pitch:  narrationPitchMale,
		Volume: DefaultSettings().SoundVolume,
	}
	if n.settings != nil {
		u.Volume = n.settings.GetSettings().SoundVolume
	}

	names := maleVoiceNames
	if gender == types.GenderFemale {
		names = femaleVoiceNames
		u.Pitch = narrationPitchFemale
	}
	u.Voice = pickVoice(n.engine.Voices(), names)
	return u
}

// pickVoice 在葡萄牙语声音中查找名称匹配的声音，找不到返回 nil
func pickVoice(voices []speech.Voice, names []string) *speech.Voice {
	for i := range voices {
		v := voices[i]
		if !speech.HasLang(v.Lang, "pt") {
			continue
		}
		for _, name := range names {
			if strings.Contains(v.Name, name) {
				return &v
			}
		}
	}
	return nil
}

// Update 推进字幕计时
func (n *Narrator) Update(dt float64) {
	if n.captionTimer <= 0 {
		return
	}
	n.captionTimer -= dt
	if n.captionTimer <= 0 {
		n.caption = ""
	}
}

// Caption 返回当前字幕
func (n *Narrator) Caption() (string, bool) {
	return n.caption, n.caption != ""
}

// Stop 打断正在进行的朗读并等待结束
func (n *Narrator) Stop() {
	n.mu.Lock()
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	n.mu.Unlock()
	n.wg.Wait()
}
