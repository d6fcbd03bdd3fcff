// Package speech 提供文字转语音引擎
//
// 桌面平台优先使用系统中的 espeak-ng（或 espeak）命令行程序；
// 找不到时退化为静音引擎，旁白只显示字幕。
package speech

import (
	"context"
	"log"
	"strings"
)

// Voice 引擎提供的一个声音
type Voice struct {
	Name string // 声音名称，如 "Luciana"
	Lang string // 语言标签，如 "pt-br"
}

// Utterance 一次朗读请求
type Utterance struct {
	Text   string
	Lang   string  // 语言标签，如 "pt-BR"
	Rate   float64 // 语速倍率，1.0 为正常
	Pitch  float64 // 音高倍率，1.0 为正常
	Volume float64 // 音量 0.0 ~ 1.0
	Voice  *Voice  // 为 nil 时使用引擎默认声音
}

// Engine 文字转语音引擎
type Engine interface {
	// Name 引擎名称，用于日志
	Name() string
	// Voices 列出可用的声音
	Voices() []Voice
	// Speak 阻塞朗读，ctx 取消时立即停止
	Speak(ctx context.Context, u Utterance) error
}

// Detect 返回当前系统可用的最佳引擎
func Detect() Engine {
	if e, ok := NewEspeakEngine(); ok {
		log.Printf("[Speech] Using %s", e.Name())
		return e
	}
	log.Printf("[Speech] No speech engine found, narration is caption-only")
	return SilentEngine{}
}

// HasLang 判断语言标签是否属于 lang（不区分大小写，忽略 - 与 _ 的差异）
func HasLang(tag, lang string) bool {
	norm := func(s string) string {
		return strings.ReplaceAll(strings.ToLower(s), "_", "-")
	}
	return strings.Contains(norm(tag), norm(lang))
}

// SilentEngine 不发声的引擎
type SilentEngine struct{}

// Name 引擎名称
func (SilentEngine) Name() string { return "silent" }

// Voices 没有任何声音
func (SilentEngine) Voices() []Voice { return nil }

// Speak 立即返回
func (SilentEngine) Speak(ctx context.Context, u Utterance) error { return ctx.Err() }
