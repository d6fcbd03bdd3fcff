package game

import (
	"fmt"
	"log"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/types"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	stickersObject   = "stickers"
	unlockedProperty = "unlocked"
)

// StickerLedger 贴纸解锁记录
// 负责追踪哪些角色贴纸已经解锁，每次新解锁都会立即持久化。
// 实现 minigames.Unlocker 接口。
type StickerLedger struct {
	store    PropStore // 持久化存储，可为 nil（降级模式）
	unlocked map[types.Character]bool
}

// NewStickerLedger 创建贴纸记录并从存储加载
//
// 参数：
//   - store: 持久化存储，可为 nil（降级模式，仅内存记录）
//
// 返回：
//   - *StickerLedger: 贴纸记录实例
func NewStickerLedger(store PropStore) *StickerLedger {
	l := &StickerLedger{
		store:    store,
		unlocked: make(map[types.Character]bool),
	}
	if err := l.Load(); err != nil {
		log.Printf("[StickerLedger] Warning: Failed to load stickers: %v (starting empty)", err)
	}
	return l
}

// Load 从存储加载已解锁的贴纸
// 未知的角色名被忽略；数据损坏时清空记录并返回错误
func (l *StickerLedger) Load() error {
	l.unlocked = make(map[types.Character]bool)
	if l.store == nil || !l.store.ObjectPropExists(stickersObject, unlockedProperty) {
		return nil
	}

	data, err := l.store.LoadObjectProp(stickersObject, unlockedProperty)
	if err != nil {
		return fmt.Errorf("failed to load stickers: %w", err)
	}

	var names []string
	if err := yaml.Unmarshal(data, &names); err != nil {
		return fmt.Errorf("failed to unmarshal stickers: %w", err)
	}

	for _, name := range names {
		c, ok := types.ParseCharacter(name)
		if !ok {
			log.Printf("[StickerLedger] Warning: Ignoring unknown sticker %q", name)
			continue
		}
		l.unlocked[c] = true
	}
	log.Printf("[StickerLedger] Loaded %d stickers", len(l.unlocked))
	return nil
}

// Save 保存已解锁的贴纸（YAML 流式列表，如 [Tony, Jão]）
func (l *StickerLedger) Save() error {
	if l.store == nil {
		return nil
	}

	list := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range l.All() {
		list.Content = append(list.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: c.String()})
	}
	data, err := yaml.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal stickers: %w", err)
	}

	if err := l.store.SaveObjectProp(stickersObject, unlockedProperty, data); err != nil {
		return fmt.Errorf("failed to save stickers: %w", err)
	}
	return nil
}

// Unlock 解锁贴纸
//
// 参数：
//   - id: 角色
//
// 返回：
//   - bool: 本次调用新解锁返回 true，已拥有或角色无效返回 false
func (l *StickerLedger) Unlock(id types.Character) bool {
	if !id.Valid() || l.unlocked[id] {
		return false
	}
	l.unlocked[id] = true
	log.Printf("[StickerLedger] Unlocked sticker: %s", id)

	// 写入失败时内存中的记录仍然有效
	if err := l.Save(); err != nil {
		log.Printf("[StickerLedger] Warning: %v", err)
	}
	return true
}

// IsUnlocked 检查贴纸是否已解锁
func (l *StickerLedger) IsUnlocked(id types.Character) bool {
	return l.unlocked[id]
}

// All 返回已解锁的贴纸，按相册顺序排列
func (l *StickerLedger) All() []types.Character {
	out := make([]types.Character, 0, len(l.unlocked))
	for _, c := range types.AllCharacters() {
		if l.unlocked[c] {
			out = append(out, c)
		}
	}
	return out
}

// Count 返回已解锁的贴纸数量
func (l *StickerLedger) Count() int {
	return len(l.unlocked)
}
