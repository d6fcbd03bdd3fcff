package game

import (
	"fmt"
	"log"
	"math"
	"strconv"
)

// GameSettings 音频设置
type GameSettings struct {
	MusicEnabled bool    // 背景音乐开关
	MusicVolume  float64 // 背景音乐音量 0.0 ~ 1.0
	SoundVolume  float64 // 音效和旁白音量 0.0 ~ 1.0
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicEnabled: true,
		MusicVolume:  0.3,
		SoundVolume:  1.0,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理，每次修改都会立即持久化
type SettingsManager struct {
	store    PropStore     // 持久化存储，可为 nil（降级模式）
	settings *GameSettings // 当前设置
}

// 存储路径常量，每个设置项单独保存，损坏时只影响该项
const (
	settingsObject       = "settings"
	musicEnabledProperty = "music_enabled"
	musicVolumeProperty  = "music_volume"
	sfxVolumeProperty    = "sfx_volume"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - store: 持久化存储，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
func NewSettingsManager(store PropStore) *SettingsManager {
	sm := &SettingsManager{
		store:    store,
		settings: DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从存储加载设置
//
// 缺失的设置项使用默认值；损坏的设置项使用默认值并在返回的错误中报告，
// 不影响其他设置项。
//
// 返回：
//   - error: 第一个损坏设置项的错误
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.store == nil {
		return nil
	}

	var firstErr error
	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if raw, ok, err := sm.loadProp(musicEnabledProperty); err != nil {
		record(err)
	} else if ok {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			record(fmt.Errorf("invalid %s %q: %w", musicEnabledProperty, raw, err))
		} else {
			sm.settings.MusicEnabled = enabled
		}
	}

	if v, err := sm.loadVolume(musicVolumeProperty); err != nil {
		record(err)
	} else if v >= 0 {
		sm.settings.MusicVolume = v
	}

	if v, err := sm.loadVolume(sfxVolumeProperty); err != nil {
		record(err)
	} else if v >= 0 {
		sm.settings.SoundVolume = v
	}

	if firstErr == nil {
		log.Printf("[SettingsManager] Settings loaded successfully")
	}
	return firstErr
}

// loadProp 读取一个设置项的原始文本
// 返回值 ok 表示设置项存在
func (sm *SettingsManager) loadProp(prop string) (string, bool, error) {
	if !sm.store.ObjectPropExists(settingsObject, prop) {
		return "", false, nil
	}
	data, err := sm.store.LoadObjectProp(settingsObject, prop)
	if err != nil {
		return "", false, fmt.Errorf("failed to load %s: %w", prop, err)
	}
	return string(data), true, nil
}

// loadVolume 读取音量设置项，不存在时返回 -1
func (sm *SettingsManager) loadVolume(prop string) (float64, error) {
	raw, ok, err := sm.loadProp(prop)
	if err != nil || !ok {
		return -1, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return -1, fmt.Errorf("invalid %s %q: %w", prop, raw, err)
	}
	if math.IsNaN(v) {
		return -1, fmt.Errorf("invalid %s %q", prop, raw)
	}
	return clampVolume(v), nil
}

// Save 保存全部设置
//
// 如果 store 为 nil，返回 nil（降级模式，不报错）
//
// 返回：
//   - error: 如果保存失败返回错误
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}

	props := []struct {
		key   string
		value string
	}{
		{musicEnabledProperty, strconv.FormatBool(sm.settings.MusicEnabled)},
		{musicVolumeProperty, formatVolume(sm.settings.MusicVolume)},
		{sfxVolumeProperty, formatVolume(sm.settings.SoundVolume)},
	}
	for _, p := range props {
		if err := sm.store.SaveObjectProp(settingsObject, p.key, []byte(p.value)); err != nil {
			return fmt.Errorf("failed to save %s: %w", p.key, err)
		}
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// persist 保存设置，失败只记录日志，内存中的设置仍然有效
func (sm *SettingsManager) persist() {
	if err := sm.Save(); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	}
}

// GetSettings 获取当前设置
//
// 返回：
//   - *GameSettings: 当前设置实例
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetMusicVolume 设置音乐音量并保存
//
// 参数：
//   - volume: 音乐音量，会被限制在 0.0 ~ 1.0 范围内
func (sm *SettingsManager) SetMusicVolume(volume float64) {
	sm.settings.MusicVolume = clampVolume(volume)
	sm.persist()
}

// SetSoundVolume 设置音效音量并保存
//
// 参数：
//   - volume: 音效音量，会被限制在 0.0 ~ 1.0 范围内
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
	sm.persist()
}

// SetMusicEnabled 设置音乐开关并保存
//
// 参数：
//   - enabled: 是否启用音乐
func (sm *SettingsManager) SetMusicEnabled(enabled bool) {
	sm.settings.MusicEnabled = enabled
	sm.persist()
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if math.IsNaN(volume) || volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}

// formatVolume 音量的存储格式
func formatVolume(volume float64) string {
	return strconv.FormatFloat(volume, 'g', -1, 64)
}
