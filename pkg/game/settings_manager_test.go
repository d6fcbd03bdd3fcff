package game

import (
	"testing"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if !settings.MusicEnabled {
		t.Error("MusicEnabled: got false, want true")
	}
	if settings.MusicVolume != 0.3 {
		t.Errorf("MusicVolume: got %v, want 0.3", settings.MusicVolume)
	}
	if settings.SoundVolume != 1.0 {
		t.Errorf("SoundVolume: got %v, want 1.0", settings.SoundVolume)
	}
}

// TestNewSettingsManagerNilStore 测试 store 为 nil 时的降级场景
func TestNewSettingsManagerNilStore(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetMusicVolume(0.6)
	if got := sm.GetSettings().MusicVolume; got != 0.6 {
		t.Errorf("Degraded mode should keep in-memory settings, got %v", got)
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
}

// TestSettingsPersistAcrossRestart 测试设置在重启后保持（包括音量 0）
func TestSettingsPersistAcrossRestart(t *testing.T) {
	open := openTestGdata(t, "settings_restart")

	sm1 := NewSettingsManager(open())
	sm1.SetMusicEnabled(false)
	sm1.SetMusicVolume(0)
	sm1.SetSoundVolume(0.45)

	sm2 := NewSettingsManager(open())
	settings := sm2.GetSettings()

	if settings.MusicEnabled {
		t.Error("MusicEnabled should reload as false")
	}
	if settings.MusicVolume != 0 {
		t.Errorf("MusicVolume 0 should reload as 0, got %v", settings.MusicVolume)
	}
	if settings.SoundVolume != 0.45 {
		t.Errorf("SoundVolume: got %v, want 0.45", settings.SoundVolume)
	}
}

// TestSettingsStorageFormat 测试每个设置项单独保存为文本
func TestSettingsStorageFormat(t *testing.T) {
	store := newMemStore()
	sm := NewSettingsManager(store)
	sm.SetMusicVolume(0.25)

	tests := []struct {
		prop string
		want string
	}{
		{musicEnabledProperty, "true"},
		{musicVolumeProperty, "0.25"},
		{sfxVolumeProperty, "1"},
	}
	for _, tt := range tests {
		if got := store.get(settingsObject, tt.prop); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.prop, got, tt.want)
		}
	}
}

// TestSettingsMalformedFallback 测试损坏的设置项只影响自己
func TestSettingsMalformedFallback(t *testing.T) {
	tests := []struct {
		name         string
		props        map[string]string
		wantEnabled  bool
		wantMusic    float64
		wantSound    float64
		wantLoadFail bool
	}{
		{
			name:        "all valid",
			props:       map[string]string{musicEnabledProperty: "false", musicVolumeProperty: "0.5", sfxVolumeProperty: "0.2"},
			wantEnabled: false, wantMusic: 0.5, wantSound: 0.2,
		},
		{
			name:        "malformed music volume",
			props:       map[string]string{musicEnabledProperty: "false", musicVolumeProperty: "loud", sfxVolumeProperty: "0.2"},
			wantEnabled: false, wantMusic: 0.3, wantSound: 0.2, wantLoadFail: true,
		},
		{
			name:        "malformed flag",
			props:       map[string]string{musicEnabledProperty: "sim", sfxVolumeProperty: "0.7"},
			wantEnabled: true, wantMusic: 0.3, wantSound: 0.7, wantLoadFail: true,
		},
		{
			name:        "out of range volume is clamped",
			props:       map[string]string{musicVolumeProperty: "4", sfxVolumeProperty: "-1"},
			wantEnabled: true, wantMusic: 1, wantSound: 0,
		},
		{
			name:        "NaN volume",
			props:       map[string]string{sfxVolumeProperty: "NaN"},
			wantEnabled: true, wantMusic: 0.3, wantSound: 1, wantLoadFail: true,
		},
		{
			name:        "missing props",
			props:       map[string]string{},
			wantEnabled: true, wantMusic: 0.3, wantSound: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			for prop, value := range tt.props {
				store.set(settingsObject, prop, value)
			}
			sm := &SettingsManager{store: store}
			err := sm.Load()

			if (err != nil) != tt.wantLoadFail {
				t.Errorf("Load() error = %v, wantLoadFail %v", err, tt.wantLoadFail)
			}
			s := sm.GetSettings()
			if s.MusicEnabled != tt.wantEnabled || s.MusicVolume != tt.wantMusic || s.SoundVolume != tt.wantSound {
				t.Errorf("got %+v, want {%v %v %v}", *s, tt.wantEnabled, tt.wantMusic, tt.wantSound)
			}
		})
	}
}

// TestSettingsClampVolume 测试音量限制
func TestSettingsClampVolume(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.35, 0.35},
		{1, 1},
		{1.5, 1},
	}
	sm := NewSettingsManager(nil)
	for _, tt := range tests {
		sm.SetSoundVolume(tt.input)
		if got := sm.GetSettings().SoundVolume; got != tt.want {
			t.Errorf("SetSoundVolume(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// TestSettingsWriteFailure 写入失败时内存设置仍然有效
func TestSettingsWriteFailure(t *testing.T) {
	store := newMemStore()
	store.failSave = true
	sm := NewSettingsManager(store)

	sm.SetMusicEnabled(false)
	if sm.GetSettings().MusicEnabled {
		t.Error("in-memory setting should change even if saving fails")
	}
	if store.saveCalls == 0 {
		t.Error("setter should try to persist")
	}
}

// TestSettingsReadFailure 读取失败时使用默认值
func TestSettingsReadFailure(t *testing.T) {
	store := newMemStore()
	store.set(settingsObject, musicVolumeProperty, "0.9")
	store.failLoad = true

	sm := NewSettingsManager(store)
	if got := sm.GetSettings().MusicVolume; got != 0.3 {
		t.Errorf("expected default music volume, got %v", got)
	}
}
