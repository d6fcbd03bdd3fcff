package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/internal/speech"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
)

// 编译期检查
var (
	_ minigames.Unlocker = (*StickerLedger)(nil)
	_ CuePlayer          = (*AudioManager)(nil)
	_ NotePlayer         = (*AudioManager)(nil)
	_ PropStore          = (*gdata.Manager)(nil)
)

var errStoreBroken = errors.New("store broken")

// memStore 内存实现的 PropStore，可模拟读写失败
type memStore struct {
	props     map[string][]byte
	failLoad  bool
	failSave  bool
	saveCalls int
}

func newMemStore() *memStore {
	return &memStore{props: make(map[string][]byte)}
}

func (s *memStore) key(object, prop string) string {
	return object + "/" + prop
}

func (s *memStore) ObjectPropExists(object, prop string) bool {
	_, ok := s.props[s.key(object, prop)]
	return ok
}

func (s *memStore) LoadObjectProp(object, prop string) ([]byte, error) {
	if s.failLoad {
		return nil, errStoreBroken
	}
	return s.props[s.key(object, prop)], nil
}

func (s *memStore) SaveObjectProp(object, prop string, data []byte) error {
	s.saveCalls++
	if s.failSave {
		return errStoreBroken
	}
	s.props[s.key(object, prop)] = append([]byte(nil), data...)
	return nil
}

func (s *memStore) set(object, prop, value string) {
	s.props[s.key(object, prop)] = []byte(value)
}

func (s *memStore) get(object, prop string) string {
	return string(s.props[s.key(object, prop)])
}

// openTestGdata 在临时 HOME 下打开 gdata 存储
// 返回的函数用于模拟重启后重新打开同一个存储
func openTestGdata(t *testing.T, testName string) func() PropStore {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	appName := fmt.Sprintf("turminha_test_%s_%d", testName, time.Now().UnixNano())

	open := func() PropStore {
		manager, err := gdata.Open(gdata.Config{
			AppName: appName,
		})
		if err != nil || manager == nil {
			return nil
		}
		return manager
	}
	if open() == nil {
		t.Skip("Cannot create gdata manager for testing")
	}
	return open
}

// scriptedRandom 按固定序列循环返回的随机数来源
type scriptedRandom struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRandom) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)] % n
	r.ii++
	return v
}

// fakeEngine 记录朗读请求的语音引擎
type fakeEngine struct {
	mu     sync.Mutex
	voices []speech.Voice
	spoken []speech.Utterance
	block  bool // 为 true 时阻塞到 ctx 取消
}

func (e *fakeEngine) Name() string { return "fake" }

func (e *fakeEngine) Voices() []speech.Voice { return e.voices }

func (e *fakeEngine) Speak(ctx context.Context, u speech.Utterance) error {
	e.mu.Lock()
	e.spoken = append(e.spoken, u)
	e.mu.Unlock()
	if e.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return nil
}

func (e *fakeEngine) utterances() []speech.Utterance {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]speech.Utterance(nil), e.spoken...)
}

// recordingCues 记录播放的音效
type recordingCues struct {
	played []string
}

func (c *recordingCues) PlayCue(cue string) bool {
	c.played = append(c.played, cue)
	return true
}
