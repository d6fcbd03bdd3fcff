package minigames

import (
	"math/rand/v2"
	"os"
	"testing"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/types"
)

// 编译期检查所有会话都实现了 Session 接口
var (
	_ Session = (*MemorySession)(nil)
	_ Session = (*SortingSession)(nil)
	_ Session = (*RunnerSession)(nil)
	_ Session = (*EnergySession)(nil)
	_ Session = (*GardenSession)(nil)
	_ Session = (*PuzzleSession)(nil)
	_ Session = (*FriendshipSession)(nil)
	_ Session = (*PaintingSession)(nil)
)

// recordingUnlocker 记录解锁调用的 Unlocker
type recordingUnlocker struct {
	unlocked map[types.Character]bool
	calls    []types.Character
}

func newRecordingUnlocker() *recordingUnlocker {
	return &recordingUnlocker{unlocked: make(map[types.Character]bool)}
}

func (u *recordingUnlocker) Unlock(id types.Character) bool {
	u.calls = append(u.calls, id)
	if u.unlocked[id] {
		return false
	}
	u.unlocked[id] = true
	return true
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

// seededRandom 返回固定种子的真实随机数生成器
func seededRandom(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed+1))
}

// loadGames 读取仓库中的 data/games.yaml
func loadGames(t *testing.T) *config.GamesConfig {
	t.Helper()
	data, err := os.ReadFile("../../data/games.yaml")
	if err != nil {
		t.Fatalf("Failed to read games.yaml: %v", err)
	}
	cfg, err := config.ParseGamesConfig(data)
	if err != nil {
		t.Fatalf("ParseGamesConfig failed: %v", err)
	}
	return cfg
}

// cuesOf 提取效果中的音效（忽略纯旁白）
func cuesOf(effects []Effect) []Cue {
	var out []Cue
	for _, e := range effects {
		if e.Cue != CueNone {
			out = append(out, e.Cue)
		}
	}
	return out
}

// speechOf 提取效果中的旁白
func speechOf(effects []Effect) []string {
	var out []string
	for _, e := range effects {
		if e.Speech != "" {
			out = append(out, e.Speech)
		}
	}
	return out
}

// hasCue 效果中是否包含指定音效
func hasCue(effects []Effect, cue Cue) bool {
	for _, e := range effects {
		if e.Cue == cue {
			return true
		}
	}
	return false
}
