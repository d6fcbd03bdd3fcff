package minigames

import (
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
)

// maxShuffleAttempts 洗牌仍然是已完成状态时的重试次数
const maxShuffleAttempts = 8

// PuzzleSession 拼图游戏
//
// slots[i] 是放在第 i 个格子里的拼图块编号，编号等于它的正确位置。
// 点击两个格子交换拼图块，全部归位后延迟宣布胜利。
type PuzzleSession struct {
	core
	cfg       config.PuzzleConfig
	slots     []int
	selected  int
	resolving bool
}

// NewPuzzleSession 创建拼图会话并打乱拼图块（保证开局不是已完成状态）
func NewPuzzleSession(cfg config.PuzzleConfig, unlocker Unlocker, rng Random) *PuzzleSession {
	s := &PuzzleSession{
		core: newCore(cfg.Reward, unlocker, rng),
		cfg:  cfg,
	}
	s.Reset()
	s.emit(CueNone, cfg.Intro)
	return s
}

// Reset 重新打乱拼图块
func (s *PuzzleSession) Reset() {
	if s.disposed {
		return
	}
	s.slots = make([]int, s.cfg.Pieces)
	for i := range s.slots {
		s.slots[i] = i
	}
	for attempt := 0; s.Solved() && attempt < maxShuffleAttempts; attempt++ {
		shuffleInts(s.rng, s.slots)
	}
	if s.Solved() {
		s.Swap(0, 1)
	}
	s.selected = -1
	s.resolving = false
	s.restart(PhasePlaying)
}

// Select 点击格子：第一次选中，第二次与选中的格子交换
func (s *PuzzleSession) Select(slot int) bool {
	if !s.active(PhasePlaying) || s.resolving {
		return false
	}
	if slot < 0 || slot >= len(s.slots) {
		return false
	}

	s.emit(CueClick, "")
	if s.selected < 0 {
		s.selected = slot
		return true
	}

	s.Swap(s.selected, slot)
	s.selected = -1
	s.emit(CuePop, "")

	if s.Solved() {
		s.resolving = true
		s.after(s.cfg.WinDelay, s.win)
	}
	return true
}

// win 拼图完成
func (s *PuzzleSession) win() {
	s.resolving = false
	s.phase = PhaseWon
	s.emit(CueSuccess, "")
	s.grantReward()
	s.emit(CueNone, s.cfg.WinLine)
}

// Swap 交换两个格子的拼图块，越界时忽略
func (s *PuzzleSession) Swap(i, j int) {
	if i < 0 || j < 0 || i >= len(s.slots) || j >= len(s.slots) {
		return
	}
	s.slots[i], s.slots[j] = s.slots[j], s.slots[i]
}

// Solved 每个格子都放着编号相同的拼图块
func (s *PuzzleSession) Solved() bool {
	for i, piece := range s.slots {
		if piece != i {
			return false
		}
	}
	return true
}

// Update 推进胜利延迟
func (s *PuzzleSession) Update(dt float64) {
	s.advance(dt)
}

// Slots 返回格子状态的副本
func (s *PuzzleSession) Slots() []int {
	out := make([]int, len(s.slots))
	copy(out, s.slots)
	return out
}

// Selected 返回选中的格子，未选中时为 -1
func (s *PuzzleSession) Selected() int {
	return s.selected
}

// Victory 胜利界面标题
func (s *PuzzleSession) Victory() string {
	return s.cfg.Victory
}
