package minigames

import (
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
)

// 垃圾桶类型
const (
	BinRecycle = "recycle"
	BinOrganic = "organic"
)

// SortingSession 垃圾分类游戏
//
// 物品按固定顺序出现，玩家选择"可回收"或"有机"。
// 每次选择后显示反馈，反馈期间忽略输入，结束后进入下一个物品。
// 开启 RetryOnMistake 时，答错会停留在同一个物品。
type SortingSession struct {
	core
	cfg         config.SortingConfig
	index       int
	score       int
	lastCorrect bool
}

// NewSortingSession 创建垃圾分类会话
func NewSortingSession(cfg config.SortingConfig, unlocker Unlocker, rng Random) *SortingSession {
	s := &SortingSession{
		core: newCore(cfg.Reward, unlocker, rng),
		cfg:  cfg,
	}
	s.Reset()
	s.emit(CueNone, cfg.Intro)
	return s
}

// Sort 把当前物品放进 bin
// 反馈期间或游戏结束后返回 false
func (s *SortingSession) Sort(bin string) bool {
	if !s.active(PhasePlaying) {
		return false
	}
	item, ok := s.Current()
	if !ok {
		return false
	}

	s.lastCorrect = item.Bin == bin
	if s.lastCorrect {
		s.score++
		s.emit(CueSuccess, s.cfg.CorrectLine)
	} else {
		s.emit(CueError, s.cfg.WrongLine)
	}

	s.phase = PhaseFeedback
	s.after(s.cfg.FeedbackDelay, s.next)
	return true
}

// next 反馈结束后推进队列
func (s *SortingSession) next() {
	if s.lastCorrect || !s.cfg.RetryOnMistake {
		s.index++
	}
	if s.index >= len(s.cfg.Items) {
		s.phase = PhaseWon
		s.grantReward()
		return
	}
	s.phase = PhasePlaying
}

// Update 推进反馈计时
func (s *SortingSession) Update(dt float64) {
	s.advance(dt)
}

// Reset 从第一个物品重新开始
func (s *SortingSession) Reset() {
	if s.disposed {
		return
	}
	s.index = 0
	s.score = 0
	s.lastCorrect = false
	s.restart(PhasePlaying)
}

// Current 返回当前待分类的物品
func (s *SortingSession) Current() (config.SortingItem, bool) {
	if s.index < 0 || s.index >= len(s.cfg.Items) {
		return config.SortingItem{}, false
	}
	return s.cfg.Items[s.index], true
}

// LastCorrect 最近一次分类是否正确（反馈阶段用于绘制）
func (s *SortingSession) LastCorrect() bool {
	return s.lastCorrect
}

// Score 返回答对的数量
func (s *SortingSession) Score() int {
	return s.score
}

// Total 返回物品总数
func (s *SortingSession) Total() int {
	return len(s.cfg.Items)
}

// Victory 胜利界面标题
func (s *SortingSession) Victory() string {
	return s.cfg.Victory
}
