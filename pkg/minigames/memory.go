package minigames

import (
	"fmt"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/types"
)

// MemoryCard 记忆游戏中的一张卡片
type MemoryCard struct {
	Character types.Character
	FaceUp    bool
	Matched   bool
}

// MemorySession 记忆翻牌游戏
//
// 从五个角色中随机挑选若干个，每个角色两张牌洗混后摆放。
// 翻开第二张牌后进入判定：相同则延迟后配对成功，不同则延迟后翻回。
// 判定期间忽略所有翻牌操作。
type MemorySession struct {
	core
	cfg     config.MemoryConfig
	cards   []MemoryCard
	pending []int
	matches int
}

// NewMemorySession 创建记忆游戏会话并发牌
//
// 参数：
//   - cfg: 记忆游戏配置
//   - unlocker: 贴纸解锁能力，可为 nil
//   - rng: 随机数来源，为 nil 时使用时间种子
func NewMemorySession(cfg config.MemoryConfig, unlocker Unlocker, rng Random) *MemorySession {
	s := &MemorySession{
		core: newCore(cfg.Reward, unlocker, rng),
		cfg:  cfg,
	}
	s.deal()
	s.emit(CueNone, cfg.Intro)
	return s
}

// deal 挑选角色、生成并洗混卡片
func (s *MemorySession) deal() {
	all := types.AllCharacters()
	order := make([]int, len(all))
	for i := range order {
		order[i] = i
	}
	shuffleInts(s.rng, order)

	pairs := s.cfg.Pairs
	if pairs > len(all) {
		pairs = len(all)
	}

	deck := make([]int, 0, pairs*2)
	for _, idx := range order[:pairs] {
		deck = append(deck, idx, idx)
	}
	shuffleInts(s.rng, deck)

	s.cards = make([]MemoryCard, len(deck))
	for i, idx := range deck {
		s.cards[i] = MemoryCard{Character: all[idx]}
	}
	s.pending = nil
	s.matches = 0
	s.restart(PhasePlaying)
}

// Flip 翻开第 i 张牌
//
// 以下情况忽略操作并返回 false：已有两张牌等待判定、该牌已翻开或已配对、
// 游戏已结束、索引越界。
func (s *MemorySession) Flip(i int) bool {
	if !s.active(PhasePlaying) {
		return false
	}
	if i < 0 || i >= len(s.cards) || len(s.pending) >= 2 {
		return false
	}
	card := &s.cards[i]
	if card.FaceUp || card.Matched {
		return false
	}

	s.emit(CueClick, "")
	card.FaceUp = true
	s.pending = append(s.pending, i)

	if len(s.pending) < 2 {
		return true
	}

	first, second := s.pending[0], s.pending[1]
	if s.cards[first].Character == s.cards[second].Character {
		s.after(s.cfg.MatchDelay, func() { s.resolveMatch(first, second) })
	} else {
		s.after(s.cfg.MismatchDelay, func() { s.resolveMismatch(first, second) })
	}
	return true
}

// resolveMatch 配对成功
func (s *MemorySession) resolveMatch(first, second int) {
	s.cards[first].Matched = true
	s.cards[second].Matched = true
	s.pending = nil
	s.matches++

	s.emit(CueSuccess, "")
	if s.matches == s.Pairs() {
		s.phase = PhaseWon
		s.grantReward()
	}
	s.emit(CueNone, fmt.Sprintf(s.cfg.FoundLine, config.CharacterName(s.cards[first].Character)))
}

// resolveMismatch 配对失败，两张牌翻回
func (s *MemorySession) resolveMismatch(first, second int) {
	s.cards[first].FaceUp = false
	s.cards[second].FaceUp = false
	s.pending = nil
	s.emit(CueError, "")
}

// Update 推进延迟判定
func (s *MemorySession) Update(dt float64) {
	s.advance(dt)
}

// Reset 重新发牌开始新的一局
func (s *MemorySession) Reset() {
	if s.disposed {
		return
	}
	s.deal()
}

// Cards 返回卡片状态的副本
func (s *MemorySession) Cards() []MemoryCard {
	out := make([]MemoryCard, len(s.cards))
	copy(out, s.cards)
	return out
}

// Matches 返回已配对数量
func (s *MemorySession) Matches() int {
	return s.matches
}

// Pairs 返回本局的配对总数
func (s *MemorySession) Pairs() int {
	return len(s.cards) / 2
}

// Victory 胜利界面标题
func (s *MemorySession) Victory() string {
	return s.cfg.Victory
}
