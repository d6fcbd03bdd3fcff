package minigames

import (
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
)

// FriendshipFeedback 选择后显示的反馈
type FriendshipFeedback struct {
	Correct bool
	Text    string
}

// FriendshipSession 友谊问答游戏
//
// 依次展示几个情景，每个情景只有一个正确选项。
// 答对后显示反馈并延迟进入下一个情景；答错显示反馈一段时间后停留在原情景。
type FriendshipSession struct {
	core
	cfg      config.FriendshipConfig
	index    int
	feedback *FriendshipFeedback
}

// NewFriendshipSession 创建友谊问答会话
func NewFriendshipSession(cfg config.FriendshipConfig, unlocker Unlocker, rng Random) *FriendshipSession {
	s := &FriendshipSession{
		core: newCore(cfg.Reward, unlocker, rng),
		cfg:  cfg,
	}
	s.Reset()
	s.emit(CueNone, cfg.Intro)
	return s
}

// Choose 选择当前情景的一个选项
// 反馈期间、游戏结束后或选项不存在时返回 false
func (s *FriendshipSession) Choose(optionID int) bool {
	if !s.active(PhasePlaying) {
		return false
	}
	scenario, ok := s.Scenario()
	if !ok {
		return false
	}

	var option *config.FriendshipOption
	for i := range scenario.Options {
		if scenario.Options[i].ID == optionID {
			option = &scenario.Options[i]
			break
		}
	}
	if option == nil {
		return false
	}

	correct := optionID == scenario.Correct
	s.feedback = &FriendshipFeedback{Correct: correct, Text: option.Feedback}
	s.phase = PhaseFeedback

	if correct {
		s.emit(CueSuccess, option.Feedback)
		s.after(s.cfg.CorrectDelay, s.advanceScenario)
	} else {
		s.emit(CueError, option.Feedback)
		s.after(s.cfg.WrongDelay, s.clearFeedback)
	}
	return true
}

// advanceScenario 答对后进入下一个情景或完成游戏
func (s *FriendshipSession) advanceScenario() {
	if s.index < len(s.cfg.Scenarios)-1 {
		s.feedback = nil
		s.index++
		s.phase = PhasePlaying
		return
	}
	s.phase = PhaseWon
	s.grantReward()
	s.emit(CueNone, s.cfg.CompleteLine)
}

// clearFeedback 答错的反馈结束，回到同一个情景
func (s *FriendshipSession) clearFeedback() {
	s.feedback = nil
	s.phase = PhasePlaying
}

// Update 推进反馈计时
func (s *FriendshipSession) Update(dt float64) {
	s.advance(dt)
}

// Reset 从第一个情景重新开始
func (s *FriendshipSession) Reset() {
	if s.disposed {
		return
	}
	s.index = 0
	s.feedback = nil
	s.restart(PhasePlaying)
}

// Scenario 返回当前情景
func (s *FriendshipSession) Scenario() (config.FriendshipScenario, bool) {
	if s.index < 0 || s.index >= len(s.cfg.Scenarios) {
		return config.FriendshipScenario{}, false
	}
	return s.cfg.Scenarios[s.index], true
}

// ScenarioIndex 返回当前情景的序号
func (s *FriendshipSession) ScenarioIndex() int {
	return s.index
}

// Feedback 返回正在显示的反馈，没有时返回 nil
func (s *FriendshipSession) Feedback() *FriendshipFeedback {
	return s.feedback
}

// Victory 胜利界面标题
func (s *FriendshipSession) Victory() string {
	return s.cfg.Victory
}
