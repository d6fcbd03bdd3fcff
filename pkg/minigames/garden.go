package minigames

import (
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
)

// Need 植物的需求，同时也是工具种类
type Need int

const (
	NeedWater Need = iota
	NeedSun
	NeedLove
)

// Needs 全部需求，用于随机选择
var Needs = []Need{NeedWater, NeedSun, NeedLove}

// String 返回需求名称
func (n Need) String() string {
	switch n {
	case NeedWater:
		return "water"
	case NeedSun:
		return "sun"
	case NeedLove:
		return "love"
	default:
		return "unknown"
	}
}

// GardenSession 照顾植物游戏
//
// 植物从种子开始，每次给出正确的工具就长大一个阶段并随机出现新需求，
// 长到最后一个阶段时开花获胜。给错工具不会改变任何状态。
type GardenSession struct {
	core
	cfg   config.GardenConfig
	stage int
	need  Need
}

// NewGardenSession 创建照顾植物会话，第一个需求总是浇水
func NewGardenSession(cfg config.GardenConfig, unlocker Unlocker, rng Random) *GardenSession {
	s := &GardenSession{
		core: newCore(cfg.Reward, unlocker, rng),
		cfg:  cfg,
	}
	s.Reset()
	s.emit(CueNone, cfg.Intro)
	return s
}

// Apply 使用工具
// 游戏已结束时返回 false
func (s *GardenSession) Apply(tool Need) bool {
	if !s.active(PhasePlaying) {
		return false
	}

	if tool != s.need {
		s.emit(CueError, s.cfg.WrongLine)
		return true
	}

	s.stage++
	s.emit(CueSuccess, s.cfg.CorrectLine)
	if s.stage >= s.cfg.Stages {
		s.phase = PhaseWon
		s.emit(CueNone, s.cfg.BloomLine)
		s.grantReward()
		return true
	}
	s.need = Needs[s.rng.IntN(len(Needs))]
	return true
}

// Update 照顾植物游戏没有延迟转换，保留以统一会话接口
func (s *GardenSession) Update(dt float64) {
	s.advance(dt)
}

// Reset 回到种子阶段
func (s *GardenSession) Reset() {
	if s.disposed {
		return
	}
	s.stage = 0
	s.need = NeedWater
	s.restart(PhasePlaying)
}

// Stage 返回当前生长阶段
func (s *GardenSession) Stage() int {
	return s.stage
}

// Stages 返回开花所需的阶段数
func (s *GardenSession) Stages() int {
	return s.cfg.Stages
}

// Need 返回当前需求
func (s *GardenSession) Need() Need {
	return s.need
}

// Victory 胜利界面标题
func (s *GardenSession) Victory() string {
	return s.cfg.Victory
}
