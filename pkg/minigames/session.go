// Package minigames 实现各个小游戏的状态机
//
// 每个游戏会话只管理自己的局部状态，不直接接触音频、旁白或存储：
//   - 音效和旁白通过效果队列（Drain）交给场景分发
//   - 延迟转换（翻牌判定、反馈时长等）由 Update(dt) 推进的计时器完成
//   - 奖励通过注入的 Unlocker 解锁，每局最多调用一次
//
// 会话在场景挂载时创建，"再来一次"时 Reset()，离开场景时 Dispose()。
// Dispose 之后所有操作和 Update 都是空操作。
package minigames

import (
	"math/rand/v2"
	"time"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/types"
)

// Phase 小游戏所处的阶段
type Phase int

const (
	// PhaseIntro 等待玩家点击"开始"
	PhaseIntro Phase = iota
	// PhasePlaying 正在游戏，接受输入
	PhasePlaying
	// PhaseFeedback 正在显示对错反馈，忽略输入
	PhaseFeedback
	// PhaseWon 游戏完成
	PhaseWon
	// PhaseLost 游戏失败（跑道游戏撞到石头）
	PhaseLost
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseFeedback:
		return "feedback"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Finished 游戏是否已经结束（胜利或失败）
func (p Phase) Finished() bool {
	return p == PhaseWon || p == PhaseLost
}

// Cue 音效名称
type Cue string

const (
	CueNone    Cue = ""
	CueClick   Cue = "click"
	CuePop     Cue = "pop"
	CueSuccess Cue = "success"
	CueError   Cue = "error"
	CueHero    Cue = "hero"
)

// Effect 状态转换产生的副作用请求
// 场景调用 Drain() 取出后交给音频和旁白分发器
type Effect struct {
	Cue    Cue
	Speech string
	Voice  types.Gender
}

// Session 场景驱动小游戏时使用的公共接口
type Session interface {
	Update(dt float64)
	Reset()
	Dispose()
	Phase() Phase
	Drain() []Effect
	Reward() (types.Character, bool)
	Victory() string
}

// Unlocker 贴纸解锁能力
// 返回 true 表示本次调用新解锁了该贴纸
type Unlocker interface {
	Unlock(id types.Character) bool
}

// Random 随机数来源，测试时可注入固定序列
type Random interface {
	Float64() float64
	IntN(n int) int
}

// NewRandom 创建以当前时间为种子的随机数生成器
// "再来一次"继续使用同一个生成器，洗牌结果不会重复
func NewRandom() Random {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>17|1))
}

// delayEpsilon 浮点累计误差容忍度
const delayEpsilon = 1e-9

// delay 一个待触发的延迟转换
type delay struct {
	remaining float64
	fn        func()
}

// core 所有会话共享的基础设施：阶段、效果队列、延迟计时器和奖励
type core struct {
	phase    Phase
	effects  []Effect
	delays   []*delay
	disposed bool

	reward   types.Character
	unlocker Unlocker
	rng      Random

	rewarded bool // 本局是否已经调用过 Unlocker
	unlocked bool // 本局是否新解锁了贴纸
}

// newCore 创建基础设施
func newCore(reward types.Character, unlocker Unlocker, rng Random) core {
	if rng == nil {
		rng = NewRandom()
	}
	return core{
		phase:    PhaseIntro,
		reward:   reward,
		unlocker: unlocker,
		rng:      rng,
	}
}

// Phase 返回当前阶段
func (c *core) Phase() Phase {
	return c.phase
}

// Drain 取出并清空累积的效果
func (c *core) Drain() []Effect {
	if len(c.effects) == 0 {
		return nil
	}
	out := c.effects
	c.effects = nil
	return out
}

// Reward 返回本局奖励的贴纸，以及本局是否新解锁
func (c *core) Reward() (types.Character, bool) {
	return c.reward, c.unlocked
}

// Pending 是否有尚未触发的延迟转换
func (c *core) Pending() bool {
	return len(c.delays) > 0
}

// Disposed 会话是否已被释放
func (c *core) Disposed() bool {
	return c.disposed
}

// Dispose 取消所有延迟转换，之后会话不再响应任何操作
func (c *core) Dispose() {
	c.disposed = true
	c.delays = nil
	c.effects = nil
}

// active 会话未释放且处于指定阶段
func (c *core) active(phase Phase) bool {
	return !c.disposed && c.phase == phase
}

// emit 追加一个效果，音效和台词都为空时忽略
func (c *core) emit(cue Cue, speech string) {
	if c.disposed || (cue == CueNone && speech == "") {
		return
	}
	c.effects = append(c.effects, Effect{Cue: cue, Speech: speech})
}

// after 在 seconds 秒后执行 fn
func (c *core) after(seconds float64, fn func()) {
	if c.disposed {
		return
	}
	c.delays = append(c.delays, &delay{remaining: seconds, fn: fn})
}

// advance 推进延迟计时器，按到期先后触发
func (c *core) advance(dt float64) {
	if c.disposed || len(c.delays) == 0 {
		return
	}
	for _, d := range c.delays {
		d.remaining -= dt
	}
	for !c.disposed {
		idx := -1
		for i, d := range c.delays {
			if d.remaining <= delayEpsilon && (idx < 0 || d.remaining < c.delays[idx].remaining) {
				idx = i
			}
		}
		if idx < 0 {
			return
		}
		d := c.delays[idx]
		c.delays = append(c.delays[:idx], c.delays[idx+1:]...)
		d.fn()
	}
}

// grantReward 调用 Unlocker，每局最多一次；新解锁时播放 hero 音效
func (c *core) grantReward() {
	if c.disposed || c.rewarded {
		return
	}
	c.rewarded = true
	if c.unlocker == nil {
		return
	}
	if c.unlocker.Unlock(c.reward) {
		c.unlocked = true
		c.emit(CueHero, "")
	}
}

// restart 清空计时器和奖励状态，进入指定阶段
func (c *core) restart(phase Phase) {
	c.delays = nil
	c.rewarded = false
	c.unlocked = false
	c.phase = phase
}

// shuffleInts 原地 Fisher–Yates 洗牌
func shuffleInts(rng Random, values []int) {
	for i := len(values) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}
