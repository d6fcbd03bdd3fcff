package minigames

import (
	"reflect"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/components"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/ecs"
)

// Floater 能量游戏中一个漂浮物的绘制快照（百分比坐标）
type Floater struct {
	ID   ecs.EntityID
	X    float64
	Y    float64
	Kind components.FloaterKind
}

// EnergySession 能量挑战游戏
//
// 能量随时间持续下降，玩家点击从底部升起的气球补充能量并得分。
// 能量降到 0 的那一帧游戏结束，分数达标则解锁贴纸。
type EnergySession struct {
	core
	cfg          config.EnergyConfig
	world        *ecs.EntityManager
	energy       float64
	score        int
	spawnTimerMs float64
}

var (
	energyPositionType = reflect.TypeOf(&components.PositionComponent{})
	energyFloaterType  = reflect.TypeOf(&components.FloaterComponent{})
)

// NewEnergySession 创建能量游戏会话，初始处于等待开始阶段
func NewEnergySession(cfg config.EnergyConfig, unlocker Unlocker, rng Random) *EnergySession {
	s := &EnergySession{
		core:   newCore(cfg.Reward, unlocker, rng),
		cfg:    cfg,
		world:  ecs.NewEntityManager(),
		energy: cfg.StartEnergy,
	}
	s.emit(CueNone, cfg.Intro)
	return s
}

// Start 开始（或重新开始）一局
func (s *EnergySession) Start() bool {
	if s.disposed || s.phase == PhasePlaying {
		return false
	}
	s.emit(CueClick, "")
	s.world.Reset()
	s.energy = s.cfg.StartEnergy
	s.score = 0
	s.spawnTimerMs = 0
	s.restart(PhasePlaying)
	return true
}

// Reset 等同于重新开始
func (s *EnergySession) Reset() {
	s.Start()
}

// Update 推进一帧
func (s *EnergySession) Update(dt float64) {
	s.advance(dt)
	if !s.active(PhasePlaying) {
		return
	}

	ms := dt * 1000
	s.energy -= s.cfg.DrainPerMs * ms
	if s.energy <= 0 {
		s.energy = 0
		s.finish()
		return
	}

	s.spawnTimerMs += ms
	if s.spawnTimerMs >= s.cfg.SpawnIntervalMs {
		s.spawn()
		s.spawnTimerMs = 0
	}

	for _, id := range s.world.GetEntitiesWith(energyPositionType, energyFloaterType) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.world, id)
		floater, _ := ecs.GetComponent[*components.FloaterComponent](s.world, id)
		pos.Y -= floater.Speed * (ms / 16)
		if pos.Y <= s.cfg.DespawnY {
			s.world.DestroyEntity(id)
		}
	}
	s.world.RemoveMarkedEntities()
}

// spawn 在底部随机位置生成一个气球
func (s *EnergySession) spawn() {
	x := s.rng.Float64()*(s.cfg.MaxX-s.cfg.MinX) + s.cfg.MinX
	speed := s.rng.Float64()*(s.cfg.MaxSpeed-s.cfg.MinSpeed) + s.cfg.MinSpeed
	kind := components.FloaterKinds[s.rng.IntN(len(components.FloaterKinds))]
	s.addFloater(x, s.cfg.SpawnY, speed, kind)
}

// addFloater 创建一个气球实体
func (s *EnergySession) addFloater(x, y, speed float64, kind components.FloaterKind) ecs.EntityID {
	id := s.world.CreateEntity()
	s.world.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	s.world.AddComponent(id, &components.FloaterComponent{Kind: kind, Speed: speed})
	return id
}

// Tap 点击气球：移除气球、加分并补充能量
// 气球不存在或游戏未进行时返回 false
func (s *EnergySession) Tap(id ecs.EntityID) bool {
	if !s.active(PhasePlaying) {
		return false
	}
	if !s.world.HasComponent(id, energyFloaterType) || s.world.IsMarkedForDestroy(id) {
		return false
	}
	s.world.DestroyEntity(id)
	s.world.RemoveMarkedEntities()

	s.score += s.cfg.TapScore
	s.energy += s.cfg.TapEnergy
	if s.energy > s.cfg.StartEnergy {
		s.energy = s.cfg.StartEnergy
	}
	s.emit(CuePop, "")
	return true
}

// finish 能量耗尽，本局结束
func (s *EnergySession) finish() {
	s.phase = PhaseWon
	s.emit(CueSuccess, "")
	if s.score >= s.cfg.RewardScore {
		s.grantReward()
	}
}

// Floaters 返回当前气球的快照（按实体ID排序）
func (s *EnergySession) Floaters() []Floater {
	ids := s.world.GetEntitiesWith(energyPositionType, energyFloaterType)
	out := make([]Floater, 0, len(ids))
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.world, id)
		floater, _ := ecs.GetComponent[*components.FloaterComponent](s.world, id)
		out = append(out, Floater{ID: id, X: pos.X, Y: pos.Y, Kind: floater.Kind})
	}
	return out
}

// Energy 返回当前能量
func (s *EnergySession) Energy() float64 {
	return s.energy
}

// MaxEnergy 返回能量上限
func (s *EnergySession) MaxEnergy() float64 {
	return s.cfg.StartEnergy
}

// Score 返回当前分数
func (s *EnergySession) Score() int {
	return s.score
}

// Victory 结束界面标题
func (s *EnergySession) Victory() string {
	return s.cfg.Victory
}
