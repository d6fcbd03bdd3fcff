package minigames

import (
	"reflect"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/components"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/ecs"
)

// RunnerItem 跑道上一个物体的绘制快照
type RunnerItem struct {
	ID   ecs.EntityID
	X    float64
	Lane int
	Kind components.PickupKind
}

// RunnerSession 跑道躲避游戏
//
// 物体从右侧出现并向左移动，玩家在几条跑道之间上下切换：
// 吃到星星加分，撞到石头游戏结束。结束时分数达标则解锁贴纸。
type RunnerSession struct {
	core
	cfg        config.RunnerConfig
	world      *ecs.EntityManager
	lane       int
	score      int
	spawnTimer float64
	playerBox  components.CollisionComponent
}

var (
	runnerPositionType  = reflect.TypeOf(&components.PositionComponent{})
	runnerLaneType      = reflect.TypeOf(&components.LaneComponent{})
	runnerPickupType    = reflect.TypeOf(&components.PickupComponent{})
	runnerCollisionType = reflect.TypeOf(&components.CollisionComponent{})
)

// NewRunnerSession 创建跑道游戏会话，初始处于等待开始阶段
func NewRunnerSession(cfg config.RunnerConfig, unlocker Unlocker, rng Random) *RunnerSession {
	s := &RunnerSession{
		core:      newCore(cfg.Reward, unlocker, rng),
		cfg:       cfg,
		world:     ecs.NewEntityManager(),
		lane:      cfg.StartLane,
		playerBox: components.CollisionComponent{Width: cfg.PlayerWidth},
	}
	s.emit(CueNone, cfg.Intro)
	return s
}

// Start 开始（或重新开始）一局
func (s *RunnerSession) Start() bool {
	if s.disposed || s.phase == PhasePlaying {
		return false
	}
	s.emit(CueClick, "")
	s.world.Reset()
	s.lane = s.cfg.StartLane
	s.score = 0
	s.spawnTimer = 0
	s.restart(PhasePlaying)
	return true
}

// Reset 等同于重新开始
func (s *RunnerSession) Reset() {
	s.Start()
}

// MoveUp 切换到上一条跑道，已在最上方时忽略
func (s *RunnerSession) MoveUp() bool {
	if !s.active(PhasePlaying) || s.lane <= 0 {
		return false
	}
	s.lane--
	s.emit(CueClick, "")
	return true
}

// MoveDown 切换到下一条跑道，已在最下方时忽略
func (s *RunnerSession) MoveDown() bool {
	if !s.active(PhasePlaying) || s.lane >= s.cfg.Lanes-1 {
		return false
	}
	s.lane++
	s.emit(CueClick, "")
	return true
}

// Update 推进一帧
func (s *RunnerSession) Update(dt float64) {
	s.advance(dt)
	if !s.active(PhasePlaying) {
		return
	}

	if s.step(dt) {
		s.gameOver()
		return
	}

	s.spawnTimer += dt
	if s.spawnTimer >= s.cfg.SpawnInterval {
		s.spawn()
		s.spawnTimer = 0
	}
}

// step 移动物体并处理碰撞，返回是否撞到石头
func (s *RunnerSession) step(dt float64) bool {
	collided := false
	for _, id := range s.world.GetEntitiesWith(runnerPositionType, runnerLaneType, runnerPickupType, runnerCollisionType) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.world, id)
		lane, _ := ecs.GetComponent[*components.LaneComponent](s.world, id)
		pickup, _ := ecs.GetComponent[*components.PickupComponent](s.world, id)
		box, _ := ecs.GetComponent[*components.CollisionComponent](s.world, id)

		pos.X -= s.cfg.Speed * dt
		if pos.X <= s.cfg.DespawnX {
			s.world.DestroyEntity(id)
			continue
		}

		if lane.Lane != s.lane || !box.OverlapsX(pos.X, s.cfg.PlayerX+s.playerBox.OffsetX, s.playerBox.Width) {
			continue
		}

		switch pickup.Kind {
		case components.PickupStar:
			s.world.DestroyEntity(id)
			s.score++
			s.emit(CuePop, "")
		case components.PickupObstacle:
			collided = true
		}
	}
	s.world.RemoveMarkedEntities()
	return collided
}

// spawn 在最右侧生成一个星星或石头
func (s *RunnerSession) spawn() {
	kind := components.PickupObstacle
	if s.rng.Float64() < s.cfg.StarProbability {
		kind = components.PickupStar
	}
	lane := s.rng.IntN(s.cfg.Lanes)
	s.addItem(s.cfg.SpawnX, lane, kind)
}

// addItem 创建一个物体实体
func (s *RunnerSession) addItem(x float64, lane int, kind components.PickupKind) ecs.EntityID {
	id := s.world.CreateEntity()
	s.world.AddComponent(id, &components.PositionComponent{X: x})
	s.world.AddComponent(id, &components.LaneComponent{Lane: lane})
	s.world.AddComponent(id, &components.PickupComponent{Kind: kind})
	s.world.AddComponent(id, &components.CollisionComponent{Width: s.cfg.ItemWidth})
	return id
}

// gameOver 撞到石头，结束本局
func (s *RunnerSession) gameOver() {
	s.phase = PhaseLost
	s.emit(CueError, "")
	if s.score >= s.cfg.RewardScore {
		s.grantReward()
	}
}

// Items 返回当前物体的快照（按实体ID排序）
func (s *RunnerSession) Items() []RunnerItem {
	ids := s.world.GetEntitiesWith(runnerPositionType, runnerLaneType, runnerPickupType)
	items := make([]RunnerItem, 0, len(ids))
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.world, id)
		lane, _ := ecs.GetComponent[*components.LaneComponent](s.world, id)
		pickup, _ := ecs.GetComponent[*components.PickupComponent](s.world, id)
		items = append(items, RunnerItem{ID: id, X: pos.X, Lane: lane.Lane, Kind: pickup.Kind})
	}
	return items
}

// Lane 返回玩家所在跑道
func (s *RunnerSession) Lane() int {
	return s.lane
}

// Lanes 返回跑道数量
func (s *RunnerSession) Lanes() int {
	return s.cfg.Lanes
}

// Score 返回吃到的星星数
func (s *RunnerSession) Score() int {
	return s.score
}

// PlayerX 返回玩家碰撞盒左侧X坐标
func (s *RunnerSession) PlayerX() float64 {
	return s.cfg.PlayerX
}

// ItemWidth 返回物体宽度
func (s *RunnerSession) ItemWidth() float64 {
	return s.cfg.ItemWidth
}

// Victory 结束界面标题
func (s *RunnerSession) Victory() string {
	return s.cfg.Victory
}
