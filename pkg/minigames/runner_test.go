package minigames

import (
	"math"
	"testing"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/components"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/types"
)

const frame = 1.0 / 60.0

// startedRunner 创建并开始一局跑道游戏
func startedRunner(t *testing.T, unlocker Unlocker, rng Random) *RunnerSession {
	t.Helper()
	cfg := loadGames(t)
	s := NewRunnerSession(cfg.Runner, unlocker, rng)
	if s.Phase() != PhaseIntro {
		t.Fatalf("runner should wait for start, got %s", s.Phase())
	}
	if !s.Start() {
		t.Fatal("Start should succeed from intro")
	}
	s.Drain()
	return s
}

// TestRunnerIntroIgnoresInput 开始前不移动也不生成物体
func TestRunnerIntroIgnoresInput(t *testing.T) {
	cfg := loadGames(t)
	s := NewRunnerSession(cfg.Runner, nil, seededRandom(1))

	if s.MoveUp() {
		t.Error("MoveUp before start must be ignored")
	}
	s.Update(5)
	if len(s.Items()) != 0 {
		t.Error("no items should spawn before start")
	}
}

// TestRunnerLaneClamp 测试跑道边界
func TestRunnerLaneClamp(t *testing.T) {
	s := startedRunner(t, nil, seededRandom(1))

	tests := []struct {
		name   string
		move   func() bool
		wantOK bool
		lane   int
	}{
		{"up from middle", s.MoveUp, true, 0},
		{"up at top", s.MoveUp, false, 0},
		{"down", s.MoveDown, true, 1},
		{"down to bottom", s.MoveDown, true, 2},
		{"down at bottom", s.MoveDown, false, 2},
	}
	for _, tt := range tests {
		if got := tt.move(); got != tt.wantOK {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.wantOK)
		}
		if s.Lane() != tt.lane {
			t.Errorf("%s: lane %d, want %d", tt.name, s.Lane(), tt.lane)
		}
	}
	if n := len(cuesOf(s.Drain())); n != 3 {
		t.Errorf("expected 3 click cues for real lane changes, got %d", n)
	}
}

// TestRunnerSpawn 测试按间隔在右侧生成物体
func TestRunnerSpawn(t *testing.T) {
	rng := &scriptedRandom{floats: []float64{0.1}, ints: []int{2}}
	s := startedRunner(t, nil, rng)

	s.Update(1.0)
	if len(s.Items()) != 0 {
		t.Fatal("nothing should spawn before the interval")
	}
	s.Update(0.5)

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Kind != components.PickupStar || items[0].Lane != 2 || items[0].X != 800 {
		t.Errorf("unexpected item %+v", items[0])
	}

	s.Update(0.1)
	if got := s.Items()[0].X; math.Abs(got-770) > 1e-9 {
		t.Errorf("expected x=770 after 0.1s, got %v", got)
	}
}

// TestRunnerDespawn 移出左侧的物体被移除
func TestRunnerDespawn(t *testing.T) {
	s := startedRunner(t, nil, seededRandom(1))
	s.addItem(-90, 0, components.PickupObstacle)

	s.Update(0.1)
	if len(s.Items()) != 0 {
		t.Errorf("item past the left edge should be removed, got %d", len(s.Items()))
	}
	if s.Phase() != PhasePlaying {
		t.Error("despawned obstacle must not end the game")
	}
}

// TestRunnerCollectStar 同跑道重叠的星星加分
func TestRunnerCollectStar(t *testing.T) {
	s := startedRunner(t, nil, seededRandom(1))
	s.addItem(s.PlayerX(), s.Lane(), components.PickupStar)
	s.addItem(s.PlayerX(), s.Lane()+1, components.PickupObstacle)

	s.Update(frame)

	if s.Score() != 1 {
		t.Errorf("expected score 1, got %d", s.Score())
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("obstacle in another lane must not collide, got %s", s.Phase())
	}
	if !hasCue(s.Drain(), CuePop) {
		t.Error("star pickup should play the pop cue")
	}
	if len(s.Items()) != 1 {
		t.Errorf("collected star should be removed, %d items left", len(s.Items()))
	}
}

// TestRunnerObstacleEndsGame 撞到石头结束，分数不足不解锁
func TestRunnerObstacleEndsGame(t *testing.T) {
	unlocker := newRecordingUnlocker()
	s := startedRunner(t, unlocker, seededRandom(1))
	s.addItem(s.PlayerX(), s.Lane(), components.PickupObstacle)

	s.Update(frame)

	if s.Phase() != PhaseLost {
		t.Fatalf("expected lost phase, got %s", s.Phase())
	}
	if !hasCue(s.Drain(), CueError) {
		t.Error("collision should play the error cue")
	}
	if len(unlocker.calls) != 0 {
		t.Error("low score must not unlock the sticker")
	}
	if s.MoveUp() {
		t.Error("input after game over must be ignored")
	}

	s.Reset()
	if s.Phase() != PhasePlaying || len(s.Items()) != 0 || s.Score() != 0 {
		t.Error("Reset should start a clean run")
	}
}

// TestRunnerRewardOnGoodScore 分数达标时结束解锁 Juninho
func TestRunnerRewardOnGoodScore(t *testing.T) {
	unlocker := newRecordingUnlocker()
	s := startedRunner(t, unlocker, seededRandom(1))

	for i := 0; i < 4; i++ {
		s.addItem(s.PlayerX(), s.Lane(), components.PickupStar)
		s.Update(frame)
	}
	// 同一帧内先吃到星星再撞到石头，星星也计入
	s.addItem(s.PlayerX(), s.Lane(), components.PickupStar)
	s.addItem(s.PlayerX(), s.Lane(), components.PickupObstacle)
	s.Update(frame)

	if s.Score() != 5 {
		t.Errorf("expected score 5, got %d", s.Score())
	}
	if s.Phase() != PhaseLost {
		t.Fatalf("expected lost phase, got %s", s.Phase())
	}
	if len(unlocker.calls) != 1 || unlocker.calls[0] != types.CharacterJuninho {
		t.Errorf("expected Juninho unlock, got %v", unlocker.calls)
	}
}

// TestRunnerStartWhilePlaying 进行中再次开始无效
func TestRunnerStartWhilePlaying(t *testing.T) {
	s := startedRunner(t, nil, seededRandom(1))
	if s.Start() {
		t.Error("Start while playing should be ignored")
	}
	s.Dispose()
	if s.Start() {
		t.Error("Start after dispose should be ignored")
	}
}
