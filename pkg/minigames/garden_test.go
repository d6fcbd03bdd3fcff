package minigames

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/types"
)

// TestGardenGrowth 测试植物按正确工具逐步长大并开花
func TestGardenGrowth(t *testing.T) {
	cfg := loadGames(t)
	unlocker := newRecordingUnlocker()
	s := NewGardenSession(cfg.Garden, unlocker, &scriptedRandom{ints: []int{1, 2}})
	s.Drain()

	if s.Need() != NeedWater || s.Stage() != 0 {
		t.Fatalf("expected seed stage needing water, got stage %d need %s", s.Stage(), s.Need())
	}

	steps := []struct {
		tool      Need
		wantStage int
		wantNeed  Need
		wantCue   Cue
	}{
		{NeedSun, 0, NeedWater, CueError},
		{NeedWater, 1, NeedSun, CueSuccess},
		{NeedLove, 1, NeedSun, CueError},
		{NeedSun, 2, NeedLove, CueSuccess},
	}
	for i, st := range steps {
		if !s.Apply(st.tool) {
			t.Fatalf("step %d: Apply rejected", i)
		}
		if s.Stage() != st.wantStage || s.Need() != st.wantNeed {
			t.Errorf("step %d: stage %d need %s, want stage %d need %s",
				i, s.Stage(), s.Need(), st.wantStage, st.wantNeed)
		}
		if !hasCue(s.Drain(), st.wantCue) {
			t.Errorf("step %d: expected cue %s", i, st.wantCue)
		}
	}

	s.Apply(NeedLove)
	if s.Phase() != PhaseWon || s.Stage() != s.Stages() {
		t.Fatalf("expected bloom, got phase %s stage %d", s.Phase(), s.Stage())
	}
	speech := speechOf(s.Drain())
	if diff := cmp.Diff([]string{cfg.Garden.CorrectLine, cfg.Garden.BloomLine}, speech); diff != "" {
		t.Errorf("speech mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]types.Character{types.CharacterVerinha}, unlocker.calls); diff != "" {
		t.Errorf("unlock calls mismatch (-want +got):\n%s", diff)
	}
	if s.Apply(NeedWater) {
		t.Error("Apply after bloom must be ignored")
	}
}

// TestGardenWrongToolLine 给错工具时念出提示
func TestGardenWrongToolLine(t *testing.T) {
	cfg := loadGames(t)
	s := NewGardenSession(cfg.Garden, nil, seededRandom(1))
	s.Drain()

	s.Apply(NeedLove)
	if diff := cmp.Diff([]string{cfg.Garden.WrongLine}, speechOf(s.Drain())); diff != "" {
		t.Errorf("speech mismatch (-want +got):\n%s", diff)
	}
}

// TestGardenReset 重新开始回到种子
func TestGardenReset(t *testing.T) {
	cfg := loadGames(t)
	s := NewGardenSession(cfg.Garden, nil, &scriptedRandom{ints: []int{2}})
	s.Apply(NeedWater)
	s.Reset()

	if s.Stage() != 0 || s.Need() != NeedWater || s.Phase() != PhasePlaying {
		t.Errorf("unexpected state after reset: stage %d need %s phase %s", s.Stage(), s.Need(), s.Phase())
	}
}
