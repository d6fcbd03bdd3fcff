package minigames

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/types"
)

// TestFriendshipWrongAnswerStays 答错显示反馈后停留在原情景
func TestFriendshipWrongAnswerStays(t *testing.T) {
	cfg := loadGames(t)
	s := NewFriendshipSession(cfg.Friendship, nil, seededRandom(1))
	s.Drain()

	if !s.Choose(2) {
		t.Fatal("Choose rejected")
	}
	fb := s.Feedback()
	if fb == nil || fb.Correct || fb.Text != "Rir do amigo não é legal." {
		t.Fatalf("unexpected feedback %+v", fb)
	}
	if !hasCue(s.Drain(), CueError) {
		t.Error("wrong answer should play the error cue")
	}
	if s.Choose(1) {
		t.Error("Choose during feedback must be ignored")
	}

	s.Update(cfg.Friendship.WrongDelay)
	if s.Feedback() != nil || s.ScenarioIndex() != 0 || s.Phase() != PhasePlaying {
		t.Errorf("expected to return to scenario 0, got index %d phase %s", s.ScenarioIndex(), s.Phase())
	}
}

// TestFriendshipUnknownOption 不存在的选项无效
func TestFriendshipUnknownOption(t *testing.T) {
	cfg := loadGames(t)
	s := NewFriendshipSession(cfg.Friendship, nil, seededRandom(1))
	if s.Choose(42) {
		t.Error("unknown option must be rejected")
	}
	if s.Phase() != PhasePlaying {
		t.Error("unknown option must not enter feedback")
	}
}

// TestFriendshipCompletes 全部答对后完成并解锁 Maria
func TestFriendshipCompletes(t *testing.T) {
	cfg := loadGames(t)
	unlocker := newRecordingUnlocker()
	s := NewFriendshipSession(cfg.Friendship, unlocker, seededRandom(1))

	var friends []types.Character
	for i, scenario := range cfg.Friendship.Scenarios {
		cur, ok := s.Scenario()
		if !ok || s.ScenarioIndex() != i {
			t.Fatalf("scenario %d: unexpected index %d", i, s.ScenarioIndex())
		}
		friends = append(friends, cur.Friend)

		s.Choose(scenario.Correct)
		if fb := s.Feedback(); fb == nil || !fb.Correct {
			t.Fatalf("scenario %d: expected correct feedback", i)
		}
		s.Update(cfg.Friendship.CorrectDelay - 0.1)
		if s.ScenarioIndex() != i {
			t.Fatalf("scenario %d: advanced before the delay", i)
		}
		s.Update(0.1)
	}

	if s.Phase() != PhaseWon {
		t.Fatalf("expected won phase, got %s", s.Phase())
	}
	want := []types.Character{types.CharacterJao, types.CharacterTony, types.CharacterVerinha}
	if diff := cmp.Diff(want, friends); diff != "" {
		t.Errorf("friends mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]types.Character{types.CharacterMaria}, unlocker.calls); diff != "" {
		t.Errorf("unlock calls mismatch (-want +got):\n%s", diff)
	}
	speech := speechOf(s.Drain())
	if len(speech) == 0 || speech[len(speech)-1] != cfg.Friendship.CompleteLine {
		t.Errorf("expected the completion line last, got %v", speech)
	}

	s.Reset()
	if s.ScenarioIndex() != 0 || s.Feedback() != nil || s.Phase() != PhasePlaying {
		t.Error("Reset should return to the first scenario")
	}
}
