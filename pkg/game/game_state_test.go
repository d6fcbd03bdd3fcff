package game

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/types"
)

// loadTestGames 读取仓库中的 data/games.yaml
func loadTestGames(t *testing.T) *config.GamesConfig {
	t.Helper()
	data, err := os.ReadFile("../../data/games.yaml")
	if err != nil {
		t.Fatalf("Failed to read games.yaml: %v", err)
	}
	cfg, err := config.ParseGamesConfig(data)
	if err != nil {
		t.Fatalf("ParseGamesConfig failed: %v", err)
	}
	return cfg
}

// TestNewGameStateInMemory 没有存储、音频和语音时也能构造
func TestNewGameStateInMemory(t *testing.T) {
	gs := NewGameState(loadTestGames(t), Options{Random: &scriptedRandom{floats: []float64{0.9}}})
	defer gs.Close()

	if gs.Settings == nil || gs.Stickers == nil || gs.Audio == nil || gs.Music == nil || gs.Narrator == nil || gs.Resources == nil {
		t.Fatal("all services should be constructed")
	}
	if gs.Stickers.Count() != 0 {
		t.Error("a fresh ledger should be empty")
	}

	gs.Update(1.0 / 60.0)
	if !gs.Music.Running() {
		t.Error("music should start on the first update")
	}
}

// TestGameStateDispatch 效果被交给音频和旁白
func TestGameStateDispatch(t *testing.T) {
	engine := &fakeEngine{}
	gs := NewGameState(loadTestGames(t), Options{Speech: engine})

	var played int
	gs.Audio.output = func(pcm []byte) { played++ }

	gs.Dispatch([]minigames.Effect{
		{Cue: minigames.CueClick},
		{Speech: "Vamos lá!", Voice: types.GenderFemale},
		{Cue: minigames.CueSuccess, Speech: "Muito bem!"},
	})
	gs.Close()

	if played != 2 {
		t.Errorf("expected 2 cues played, got %d", played)
	}
	if text, _ := gs.Narrator.Caption(); text != "Muito bem!" {
		t.Errorf("caption = %q, want the last line", text)
	}

	var texts []string
	for _, u := range engine.utterances() {
		texts = append(texts, u.Text)
	}
	// 两次朗读在各自的 goroutine 中开始，顺序不固定
	sortStrings := cmpopts.SortSlices(func(a, b string) bool { return a < b })
	if diff := cmp.Diff([]string{"Vamos lá!", "Muito bem!"}, texts, sortStrings); diff != "" {
		t.Errorf("utterances mismatch (-want +got):\n%s", diff)
	}
}

// TestGameStateUnlockPersists 小游戏通过 GameState 的贴纸记录解锁并持久化
func TestGameStateUnlockPersists(t *testing.T) {
	store := newMemStore()
	games := loadTestGames(t)

	gs := NewGameState(games, Options{Store: store})
	s := minigames.NewPaintingSession(games.Painting, gs.Stickers, nil)
	s.Finish()
	gs.Close()

	reloaded := NewGameState(games, Options{Store: store})
	defer reloaded.Close()
	if !reloaded.Stickers.IsUnlocked(games.Painting.Reward) {
		t.Errorf("sticker %s should survive a restart", games.Painting.Reward)
	}
}
