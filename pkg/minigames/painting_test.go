package minigames

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/types"
)

// TestPaintingFill 测试选色与填充
func TestPaintingFill(t *testing.T) {
	cfg := loadGames(t)
	s := NewPaintingSession(cfg.Painting, nil, seededRandom(1))
	s.Drain()

	for _, region := range s.Regions() {
		if s.Fill(region) != blankFill {
			t.Errorf("region %s should start blank", region)
		}
	}

	if !s.SelectColor(2) {
		t.Fatal("SelectColor rejected")
	}
	effects := s.Drain()
	if diff := cmp.Diff([]string{"Amarelo"}, speechOf(effects)); diff != "" {
		t.Errorf("color name mismatch (-want +got):\n%s", diff)
	}

	if !s.Paint("petal1") {
		t.Fatal("Paint rejected")
	}
	yellow := color.RGBA{R: 0xFA, G: 0xCC, B: 0x15, A: 0xFF}
	if got := s.Fill("petal1"); got != yellow {
		t.Errorf("petal1 = %v, want %v", got, yellow)
	}
	if s.Fill("petal2") != blankFill {
		t.Error("other regions must stay blank")
	}

	// 橡皮擦
	s.SelectColor(len(s.Palette()) - 1)
	s.Paint("petal1")
	if s.Fill("petal1") != blankFill {
		t.Error("eraser should restore white")
	}

	if s.Paint("roof") {
		t.Error("unknown region must be rejected")
	}
	if s.SelectColor(99) {
		t.Error("out of range color must be rejected")
	}
}

// TestPaintingFinish 完成作品解锁 Tony
func TestPaintingFinish(t *testing.T) {
	cfg := loadGames(t)
	unlocker := newRecordingUnlocker()
	s := NewPaintingSession(cfg.Painting, unlocker, seededRandom(1))
	s.Drain()

	s.SelectColor(0)
	s.Paint("center")
	if !s.Finish() {
		t.Fatal("Finish rejected")
	}
	if s.Phase() != PhaseWon {
		t.Fatalf("expected won phase, got %s", s.Phase())
	}
	effects := s.Drain()
	if !hasCue(effects, CueHero) {
		t.Error("finish should play the hero cue")
	}
	if diff := cmp.Diff([]string{cfg.Painting.FinishLine}, speechOf(effects)); diff != "" {
		t.Errorf("speech mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]types.Character{types.CharacterTony}, unlocker.calls); diff != "" {
		t.Errorf("unlock calls mismatch (-want +got):\n%s", diff)
	}
	if s.Paint("stem") {
		t.Error("painting after finish must be ignored")
	}

	s.Reset()
	if s.Fill("center") != blankFill || s.Selected() != 0 {
		t.Error("Reset should clear the canvas")
	}
}
