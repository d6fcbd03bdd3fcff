package game

import (
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/internal/speech"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/types"
)

// waitForUtterances 等待引擎收到 n 个朗读请求
func waitForUtterances(t *testing.T, e *fakeEngine, n int) []speech.Utterance {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if u := e.utterances(); len(u) >= n {
			return u
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("engine received %d utterances, want %d", len(e.utterances()), n)
	return nil
}

// TestNarratorVoiceSelection 测试按性别挑选声音
func TestNarratorVoiceSelection(t *testing.T) {
	voices := []speech.Voice{
		{Name: "English Daniel", Lang: "en-GB"},
		{Name: "Daniel", Lang: "pt-BR"},
		{Name: "Luciana", Lang: "pt-BR"},
	}

	tests := []struct {
		name      string
		voices    []speech.Voice
		gender    types.Gender
		wantVoice string
		wantPitch float64
	}{
		{"female", voices, types.GenderFemale, "Luciana", 1.2},
		{"male skips other languages", voices, types.GenderMale, "Daniel", 1.0},
		{"no match", []speech.Voice{{Name: "Joana", Lang: "pt-PT"}}, types.GenderFemale, "", 1.2},
		{"no voices", nil, types.GenderMale, "", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNarrator(&fakeEngine{voices: tt.voices}, nil)
			u := n.BuildUtterance("Olá", tt.gender)

			got := ""
			if u.Voice != nil {
				got = u.Voice.Name
			}
			if got != tt.wantVoice {
				t.Errorf("voice = %q, want %q", got, tt.wantVoice)
			}
			if u.Pitch != tt.wantPitch {
				t.Errorf("pitch = %v, want %v", u.Pitch, tt.wantPitch)
			}
			if u.Rate != 1.1 || u.Lang != "pt-BR" {
				t.Errorf("unexpected rate/lang: %v %q", u.Rate, u.Lang)
			}
		})
	}
}

// TestNarratorCaption 字幕显示 3 秒后消失
func TestNarratorCaption(t *testing.T) {
	n := NewNarrator(nil, nil)
	n.Speak("  Muito bem!  ", types.GenderFemale)

	if text, ok := n.Caption(); !ok || text != "Muito bem!" {
		t.Fatalf("Caption() = (%q, %v)", text, ok)
	}
	n.Update(2.9)
	if _, ok := n.Caption(); !ok {
		t.Error("caption should still be visible at 2.9s")
	}
	n.Update(0.2)
	if _, ok := n.Caption(); ok {
		t.Error("caption should be hidden after 3s")
	}

	n.Speak("   ", types.GenderMale)
	if _, ok := n.Caption(); ok {
		t.Error("blank text should not show a caption")
	}
	n.Stop()
}

// TestNarratorInterrupts 新的朗读打断正在进行的朗读
func TestNarratorInterrupts(t *testing.T) {
	defer goleak.VerifyNone(t)

	engine := &fakeEngine{block: true}
	n := NewNarrator(engine, nil)

	n.Speak("Primeira frase", types.GenderMale)
	waitForUtterances(t, engine, 1)
	n.Speak("Segunda frase", types.GenderFemale)
	spoken := waitForUtterances(t, engine, 2)

	if spoken[1].Text != "Segunda frase" {
		t.Errorf("second utterance = %q", spoken[1].Text)
	}
	if text, _ := n.Caption(); text != "Segunda frase" {
		t.Errorf("caption should show the latest line, got %q", text)
	}

	n.Stop()
}

// TestNarratorMutedKeepsCaption 音量为 0 时只显示字幕
func TestNarratorMutedKeepsCaption(t *testing.T) {
	defer goleak.VerifyNone(t)

	sm := NewSettingsManager(nil)
	sm.SetSoundVolume(0)
	engine := &fakeEngine{}
	n := NewNarrator(engine, sm)

	n.Speak("Silêncio", types.GenderFemale)
	n.Stop()

	if len(engine.utterances()) != 0 {
		t.Error("muted narration should not reach the engine")
	}
	if _, ok := n.Caption(); !ok {
		t.Error("muted narration should still show a caption")
	}
}
