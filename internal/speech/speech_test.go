package speech

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestEspeakArgs 测试朗读参数转换
func TestEspeakArgs(t *testing.T) {
	tests := []struct {
		name string
		u    Utterance
		want []string
	}{
		{
			name: "male default voice",
			u:    Utterance{Text: "Olá", Lang: "pt-BR", Rate: 1.1, Pitch: 1.0, Volume: 1},
			want: []string{"-v", "pt-br", "-s", "193", "-p", "50", "-a", "100", "--", "Olá"},
		},
		{
			name: "female named voice",
			u: Utterance{Text: "Oi", Lang: "pt-BR", Rate: 1.1, Pitch: 1.2, Volume: 0.5,
				Voice: &Voice{Name: "Luciana", Lang: "pt-br+f3"}},
			want: []string{"-v", "pt-br+f3", "-s", "193", "-p", "60", "-a", "50", "--", "Oi"},
		},
		{
			name: "zero values fall back",
			u:    Utterance{Text: "-x"},
			want: []string{"-v", "pt-br", "-s", "175", "-p", "50", "-a", "0", "--", "-x"},
		},
		{
			name: "pitch clamps",
			u:    Utterance{Text: "a", Pitch: 5, Volume: 3},
			want: []string{"-v", "pt-br", "-s", "175", "-p", "99", "-a", "200", "--", "a"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, EspeakArgs(tt.u)); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestParseEspeakVoices 测试 --voices 输出解析
func TestParseEspeakVoices(t *testing.T) {
	out := []byte(`Pty Language       Age/Gender VoiceName          File                 Other Languages
 5  pt             --/M      Portuguese_(Portugal) roa/pt               (pt-pt 5)
 5  pt-br          --/M      Portuguese_(Brazil) roa/pt-BR
broken
`)
	want := []Voice{
		{Name: "Portuguese_(Portugal)", Lang: "pt"},
		{Name: "Portuguese_(Brazil)", Lang: "pt-br"},
	}
	if diff := cmp.Diff(want, ParseEspeakVoices(out)); diff != "" {
		t.Errorf("voices mismatch (-want +got):\n%s", diff)
	}
}

// TestHasLang 测试语言标签匹配
func TestHasLang(t *testing.T) {
	tests := []struct {
		tag, lang string
		want      bool
	}{
		{"pt-BR", "pt", true},
		{"pt_BR", "pt-br", true},
		{"en-US", "pt", false},
	}
	for _, tt := range tests {
		if got := HasLang(tt.tag, tt.lang); got != tt.want {
			t.Errorf("HasLang(%q, %q) = %v, want %v", tt.tag, tt.lang, got, tt.want)
		}
	}
}

// TestSilentEngine 静音引擎立即返回
func TestSilentEngine(t *testing.T) {
	var e Engine = SilentEngine{}
	if err := e.Speak(context.Background(), Utterance{Text: "oi"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := e.Speak(ctx, Utterance{Text: "oi"}); err == nil {
		t.Error("cancelled context should be reported")
	}
	if len(e.Voices()) != 0 {
		t.Error("silent engine has no voices")
	}
}
