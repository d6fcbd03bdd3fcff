package utils

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// monoMeasure 等宽测量：每个字符 10 像素
func monoMeasure(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * 10
}

// TestWrapWords 测试按单词换行
func TestWrapWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth float64
		want     []string
	}{
		{
			name:     "短文本不换行",
			input:    "Olá!",
			maxWidth: 100,
			want:     []string{"Olá!"},
		},
		{
			name:     "在空格处换行",
			input:    "Encontre os pares da Turminha",
			maxWidth: 120,
			want:     []string{"Encontre os", "pares da", "Turminha"},
		},
		{
			name:     "保留换行符",
			input:    "Muito bem!\nDe novo",
			maxWidth: 200,
			want:     []string{"Muito bem!", "De novo"},
		},
		{
			name:     "超长单词按字符拆分",
			input:    "abcdefghij xy",
			maxWidth: 40,
			want:     []string{"abcd", "efgh", "ij", "xy"},
		},
		{
			name:     "连续空格折叠",
			input:    "a   b",
			maxWidth: 100,
			want:     []string{"a b"},
		},
		{
			name:     "空文本",
			input:    "",
			maxWidth: 100,
			want:     []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapWords(tt.input, tt.maxWidth, monoMeasure)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("WrapWords mismatch (-want +got):\n%s", diff)
			}
			for _, line := range got {
				if monoMeasure(line) > tt.maxWidth {
					t.Errorf("行 %q 超过最大宽度 %.0f", line, tt.maxWidth)
				}
			}
		})
	}
}

// TestWrapTextWithGoFont 使用内置 Go 字体测试真实测量
func TestWrapTextWithGoFont(t *testing.T) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("无法创建字体源: %v", err)
	}
	font := &text.GoTextFace{Source: source, Size: 22}

	lines := WrapText("Você tem um coração enorme! Ajudar os amigos é muito legal.", font, 260)
	if len(lines) < 2 {
		t.Errorf("期望至少 2 行，实际得到 %d 行: %v", len(lines), lines)
	}
	for _, line := range lines {
		if w := measureTextWidth(line, font); w > 260 {
			t.Errorf("行 %q 宽度 %.1f 超过 260", line, w)
		}
	}
}

// TestWrapTextEdgeCases 测试边界情况
func TestWrapTextEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		font     *text.GoTextFace
		maxWidth float64
		wantLen  int
	}{
		{"nil font", "teste", nil, 100, 1},
		{"zero maxWidth", "teste", &text.GoTextFace{Size: 22}, 0, 1},
		{"negative maxWidth", "teste", &text.GoTextFace{Size: 22}, -100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, tt.font, tt.maxWidth)
			if len(lines) != tt.wantLen {
				t.Errorf("期望 %d 行，实际得到 %d 行", tt.wantLen, len(lines))
			}
		})
	}
}
