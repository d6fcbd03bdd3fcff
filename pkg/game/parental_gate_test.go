package game

import (
	"testing"
)

// TestParentalGateOperandRange 加数范围 a ∈ [10,19]，b ∈ [1,9]
func TestParentalGateOperandRange(t *testing.T) {
	tests := []struct {
		ints  []int
		wantA int
		wantB int
	}{
		{[]int{0, 0}, 10, 1},
		{[]int{9, 8}, 19, 9},
		{[]int{5, 3}, 15, 4},
	}
	for _, tt := range tests {
		g := NewParentalGate(ScreenLab, &scriptedRandom{ints: tt.ints})
		a, b := g.Operands()
		if a != tt.wantA || b != tt.wantB {
			t.Errorf("ints %v: operands = (%d, %d), want (%d, %d)", tt.ints, a, b, tt.wantA, tt.wantB)
		}
	}
}

// TestParentalGateSubmit 测试答案检查
func TestParentalGateSubmit(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"19", true},
		{" 19 ", true},
		{"18", false},
		{"", false},
		{"dezenove", false},
		{"019", true},
	}
	for _, tt := range tests {
		g := NewParentalGate(ScreenSettings, &scriptedRandom{ints: []int{5, 3}})
		if got := g.Submit(tt.answer); got != tt.want {
			t.Errorf("Submit(%q) = %v, want %v", tt.answer, got, tt.want)
		}
		wantMsg := ""
		if !tt.want {
			wantMsg = GateWrongAnswer
		}
		if g.Message() != wantMsg {
			t.Errorf("Submit(%q): message = %q, want %q", tt.answer, g.Message(), wantMsg)
		}
	}
}

// TestParentalGateTyping 测试数字输入框
func TestParentalGateTyping(t *testing.T) {
	g := NewParentalGate(ScreenLab, &scriptedRandom{ints: []int{2, 2}})
	if g.Problem() != "12 + 3 = ?" {
		t.Errorf("Problem() = %q", g.Problem())
	}

	for _, r := range "1a5x" {
		g.TypeDigit(r)
	}
	if g.Answer() != "15" {
		t.Errorf("Answer() = %q, want 15", g.Answer())
	}

	g.Backspace()
	g.TypeDigit('4')
	g.TypeDigit('4')
	g.TypeDigit('4')
	if g.Answer() != "144" {
		t.Errorf("input should be limited to 3 digits, got %q", g.Answer())
	}

	if g.Submit(g.Answer()) {
		t.Fatal("144 is not 15")
	}
	if g.Answer() != "" {
		t.Error("a wrong answer should clear the input")
	}
	if g.Problem() != "12 + 3 = ?" {
		t.Error("the problem should stay the same after a wrong answer")
	}

	g.TypeDigit('1')
	if g.Message() != "" {
		t.Error("typing should clear the error message")
	}
	g.Backspace()
	g.Backspace()
	if g.Answer() != "" {
		t.Error("backspace on empty input should be a no-op")
	}
}
