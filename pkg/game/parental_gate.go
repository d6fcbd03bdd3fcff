package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
)

// GateWrongAnswer 答错时显示的提示
const GateWrongAnswer = "Resposta incorreta. Tente novamente."

// gateMaxDigits 输入框最多接受的数字位数
const gateMaxDigits = 3

// ParentalGate 家长验证：一道两位数加一位数的加法题
type ParentalGate struct {
	a, b    int
	answer  string
	message string
	pending Screen
}

// NewParentalGate 创建家长验证，a ∈ [10,19]，b ∈ [1,9]
//
// 参数：
//   - pending: 验证通过后前往的画面
//   - rng: 随机数来源
func NewParentalGate(pending Screen, rng minigames.Random) *ParentalGate {
	return &ParentalGate{
		a:       10 + rng.IntN(10),
		b:       1 + rng.IntN(9),
		pending: pending,
	}
}

// Problem 返回题目文本
func (g *ParentalGate) Problem() string {
	return fmt.Sprintf("%d + %d = ?", g.a, g.b)
}

// Operands 返回两个加数
func (g *ParentalGate) Operands() (int, int) {
	return g.a, g.b
}

// TypeDigit 在输入框追加一位数字，非数字或超长时忽略
func (g *ParentalGate) TypeDigit(r rune) {
	if r < '0' || r > '9' || len(g.answer) >= gateMaxDigits {
		return
	}
	g.answer += string(r)
	g.message = ""
}

// Backspace 删除最后一位
func (g *ParentalGate) Backspace() {
	if g.answer != "" {
		g.answer = g.answer[:len(g.answer)-1]
	}
}

// Answer 返回输入框当前内容
func (g *ParentalGate) Answer() string {
	return g.answer
}

// Message 返回错误提示，没有时为空
func (g *ParentalGate) Message() string {
	return g.message
}

// Pending 返回验证通过后前往的画面
func (g *ParentalGate) Pending() Screen {
	return g.pending
}

// Submit 检查答案
// 非数字或错误答案显示提示并清空输入，题目保持不变
//
// 返回：
//   - bool: 是否答对
func (g *ParentalGate) Submit(answer string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err == nil && n == g.a+g.b {
		g.message = ""
		return true
	}
	g.message = GateWrongAnswer
	g.answer = ""
	return false
}
