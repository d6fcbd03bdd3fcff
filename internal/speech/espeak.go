package speech

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// espeak 参数的基准值
const (
	espeakBaseRate  = 175 // 每分钟单词数
	espeakBasePitch = 50  // 0 ~ 99
	espeakMaxAmp    = 200 // 0 ~ 200
	espeakDefault   = "pt-br"
)

// espeakBinaries 按优先级排列的可执行文件名
var espeakBinaries = []string{"espeak-ng", "espeak"}

// EspeakEngine 调用 espeak-ng / espeak 子进程朗读
type EspeakEngine struct {
	bin    string
	voices []Voice
}

// NewEspeakEngine 在 PATH 中查找 espeak-ng 或 espeak
//
// 返回：
//   - *EspeakEngine: 引擎实例
//   - bool: 找不到可执行文件时返回 false
func NewEspeakEngine() (*EspeakEngine, bool) {
	for _, name := range espeakBinaries {
		path, err := exec.LookPath(name)
		if err != nil {
			continue
		}
		e := &EspeakEngine{bin: path}
		if out, err := exec.Command(path, "--voices=pt").Output(); err == nil {
			e.voices = ParseEspeakVoices(out)
		}
		return e, true
	}
	return nil, false
}

// Name 引擎名称
func (e *EspeakEngine) Name() string {
	return "espeak (" + e.bin + ")"
}

// Voices 返回 espeak 报告的葡萄牙语声音
func (e *EspeakEngine) Voices() []Voice {
	return e.voices
}

// Speak 启动 espeak 子进程朗读，ctx 取消时结束子进程
func (e *EspeakEngine) Speak(ctx context.Context, u Utterance) error {
	cmd := exec.CommandContext(ctx, e.bin, EspeakArgs(u)...)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("espeak failed: %w", err)
	}
	return nil
}

// EspeakArgs 把朗读请求转换为 espeak 命令行参数
func EspeakArgs(u Utterance) []string {
	voice := espeakDefault
	if u.Voice != nil && u.Voice.Lang != "" {
		voice = u.Voice.Lang
	} else if u.Lang != "" {
		voice = strings.ToLower(u.Lang)
	}

	rate := u.Rate
	if rate <= 0 {
		rate = 1
	}
	pitch := u.Pitch
	if pitch <= 0 {
		pitch = 1
	}

	return []string{
		"-v", voice,
		"-s", strconv.Itoa(int(math.Round(espeakBaseRate * rate))),
		"-p", strconv.Itoa(clampInt(int(math.Round(espeakBasePitch*pitch)), 0, 99)),
		"-a", strconv.Itoa(clampInt(int(math.Round(u.Volume*espeakMaxAmp/2)), 0, espeakMaxAmp)),
		"--", u.Text,
	}
}

// ParseEspeakVoices 解析 `espeak --voices` 的输出
//
// 输出格式（第一行是表头）：
//
//	Pty Language       Age/Gender VoiceName          File                 Other Languages
//	 5  pt-br           --/M      Portuguese_(Brazil) roa/pt-BR
func ParseEspeakVoices(out []byte) []Voice {
	var voices []Voice
	scanner := bufio.NewScanner(bytes.NewReader(out))
	first := true
	for scanner.Scan() {
		if first {
			first = false
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			continue
		}
		voices = append(voices, Voice{Name: fields[3], Lang: fields[1]})
	}
	return voices
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
