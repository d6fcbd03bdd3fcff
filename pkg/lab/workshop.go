package lab

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/semaphore"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
)

// 实验室台词
const (
	LineImageLoaded  = "Imagem carregada! Agora escolha uma ideia ou escreva."
	LineImageFailed  = "Ops, não consegui ler essa imagem."
	LineSuggestion   = "Legal! Vamos fazer: %s"
	LineMissingInput = "Escolha uma imagem e uma ideia primeiro."
	LineWorking      = "Estou inventando... aguarde!"
	LineSuccess      = "Olha só que incrível!"
	LineNoResult     = "Fiquei confuso. Tente outra ideia."
	LineFailure      = "Tivemos um problema técnico."
)

// ErrBusy 请求进行中时不能更换图片
var ErrBusy = errors.New("lab is busy with a request")

// maxInstructionRunes 输入框最多接受的字符数
const maxInstructionRunes = 120

// defaultTimeout 配置缺失时单次请求的超时
const defaultTimeout = 60 * time.Second

// editResult 后台请求的结果
type editResult struct {
	data []byte
	mime string
	err  error
}

// Workshop 创意实验室的状态
//
// 所有方法都在游戏循环的 goroutine 上调用；唯一的后台 goroutine 是
// 图片编辑请求，结果通过 channel 交回，由 Poll 在 Update 中取出。
type Workshop struct {
	cfg    config.LabConfig
	editor ImageEditor // 可为 nil（没有 API 密钥）

	sem     *semaphore.Weighted
	ctx     context.Context
	cancel  context.CancelFunc
	results chan editResult
	wg      sync.WaitGroup

	source      []byte
	sourceMIME  string
	thumbnail   *image.RGBA
	instruction string

	result      image.Image
	resultThumb *image.RGBA
	working     bool

	effects  []minigames.Effect
	disposed bool
}

// NewWorkshop 创建实验室
//
// 参数：
//   - cfg: 实验室配置（快捷创意、缩略图大小、超时）
//   - editor: 图片编辑服务，为 nil 时每次生成都会报告技术问题
func NewWorkshop(cfg config.LabConfig, editor ImageEditor) *Workshop {
	ctx, cancel := context.WithCancel(context.Background())
	return &Workshop{
		cfg:     cfg,
		editor:  editor,
		sem:     semaphore.NewWeighted(1),
		ctx:     ctx,
		cancel:  cancel,
		results: make(chan editResult, 1),
	}
}

// LoadImage 从文件系统（如拖入窗口的文件）读取图片
func (w *Workshop) LoadImage(fsys fs.FS, name string) error {
	if w.disposed {
		return nil
	}
	if w.working {
		return ErrBusy
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		w.emit(minigames.CueError, LineImageFailed)
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	return w.LoadImageData(data)
}

// LoadImageData 使用图片文件内容作为原图，清除上一次的结果
//
// 返回：
//   - error: 图片无法解码或请求进行中时返回错误，原来的图片保持不变
func (w *Workshop) LoadImageData(data []byte) error {
	if w.disposed {
		return nil
	}
	if w.working {
		return ErrBusy
	}
	img, mime, err := DecodeImage(data)
	if err != nil {
		w.emit(minigames.CueError, LineImageFailed)
		return err
	}

	w.source = data
	w.sourceMIME = mime
	w.thumbnail = Thumbnail(img, w.thumbnailSize())
	w.result = nil
	w.resultThumb = nil
	w.emit(minigames.CueSuccess, LineImageLoaded)
	log.Printf("[Lab] Image loaded (%s, %d bytes)", mime, len(data))
	return nil
}

// UseSuggestion 使用第 i 个快捷创意
func (w *Workshop) UseSuggestion(i int) bool {
	if w.disposed || w.working || i < 0 || i >= len(w.cfg.Suggestions) {
		return false
	}
	text := w.cfg.Suggestions[i].Text
	w.SetInstruction(text)
	w.emit(minigames.CuePop, fmt.Sprintf(LineSuggestion, text))
	return true
}

// SetInstruction 替换创意文字
func (w *Workshop) SetInstruction(text string) {
	if w.disposed || w.working {
		return
	}
	w.instruction = truncateRunes(text, maxInstructionRunes)
}

// TypeRune 在创意末尾追加一个字符
func (w *Workshop) TypeRune(r rune) {
	if w.disposed || w.working || r < ' ' {
		return
	}
	if utf8.RuneCountInString(w.instruction) >= maxInstructionRunes {
		return
	}
	w.instruction += string(r)
}

// Backspace 删除创意的最后一个字符
func (w *Workshop) Backspace() {
	if w.disposed || w.working || w.instruction == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(w.instruction)
	w.SetInstruction(w.instruction[:len(w.instruction)-size])
}

// Generate 开始生成图片
//
// 缺少图片或创意时只播报提示。请求在后台进行，同一时间只有一个。
//
// 返回：
//   - bool: 是否开始了新的请求
func (w *Workshop) Generate() bool {
	if w.disposed || w.working {
		return false
	}
	instruction := strings.TrimSpace(w.instruction)
	if w.source == nil || instruction == "" {
		w.emit(minigames.CueError, LineMissingInput)
		return false
	}
	if !w.sem.TryAcquire(1) {
		return false
	}

	w.working = true
	w.emit(minigames.CueClick, LineWorking)

	prompt := BuildPrompt(instruction)
	source, mime := w.source, w.sourceMIME
	ctx, cancel := context.WithTimeout(w.ctx, w.timeout())

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.sem.Release(1)
		defer cancel()

		var res editResult
		if w.editor == nil {
			res.err = ErrNoAPIKey
		} else {
			res.data, res.mime, res.err = w.editor.Edit(ctx, source, mime, prompt)
		}
		w.results <- res
	}()
	return true
}

// Poll 取回已经完成的请求结果，在 Update 中每帧调用
func (w *Workshop) Poll() {
	if w.disposed || !w.working {
		return
	}
	select {
	case res := <-w.results:
		w.working = false
		w.finish(res)
	default:
	}
}

// finish 处理请求结果
func (w *Workshop) finish(res editResult) {
	if res.err != nil {
		log.Printf("[Lab] Image edit failed: %v", res.err)
		w.emit(minigames.CueNone, LineFailure)
		return
	}
	if res.data == nil {
		log.Printf("[Lab] No image in response")
		w.emit(minigames.CueNone, LineNoResult)
		return
	}

	img, _, err := DecodeImage(res.data)
	if err != nil {
		log.Printf("[Lab] Failed to decode result (%s): %v", res.mime, err)
		w.emit(minigames.CueNone, LineFailure)
		return
	}
	w.result = img
	w.resultThumb = Thumbnail(img, w.thumbnailSize())
	w.emit(minigames.CueHero, LineSuccess)
}

// Dispose 取消进行中的请求并等待其结束，之后不会再产生任何效果
func (w *Workshop) Dispose() {
	if w.disposed {
		return
	}
	w.disposed = true
	w.effects = nil
	w.cancel()
	w.wg.Wait()
}

// Drain 取出并清空累积的效果
func (w *Workshop) Drain() []minigames.Effect {
	if len(w.effects) == 0 {
		return nil
	}
	out := w.effects
	w.effects = nil
	return out
}

// emit 追加一个效果
func (w *Workshop) emit(cue minigames.Cue, speech string) {
	if w.disposed {
		return
	}
	w.effects = append(w.effects, minigames.Effect{Cue: cue, Speech: speech})
}

// Working 是否有请求正在进行
func (w *Workshop) Working() bool {
	return w.working
}

// Instruction 返回当前创意
func (w *Workshop) Instruction() string {
	return w.instruction
}

// Suggestions 返回快捷创意
func (w *Workshop) Suggestions() []config.LabSuggestion {
	return w.cfg.Suggestions
}

// SourceThumbnail 返回原图缩略图，未选择时为 nil
func (w *Workshop) SourceThumbnail() *image.RGBA {
	return w.thumbnail
}

// Result 返回生成的图片，没有时为 nil
func (w *Workshop) Result() image.Image {
	return w.result
}

// ResultThumbnail 返回生成图片的缩略图，没有时为 nil
func (w *Workshop) ResultThumbnail() *image.RGBA {
	return w.resultThumb
}

// Ready 图片和创意是否都已准备好
func (w *Workshop) Ready() bool {
	return w.source != nil && strings.TrimSpace(w.instruction) != ""
}

func (w *Workshop) thumbnailSize() int {
	if w.cfg.ThumbnailSize > 0 {
		return w.cfg.ThumbnailSize
	}
	return 220
}

func (w *Workshop) timeout() time.Duration {
	if w.cfg.Timeout > 0 {
		return time.Duration(w.cfg.Timeout * float64(time.Second))
	}
	return defaultTimeout
}

// truncateRunes 截断到最多 n 个字符
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
