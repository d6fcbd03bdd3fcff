package scenes

import (
	"image"
	"image/color"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/components"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/game"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/lab"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

// 实验室布局
const (
	labBoxSize       = 220.0
	labBoxY          = 100.0
	labSourceX       = 40.0
	labResultX       = 540.0
	labSuggestionX   = 280.0
	labSuggestionW   = 240.0
	labInstructionY  = 350.0
	labGenerateWidth = 200.0
	labGenerateY     = 440.0
)

// labScene 创意实验室
//
// 把图片文件拖进窗口作为原图，选择一个快捷创意或直接打字，
// 点击"Criar!"后在后台生成，结果每帧轮询取回。
type labScene struct {
	uiScene
	workshop *lab.Workshop
	title    string
	keys     utils.KeyInput
	dropped  func() fs.FS
	generate *components.ButtonComponent

	sourceThumb *image.RGBA
	sourceImage *ebiten.Image
	resultThumb *image.RGBA
	resultImage *ebiten.Image
}

func newLabScene(deps Deps) *labScene {
	s := &labScene{
		uiScene:  newUIScene(deps),
		workshop: lab.NewWorkshop(deps.State.Games.Lab, deps.Editor),
		title:    menuTitle(deps.State.Games, game.ScreenLab),
		keys:     deps.Keys,
		dropped:  ebiten.DroppedFiles,
	}
	s.addBackButton()

	for i, suggestion := range s.workshop.Suggestions() {
		y := labBoxY + float64(i)*56
		s.addButton(labSuggestionX, y, labSuggestionW, 48, suggestion.Label, colorPrimary, func() {
			s.workshop.UseSuggestion(i)
		})
	}
	s.generate = s.addButton((config.GameWindowWidth-labGenerateWidth)/2, labGenerateY, labGenerateWidth, 64, "Criar!", colorGreen, func() {
		s.workshop.Generate()
	})
	return s
}

// Update 处理拖入的文件和键盘输入，轮询请求结果
func (s *labScene) Update(dt float64) {
	s.elapsed += dt
	s.loadDropped()
	if !s.workshop.Working() {
		for _, r := range s.keys.AppendChars(nil) {
			s.workshop.TypeRune(r)
		}
		if s.keys.JustPressed(ebiten.KeyBackspace) {
			s.workshop.Backspace()
		}
		if s.keys.JustPressed(ebiten.KeyEnter) {
			s.workshop.Generate()
		}
	}

	s.generate.Enabled = !s.workshop.Working()
	if s.workshop.Working() {
		s.generate.Label = "Criando..."
	} else {
		s.generate.Label = "Criar!"
	}
	s.uiLayer.update(dt)

	s.workshop.Poll()
	s.dispatch(s.workshop.Drain())
}

// loadDropped 读取拖进窗口的第一个文件
func (s *labScene) loadDropped() {
	files := s.dropped()
	if files == nil {
		return
	}
	var path string
	_ = fs.WalkDir(files, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		path = p
		return fs.SkipAll
	})
	if path == "" {
		return
	}
	if err := s.workshop.LoadImage(files, path); err != nil {
		log.Printf("[LabScene] Failed to load dropped file %s: %v", path, err)
	}
}

func (s *labScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorCream)
	s.drawTitle(screen, s.title, colorDark)

	s.sourceImage, s.sourceThumb = syncThumbnail(s.sourceImage, s.sourceThumb, s.workshop.SourceThumbnail())
	s.resultImage, s.resultThumb = syncThumbnail(s.resultImage, s.resultThumb, s.workshop.ResultThumbnail())
	s.drawBox(screen, labSourceX, s.sourceImage, "Arraste uma foto\naqui")
	s.drawBox(screen, labResultX, s.resultImage, "Resultado")

	// 创意输入框
	utils.DrawRoundedRect(screen, labSourceX, labInstructionY, config.GameWindowWidth-2*labSourceX, 64, 16, colorWhite)
	vector.StrokeRect(screen, labSourceX, labInstructionY, config.GameWindowWidth-2*labSourceX, 64, 2, colorGray, true)
	instruction := s.workshop.Instruction()
	clr := colorText
	if instruction == "" {
		instruction, clr = "Escreva sua ideia...", colorGray
	} else if !s.workshop.Working() && utils.Pulse(s.elapsed, 1) > 0.5 {
		instruction += "_"
	}
	lines := utils.WrapText(instruction, s.smallFont, config.GameWindowWidth-2*labSourceX-32)
	for i, line := range lines[:min(len(lines), 2)] {
		utils.DrawText(screen, line, s.smallFont, labSourceX+16, labInstructionY+10+float64(i)*config.SmallFontSize*1.3, clr)
	}

	if s.workshop.Working() {
		// 生成中：结果框里转圈的小点
		cx := float32(labResultX + labBoxSize/2)
		cy := float32(labBoxY + labBoxSize/2)
		for i := 0; i < 8; i++ {
			dx, dy := petalOffset(i, 8, 30)
			alpha := uint8(60 + 195*utils.Pulse(s.elapsed+float64(i)/8, 1))
			vector.DrawFilledCircle(screen, cx+dx, cy+dy, 6, color.NRGBA{R: colorPrimary.R, G: colorPrimary.G, B: colorPrimary.B, A: alpha}, true)
		}
	}

	s.uiLayer.draw(screen)
}

// drawBox 绘制图片框，没有图片时显示提示文字
func (s *labScene) drawBox(screen *ebiten.Image, x float64, img *ebiten.Image, placeholder string) {
	utils.DrawRoundedRect(screen, float32(x)-4, labBoxY-4, labBoxSize+8, labBoxSize+8, 16, colorGray)
	utils.DrawRoundedRect(screen, float32(x), labBoxY, labBoxSize, labBoxSize, 12, colorWhite)
	if img == nil {
		utils.DrawWrappedText(screen, placeholder, s.smallFont, x+labBoxSize/2, labBoxY+labBoxSize/2-16, labBoxSize-20, colorGray)
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(labBoxSize/float64(b.Dx()), labBoxSize/float64(b.Dy()))
	op.GeoM.Translate(x, labBoxY)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// syncThumbnail 缩略图变化时重新上传为 ebiten 图片
func syncThumbnail(current *ebiten.Image, last, thumb *image.RGBA) (*ebiten.Image, *image.RGBA) {
	if thumb == last {
		return current, last
	}
	if current != nil {
		current.Deallocate()
	}
	if thumb == nil {
		return nil, nil
	}
	return ebiten.NewImageFromImage(thumb), thumb
}

// Dispose 取消进行中的请求并释放图片
func (s *labScene) Dispose() {
	s.workshop.Dispose()
	for _, img := range []*ebiten.Image{s.sourceImage, s.resultImage} {
		if img != nil {
			img.Deallocate()
		}
	}
	s.sourceImage, s.resultImage = nil, nil
}
