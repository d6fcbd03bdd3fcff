package minigames

import (
	"image/color"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
)

// blankFill 区域的初始颜色
var blankFill = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// PaintingSession 涂色游戏
//
// 选择调色板中的颜色后点击花朵的各个区域上色，调色板最后一项是橡皮擦。
// 没有胜负规则，点击"完成"即结束并解锁贴纸。
type PaintingSession struct {
	core
	cfg      config.PaintingConfig
	selected int
	fills    map[string]color.RGBA
}

// NewPaintingSession 创建涂色会话，所有区域初始为白色
func NewPaintingSession(cfg config.PaintingConfig, unlocker Unlocker, rng Random) *PaintingSession {
	s := &PaintingSession{
		core: newCore(cfg.Reward, unlocker, rng),
		cfg:  cfg,
	}
	s.Reset()
	s.emit(CueNone, cfg.Intro)
	return s
}

// SelectColor 选择调色板中的第 i 个颜色并念出颜色名
func (s *PaintingSession) SelectColor(i int) bool {
	if !s.active(PhasePlaying) || i < 0 || i >= len(s.cfg.Palette) {
		return false
	}
	s.selected = i
	s.emit(CueClick, s.cfg.Palette[i].Name)
	return true
}

// Paint 用当前颜色填充区域，未知区域返回 false
func (s *PaintingSession) Paint(region string) bool {
	if !s.active(PhasePlaying) {
		return false
	}
	if _, ok := s.fills[region]; !ok {
		return false
	}
	s.fills[region] = s.cfg.Palette[s.selected].Color
	s.emit(CuePop, "")
	return true
}

// Finish 完成作品
func (s *PaintingSession) Finish() bool {
	if !s.active(PhasePlaying) {
		return false
	}
	s.emit(CueHero, s.cfg.FinishLine)
	s.phase = PhaseWon
	s.grantReward()
	return true
}

// Update 涂色游戏没有延迟转换，保留以统一会话接口
func (s *PaintingSession) Update(dt float64) {
	s.advance(dt)
}

// Reset 清空画布，重新选中第一个颜色
func (s *PaintingSession) Reset() {
	if s.disposed {
		return
	}
	s.fills = make(map[string]color.RGBA, len(s.cfg.Regions))
	for _, region := range s.cfg.Regions {
		s.fills[region] = blankFill
	}
	s.selected = 0
	s.restart(PhasePlaying)
}

// Fill 返回区域当前颜色
func (s *PaintingSession) Fill(region string) color.RGBA {
	if c, ok := s.fills[region]; ok {
		return c
	}
	return blankFill
}

// Regions 返回全部可涂色区域
func (s *PaintingSession) Regions() []string {
	return s.cfg.Regions
}

// Palette 返回调色板
func (s *PaintingSession) Palette() []config.PaletteColor {
	return s.cfg.Palette
}

// Selected 返回选中的颜色序号
func (s *PaintingSession) Selected() int {
	return s.selected
}

// Victory 胜利界面标题
func (s *PaintingSession) Victory() string {
	return s.cfg.Victory
}
