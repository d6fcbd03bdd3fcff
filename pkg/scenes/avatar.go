package scenes

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/game"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

// avatarImagePath 角色头像图片在嵌入文件系统中的路径
func avatarImagePath(profile config.CharacterProfile) string {
	return fmt.Sprintf("data/images/%s.png", strings.ToLower(profile.ID.String()))
}

// drawAvatar 以 (cx, cy) 为中心绘制角色头像
// 有头像图片时缩放绘制；没有时用主题色圆形和名字首字母代替
func drawAvatar(screen *ebiten.Image, rm *game.ResourceManager, profile config.CharacterProfile, cx, cy, radius float64) {
	r := float32(radius)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), r, colorWhite, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), r*0.9, profile.Color, true)

	if img := rm.GetImage(avatarImagePath(profile)); img != nil {
		b := img.Bounds()
		scale := 2 * radius * 0.9 / float64(max(b.Dx(), b.Dy()))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(cx-float64(b.Dx())*scale/2, cy-float64(b.Dy())*scale/2)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
		return
	}

	// 简单的笑脸：两只眼睛和名字首字母
	eye := r * 0.09
	vector.DrawFilledCircle(screen, float32(cx)-r*0.3, float32(cy)-r*0.25, eye, colorText, true)
	vector.DrawFilledCircle(screen, float32(cx)+r*0.3, float32(cy)-r*0.25, eye, colorText, true)
	if name := []rune(profile.Name); len(name) > 0 {
		face := rm.GetFont(game.FontBold, radius*0.8)
		utils.DrawCenteredText(screen, string(name[0]), face, cx, cy+radius*0.25, colorWhite)
	}
}
