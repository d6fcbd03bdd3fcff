package lab

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // 注册 GIF 解码器
	_ "image/jpeg" // 注册 JPEG 解码器
	_ "image/png"  // 注册 PNG 解码器

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // 注册 WebP 解码器
)

// mimeTypes 图片格式对应的 MIME 类型
var mimeTypes = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// DecodeImage 解码图片并返回 MIME 类型
//
// 参数：
//   - data: 图片文件内容（PNG、JPEG、GIF 或 WebP）
//
// 返回：
//   - image.Image: 解码后的图片
//   - string: MIME 类型
//   - error: 格式不支持或数据损坏时返回错误
func DecodeImage(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	mime, ok := mimeTypes[format]
	if !ok {
		return nil, "", fmt.Errorf("unsupported image format %q", format)
	}
	return img, mime, nil
}

// Thumbnail 把图片缩放并居中裁剪成 size×size 的正方形
func Thumbnail(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	b := src.Bounds()
	if b.Empty() || size <= 0 {
		return dst
	}

	// 取中间最大的正方形区域
	side := min(b.Dx(), b.Dy())
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	crop := image.Rect(x0, y0, x0+side, y0+side)

	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, xdraw.Src, nil)
	return dst
}
