package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/embedded"
)

// FontWeight 字体粗细
type FontWeight int

const (
	FontRegular FontWeight = iota
	FontBold
)

// ResourceManager manages loading and caching of fonts and images.
// Fonts come from the Go font family bundled with golang.org/x/image,
// images from the embedded data/ tree. Missing images are not an error
// for callers: scenes fall back to procedural drawing.
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image     // path -> image, nil entries remember misses
	fontSources   map[FontWeight]*text.GoTextFaceSource
	fontFaceCache map[string]*text.GoTextFace // "weight:size" -> face
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		fontSources:   make(map[FontWeight]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// LoadImage loads an image from the embedded data/ tree and caches it.
//
// Parameters:
//   - path: embedded path such as "data/images/tony.png"
//
// Returns:
//   - the decoded image
//   - an error if the file is missing or cannot be decoded
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if img, exists := rm.imageCache[path]; exists {
		if img == nil {
			return nil, fmt.Errorf("image %s not available", path)
		}
		return img, nil
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		rm.imageCache[path] = nil
		return nil, fmt.Errorf("failed to read image %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		rm.imageCache[path] = nil
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage returns a cached image, loading it on first use.
// Returns nil when the image is unavailable.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	img, err := rm.LoadImage(path)
	if err != nil {
		return nil
	}
	return img
}

// LoadFont returns a font face of the given weight and size.
//
// Parameters:
//   - weight: FontRegular or FontBold
//   - size: font size in pixels
//
// Returns:
//   - the cached text.GoTextFace
//   - an error if the bundled font cannot be parsed
func (rm *ResourceManager) LoadFont(weight FontWeight, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%d:%.1f", weight, size)
	if face, exists := rm.fontFaceCache[cacheKey]; exists {
		return face, nil
	}

	source, exists := rm.fontSources[weight]
	if !exists {
		ttf := goregular.TTF
		if weight == FontBold {
			ttf = gobold.TTF
		}
		var err error
		source, err = text.NewGoTextFaceSource(bytes.NewReader(ttf))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSources[weight] = source
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// GetFont returns a font face, logging and returning nil on failure.
func (rm *ResourceManager) GetFont(weight FontWeight, size float64) *text.GoTextFace {
	face, err := rm.LoadFont(weight, size)
	if err != nil {
		log.Printf("[ResourceManager] Warning: %v", err)
		return nil
	}
	return face
}
