package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the game (home, menu, album, a mini-game...).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Disposer 是一个可选接口，用于在场景被替换时释放资源
//
// 实现此接口的场景会在以下时机被调用 Dispose()：
//   - 切换到其他场景
//   - 游戏窗口关闭
//
// 小游戏场景在这里释放会话，取消所有延迟转换和进行中的请求。
type Disposer interface {
	Dispose()
}
