// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/internal/speech"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/game"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/lab"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/minigames"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/scenes"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/synth"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Screen 启动时直接打开的画面名称（如 "memory"），为空则显示加载画面
	Screen string
	// Mute 不创建音频上下文，也不使用语音引擎
	Mute bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	state                    *game.GameState
	sceneManager             *game.SceneManager
	navigator                *game.Navigator
	overlay                  *scenes.Overlay
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	games, err := config.LoadGamesConfig(config.GamesConfigPath)
	if err != nil {
		return nil, fmt.Errorf("小游戏配置加载失败: %w", err)
	}

	start := game.ScreenLoading
	if cfg.Screen != "" {
		screen, ok := game.ParseScreen(cfg.Screen)
		if !ok {
			return nil, fmt.Errorf("unknown screen %q", cfg.Screen)
		}
		start = screen
	}

	opts := game.Options{
		Store:  game.OpenStore(game.AppName),
		Random: minigames.NewRandom(),
	}
	if path := utils.GetStoragePath(); path != "" {
		log.Printf("[App] Storage path: %s", path)
	}
	if !cfg.Mute {
		opts.AudioContext = audio.NewContext(synth.SampleRate)
		// 移动端没有语音子进程，旁白只显示字幕
		if !utils.IsMobile() {
			opts.Speech = speech.Detect()
		}
	}
	gameState := game.NewGameState(games, opts)
	log.Printf("[App] Game state initialized (%d stickers unlocked)", gameState.Stickers.Count())

	var editor lab.ImageEditor
	if gemini, err := lab.NewGeminiEditor(context.Background(), lab.LoadEnvConfig().Key(), games.Lab.Model); err != nil {
		log.Printf("[App] Lab editor unavailable: %v", err)
	} else {
		log.Printf("[App] Lab editor ready: %s", gemini.Name())
		editor = gemini
	}

	// 创建场景管理器和导航器
	sceneManager := game.NewSceneManager()
	navigator := game.NewNavigator(sceneManager, gameState.Audio, opts.Random)
	deps := scenes.Deps{
		State:  gameState,
		Nav:    navigator,
		Editor: editor,
		Random: opts.Random,
	}
	sceneManager.SetSceneFactory(scenes.NewSceneFactory(deps))

	log.Printf("[App] Starting screen: %s", start)
	navigator.Open(start)

	return &App{
		state:        gameState,
		sceneManager: sceneManager,
		navigator:    navigator,
		overlay:      scenes.NewOverlay(deps),
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	utils.UpdateLastTouchPosition()

	deltaTime := 1.0 / 60.0
	// 家长验证打开时当前画面暂停
	if !a.overlay.Update(deltaTime) {
		a.sceneManager.Update(deltaTime)
	}
	a.state.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
	a.overlay.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 释放当前画面并停止音乐和旁白（窗口关闭后调用）
func (a *App) Close() {
	a.sceneManager.Close()
	a.state.Close()
	log.Printf("[App] Closed")
}

// Navigator 返回画面导航器
func (a *App) Navigator() *game.Navigator {
	return a.navigator
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
