package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/app"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/config"
	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/embedded"
)

var (
	verbose bool
	screen  string
	mute    bool
)

var rootCmd = &cobra.Command{
	Use:   "turminha",
	Short: "Turminha do Guia - mini-jogos educativos do Instituto Guia Social",
	Long: `Turminha do Guia reúne oito mini-jogos, um álbum de figurinhas
e a Oficina do Tony em uma única janela.

Telas disponíveis para --screen:
  loading, home, menu, stickers, memory, sorting, garden, painting,
  runner, friendship, energy, puzzle, lab, settings`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(app.Config{Verbose: verbose, Screen: screen, Mute: mute})
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().StringVar(&screen, "screen", "", "open a screen directly, skipping the loading screen and parental gate")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "start without audio and speech")
}

// run 初始化资源并进入游戏循环
func run(cfg app.Config) error {
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		return fmt.Errorf("游戏初始化失败: %w", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Turminha do Guia")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Printf("[Main] Game loop ended with error: %v", err)
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
