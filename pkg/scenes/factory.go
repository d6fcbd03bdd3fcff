package scenes

import (
	"log"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/game"
)

// NewSceneFactory 创建画面工厂
//
// 参数：
//   - deps: 场景共享依赖，State 和 Nav 必须非空，其余为空时使用默认实现
//
// 返回：
//   - game.SceneFactory: 交给 SceneManager.SetSceneFactory 的工厂函数，
//     未知画面返回 nil
func NewSceneFactory(deps Deps) game.SceneFactory {
	deps = deps.withDefaults()
	return func(screen game.Screen) game.Scene {
		switch screen {
		case game.ScreenLoading:
			return newLoadingScene(deps)
		case game.ScreenHome:
			return newHomeScene(deps)
		case game.ScreenMenu:
			return newMenuScene(deps)
		case game.ScreenStickers:
			return newAlbumScene(deps)
		case game.ScreenMemory:
			return newMemoryScene(deps)
		case game.ScreenSorting:
			return newSortingScene(deps)
		case game.ScreenGarden:
			return newGardenScene(deps)
		case game.ScreenPainting:
			return newPaintingScene(deps)
		case game.ScreenRunner:
			return newRunnerScene(deps)
		case game.ScreenFriendship:
			return newFriendshipScene(deps)
		case game.ScreenEnergy:
			return newEnergyScene(deps)
		case game.ScreenPuzzle:
			return newPuzzleScene(deps)
		case game.ScreenLab:
			return newLabScene(deps)
		case game.ScreenSettings:
			return newSettingsScene(deps)
		default:
			log.Printf("[SceneFactory] Unknown screen: %s", screen)
			return nil
		}
	}
}
