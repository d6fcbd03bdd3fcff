package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"

	"github.com/thigocarvalhos-boop/Instituto-Guia-Social/pkg/utils"
)

// AppName gdata 存储使用的应用名
const AppName = "turminha_do_guia"

// PropStore 持久化存储接口
// *gdata.Manager 满足此接口，测试中可替换为内存实现
type PropStore interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// OpenStore 打开跨平台存储
//
// 参数：
//   - appName: 应用名（决定存储目录）
//
// 返回：
//   - PropStore: 存储实例，打开失败时返回 nil（降级为仅内存模式）
func OpenStore(appName string) PropStore {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[Store] Warning: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil || manager == nil {
		log.Printf("[Store] Warning: gdata unavailable: %v (memory-only mode)", err)
		return nil
	}
	return manager
}
