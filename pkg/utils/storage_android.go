//go:build android

package utils

import (
	"fmt"
	"os"
)

// EnsureStorageDir 确保设置和贴纸的存储目录存在并可写
// gdata 在 Android 上把数据写到应用私有目录下，但不会预先创建子目录，
// 必须在 game.OpenStore 之前调用。
//
// 返回：
//   - error: 无法识别包名、创建目录或写入失败时返回错误
func EnsureStorageDir() error {
	pkg, err := androidPackage()
	if err != nil {
		return fmt.Errorf("failed to detect Android package: %w", err)
	}

	dir := storageDir(pkg)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return fmt.Errorf("storage directory %s is not writable: %w", dir, err)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}

// androidPackage 读取当前进程的包名
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	return packageFromCmdline(data)
}

// GetStoragePath 返回应用私有数据目录（用于日志），识别失败时返回空字符串
func GetStoragePath() string {
	pkg, err := androidPackage()
	if err != nil {
		return ""
	}
	return appDataDir(pkg)
}
