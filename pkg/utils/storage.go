package utils

import (
	"fmt"
	"path/filepath"
	"strings"
)

// androidDataRoot Android 应用私有数据的根目录
const androidDataRoot = "/data/data"

// storageSubdir gdata 在应用目录下写入的子目录
const storageSubdir = "saves"

// packageFromCmdline 从 /proc/self/cmdline 的内容解析 Android 包名
//
// cmdline 以 NUL 分隔参数，第一个参数即进程名（包名），
// 部分设备会带 ":service" 后缀，需要去掉。
//
// 返回：
//   - string: 包名，如 "org.guiasocial.turminha"
//   - error: 内容为空时返回错误
func packageFromCmdline(data []byte) (string, error) {
	first, _, _ := strings.Cut(string(data), "\x00")
	first = strings.TrimSpace(first)
	first, _, _ = strings.Cut(first, ":")
	if first == "" {
		return "", fmt.Errorf("got empty process name from cmdline")
	}
	return first, nil
}

// appDataDir 返回应用私有数据目录
func appDataDir(pkg string) string {
	return filepath.Join(androidDataRoot, pkg)
}

// storageDir 返回设置和贴纸文件所在的目录
func storageDir(pkg string) string {
	return filepath.Join(appDataDir(pkg), storageSubdir)
}
