//go:build mobile

package utils

// IsMobile 移动端构建（-tags mobile）始终返回 true
// 移动端没有 espeak 子进程可用，旁白只显示字幕
func IsMobile() bool {
	return true
}
