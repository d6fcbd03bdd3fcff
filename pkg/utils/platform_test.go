//go:build !mobile

package utils

import "testing"

// TestIsMobile 桌面端默认不是移动模式，环境变量可以模拟移动模式
func TestIsMobile(t *testing.T) {
	t.Setenv("TURMINHA_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}

	t.Setenv("TURMINHA_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() should return true when TURMINHA_MOBILE_EMULATE=1")
	}
}
