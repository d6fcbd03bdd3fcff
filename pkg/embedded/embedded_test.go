package embedded

import (
	"testing"
	"testing/fstest"
)

// newTestFS 构造一个只包含 games.yaml 的内存文件系统
func newTestFS() fstest.MapFS {
	return fstest.MapFS{
		"data/games.yaml": &fstest.MapFile{Data: []byte("memory:\n  pairs: 4\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(newTestFS())
	defer func() { initialized = false }()

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestInitNil 测试传入 nil 文件系统时保持未初始化
func TestInitNil(t *testing.T) {
	initialized = false
	Init(nil)

	if IsInitialized() {
		t.Error("Init(nil) should leave the package uninitialized")
	}
}

// TestNotInitialized 测试未初始化时各函数的错误
func TestNotInitialized(t *testing.T) {
	initialized = false

	if _, err := Open("data/games.yaml"); err == nil || err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Open: unexpected error %v", err)
	}
	if _, err := ReadFile("data/games.yaml"); err == nil || err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("ReadFile: unexpected error %v", err)
	}
	if _, err := Glob("data/*.yaml"); err == nil || err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Glob: unexpected error %v", err)
	}
	if Exists("data/games.yaml") {
		t.Error("Exists() should return false before Init()")
	}
}

// TestInvalidPrefix 测试无效路径前缀
func TestInvalidPrefix(t *testing.T) {
	Init(newTestFS())
	defer func() { initialized = false }()

	_, err := ReadFile("assets/test.png")
	if err == nil {
		t.Fatal("Expected error for invalid path prefix")
	}
	if err.Error() != "unknown resource path prefix: assets/test.png (must start with 'data/')" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

// TestReadFileWithNormalization 测试路径规范化后可以正常读取
func TestReadFileWithNormalization(t *testing.T) {
	Init(newTestFS())
	defer func() { initialized = false }()

	tests := []struct {
		name string
		path string
	}{
		{"标准路径", "data/games.yaml"},
		{"带 ./ 前缀", "./data/games.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if err != nil {
				t.Fatalf("ReadFile(%q) failed: %v", tt.path, err)
			}
			if len(data) == 0 {
				t.Error("Expected non-empty content")
			}
		})
	}

	if !Exists("data/games.yaml") {
		t.Error("Exists() should find data/games.yaml")
	}
	if Exists("data/missing.yaml") {
		t.Error("Exists() should not find data/missing.yaml")
	}
}

// TestGlob 测试模式匹配
func TestGlob(t *testing.T) {
	Init(newTestFS())
	defer func() { initialized = false }()

	matches, err := Glob("data/*.yaml")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 1 || matches[0] != "data/games.yaml" {
		t.Errorf("Unexpected matches: %v", matches)
	}
}
