package embedded

import (
	"embed"
	"testing"
)

// 测试夹具：嵌入包目录下的 data/ 子目录
//
//go:embed data
var testFS embed.FS

// resetForTest 还原包级状态，避免测试间相互影响
func resetForTest() {
	dataFS = embed.FS{}
	initialized = false
}

// TestNotInitialized 未初始化时所有访问都应返回错误
func TestNotInitialized(t *testing.T) {
	resetForTest()

	if _, err := ReadFile("data/sample.yaml"); err == nil {
		t.Error("ReadFile 未初始化时应该返回错误")
	}
	if _, err := Open("data/sample.yaml"); err == nil {
		t.Error("Open 未初始化时应该返回错误")
	}
	if IsInitialized() {
		t.Error("IsInitialized() = true, want false")
	}
}

// TestReadFile 测试正常读取与路径标准化
func TestReadFile(t *testing.T) {
	resetForTest()
	Init(testFS)

	if !IsInitialized() {
		t.Fatal("IsInitialized() = false, want true")
	}

	data, err := ReadFile("data/sample.yaml")
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if len(data) == 0 {
		t.Error("ReadFile() 返回空内容")
	}

	// "./" 前缀应该被标准化掉
	if _, err := ReadFile("./data/sample.yaml"); err != nil {
		t.Errorf("ReadFile(\"./...\") error: %v", err)
	}
}

// TestReadFile_BadPrefix 非 data/ 前缀的路径应该被拒绝
func TestReadFile_BadPrefix(t *testing.T) {
	resetForTest()
	Init(testFS)

	if _, err := ReadFile("assets/foo.png"); err == nil {
		t.Error("非 data/ 前缀应该返回错误")
	}
}

// TestExists 测试存在性检查
func TestExists(t *testing.T) {
	resetForTest()
	Init(testFS)

	if !Exists("data/sample.yaml") {
		t.Error("Exists(data/sample.yaml) = false, want true")
	}
	if Exists("data/missing.yaml") {
		t.Error("Exists(data/missing.yaml) = true, want false")
	}
}
