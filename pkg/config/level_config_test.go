package config

import "testing"

// TestParseLevelConfig 测试 YAML 关卡解析
func TestParseLevelConfig(t *testing.T) {
	data := []byte(`
id: "1-1"
name: "Plains 1-1"
tiles:
  - [0, 4, 0]
  - [1, 1, 1]
backgrounds:
  - texture: bg_far
    factor: 0.25
  - texture: bg_near
    factor: 0.75
`)

	cfg, err := ParseLevelConfig(data)
	if err != nil {
		t.Fatalf("ParseLevelConfig() error: %v", err)
	}

	if cfg.ID != "1-1" {
		t.Errorf("ID = %q, want \"1-1\"", cfg.ID)
	}
	if cfg.Rows() != 2 || cfg.Cols() != 3 {
		t.Errorf("网格尺寸 = %dx%d, want 2x3", cfg.Rows(), cfg.Cols())
	}
	if len(cfg.Backgrounds) != 2 {
		t.Fatalf("len(Backgrounds) = %d, want 2", len(cfg.Backgrounds))
	}
	if cfg.Backgrounds[0].Factor != 0.25 {
		t.Errorf("Backgrounds[0].Factor = %v, want 0.25", cfg.Backgrounds[0].Factor)
	}
}

// TestParseLevelConfig_Invalid 测试非法配置的校验
func TestParseLevelConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "空网格",
			data: `{id: "x", tiles: []}`,
		},
		{
			name: "行宽不一致",
			data: "id: x\ntiles:\n  - [4, 0]\n  - [1]\n",
		},
		{
			name: "未知瓦片编码",
			data: "id: x\ntiles:\n  - [4, 9]\n",
		},
		{
			name: "没有出生点",
			data: "id: x\ntiles:\n  - [1, 1]\n",
		},
		{
			name: "多个出生点",
			data: "id: x\ntiles:\n  - [4, 4]\n",
		},
		{
			name: "YAML 语法错误",
			data: "tiles: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLevelConfig([]byte(tt.data)); err == nil {
				t.Error("非法配置应该返回错误")
			}
		})
	}
}

// TestDefaultLevelConfig 内置默认关卡必须通过自身校验
func TestDefaultLevelConfig(t *testing.T) {
	cfg := DefaultLevelConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("默认关卡校验失败: %v", err)
	}
	if cfg.Rows() != 5 || cfg.Cols() != 50 {
		t.Errorf("默认关卡尺寸 = %dx%d, want 5x50", cfg.Rows(), cfg.Cols())
	}
	if len(cfg.Backgrounds) != 3 {
		t.Errorf("len(Backgrounds) = %d, want 3", len(cfg.Backgrounds))
	}
	// 视差层从远到近排列，系数递增
	for i := 1; i < len(cfg.Backgrounds); i++ {
		if cfg.Backgrounds[i].Factor <= cfg.Backgrounds[i-1].Factor {
			t.Error("视差系数应该从远到近递增")
		}
	}
}
