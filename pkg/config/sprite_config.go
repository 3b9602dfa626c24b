package config

import (
	"fmt"

	"github.com/gonewx/pixelrun/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// SpriteConfig 精灵资源清单
// 对应 data/sprites.yaml，声明所有纹理条及其占位符生成参数
type SpriteConfig struct {
	Version string      `yaml:"version"` // 配置文件版本
	Sprites []SpriteDef `yaml:"sprites"` // 精灵条定义列表
}

// SpriteDef 单个精灵条定义
// 加载时优先读取 data/images/<id>.png；
// 文件不存在时按 Color 程序化生成占位符条
type SpriteDef struct {
	ID          string `yaml:"id"`                    // 纹理ID（如 "player_idle"）
	Frames      int    `yaml:"frames"`                // 水平帧数
	FrameWidth  int    `yaml:"frameWidth,omitempty"`  // 单帧宽度（默认 SpriteSize）
	FrameHeight int    `yaml:"frameHeight,omitempty"` // 单帧高度（默认 SpriteSize）
	Color       [3]int `yaml:"color"`                 // 占位符基色 RGB
}

// ParseSpriteConfig 从 YAML 数据解析精灵清单并校验
func ParseSpriteConfig(data []byte) (*SpriteConfig, error) {
	var cfg SpriteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sprite config: %w", err)
	}

	seen := make(map[string]bool, len(cfg.Sprites))
	for i := range cfg.Sprites {
		def := &cfg.Sprites[i]
		if def.ID == "" {
			return nil, fmt.Errorf("sprite %d: missing id", i)
		}
		if seen[def.ID] {
			return nil, fmt.Errorf("sprite %s: duplicate id", def.ID)
		}
		seen[def.ID] = true

		if def.Frames <= 0 {
			return nil, fmt.Errorf("sprite %s: frames must be positive, got %d", def.ID, def.Frames)
		}
		if def.FrameWidth == 0 {
			def.FrameWidth = SpriteSize
		}
		if def.FrameHeight == 0 {
			def.FrameHeight = SpriteSize
		}
	}
	return &cfg, nil
}

// LoadSpriteConfig 从嵌入资源加载精灵清单
func LoadSpriteConfig() (*SpriteConfig, error) {
	data, err := embedded.ReadFile("data/sprites.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite config: %w", err)
	}
	return ParseSpriteConfig(data)
}
