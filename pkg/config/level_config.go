package config

import (
	"fmt"

	"github.com/gonewx/pixelrun/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// 地图瓦片编码
// 与关卡 YAML 中的整数一一对应
const (
	TileEmpty       = 0 // 空
	TileGround      = 1 // 地面（碰撞）
	TilePanel       = 2 // 平台面板（碰撞）
	TilePlayerSpawn = 4 // 玩家出生点
	TileGrass       = 5 // 草地装饰（前景，无碰撞）
	TileBrick       = 6 // 砖块装饰（背景，无碰撞）
)

// LevelConfig 关卡配置数据结构
// 定义瓦片布局和视差背景层
type LevelConfig struct {
	ID          string             `yaml:"id"`          // 关卡ID，如 "1-1"
	Name        string             `yaml:"name"`        // 关卡名称
	Tiles       [][]int            `yaml:"tiles"`       // 瓦片网格（行优先，小整数编码）
	Backgrounds []BackgroundConfig `yaml:"backgrounds"` // 视差背景层，列表顺序 = 从远到近
}

// BackgroundConfig 单个视差背景层配置
type BackgroundConfig struct {
	Texture string  `yaml:"texture"` // 背景纹理ID（见 sprites.yaml）
	Factor  float64 `yaml:"factor"`  // 视差系数，越接近 0 越远
}

// ParseLevelConfig 从 YAML 数据解析关卡配置并校验
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadLevelConfig 从嵌入资源加载指定ID的关卡配置
// 文件路径约定：data/levels/<levelID>.yaml
func LoadLevelConfig(levelID string) (*LevelConfig, error) {
	path := fmt.Sprintf("data/levels/%s.yaml", levelID)
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config %s: %w", path, err)
	}
	return ParseLevelConfig(data)
}

// Validate 校验关卡配置
// 要求：网格非空、各行等宽、瓦片编码合法、恰好一个玩家出生点
func (c *LevelConfig) Validate() error {
	if len(c.Tiles) == 0 {
		return fmt.Errorf("level %s: tile grid is empty", c.ID)
	}

	cols := len(c.Tiles[0])
	spawns := 0
	for r, row := range c.Tiles {
		if len(row) != cols {
			return fmt.Errorf("level %s: row %d has %d columns, want %d", c.ID, r, len(row), cols)
		}
		for col, tile := range row {
			switch tile {
			case TileEmpty, TileGround, TilePanel, TileGrass, TileBrick:
			case TilePlayerSpawn:
				spawns++
			default:
				return fmt.Errorf("level %s: unknown tile code %d at (%d, %d)", c.ID, tile, r, col)
			}
		}
	}

	if spawns != 1 {
		return fmt.Errorf("level %s: want exactly 1 player spawn, got %d", c.ID, spawns)
	}
	return nil
}

// Rows 返回瓦片网格的行数
func (c *LevelConfig) Rows() int {
	return len(c.Tiles)
}

// Cols 返回瓦片网格的列数
func (c *LevelConfig) Cols() int {
	if len(c.Tiles) == 0 {
		return 0
	}
	return len(c.Tiles[0])
}

// DefaultLevelConfig 返回内置的默认关卡
// 当嵌入资源中找不到关卡文件时作为兜底
func DefaultLevelConfig() *LevelConfig {
	tiles := make([][]int, 5)
	for r := range tiles {
		tiles[r] = make([]int, 50)
	}

	// 出生点和竖直方向的平台阶梯
	tiles[1][2] = TilePlayerSpawn
	tiles[1][22] = TilePanel
	tiles[2][2] = TilePanel
	tiles[2][9] = TilePanel
	tiles[2][10] = TilePanel
	tiles[2][22] = TilePanel
	tiles[3][1] = TilePanel
	tiles[3][2] = TilePanel
	for _, c := range []int{8, 9, 10, 11, 12, 16, 18, 21, 22} {
		tiles[3][c] = TilePanel
	}

	// 底行地面，右侧留出一段深渊
	for c := 0; c < 23; c++ {
		tiles[4][c] = TileGround
	}

	return &LevelConfig{
		ID:    "1-1",
		Name:  "Plains 1-1",
		Tiles: tiles,
		Backgrounds: []BackgroundConfig{
			{Texture: "bg_far", Factor: 0.25},
			{Texture: "bg_mid", Factor: 0.5},
			{Texture: "bg_near", Factor: 0.75},
		},
	}
}
