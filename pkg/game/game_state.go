package game

import (
	"fmt"

	"github.com/gonewx/pixelrun/pkg/config"
	"github.com/gonewx/pixelrun/pkg/entities"
	"github.com/gonewx/pixelrun/pkg/utils"
)

// 图层索引
// 图层顺序决定更新顺序和绘制顺序（先关卡后角色）
const (
	LayerLevel      = 0
	LayerCharacters = 1
)

// BackgroundLayer 单个视差背景层的运行时状态
type BackgroundLayer struct {
	Texture entities.TextureID // 背景纹理柄
	Factor  float64            // 视差系数，越接近 0 越远
	Offset  float64            // 当前滚动偏移（像素），保持在 (-纹理宽度, 0]
}

// GameState 持有一个关卡的全部模拟状态
// 独占拥有所有游戏对象（按值存储在容器中）；
// 对象只在关卡构建和子弹生成两处创建，在场景销毁时整体释放
type GameState struct {
	// Layers 两个有序图层：关卡几何体和角色
	Layers [2][]entities.GameObject
	// Bullets 子弹池：inactive 槽位被新生成覆盖，池只增不减
	Bullets []entities.GameObject
	// PlayerIndex 玩家在角色层中的索引
	PlayerIndex int
	// Viewport 摄像机视口（世界坐标）
	Viewport utils.Rect
	// Backgrounds 视差背景层，从远到近排列
	Backgrounds []BackgroundLayer
	// ShowDebug 是否绘制调试覆盖层
	ShowDebug bool
}

// NewGameState 从关卡配置构建游戏状态
func NewGameState(cfg *config.LevelConfig, res entities.ResourceLoader) (*GameState, error) {
	level, characters, playerIndex, err := entities.BuildLevel(cfg, res)
	if err != nil {
		return nil, fmt.Errorf("failed to build level: %w", err)
	}

	gs := &GameState{
		PlayerIndex: playerIndex,
		Viewport:    utils.Rect{X: 0, Y: 0, W: config.ScreenWidth, H: config.ScreenHeight},
	}
	gs.Layers[LayerLevel] = level
	gs.Layers[LayerCharacters] = characters

	for _, bg := range cfg.Backgrounds {
		tex, err := res.Texture(bg.Texture)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve background texture: %w", err)
		}
		gs.Backgrounds = append(gs.Backgrounds, BackgroundLayer{
			Texture: tex,
			Factor:  bg.Factor,
		})
	}

	return gs, nil
}

// Player 返回玩家对象
// 玩家由 NewGameState 保证存在
func (gs *GameState) Player() *entities.GameObject {
	return &gs.Layers[LayerCharacters][gs.PlayerIndex]
}

// ActiveBullets 返回当前非 inactive 的子弹数（调试覆盖层使用）
func (gs *GameState) ActiveBullets() int {
	n := 0
	for i := range gs.Bullets {
		if gs.Bullets[i].Bullet().State != entities.BulletInactive {
			n++
		}
	}
	return n
}
