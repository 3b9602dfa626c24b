package entities

import (
	"fmt"

	"github.com/gonewx/pixelrun/pkg/components"
	"github.com/gonewx/pixelrun/pkg/config"
	"github.com/gonewx/pixelrun/pkg/utils"
)

// 玩家动画索引
// 与 NewPlayer 填充的 Animations 切片一一对应
const (
	AnimPlayerIdle = iota
	AnimPlayerRun
	AnimPlayerSlide
	AnimPlayerShootIdle
	AnimPlayerShootRun
	AnimPlayerShootSlide
)

// 子弹动画索引
const (
	AnimBulletMoving = iota
	AnimBulletHit
)

// PlayerTextures 玩家各状态使用的纹理柄集合
// 状态机按（状态 × 是否开火）选择其中一个
type PlayerTextures struct {
	Idle       TextureID
	Run        TextureID
	Slide      TextureID
	ShootIdle  TextureID
	ShootRun   TextureID
	ShootSlide TextureID
}

// LoadPlayerTextures 解析玩家需要的全部纹理柄
func LoadPlayerTextures(res ResourceLoader) (PlayerTextures, error) {
	var tex PlayerTextures
	var err error

	lookup := []struct {
		name string
		dst  *TextureID
	}{
		{"player_idle", &tex.Idle},
		{"player_run", &tex.Run},
		{"player_slide", &tex.Slide},
		{"player_shoot_idle", &tex.ShootIdle},
		{"player_shoot_run", &tex.ShootRun},
		{"player_shoot_slide", &tex.ShootSlide},
	}
	for _, l := range lookup {
		if *l.dst, err = res.Texture(l.name); err != nil {
			return PlayerTextures{}, fmt.Errorf("failed to resolve player texture: %w", err)
		}
	}
	return tex, nil
}

// BulletTextures 子弹飞行/击中使用的纹理柄
type BulletTextures struct {
	Moving TextureID
	Hit    TextureID
}

// LoadBulletTextures 解析子弹需要的纹理柄
func LoadBulletTextures(res ResourceLoader) (BulletTextures, error) {
	var tex BulletTextures
	var err error

	if tex.Moving, err = res.Texture("bullet"); err != nil {
		return BulletTextures{}, fmt.Errorf("failed to resolve bullet texture: %w", err)
	}
	if tex.Hit, err = res.Texture("bullet_hit"); err != nil {
		return BulletTextures{}, fmt.Errorf("failed to resolve bullet texture: %w", err)
	}
	return tex, nil
}

// NewTile 创建一个关卡瓦片对象
// solid 为 false 时瓦片只参与绘制（空碰撞盒），如草地/砖块装饰
func NewTile(texture TextureID, position utils.Vec2, solid bool) GameObject {
	o := NewGameObject()
	o.Texture = texture
	o.Position = position
	if solid {
		o.Collider = utils.Rect{X: 0, Y: 0, W: config.TileSize, H: config.TileSize}
	}
	return o
}

// NewPlayer 创建玩家对象
// 初始状态为 idle，动画切片的布局见 AnimPlayer* 常量
func NewPlayer(tex PlayerTextures, position utils.Vec2) GameObject {
	o := NewGameObject()
	o.Type = TypePlayer
	o.Data = &PlayerData{
		State:       StateIdle,
		WeaponTimer: components.NewTimer(config.WeaponCooldown),
	}
	o.Position = position
	o.Acceleration = utils.Vec2{X: config.PlayerAcceleration, Y: 0}
	o.MaxSpeedX = config.PlayerMaxSpeedX
	o.Dynamic = true
	o.Texture = tex.Idle
	o.Animations = []components.Animation{
		AnimPlayerIdle:       components.NewAnimation(8, 1.6),
		AnimPlayerRun:        components.NewAnimation(4, 0.5),
		AnimPlayerSlide:      components.NewAnimation(1, 1.0),
		AnimPlayerShootIdle:  components.NewAnimation(8, 1.6),
		AnimPlayerShootRun:   components.NewAnimation(4, 0.5),
		AnimPlayerShootSlide: components.NewAnimation(1, 1.0),
	}
	o.CurrentAnimation = AnimPlayerIdle
	o.Collider = utils.Rect{
		X: config.PlayerColliderX,
		Y: config.PlayerColliderY,
		W: config.PlayerColliderW,
		H: config.PlayerColliderH,
	}
	return o
}

// NewBullet 创建一颗处于 moving 状态的子弹
// 生成参数（位置偏移、初速度）由子弹系统计算
func NewBullet(tex BulletTextures, position, velocity utils.Vec2, direction float64) GameObject {
	o := NewGameObject()
	o.Type = TypeBullet
	o.Data = &BulletData{State: BulletMoving}
	o.Position = position
	o.Velocity = velocity
	o.Direction = direction
	o.Texture = tex.Moving
	o.Animations = []components.Animation{
		AnimBulletMoving: components.NewAnimation(4, 0.25),
		AnimBulletHit:    components.NewOneShotAnimation(4, 0.3),
	}
	o.CurrentAnimation = AnimBulletMoving
	o.Collider = utils.Rect{
		X: config.BulletColliderX,
		Y: config.BulletColliderY,
		W: config.BulletColliderW,
		H: config.BulletColliderH,
	}
	return o
}

// BuildLevel 根据关卡配置构建两个图层的对象列表
// 返回关卡层、角色层和玩家在角色层中的索引
// 瓦片坐标按原点对齐逻辑屏幕底边：y = ScreenHeight - (rows-r)*TileSize
func BuildLevel(cfg *config.LevelConfig, res ResourceLoader) (level, characters []GameObject, playerIndex int, err error) {
	texGround, err := res.Texture("tile_ground")
	if err != nil {
		return nil, nil, -1, err
	}
	texPanel, err := res.Texture("tile_panel")
	if err != nil {
		return nil, nil, -1, err
	}
	texGrass, err := res.Texture("tile_grass")
	if err != nil {
		return nil, nil, -1, err
	}
	texBrick, err := res.Texture("tile_brick")
	if err != nil {
		return nil, nil, -1, err
	}
	playerTex, err := LoadPlayerTextures(res)
	if err != nil {
		return nil, nil, -1, err
	}

	rows := cfg.Rows()
	playerIndex = -1

	for r, row := range cfg.Tiles {
		for c, tile := range row {
			pos := utils.Vec2{
				X: float64(c * config.TileSize),
				Y: float64(config.ScreenHeight - (rows-r)*config.TileSize),
			}

			switch tile {
			case config.TileGround:
				level = append(level, NewTile(texGround, pos, true))
			case config.TilePanel:
				level = append(level, NewTile(texPanel, pos, true))
			case config.TileGrass:
				level = append(level, NewTile(texGrass, pos, false))
			case config.TileBrick:
				level = append(level, NewTile(texBrick, pos, false))
			case config.TilePlayerSpawn:
				characters = append(characters, NewPlayer(playerTex, pos))
				playerIndex = len(characters) - 1
			}
		}
	}

	if playerIndex == -1 {
		return nil, nil, -1, fmt.Errorf("level %s: no player spawn tile", cfg.ID)
	}
	return level, characters, playerIndex, nil
}
