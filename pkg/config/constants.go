// Package config 提供游戏配置的数据结构和加载逻辑
package config

// 逻辑屏幕与窗口尺寸
const (
	// ScreenWidth 逻辑屏幕宽度（像素）
	ScreenWidth = 640
	// ScreenHeight 逻辑屏幕高度（像素）
	ScreenHeight = 320
	// WindowWidth 默认窗口宽度（逻辑屏幕的 2 倍整数缩放）
	WindowWidth = 1280
	// WindowHeight 默认窗口高度
	WindowHeight = 640
)

// 地图与精灵尺寸
const (
	// TileSize 地图瓦片边长（像素）
	TileSize = 32
	// SpriteSize 精灵条单帧边长（像素）
	SpriteSize = 32
)

// 物理常量
const (
	// Gravity 重力加速度（像素/秒²），向下为正
	Gravity = 500.0
	// JumpImpulse 跳跃瞬时速度增量（像素/秒），向上为负
	JumpImpulse = -200.0
	// PlayerAcceleration 玩家水平加速度（像素/秒²）
	PlayerAcceleration = 300.0
	// PlayerMaxSpeedX 玩家水平速度上限（像素/秒）
	PlayerMaxSpeedX = 100.0
	// IdleDecelFactor 无输入时的减速系数（相对加速度的倍率）
	IdleDecelFactor = 1.5
)

// 玩家碰撞盒（相对精灵左上角的偏移 + 尺寸）
const (
	PlayerColliderX = 11.0
	PlayerColliderY = 6.0
	PlayerColliderW = 10.0
	PlayerColliderH = 26.0
)

// 武器与子弹常量
const (
	// WeaponCooldown 两次射击之间的最小间隔（秒）
	WeaponCooldown = 0.2
	// BulletMuzzleSpeed 子弹出膛速度（像素/秒，沿朝向方向）
	BulletMuzzleSpeed = 400.0
	// BulletVerticalJitter 子弹垂直初速度随机幅度（±像素/秒）
	BulletVerticalJitter = 30.0
	// BulletSpawnOffsetLeft 朝左射击时子弹相对玩家位置的 X 偏移
	BulletSpawnOffsetLeft = 0.0
	// BulletSpawnOffsetRight 朝右射击时子弹相对玩家位置的 X 偏移
	BulletSpawnOffsetRight = 24.0
	// BulletSpawnOffsetY 子弹相对玩家位置的 Y 偏移（枪口高度）
	BulletSpawnOffsetY = 14.0
)

// 子弹碰撞盒
// Y 偏移保证站立射击时碰撞盒不触及脚下地面
const (
	BulletColliderX = 12.0
	BulletColliderY = 8.0
	BulletColliderW = 8.0
	BulletColliderH = 8.0
)
