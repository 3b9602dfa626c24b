// Package entities 定义游戏对象记录和构建它们的工厂函数
package entities

import (
	"fmt"

	"github.com/gonewx/pixelrun/pkg/components"
	"github.com/gonewx/pixelrun/pkg/utils"
)

// TextureID 纹理柄：指向资源管理器纹理池的索引
// 游戏对象不持有纹理本身，纹理由资源管理器统一持有并在退出时释放
type TextureID int

// TextureNone 表示没有纹理
const TextureNone TextureID = -1

// ResourceLoader 是工厂函数对资源层的最小依赖
// 由 game.ResourceManager 实现
type ResourceLoader interface {
	// Texture 按名称解析纹理柄，未注册的名称返回错误
	Texture(name string) (TextureID, error)
}

// ObjectType 游戏对象类型标签
// Data 字段的具体类型必须与标签一致
type ObjectType int

const (
	TypeLevel ObjectType = iota
	TypePlayer
	TypeBullet
	TypeEnemy
)

// String 返回类型名（调试覆盖层使用）
func (t ObjectType) String() string {
	switch t {
	case TypeLevel:
		return "level"
	case TypePlayer:
		return "player"
	case TypeBullet:
		return "bullet"
	case TypeEnemy:
		return "enemy"
	default:
		return fmt.Sprintf("ObjectType(%d)", int(t))
	}
}

// PlayerState 玩家状态机的状态
type PlayerState int

const (
	StateIdle PlayerState = iota
	StateRunning
	StateJumping
	StateSliding
)

// String 返回状态名（调试覆盖层使用）
func (s PlayerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateJumping:
		return "jumping"
	case StateSliding:
		return "sliding"
	default:
		return fmt.Sprintf("PlayerState(%d)", int(s))
	}
}

// BulletState 子弹状态机的状态
// moving → colliding → inactive，或 moving → inactive（出屏剔除）
// inactive 是终态，只能被新的生成覆盖
type BulletState int

const (
	BulletMoving BulletState = iota
	BulletColliding
	BulletInactive
)

// String 返回状态名
func (s BulletState) String() string {
	switch s {
	case BulletMoving:
		return "moving"
	case BulletColliding:
		return "colliding"
	case BulletInactive:
		return "inactive"
	default:
		return fmt.Sprintf("BulletState(%d)", int(s))
	}
}

// ObjectData 是按对象类型区分的负载数据（和类型标签构成受检的和类型）
// 只有本包的数据变体实现此接口
type ObjectData interface {
	isObjectData()
}

// PlayerData 玩家专有状态：状态机状态 + 武器冷却计时器
type PlayerData struct {
	State       PlayerState
	WeaponTimer components.Timer
}

func (*PlayerData) isObjectData() {}

// BulletData 子弹专有状态
type BulletData struct {
	State BulletState
}

func (*BulletData) isObjectData() {}

// LevelData 关卡几何体没有专有状态
type LevelData struct{}

func (*LevelData) isObjectData() {}

// EnemyData 敌人暂无专有状态
type EnemyData struct{}

func (*EnemyData) isObjectData() {}

// GameObject 通用游戏对象记录
// GameState 按值持有所有实例；Texture 是指向中央纹理池的非拥有柄
type GameObject struct {
	Type ObjectType
	Data ObjectData

	Position     utils.Vec2
	Velocity     utils.Vec2
	Acceleration utils.Vec2
	// Direction 水平朝向：+1 朝右，-1 朝左
	Direction float64
	// MaxSpeedX 水平速度上限；0 表示不钳制
	MaxSpeedX float64

	Animations []components.Animation
	// CurrentAnimation 是 Animations 的索引，-1 表示无动画
	// 不变式：要么为 -1，要么是合法索引
	CurrentAnimation int

	Texture TextureID

	// Dynamic 是否参与重力
	Dynamic bool
	// Grounded 接地传感器当前是否压在关卡碰撞体上
	Grounded bool

	// Collider 碰撞盒：相对 Position 的偏移 + 尺寸，空矩形表示无碰撞
	Collider utils.Rect
}

// NewGameObject 返回带默认值的对象记录
// 默认为无碰撞、无动画的静态关卡对象，朝向右
func NewGameObject() GameObject {
	return GameObject{
		Type:             TypeLevel,
		Data:             &LevelData{},
		Direction:        1,
		CurrentAnimation: -1,
		Texture:          TextureNone,
	}
}

// Player 返回玩家数据负载
// 在非玩家对象上调用违反和类型不变式，直接 panic
func (o *GameObject) Player() *PlayerData {
	d, ok := o.Data.(*PlayerData)
	if !ok {
		panic(fmt.Sprintf("entities: Player() called on %s object", o.Type))
	}
	return d
}

// Bullet 返回子弹数据负载
// 在非子弹对象上调用违反和类型不变式，直接 panic
func (o *GameObject) Bullet() *BulletData {
	d, ok := o.Data.(*BulletData)
	if !ok {
		panic(fmt.Sprintf("entities: Bullet() called on %s object", o.Type))
	}
	return d
}

// WorldCollider 返回世界坐标下的碰撞盒
func (o *GameObject) WorldCollider() utils.Rect {
	return o.Collider.Offset(o.Position.X, o.Position.Y)
}

// Animation 返回当前动画，没有激活动画时返回 nil
func (o *GameObject) Animation() *components.Animation {
	if o.CurrentAnimation < 0 {
		return nil
	}
	return &o.Animations[o.CurrentAnimation]
}

// SetAnimation 切换当前动画
// 切到新动画时重置播放进度，重复设置同一动画不打断播放
func (o *GameObject) SetAnimation(index int) {
	if index == o.CurrentAnimation {
		return
	}
	o.CurrentAnimation = index
	if index >= 0 {
		o.Animations[index].Reset()
	}
}
