// Package systems 实现逐帧模拟的各个子系统
// 所有系统在同一个严格单线程的帧循环里按固定顺序运行
package systems

import (
	"math"

	"github.com/gonewx/pixelrun/pkg/config"
	"github.com/gonewx/pixelrun/pkg/entities"
	"github.com/gonewx/pixelrun/pkg/game"
	"github.com/gonewx/pixelrun/pkg/utils"
)

// PhysicsSystem 处理重力、积分、碰撞解决和接地感知
// 每帧对每个实体按固定步骤执行：
// 重力 → 类型相关状态机 → 加速度积分与钳制 → 位置积分 → 成对碰撞 → 接地感知
type PhysicsSystem struct {
	gs      *game.GameState
	player  *PlayerSystem
	bullets *BulletSystem
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - gs: 游戏状态
//   - player: 玩家状态机（在物理步骤中按实体类型分派）
//   - bullets: 子弹状态机
func NewPhysicsSystem(gs *game.GameState, player *PlayerSystem, bullets *BulletSystem) *PhysicsSystem {
	return &PhysicsSystem{
		gs:      gs,
		player:  player,
		bullets: bullets,
	}
}

// Update 更新所有图层实体和子弹池
// 实体按图层顺序访问；碰撞发现即解决，同一帧内
// 后续检查看到的是已修正的位置（顺序相关，刻意保持）
func (ps *PhysicsSystem) Update(dt float64, input utils.InputState) {
	ps.player.SetInput(input)

	for li := range ps.gs.Layers {
		layer := ps.gs.Layers[li]
		for i := range layer {
			ps.updateObject(&layer[i], dt)
		}
	}

	// 子弹池在图层之后更新；本帧刚生成的子弹同样会被更新
	for i := 0; i < len(ps.gs.Bullets); i++ {
		ps.updateObject(&ps.gs.Bullets[i], dt)
	}
}

// updateObject 对单个实体执行一次完整的物理步骤
func (ps *PhysicsSystem) updateObject(obj *entities.GameObject, dt float64) {
	// inactive 子弹槽位不参与模拟，等待被新生成覆盖
	if obj.Type == entities.TypeBullet && obj.Bullet().State == entities.BulletInactive {
		return
	}

	// 1. 重力（接地时跳过，避免对地面产生持续的垂直漂移）
	if obj.Dynamic && !obj.Grounded {
		obj.Velocity.Y += config.Gravity * dt
	}

	// 2. 类型相关的输入与状态机处理
	var axis float64
	switch obj.Type {
	case entities.TypePlayer:
		axis = ps.player.Apply(obj, dt)
	case entities.TypeBullet:
		ps.bullets.Apply(obj, dt)
	}

	// 3. 加速度积分与速度钳制
	// 刻意策略：钳制值取输入方向的符号，而不是保留当前速度的符号
	obj.Velocity = obj.Velocity.Add(obj.Acceleration.Scale(axis * dt))
	if obj.MaxSpeedX > 0 && math.Abs(obj.Velocity.X) > obj.MaxSpeedX {
		obj.Velocity.X = axis * obj.MaxSpeedX
	}

	// 4. 位置积分（半隐式欧拉）
	obj.Position = obj.Position.Add(obj.Velocity.Scale(dt))

	// 5. 成对碰撞扫描
	ps.resolveCollisions(obj)

	// 6. 接地感知
	ps.senseGround(obj)
}

// resolveCollisions 把实体与所有图层中的其他实体逐对检查
// 没有连续碰撞检测：高速或低帧率下穿过薄碰撞体是已知限制
func (ps *PhysicsSystem) resolveCollisions(obj *entities.GameObject) {
	if obj.Collider.Empty() {
		return
	}

	for li := range ps.gs.Layers {
		layer := ps.gs.Layers[li]
		for i := range layer {
			other := &layer[i]
			if other == obj {
				continue
			}
			ps.checkCollision(obj, other)
		}
	}
}

// checkCollision 检查一对实体并按类型组合响应
func (ps *PhysicsSystem) checkCollision(a, b *entities.GameObject) {
	overlap, ok := a.WorldCollider().Intersect(b.WorldCollider())
	if !ok {
		return
	}

	switch a.Type {
	case entities.TypePlayer:
		if b.Type == entities.TypeLevel {
			resolveDisplacement(a, overlap)
		}
	case entities.TypeBullet:
		if b.Type == entities.TypeLevel {
			ps.bullets.OnHit(a)
		}
	}
}

// resolveDisplacement 沿穿透较浅的轴把移动实体推出碰撞体，
// 并清零该轴速度；两轴穿透相等时偏向水平方向
func resolveDisplacement(obj *entities.GameObject, overlap utils.Rect) {
	if overlap.W <= overlap.H {
		// 水平碰撞
		if obj.Velocity.X > 0 {
			obj.Position.X -= overlap.W // 向右移动
		} else if obj.Velocity.X < 0 {
			obj.Position.X += overlap.W // 向左移动
		}
		obj.Velocity.X = 0
	} else {
		// 垂直碰撞
		if obj.Velocity.Y > 0 {
			obj.Position.Y -= overlap.H // 下落
		} else if obj.Velocity.Y < 0 {
			obj.Position.Y += overlap.H // 上升
		}
		obj.Velocity.Y = 0
	}
}

// senseGround 在碰撞盒正下方投射 1 像素高的传感器矩形，
// 与任一关卡碰撞体重叠即视为接地。
// 未接地→接地的边沿作为命名事件交给玩家状态机处理
func (ps *PhysicsSystem) senseGround(obj *entities.GameObject) {
	if obj.Collider.Empty() {
		return
	}

	world := obj.WorldCollider()
	sensor := utils.Rect{X: world.X, Y: world.Y + world.H, W: world.W, H: 1}

	found := false
	for li := range ps.gs.Layers {
		layer := ps.gs.Layers[li]
		for i := range layer {
			other := &layer[i]
			if other == obj || other.Type != entities.TypeLevel {
				continue
			}
			if sensor.Overlaps(other.WorldCollider()) {
				found = true
				break
			}
		}
		if found {
			break
		}
	}

	if obj.Grounded != found {
		obj.Grounded = found
		if found && obj.Type == entities.TypePlayer {
			ps.player.OnGroundedEdge(obj)
		}
	}
}
