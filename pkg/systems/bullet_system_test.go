package systems

import (
	"math"
	"testing"

	"github.com/gonewx/pixelrun/pkg/config"
	"github.com/gonewx/pixelrun/pkg/entities"
	"github.com/gonewx/pixelrun/pkg/utils"
)

// 池策略：优先复用 inactive 槽位，无空位才追加
func TestBulletSystem_PoolReuseAndGrowth(t *testing.T) {
	w := newTestWorld(t, flatTiles())
	w.step(1, utils.InputState{})
	p := w.gs.Player()

	w.bullets.Spawn(p)
	w.bullets.Spawn(p)
	if got := len(w.gs.Bullets); got != 2 {
		t.Fatalf("两次生成后池大小 = %d, 期望 2", got)
	}

	w.gs.Bullets[0].Bullet().State = entities.BulletInactive
	w.bullets.Spawn(p)
	if got := len(w.gs.Bullets); got != 2 {
		t.Errorf("复用 inactive 槽位后池大小 = %d, 期望仍为 2", got)
	}
	if got := w.gs.Bullets[0].Bullet().State; got != entities.BulletMoving {
		t.Errorf("被复用槽位状态 = %v, 期望 moving", got)
	}

	w.bullets.Spawn(p)
	if got := len(w.gs.Bullets); got != 3 {
		t.Errorf("无空槽时池大小 = %d, 期望追加到 3", got)
	}
}

// 生成参数：位置按朝向插值偏移，速度继承射击者并叠加枪口速度
func TestBulletSystem_SpawnKinematics(t *testing.T) {
	w := newTestWorld(t, flatTiles())
	w.step(1, utils.InputState{})
	p := w.gs.Player()
	p.Velocity.X = 50

	p.Direction = 1
	w.bullets.Spawn(p)
	b := w.gs.Bullets[0]
	if b.Position.X != p.Position.X+config.BulletSpawnOffsetRight {
		t.Errorf("朝右生成 X = %v, 期望 %v", b.Position.X, p.Position.X+config.BulletSpawnOffsetRight)
	}
	if b.Position.Y != p.Position.Y+config.BulletSpawnOffsetY {
		t.Errorf("生成 Y = %v, 期望 %v", b.Position.Y, p.Position.Y+config.BulletSpawnOffsetY)
	}
	if b.Velocity.X != 50+config.BulletMuzzleSpeed {
		t.Errorf("朝右初速度 = %v, 期望 %v", b.Velocity.X, 50+config.BulletMuzzleSpeed)
	}
	if math.Abs(b.Velocity.Y) > config.BulletVerticalJitter {
		t.Errorf("垂直散布 = %v, 超出 ±%v", b.Velocity.Y, config.BulletVerticalJitter)
	}
	if b.Direction != 1 {
		t.Errorf("朝向 = %v, 期望 1", b.Direction)
	}

	p.Direction = -1
	w.bullets.Spawn(p)
	b = w.gs.Bullets[1]
	if b.Position.X != p.Position.X+config.BulletSpawnOffsetLeft {
		t.Errorf("朝左生成 X = %v, 期望 %v", b.Position.X, p.Position.X+config.BulletSpawnOffsetLeft)
	}
	if b.Velocity.X != 50-config.BulletMuzzleSpeed {
		t.Errorf("朝左初速度 = %v, 期望 %v", b.Velocity.X, 50-config.BulletMuzzleSpeed)
	}
}

// 精灵完全离开视口任一边即剔除
func TestBulletSystem_OffscreenCull(t *testing.T) {
	w := newTestWorld(t, flatTiles())
	w.step(1, utils.InputState{})
	p := w.gs.Player()

	w.bullets.Spawn(p)
	b := &w.gs.Bullets[0]
	b.Position = utils.Vec2{X: w.gs.Viewport.X + w.gs.Viewport.W + 100, Y: 100}

	w.bullets.Apply(b, dt)

	if got := b.Bullet().State; got != entities.BulletInactive {
		t.Errorf("出界子弹状态 = %v, 期望 inactive", got)
	}
	if b.Velocity != (utils.Vec2{}) {
		t.Errorf("出界子弹速度 = %+v, 期望清零", b.Velocity)
	}
}

// 击中后切换到碰撞状态播放击中动画，播完释放槽位
func TestBulletSystem_HitThenReclaim(t *testing.T) {
	w := newTestWorld(t, flatTiles())
	w.step(1, utils.InputState{})

	w.bullets.Spawn(w.gs.Player())
	b := &w.gs.Bullets[0]

	w.bullets.OnHit(b)
	if got := b.Bullet().State; got != entities.BulletColliding {
		t.Fatalf("击中后状态 = %v, 期望 colliding", got)
	}
	if b.Velocity != (utils.Vec2{}) {
		t.Errorf("击中后速度 = %+v, 期望清零", b.Velocity)
	}
	if b.CurrentAnimation != entities.AnimBulletHit {
		t.Errorf("击中动画索引 = %d, 期望 %d", b.CurrentAnimation, entities.AnimBulletHit)
	}

	// 推进超过击中动画时长（0.3 秒）
	for i := 0; i < 30; i++ {
		if anim := b.Animation(); anim != nil {
			anim.Step(dt)
		}
		w.bullets.Apply(b, dt)
	}
	if got := b.Bullet().State; got != entities.BulletInactive {
		t.Errorf("击中动画播完后状态 = %v, 期望 inactive", got)
	}

	// 已释放的子弹不重复处理
	w.bullets.OnHit(b)
	if got := b.Bullet().State; got != entities.BulletInactive {
		t.Errorf("重复 OnHit 后状态 = %v, 期望保持 inactive", got)
	}
}

// 端到端：子弹不受速度钳制，直线飞行撞墙后转入碰撞状态
func TestBulletSystem_WallImpactEndToEnd(t *testing.T) {
	w := newTestWorld(t, wallTiles())
	w.step(1, utils.InputState{})
	p := w.gs.Player()
	p.Direction = 1

	w.bullets.Spawn(p)
	b := &w.gs.Bullets[0]
	muzzle := b.Velocity.X

	// 子弹 MaxSpeedX 为零：飞行中不钳制水平速度
	w.step(3, utils.InputState{})
	if b.Bullet().State == entities.BulletMoving && b.Velocity.X != muzzle {
		t.Errorf("飞行中水平速度 = %v, 期望保持 %v", b.Velocity.X, muzzle)
	}

	hit := false
	for i := 0; i < 60; i++ {
		w.physics.Update(dt, utils.InputState{})
		if b.Bullet().State == entities.BulletColliding {
			hit = true
			break
		}
	}
	if !hit {
		t.Fatal("60 帧内子弹未撞墙")
	}
	if b.Velocity != (utils.Vec2{}) {
		t.Errorf("撞墙后速度 = %+v, 期望清零", b.Velocity)
	}
}
