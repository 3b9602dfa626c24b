package systems

import (
	"math/rand"

	"github.com/gonewx/pixelrun/pkg/config"
	"github.com/gonewx/pixelrun/pkg/entities"
	"github.com/gonewx/pixelrun/pkg/game"
	"github.com/gonewx/pixelrun/pkg/utils"
)

// BulletSystem 管理子弹的生成、状态机和池化复用
//
// 池策略: 生成时线性扫描 inactive 槽位原地覆盖，
// 没有空位才追加；池只增不减，大小收敛到并发子弹峰值
type BulletSystem struct {
	gs  *game.GameState
	tex entities.BulletTextures
	rng *rand.Rand
}

// NewBulletSystem 创建子弹系统并解析所需纹理
func NewBulletSystem(gs *game.GameState, res entities.ResourceLoader) (*BulletSystem, error) {
	tex, err := entities.LoadBulletTextures(res)
	if err != nil {
		return nil, err
	}
	return &BulletSystem{
		gs:  gs,
		tex: tex,
		rng: rand.New(rand.NewSource(rand.Int63())),
	}, nil
}

// Spawn 从射击者位置生成一颗子弹
//
// 生成位置按朝向在左右偏移之间插值；初速继承射击者的
// 水平速度并叠加朝向方向的枪口速度，垂直方向加小幅随机散布
func (s *BulletSystem) Spawn(shooter *entities.GameObject) {
	// direction -1 → t=0（左偏移），+1 → t=1（右偏移）
	t := (shooter.Direction + 1) / 2
	offsetX := config.BulletSpawnOffsetLeft + t*(config.BulletSpawnOffsetRight-config.BulletSpawnOffsetLeft)

	pos := utils.Vec2{
		X: shooter.Position.X + offsetX,
		Y: shooter.Position.Y + config.BulletSpawnOffsetY,
	}
	vel := utils.Vec2{
		X: shooter.Velocity.X + shooter.Direction*config.BulletMuzzleSpeed,
		Y: (s.rng.Float64()*2 - 1) * config.BulletVerticalJitter,
	}
	bullet := entities.NewBullet(s.tex, pos, vel, shooter.Direction)

	for i := range s.gs.Bullets {
		if s.gs.Bullets[i].Bullet().State == entities.BulletInactive {
			s.gs.Bullets[i] = bullet
			return
		}
	}
	s.gs.Bullets = append(s.gs.Bullets, bullet)
}

// Apply 运行单颗子弹的状态机
// 由物理系统在每颗活动子弹的物理步骤中调用
func (s *BulletSystem) Apply(obj *entities.GameObject, dt float64) {
	data := obj.Bullet()

	switch data.State {
	case entities.BulletMoving:
		// 精灵完全离开视口任一边即剔除
		sprite := utils.Rect{
			X: obj.Position.X,
			Y: obj.Position.Y,
			W: config.SpriteSize,
			H: config.SpriteSize,
		}
		if !sprite.Overlaps(s.gs.Viewport) {
			data.State = entities.BulletInactive
			obj.Velocity = utils.Vec2{}
		}

	case entities.BulletColliding:
		// 击中动画播完后释放槽位
		if anim := obj.Animation(); anim == nil || anim.IsDone() {
			data.State = entities.BulletInactive
		}

	case entities.BulletInactive:
		// 终态，等待覆盖
	}
}

// OnHit 子弹撞上实体几何：速度清零，切换到碰撞状态并播放击中动画
// 已经处于碰撞或 inactive 状态的子弹不重复处理
func (s *BulletSystem) OnHit(obj *entities.GameObject) {
	data := obj.Bullet()
	if data.State != entities.BulletMoving {
		return
	}
	data.State = entities.BulletColliding
	obj.Velocity = utils.Vec2{}
	obj.Texture = s.tex.Hit
	obj.SetAnimation(entities.AnimBulletHit)
}
