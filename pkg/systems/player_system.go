package systems

import (
	"math"

	"github.com/gonewx/pixelrun/pkg/config"
	"github.com/gonewx/pixelrun/pkg/entities"
	"github.com/gonewx/pixelrun/pkg/game"
	"github.com/gonewx/pixelrun/pkg/utils"
)

// PlayerSystem 运行玩家的移动状态机和武器冷却
//
// 状态机: idle / running / jumping / sliding
// 射击不是独立状态，而是叠加在任意移动状态上的外观修饰
type PlayerSystem struct {
	gs      *game.GameState
	bullets *BulletSystem
	tex     entities.PlayerTextures
	input   utils.InputState
}

// NewPlayerSystem 创建玩家系统并解析所需的全部纹理
func NewPlayerSystem(gs *game.GameState, bullets *BulletSystem, res entities.ResourceLoader) (*PlayerSystem, error) {
	tex, err := entities.LoadPlayerTextures(res)
	if err != nil {
		return nil, err
	}
	return &PlayerSystem{
		gs:      gs,
		bullets: bullets,
		tex:     tex,
	}, nil
}

// SetInput 设置本帧的输入快照
func (s *PlayerSystem) SetInput(in utils.InputState) {
	s.input = in
}

// Apply 运行玩家状态机，返回本帧的水平输入标量（-1/0/+1）
// 由物理系统在每个玩家实体的物理步骤中调用
func (s *PlayerSystem) Apply(obj *entities.GameObject, dt float64) float64 {
	data := obj.Player()
	axis := s.input.Axis
	if axis != 0 {
		obj.Direction = axis
	}

	// 武器冷却独立于移动状态推进；开火键按住即连发
	data.WeaponTimer.Step(dt)
	shooting := s.input.FireHeld
	if shooting && data.WeaponTimer.IsTimeout() {
		s.bullets.Spawn(obj)
		data.WeaponTimer.Reset()
	}

	switch data.State {
	case entities.StateIdle:
		if s.input.JumpJustPressed {
			s.jump(obj, data)
		} else if axis != 0 {
			data.State = entities.StateRunning
		} else {
			s.decelerate(obj, dt)
		}

	case entities.StateRunning:
		if s.input.JumpJustPressed {
			s.jump(obj, data)
		} else if axis == 0 {
			data.State = entities.StateIdle
		} else if obj.Grounded && obj.Velocity.X*obj.Direction < 0 {
			// 速度与朝向相反：反向急停滑行
			data.State = entities.StateSliding
		}

	case entities.StateSliding:
		if axis == 0 {
			data.State = entities.StateIdle
		} else if !obj.Grounded || obj.Velocity.X*obj.Direction >= 0 {
			data.State = entities.StateRunning
		}

	case entities.StateJumping:
		// 空中不响应跳跃键；等待接地边沿事件拉回 idle
	}

	s.selectAppearance(obj, data.State, shooting)
	return axis
}

// jump 施加一次性向上冲量并进入跳跃状态
func (s *PlayerSystem) jump(obj *entities.GameObject, data *entities.PlayerData) {
	obj.Velocity.Y += config.JumpImpulse
	data.State = entities.StateJumping
}

// decelerate 无输入时按 1.5 倍加速度反向减速，
// 减速量超过剩余速度时直接归零，绝不反向越过零点
func (s *PlayerSystem) decelerate(obj *entities.GameObject, dt float64) {
	if obj.Velocity.X == 0 {
		return
	}
	factor := config.IdleDecelFactor
	if obj.Velocity.X > 0 {
		factor = -factor
	}
	amount := factor * obj.Acceleration.X * dt
	if math.Abs(amount) >= math.Abs(obj.Velocity.X) {
		obj.Velocity.X = 0
	} else {
		obj.Velocity.X += amount
	}
}

// OnGroundedEdge 处理未接地→接地的边沿事件：无条件回到 idle，
// 下一帧的状态机再根据当前输入转移到 running
func (s *PlayerSystem) OnGroundedEdge(obj *entities.GameObject) {
	obj.Player().State = entities.StateIdle
}

// selectAppearance 按移动状态与射击修饰选择纹理和动画
// 跳跃复用跑步动画（与跑步外观一致）
func (s *PlayerSystem) selectAppearance(obj *entities.GameObject, state entities.PlayerState, shooting bool) {
	var tex entities.TextureID
	var anim int

	switch state {
	case entities.StateRunning, entities.StateJumping:
		tex, anim = s.tex.Run, entities.AnimPlayerRun
		if shooting {
			tex, anim = s.tex.ShootRun, entities.AnimPlayerShootRun
		}
	case entities.StateSliding:
		tex, anim = s.tex.Slide, entities.AnimPlayerSlide
		if shooting {
			tex, anim = s.tex.ShootSlide, entities.AnimPlayerShootSlide
		}
	default:
		tex, anim = s.tex.Idle, entities.AnimPlayerIdle
		if shooting {
			tex, anim = s.tex.ShootIdle, entities.AnimPlayerShootIdle
		}
	}

	obj.Texture = tex
	obj.SetAnimation(anim)
}
