package systems

import (
	"github.com/gonewx/pixelrun/pkg/entities"
	"github.com/gonewx/pixelrun/pkg/game"
)

// AnimationSystem 推进所有活动实体的当前动画时钟
// 在物理步骤之后运行，本帧的状态切换立即反映到动画上
type AnimationSystem struct {
	gs *game.GameState
}

// NewAnimationSystem 创建动画系统
func NewAnimationSystem(gs *game.GameState) *AnimationSystem {
	return &AnimationSystem{gs: gs}
}

// Update 推进图层实体和活动子弹的动画
func (s *AnimationSystem) Update(dt float64) {
	for li := range s.gs.Layers {
		layer := s.gs.Layers[li]
		for i := range layer {
			if anim := layer[i].Animation(); anim != nil {
				anim.Step(dt)
			}
		}
	}

	for i := range s.gs.Bullets {
		b := &s.gs.Bullets[i]
		if b.Bullet().State == entities.BulletInactive {
			continue
		}
		if anim := b.Animation(); anim != nil {
			anim.Step(dt)
		}
	}
}
