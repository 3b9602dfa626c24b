package systems

import (
	"math"

	"github.com/gonewx/pixelrun/pkg/game"
)

// ParallaxSystem 按玩家水平速度滚动各背景层
// 每层偏移按各自的视差因子累积，因子越小的层滚得越慢（显得越远）
type ParallaxSystem struct {
	gs *game.GameState
	rm *game.ResourceManager
}

// NewParallaxSystem 创建视差系统
func NewParallaxSystem(gs *game.GameState, rm *game.ResourceManager) *ParallaxSystem {
	return &ParallaxSystem{gs: gs, rm: rm}
}

// Update 累积各层滚动偏移
// 偏移回绕到一个纹理宽度以内，避免长时间游玩后数值无限增长
func (s *ParallaxSystem) Update(dt float64) {
	vel := s.gs.Player().Velocity.X

	for i := range s.gs.Backgrounds {
		layer := &s.gs.Backgrounds[i]
		width := float64(s.rm.Image(layer.Texture).Bounds().Dx())
		if width <= 0 {
			continue
		}
		layer.Offset = math.Mod(layer.Offset-vel*layer.Factor*dt, width)
	}
}
