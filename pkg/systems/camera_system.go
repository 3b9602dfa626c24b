package systems

import (
	"github.com/gonewx/pixelrun/pkg/config"
	"github.com/gonewx/pixelrun/pkg/game"
)

// CameraSystem 让视口水平跟随玩家
// 视口 X 每帧重新计算，无平滑缓动，也不夹紧到关卡边界，
// 玩家精灵中心始终位于屏幕水平中央；垂直方向固定不动
type CameraSystem struct {
	gs *game.GameState
}

// NewCameraSystem 创建相机系统
func NewCameraSystem(gs *game.GameState) *CameraSystem {
	return &CameraSystem{gs: gs}
}

// Update 更新视口位置
func (s *CameraSystem) Update() {
	player := s.gs.Player()
	s.gs.Viewport.X = player.Position.X + config.TileSize/2 - s.gs.Viewport.W/2
}
