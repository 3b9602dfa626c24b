package systems

import (
	"testing"

	"github.com/gonewx/pixelrun/pkg/config"
)

func TestCameraSystem_FollowsPlayer(t *testing.T) {
	w := newTestWorld(t, flatTiles())
	cam := NewCameraSystem(w.gs)
	p := w.gs.Player()

	p.Position.X = 500
	cam.Update()

	want := 500 + float64(config.TileSize)/2 - w.gs.Viewport.W/2
	if w.gs.Viewport.X != want {
		t.Errorf("视口 X = %v, 期望 %v（玩家精灵居中）", w.gs.Viewport.X, want)
	}
	if w.gs.Viewport.Y != 0 {
		t.Errorf("视口 Y = %v, 期望固定为 0", w.gs.Viewport.Y)
	}
}

// 相机不夹紧到关卡边界：玩家越界时视口跟随出界
func TestCameraSystem_NoClamping(t *testing.T) {
	w := newTestWorld(t, flatTiles())
	cam := NewCameraSystem(w.gs)

	w.gs.Player().Position.X = -1000
	cam.Update()

	if w.gs.Viewport.X >= 0 {
		t.Errorf("视口 X = %v, 期望跟随玩家为负值", w.gs.Viewport.X)
	}
}
