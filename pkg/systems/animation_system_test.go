package systems

import (
	"testing"

	"github.com/gonewx/pixelrun/pkg/entities"
)

func TestAnimationSystem_Update(t *testing.T) {
	w := newTestWorld(t, flatTiles())
	anims := NewAnimationSystem(w.gs)
	p := w.gs.Player()

	before := p.Animation().Elapsed
	anims.Update(dt)
	if got := p.Animation().Elapsed; got != before+dt {
		t.Errorf("玩家动画时钟 = %v, 期望 %v", got, before+dt)
	}

	// 关卡瓦片没有动画，不应崩溃
	tile := &w.gs.Layers[0][0]
	if tile.Animation() != nil {
		t.Fatal("瓦片不应携带动画")
	}

	// inactive 子弹的动画时钟不推进
	w.bullets.Spawn(p)
	b := &w.gs.Bullets[0]
	b.Bullet().State = entities.BulletInactive
	elapsed := b.Animation().Elapsed

	anims.Update(dt)
	if got := b.Animation().Elapsed; got != elapsed {
		t.Errorf("inactive 子弹动画时钟被推进: %v → %v", elapsed, got)
	}
}

func TestAnimationSystem_ActiveBulletAdvances(t *testing.T) {
	w := newTestWorld(t, flatTiles())
	anims := NewAnimationSystem(w.gs)

	w.bullets.Spawn(w.gs.Player())
	b := &w.gs.Bullets[0]
	before := b.Animation().Elapsed

	anims.Update(dt)
	if got := b.Animation().Elapsed; got != before+dt {
		t.Errorf("活动子弹动画时钟 = %v, 期望 %v", got, before+dt)
	}
}
