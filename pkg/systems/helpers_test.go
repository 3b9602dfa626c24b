package systems

import (
	"fmt"
	"testing"

	"github.com/gonewx/pixelrun/pkg/config"
	"github.com/gonewx/pixelrun/pkg/entities"
	"github.com/gonewx/pixelrun/pkg/game"
	"github.com/gonewx/pixelrun/pkg/utils"
)

// 测试用固定帧步长，与运行时帧循环一致
const dt = 1.0 / 60.0

// fakeLoader 测试用资源加载器
// 按首次出现的顺序给名称分配递增的纹理柄，不触碰渲染层
type fakeLoader struct {
	ids map[string]entities.TextureID
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{ids: make(map[string]entities.TextureID)}
}

func (f *fakeLoader) Texture(name string) (entities.TextureID, error) {
	if name == "" {
		return entities.TextureNone, fmt.Errorf("empty texture name")
	}
	if id, ok := f.ids[name]; ok {
		return id, nil
	}
	id := entities.TextureID(len(f.ids))
	f.ids[name] = id
	return id, nil
}

// testWorld 组合一套可以直接驱动帧循环的模拟系统
type testWorld struct {
	gs      *game.GameState
	physics *PhysicsSystem
	player  *PlayerSystem
	bullets *BulletSystem
}

// newTestWorld 以给定瓦片地图构建测试世界
func newTestWorld(t *testing.T, tiles [][]int) *testWorld {
	t.Helper()

	cfg := &config.LevelConfig{ID: "test", Name: "测试关卡", Tiles: tiles}
	res := newFakeLoader()

	gs, err := game.NewGameState(cfg, res)
	if err != nil {
		t.Fatalf("构建游戏状态失败: %v", err)
	}
	bullets, err := NewBulletSystem(gs, res)
	if err != nil {
		t.Fatalf("创建子弹系统失败: %v", err)
	}
	player, err := NewPlayerSystem(gs, bullets, res)
	if err != nil {
		t.Fatalf("创建玩家系统失败: %v", err)
	}

	return &testWorld{
		gs:      gs,
		physics: NewPhysicsSystem(gs, player, bullets),
		player:  player,
		bullets: bullets,
	}
}

// step 以固定帧步长推进 n 帧，每帧使用同一份输入快照
func (w *testWorld) step(n int, in utils.InputState) {
	for i := 0; i < n; i++ {
		w.physics.Update(dt, in)
	}
}

// flatTiles 一块平地，玩家出生在左侧，底行全是地面
// 出生点正好落在地面上（碰撞盒底边与地面顶边对齐）
func flatTiles() [][]int {
	return [][]int{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 4, 0, 0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 1, 1},
	}
}

// wallTiles 平地加一堵三格高的墙（第 4 列，世界 X = 128）
func wallTiles() [][]int {
	return [][]int{
		{0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 1, 0},
		{0, 4, 0, 0, 1, 0},
		{1, 1, 1, 1, 1, 1},
	}
}
