// Package scenes 实现游戏的各个场景
package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/pixelrun/pkg/config"
	"github.com/gonewx/pixelrun/pkg/game"
	"github.com/gonewx/pixelrun/pkg/systems"
	"github.com/gonewx/pixelrun/pkg/utils"
)

// GameScene 游戏主场景
// 持有一个关卡的完整模拟状态和全部子系统，
// 帧顺序固定：输入 → 物理 → 动画 → 相机 → 视差 → 绘制
type GameScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	gameState       *game.GameState

	physicsSystem   *systems.PhysicsSystem
	animationSystem *systems.AnimationSystem
	cameraSystem    *systems.CameraSystem
	parallaxSystem  *systems.ParallaxSystem
	renderSystem    *systems.RenderSystem

	levelID string
}

// NewGameScene 创建游戏场景并构建指定关卡
// 关卡配置加载失败时回退到内置默认关卡；
// 状态或系统构建失败是启动级错误，直接向上返回，不产生半初始化场景
func NewGameScene(resourceManager *game.ResourceManager, sceneManager *game.SceneManager,
	settingsManager *game.SettingsManager, levelID string) (*GameScene, error) {

	s := &GameScene{
		resourceManager: resourceManager,
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		levelID:         levelID,
	}

	levelCfg, err := config.LoadLevelConfig(levelID)
	if err != nil {
		log.Printf("[GameScene] 关卡 %s 加载失败: %v，使用内置默认关卡", levelID, err)
		levelCfg = config.DefaultLevelConfig()
	}

	gs, err := game.NewGameState(levelCfg, resourceManager)
	if err != nil {
		return nil, fmt.Errorf("关卡 %s 游戏状态构建失败: %w", levelCfg.ID, err)
	}
	gs.ShowDebug = settingsManager.GetSettings().ShowDebug
	s.gameState = gs

	bulletSystem, err := systems.NewBulletSystem(gs, resourceManager)
	if err != nil {
		return nil, fmt.Errorf("关卡 %s 子弹系统创建失败: %w", levelCfg.ID, err)
	}
	playerSystem, err := systems.NewPlayerSystem(gs, bulletSystem, resourceManager)
	if err != nil {
		return nil, fmt.Errorf("关卡 %s 玩家系统创建失败: %w", levelCfg.ID, err)
	}

	s.physicsSystem = systems.NewPhysicsSystem(gs, playerSystem, bulletSystem)
	s.animationSystem = systems.NewAnimationSystem(gs)
	s.cameraSystem = systems.NewCameraSystem(gs)
	s.parallaxSystem = systems.NewParallaxSystem(gs, resourceManager)
	s.renderSystem = systems.NewRenderSystem(gs, resourceManager)

	log.Printf("[GameScene] 关卡 %s 初始化完成", levelCfg.ID)
	return s, nil
}

// Update 按固定顺序推进一帧模拟
func (s *GameScene) Update(deltaTime float64) {
	// F1 切换调试覆盖层并持久化
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.gameState.ShowDebug = !s.gameState.ShowDebug
		s.settingsManager.SetShowDebug(s.gameState.ShowDebug)
		if err := s.settingsManager.Save(); err != nil {
			log.Printf("[GameScene] 设置保存失败: %v", err)
		}
	}

	input := utils.ReadKeyboard()

	s.physicsSystem.Update(deltaTime, input)
	s.animationSystem.Update(deltaTime)
	s.cameraSystem.Update()
	s.parallaxSystem.Update(deltaTime)
}

// Draw 绘制当前帧
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

// GameState 返回场景持有的游戏状态（调试工具使用）
func (s *GameScene) GameState() *game.GameState {
	return s.gameState
}
