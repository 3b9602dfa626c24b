// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，集中完成资源加载、
// 设置恢复和场景装配；main 只负责命令行解析和窗口创建。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/pixelrun/pkg/config"
	"github.com/gonewx/pixelrun/pkg/embedded"
	"github.com/gonewx/pixelrun/pkg/game"
	"github.com/gonewx/pixelrun/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 指定要加载的关卡（如 "1-1"），为空则使用默认关卡
	Level string
	// Fullscreen 启动时直接进入全屏
	Fullscreen bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	verbose         bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 初始化跨平台设置存储；失败只影响持久化，不阻止游戏启动
	var gdataManager *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: "pixelrun"}); err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
	} else {
		gdataManager = m
	}
	settingsManager := game.NewSettingsManager(gdataManager)

	// 加载精灵清单并填充纹理池
	spriteData, err := embedded.ReadFile("data/sprites.yaml")
	if err != nil {
		return nil, fmt.Errorf("精灵清单读取失败: %w", err)
	}
	spriteCfg, err := config.ParseSpriteConfig(spriteData)
	if err != nil {
		return nil, fmt.Errorf("精灵清单解析失败: %w", err)
	}
	resourceManager := game.NewResourceManager()
	if err := resourceManager.LoadSpriteConfig(spriteCfg); err != nil {
		return nil, fmt.Errorf("纹理资源加载失败: %w", err)
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(levelID string) (game.Scene, error) {
		return scenes.NewGameScene(resourceManager, sceneManager, settingsManager, levelID)
	})

	// 确定加载哪个关卡；场景构建失败直接中止启动
	levelToLoad := cfg.Level
	if levelToLoad == "" {
		levelToLoad = "1-1"
	}
	log.Printf("[App] Starting level: %s", levelToLoad)
	if err := sceneManager.LoadLevel(levelToLoad); err != nil {
		return nil, fmt.Errorf("关卡 %s 初始化失败: %w", levelToLoad, err)
	}

	// 全屏优先级：命令行参数 > 已保存的设置
	if cfg.Fullscreen || settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏并持久化
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settingsManager.SetFullscreen(fullscreen)
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] 设置保存失败: %v", err)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
