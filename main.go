// pixelrun 是一个横版卷轴平台跳跃游戏
//
// 用法:
//
//	pixelrun                 - 启动默认关卡
//	pixelrun --level 1-1     - 启动指定关卡
//	pixelrun --fullscreen    - 全屏启动
//	pixelrun --verbose       - 输出详细日志
//
// 游戏内按键: A/D 移动，K 跳跃，J 射击，F1 调试覆盖层，F11 全屏
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/gonewx/pixelrun/pkg/app"
	"github.com/gonewx/pixelrun/pkg/config"
	"github.com/gonewx/pixelrun/pkg/embedded"
)

var (
	flagLevel      string
	flagVerbose    bool
	flagFullscreen bool
)

var rootCmd = &cobra.Command{
	Use:   "pixelrun",
	Short: "pixelrun - 横版卷轴平台跳跃游戏",
	Long: `pixelrun 是一个基于 Ebitengine 的横版卷轴平台跳跃游戏。

游戏内按键:
  A/D   - 左右移动
  K     - 跳跃
  J     - 射击（按住连发）
  F1    - 切换调试覆盖层
  F11   - 切换全屏`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "要加载的关卡ID（默认 1-1）")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "输出详细日志")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "全屏启动")
}

func run() error {
	// 嵌入资源必须在任何资源访问之前初始化
	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:    flagVerbose,
		Level:      flagLevel,
		Fullscreen: flagFullscreen,
	})
	if err != nil {
		return fmt.Errorf("游戏初始化失败: %w", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("pixelrun")

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("游戏运行出错: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
