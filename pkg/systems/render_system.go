package systems

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/gonewx/pixelrun/pkg/config"
	"github.com/gonewx/pixelrun/pkg/entities"
	"github.com/gonewx/pixelrun/pkg/game"
)

// RenderSystem 负责每帧的全部绘制
// 绘制顺序: 背景层（远→近）→ 关卡层 → 角色层 → 子弹 → 调试覆盖层
type RenderSystem struct {
	gs *game.GameState
	rm *game.ResourceManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(gs *game.GameState, rm *game.ResourceManager) *RenderSystem {
	return &RenderSystem{gs: gs, rm: rm}
}

// Draw 绘制完整一帧到逻辑屏幕
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawBackgrounds(screen)

	for li := range s.gs.Layers {
		layer := s.gs.Layers[li]
		for i := range layer {
			s.drawObject(screen, &layer[i])
		}
	}

	for i := range s.gs.Bullets {
		b := &s.gs.Bullets[i]
		if b.Bullet().State == entities.BulletInactive {
			continue
		}
		s.drawObject(screen, b)
	}

	if s.gs.ShowDebug {
		s.drawDebugOverlay(screen)
	}
}

// drawObject 绘制单个实体的当前动画帧
// 朝左的实体水平镜像；世界坐标减去视口原点得到屏幕坐标
func (s *RenderSystem) drawObject(screen *ebiten.Image, obj *entities.GameObject) {
	if obj.Texture == entities.TextureNone {
		return
	}

	img := s.rm.Image(obj.Texture)
	fw, fh := s.rm.FrameSize(obj.Texture)

	frame := 0
	if anim := obj.Animation(); anim != nil {
		frame = anim.CurrentFrame()
	}
	src := img.SubImage(image.Rect(frame*fw, 0, (frame+1)*fw, fh)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	if obj.Direction < 0 {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(fw), 0)
	}
	op.GeoM.Translate(obj.Position.X-s.gs.Viewport.X, obj.Position.Y-s.gs.Viewport.Y)
	screen.DrawImage(src, op)
}

// drawBackgrounds 从远到近水平平铺绘制各背景层
func (s *RenderSystem) drawBackgrounds(screen *ebiten.Image) {
	for i := range s.gs.Backgrounds {
		layer := &s.gs.Backgrounds[i]
		img := s.rm.Image(layer.Texture)
		width := float64(img.Bounds().Dx())
		if width <= 0 {
			continue
		}

		// 起点归一到 (-width, 0]，向右平铺直到铺满屏幕
		start := math.Mod(layer.Offset, width)
		if start > 0 {
			start -= width
		}
		for x := start; x < config.ScreenWidth; x += width {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, 0)
			screen.DrawImage(img, op)
		}
	}
}

// drawDebugOverlay 左上角打印玩家状态、速度、接地标志和子弹池占用
func (s *RenderSystem) drawDebugOverlay(screen *ebiten.Image) {
	player := s.gs.Player()
	data := player.Player()

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("state: %s", data.State), 5, 5)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("velocity: (%.1f, %.1f)", player.Velocity.X, player.Velocity.Y), 5, 21)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("grounded: %v", player.Grounded), 5, 37)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("bullets: %d/%d", s.gs.ActiveBullets(), len(s.gs.Bullets)), 5, 53)
}
