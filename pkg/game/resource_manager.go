package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png" // 注册 PNG 解码器
	"log"

	"github.com/gonewx/pixelrun/pkg/config"
	"github.com/gonewx/pixelrun/pkg/embedded"
	"github.com/gonewx/pixelrun/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

// textureEntry 纹理池中的一项
type textureEntry struct {
	image       *ebiten.Image
	frames      int
	frameWidth  int
	frameHeight int
}

// ResourceManager 集中持有所有纹理资源
// 纹理池按 TextureID 索引，游戏对象只保存柄，不持有纹理；
// 所有纹理在进程退出时随池一起释放。
//
// 注意：内部缓存不是并发安全的。当前游戏循环是严格单线程的，
// 资源也只在启动时加载一次，因此不需要加锁。
type ResourceManager struct {
	entries []textureEntry
	names   map[string]entities.TextureID
}

// NewResourceManager 创建一个空的资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		names: make(map[string]entities.TextureID),
	}
}

// LoadSpriteConfig 按精灵清单填充纹理池
// 每个精灵优先读取 data/images/<id>.png；
// 嵌入资源中没有对应文件时，按清单中的颜色程序化生成占位符条
func (rm *ResourceManager) LoadSpriteConfig(cfg *config.SpriteConfig) error {
	for _, def := range cfg.Sprites {
		img, err := rm.loadOrGenerate(def)
		if err != nil {
			return fmt.Errorf("failed to load sprite %s: %w", def.ID, err)
		}

		rm.entries = append(rm.entries, textureEntry{
			image:       img,
			frames:      def.Frames,
			frameWidth:  def.FrameWidth,
			frameHeight: def.FrameHeight,
		})
		rm.names[def.ID] = entities.TextureID(len(rm.entries) - 1)
	}

	log.Printf("[ResourceManager] 纹理池加载完成，共 %d 个纹理", len(rm.entries))
	return nil
}

// loadOrGenerate 读取 PNG 或生成占位符
func (rm *ResourceManager) loadOrGenerate(def config.SpriteDef) (*ebiten.Image, error) {
	path := fmt.Sprintf("data/images/%s.png", def.ID)
	if embedded.IsInitialized() && embedded.Exists(path) {
		data, err := embedded.ReadFile(path)
		if err != nil {
			return nil, err
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}

		// 尺寸必须与清单一致，否则帧裁剪会错位
		wantW, wantH := def.Frames*def.FrameWidth, def.FrameHeight
		if img.Bounds().Dx() != wantW || img.Bounds().Dy() != wantH {
			return nil, fmt.Errorf("%s: image is %dx%d, config wants %dx%d",
				path, img.Bounds().Dx(), img.Bounds().Dy(), wantW, wantH)
		}
		return ebiten.NewImageFromImage(img), nil
	}

	return generatePlaceholderStrip(def), nil
}

// generatePlaceholderStrip 程序化生成精灵条占位符
// 每帧使用递增的亮度，使动画播放在占位符上肉眼可见
func generatePlaceholderStrip(def config.SpriteDef) *ebiten.Image {
	w := def.Frames * def.FrameWidth
	h := def.FrameHeight
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	base := color.RGBA{
		R: uint8(def.Color[0]),
		G: uint8(def.Color[1]),
		B: uint8(def.Color[2]),
		A: 255,
	}
	border := color.RGBA{
		R: base.R / 2,
		G: base.G / 2,
		B: base.B / 2,
		A: 255,
	}

	for f := 0; f < def.Frames; f++ {
		// 亮度从 60% 线性爬升到 100%
		scale := 1.0
		if def.Frames > 1 {
			scale = 0.6 + 0.4*float64(f)/float64(def.Frames-1)
		}
		fill := color.RGBA{
			R: uint8(float64(base.R) * scale),
			G: uint8(float64(base.G) * scale),
			B: uint8(float64(base.B) * scale),
			A: 255,
		}

		frame := image.Rect(f*def.FrameWidth, 0, (f+1)*def.FrameWidth, h)
		draw.Draw(img, frame, &image.Uniform{border}, image.Point{}, draw.Src)
		inner := frame.Inset(1)
		draw.Draw(img, inner, &image.Uniform{fill}, image.Point{}, draw.Src)
	}

	return ebiten.NewImageFromImage(img)
}

// Texture 按名称解析纹理柄
// 实现 entities.ResourceLoader；未注册的名称返回错误
func (rm *ResourceManager) Texture(name string) (entities.TextureID, error) {
	id, ok := rm.names[name]
	if !ok {
		return entities.TextureNone, fmt.Errorf("texture %q not registered", name)
	}
	return id, nil
}

// Image 返回纹理柄对应的图像
// 非法柄违反资源不变式，直接 panic
func (rm *ResourceManager) Image(id entities.TextureID) *ebiten.Image {
	if id < 0 || int(id) >= len(rm.entries) {
		panic(fmt.Sprintf("game: invalid texture handle %d (pool size %d)", id, len(rm.entries)))
	}
	return rm.entries[id].image
}

// FrameSize 返回纹理条的单帧尺寸
func (rm *ResourceManager) FrameSize(id entities.TextureID) (w, h int) {
	if id < 0 || int(id) >= len(rm.entries) {
		panic(fmt.Sprintf("game: invalid texture handle %d (pool size %d)", id, len(rm.entries)))
	}
	return rm.entries[id].frameWidth, rm.entries[id].frameHeight
}

// Count 返回纹理池大小
func (rm *ResourceManager) Count() int {
	return len(rm.entries)
}
