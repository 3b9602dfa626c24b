// Package utils 提供通用工具函数
package utils

// Vec2 二维浮点向量
// 用于表示位置、速度和加速度
type Vec2 struct {
	X float64
	Y float64
}

// Add 返回 v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale 返回 v 按标量 s 缩放后的向量
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect 轴对齐矩形（左上角 + 宽高）
// 用于碰撞盒和视口
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Empty 返回矩形是否为空（宽或高不大于 0）
// 空矩形不参与任何相交测试
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Offset 返回平移 (dx, dy) 后的矩形
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Overlaps 检查两个矩形是否重叠
// 边界刚好接触不算重叠
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Intersect 计算两个矩形的交集
// 返回交集矩形；如果不重叠返回 false
func (r Rect) Intersect(o Rect) (Rect, bool) {
	if !r.Overlaps(o) {
		return Rect{}, false
	}

	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	w := min(r.X+r.W, o.X+o.W) - x
	h := min(r.Y+r.H, o.Y+o.H) - y
	return Rect{X: x, Y: y, W: w, H: h}, true
}

// Contains 检查点 (x, y) 是否在矩形内（含左上边界，不含右下边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
