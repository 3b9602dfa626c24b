// Package components 定义游戏对象的基础数据记录
// 这些记录是纯数据 + 少量纯函数，不依赖渲染层
package components

import "math"

// Animation 管理固定帧数精灵条的播放进度
// Speed 是播放一个完整循环所需的时间（秒），
// 每帧时长 = Speed / NumFrames
type Animation struct {
	NumFrames int     // 动画总帧数
	Speed     float64 // 完整循环时长（秒）
	Elapsed   float64 // 累计播放时间（秒）
	Loop      bool    // 是否循环播放
}

// NewAnimation 创建一个循环动画
func NewAnimation(numFrames int, speed float64) Animation {
	return Animation{NumFrames: numFrames, Speed: speed, Loop: true}
}

// NewOneShotAnimation 创建一个非循环动画（停在最后一帧）
func NewOneShotAnimation(numFrames int, speed float64) Animation {
	return Animation{NumFrames: numFrames, Speed: speed, Loop: false}
}

// Step 推进播放时间
// 调用方约定：dt >= 0，每帧对每个活动动画最多调用一次
func (a *Animation) Step(dt float64) {
	a.Elapsed += dt
}

// CurrentFrame 返回当前应显示的帧索引（0-based）
// 循环动画按周期取模；非循环动画停在最后一帧
func (a *Animation) CurrentFrame() int {
	if a.NumFrames <= 1 {
		return 0
	}

	frameDuration := a.Speed / float64(a.NumFrames)
	frame := int(math.Floor(a.Elapsed / frameDuration))

	if a.Loop {
		return frame % a.NumFrames
	}
	if frame >= a.NumFrames {
		return a.NumFrames - 1
	}
	return frame
}

// IsDone 返回非循环动画是否已播放到最后一帧
// 循环动画永远返回 false
func (a *Animation) IsDone() bool {
	if a.Loop {
		return false
	}
	return a.CurrentFrame() >= a.NumFrames-1
}

// Reset 重置播放进度
func (a *Animation) Reset() {
	a.Elapsed = 0
}
