package components

// Timer 通用正计时器
// 用于处理需要时间间隔的行为（如武器冷却）
type Timer struct {
	Timeout float64 // 目标时长（秒）
	Elapsed float64 // 当前累计时间（秒）
}

// NewTimer 创建一个已就绪的计时器
// 初始 Elapsed == Timeout，使第一次触发不必等待冷却
func NewTimer(timeout float64) Timer {
	return Timer{Timeout: timeout, Elapsed: timeout}
}

// Step 推进计时
func (t *Timer) Step(dt float64) {
	t.Elapsed += dt
}

// IsTimeout 返回是否已到达目标时长
func (t *Timer) IsTimeout() bool {
	return t.Elapsed >= t.Timeout
}

// Reset 重新开始计时
func (t *Timer) Reset() {
	t.Elapsed = 0
}
