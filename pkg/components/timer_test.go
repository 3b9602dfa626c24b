package components

import "testing"

// TestTimerInitialReady 新建计时器应该立即就绪
// 武器第一次开火不等待冷却
func TestTimerInitialReady(t *testing.T) {
	timer := NewTimer(0.2)
	if !timer.IsTimeout() {
		t.Error("新建计时器 IsTimeout() = false, want true")
	}
}

// TestTimerResetAndStep 测试 Reset 后的计时流程
func TestTimerResetAndStep(t *testing.T) {
	timer := NewTimer(0.2)
	timer.Reset()

	if timer.IsTimeout() {
		t.Error("Reset 后 IsTimeout() = true, want false")
	}

	// 推进 0.1 秒，尚未到达
	timer.Step(0.1)
	if timer.IsTimeout() {
		t.Error("0.1s 后 IsTimeout() = true, want false")
	}

	// 再推进 0.1 秒，刚好到达（Elapsed >= Timeout）
	timer.Step(0.1)
	if !timer.IsTimeout() {
		t.Error("0.2s 后 IsTimeout() = false, want true")
	}
}
