package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的输入快照
// 物理和状态机系统只读取此快照，不直接访问键盘，
// 这样测试可以直接构造任意输入状态
type InputState struct {
	// 水平输入轴：-1（左）、0（无）、+1（右）
	Axis float64
	// 跳跃键是否在本帧刚刚按下（边沿触发）
	JumpJustPressed bool
	// 开火键是否处于按住状态（电平触发）
	FireHeld bool
}

// ReadKeyboard 获取当前帧的键盘输入快照
// A/D 控制左右移动，K 跳跃（仅按下边沿），J 按住开火
func ReadKeyboard() InputState {
	state := InputState{}

	if ebiten.IsKeyPressed(ebiten.KeyA) {
		state.Axis -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		state.Axis += 1
	}

	state.JumpJustPressed = inpututil.IsKeyJustPressed(ebiten.KeyK)
	state.FireHeld = ebiten.IsKeyPressed(ebiten.KeyJ)

	return state
}
