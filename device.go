package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const stickDeadzone = 0.3

// Device reads keyboard and the first gamepad. It implements
// component.InputSource.
type Device struct {
	x, y     float64
	jumpDown bool
	jumpHeld bool
	dashDown bool
}

func NewDevice() *Device {
	return &Device{}
}

// Update polls the keyboard and gamepad. Keys: A/D or arrows to move, S or
// down to crouch, Space to jump, Left Shift to dash.
func (d *Device) Update() {
	var x, y float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		x -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		x += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		y += 1
	}

	jumpDown := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	jumpHeld := ebiten.IsKeyPressed(ebiten.KeySpace)
	dashDown := inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft)

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -stickDeadzone {
			x = -1
		} else if leftX > stickDeadzone {
			x = 1
		}
		// Standard mapping has +Y pointing down.
		leftY := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if leftY > stickDeadzone {
			y = -1
		} else if leftY < -stickDeadzone {
			y = 1
		}

		jumpDown = jumpDown || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		jumpHeld = jumpHeld || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		// X button (standard mapping: right-left)
		dashDown = dashDown || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightLeft)
	}

	d.x, d.y = x, y
	d.jumpDown = jumpDown
	d.jumpHeld = jumpHeld
	d.dashDown = dashDown
}

func (d *Device) HorizontalAxis() float64 { return d.x }
func (d *Device) VerticalAxis() float64   { return d.y }
func (d *Device) JumpDown() bool          { return d.jumpDown }
func (d *Device) JumpHeld() bool          { return d.jumpHeld }
func (d *Device) DashDown() bool          { return d.dashDown }
