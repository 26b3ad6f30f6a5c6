package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const stickDeadzone = 0.3

// Input is the per-tick snapshot of keyboard, mouse and gamepad state.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	// MouseLeft is true while the primary mouse button is held.
	MouseLeft bool
	// AttackPressed is true on the tick the primary button went down.
	AttackPressed bool
	// MouseX/Y are the cursor position in world pixels.
	MouseX float64
	MouseY float64
	// PausePressed is true on the tick Escape (or Start) went down.
	PausePressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls ebiten and refreshes the snapshot.
func (i *Input) Update() {
	mx, my := ebiten.CursorPosition()
	i.MouseX = float64(mx)
	i.MouseY = float64(my)

	i.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	i.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	i.Up = ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	i.MouseLeft = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	i.AttackPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -stickDeadzone {
			i.Left = true
		} else if leftX > stickDeadzone {
			i.Right = true
		}

		i.Up = i.Up || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		i.MouseLeft = i.MouseLeft || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontBottomRight)
		i.AttackPressed = i.AttackPressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonFrontBottomRight)
		i.PausePressed = i.PausePressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}
}
