package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	cursorPosition       = ebiten.CursorPosition
	isMouseButtonPressed = ebiten.IsMouseButtonPressed
	isKeyJustPressed     = inpututil.IsKeyJustPressed
	touchIDs             = func() []ebiten.TouchID { return ebiten.AppendTouchIDs(nil) }
	touchPosition        = ebiten.TouchPosition
)

// SetInputForTest replaces input functions during tests and returns a function
// to restore the originals. Touch input is disabled while overridden.
func SetInputForTest(
	cursor func() (int, int),
	mouse func(ebiten.MouseButton) bool,
	key func(ebiten.Key) bool,
) func() {
	oldCursor := cursorPosition
	oldMouse := isMouseButtonPressed
	oldKey := isKeyJustPressed
	oldTouches := touchIDs
	cursorPosition = cursor
	isMouseButtonPressed = mouse
	isKeyJustPressed = key
	touchIDs = func() []ebiten.TouchID { return nil }
	return func() {
		cursorPosition = oldCursor
		isMouseButtonPressed = oldMouse
		isKeyJustPressed = oldKey
		touchIDs = oldTouches
	}
}

// pointerInput reads the single pointer: the first touch if any, otherwise
// the mouse with its left button.
func pointerInput() (x, y int, down bool) {
	if ids := touchIDs(); len(ids) > 0 {
		x, y = touchPosition(ids[0])
		return x, y, true
	}
	x, y = cursorPosition()
	return x, y, isMouseButtonPressed(ebiten.MouseButtonLeft)
}
