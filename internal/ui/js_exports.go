//go:build js

package ui

import "syscall/js"

// initJS exposes helpers for browser-based tests.
func (g *Game) initJS() {
	js.Global().Set("currentLevel", js.FuncOf(func(js.Value, []js.Value) any {
		return js.ValueOf(g.eng.Level())
	}))
	js.Global().Set("toggleDebug", js.FuncOf(func(js.Value, []js.Value) any {
		g.debug = !g.debug
		return nil
	}))
}

// reportStateJS publishes the phase and level for tests.
func (g *Game) reportStateJS() {
	js.Global().Set("__phase", js.ValueOf(g.lastPhase.String()))
	js.Global().Set("__level", js.ValueOf(g.eng.Level()))
}
