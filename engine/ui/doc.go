// Package ui is an immediate-mode GUI engine.
//
// The application declares its widgets every frame between Begin and End.
// Widgets are identified by hashing their label or the address of the
// variable they edit within the enclosing id scope, so no handles are kept
// by the caller. The only state retained across frames is held in two
// fixed-size pools: one for containers (windows, popups, panels) and one
// for the expanded state of headers and tree nodes.
//
// Declaring a widget lays it out, runs the shared hover/focus state
// machine against the input recorded since the last frame, and appends
// draw commands to a fixed byte arena. After End the host walks the
// commands in z-order:
//
//	ctx.Begin()
//	if ctx.BeginWindow("Demo", ui.NewRect(40, 40, 300, 200)) != 0 {
//		if ctx.Button("Press")&ui.ResSubmit != 0 {
//			...
//		}
//		ctx.EndWindow()
//	}
//	ctx.End()
//	for cmd := range ctx.Commands() {
//		switch cmd.Kind {
//		case ui.CommandClip, ui.CommandRect, ui.CommandText, ui.CommandIcon:
//			...
//		}
//	}
//
// Capacities are fixed when the context is created. Overflowing any of
// them, or leaving a scope open at End, is a programming error and panics
// with an *Error.
package ui
