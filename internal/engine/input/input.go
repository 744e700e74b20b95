// Package input turns SDL2 events into Handler callbacks.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a translated event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventDrop
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Keycode
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
	Path   string
}

// Handler receives input callbacks once per translated event.
type Handler interface {
	KeyDown(key sdl.Keycode)
	KeyUp(key sdl.Keycode)
	MouseMove(x, y int)
	MouseDown(x, y int, button uint8)
	MouseUp(x, y int, button uint8)
	Resize(w, h int)
	Drop(path string)
}

// NopHandler ignores every callback. Embed it to override only some of them.
type NopHandler struct{}

func (NopHandler) KeyDown(sdl.Keycode)       {}
func (NopHandler) KeyUp(sdl.Keycode)         {}
func (NopHandler) MouseMove(int, int)        {}
func (NopHandler) MouseDown(int, int, uint8) {}
func (NopHandler) MouseUp(int, int, uint8)   {}
func (NopHandler) Resize(int, int)           {}
func (NopHandler) Drop(string)               {}

// Input polls SDL and forwards events to a Handler.
type Input struct {
	handler Handler
}

// New creates an input dispatcher. A nil handler means NopHandler.
func New(h Handler) *Input {
	if h == nil {
		h = NopHandler{}
	}
	return &Input{handler: h}
}

// Update drains the SDL event queue and dispatches every event.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		e, ok := Translate(event)
		if !ok {
			continue
		}
		if Dispatch(i.handler, e) {
			quit = true
		}
	}
	return quit
}

// Translate converts an SDL event. ok is false for events that are ignored.
func Translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return Event{}, false
		}
		switch e.Type {
		case sdl.KEYDOWN:
			return Event{Type: EventKeyDown, Key: e.Keysym.Sym}, true
		case sdl.KEYUP:
			return Event{Type: EventKeyUp, Key: e.Keysym.Sym}, true
		}

	case *sdl.MouseMotionEvent:
		return Event{Type: EventMouseMove, MouseX: int(e.X), MouseY: int(e.Y)}, true

	case *sdl.MouseButtonEvent:
		switch e.Type {
		case sdl.MOUSEBUTTONDOWN:
			return Event{Type: EventMouseDown, MouseX: int(e.X), MouseY: int(e.Y), Button: e.Button}, true
		case sdl.MOUSEBUTTONUP:
			return Event{Type: EventMouseUp, MouseX: int(e.X), MouseY: int(e.Y), Button: e.Button}, true
		}

	case *sdl.DropEvent:
		if e.Type == sdl.DROPFILE {
			return Event{Type: EventDrop, Path: e.File}, true
		}
	}

	return Event{}, false
}

// Dispatch forwards e to h and reports whether it ends the application:
// a quit event or the Escape key.
func Dispatch(h Handler, e Event) bool {
	switch e.Type {
	case EventQuit:
		return true
	case EventWindowResize:
		h.Resize(e.Width, e.Height)
	case EventKeyDown:
		h.KeyDown(e.Key)
		return e.Key == sdl.K_ESCAPE
	case EventKeyUp:
		h.KeyUp(e.Key)
	case EventMouseMove:
		h.MouseMove(e.MouseX, e.MouseY)
	case EventMouseDown:
		h.MouseDown(e.MouseX, e.MouseY, e.Button)
	case EventMouseUp:
		h.MouseUp(e.MouseX, e.MouseY, e.Button)
	case EventDrop:
		h.Drop(e.Path)
	}
	return false
}
