package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/goassimp/internal/camera"
	"github.com/Faultbox/goassimp/internal/input"
	"github.com/Faultbox/goassimp/internal/render"
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionFullscreen
	actionResetCamera
	actionScreenshot
)

// controls maps mouse and keyboard events onto the camera and the
// render options. Left drag orbits, right or middle drag pans, the wheel
// zooms.
type controls struct {
	cam      *camera.OrbitCamera
	opts     *render.Options
	rotating bool
	panning  bool
}

func (c *controls) handle(ev input.Event) action {
	switch ev.Type {
	case input.EventMouseDown:
		switch ev.Button {
		case input.ButtonLeft:
			c.rotating = true
		case input.ButtonMiddle, input.ButtonRight:
			c.panning = true
		}

	case input.EventMouseUp:
		switch ev.Button {
		case input.ButtonLeft:
			c.rotating = false
		case input.ButtonMiddle, input.ButtonRight:
			c.panning = false
		}

	case input.EventMouseMove:
		switch {
		case c.rotating:
			c.cam.HandleDrag(float32(ev.DX), float32(ev.DY))
		case c.panning:
			c.cam.HandlePan(float32(ev.DX), float32(ev.DY))
		}

	case input.EventMouseWheel:
		c.cam.HandleZoom(ev.Wheel)

	case input.EventKeyDown:
		switch ev.Key {
		case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_Q:
			return actionQuit
		case sdl.SCANCODE_W:
			c.opts.Wireframe = !c.opts.Wireframe
		case sdl.SCANCODE_L:
			c.opts.Unlit = !c.opts.Unlit
		case sdl.SCANCODE_F:
			return actionFullscreen
		case sdl.SCANCODE_R:
			return actionResetCamera
		case sdl.SCANCODE_P, sdl.SCANCODE_F12:
			return actionScreenshot
		}
	}
	return actionNone
}
