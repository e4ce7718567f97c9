// Package pixel is the default host window: it owns a pixelgl.Window,
// translates physical key events into chip8.Keyboard state, and paints
// the interpreter's composed 128x64 framebuffer every frame. None of
// this lives in package chip8 — the core has no idea a window exists
// (spec §1, §6).
package pixel

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/rowan-voss/octochip/internal/chip8"
)

// logicalWidth and logicalHeight are the interpreter's fixed output
// dimensions; the window itself is these scaled up by the configured
// pixel scale.
const logicalWidth = chip8.OutputWidth
const logicalHeight = chip8.OutputHeight

// DefaultKeyMap is the classic CHIP-8 hex-keypad layout mapped onto a
// QWERTY keyboard, grounded on the teacher's own KeyMap.
var DefaultKeyMap = map[uint8]pixelgl.Button{
	0x1: pixelgl.Key1, 0x2: pixelgl.Key2, 0x3: pixelgl.Key3, 0xC: pixelgl.Key4,
	0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW, 0x6: pixelgl.KeyE, 0xD: pixelgl.KeyR,
	0x7: pixelgl.KeyA, 0x8: pixelgl.KeyS, 0x9: pixelgl.KeyD, 0xE: pixelgl.KeyF,
	0xA: pixelgl.KeyZ, 0x0: pixelgl.KeyX, 0xB: pixelgl.KeyC, 0xF: pixelgl.KeyV,
}

// Window embeds a pixelgl window and the hex-key -> physical-button
// mapping the host polls every frame.
type Window struct {
	*pixelgl.Window
	KeyMap map[uint8]pixelgl.Button
	scale  float64
	im     *imdraw.IMDraw
}

// NewWindow creates a pixelgl window sized to fit the 128x64 logical
// display at the given integer pixel scale.
func NewWindow(scale float64) (*Window, error) {
	if scale <= 0 {
		scale = 10
	}
	cfg := pixelgl.WindowConfig{
		Title:  "octochip",
		Bounds: pixel.R(0, 0, logicalWidth*scale, logicalHeight*scale),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating new window: %v", err)
	}
	return &Window{
		Window: w,
		KeyMap: DefaultKeyMap,
		scale:  scale,
		im:     imdraw.New(nil),
	}, nil
}

// PollInput reads the physical state of every mapped key and mirrors it
// into kb, the interpreter's own key-state vector. The core never
// touches pixelgl directly; this is the one place that boundary is
// crossed (spec §6).
func (w *Window) PollInput(kb *chip8.Keyboard) {
	for hexKey, button := range w.KeyMap {
		switch {
		case w.JustPressed(button):
			kb.SetDown(hexKey)
		case w.JustReleased(button):
			kb.SetUp(hexKey)
		}
	}
}

// DrawGraphics paints the interpreter's composed output grid, one
// scaled rectangle per logical pixel. Grounded on the teacher's own
// DrawGraphics, generalized from a single on/off color to the 4-entry
// indexed palette XO-CHIP's two planes produce.
func (w *Window) DrawGraphics(out *[logicalWidth * logicalHeight]chip8.Color) {
	w.Clear(colornames.Black)
	w.im.Clear()
	w.im.Reset()

	for row := 0; row < logicalHeight; row++ {
		for col := 0; col < logicalWidth; col++ {
			c := out[row*logicalWidth+col]
			if c.A == 0 {
				continue
			}
			x := float64(col) * w.scale
			// the composed grid is stored top-down; pixel.Picture-style
			// coordinates are bottom-up, so flip the row here.
			y := float64(logicalHeight-1-row) * w.scale
			w.im.Color = pixel.RGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
			w.im.Push(pixel.V(x, y), pixel.V(x+w.scale, y+w.scale))
			w.im.Rectangle(0)
		}
	}

	w.im.Draw(w)
	w.Update()
}
