package main

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/rowan-voss/octochip/cmd"
)

func main() {
	// pixelgl needs the OS main thread for its GL context, so the whole
	// cobra command tree runs inside pixelgl.Run rather than pixelgl.Run
	// being called from within the run command itself.
	pixelgl.Run(cmd.Execute)
}
