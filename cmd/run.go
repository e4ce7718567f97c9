package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/cobra"

	"github.com/rowan-voss/octochip/internal/audio"
	"github.com/rowan-voss/octochip/internal/chip8"
	"github.com/rowan-voss/octochip/internal/pixel"
)

// displayRefreshHz is how often the host polls input, ticks the
// scheduler, and repaints — independent of the interpreter's own
// --period step rate.
const displayRefreshHz = 60

// runCmd runs the octochip virtual machine and waits for the window to
// close or an interrupt signal to exit.
var runCmd = &cobra.Command{
	Use:   "run path/to/rom",
	Short: "run the octochip emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runChippy,
}

func init() {
	runCmd.Flags().Float64("period", 2.0, "interpreter step period in milliseconds (minimum 0.1)")
	runCmd.Flags().Float64("scale", 10, "integer pixel scale for the display window")
	runCmd.Flags().String("palette", "", "comma-separated RRGGBB palette override, up to 4 entries")
	runCmd.Flags().String("audio", "assets/beep.mp3", "path to the mp3 sample played while the sound timer is active; empty disables audio")
}

func runChippy(cmd *cobra.Command, args []string) {
	romPath := args[0]
	periodMs, _ := cmd.Flags().GetFloat64("period")
	scale, _ := cmd.Flags().GetFloat64("scale")
	paletteSpec, _ := cmd.Flags().GetString("palette")
	audioPath, _ := cmd.Flags().GetString("audio")

	vm := chip8.NewVM()
	if err := vm.LoadFile(romPath); err != nil {
		fmt.Printf("error loading rom: %v\n", err)
		os.Exit(1)
	}
	if paletteSpec != "" {
		if err := applyPalette(vm, paletteSpec); err != nil {
			fmt.Printf("error parsing --palette: %v\n", err)
			os.Exit(1)
		}
	}

	win, err := pixel.NewWindow(scale)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	scheduler := chip8.NewScheduler(vm, periodMs)

	var player *audio.Player
	if audioPath != "" {
		player, err = audio.NewPlayer(audioPath)
		if err != nil {
			fmt.Printf("audio disabled: %v\n", err)
			player = nil
		}
	}

	// soundSignal mirrors the teacher's own audioChan: the scheduler
	// goroutine only ever sends on it, the audio goroutine only ever
	// receives, so the decoded stream is never touched by two
	// goroutines at once.
	soundSignal := make(chan struct{}, 1)
	if player != nil {
		go func() {
			for range soundSignal {
				player.Sync(true)
			}
		}()
	}

	shutdownC := make(chan struct{})
	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, os.Interrupt)
	go func() {
		<-sigC
		close(shutdownC)
	}()

	ticker := time.NewTicker(time.Second / displayRefreshHz)
	defer ticker.Stop()

	last := time.Now()
	wasSoundActive := false

	for {
		select {
		case now := <-ticker.C:
			if win.Closed() {
				fmt.Println("window closed, shutting down...")
				return
			}
			elapsed := now.Sub(last)
			last = now

			win.PollInput(vm.Keyboard())
			if win.JustPressed(pixelgl.KeySpace) {
				if scheduler.Paused() {
					scheduler.Resume()
				} else {
					scheduler.Pause()
				}
			}
			if win.JustPressed(pixelgl.KeyPeriod) {
				scheduler.StepOnce()
			}

			scheduler.Tick(elapsed)

			soundActive := vm.SoundActive()
			if soundActive && !wasSoundActive {
				select {
				case soundSignal <- struct{}{}:
				default:
				}
			}
			wasSoundActive = soundActive

			win.DrawGraphics(vm.Framebuffer().Output())
		case <-shutdownC:
			fmt.Println("received interrupt, shutting down...")
			return
		}
	}
}

// applyPalette parses a comma-separated list of up to 4 RRGGBB hex
// colors and installs them into vm's framebuffer palette.
func applyPalette(vm *chip8.VM, spec string) error {
	entries := strings.Split(spec, ",")
	if len(entries) > 4 {
		return fmt.Errorf("palette accepts at most 4 entries, got %d", len(entries))
	}
	for i, hex := range entries {
		hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
		if len(hex) != 6 {
			return fmt.Errorf("entry %d (%q) must be 6 hex digits", i, hex)
		}
		r, err := strconv.ParseUint(hex[0:2], 16, 8)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		g, err := strconv.ParseUint(hex[2:4], 16, 8)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		b, err := strconv.ParseUint(hex[4:6], 16, 8)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		vm.Framebuffer().SetPalette(i, chip8.Color{R: byte(r), G: byte(g), B: byte(b), A: 255})
	}
	return nil
}
