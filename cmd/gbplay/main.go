// Command gbplay runs a ROM against the gb core and drives an ebiten window.
// PPU pixel rendering is out of scope, so the window shows a flat
// placeholder frame rather than real graphics; its purpose is to exercise
// the Frame/joypad concurrency contract (bounded channel hand-off, atomic
// joypad byte) with a real UI loop, the way the core's Emulator expects a
// front end to drive it.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dmgcore/gbcore/gb"
)

// Joypad bit layout written into Emulator.Joypad by updateJoypad, one bit
// per button, set while held.
const (
	joypadRight = 1 << iota
	joypadLeft
	joypadUp
	joypadDown
	joypadA
	joypadB
	joypadSelect
	joypadStart
)

const (
	screenWidth  = 160
	screenHeight = 144
)

type game struct {
	emu     *gb.Emulator
	frame   *ebiten.Image
	cancel  context.CancelFunc
	lastSeq uint64
}

func (g *game) Update() error {
	g.updateJoypad()
	select {
	case f := <-g.emu.Frames:
		g.lastSeq = f.Sequence
	default:
	}
	return nil
}

func (g *game) updateJoypad() {
	var bits uint32
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		bits |= joypadRight
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		bits |= joypadLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		bits |= joypadUp
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		bits |= joypadDown
	}
	if ebiten.IsKeyPressed(ebiten.KeyX) {
		bits |= joypadA
	}
	if ebiten.IsKeyPressed(ebiten.KeyZ) {
		bits |= joypadB
	}
	if ebiten.IsKeyPressed(ebiten.KeyBackspace) {
		bits |= joypadSelect
	}
	if ebiten.IsKeyPressed(ebiten.KeyEnter) {
		bits |= joypadStart
	}
	g.emu.Joypad.Store(bits)
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImage(screenWidth, screenHeight)
	}
	g.frame.Fill(pixelForSequence(g.lastSeq))
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(int, int) (int, int) {
	return screenWidth, screenHeight
}

func pixelForSequence(seq uint64) color.RGBA {
	shade := uint8(seq % 64 * 4)
	return color.RGBA{R: shade, G: shade, B: shade, A: 0xFF}
}

func main() {
	fs := flag.NewFlagSet("gbplay", flag.ExitOnError)
	bootPath := fs.String("boot", "", "path to a 256-byte DMG boot ROM (optional)")
	fs.Parse(os.Args[1:])
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gbplay [-boot path] rom-file")
		os.Exit(2)
	}

	rom, err := gb.LoadROM(fs.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	cart, err := gb.NewCartridge(rom)
	if err != nil {
		log.Fatal(err)
	}
	bootROM, _, _ := gb.LoadBootROM(*bootPath)

	emu := gb.NewEmulator(cart, bootROM, 2)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := emu.Run(ctx); err != nil && ctx.Err() == nil {
			log.Println(err)
		}
	}()

	ebiten.SetWindowSize(screenWidth*4, screenHeight*4)
	ebiten.SetWindowTitle("gbplay")
	g := &game{emu: emu, cancel: cancel}
	defer g.cancel()
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
