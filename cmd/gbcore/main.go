// Command gbcore runs or disassembles a Game Boy ROM against the gb core.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmgcore/gbcore/gb"
)

func main() {
	cfg, disasm, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	rom, err := gb.LoadROM(cfg.ROMPath)
	if err != nil {
		log.Fatal(err)
	}

	if disasm {
		if err := runDisasm(rom); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := run(cfg, rom); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string) (gb.RunConfig, bool, error) {
	fs := flag.NewFlagSet("gbcore", flag.ContinueOnError)
	bootPath := fs.String("boot", "", "path to a 256-byte DMG boot ROM (optional)")
	debugMode := fs.String("debug", "none", "debug instrumentation: none|log|full")
	serial := fs.Bool("serial", false, "echo serial output (SB) to stdout")
	doctor := fs.Bool("doctor", false, "emit one GB-Doctor-format trace line per instruction")
	disasm := fs.Bool("disasm", false, "disassemble the ROM statically instead of running it")
	if err := fs.Parse(args); err != nil {
		return gb.RunConfig{}, false, err
	}
	if fs.NArg() != 1 {
		return gb.RunConfig{}, false, fmt.Errorf("usage: gbcore [flags] rom-file")
	}

	var mode gb.DebugMode
	switch *debugMode {
	case "none":
		mode = gb.DebugNone
	case "log":
		mode = gb.DebugLog
	case "full":
		mode = gb.DebugFull
	default:
		return gb.RunConfig{}, false, fmt.Errorf("unknown -debug value %q", *debugMode)
	}

	cfg := gb.RunConfig{
		ROMPath:     fs.Arg(0),
		BootROMPath: *bootPath,
		DebugMode:   mode,
		SerialPrint: *serial,
		Doctor:      *doctor,
	}
	return cfg, *disasm, nil
}

func runDisasm(rom []byte) error {
	cart, err := gb.NewCartridge(rom)
	if err != nil {
		return err
	}
	mem := gb.NewMemory(cart, nil)
	codeMap := gb.NewCodeMap(mem)
	for addr := uint16(0x0100); addr < 0x4000; {
		block := codeMap.Block(mem, addr)
		for _, line := range block.Lines {
			fmt.Printf("%04X: % X  %s\n", line.Address, line.Bytes, line.Mnemonic)
		}
		if block.End <= addr {
			break // guard against a zero-length block on malformed input
		}
		addr = block.End
	}
	return nil
}

func run(cfg gb.RunConfig, rom []byte) error {
	cart, err := gb.NewCartridge(rom)
	if err != nil {
		return err
	}

	bootROM, status, err := gb.LoadBootROM(cfg.BootROMPath)
	logger := gb.NewStdLogger("gbcore ")
	switch status {
	case gb.BootWrongSize, gb.BootReadError:
		logger.Warnf("boot ROM not loaded: %v", err)
		bootROM = nil
	}

	emu := gb.NewEmulator(cart, bootROM, 2)
	emu.Logger = logger

	if cfg.SerialPrint {
		emu.Serial.Out = os.Stdout
	}
	if cfg.Doctor {
		emu.CPU.Debug = gb.NewDoctorLog(os.Stdout, emu.CPU)
	} else if cfg.DebugMode == gb.DebugFull {
		emu.CPU.Debug = gb.NewChannelSink(256)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	err = emu.Run(ctx)
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
