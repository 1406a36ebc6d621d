// main.go - command-line driver for the TR3200 virtual computer

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	var (
		clockHz     uint
		ramAddr     string
		interactive bool
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.UintVar(&clockHz, "clock", 1_000_000, "CPU clock rate in Hz")
	flagSet.StringVar(&ramAddr, "load-addr", "0x00100000", "address to load the ROM image at (hex or decimal)")
	flagSet.BoolVar(&interactive, "interactive", false, "attach stdin/stdout to the terminal MMIO device")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: tr3200 [-clock hz] [-load-addr 0x00100000] [-interactive] rom.bin")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	filename := flagSet.Arg(0)
	if filename == "" {
		flagSet.Usage()
		os.Exit(1)
	}

	loadAddr, err := parseUint32Flag(ramAddr)
	if err != nil {
		fmt.Printf("Invalid -load-addr: %v\n", err)
		os.Exit(1)
	}

	rom, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Error loading ROM: %v\n", err)
		os.Exit(1)
	}

	sysBus := NewSystemBus()
	sysBus.LoadROM(loadAddr, rom)

	term := NewTerminalMMIO()
	sysBus.MapIO(TermRegionBase, TermRegionEnd, term.HandleRead, term.HandleWrite)

	cpu := NewCPU(sysBus, uint32(clockHz))
	cpu.pc = loadAddr
	term.OnInput(func() { cpu.SendInterrupt(TermInterruptMsg) })

	var host *TerminalHost
	if interactive {
		host = NewTerminalHost(term)
		host.Start()
		defer host.Stop()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	cyclesPerTick := uint32(clockHz) / 60
	if cyclesPerTick == 0 {
		cyclesPerTick = 1
	}

	fmt.Printf("tr3200: running %s at %d Hz from 0x%08X\n", filename, clockHz, loadAddr)

	for {
		select {
		case <-sigCh:
			return
		case <-ticker.C:
			cpu.Tick(cyclesPerTick)
			if host != nil {
				host.PrintOutput()
			} else {
				fmt.Print(term.DrainOutput())
			}
		}
	}
}

func parseUint32Flag(value string) (uint32, error) {
	var v uint64
	_, err := fmt.Sscanf(value, "0x%x", &v)
	if err != nil {
		_, err = fmt.Sscanf(value, "%d", &v)
		if err != nil {
			return 0, err
		}
	}
	if v > 0xFFFFFFFF {
		return 0, fmt.Errorf("value out of range: %#x", v)
	}
	return uint32(v), nil
}
