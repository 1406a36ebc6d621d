// terminal_host.go - raw-stdin adapter feeding a TerminalMMIO device
//
// Puts stdin into raw mode via golang.org/x/term so the host OS doesn't
// line-buffer or echo, translates CR to LF and DEL to BS, and pushes bytes
// into the device one at a time through EnqueueByte, which is what drives
// the interrupt/wake path: every enqueued byte can raise TermInterruptMsg
// against a sleeping CPU (terminal.go's onInput, wired by main.go to
// SendInterrupt). The byte-level read primitive differs by platform
// (non-blocking poll vs blocking read) and lives in the platform-specific
// sibling files; everything else — translation, the stop/done handshake,
// and the device wiring — is shared here rather than duplicated per
// platform.
package main

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// TerminalHost reads raw stdin and feeds bytes into a TerminalMMIO device.
// Only instantiated by main.go's interactive mode, never in tests.
type TerminalHost struct {
	mmio         *TerminalMMIO
	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once
	fd           int
	prepared     bool
	oldTermState *term.State
}

// NewTerminalHost creates a host adapter feeding mmio from stdin.
func NewTerminalHost(mmio *TerminalMMIO) *TerminalHost {
	return &TerminalHost{
		mmio:   mmio,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start puts stdin into raw mode and begins reading in a goroutine. Call
// Stop() to restore stdin.
func (h *TerminalHost) Start() {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal_host: failed to set raw mode: %v\n", err)
		close(h.done)
		return
	}
	h.oldTermState = oldState

	if err := platformPrepareStdin(h.fd); err != nil {
		fmt.Fprintf(os.Stderr, "terminal_host: failed to prepare stdin: %v\n", err)
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
		close(h.done)
		return
	}
	h.prepared = true

	go h.readLoop()
}

// readLoop feeds host keystrokes to the device until stopped. CR and DEL
// are translated because TR3200 ROMs expect LF-terminated lines and BS
// for backspace, not a raw terminal's native codes.
func (h *TerminalHost) readLoop() {
	defer close(h.done)

	for {
		select {
		case <-h.stopCh:
			return
		default:
		}

		b, ok, err := readStdinByte(h.fd)
		if ok {
			switch b {
			case '\r':
				b = '\n'
			case 0x7F:
				b = 0x08
			}
			h.mmio.EnqueueByte(b)
		}
		if err != nil {
			return
		}
	}
}

// Stop terminates the stdin reading goroutine and restores stdin.
func (h *TerminalHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	<-h.done
	if h.prepared {
		platformRestoreStdin(h.fd)
		h.prepared = false
	}
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}

// PrintOutput drains the MMIO output buffer and prints it to stdout. Call
// periodically from the main loop during interactive mode.
func (h *TerminalHost) PrintOutput() {
	out := h.mmio.DrainOutput()
	if len(out) > 0 {
		fmt.Print(out)
	}
}
