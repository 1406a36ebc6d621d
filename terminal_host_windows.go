//go:build windows

// terminal_host_windows.go - Windows stdin primitive for TerminalHost
//
// Windows has no syscall.SetNonblock for console file descriptors, so this
// reads blocking; Stop() unblocks it by closing stdin's underlying handle
// via the read itself returning an error, not by a poll.

package main

import "os"

func platformPrepareStdin(fd int) error { return nil }

func platformRestoreStdin(fd int) {}

func readStdinByte(fd int) (b byte, ok bool, err error) {
	buf := make([]byte, 1)
	n, readErr := os.Stdin.Read(buf)
	if n > 0 {
		return buf[0], true, nil
	}
	if readErr != nil {
		return 0, false, readErr
	}
	return 0, false, nil
}
