package main

import "testing"

func TestTerminalStatusBits(t *testing.T) {
	tm := NewTerminalMMIO()

	if got := tm.HandleRead(TermStatus); got&1 != 0 {
		t.Fatalf("status input-available bit set on empty device")
	}
	if got := tm.HandleRead(TermStatus); got&2 == 0 {
		t.Fatalf("status output-ready bit clear, want always set")
	}

	tm.EnqueueByte('x')
	if got := tm.HandleRead(TermStatus); got&1 == 0 {
		t.Fatalf("status input-available bit clear after EnqueueByte")
	}
}

func TestTerminalInputRoundTrip(t *testing.T) {
	tm := NewTerminalMMIO()
	tm.EnqueueByte('h')
	tm.EnqueueByte('i')

	if got := tm.HandleRead(TermIn); got != 'h' {
		t.Fatalf("first byte = %q, want 'h'", got)
	}
	if got := tm.HandleRead(TermIn); got != 'i' {
		t.Fatalf("second byte = %q, want 'i'", got)
	}
	if got := tm.HandleRead(TermIn); got != 0 {
		t.Fatalf("read past empty buffer = %#x, want 0", got)
	}
}

func TestTerminalInputBufferFull(t *testing.T) {
	tm := NewTerminalMMIO()
	for i := 0; i < 256; i++ {
		tm.EnqueueByte(byte(i))
	}
	tm.EnqueueByte(0xFF) // dropped, buffer already full

	for i := 0; i < 256; i++ {
		if got := tm.HandleRead(TermIn); got != byte(i) {
			t.Fatalf("byte %d = %#x, want %#x", i, got, byte(i))
		}
	}
	if got := tm.HandleRead(TermIn); got != 0 {
		t.Fatalf("dropped byte should not have been enqueued, got %#x", got)
	}
}

func TestTerminalOutputWriteAndDrain(t *testing.T) {
	tm := NewTerminalMMIO()
	for _, b := range []byte("hi") {
		tm.HandleWrite(TermOut, b)
	}

	if got := tm.DrainOutput(); got != "hi" {
		t.Fatalf("DrainOutput = %q, want %q", got, "hi")
	}
	if got := tm.DrainOutput(); got != "" {
		t.Fatalf("second DrainOutput = %q, want empty (already drained)", got)
	}
}

func TestTerminalCtrlArmsRaiseOnInput(t *testing.T) {
	tm := NewTerminalMMIO()
	if got := tm.HandleRead(TermCtrl); got != 0 {
		t.Fatalf("TermCtrl = %d, want 0 before arming", got)
	}

	tm.HandleWrite(TermCtrl, 1)
	if got := tm.HandleRead(TermCtrl); got != 1 {
		t.Fatalf("TermCtrl = %d, want 1 after arming", got)
	}

	tm.HandleWrite(TermCtrl, 0)
	if got := tm.HandleRead(TermCtrl); got != 0 {
		t.Fatalf("TermCtrl = %d, want 0 after disarming", got)
	}
}

func TestTerminalOnInputFiresOnlyWhenArmed(t *testing.T) {
	tm := NewTerminalMMIO()
	fired := 0
	tm.OnInput(func() { fired++ })

	tm.EnqueueByte('a')
	if fired != 0 {
		t.Fatalf("onInput fired with raiseOnInput disarmed")
	}

	tm.HandleWrite(TermCtrl, 1)
	tm.EnqueueByte('b')
	if fired != 1 {
		t.Fatalf("onInput fired %d times, want 1", fired)
	}
}

func TestTerminalUnmappedAddressReadsZero(t *testing.T) {
	tm := NewTerminalMMIO()
	if got := tm.HandleRead(TermRegionBase + 0x100); got != 0 {
		t.Fatalf("unmapped address = %#x, want 0", got)
	}
}
