// debug.go - inspection accessors and state snapshotting for the TR3200
//
// No disassembler and no breakpoint trap loop (both out of scope), just the
// register/flag/mode accessors a host monitor needs, plus a byte-exact
// Snapshot/Restore pair.

package main

// Registers returns a copy of the register file r[0..15].
func (c *CPU) Registers() [16]uint32 {
	return c.r
}

// Register returns the value of register index n (0-15).
func (c *CPU) Register(n int) uint32 {
	return c.r[n&0xF]
}

// PC returns the current program counter.
func (c *CPU) PC() uint32 {
	return c.pc
}

// Flags returns the raw FLAGS register.
func (c *CPU) Flags() uint32 {
	return c.r[RegFlags]
}

// Sleeping reports whether the CPU is waiting for an interrupt to wake it.
func (c *CPU) Sleeping() bool {
	return c.sleeping
}

// Skipping reports whether the CPU is mid skip/chain-skip.
func (c *CPU) Skipping() bool {
	return c.skipping
}

// StepMode reports whether single-step debug mode is active.
func (c *CPU) StepMode() bool {
	return c.stepMode
}

// SetStepMode enables or disables single-step debug mode: while on, the
// CPU raises a software interrupt with message 0 after every instruction
// that doesn't already have interrupts masked by IF.
func (c *CPU) SetStepMode(on bool) {
	c.stepMode = on
}

// PendingInterrupt reports whether an interrupt is latched and waiting for
// EI to deliver it, along with its message byte.
func (c *CPU) PendingInterrupt() (pending bool, msg byte) {
	return c.interrupt, c.intMsg
}

// Snapshot is a byte-exact copy of everything Reset() initializes plus the
// Tick() pacing countdown, suitable for round-tripping CPU state.
type Snapshot struct {
	Registers  [16]uint32
	PC         uint32
	WaitCycles uint32
	IntMsg     byte
	Interrupt  bool
	StepMode   bool
	Skipping   bool
	Sleeping   bool
}

// Snapshot captures the CPU's full architectural state. The bus is not
// included; callers that need a full-system snapshot capture it separately.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		Registers:  c.r,
		PC:         c.pc,
		WaitCycles: c.waitCycles,
		IntMsg:     c.intMsg,
		Interrupt:  c.interrupt,
		StepMode:   c.stepMode,
		Skipping:   c.skipping,
		Sleeping:   c.sleeping,
	}
}

// Restore replaces the CPU's architectural state with a prior Snapshot.
func (c *CPU) Restore(s Snapshot) {
	c.r = s.Registers
	c.pc = s.PC
	c.waitCycles = s.WaitCycles
	c.intMsg = s.IntMsg
	c.interrupt = s.Interrupt
	c.stepMode = s.StepMode
	c.skipping = s.Skipping
	c.sleeping = s.Sleeping
}
