//go:build !(amd64 || arm64 || 386 || arm || riscv64 || loong64 || mipsle || mips64le || ppc64le || wasm)

package main

// bus.go composes multi-byte reads/writes with plain shifts, which assume
// little-endian byte order when the host ever bridges to unsafe memory views.
var _ = "tr3200 requires a little-endian architecture" + 1
