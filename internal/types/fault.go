package types

import "fmt"

// FaultKind identifies the class of a fatal simulation fault.
type FaultKind uint8

const (
	// FaultIllegalOpcode is raised when the CPU decodes an opcode that
	// has no definition.
	FaultIllegalOpcode FaultKind = iota
	// FaultProhibitedAccess is raised on any read or write to the echo
	// region (0xE000 - 0xFDFF) or the unusable region (0xFEA0 - 0xFEFF).
	FaultProhibitedAccess
	// FaultStackOverflow is raised when a push moves the stack pointer
	// below the stack window.
	FaultStackOverflow
	// FaultStackUnderflow is raised when a pop moves the stack pointer
	// above the stack window.
	FaultStackUnderflow
)

var faultNames = map[FaultKind]string{
	FaultIllegalOpcode:    "illegal opcode",
	FaultProhibitedAccess: "prohibited memory access",
	FaultStackOverflow:    "stack overflow",
	FaultStackUnderflow:   "stack underflow",
}

func (k FaultKind) String() string {
	return faultNames[k]
}

// Fault is the value carried by a panic raised from inside the core.
// A Fault means either the running program or the core itself is
// broken, and the simulation cannot continue.
type Fault struct {
	Kind    FaultKind
	Address uint16 // offending address, or the PC for opcode faults
	Opcode  uint16 // offending opcode, only set for FaultIllegalOpcode
}

func (f *Fault) Error() string {
	switch f.Kind {
	case FaultIllegalOpcode:
		return fmt.Sprintf("%s %X at %04X", f.Kind, f.Opcode, f.Address)
	case FaultStackOverflow, FaultStackUnderflow:
		return fmt.Sprintf("%s: SP=%04X", f.Kind, f.Address)
	default:
		return fmt.Sprintf("%s at %04X", f.Kind, f.Address)
	}
}

// Raise panics with a Fault of the given kind.
func Raise(kind FaultKind, address uint16, opcode uint16) {
	panic(&Fault{Kind: kind, Address: address, Opcode: opcode})
}
