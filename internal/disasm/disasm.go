// Package disasm decodes EVM bytecode into a positional instruction listing.
package disasm

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// Inst is a single decoded instruction.
type Inst struct {
	Offset    int    // byte offset of the opcode byte
	Op        byte   // raw opcode value
	Mnemonic  string // mnemonic from the opcode table
	Immediate int    // declared immediate length
	Arg       []byte // immediate bytes actually available, may be shorter than Immediate
	ArgHex    string // immediate digits exactly as they appeared in the source
	Internal  bool   // opcode belongs to the interpreter-internal range
}

// HasArg reports whether the opcode declares an immediate operand. A declared
// operand may still be empty when the stream ends right after the opcode.
func (i Inst) HasArg() bool {
	return i.Immediate > 0
}

// Size is the number of bytes the instruction occupies according to the
// table, which is also the distance to the next instruction.
func (i Inst) Size() int {
	return 1 + i.Immediate
}

// Truncated reports whether fewer immediate bytes were available than declared.
func (i Inst) Truncated() bool {
	return len(i.ArgHex) < 2*i.Immediate
}

// Value interprets the immediate as a big-endian 256-bit integer. It returns
// nil for instructions without an immediate.
func (i Inst) Value() *uint256.Int {
	if !i.HasArg() || len(i.Arg) == 0 {
		return nil
	}
	return new(uint256.Int).SetBytes(i.Arg)
}

// String renders the instruction the way a listing line does, without the
// trailing newline.
func (i Inst) String() string {
	if i.HasArg() {
		return fmt.Sprintf("0x%04x:\t%s\t0x%s", i.Offset, i.Mnemonic, i.ArgHex)
	}
	return fmt.Sprintf("0x%04x:\t%s", i.Offset, i.Mnemonic)
}

// Stream is a linear sequence of instructions in offset order.
type Stream []Inst

// Format renders the stream as a listing, one newline-terminated line per
// instruction.
func (s Stream) Format() string {
	var sb strings.Builder
	for _, inst := range s {
		sb.WriteString(inst.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (s Stream) String() string {
	return s.Format()
}

// End returns the cursor position after the last instruction, which can lie
// past the end of the input when the last immediate was truncated.
func (s Stream) End() int {
	if len(s) == 0 {
		return 0
	}
	last := s[len(s)-1]
	return last.Offset + last.Size()
}

// Format renders s as a text listing.
func Format(s Stream) string {
	return s.Format()
}
