// Package opcodes holds the static EVM opcode table used by the decoder.
// The table is built once at init and is read-only afterwards, so it is safe
// to share between goroutines.
package opcodes

import (
	"sort"
	"strings"
)

// Op describes a single opcode value.
type Op struct {
	Name      string // mnemonic
	Code      byte
	Immediate int // number of operand bytes following the opcode byte
	StackIn   int
	StackOut  int

	// Internal marks opcodes that only the interpreter emits. User bytecode
	// should not contain them, but they still decode like any other entry.
	Internal bool
}

// IsPush reports whether op is one of PUSH1..PUSH32.
func (op Op) IsPush() bool {
	return op.Code >= 0x60 && op.Code <= 0x7f
}

func (op Op) String() string {
	return op.Name
}

// Table maps every byte value to its descriptor, nil for undefined values.
type Table [256]*Op

// Lookup returns the descriptor for b. The boolean is false when b has no
// entry in the table.
func (t *Table) Lookup(b byte) (Op, bool) {
	if op := t[b]; op != nil {
		return *op, true
	}
	return Op{}, false
}

// Len returns the number of defined opcodes.
func (t *Table) Len() int {
	n := 0
	for _, op := range t {
		if op != nil {
			n++
		}
	}
	return n
}

// Default is the process-wide table.
var Default = newTable(oplist)

// Lookup resolves b against the default table.
func Lookup(b byte) (Op, bool) {
	return Default.Lookup(b)
}

// ByName resolves a mnemonic (case-insensitive) against the default table.
func ByName(name string) (Op, bool) {
	op, ok := byName[strings.ToUpper(name)]
	if !ok {
		return Op{}, false
	}
	return *op, true
}

// All returns every defined opcode ordered by code.
func All() []Op {
	ops := make([]Op, 0, len(oplist))
	for _, op := range Default {
		if op != nil {
			ops = append(ops, *op)
		}
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Code < ops[j].Code })
	return ops
}

var byName = make(map[string]*Op, len(oplist))

func init() {
	for _, op := range Default {
		if op != nil {
			byName[op.Name] = op
		}
	}
}

func newTable(list []Op) *Table {
	t := new(Table)
	for i := range list {
		op := list[i]
		if t[op.Code] != nil {
			panic("opcodes: duplicate entry for " + op.Name)
		}
		t[op.Code] = &op
	}
	return t
}
