package opcodes

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableSize(t *testing.T) {
	assert.Equal(t, 149, Default.Len())
	assert.Len(t, All(), 149)
}

func TestLookupUndefined(t *testing.T) {
	for _, b := range []byte{0x0c, 0x0f, 0x1b, 0x21, 0x46, 0x5f, 0xa5, 0xab, 0xaf, 0xba, 0xf4, 0xf9} {
		_, ok := Lookup(b)
		assert.False(t, ok, "0x%02x should be undefined", b)
	}
}

func TestLookupIsTotal(t *testing.T) {
	for b := 0; b < 256; b++ {
		op, ok := Lookup(byte(b))
		if !ok {
			assert.Equal(t, Op{}, op)
			continue
		}
		assert.Equal(t, byte(b), op.Code)
		assert.NotEmpty(t, op.Name)
		assert.LessOrEqual(t, op.Immediate, 32)
	}
}

func TestPushImmediates(t *testing.T) {
	for n := 1; n <= 32; n++ {
		op, ok := Lookup(byte(0x60 + n - 1))
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("PUSH%d", n), op.Name)
		assert.Equal(t, n, op.Immediate)
		assert.True(t, op.IsPush())
		assert.Equal(t, 1, op.StackOut)
	}
}

func TestOnlyPushAndInternalCarryImmediates(t *testing.T) {
	for _, op := range All() {
		if op.Immediate == 0 {
			continue
		}
		assert.True(t, op.IsPush() || op.Internal, op.Name)
	}
}

func TestInternalRange(t *testing.T) {
	for _, op := range All() {
		inRange := op.Code >= 0xac && op.Code <= 0xb9
		assert.Equal(t, inRange, op.Internal, op.Name)
	}

	op, ok := Lookup(0xac)
	require.True(t, ok)
	assert.Equal(t, "PUSHC", op.Name)
	assert.Equal(t, 3, op.Immediate)
	assert.False(t, op.IsPush())
}

func TestKnownEntries(t *testing.T) {
	tests := []struct {
		code byte
		name string
		in   int
		out  int
	}{
		{0x00, "STOP", 0, 0},
		{0x02, "SUB", 2, 1},
		{0x03, "MUL", 2, 1},
		{0x20, "SHA3", 2, 1},
		{0x5b, "JUMPDEST", 0, 0},
		{0x8f, "DUP16", 16, 17},
		{0x9f, "SWAP16", 17, 17},
		{0xa4, "LOG4", 6, 0},
		{0xf1, "CALL", 7, 1},
		{0xfc, "DELEGATECALL", 6, 1},
		{0xff, "SUICIDE", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := Lookup(tt.code)
			require.True(t, ok)
			assert.Equal(t, tt.name, op.Name)
			assert.Equal(t, tt.in, op.StackIn)
			assert.Equal(t, tt.out, op.StackOut)
			assert.Equal(t, 0, op.Immediate)
		})
	}
}

func TestByName(t *testing.T) {
	op, ok := ByName("push20")
	require.True(t, ok)
	assert.Equal(t, byte(0x73), op.Code)

	_, ok = ByName("PUSH0")
	assert.False(t, ok)
}

func TestAllSorted(t *testing.T) {
	ops := All()
	for i := 1; i < len(ops); i++ {
		assert.Less(t, ops[i-1].Code, ops[i].Code)
	}
}

func TestDuplicateEntryPanics(t *testing.T) {
	assert.Panics(t, func() {
		newTable([]Op{{Name: "A", Code: 1}, {Name: "B", Code: 1}})
	})
}
