package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evmdis/internal/disasm"
)

func TestWatchFileNoFollow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "captures.txt")
	require.NoError(t, os.WriteFile(path, []byte("6001\n# comment\n\n60 01 21\n"), 0o644))

	var out bytes.Buffer
	err := watchFile(context.Background(), path, false, disasm.NewDecoder(), &out, func(s string) string { return s })
	require.NoError(t, err)

	want := "; line 1, 1 instructions\n" +
		"0x0000:\tPUSH1\t0x01\n" +
		"; line 4, 1 instructions\n" +
		"0x0000:\tPUSH1\t0x01\n" +
		"; unknown opcode 21 at offset 0x0002\n"
	assert.Equal(t, want, out.String())
}

func TestWatchFileMissing(t *testing.T) {
	err := watchFile(context.Background(), filepath.Join(t.TempDir(), "nope"), false, disasm.NewDecoder(), &bytes.Buffer{}, strings.ToUpper)
	assert.Error(t, err)
}

func TestWatchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "captures.txt")
	require.NoError(t, os.WriteFile(path, []byte("5b00\n"), 0o644))

	out, _, err := execute(t, "", "watch", "--no-follow", path)
	require.NoError(t, err)
	assert.Equal(t, "; line 1, 2 instructions\n0x0000:\tJUMPDEST\n0x0001:\tSTOP\n", out)
}
