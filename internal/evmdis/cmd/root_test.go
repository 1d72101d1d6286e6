package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evmdis/internal/disasm"
)

// execute runs the command tree with in-memory streams and a config path
// that does not exist.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("EVMDIS_NO_COLOR", "1")
	t.Setenv("EVMDIS_LOG_LEVEL", "")
	t.Setenv("EVMDIS_LOG_TO_FILE", "")

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.json")}, args...))

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootListing(t *testing.T) {
	out, _, err := execute(t, "", "0x6001600201")
	require.NoError(t, err)
	assert.Equal(t, "0x0000:\tPUSH1\t0x01\n0x0002:\tPUSH1\t0x02\n0x0004:\tADD\n", out)
}

func TestRootReadsStdin(t *testing.T) {
	out, _, err := execute(t, "6001\n60 02\n")
	require.NoError(t, err)
	assert.Equal(t, "0x0000:\tPUSH1\t0x01\n0x0002:\tPUSH1\t0x02\n", out)

	dash, _, err := execute(t, "6001", "-")
	require.NoError(t, err)
	assert.Equal(t, "0x0000:\tPUSH1\t0x01\n", dash)
}

func TestRootReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "code.hex")
	require.NoError(t, os.WriteFile(path, []byte("0x6001\n01\n"), 0o644))

	out, _, err := execute(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, "0x0000:\tPUSH1\t0x01\n0x0002:\tADD\n", out)
}

func TestRootEmptyInput(t *testing.T) {
	out, _, err := execute(t, "", "")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRootUnknownOpcode(t *testing.T) {
	out, stderr, err := execute(t, "", "600121")
	require.NoError(t, err)
	assert.Equal(t, "0x0000:\tPUSH1\t0x01\n", out)
	assert.Contains(t, stderr, "Unknown opcode")
	assert.Contains(t, stderr, "opcode=21")
}

func TestRootStrict(t *testing.T) {
	out, _, err := execute(t, "", "--strict", "600121")
	require.Error(t, err)
	assert.True(t, errors.Is(err, disasm.ErrUnknownOpcode))
	assert.Equal(t, "0x0000:\tPUSH1\t0x01\n", out)

	_, _, err = execute(t, "", "--strict", "6001")
	assert.NoError(t, err)
}

func TestRootJSON(t *testing.T) {
	out, _, err := execute(t, "", "--json", "600121")
	require.NoError(t, err)

	var got JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 3, got.Size)
	assert.NotEmpty(t, got.CodeHash)
	require.Len(t, got.Instructions, 1)
	assert.Equal(t, JSONInstruction{Offset: 0, Opcode: "0x60", Mnemonic: "PUSH1", Immediate: "0x01"}, got.Instructions[0])

	require.Len(t, got.Constants, 1)
	assert.Equal(t, "1", got.Constants[0].Decimal)

	require.NotNil(t, got.Error)
	assert.Equal(t, 2, got.Error.Offset)
	assert.Equal(t, "21", got.Error.Opcode)
	assert.Equal(t, "unknown opcode 21 at offset 0x0002", got.Error.Message)
}

func TestBuildJSONTruncated(t *testing.T) {
	stream, err := disasm.DecodeHex("6101")
	require.NoError(t, err)

	out := buildJSON(nil, stream, nil)
	require.Len(t, out.Instructions, 1)
	assert.True(t, out.Instructions[0].Truncated)
	assert.Nil(t, out.Error)
	assert.Equal(t, 3, out.Size)
}

func TestRootSummary(t *testing.T) {
	out, _, err := execute(t, "", "--summary", "5b600056")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# evmdis"))
	assert.Contains(t, out, "| JUMPDEST | 1 |")
}

func TestRootTUINeedsTerminal(t *testing.T) {
	_, _, err := execute(t, "", "--tui", "6001")
	assert.Error(t, err)
}

func TestRootConfigFile(t *testing.T) {
	t.Setenv("EVMDIS_NO_COLOR", "")
	t.Setenv("EVMDIS_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"logLevel":"error"}`), 0o644))

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"--config", path, "600121"})
	require.NoError(t, root.Execute())

	assert.Equal(t, "0x0000:\tPUSH1\t0x01\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRootBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "00"})
	assert.Error(t, root.Execute())
}

func TestRunQuiet(t *testing.T) {
	out, stderr, err := execute(t, "", "run", "-q", "600121")
	require.NoError(t, err)
	assert.Equal(t, "0x0000:\tPUSH1\t0x01\n", out)
	assert.Empty(t, stderr)

	_, stderr, err = execute(t, "", "run", "600121")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Unknown opcode")
}

func TestSchema(t *testing.T) {
	out, _, err := execute(t, "", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"noColor"`)
	assert.Contains(t, out, `"logLevel"`)
	assert.True(t, json.Valid([]byte(out)))
}

func TestTable(t *testing.T) {
	out, _, err := execute(t, "", "table")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 150)
	assert.Contains(t, lines[0], "MNEMONIC")
	assert.True(t, strings.HasPrefix(lines[1], "0x00   STOP"))

	out, _, err = execute(t, "", "table", "--internal")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 14)
	assert.True(t, strings.HasPrefix(lines[1], "0xac   PUSHC"))
	assert.NotContains(t, out, "STOP")
}
