package disasm

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"evmdis/internal/opcodes"
)

// ErrUnknownOpcode is matched by every *UnknownOpcodeError.
var ErrUnknownOpcode = errors.New("unknown opcode")

// UnknownOpcodeError reports the position where decoding stopped. Everything
// before Offset was decoded and is returned alongside the error.
type UnknownOpcodeError struct {
	Offset    int
	Value     byte
	Raw       string // source digits of the offending pair
	Malformed bool   // the pair was not hexadecimal at all
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %s at offset 0x%04x", e.Hex(), e.Offset)
}

// Hex returns the offending value in lowercase hex without zero padding, or
// the raw source digits when they could not be parsed.
func (e *UnknownOpcodeError) Hex() string {
	if e.Malformed {
		return fmt.Sprintf("%q", e.Raw)
	}
	return fmt.Sprintf("%x", e.Value)
}

func (e *UnknownOpcodeError) Is(target error) bool {
	return target == ErrUnknownOpcode
}

// Decoder turns bytecode into a Stream using an opcode table.
type Decoder struct {
	table  *opcodes.Table
	logger *log.Logger
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the sink for decode diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(d *Decoder) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithTable replaces the default opcode table.
func WithTable(t *opcodes.Table) Option {
	return func(d *Decoder) {
		if t != nil {
			d.table = t
		}
	}
}

// NewDecoder creates a decoder. Without options it uses opcodes.Default and
// discards diagnostics.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		table:  opcodes.Default,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var defaultDecoder = NewDecoder()

// Decode decodes raw bytecode with the default decoder.
func Decode(code []byte) (Stream, error) {
	return defaultDecoder.Decode(code)
}

// DecodeHex decodes hex text with the default decoder.
func DecodeHex(s string) (Stream, error) {
	return defaultDecoder.DecodeHex(s)
}

// Decode decodes raw bytecode. On an unknown opcode it returns the
// instructions decoded so far and an *UnknownOpcodeError.
func (d *Decoder) Decode(code []byte) (Stream, error) {
	return d.decode(byteSource(code))
}

// DecodeHex decodes bytecode given as hex text with an optional 0x prefix.
// Pairs are parsed leniently: a pair whose second digit is not hex still
// yields the value of its first digit, and a pair with no hex digit at all
// stops decoding like an unknown opcode.
func (d *Decoder) DecodeHex(s string) (Stream, error) {
	return d.decode(hexSource(trimPrefix(s)))
}

func (d *Decoder) decode(src source) (Stream, error) {
	var (
		stream Stream
		n      = src.len()
	)
	for pc := 0; pc < n; {
		b, raw, ok := src.opAt(pc)
		var (
			op      opcodes.Op
			defined bool
		)
		if ok {
			op, defined = d.table.Lookup(b)
		}
		if !defined {
			err := &UnknownOpcodeError{Offset: pc, Value: b, Raw: raw, Malformed: !ok}
			d.logger.Warn("Unknown opcode", "opcode", err.Hex(), "offset", fmt.Sprintf("0x%04x", pc))
			return stream, err
		}

		inst := Inst{
			Offset:    pc,
			Op:        b,
			Mnemonic:  op.Name,
			Immediate: op.Immediate,
			Internal:  op.Internal,
		}
		if op.Immediate > 0 {
			inst.Arg, inst.ArgHex = src.arg(pc+1, op.Immediate)
		}
		d.logger.Debug("Decoded", "inst", inst.String())
		stream = append(stream, inst)

		// Advance by the declared size even when the immediate was cut short;
		// the bounds check then ends the scan.
		pc += inst.Size()
	}
	return stream, nil
}

// ParseHex strictly decodes hex text with an optional 0x prefix.
func ParseHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(trimPrefix(s))
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode: %w", err)
	}
	return b, nil
}

func trimPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}

// source abstracts over raw bytes and hex text so both share one decode loop.
type source interface {
	len() int
	// opAt returns the byte at i, the digits it came from, and whether it
	// could be parsed.
	opAt(i int) (byte, string, bool)
	// arg returns up to n bytes starting at i, clamped to the input.
	arg(i, n int) ([]byte, string)
}

type byteSource []byte

func (s byteSource) len() int { return len(s) }

func (s byteSource) opAt(i int) (byte, string, bool) {
	return s[i], hex.EncodeToString(s[i : i+1]), true
}

func (s byteSource) arg(i, n int) ([]byte, string) {
	if i >= len(s) {
		return []byte{}, ""
	}
	end := min(i+n, len(s))
	b := s[i:end:end]
	return b, hex.EncodeToString(b)
}

type hexSource string

func (s hexSource) len() int { return (len(s) + 1) / 2 }

func (s hexSource) opAt(i int) (byte, string, bool) {
	raw := string(s[2*i : min(2*i+2, len(s))])
	hi, ok := hexDigit(raw[0])
	if !ok {
		return 0, raw, false
	}
	if len(raw) == 1 {
		return hi, raw, true
	}
	lo, ok := hexDigit(raw[1])
	if !ok {
		return hi, raw, true
	}
	return hi<<4 | lo, raw, true
}

func (s hexSource) arg(i, n int) ([]byte, string) {
	start := min(2*i, len(s))
	end := min(2*(i+n), len(s))
	digits := string(s[start:end])
	b, err := hex.DecodeString(digits[:len(digits)&^1])
	if err != nil {
		return nil, digits
	}
	return b, digits
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
