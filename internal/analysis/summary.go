package analysis

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"evmdis/internal/disasm"
)

// Count is one histogram row.
type Count struct {
	Mnemonic string `json:"mnemonic"`
	N        int    `json:"count"`
}

// Summary describes a decoded stream.
type Summary struct {
	Size         int                        `json:"size"`
	CodeHash     string                     `json:"codeHash,omitempty"`
	Instructions int                        `json:"instructions"`
	End          int                        `json:"end"`
	Pushes       int                        `json:"pushes"`
	Internal     int                        `json:"internal"`
	JumpDests    []int                      `json:"jumpDests"`
	Histogram    []Count                    `json:"histogram"`
	Truncated    bool                       `json:"truncated"`
	Stop         *disasm.UnknownOpcodeError `json:"-"`
}

// Summarize collects statistics for stream. code is the raw bytecode when it
// could be parsed strictly and nil otherwise, in which case size falls back to
// the decoded range and no hash is computed. err is the error returned by the
// decoder, if any.
func Summarize(code []byte, stream disasm.Stream, err error) Summary {
	s := Summary{
		Size:         len(code),
		Instructions: len(stream),
		End:          stream.End(),
	}
	if code != nil {
		s.CodeHash = crypto.Keccak256Hash(code).Hex()
	} else {
		s.Size = s.End
	}

	var unknown *disasm.UnknownOpcodeError
	if errors.As(err, &unknown) {
		s.Stop = unknown
	}

	counts := make(map[string]int)
	for _, inst := range stream {
		counts[inst.Mnemonic]++
		if inst.Mnemonic == "JUMPDEST" {
			s.JumpDests = append(s.JumpDests, inst.Offset)
		}
		if inst.Internal {
			s.Internal++
		}
		if strings.HasPrefix(inst.Mnemonic, "PUSH") && inst.HasArg() {
			s.Pushes++
		}
	}
	if len(stream) > 0 {
		s.Truncated = stream[len(stream)-1].Truncated()
	}

	for m, n := range counts {
		s.Histogram = append(s.Histogram, Count{Mnemonic: m, N: n})
	}
	sort.Slice(s.Histogram, func(i, j int) bool {
		if s.Histogram[i].N != s.Histogram[j].N {
			return s.Histogram[i].N > s.Histogram[j].N
		}
		return s.Histogram[i].Mnemonic < s.Histogram[j].Mnemonic
	})
	return s
}

// Markdown renders the summary as a markdown document for glamour.
func (s Summary) Markdown() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("; size       %d bytes", s.Size))
	if s.CodeHash != "" {
		lines = append(lines, fmt.Sprintf("; keccak256  %s", s.CodeHash))
	}
	lines = append(lines, fmt.Sprintf("; decoded    %d instructions, 0x0000-0x%04x", s.Instructions, s.End))
	lines = append(lines, fmt.Sprintf("; push       %d", s.Pushes))
	if s.Internal > 0 {
		lines = append(lines, fmt.Sprintf("; internal   %d interpreter-only opcodes", s.Internal))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# evmdis\n\n```\n%s\n```\n", strings.Join(lines, "\n"))

	if s.Stop != nil {
		fmt.Fprintf(&b, "\n## Stopped\n\nUnknown opcode `%s` at offset `0x%04x`; nothing after it was decoded.\n",
			s.Stop.Hex(), s.Stop.Offset)
	}
	if s.Truncated {
		b.WriteString("\nThe last immediate is shorter than its opcode declares.\n")
	}

	if len(s.JumpDests) > 0 {
		b.WriteString("\n## Jump destinations\n\n")
		dests := s.JumpDests
		if len(dests) > MaxJumpDests {
			dests = dests[:MaxJumpDests]
		}
		for i, off := range dests {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "`0x%04x`", off)
		}
		if len(s.JumpDests) > MaxJumpDests {
			fmt.Fprintf(&b, " and %d more", len(s.JumpDests)-MaxJumpDests)
		}
		b.WriteString("\n")
	}

	if len(s.Histogram) > 0 {
		b.WriteString("\n## Opcodes\n\n| Mnemonic | Count |\n| --- | ---: |\n")
		rows := s.Histogram
		if len(rows) > MaxHistogramRows {
			rows = rows[:MaxHistogramRows]
		}
		for _, c := range rows {
			fmt.Fprintf(&b, "| %s | %d |\n", c.Mnemonic, c.N)
		}
	}
	return b.String()
}

// Constant is a PUSH immediate with its numeric value.
type Constant struct {
	Offset   int          `json:"offset"`
	Mnemonic string       `json:"mnemonic"`
	Hex      string       `json:"hex"`
	Value    *uint256.Int `json:"-"`
}

// Decimal returns the value in base 10, or "" when the immediate was empty or
// not hexadecimal.
func (c Constant) Decimal() string {
	if c.Value == nil {
		return ""
	}
	return c.Value.Dec()
}

// PushConstants returns every PUSH immediate in stream order.
func PushConstants(stream disasm.Stream) []Constant {
	var out []Constant
	for _, inst := range stream {
		if !inst.HasArg() || !strings.HasPrefix(inst.Mnemonic, "PUSH") {
			continue
		}
		out = append(out, Constant{
			Offset:   inst.Offset,
			Mnemonic: inst.Mnemonic,
			Hex:      "0x" + inst.ArgHex,
			Value:    inst.Value(),
		})
	}
	return out
}
