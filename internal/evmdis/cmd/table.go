package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/spf13/cobra"

	"evmdis/internal/evmdis/styles"
	"evmdis/internal/opcodes"
)

func newTableCmd(a *app) *cobra.Command {
	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "Print the opcode table",
		Example: `
# Every opcode the decoder knows
evmdis table

# Only the interpreter-internal range
evmdis table --internal
  `,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			internal, _ := cmd.Flags().GetBool("internal")

			ops := opcodes.All()
			if internal {
				filtered := ops[:0]
				for _, op := range ops {
					if op.Internal {
						filtered = append(filtered, op)
					}
				}
				ops = filtered
			}

			out := cmd.OutOrStdout()
			return writeTable(out, ops, a.colorEnabled(out))
		},
	}

	tableCmd.Flags().Bool("internal", false, "Only list interpreter-internal opcodes")
	return tableCmd
}

func writeTable(w io.Writer, ops []opcodes.Op, color bool) error {
	render := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	b.WriteString(render(styles.HeaderStyle, fmt.Sprintf("%-6s %-14s %4s %3s %4s", "CODE", "MNEMONIC", "IMM", "IN", "OUT")))
	b.WriteByte('\n')
	for _, op := range ops {
		name := fmt.Sprintf("%-14s", op.Name)
		if op.Internal {
			name = render(styles.InternalStyle, name)
		} else {
			name = render(styles.MnemonicStyle, name)
		}
		fmt.Fprintf(&b, "%s %s %4d %3d %4d\n",
			render(styles.OffsetStyle, fmt.Sprintf("0x%02x  ", op.Code)),
			name, op.Immediate, op.StackIn, op.StackOut)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
