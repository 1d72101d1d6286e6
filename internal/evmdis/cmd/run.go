package cmd

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"evmdis/internal/disasm"
)

func newRunCmd(a *app) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run [bytecode|file]",
		Short: "Decode bytecode to a plain listing",
		Long: `Decode bytecode in non-interactive mode and exit.
The listing is never colored, which makes it suitable for diffs and golden files.`,
		Example: `
# Decode a hex string
evmdis run 0x60606040

# Decode quietly, without the unknown-opcode warning
evmdis run -q contract.hex
  `,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			decoder := a.decoder
			if quiet {
				decoder = disasm.NewDecoder()
			}

			stream, decodeErr := decoder.DecodeHex(input)
			var unknown *disasm.UnknownOpcodeError
			if errors.As(decodeErr, &unknown) {
				slog.Debug("Decoding stopped", "offset", unknown.Offset, "opcode", unknown.Hex())
			}

			_, err = io.WriteString(cmd.OutOrStdout(), stream.Format())
			return err
		},
	}

	runCmd.Flags().BoolP("quiet", "q", false, "Suppress decode diagnostics")
	return runCmd
}
