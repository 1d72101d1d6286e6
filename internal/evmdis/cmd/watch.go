package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/nxadm/tail"
	"github.com/spf13/cobra"

	"evmdis/internal/disasm"
	"evmdis/internal/ui/colorize"
)

func newWatchCmd(a *app) *cobra.Command {
	watchCmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Decode each bytecode line appended to a file",
		Long: `Follow a file the way tail -f does and decode every new line as a separate
bytecode blob. Blank lines and lines starting with # are skipped.`,
		Example: `
# Follow a capture file
evmdis watch captures.txt

# Decode every line once and exit
evmdis watch --no-follow captures.txt
  `,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noFollow, _ := cmd.Flags().GetBool("no-follow")

			out := cmd.OutOrStdout()
			color := a.colorEnabled(out)
			render := func(listing string) string {
				if !color {
					return listing
				}
				return colorize.Line(listing, a.cfg.Style)
			}

			return watchFile(cmd.Context(), args[0], !noFollow, a.decoder, out, render)
		},
	}

	watchCmd.Flags().Bool("no-follow", false, "Read the file once instead of following it")
	return watchCmd
}

// watchFile decodes every line of path until the context is cancelled or,
// when follow is false, the end of the file is reached.
func watchFile(ctx context.Context, path string, follow bool, dec *disasm.Decoder, w io.Writer, render func(string) string) error {
	t, err := tail.TailFile(path, tail.Config{
		Follow:    follow,
		ReOpen:    follow,
		MustExist: true,
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer t.Cleanup()

	lineNo := 0
	for {
		select {
		case <-ctx.Done():
			if err := t.Stop(); err != nil {
				slog.Debug("Tail stop", "error", err)
			}
			return nil
		case line, ok := <-t.Lines:
			if !ok {
				return t.Wait()
			}
			lineNo++
			if line.Err != nil {
				return fmt.Errorf("failed to read %s: %w", path, line.Err)
			}

			text := strings.Join(strings.Fields(line.Text), "")
			if text == "" || strings.HasPrefix(text, "#") {
				continue
			}

			stream, decodeErr := dec.DecodeHex(text)
			fmt.Fprintf(w, "; line %d, %d instructions\n", lineNo, len(stream))
			io.WriteString(w, render(stream.Format()))
			var unknown *disasm.UnknownOpcodeError
			if errors.As(decodeErr, &unknown) {
				fmt.Fprintf(w, "; %s\n", unknown.Error())
			}
		}
	}
}
