package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"evmdis/internal/analysis"
	"evmdis/internal/config"
	"evmdis/internal/disasm"
	evmlog "evmdis/internal/evmdis/log"
	"evmdis/internal/evmdis/styles"
	"evmdis/internal/logging"
	"evmdis/internal/ui/colorize"
)

var errNoInput = errors.New("no bytecode given: pass hex, a file path, or pipe it on stdin")

// app carries the state shared by all subcommands once flags are parsed.
type app struct {
	cfg     config.Config
	logger  *logging.LoggerCloser
	decoder *disasm.Decoder
}

// JSONOutput is the machine-readable decode result.
type JSONOutput struct {
	CodeHash     string             `json:"codeHash,omitempty"`
	Size         int                `json:"size"`
	Instructions []JSONInstruction  `json:"instructions"`
	Summary      analysis.Summary   `json:"summary"`
	Constants    []JSONConstant     `json:"constants,omitempty"`
	Error        *JSONUnknownOpcode `json:"error,omitempty"`
}

// JSONInstruction is one decoded instruction in JSON output.
type JSONInstruction struct {
	Offset    int    `json:"offset"`
	Opcode    string `json:"opcode"`
	Mnemonic  string `json:"mnemonic"`
	Immediate string `json:"immediate,omitempty"`
	Truncated bool   `json:"truncated,omitempty"`
	Internal  bool   `json:"internal,omitempty"`
}

// JSONConstant is a PUSH immediate with its decimal value.
type JSONConstant struct {
	Offset  int    `json:"offset"`
	Hex     string `json:"hex"`
	Decimal string `json:"decimal,omitempty"`
}

// JSONUnknownOpcode reports where decoding stopped.
type JSONUnknownOpcode struct {
	Offset    int    `json:"offset"`
	Opcode    string `json:"opcode"`
	Malformed bool   `json:"malformed,omitempty"`
	Message   string `json:"message"`
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "evmdis [bytecode|file]",
		Short: "EVM bytecode disassembler",
		Long: `Evmdis decodes EVM bytecode into a listing of mnemonics with byte offsets
and PUSH immediates. Bytecode is read from the argument, from a file named by
the argument, or from stdin. Decoding stops at the first unknown opcode and
everything decoded up to that point is still printed.`,
		Example: `
# Decode a hex string
evmdis 0x6060604052

# Decode a file and print a summary
evmdis --summary contract.hex

# Pipe bytecode and emit JSON
cat contract.hex | evmdis --json
  `,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return a.logger.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			jsonOutput, _ := cmd.Flags().GetBool("json")
			summary, _ := cmd.Flags().GetBool("summary")
			tui, _ := cmd.Flags().GetBool("tui")
			strict, _ := cmd.Flags().GetBool("strict")

			stream, decodeErr := a.decoder.DecodeHex(input)
			code, _ := disasm.ParseHex(input)

			out := cmd.OutOrStdout()
			switch {
			case jsonOutput:
				err = writeJSON(out, code, stream, decodeErr)
			case tui:
				err = a.runTUI(cmd.Context(), stream, analysis.Summarize(code, stream, decodeErr))
			case summary:
				err = a.writeSummary(out, analysis.Summarize(code, stream, decodeErr))
			default:
				err = a.writeListing(out, stream)
			}
			if err != nil {
				return err
			}

			if strict && decodeErr != nil {
				return decodeErr
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", config.DefaultPath(), "Path to a JSON config file")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("style", "", "Chroma style for listings")

	rootCmd.Flags().BoolP("json", "j", false, "Output the decoded stream as JSON")
	rootCmd.Flags().BoolP("summary", "s", false, "Show a summary instead of the listing")
	rootCmd.Flags().BoolP("tui", "t", false, "Browse the listing interactively")
	rootCmd.Flags().Bool("strict", false, "Exit with an error when an unknown opcode stops decoding")

	rootCmd.AddCommand(newRunCmd(a), newSchemaCmd(), newTableCmd(a), newWatchCmd(a))
	return rootCmd
}

// setup loads config, applies flag overrides and builds the logger and decoder.
func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("debug") {
		cfg.Debug, _ = cmd.Flags().GetBool("debug")
		if cfg.Debug {
			cfg.LogLevel = "debug"
		}
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.NoColor = true
	}
	if style, _ := cmd.Flags().GetString("style"); style != "" {
		cfg.Style = style
	}

	evmlog.Setup(cfg.Debug || logging.IsDebug())
	slog.Debug("Loaded config", "path", path, "style", cfg.Style, "noColor", cfg.NoColor)

	a.cfg = cfg
	a.logger = logging.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	a.decoder = disasm.NewDecoder(disasm.WithLogger(a.logger.Logger))
	return nil
}

// colorEnabled reports whether w is a terminal and colors are allowed.
func (a *app) colorEnabled(w io.Writer) bool {
	if a.cfg.NoColor || colorize.Disabled() {
		return false
	}
	return isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

func (a *app) writeListing(w io.Writer, stream disasm.Stream) error {
	listing := stream.Format()
	if a.colorEnabled(w) {
		colored, err := colorize.Listing(listing, a.cfg.Style)
		if err != nil {
			slog.Debug("Colorize failed", "error", err)
		} else {
			listing = colored
		}
	}
	_, err := io.WriteString(w, listing)
	return err
}

func (a *app) writeSummary(w io.Writer, s analysis.Summary) error {
	md := s.Markdown()
	if a.colorEnabled(w) {
		md = styles.RenderMarkdown(md, a.cfg.Width)
	}
	_, err := io.WriteString(w, md)
	return err
}

func (a *app) runTUI(ctx context.Context, stream disasm.Stream, s analysis.Summary) error {
	if !term.IsTerminal(os.Stdout.Fd()) {
		return errors.New("--tui needs an interactive terminal")
	}

	program := tea.NewProgram(
		newModel(stream, s, a.cfg.Width),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		slog.Error("TUI run error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// buildJSON converts a decode result to its JSON form.
func buildJSON(code []byte, stream disasm.Stream, decodeErr error) JSONOutput {
	summary := analysis.Summarize(code, stream, decodeErr)
	output := JSONOutput{
		CodeHash:     summary.CodeHash,
		Size:         summary.Size,
		Instructions: make([]JSONInstruction, 0, len(stream)),
		Summary:      summary,
	}

	for _, inst := range stream {
		ji := JSONInstruction{
			Offset:   inst.Offset,
			Opcode:   fmt.Sprintf("0x%02x", inst.Op),
			Mnemonic: inst.Mnemonic,
			Internal: inst.Internal,
		}
		if inst.HasArg() {
			ji.Immediate = "0x" + inst.ArgHex
			ji.Truncated = inst.Truncated()
		}
		output.Instructions = append(output.Instructions, ji)
	}

	for _, c := range analysis.PushConstants(stream) {
		output.Constants = append(output.Constants, JSONConstant{
			Offset:  c.Offset,
			Hex:     c.Hex,
			Decimal: c.Decimal(),
		})
	}

	if summary.Stop != nil {
		output.Error = &JSONUnknownOpcode{
			Offset:    summary.Stop.Offset,
			Opcode:    summary.Stop.Hex(),
			Malformed: summary.Stop.Malformed,
			Message:   summary.Stop.Error(),
		}
	}
	return output
}

func writeJSON(w io.Writer, code []byte, stream disasm.Stream, decodeErr error) error {
	jsonData, err := json.MarshalIndent(buildJSON(code, stream, decodeErr), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

// readInput resolves the bytecode text from an argument, a file, or stdin.
// All whitespace is removed so wrapped hex dumps decode as one stream. Empty
// input is valid and decodes to an empty listing.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	var raw string
	switch {
	case len(args) == 0 || args[0] == "-":
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(f.Fd()) {
			return "", errNoInput
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		raw = string(data)
	default:
		raw = args[0]
		if info, err := os.Stat(args[0]); err == nil && !info.IsDir() {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return "", fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			raw = string(data)
		}
	}

	return strings.Join(strings.Fields(raw), ""), nil
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	rootCmd := NewRootCmd()

	// Bypass fang's styled output when the result is being piped.
	plain := !term.IsTerminal(os.Stdout.Fd())
	for _, arg := range os.Args[1:] {
		if arg == "--json" || arg == "-j" {
			plain = true
			break
		}
	}

	if plain {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := rootCmd.ExecuteContext(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			stop()
			os.Exit(1)
		}
		return
	}

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
