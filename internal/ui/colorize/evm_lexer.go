package colorize

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// EVM tokenizes listings of the form "0x0000:\tPUSH1\t0x60".
var EVM = lexers.Register(chroma.MustNewLexer(
	&chroma.Config{
		Name:      "evm",
		Aliases:   []string{"evmasm"},
		Filenames: []string{"*.evm", "*.evmasm"},
		MimeTypes: []string{"text/x-evm-asm"},
	},
	func() chroma.Rules {
		return chroma.Rules{
			"root": {
				{Pattern: `;[^\n]*`, Type: chroma.Comment},
				{Pattern: `0x[0-9a-fA-F]+:`, Type: chroma.NameLabel},
				{Pattern: `\b(JUMPDEST|JUMPSUBV|JUMPSUB|JUMPCI|JUMPC|JUMPTO|JUMPIF|JUMPV|JUMPI|JUMP|STOP|RETURNSUB|RETURN|REVERT|INVALID|SUICIDE)\b`, Type: chroma.KeywordReserved},
				{Pattern: `\b(PUSH\w*|DUP[0-9]+|SWAP[0-9]+)\b`, Type: chroma.NameBuiltin},
				{Pattern: `\b[A-Z][A-Z0-9]*\b`, Type: chroma.Keyword},
				{Pattern: `0x[0-9a-fA-F]*`, Type: chroma.LiteralNumberHex},
				{Pattern: `\s+`, Type: chroma.TextWhitespace},
				{Pattern: `.`, Type: chroma.Text},
			},
		}
	},
))
