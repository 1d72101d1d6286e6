package colorize

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// EVMDark is the default listing style.
var EVMDark = styles.Register(chroma.MustNewStyle("evm-dark", chroma.StyleEntries{
	chroma.Text:             "#D4D4D4",
	chroma.Background:       "bg:#1e1e1e",
	chroma.Comment:          "italic #6A9955",
	chroma.NameLabel:        "#4F4F4F",        // offsets
	chroma.Keyword:          "#FFFFFF",
	chroma.KeywordReserved:  "bold #FF5F87",   // control flow
	chroma.NameBuiltin:      "#7C9C9D",        // stack ops
	chroma.LiteralNumberHex: "#EACD53",
}))
