// Package analysis derives summaries from decoded EVM instruction streams.
package analysis

// Constants for summary rendering
const (
	// MaxHistogramRows caps the opcode histogram in rendered summaries
	MaxHistogramRows = 16

	// MaxJumpDests caps the number of JUMPDEST offsets listed in summaries
	MaxJumpDests = 64
)
