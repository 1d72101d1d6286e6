package opcodes

// Grouped the way the yellow paper groups them. The interpreter-internal block
// at 0xac-0xb9 is kept so streams produced by the interpreter still decode.
var oplist = []Op{
	// arithmetic
	{Name: "STOP", Code: 0x00, StackIn: 0, StackOut: 0},
	{Name: "ADD", Code: 0x01, StackIn: 2, StackOut: 1},
	{Name: "SUB", Code: 0x02, StackIn: 2, StackOut: 1},
	{Name: "MUL", Code: 0x03, StackIn: 2, StackOut: 1},
	{Name: "DIV", Code: 0x04, StackIn: 2, StackOut: 1},
	{Name: "SDIV", Code: 0x05, StackIn: 2, StackOut: 1},
	{Name: "MOD", Code: 0x06, StackIn: 2, StackOut: 1},
	{Name: "SMOD", Code: 0x07, StackIn: 2, StackOut: 1},
	{Name: "ADDMOD", Code: 0x08, StackIn: 3, StackOut: 1},
	{Name: "MULMOD", Code: 0x09, StackIn: 3, StackOut: 1},
	{Name: "EXP", Code: 0x0a, StackIn: 2, StackOut: 1},
	{Name: "SIGNEXTEND", Code: 0x0b, StackIn: 2, StackOut: 1},

	// comparison and bitwise logic
	{Name: "LT", Code: 0x10, StackIn: 2, StackOut: 1},
	{Name: "GT", Code: 0x11, StackIn: 2, StackOut: 1},
	{Name: "SLT", Code: 0x12, StackIn: 2, StackOut: 1},
	{Name: "SGT", Code: 0x13, StackIn: 2, StackOut: 1},
	{Name: "EQ", Code: 0x14, StackIn: 2, StackOut: 1},
	{Name: "ISZERO", Code: 0x15, StackIn: 1, StackOut: 1},
	{Name: "AND", Code: 0x16, StackIn: 2, StackOut: 1},
	{Name: "OR", Code: 0x17, StackIn: 2, StackOut: 1},
	{Name: "XOR", Code: 0x18, StackIn: 2, StackOut: 1},
	{Name: "NOT", Code: 0x19, StackIn: 1, StackOut: 1},
	{Name: "BYTE", Code: 0x1a, StackIn: 2, StackOut: 1},

	// hashing
	{Name: "SHA3", Code: 0x20, StackIn: 2, StackOut: 1},

	// environment
	{Name: "ADDRESS", Code: 0x30, StackIn: 0, StackOut: 1},
	{Name: "BALANCE", Code: 0x31, StackIn: 1, StackOut: 1},
	{Name: "ORIGIN", Code: 0x32, StackIn: 0, StackOut: 1},
	{Name: "CALLER", Code: 0x33, StackIn: 0, StackOut: 1},
	{Name: "CALLVALUE", Code: 0x34, StackIn: 0, StackOut: 1},
	{Name: "CALLDATALOAD", Code: 0x35, StackIn: 1, StackOut: 1},
	{Name: "CALLDATASIZE", Code: 0x36, StackIn: 0, StackOut: 1},
	{Name: "CALLDATACOPY", Code: 0x37, StackIn: 3, StackOut: 0},
	{Name: "CODESIZE", Code: 0x38, StackIn: 0, StackOut: 1},
	{Name: "CODECOPY", Code: 0x39, StackIn: 3, StackOut: 0},
	{Name: "GASPRICE", Code: 0x3a, StackIn: 0, StackOut: 1},
	{Name: "EXTCODESIZE", Code: 0x3b, StackIn: 1, StackOut: 1},
	{Name: "EXTCODECOPY", Code: 0x3c, StackIn: 4, StackOut: 0},
	{Name: "RETURNDATASIZE", Code: 0x3d, StackIn: 0, StackOut: 1},
	{Name: "RETURNDATACOPY", Code: 0x3e, StackIn: 3, StackOut: 0},

	// block information
	{Name: "BLOCKHASH", Code: 0x40, StackIn: 1, StackOut: 1},
	{Name: "COINBASE", Code: 0x41, StackIn: 0, StackOut: 1},
	{Name: "TIMESTAMP", Code: 0x42, StackIn: 0, StackOut: 1},
	{Name: "NUMBER", Code: 0x43, StackIn: 0, StackOut: 1},
	{Name: "DIFFICULTY", Code: 0x44, StackIn: 0, StackOut: 1},
	{Name: "GASLIMIT", Code: 0x45, StackIn: 0, StackOut: 1},

	// stack, memory, storage and flow
	{Name: "POP", Code: 0x50, StackIn: 1, StackOut: 0},
	{Name: "MLOAD", Code: 0x51, StackIn: 1, StackOut: 1},
	{Name: "MSTORE", Code: 0x52, StackIn: 2, StackOut: 0},
	{Name: "MSTORE8", Code: 0x53, StackIn: 2, StackOut: 0},
	{Name: "SLOAD", Code: 0x54, StackIn: 1, StackOut: 1},
	{Name: "SSTORE", Code: 0x55, StackIn: 2, StackOut: 0},
	{Name: "JUMP", Code: 0x56, StackIn: 1, StackOut: 0},
	{Name: "JUMPI", Code: 0x57, StackIn: 2, StackOut: 0},
	{Name: "PC", Code: 0x58, StackIn: 0, StackOut: 1},
	{Name: "MSIZE", Code: 0x59, StackIn: 0, StackOut: 1},
	{Name: "GAS", Code: 0x5a, StackIn: 0, StackOut: 1},
	{Name: "JUMPDEST", Code: 0x5b, StackIn: 0, StackOut: 0},

	// push
	{Name: "PUSH1", Code: 0x60, Immediate: 1, StackIn: 0, StackOut: 1},
	{Name: "PUSH2", Code: 0x61, Immediate: 2, StackIn: 0, StackOut: 1},
	{Name: "PUSH3", Code: 0x62, Immediate: 3, StackIn: 0, StackOut: 1},
	{Name: "PUSH4", Code: 0x63, Immediate: 4, StackIn: 0, StackOut: 1},
	{Name: "PUSH5", Code: 0x64, Immediate: 5, StackIn: 0, StackOut: 1},
	{Name: "PUSH6", Code: 0x65, Immediate: 6, StackIn: 0, StackOut: 1},
	{Name: "PUSH7", Code: 0x66, Immediate: 7, StackIn: 0, StackOut: 1},
	{Name: "PUSH8", Code: 0x67, Immediate: 8, StackIn: 0, StackOut: 1},
	{Name: "PUSH9", Code: 0x68, Immediate: 9, StackIn: 0, StackOut: 1},
	{Name: "PUSH10", Code: 0x69, Immediate: 10, StackIn: 0, StackOut: 1},
	{Name: "PUSH11", Code: 0x6a, Immediate: 11, StackIn: 0, StackOut: 1},
	{Name: "PUSH12", Code: 0x6b, Immediate: 12, StackIn: 0, StackOut: 1},
	{Name: "PUSH13", Code: 0x6c, Immediate: 13, StackIn: 0, StackOut: 1},
	{Name: "PUSH14", Code: 0x6d, Immediate: 14, StackIn: 0, StackOut: 1},
	{Name: "PUSH15", Code: 0x6e, Immediate: 15, StackIn: 0, StackOut: 1},
	{Name: "PUSH16", Code: 0x6f, Immediate: 16, StackIn: 0, StackOut: 1},
	{Name: "PUSH17", Code: 0x70, Immediate: 17, StackIn: 0, StackOut: 1},
	{Name: "PUSH18", Code: 0x71, Immediate: 18, StackIn: 0, StackOut: 1},
	{Name: "PUSH19", Code: 0x72, Immediate: 19, StackIn: 0, StackOut: 1},
	{Name: "PUSH20", Code: 0x73, Immediate: 20, StackIn: 0, StackOut: 1},
	{Name: "PUSH21", Code: 0x74, Immediate: 21, StackIn: 0, StackOut: 1},
	{Name: "PUSH22", Code: 0x75, Immediate: 22, StackIn: 0, StackOut: 1},
	{Name: "PUSH23", Code: 0x76, Immediate: 23, StackIn: 0, StackOut: 1},
	{Name: "PUSH24", Code: 0x77, Immediate: 24, StackIn: 0, StackOut: 1},
	{Name: "PUSH25", Code: 0x78, Immediate: 25, StackIn: 0, StackOut: 1},
	{Name: "PUSH26", Code: 0x79, Immediate: 26, StackIn: 0, StackOut: 1},
	{Name: "PUSH27", Code: 0x7a, Immediate: 27, StackIn: 0, StackOut: 1},
	{Name: "PUSH28", Code: 0x7b, Immediate: 28, StackIn: 0, StackOut: 1},
	{Name: "PUSH29", Code: 0x7c, Immediate: 29, StackIn: 0, StackOut: 1},
	{Name: "PUSH30", Code: 0x7d, Immediate: 30, StackIn: 0, StackOut: 1},
	{Name: "PUSH31", Code: 0x7e, Immediate: 31, StackIn: 0, StackOut: 1},
	{Name: "PUSH32", Code: 0x7f, Immediate: 32, StackIn: 0, StackOut: 1},

	// dup
	{Name: "DUP1", Code: 0x80, StackIn: 1, StackOut: 2},
	{Name: "DUP2", Code: 0x81, StackIn: 2, StackOut: 3},
	{Name: "DUP3", Code: 0x82, StackIn: 3, StackOut: 4},
	{Name: "DUP4", Code: 0x83, StackIn: 4, StackOut: 5},
	{Name: "DUP5", Code: 0x84, StackIn: 5, StackOut: 6},
	{Name: "DUP6", Code: 0x85, StackIn: 6, StackOut: 7},
	{Name: "DUP7", Code: 0x86, StackIn: 7, StackOut: 8},
	{Name: "DUP8", Code: 0x87, StackIn: 8, StackOut: 9},
	{Name: "DUP9", Code: 0x88, StackIn: 9, StackOut: 10},
	{Name: "DUP10", Code: 0x89, StackIn: 10, StackOut: 11},
	{Name: "DUP11", Code: 0x8a, StackIn: 11, StackOut: 12},
	{Name: "DUP12", Code: 0x8b, StackIn: 12, StackOut: 13},
	{Name: "DUP13", Code: 0x8c, StackIn: 13, StackOut: 14},
	{Name: "DUP14", Code: 0x8d, StackIn: 14, StackOut: 15},
	{Name: "DUP15", Code: 0x8e, StackIn: 15, StackOut: 16},
	{Name: "DUP16", Code: 0x8f, StackIn: 16, StackOut: 17},

	// swap
	{Name: "SWAP1", Code: 0x90, StackIn: 2, StackOut: 2},
	{Name: "SWAP2", Code: 0x91, StackIn: 3, StackOut: 3},
	{Name: "SWAP3", Code: 0x92, StackIn: 4, StackOut: 4},
	{Name: "SWAP4", Code: 0x93, StackIn: 5, StackOut: 5},
	{Name: "SWAP5", Code: 0x94, StackIn: 6, StackOut: 6},
	{Name: "SWAP6", Code: 0x95, StackIn: 7, StackOut: 7},
	{Name: "SWAP7", Code: 0x96, StackIn: 8, StackOut: 8},
	{Name: "SWAP8", Code: 0x97, StackIn: 9, StackOut: 9},
	{Name: "SWAP9", Code: 0x98, StackIn: 10, StackOut: 10},
	{Name: "SWAP10", Code: 0x99, StackIn: 11, StackOut: 11},
	{Name: "SWAP11", Code: 0x9a, StackIn: 12, StackOut: 12},
	{Name: "SWAP12", Code: 0x9b, StackIn: 13, StackOut: 13},
	{Name: "SWAP13", Code: 0x9c, StackIn: 14, StackOut: 14},
	{Name: "SWAP14", Code: 0x9d, StackIn: 15, StackOut: 15},
	{Name: "SWAP15", Code: 0x9e, StackIn: 16, StackOut: 16},
	{Name: "SWAP16", Code: 0x9f, StackIn: 17, StackOut: 17},

	// logging
	{Name: "LOG0", Code: 0xa0, StackIn: 2, StackOut: 0},
	{Name: "LOG1", Code: 0xa1, StackIn: 3, StackOut: 0},
	{Name: "LOG2", Code: 0xa2, StackIn: 4, StackOut: 0},
	{Name: "LOG3", Code: 0xa3, StackIn: 5, StackOut: 0},
	{Name: "LOG4", Code: 0xa4, StackIn: 6, StackOut: 0},

	// interpreter-internal, never in deployed code
	{Name: "PUSHC", Code: 0xac, Immediate: 3, StackIn: 0, StackOut: 1, Internal: true},
	{Name: "JUMPC", Code: 0xad, StackIn: 1, StackOut: 0, Internal: true},
	{Name: "JUMPCI", Code: 0xae, StackIn: 2, StackOut: 0, Internal: true},
	{Name: "JUMPTO", Code: 0xb0, Immediate: 2, StackIn: 1, StackOut: 0, Internal: true},
	{Name: "JUMPIF", Code: 0xb1, Immediate: 2, StackIn: 2, StackOut: 0, Internal: true},
	{Name: "JUMPV", Code: 0xb2, Immediate: 2, StackIn: 1, StackOut: 0, Internal: true},
	{Name: "JUMPSUB", Code: 0xb3, Immediate: 2, StackIn: 1, StackOut: 0, Internal: true},
	{Name: "JUMPSUBV", Code: 0xb4, Immediate: 2, StackIn: 1, StackOut: 0, Internal: true},
	{Name: "BEGINDATA", Code: 0xb5, StackIn: 0, StackOut: 0, Internal: true},
	{Name: "BEGINSUB", Code: 0xb6, StackIn: 0, StackOut: 0, Internal: true},
	{Name: "RETURNSUB", Code: 0xb7, StackIn: 1, StackOut: 0, Internal: true},
	{Name: "PUTLOCAL", Code: 0xb8, Immediate: 2, StackIn: 1, StackOut: 0, Internal: true},
	{Name: "GETLOCAL", Code: 0xb9, Immediate: 2, StackIn: 0, StackOut: 1, Internal: true},

	// system
	{Name: "CREATE", Code: 0xf0, StackIn: 3, StackOut: 1},
	{Name: "CALL", Code: 0xf1, StackIn: 7, StackOut: 1},
	{Name: "CALLCODE", Code: 0xf2, StackIn: 7, StackOut: 1},
	{Name: "RETURN", Code: 0xf3, StackIn: 2, StackOut: 0},
	{Name: "STATICCALL", Code: 0xfa, StackIn: 6, StackOut: 1},
	{Name: "CREATE2", Code: 0xfb, StackIn: 4, StackOut: 1},
	{Name: "DELEGATECALL", Code: 0xfc, StackIn: 6, StackOut: 1},
	{Name: "REVERT", Code: 0xfd, StackIn: 2, StackOut: 0},
	{Name: "INVALID", Code: 0xfe, StackIn: 0, StackOut: 0},
	{Name: "SUICIDE", Code: 0xff, StackIn: 1, StackOut: 0},
}
